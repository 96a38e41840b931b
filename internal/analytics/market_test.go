package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

func marketTable() *Table {
	return NewTable([]domain.FundingRecord{
		record("A", "Tech", "Bangalore", "Acme", "Seed", "2020-01-15", amount(100)),
		record("B", "Tech", "Delhi", "Beta", "Seed", "2020-01-20", amount(300)),
		record("A", "Tech", "Bangalore", "Acme", "Series A", "2020-02-01", amount(50)),
		record("C", "Health", "Mumbai", "", "Seed", "2021-03-01", nil),
		record("D", "Fin", "Pune", "Gamma", "Seed", "2021-05-10", amount(300)),
		record("E", "Fin", "Pune", "Gamma", "Seed", "", amount(10)),
		record("F", "Fin", "Pune", "Gamma", "Seed", "", amount(20)),
		record("G", "Fin", "Pune", "Gamma", "Seed", "", amount(5)),
	})
}

func TestMarketSummary(t *testing.T) {
	tests := []struct {
		name     string
		table    *Table
		validate func(t *testing.T, summary domain.MarketSummary)
	}{
		{
			name:  "Tabela vazia - deve retornar agregados zerados",
			table: NewTable(nil),
			validate: func(t *testing.T, summary domain.MarketSummary) {
				assert.Equal(t, 0.0, summary.TotalFunding)
				assert.Equal(t, 0.0, summary.AverageFunding)
				assert.Equal(t, 0.0, summary.MaxFunding)
				assert.Equal(t, 0, summary.StartupCount)
				assert.NotNil(t, summary.TopStartups)
				assert.Empty(t, summary.TopStartups)
			},
		},
		{
			name:  "Tabela nula - deve se comportar como vazia",
			table: nil,
			validate: func(t *testing.T, summary domain.MarketSummary) {
				assert.Equal(t, 0.0, summary.TotalFunding)
				assert.Empty(t, summary.TopStartups)
			},
		},
		{
			name:  "Total deve ser a soma dos aportes, ignorando nulos",
			table: marketTable(),
			validate: func(t *testing.T, summary domain.MarketSummary) {
				assert.Equal(t, 785.0, summary.TotalFunding)
				assert.Equal(t, 780.0, summary.TotalDelta)
				assert.InDelta(t, 785.0/7, summary.AverageFunding, 1e-9)
				assert.InDelta(t, 785.0/7-5, summary.AverageDelta, 1e-9)
				assert.Equal(t, 7, summary.StartupCount)
			},
		},
		{
			name:  "Top 5 pela maior rodada - empates mantêm a ordem de aparição",
			table: marketTable(),
			validate: func(t *testing.T, summary domain.MarketSummary) {
				require.Len(t, summary.TopStartups, 5)
				assert.Equal(t, []domain.StartupAmount{
					{Startup: "B", Amount: 300},
					{Startup: "D", Amount: 300},
					{Startup: "A", Amount: 100},
					{Startup: "F", Amount: 20},
					{Startup: "E", Amount: 10},
				}, summary.TopStartups)
				assert.Equal(t, 300.0, summary.MaxFunding)
				assert.Equal(t, 290.0, summary.MaxDelta)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, MarketSummary(tt.table))
		})
	}
}

func TestMarketSummary_TotalMatchesRowSum(t *testing.T) {
	table := marketTable()

	var expected float64
	for _, r := range table.Records() {
		expected += r.AmountValue()
	}

	assert.Equal(t, expected, MarketSummary(table).TotalFunding)
}

func TestMonthOverMonth(t *testing.T) {
	table := marketTable()

	t.Run("Total - soma por ano e mês em ordem cronológica", func(t *testing.T) {
		values, err := MonthOverMonth(table, domain.MetricTotal)
		require.NoError(t, err)

		assert.Equal(t, []domain.PeriodValue{
			{Year: 2020, Month: 1, Label: "2020-1", Value: 400},
			{Year: 2020, Month: 2, Label: "2020-2", Value: 50},
			{Year: 2021, Month: 3, Label: "2021-3", Value: 0},
			{Year: 2021, Month: 5, Label: "2021-5", Value: 300},
		}, values)
	})

	t.Run("Count - conta startups distintas por período", func(t *testing.T) {
		extra := NewTable(append(table.Records(),
			record("A", "Tech", "Bangalore", "Acme", "Series B", "2020-01-28", amount(1)),
		))

		values, err := MonthOverMonth(extra, domain.MetricCount)
		require.NoError(t, err)
		require.Len(t, values, 4)

		assert.Equal(t, 2.0, values[0].Value)
		assert.Equal(t, 1.0, values[1].Value)
		assert.Equal(t, 1.0, values[2].Value)
		assert.Equal(t, 1.0, values[3].Value)
	})

	t.Run("Saída ordenada e sem períodos duplicados", func(t *testing.T) {
		values, err := MonthOverMonth(table, domain.MetricTotal)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for i, v := range values {
			assert.False(t, seen[v.Label], "período duplicado: %s", v.Label)
			seen[v.Label] = true
			if i > 0 {
				prev := values[i-1]
				assert.True(t, prev.Year < v.Year || (prev.Year == v.Year && prev.Month < v.Month))
			}
		}
	})

	t.Run("Tabela vazia - série vazia", func(t *testing.T) {
		values, err := MonthOverMonth(NewTable(nil), domain.MetricCount)
		require.NoError(t, err)
		assert.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("Métrica desconhecida - deve retornar erro", func(t *testing.T) {
		_, err := MonthOverMonth(table, "Average")
		assert.ErrorIs(t, err, ErrUnknownMetric)
	})
}

func TestYearlyFunding(t *testing.T) {
	assert.Equal(t, []domain.YearValue{
		{Year: 2020, Amount: 450},
		{Year: 2021, Amount: 300},
	}, YearlyFunding(marketTable()))

	assert.Empty(t, YearlyFunding(NewTable(nil)))
}
