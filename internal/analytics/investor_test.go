package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

func portfolioTable() *Table {
	return NewTable([]domain.FundingRecord{
		record("S1", "Tech", "Bangalore", "Acme Capital, Beta Fund", "Seed", "2019-01-01", amount(100)),
		record("S2", "Tech", "Delhi", "Zeta", "Seed", "2019-02-01", amount(999)),
		record("S3", "Health", "Delhi", "Acme", "Series A", "2020-05-05", amount(50)),
		record("S1", "Tech", "Bangalore", "Acme Ventures", "Series A", "2021-01-01", amount(300)),
		record("S4", "Fin", "Mumbai", " Acme", "Seed", "", amount(20)),
		record("S5", "Fin", "Mumbai", "Acme", "Seed", "2018-07-01", amount(10)),
		record("S6", "Tech", "Pune", "Acme", "Seed", "2017-03-01", amount(70)),
	})
}

func TestInvestorPortfolio(t *testing.T) {
	portfolio, err := InvestorPortfolio(portfolioTable(), "Acme")
	require.NoError(t, err)

	assert.Equal(t, "Acme", portfolio.Investor)

	t.Run("Mais recentes - primeiras 5 linhas na ordem da tabela", func(t *testing.T) {
		require.Len(t, portfolio.RecentInvestments, RecentInvestmentsLimit)
		startups := make([]string, 0, len(portfolio.RecentInvestments))
		for _, r := range portfolio.RecentInvestments {
			startups = append(startups, r.Startup)
		}
		assert.Equal(t, []string{"S1", "S3", "S1", "S4", "S5"}, startups)
	})

	t.Run("Maiores investimentos - soma por startup em ordem decrescente", func(t *testing.T) {
		assert.Equal(t, []domain.StartupAmount{
			{Startup: "S1", Amount: 400},
			{Startup: "S6", Amount: 70},
			{Startup: "S3", Amount: 50},
			{Startup: "S4", Amount: 20},
			{Startup: "S5", Amount: 10},
		}, portfolio.BiggestInvestments)
	})

	t.Run("Agrupamentos por setor, rodada e cidade", func(t *testing.T) {
		assert.Equal(t, []domain.GroupAmount{
			{Key: "Fin", Amount: 30},
			{Key: "Health", Amount: 50},
			{Key: "Tech", Amount: 470},
		}, portfolio.ByVertical)

		assert.Equal(t, []domain.GroupAmount{
			{Key: "Seed", Amount: 200},
			{Key: "Series A", Amount: 350},
		}, portfolio.ByRound)

		assert.Equal(t, []domain.GroupAmount{
			{Key: "Bangalore", Amount: 400},
			{Key: "Delhi", Amount: 50},
			{Key: "Mumbai", Amount: 30},
			{Key: "Pune", Amount: 70},
		}, portfolio.ByCity)
	})

	t.Run("Por ano - ordem crescente, sem linhas sem data", func(t *testing.T) {
		assert.Equal(t, []domain.YearValue{
			{Year: 2017, Amount: 70},
			{Year: 2018, Amount: 10},
			{Year: 2019, Amount: 100},
			{Year: 2020, Amount: 50},
			{Year: 2021, Amount: 300},
		}, portfolio.ByYear)
	})
}

func TestInvestorPortfolio_SubstringMatch(t *testing.T) {
	table := NewTable([]domain.FundingRecord{
		record("S1", "Tech", "Bangalore", "Acme Capital, Beta Fund", "Seed", "2019-01-01", amount(100)),
	})

	portfolio, err := InvestorPortfolio(table, "Acme")
	require.NoError(t, err)
	require.Len(t, portfolio.RecentInvestments, 1)
	assert.Equal(t, "S1", portfolio.RecentInvestments[0].Startup)
}

func TestInvestorPortfolio_NotFound(t *testing.T) {
	tests := []struct {
		name     string
		table    *Table
		investor string
	}{
		{
			name: "Nenhuma linha menciona o investidor",
			table: NewTable([]domain.FundingRecord{
				record("S2", "Tech", "Delhi", "Zeta", "Seed", "2019-02-01", amount(1)),
			}),
			investor: "Acme",
		},
		{
			name:     "Busca sensível a maiúsculas",
			table:    portfolioTable(),
			investor: "acme",
		},
		{
			name:     "Nome vazio",
			table:    portfolioTable(),
			investor: "",
		},
		{
			name: "Coluna de investidores nula",
			table: NewTable([]domain.FundingRecord{
				record("S7", "Tech", "Delhi", "", "Seed", "2019-02-01", amount(1)),
			}),
			investor: "Acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InvestorPortfolio(tt.table, tt.investor)
			require.Error(t, err)
			assert.True(t, IsNotFound(err))
		})
	}
}

func TestMatchesInvestor_SharedSuffix(t *testing.T) {
	r := record("S8", "Tech", "Delhi", "Tiger Global", "Seed", "2019-02-01", amount(1))

	// Risco conhecido: a busca por substring mistura investidores com nomes parecidos
	assert.True(t, MatchesInvestor(r, "Global"))
	assert.True(t, MatchesInvestor(r, "Tiger Global"))
	assert.False(t, MatchesInvestor(r, "Sequoia"))
}
