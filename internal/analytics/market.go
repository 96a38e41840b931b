package analytics

import (
	"fmt"
	"sort"

	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

// MarketSummary calcula as métricas gerais do mercado.
// Aportes nulos não entram na soma, na média nem no mínimo. Linhas sem nome
// de startup entram nos valores, mas não contam como startup.
func MarketSummary(t *Table) domain.MarketSummary {
	records := t.rows()
	summary := domain.MarketSummary{
		TopStartups: []domain.StartupAmount{},
	}

	distinct := make(map[string]struct{})
	for _, r := range records {
		if r.Startup == "" {
			continue
		}
		distinct[r.Startup] = struct{}{}
	}
	summary.StartupCount = len(distinct)

	values := amounts(records)
	if len(values) > 0 {
		minAmount := values[0]
		for _, v := range values {
			summary.TotalFunding += v
			if v < minAmount {
				minAmount = v
			}
		}
		summary.AverageFunding = summary.TotalFunding / float64(len(values))
		summary.TotalDelta = summary.TotalFunding - minAmount
		summary.AverageDelta = summary.AverageFunding - minAmount
	}

	summary.TopStartups = TopStartupsByMaxRound(t, TopStartupsLimit)
	if n := len(summary.TopStartups); n > 0 {
		summary.MaxFunding = summary.TopStartups[0].Amount
		summary.MaxDelta = summary.TopStartups[0].Amount - summary.TopStartups[n-1].Amount
	}

	return summary
}

// TopStartupsByMaxRound ordena as startups pela maior rodada individual.
// Empates mantêm a ordem de aparição na tabela. Startups sem nenhum aporte
// informado ficam de fora.
func TopStartupsByMaxRound(t *Table, limit int) []domain.StartupAmount {
	order := make([]string, 0)
	maxByStartup := make(map[string]float64)
	for _, r := range t.rows() {
		if r.Amount == nil || r.Startup == "" {
			continue
		}
		current, ok := maxByStartup[r.Startup]
		if !ok {
			order = append(order, r.Startup)
			maxByStartup[r.Startup] = *r.Amount
			continue
		}
		if *r.Amount > current {
			maxByStartup[r.Startup] = *r.Amount
		}
	}

	items := make([]domain.StartupAmount, 0, len(order))
	for _, name := range order {
		items = append(items, domain.StartupAmount{Startup: name, Amount: maxByStartup[name]})
	}
	return topByAmount(items, limit)
}

type period struct {
	year  int
	month int
}

// MonthOverMonth agrega por (ano, mês) em ordem cronológica. Total soma os
// aportes; Count conta startups distintas. Linhas sem data válida são ignoradas.
func MonthOverMonth(t *Table, metric string) ([]domain.PeriodValue, error) {
	if metric != domain.MetricTotal && metric != domain.MetricCount {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	sums := make(map[period]float64)
	startups := make(map[period]map[string]struct{})
	for _, r := range t.rows() {
		if !r.HasPeriod() {
			continue
		}
		p := period{year: r.Year, month: r.Month}
		sums[p] += r.AmountValue()
		if startups[p] == nil {
			startups[p] = make(map[string]struct{})
		}
		if r.Startup != "" {
			startups[p][r.Startup] = struct{}{}
		}
	}

	periods := make([]period, 0, len(sums))
	for p := range sums {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].year != periods[j].year {
			return periods[i].year < periods[j].year
		}
		return periods[i].month < periods[j].month
	})

	values := make([]domain.PeriodValue, 0, len(periods))
	for _, p := range periods {
		value := sums[p]
		if metric == domain.MetricCount {
			value = float64(len(startups[p]))
		}
		values = append(values, domain.PeriodValue{
			Year:  p.year,
			Month: p.month,
			Label: fmt.Sprintf("%d-%d", p.year, p.month),
			Value: value,
		})
	}
	return values, nil
}

// YearlyFunding soma os aportes por ano em ordem crescente
func YearlyFunding(t *Table) []domain.YearValue {
	return yearlyAmounts(t.rows())
}
