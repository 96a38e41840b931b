package analytics

import (
	"sort"

	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

// sumByKey soma os aportes por chave preservando a ordem em que cada chave
// apareceu. Chaves vazias são tratadas como nulas e ignoradas.
func sumByKey(records []domain.FundingRecord, key func(domain.FundingRecord) string) ([]string, map[string]float64) {
	order := make([]string, 0)
	sums := make(map[string]float64)
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] += r.AmountValue()
	}
	return order, sums
}

// groupAmounts agrupa e soma por chave, com as chaves em ordem alfabética
func groupAmounts(records []domain.FundingRecord, key func(domain.FundingRecord) string) []domain.GroupAmount {
	keys, sums := sumByKey(records, key)
	sort.Strings(keys)

	groups := make([]domain.GroupAmount, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, domain.GroupAmount{Key: k, Amount: sums[k]})
	}
	return groups
}

// startupTotals soma os aportes de cada startup na ordem de aparição
func startupTotals(records []domain.FundingRecord) []domain.StartupAmount {
	keys, sums := sumByKey(records, func(r domain.FundingRecord) string { return r.Startup })

	totals := make([]domain.StartupAmount, 0, len(keys))
	for _, k := range keys {
		totals = append(totals, domain.StartupAmount{Startup: k, Amount: sums[k]})
	}
	return totals
}

// topByAmount ordena de forma estável por valor decrescente e mantém os n primeiros
func topByAmount(items []domain.StartupAmount, n int) []domain.StartupAmount {
	sorted := make([]domain.StartupAmount, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// yearlyAmounts soma os aportes por ano em ordem crescente, ignorando anos desconhecidos
func yearlyAmounts(records []domain.FundingRecord) []domain.YearValue {
	sums := make(map[int]float64)
	for _, r := range records {
		if r.Year == 0 {
			continue
		}
		sums[r.Year] += r.AmountValue()
	}

	years := make([]int, 0, len(sums))
	for year := range sums {
		years = append(years, year)
	}
	sort.Ints(years)

	values := make([]domain.YearValue, 0, len(years))
	for _, year := range years {
		values = append(values, domain.YearValue{Year: year, Amount: sums[year]})
	}
	return values
}

// amounts retorna apenas os aportes não nulos
func amounts(records []domain.FundingRecord) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		if r.Amount != nil {
			values = append(values, *r.Amount)
		}
	}
	return values
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	middle := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[middle-1] + sorted[middle]) / 2
	}
	return sorted[middle]
}
