package analytics

import "github.com/vfg2006/funding-dashboard-api/internal/domain"

// IndustryComparison compara o total de uma startup com o setor informado.
// O percentil é a fração de startups do setor com total estritamente menor.
func IndustryComparison(t *Table, vertical string, startupTotal float64) domain.IndustryComparison {
	rows := t.Where(func(r domain.FundingRecord) bool { return r.Vertical == vertical }).rows()

	values := amounts(rows)
	comparison := domain.IndustryComparison{
		Vertical:       vertical,
		AverageFunding: mean(values),
		MedianFunding:  median(values),
	}

	totals := startupTotals(rows)
	comparison.StartupCount = len(totals)
	if len(totals) > 0 {
		below := 0
		for _, total := range totals {
			if total.Amount < startupTotal {
				below++
			}
		}
		comparison.Percentile = float64(below) / float64(len(totals)) * 100
	}

	if comparison.AverageFunding != 0 {
		comparison.VsAverage = (startupTotal/comparison.AverageFunding - 1) * 100
	}
	if comparison.MedianFunding != 0 {
		comparison.VsMedian = (startupTotal/comparison.MedianFunding - 1) * 100
	}

	return comparison
}
