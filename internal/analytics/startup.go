package analytics

import (
	"sort"
	"strings"

	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

// ExplodeInvestors separa a coluna de investidores por vírgula, removendo
// espaços de cada nome e descartando entradas vazias
func ExplodeInvestors(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}

	parts := strings.Split(field, ",")
	investors := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		investors = append(investors, name)
	}
	return investors
}

// StartupProfile monta o perfil de uma startup pelo nome exato.
// Retorna NotFoundError quando a startup não possui linhas.
func StartupProfile(t *Table, name string) (domain.StartupProfile, error) {
	if name == "" {
		return domain.StartupProfile{}, &NotFoundError{Entity: EntityStartup, Name: name}
	}

	rows := t.Where(func(r domain.FundingRecord) bool { return r.Startup == name }).rows()
	if len(rows) == 0 {
		return domain.StartupProfile{}, &NotFoundError{Entity: EntityStartup, Name: name}
	}

	values := amounts(rows)
	profile := domain.StartupProfile{
		Name:         name,
		RoundCount:   len(rows),
		AverageRound: mean(values),
		Verticals:    distinctVerticals(rows),
		Industry:     rows[0].Vertical,
		Headquarters: rows[0].City,
	}

	for _, v := range values {
		profile.TotalFunding += v
		if v > profile.MaxRound {
			profile.MaxRound = v
		}
	}

	for _, r := range rows {
		if r.Year == 0 {
			continue
		}
		if profile.FirstFundingYear == 0 || r.Year < profile.FirstFundingYear {
			profile.FirstFundingYear = r.Year
		}
		if r.Year > profile.LastFundingYear {
			profile.LastFundingYear = r.Year
		}
	}
	if profile.FirstFundingYear != 0 {
		profile.ActiveYears = profile.LastFundingYear - profile.FirstFundingYear + 1
	}

	timeline := sortByDate(rows)
	profile.Timeline = timeline
	profile.LatestRound = timeline[len(timeline)-1].Round
	profile.CumulativeFunding = cumulativeFunding(timeline)
	profile.GrowthRate = growthRate(timeline, profile.MaxRound)

	profile.ValuationTrend = domain.TrendStable
	if profile.GrowthRate > 0 {
		profile.ValuationTrend = domain.TrendIncreasing
	}

	profile.TopInvestors, profile.InvestorMentions = countInvestors(rows, TopInvestorsLimit)
	profile.FundingByRound = groupAmounts(rows, func(r domain.FundingRecord) string { return r.Round })
	profile.YearlyFunding = yearlyAmounts(rows)
	profile.Comparison = IndustryComparison(t, profile.Industry, profile.TotalFunding)

	return profile, nil
}

// sortByDate ordena uma cópia de forma estável por data crescente; linhas sem data vão para o final
func sortByDate(rows []domain.FundingRecord) []domain.FundingRecord {
	sorted := cloneRecords(rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Date, sorted[j].Date
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return sorted
}

// cumulativeFunding calcula a soma acumulada sobre as linhas já ordenadas
func cumulativeFunding(sorted []domain.FundingRecord) []domain.CumulativePoint {
	points := make([]domain.CumulativePoint, 0, len(sorted))
	var running float64
	for _, r := range sorted {
		running += r.AmountValue()
		points = append(points, domain.CumulativePoint{
			Date:       r.Date,
			Year:       r.Year,
			Amount:     r.AmountValue(),
			Cumulative: running,
		})
	}
	return points
}

// growthRate é (maior rodada - primeira rodada) / primeira rodada.
// Vale zero com uma única rodada ou quando a primeira rodada é zero.
func growthRate(sorted []domain.FundingRecord, maxRound float64) float64 {
	if len(sorted) <= 1 {
		return 0
	}
	first := sorted[0].AmountValue()
	if first == 0 {
		return 0
	}
	return (maxRound - first) / first
}

// countInvestors conta as menções de cada investidor e retorna os mais
// frequentes (empates na ordem em que apareceram) junto com o total de menções
func countInvestors(rows []domain.FundingRecord, limit int) ([]domain.InvestorCount, int) {
	order := make([]string, 0)
	counts := make(map[string]int)
	mentions := 0
	for _, r := range rows {
		for _, investor := range ExplodeInvestors(r.Investors) {
			if _, ok := counts[investor]; !ok {
				order = append(order, investor)
			}
			counts[investor]++
			mentions++
		}
	}

	top := make([]domain.InvestorCount, 0, len(order))
	for _, investor := range order {
		top = append(top, domain.InvestorCount{Investor: investor, Count: counts[investor]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top, mentions
}

func distinctVerticals(rows []domain.FundingRecord) []string {
	seen := make(map[string]struct{})
	verticals := make([]string, 0)
	for _, r := range rows {
		if _, ok := seen[r.Vertical]; ok {
			continue
		}
		seen[r.Vertical] = struct{}{}
		verticals = append(verticals, r.Vertical)
	}
	return verticals
}
