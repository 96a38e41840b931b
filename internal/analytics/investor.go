package analytics

import (
	"strings"

	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

// MatchesInvestor verifica se a coluna de investidores contém o nome como
// substring (sensível a maiúsculas). "Global" também casa com "Tiger Global":
// o comportamento é mantido de propósito e o risco fica documentado.
func MatchesInvestor(r domain.FundingRecord, investor string) bool {
	return r.Investors != "" && strings.Contains(r.Investors, investor)
}

// InvestorPortfolio monta a carteira de um investidor.
// Retorna NotFoundError quando nenhuma linha menciona o investidor.
func InvestorPortfolio(t *Table, investor string) (domain.InvestorPortfolio, error) {
	if investor == "" {
		return domain.InvestorPortfolio{}, &NotFoundError{Entity: EntityInvestor, Name: investor}
	}

	rows := t.Where(func(r domain.FundingRecord) bool { return MatchesInvestor(r, investor) }).rows()
	if len(rows) == 0 {
		return domain.InvestorPortfolio{}, &NotFoundError{Entity: EntityInvestor, Name: investor}
	}

	// As "mais recentes" são as primeiras linhas na ordem da tabela, sem ordenar por data
	recent := rows
	if len(recent) > RecentInvestmentsLimit {
		recent = recent[:RecentInvestmentsLimit]
	}
	return domain.InvestorPortfolio{
		Investor:           investor,
		RecentInvestments:  cloneRecords(recent),
		BiggestInvestments: topByAmount(startupTotals(rows), BiggestInvestmentsLimit),
		ByVertical:         groupAmounts(rows, func(r domain.FundingRecord) string { return r.Vertical }),
		ByRound:            groupAmounts(rows, func(r domain.FundingRecord) string { return r.Round }),
		ByCity:             groupAmounts(rows, func(r domain.FundingRecord) string { return r.City }),
		ByYear:             yearlyAmounts(rows),
	}, nil
}
