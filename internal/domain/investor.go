package domain

// InvestorPortfolio é a carteira de um investidor dentro do dataset
type InvestorPortfolio struct {
	Investor           string          `json:"investor"`
	RecentInvestments  []FundingRecord `json:"recent_investments"` // Primeiras 5 linhas na ordem da tabela
	BiggestInvestments []StartupAmount `json:"biggest_investments"`
	ByVertical         []GroupAmount   `json:"by_vertical"`
	ByRound            []GroupAmount   `json:"by_round"`
	ByCity             []GroupAmount   `json:"by_city"`
	ByYear             []YearValue     `json:"by_year"`
}
