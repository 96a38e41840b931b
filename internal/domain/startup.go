package domain

import "time"

// Tendência de captação exibida no perfil da startup
const (
	TrendIncreasing = "increasing"
	TrendStable     = "stable"
)

// CumulativePoint é um ponto da série de captação acumulada
type CumulativePoint struct {
	Date       *time.Time `json:"date"`
	Year       int        `json:"year,omitempty"`
	Amount     float64    `json:"amount"`
	Cumulative float64    `json:"cumulative"`
}

// InvestorCount indica quantas vezes um investidor aparece nas rodadas
type InvestorCount struct {
	Investor string `json:"investor"`
	Count    int    `json:"count"`
}

// GroupAmount é o valor somado de uma chave de agrupamento (rodada, setor, cidade)
type GroupAmount struct {
	Key    string  `json:"key"`
	Amount float64 `json:"amount"`
}

// IndustryComparison compara uma startup com as demais do mesmo setor
type IndustryComparison struct {
	Vertical       string  `json:"vertical"`
	AverageFunding float64 `json:"average_funding"`
	MedianFunding  float64 `json:"median_funding"`
	StartupCount   int     `json:"startup_count"`
	Percentile     float64 `json:"percentile"`
	VsAverage      float64 `json:"vs_average"` // Percentual acima (ou abaixo) da média
	VsMedian       float64 `json:"vs_median"`  // Percentual acima (ou abaixo) da mediana
}

// StartupProfile é o perfil completo de uma startup
type StartupProfile struct {
	Name              string             `json:"name"`
	TotalFunding      float64            `json:"total_funding"`
	RoundCount        int                `json:"round_count"`
	MaxRound          float64            `json:"max_round"`
	AverageRound      float64            `json:"average_round"`
	Verticals         []string           `json:"verticals"`
	FirstFundingYear  int                `json:"first_funding_year,omitempty"`
	LastFundingYear   int                `json:"last_funding_year,omitempty"`
	ActiveYears       int                `json:"active_years"`
	Industry          string             `json:"industry"`
	Headquarters      string             `json:"headquarters"`
	LatestRound       string             `json:"latest_round"`
	GrowthRate        float64            `json:"growth_rate"` // (maior rodada - primeira rodada) / primeira rodada
	ValuationTrend    string             `json:"valuation_trend"`
	InvestorMentions  int                `json:"investor_mentions"`
	TopInvestors      []InvestorCount    `json:"top_investors"`
	CumulativeFunding []CumulativePoint  `json:"cumulative_funding"`
	FundingByRound    []GroupAmount      `json:"funding_by_round"`
	YearlyFunding     []YearValue        `json:"yearly_funding"`
	Timeline          []FundingRecord    `json:"timeline"`
	Comparison        IndustryComparison `json:"industry_comparison"`
}
