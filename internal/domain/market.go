package domain

// Métricas aceitas na análise mês a mês
const (
	MetricTotal = "Total"
	MetricCount = "Count"
)

// StartupAmount associa uma startup a um valor agregado
type StartupAmount struct {
	Startup string  `json:"startup"`
	Amount  float64 `json:"amount"`
}

// PeriodValue é um ponto da série mês a mês
type PeriodValue struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Label string  `json:"label"` // Formato yyyy-m, sem zero à esquerda no mês
	Value float64 `json:"value"`
}

// YearValue é um ponto de uma série anual
type YearValue struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

// MarketSummary consolida as métricas do mercado inteiro
type MarketSummary struct {
	TotalFunding   float64         `json:"total_funding"`
	TotalDelta     float64         `json:"total_delta"` // Total menos o menor aporte
	AverageFunding float64         `json:"average_funding"`
	AverageDelta   float64         `json:"average_delta"` // Média menos o menor aporte
	MaxFunding     float64         `json:"max_funding"`
	MaxDelta       float64         `json:"max_delta"` // Diferença entre o maior e o menor do top 5
	StartupCount   int             `json:"startup_count"`
	TopStartups    []StartupAmount `json:"top_startups"`
}

// OverallAnalysis é a resposta da visão geral do mercado
type OverallAnalysis struct {
	Summary        MarketSummary `json:"summary"`
	Metric         string        `json:"metric"`
	MonthOverMonth []PeriodValue `json:"month_over_month"`
	YearlyFunding  []YearValue   `json:"yearly_funding"`
}
