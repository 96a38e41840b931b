// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// FundingRecord representa uma linha do dataset de investimentos em startups.
// Year e Month são zero quando a data não pôde ser interpretada.
type FundingRecord struct {
	Date      *time.Time `json:"date"`
	Year      int        `json:"year,omitempty"`
	Month     int        `json:"month,omitempty"`
	Startup   string     `json:"startup"`
	Vertical  string     `json:"vertical"`
	City      string     `json:"city"`
	Investors string     `json:"investors,omitempty"` // Lista separada por vírgula; vazio = nulo
	Round     string     `json:"round"`
	Amount    *float64   `json:"amount"`
}

// HasPeriod indica se o registro possui ano e mês válidos
func (r FundingRecord) HasPeriod() bool {
	return r.Year != 0 && r.Month != 0
}

// AmountValue retorna o valor do aporte ou zero quando nulo
func (r FundingRecord) AmountValue() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

// Clone copia o registro sem compartilhar os ponteiros de data e valor
func (r FundingRecord) Clone() FundingRecord {
	if r.Date != nil {
		date := *r.Date
		r.Date = &date
	}
	if r.Amount != nil {
		amount := *r.Amount
		r.Amount = &amount
	}
	return r
}

// NewFundingRecord monta um registro derivando ano e mês a partir da data
func NewFundingRecord(date *time.Time, startup, vertical, city, investors, round string, amount *float64) FundingRecord {
	record := FundingRecord{
		Date:      date,
		Startup:   startup,
		Vertical:  vertical,
		City:      city,
		Investors: investors,
		Round:     round,
		Amount:    amount,
	}

	if date != nil {
		record.Year = date.Year()
		record.Month = int(date.Month())
	}

	return record
}
