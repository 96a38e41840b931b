package domain

import "time"

// Origens possíveis do dataset
const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
	DatasetSourceHTTP     = "http"
)

// LoadReport resume uma carga do dataset
type LoadReport struct {
	Source         string `json:"source"`
	Location       string `json:"location"`
	Rows           int    `json:"rows"`
	InvalidDates   int    `json:"invalid_dates"`
	InvalidAmounts int    `json:"invalid_amounts"`
}

// DatasetInfo descreve o snapshot do dataset em uso
type DatasetInfo struct {
	LoadReport
	Version  string    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
}
