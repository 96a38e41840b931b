package analytics

import (
	"time"

	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

func amount(v float64) *float64 {
	return &v
}

func record(startup, vertical, city, investors, round, date string, value *float64) domain.FundingRecord {
	var parsed *time.Time
	if date != "" {
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			panic(err)
		}
		parsed = &d
	}
	return domain.NewFundingRecord(parsed, startup, vertical, city, investors, round, value)
}
