package dataset

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

// PostgresLoader lê o dataset da tabela de rodadas no Postgres
type PostgresLoader struct {
	repo  repository.FundingRoundRepository
	table string
}

func NewPostgresLoader(repo repository.FundingRoundRepository, table string) *PostgresLoader {
	return &PostgresLoader{repo: repo, table: table}
}

func (l *PostgresLoader) Load(ctx context.Context) ([]domain.FundingRecord, *domain.LoadReport, error) {
	records, err := l.repo.ListFundingRounds(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao carregar rodadas do banco")
	}

	report := &domain.LoadReport{
		Source:   domain.DatasetSourcePostgres,
		Location: l.table,
		Rows:     len(records),
	}

	for _, r := range records {
		if r.Date == nil {
			report.InvalidDates++
		}
		if r.Amount == nil {
			report.InvalidAmounts++
		}
	}

	return records, report, nil
}
