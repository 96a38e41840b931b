package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

const defaultFundingRoundsTable = "funding_rounds"

var fundingRoundColumns = []string{
	"funding_date",
	"startup",
	"vertical",
	"city",
	"investors",
	"round",
	"amount",
}

//go:generate mockgen -source=funding_round.go -destination=mocks/funding_round.go -package=mocks

type FundingRoundRepository interface {
	ListFundingRounds(ctx context.Context) ([]domain.FundingRecord, error)
}

type fundingRoundRepository struct {
	conn  postgres.Queryer
	table string
}

func NewFundingRoundRepository(conn postgres.Queryer, table string) FundingRoundRepository {
	if table == "" {
		table = defaultFundingRoundsTable
	}

	return &fundingRoundRepository{
		conn:  conn,
		table: table,
	}
}

// buildListFundingRoundsQuery monta a consulta na ordem de inserção, que é a ordem da tabela
func buildListFundingRoundsQuery(table string) (string, []interface{}, error) {
	return squirrel.
		Select(fundingRoundColumns...).
		From(pq.QuoteIdentifier(table)).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *fundingRoundRepository) ListFundingRounds(ctx context.Context) ([]domain.FundingRecord, error) {
	query, args, err := buildListFundingRoundsQuery(r.table)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar consulta de rodadas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar %s", r.table)
	}
	defer rows.Close()

	records := make([]domain.FundingRecord, 0)
	for rows.Next() {
		var (
			date      sql.NullTime
			startup   string
			vertical  sql.NullString
			city      sql.NullString
			investors sql.NullString
			round     sql.NullString
			amount    sql.NullFloat64
		)

		if err := rows.Scan(&date, &startup, &vertical, &city, &investors, &round, &amount); err != nil {
			return nil, errors.Wrap(err, "erro ao ler rodada")
		}

		var datePtr *time.Time
		if date.Valid {
			d := date.Time
			datePtr = &d
		}

		var amountPtr *float64
		if amount.Valid {
			a := amount.Float64
			amountPtr = &a
		}

		records = append(records, domain.NewFundingRecord(
			datePtr,
			startup,
			vertical.String,
			city.String,
			investors.String,
			round.String,
			amountPtr,
		))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar rodadas")
	}

	return records, nil
}
