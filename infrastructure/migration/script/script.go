package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/funding-dashboard-api/internal/config"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS %s (
		id           BIGSERIAL PRIMARY KEY,
		funding_date DATE NULL,
		startup      TEXT NOT NULL,
		vertical     TEXT NULL,
		city         TEXT NULL,
		investors    TEXT NULL,
		round        TEXT NULL,
		amount       DOUBLE PRECISION NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando carga do dataset no banco...")
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func createTable(tx *sql.Tx, table string) error {
	_, err := tx.Exec(fmt.Sprintf(createTableSQL, table))
	return err
}

func insertFundingRounds(tx *sql.Tx, table string, records []domain.FundingRecord) error {
	logrus.Infof("Iniciando inserção de %d rodadas...", len(records))
	startTime := time.Now()

	stmt, err := tx.Prepare(fmt.Sprintf(
		`INSERT INTO %s (funding_date, startup, vertical, city, investors, round, amount) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		table,
	))
	if err != nil {
		return fmt.Errorf("erro ao preparar statement: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		var date sql.NullTime
		if r.Date != nil {
			date = sql.NullTime{Time: *r.Date, Valid: true}
		}

		var amount sql.NullFloat64
		if r.Amount != nil {
			amount = sql.NullFloat64{Float64: *r.Amount, Valid: true}
		}

		_, err := stmt.Exec(date, r.Startup, nullString(r.Vertical), nullString(r.City), nullString(r.Investors), nullString(r.Round), amount)
		if err != nil {
			return fmt.Errorf("erro ao inserir rodada [%d/%d] %s: %w", i+1, len(records), r.Startup, err)
		}

		if i > 0 && i%500 == 0 {
			logrus.Infof("Progresso: %d/%d rodadas processadas", i+1, len(records))
		}
	}

	logrus.Infof("Inserção concluída em %v", time.Since(startTime))
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	records, report, err := dataset.NewCSVLoader(cfg.Dataset.Path).Load(ctx)
	if err != nil {
		logrus.Fatalf("ERRO ao ler o CSV: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"rows":            report.Rows,
		"invalid_dates":   report.InvalidDates,
		"invalid_amounts": report.InvalidAmounts,
	}).Info("CSV lido com sucesso")

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	table := pq.QuoteIdentifier(cfg.Dataset.Table)
	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createTable(tx, table); err != nil {
			return fmt.Errorf("erro ao criar tabela: %w", err)
		}

		if _, err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", table)); err != nil {
			return fmt.Errorf("erro ao limpar tabela: %w", err)
		}

		return insertFundingRounds(tx, table, records)
	})
	if err != nil {
		logrus.Errorf("ERRO na carga, transação revertida: %v", err)
		os.Exit(1)
	}

	logrus.Infof("Carga do dataset concluída em %v!", time.Since(startTime))
}
