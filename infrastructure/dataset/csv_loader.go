// Package dataset carrega o dataset de investimentos e mantém o snapshot em uso
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
	"github.com/vfg2006/funding-dashboard-api/pkg/utils"
)

// Colunas obrigatórias do arquivo CSV
const (
	ColumnDate      = "date"
	ColumnStartup   = "startup"
	ColumnVertical  = "vertical"
	ColumnCity      = "city"
	ColumnInvestors = "investors"
	ColumnRound     = "round"
	ColumnAmount    = "amount"
)

var requiredColumns = []string{
	ColumnDate,
	ColumnStartup,
	ColumnVertical,
	ColumnCity,
	ColumnInvestors,
	ColumnRound,
	ColumnAmount,
}

//go:generate mockgen -source=csv_loader.go -destination=mocks/loader.go -package=mocks

// Loader carrega todas as linhas do dataset
type Loader interface {
	Load(ctx context.Context) ([]domain.FundingRecord, *domain.LoadReport, error)
}

// CSVLoader lê o dataset de um arquivo CSV local
type CSVLoader struct {
	path string
}

// NewCSVLoader cria um loader para o arquivo informado
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load abre o arquivo e interpreta todas as linhas
func (l *CSVLoader) Load(ctx context.Context) ([]domain.FundingRecord, *domain.LoadReport, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao abrir o dataset %s", l.path)
	}
	defer file.Close()

	records, report, err := ReadCSV(ctx, file)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao ler o dataset %s", l.path)
	}

	report.Location = l.path
	return records, report, nil
}

// ReadCSV interpreta o conteúdo CSV. Datas e valores inválidos viram nulos e
// são contabilizados no relatório; apenas problemas estruturais geram erro.
func ReadCSV(ctx context.Context, r io.Reader) ([]domain.FundingRecord, *domain.LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrMissingHeader
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao ler o cabeçalho")
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, nil, err
	}

	report := &domain.LoadReport{Source: domain.DatasetSourceCSV}
	records := make([]domain.FundingRecord, 0)
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, nil, errors.Wrapf(err, "erro ao ler a linha %d", line)
		}

		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}

		field := func(column string) string {
			idx := columns[column]
			if idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		date, parseErr := parseDate(line, field(ColumnDate))
		if parseErr != nil {
			report.InvalidDates++
			logrus.WithFields(logrus.Fields{
				"line":  parseErr.Line,
				"value": parseErr.Value,
			}).Debug("dataset: data inválida, ano e mês ficarão nulos")
		}

		amount, parseErr := parseAmount(line, field(ColumnAmount))
		if parseErr != nil {
			report.InvalidAmounts++
			logrus.WithFields(logrus.Fields{
				"line":  parseErr.Line,
				"value": parseErr.Value,
			}).Debug("dataset: valor inválido, aporte ficará nulo")
		}

		records = append(records, domain.NewFundingRecord(
			date,
			field(ColumnStartup),
			field(ColumnVertical),
			field(ColumnCity),
			field(ColumnInvestors),
			field(ColumnRound),
			amount,
		))
	}

	report.Rows = len(records)
	return records, report, nil
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	missing := make([]string, 0)
	for _, column := range requiredColumns {
		if _, ok := columns[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingColumns, "%s", strings.Join(missing, ", "))
	}

	return columns, nil
}

// parseDate retorna nil quando o campo está vazio; ParseError só para valores preenchidos inválidos
func parseDate(line int, value string) (*time.Time, *ParseError) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	date, err := utils.ParseLenientDate(value)
	if err != nil {
		return nil, &ParseError{Line: line, Column: ColumnDate, Value: value, Err: err}
	}
	return date, nil
}

func parseAmount(line int, value string) (*float64, *ParseError) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return nil, nil
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil, &ParseError{Line: line, Column: ColumnAmount, Value: value, Err: err}
	}
	return &amount, nil
}
