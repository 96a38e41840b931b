// Package exporter gera as planilhas das visões do dashboard
package exporter

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	defaultSheet = "Sheet1"
	dateLayout   = "2006-01-02"
	columnWidth  = 20
)

//go:generate mockgen -source=xlsx.go -destination=mocks/exporter.go -package=mocks

// Exporter grava cada visão como uma pasta de trabalho xlsx
type Exporter interface {
	WriteOverall(w io.Writer, analysis *domain.OverallAnalysis) error
	WriteStartup(w io.Writer, profile *domain.StartupProfile) error
	WriteInvestor(w io.Writer, portfolio *domain.InvestorPortfolio) error
}

type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

func (e *XLSXExporter) WriteOverall(w io.Writer, analysis *domain.OverallAnalysis) error {
	if analysis == nil {
		return errors.New("exporter: visão geral vazia")
	}

	summary := analysis.Summary
	sheets := []sheet{
		{
			name:    "Resumo",
			headers: []string{"Métrica", "Valor", "Delta"},
			rows: [][]any{
				{"Total investido", summary.TotalFunding, summary.TotalDelta},
				{"Maior aporte", summary.MaxFunding, summary.MaxDelta},
				{"Aporte médio", summary.AverageFunding, summary.AverageDelta},
				{"Startups financiadas", summary.StartupCount, nil},
			},
		},
		{
			name:    "Top startups",
			headers: []string{"Startup", "Total"},
			rows:    startupAmountRows(summary.TopStartups),
		},
		{
			name:    "Mês a mês",
			headers: []string{"Período", "Ano", "Mês", analysis.Metric},
			rows:    periodRows(analysis.MonthOverMonth),
		},
		{
			name:    "Por ano",
			headers: []string{"Ano", "Total"},
			rows:    yearRows(analysis.YearlyFunding),
		},
	}

	return writeWorkbook(w, sheets)
}

func (e *XLSXExporter) WriteStartup(w io.Writer, profile *domain.StartupProfile) error {
	if profile == nil {
		return errors.New("exporter: perfil vazio")
	}

	comparison := profile.Comparison
	sheets := []sheet{
		{
			name:    "Perfil",
			headers: []string{"Campo", "Valor"},
			rows: [][]any{
				{"Startup", profile.Name},
				{"Total captado", profile.TotalFunding},
				{"Rodadas", profile.RoundCount},
				{"Maior rodada", profile.MaxRound},
				{"Rodada média", profile.AverageRound},
				{"Setor", profile.Industry},
				{"Sede", profile.Headquarters},
				{"Última rodada", profile.LatestRound},
				{"Crescimento", profile.GrowthRate},
				{"Tendência", profile.ValuationTrend},
				{"Anos ativos", profile.ActiveYears},
				{"Percentil no setor", comparison.Percentile},
				{"Média do setor", comparison.AverageFunding},
				{"Mediana do setor", comparison.MedianFunding},
			},
		},
		{
			name:    "Rodadas",
			headers: []string{"Data", "Rodada", "Setor", "Cidade", "Investidores", "Valor"},
			rows:    recordRows(profile.Timeline),
		},
		{
			name:    "Acumulado",
			headers: []string{"Data", "Valor", "Acumulado"},
			rows:    cumulativeRows(profile.CumulativeFunding),
		},
		{
			name:    "Investidores",
			headers: []string{"Investidor", "Participações"},
			rows:    investorCountRows(profile.TopInvestors),
		},
		{
			name:    "Por rodada",
			headers: []string{"Rodada", "Total"},
			rows:    groupRows(profile.FundingByRound),
		},
	}

	return writeWorkbook(w, sheets)
}

func (e *XLSXExporter) WriteInvestor(w io.Writer, portfolio *domain.InvestorPortfolio) error {
	if portfolio == nil {
		return errors.New("exporter: carteira vazia")
	}

	sheets := []sheet{
		{
			name:    "Recentes",
			headers: []string{"Data", "Startup", "Setor", "Cidade", "Rodada", "Valor"},
			rows:    recentRows(portfolio.RecentInvestments),
		},
		{
			name:    "Maiores",
			headers: []string{"Startup", "Total"},
			rows:    startupAmountRows(portfolio.BiggestInvestments),
		},
		{
			name:    "Por setor",
			headers: []string{"Setor", "Total"},
			rows:    groupRows(portfolio.ByVertical),
		},
		{
			name:    "Por rodada",
			headers: []string{"Rodada", "Total"},
			rows:    groupRows(portfolio.ByRound),
		},
		{
			name:    "Por cidade",
			headers: []string{"Cidade", "Total"},
			rows:    groupRows(portfolio.ByCity),
		},
		{
			name:    "Por ano",
			headers: []string{"Ano", "Total"},
			rows:    yearRows(portfolio.ByYear),
		},
	}

	return writeWorkbook(w, sheets)
}

// writeWorkbook cria uma aba por sheet, na ordem recebida, e grava o arquivo em w
func writeWorkbook(w io.Writer, sheets []sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.name); err != nil {
				return errors.Wrapf(err, "exporter: erro ao renomear aba %s", s.name)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return errors.Wrapf(err, "exporter: erro ao criar aba %s", s.name)
		}

		if err := writeSheet(f, s); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "exporter: erro ao gravar planilha")
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet) error {
	header := make([]any, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return errors.Wrapf(err, "exporter: erro ao gravar cabeçalho da aba %s", s.name)
	}

	lastColumn, err := excelize.ColumnNumberToName(len(s.headers))
	if err != nil {
		return errors.Wrap(err, "exporter: coluna inválida")
	}
	if err := f.SetColWidth(s.name, "A", lastColumn, columnWidth); err != nil {
		return errors.Wrapf(err, "exporter: erro ao ajustar colunas da aba %s", s.name)
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "exporter: célula inválida")
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return errors.Wrapf(err, "exporter: erro ao gravar linha %d da aba %s", i+2, s.name)
		}
	}

	return nil
}

func startupAmountRows(values []domain.StartupAmount) [][]any {
	rows := make([][]any, 0, len(values))
	for _, v := range values {
		rows = append(rows, []any{v.Startup, v.Amount})
	}
	return rows
}

func periodRows(values []domain.PeriodValue) [][]any {
	rows := make([][]any, 0, len(values))
	for _, v := range values {
		rows = append(rows, []any{v.Label, v.Year, v.Month, v.Value})
	}
	return rows
}

func yearRows(values []domain.YearValue) [][]any {
	rows := make([][]any, 0, len(values))
	for _, v := range values {
		rows = append(rows, []any{v.Year, v.Amount})
	}
	return rows
}

func groupRows(values []domain.GroupAmount) [][]any {
	rows := make([][]any, 0, len(values))
	for _, v := range values {
		rows = append(rows, []any{v.Key, v.Amount})
	}
	return rows
}

func investorCountRows(values []domain.InvestorCount) [][]any {
	rows := make([][]any, 0, len(values))
	for _, v := range values {
		rows = append(rows, []any{v.Investor, v.Count})
	}
	return rows
}

func cumulativeRows(values []domain.CumulativePoint) [][]any {
	rows := make([][]any, 0, len(values))
	for _, v := range values {
		rows = append(rows, []any{formatDate(v.Date), v.Amount, v.Cumulative})
	}
	return rows
}

func recordRows(records []domain.FundingRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{formatDate(r.Date), r.Round, r.Vertical, r.City, r.Investors, amountCell(r.Amount)})
	}
	return rows
}

func recentRows(records []domain.FundingRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{formatDate(r.Date), r.Startup, r.Vertical, r.City, r.Round, amountCell(r.Amount)})
	}
	return rows
}

// Células de valores nulos ficam vazias
func amountCell(amount *float64) any {
	if amount == nil {
		return nil
	}
	return *amount
}

func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(dateLayout)
}
