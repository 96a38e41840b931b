package handler

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/vfg2006/funding-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/funding-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/funding-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/funding-dashboard-api/pkg/log"
)

// writeAttachment gera a planilha em memória para só enviar cabeçalhos quando não houver erro
func writeAttachment(w http.ResponseWriter, r *http.Request, filename string, write func(io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("export: falha ao gerar planilha")
		apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Erro ao gerar planilha", nil)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename + ".xlsx"}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("export: falha ao enviar planilha")
	}
}

func ExportOverall(service analyzing.Analyzer, xlsx exporter.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseOverallRequest(w, r)
		if !ok {
			return
		}

		analysis, err := service.GetOverall(req.Metric)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeAttachment(w, r, "overall", func(out io.Writer) error {
			return xlsx.WriteOverall(out, analysis)
		})
	})
}

func ExportStartup(service analyzing.Analyzer, xlsx exporter.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseSelectionRequest(w, r, "Nome da startup não informado")
		if !ok {
			return
		}

		profile, err := service.GetStartup(req.Name)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeAttachment(w, r, attachmentName("startup", req.Name), func(out io.Writer) error {
			return xlsx.WriteStartup(out, profile)
		})
	})
}

func ExportInvestor(service analyzing.Analyzer, xlsx exporter.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseSelectionRequest(w, r, "Nome do investidor não informado")
		if !ok {
			return
		}

		portfolio, err := service.GetInvestor(req.Name)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeAttachment(w, r, attachmentName("investor", req.Name), func(out io.Writer) error {
			return xlsx.WriteInvestor(out, portfolio)
		})
	})
}
