package handler

import (
	"net/http"

	"github.com/vfg2006/funding-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/funding-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/funding-dashboard-api/pkg/log"
)

// OverallRequest são os parâmetros aceitos pela visão geral
type OverallRequest struct {
	Metric string `validate:"omitempty,oneof=Total Count"`
}

func parseOverallRequest(w http.ResponseWriter, r *http.Request) (*OverallRequest, bool) {
	req := &OverallRequest{Metric: r.URL.Query().Get("metric")}
	if err := validate.Struct(req); err != nil {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"metric": req.Metric,
			"error":  err.Error(),
		}).Warn("overall: parâmetro metric inválido")

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Métrica deve ser Total ou Count", validationDetails(err))
		return nil, false
	}
	return req, true
}

// GetOverall retorna resumo do mercado, série mês a mês e captação anual
func GetOverall(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := parseOverallRequest(w, r)
		if !ok {
			return
		}

		logger.WithField("metric", req.Metric).Info("overall: calculando visão geral")

		analysis, err := service.GetOverall(req.Metric)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, analysis)
	})
}
