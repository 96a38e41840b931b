package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/funding-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/funding-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/funding-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// writeJSON serializa a resposta com status 200
func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	writeJSONStatus(w, r, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: falha ao serializar resposta")
	}
}

// validationDetails transforma os erros do validator em um mapa campo -> regra
func validationDetails(err error) map[string]string {
	details := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		details["error"] = err.Error()
		return details
	}

	for _, fieldErr := range validationErrors {
		details[strings.ToLower(fieldErr.Field())] = fieldErr.Tag()
	}
	return details
}

// handleAnalysisError converte os erros do caso de uso em respostas padronizadas
func handleAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		if analyzing.IsNotFoundError(err) {
			logger.WithError(err).Info("handler: filtro sem linhas correspondentes")
		} else {
			logger.WithError(err).Warn("handler: erro ao calcular análise")
		}
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Err.Error(), map[string]any{
			"details": analysisErr.Details,
		})
		return
	}

	logger.WithError(err).Error("handler: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao calcular análise", nil)
}
