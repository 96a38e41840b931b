package handler

import (
	"net/http"

	"github.com/vfg2006/funding-dashboard-api/internal/usecases/analyzing"
)

// GetDatasetInfo descreve o snapshot em uso: origem, linhas, versão e inconsistências
func GetDatasetInfo(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := service.GetDatasetInfo()
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, info)
	})
}
