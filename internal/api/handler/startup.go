package handler

import (
	"net/http"

	"github.com/vfg2006/funding-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/funding-dashboard-api/pkg/log"
)

func ListStartups(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startups, err := service.ListStartups()
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, map[string]any{
			"startups": startups,
			"total":    len(startups),
		})
	})
}

// GetStartup retorna o perfil completo da startup informada em ?name=
func GetStartup(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := parseSelectionRequest(w, r, "Nome da startup não informado")
		if !ok {
			return
		}
		name := req.Name

		logger.WithField("startup", name).Info("startup: montando perfil")

		profile, err := service.GetStartup(name)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, profile)
	})
}
