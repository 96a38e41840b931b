package handler

import (
	"net/http"

	"github.com/vfg2006/funding-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/funding-dashboard-api/pkg/log"
)

func ListInvestors(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		investors, err := service.ListInvestors()
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, map[string]any{
			"investors": investors,
			"total":     len(investors),
		})
	})
}

// GetInvestor retorna a carteira do investidor informado em ?name=
func GetInvestor(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := parseSelectionRequest(w, r, "Nome do investidor não informado")
		if !ok {
			return
		}
		name := req.Name

		logger.WithField("investor", name).Info("investor: montando carteira")

		portfolio, err := service.GetInvestor(name)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, portfolio)
	})
}
