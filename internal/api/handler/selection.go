package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/funding-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/funding-dashboard-api/pkg/log"
)

// SelectionRequest identifica a startup ou o investidor escolhido na lista de seleção.
// O nome vem da query string porque valores do dataset podem conter "/".
type SelectionRequest struct {
	Name string `validate:"required"`
}

func parseSelectionRequest(w http.ResponseWriter, r *http.Request, missingMessage string) (*SelectionRequest, bool) {
	req := &SelectionRequest{Name: r.URL.Query().Get("name")}
	if err := validate.Struct(req); err != nil {
		log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("handler: parâmetro name ausente")

		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, missingMessage, validationDetails(err))
		return nil, false
	}
	return req, true
}

// attachmentName evita separadores de caminho no nome do arquivo exportado
func attachmentName(prefix, name string) string {
	return prefix + "-" + strings.NewReplacer("/", "-", "\\", "-").Replace(name)
}
