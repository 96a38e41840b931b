package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "Startup não encontrada", code: ErrStartupNotFound, expectedStatus: http.StatusNotFound},
		{name: "Investidor não encontrado", code: ErrInvestorNotFound, expectedStatus: http.StatusNotFound},
		{name: "Dataset indisponível", code: ErrDatasetUnavailable, expectedStatus: http.StatusServiceUnavailable},
		{name: "Requisição inválida", code: ErrInvalidRequest, expectedStatus: http.StatusBadRequest},
		{name: "Sincronização em andamento", code: ErrSchedulerBusy, expectedStatus: http.StatusConflict},
		{name: "Código desconhecido vira erro interno", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("falhou"), ErrExportFailed)
	assert.Equal(t, ErrExportFailed, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)

	apiErr = FromError(nil, ErrExportFailed)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
