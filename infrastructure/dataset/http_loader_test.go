package dataset_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

func TestHTTPLoader_Load(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		handler  http.HandlerFunc
		validate func(t *testing.T, records []domain.FundingRecord, report *domain.LoadReport, err error)
	}{
		{
			name:  "Sucesso - envia token e interpreta o CSV",
			token: "secret",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer secret" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				_, _ = w.Write([]byte("date,startup,vertical,city,investors,round,amount\n2020-01-01,X,Tech,Pune,A,Seed,10\n"))
			},
			validate: func(t *testing.T, records []domain.FundingRecord, report *domain.LoadReport, err error) {
				require.NoError(t, err)
				require.Len(t, records, 1)
				assert.Equal(t, "X", records[0].Startup)
				assert.Equal(t, domain.DatasetSourceHTTP, report.Source)
				assert.Equal(t, 1, report.Rows)
			},
		},
		{
			name: "Sem token - header Authorization ausente",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte("date,startup,vertical,city,investors,round,amount\n"))
			},
			validate: func(t *testing.T, records []domain.FundingRecord, report *domain.LoadReport, err error) {
				require.NoError(t, err)
				assert.Empty(t, records)
			},
		},
		{
			name: "Erro - status diferente de 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			validate: func(t *testing.T, records []domain.FundingRecord, report *domain.LoadReport, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "404")
				assert.Nil(t, report)
			},
		},
		{
			name: "Erro - CSV sem colunas obrigatórias",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("startup,amount\nX,10\n"))
			},
			validate: func(t *testing.T, records []domain.FundingRecord, report *domain.LoadReport, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, dataset.ErrMissingColumns)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			records, report, err := dataset.NewHTTPLoader(server.URL, tt.token).Load(context.Background())
			tt.validate(t, records, report, err)
		})
	}
}
