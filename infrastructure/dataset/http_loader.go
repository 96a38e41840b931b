package dataset

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

const httpLoaderTimeout = 45 * time.Second

// HTTPLoader baixa o CSV de uma URL remota (ex.: bucket ou serviço de arquivos)
type HTTPLoader struct {
	httpClient *http.Client
	url        string
	token      string
}

// NewHTTPLoader cria um loader para a URL informada. token vazio dispensa o header Authorization.
func NewHTTPLoader(url, token string) *HTTPLoader {
	return &HTTPLoader{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		url:   url,
		token: token,
	}
}

func (l *HTTPLoader) Load(ctx context.Context) ([]domain.FundingRecord, *domain.LoadReport, error) {
	ctx, cancel := context.WithTimeout(ctx, httpLoaderTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao criar a requisição do dataset")
	}

	if l.token != "" {
		req.Header.Set("Authorization", "Bearer "+l.token)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao baixar o dataset")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.Errorf("download do dataset falhou com status: %s", resp.Status)
	}

	records, report, err := ReadCSV(ctx, resp.Body)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao ler o dataset de %s", l.url)
	}

	logrus.WithFields(logrus.Fields{
		"url":  l.url,
		"rows": report.Rows,
	}).Debug("dataset: download concluído")

	report.Source = domain.DatasetSourceHTTP
	report.Location = l.url
	return records, report, nil
}
