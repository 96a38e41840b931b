package dataset

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funding-dashboard-api/internal/analytics"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
	"github.com/vfg2006/funding-dashboard-api/pkg/utils"
)

// Snapshot é uma versão imutável do dataset carregado
type Snapshot struct {
	Table *analytics.Table
	Info  domain.DatasetInfo
}

//go:generate mockgen -source=store.go -destination=mocks/reloader.go -package=mocks

// Reloader recarrega o dataset a partir da fonte configurada
type Reloader interface {
	Reload(ctx context.Context) (*Snapshot, error)
}

// Store mantém o snapshot atual. Leituras não bloqueiam; recargas são serializadas
// e só substituem o snapshot quando a carga termina sem erro.
type Store struct {
	loader  Loader
	current atomic.Pointer[Snapshot]
	mu      sync.Mutex
}

func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	startTime := time.Now()

	records, report, err := s.loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar o dataset")
	}
	if report == nil {
		report = &domain.LoadReport{Rows: len(records)}
	}

	version, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar versão do dataset")
	}

	snapshot := &Snapshot{
		Table: analytics.NewTable(records),
		Info: domain.DatasetInfo{
			LoadReport: *report,
			Version:    version,
			LoadedAt:   time.Now(),
		},
	}
	s.current.Store(snapshot)

	logrus.WithFields(logrus.Fields{
		"source":          report.Source,
		"location":        report.Location,
		"rows":            report.Rows,
		"invalid_dates":   report.InvalidDates,
		"invalid_amounts": report.InvalidAmounts,
		"version":         version,
		"elapsed":         time.Since(startTime).String(),
	}).Info("Dataset carregado")

	return snapshot, nil
}

// Current retorna o snapshot em uso
func (s *Store) Current() (*Snapshot, error) {
	snapshot := s.current.Load()
	if snapshot == nil {
		return nil, ErrDatasetNotLoaded
	}
	return snapshot, nil
}
