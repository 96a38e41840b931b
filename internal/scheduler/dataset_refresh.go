package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/funding-dashboard-api/internal/config"
)

// DatasetRefreshConfig representa a configuração do agendador de recarga do dataset
type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// DatasetRefreshService agenda e executa a recarga do dataset a partir da fonte configurada
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DatasetRefreshConfig
	reloader            dataset.Reloader
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastVersion         string
	lastError           string
}

// NewDatasetRefreshService cria uma nova instância do serviço de recarga do dataset
func NewDatasetRefreshService(reloader dataset.Reloader, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		SyncEnabled:  appConfig.DatasetRefresh.Enabled,
		Timeout:      5 * time.Minute,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		reloader:  reloader,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDataset recarrega o dataset; execuções concorrentes são ignoradas
func (s *DatasetRefreshService) refreshDataset(ctx context.Context) {
	if !s.begin() {
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return
	}
	s.run(ctx)
}

func (s *DatasetRefreshService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *DatasetRefreshService) run(ctx context.Context) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	snapshot, err := s.reloader.Reload(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na recarga do dataset, snapshot anterior mantido")
		return
	}

	s.lastError = ""
	s.lastVersion = snapshot.Info.Version
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"rows":     snapshot.Info.Rows,
		"version":  snapshot.Info.Version,
	}).Info("Recarga do dataset concluída")
}

// TriggerManualSync dispara uma recarga em segundo plano. Retorna false quando
// já existe uma recarga em andamento.
func (s *DatasetRefreshService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go s.run(context.Background())
	return true
}

// GetStatus retorna o status atual da recarga
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_version":           s.lastVersion,
		"last_error":             s.lastError,
	}
}
