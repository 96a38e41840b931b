package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/exporter"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/funding-dashboard-api/internal/api"
	"github.com/vfg2006/funding-dashboard-api/internal/config"
	"github.com/vfg2006/funding-dashboard-api/internal/scheduler"
	"github.com/vfg2006/funding-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/funding-dashboard-api/internal/usecases/authenticating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader, closeLoader := datasetLoader(ctx, cfg)
	defer closeLoader()

	store := dataset.NewStore(loader)

	// Sem o snapshot inicial nenhuma visão pode ser servida
	snapshot, err := store.Reload(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset inicial")
	}
	logrus.WithFields(logrus.Fields{
		"source":  snapshot.Info.Source,
		"rows":    snapshot.Info.Rows,
		"version": snapshot.Info.Version,
	}).Info("Dataset inicial carregado")

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar autenticação")
	}

	analyzer := analyzing.NewService(store)
	xlsxExporter := exporter.NewXLSXExporter()

	datasetRefreshService := scheduler.NewDatasetRefreshService(store, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		authenticator,
		xlsxExporter,
		datasetRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// datasetLoader escolhe a origem do dataset conforme DATASET_SOURCE
func datasetLoader(ctx context.Context, cfg *config.Config) (dataset.Loader, func()) {
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		pgConn := pgconn(ctx, cfg.Database)
		repo := repository.NewFundingRoundRepository(pgConn, cfg.Dataset.Table)
		return dataset.NewPostgresLoader(repo, cfg.Dataset.Table), func() { pgConn.Close() }
	case config.DatasetSourceHTTP:
		return dataset.NewHTTPLoader(cfg.Dataset.URL, cfg.Dataset.Token), func() {}
	default:
		return dataset.NewCSVLoader(cfg.Dataset.Path), func() {}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
