package analyzing

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/funding-dashboard-api/internal/analytics"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
	"github.com/vfg2006/funding-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/funding-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// SnapshotProvider fornece o snapshot do dataset em uso
type SnapshotProvider interface {
	Current() (*dataset.Snapshot, error)
}

// Analyzer expõe as três visões do dashboard e as listas de seleção
type Analyzer interface {
	GetOverall(metric string) (*domain.OverallAnalysis, error)
	GetStartup(name string) (*domain.StartupProfile, error)
	GetInvestor(name string) (*domain.InvestorPortfolio, error)
	ListStartups() ([]string, error)
	ListInvestors() ([]string, error)
	GetDatasetInfo() (*domain.DatasetInfo, error)
}

type Service struct {
	provider SnapshotProvider
}

func NewService(provider SnapshotProvider) Analyzer {
	return &Service{
		provider: provider,
	}
}

func (s *Service) table() (*analytics.Table, *dataset.Snapshot, error) {
	snapshot, err := s.provider.Current()
	if err != nil {
		logrus.WithError(err).Warn("analyzing: dataset indisponível")
		return nil, nil, NewAnalysisError(ErrDatasetUnavailable, apiErrors.ErrDatasetUnavailable, "O dataset ainda não foi carregado")
	}
	return snapshot.Table, snapshot, nil
}

// GetOverall monta a visão geral do mercado. Métrica vazia equivale a Total.
func (s *Service) GetOverall(metric string) (*domain.OverallAnalysis, error) {
	if metric == "" {
		metric = domain.MetricTotal
	}

	table, _, err := s.table()
	if err != nil {
		return nil, err
	}

	monthOverMonth, err := analytics.MonthOverMonth(table, metric)
	if err != nil {
		if errors.Is(err, analytics.ErrUnknownMetric) {
			return nil, NewAnalysisError(ErrInvalidMetric, apiErrors.ErrInvalidRequest, "Métrica deve ser Total ou Count")
		}
		return nil, NewAnalysisError(ErrAnalysisUnavailable, apiErrors.ErrInternalServer, err.Error())
	}

	return &domain.OverallAnalysis{
		Summary:        analytics.MarketSummary(table),
		Metric:         metric,
		MonthOverMonth: monthOverMonth,
		YearlyFunding:  analytics.YearlyFunding(table),
	}, nil
}

func (s *Service) GetStartup(name string) (*domain.StartupProfile, error) {
	table, _, err := s.table()
	if err != nil {
		return nil, err
	}

	profile, err := analytics.StartupProfile(table, name)
	if err != nil {
		if analytics.IsNotFound(err) {
			return nil, NewAnalysisError(ErrStartupNotFound, apiErrors.ErrStartupNotFound, name)
		}
		return nil, NewAnalysisError(ErrAnalysisUnavailable, apiErrors.ErrInternalServer, err.Error())
	}

	profile.GrowthRate = utils.RoundWithTwoDecimalPlace(profile.GrowthRate)
	profile.Comparison.Percentile = utils.RoundWithTwoDecimalPlace(profile.Comparison.Percentile)
	profile.Comparison.VsAverage = utils.RoundWithTwoDecimalPlace(profile.Comparison.VsAverage)
	profile.Comparison.VsMedian = utils.RoundWithTwoDecimalPlace(profile.Comparison.VsMedian)

	return &profile, nil
}

func (s *Service) GetInvestor(name string) (*domain.InvestorPortfolio, error) {
	table, _, err := s.table()
	if err != nil {
		return nil, err
	}

	portfolio, err := analytics.InvestorPortfolio(table, name)
	if err != nil {
		if analytics.IsNotFound(err) {
			return nil, NewAnalysisError(ErrInvestorNotFound, apiErrors.ErrInvestorNotFound, name)
		}
		return nil, NewAnalysisError(ErrAnalysisUnavailable, apiErrors.ErrInternalServer, err.Error())
	}

	return &portfolio, nil
}

func (s *Service) ListStartups() ([]string, error) {
	table, _, err := s.table()
	if err != nil {
		return nil, err
	}
	return table.Startups(), nil
}

func (s *Service) ListInvestors() ([]string, error) {
	table, _, err := s.table()
	if err != nil {
		return nil, err
	}
	return table.Investors(), nil
}

func (s *Service) GetDatasetInfo() (*domain.DatasetInfo, error) {
	_, snapshot, err := s.table()
	if err != nil {
		return nil, err
	}

	info := snapshot.Info
	return &info, nil
}
