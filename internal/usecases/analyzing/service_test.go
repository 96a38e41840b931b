package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funding-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/funding-dashboard-api/internal/analytics"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
	"github.com/vfg2006/funding-dashboard-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/funding-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func row(startup, vertical, investors, round, date string, value float64) domain.FundingRecord {
	parsed, _ := time.Parse("2006-01-02", date)
	return domain.NewFundingRecord(&parsed, startup, vertical, "Bangalore", investors, round, &value)
}

func snapshot() *dataset.Snapshot {
	return &dataset.Snapshot{
		Table: analytics.NewTable([]domain.FundingRecord{
			row("X", "Tech", "Acme Capital, Beta Fund", "Seed", "2020-03-01", 100),
			row("Y", "Tech", "Gamma", "Seed", "2020-04-01", 50),
			row("X", "Tech", "Beta Fund", "Series A", "2021-06-01", 300),
		}),
		Info: domain.DatasetInfo{
			LoadReport: domain.LoadReport{Source: domain.DatasetSourceCSV, Rows: 3},
			Version:    "v1",
		},
	}
}

func analysisCode(t *testing.T, err error) string {
	t.Helper()
	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	return analysisErr.Code
}

func TestService_GetOverall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockSnapshotProvider(ctrl)
	service := NewService(mockProvider)

	tests := []struct {
		name     string
		metric   string
		setup    func()
		validate func(t *testing.T, result *domain.OverallAnalysis, err error)
	}{
		{
			name:   "Métrica vazia usa Total",
			metric: "",
			setup: func() {
				mockProvider.EXPECT().Current().Return(snapshot(), nil)
			},
			validate: func(t *testing.T, result *domain.OverallAnalysis, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.MetricTotal, result.Metric)
				assert.Equal(t, 450.0, result.Summary.TotalFunding)
				assert.Equal(t, 2, result.Summary.StartupCount)
				assert.Len(t, result.MonthOverMonth, 3)
				assert.Equal(t, []domain.YearValue{{Year: 2020, Amount: 150}, {Year: 2021, Amount: 300}}, result.YearlyFunding)
			},
		},
		{
			name:   "Métrica Count conta as rodadas",
			metric: domain.MetricCount,
			setup: func() {
				mockProvider.EXPECT().Current().Return(snapshot(), nil)
			},
			validate: func(t *testing.T, result *domain.OverallAnalysis, err error) {
				require.NoError(t, err)
				for _, point := range result.MonthOverMonth {
					assert.Equal(t, 1.0, point.Value)
				}
			},
		},
		{
			name:   "Métrica desconhecida",
			metric: "Average",
			setup: func() {
				mockProvider.EXPECT().Current().Return(snapshot(), nil)
			},
			validate: func(t *testing.T, result *domain.OverallAnalysis, err error) {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrInvalidMetric)
				assert.Equal(t, apiErrors.ErrInvalidRequest, analysisCode(t, err))
			},
		},
		{
			name:   "Dataset ainda não carregado",
			metric: domain.MetricTotal,
			setup: func() {
				mockProvider.EXPECT().Current().Return(nil, dataset.ErrDatasetNotLoaded)
			},
			validate: func(t *testing.T, result *domain.OverallAnalysis, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrDatasetUnavailable)
				assert.Equal(t, apiErrors.ErrDatasetUnavailable, analysisCode(t, err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			result, err := service.GetOverall(tt.metric)
			tt.validate(t, result, err)
		})
	}
}

func TestService_GetStartup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockSnapshotProvider(ctrl)
	service := NewService(mockProvider)

	tests := []struct {
		name     string
		startup  string
		validate func(t *testing.T, result *domain.StartupProfile, err error)
	}{
		{
			name:    "Startup existente com percentuais arredondados",
			startup: "X",
			validate: func(t *testing.T, result *domain.StartupProfile, err error) {
				require.NoError(t, err)
				assert.Equal(t, 400.0, result.TotalFunding)
				assert.Equal(t, 2, result.RoundCount)
				assert.Equal(t, 2.0, result.GrowthRate)
				assert.Equal(t, 50.0, result.Comparison.Percentile)
			},
		},
		{
			name:    "Startup inexistente",
			startup: "Nope",
			validate: func(t *testing.T, result *domain.StartupProfile, err error) {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.True(t, IsNotFoundError(err))
				assert.Equal(t, apiErrors.ErrStartupNotFound, analysisCode(t, err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProvider.EXPECT().Current().Return(snapshot(), nil)
			result, err := service.GetStartup(tt.startup)
			tt.validate(t, result, err)
		})
	}
}

func TestService_GetInvestor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockSnapshotProvider(ctrl)
	service := NewService(mockProvider)

	mockProvider.EXPECT().Current().Return(snapshot(), nil).Times(2)

	portfolio, err := service.GetInvestor("Beta Fund")
	require.NoError(t, err)
	assert.Equal(t, []domain.StartupAmount{{Startup: "X", Amount: 400}}, portfolio.BiggestInvestments)

	_, err = service.GetInvestor("Sequoia")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvestorNotFound)
	assert.Equal(t, apiErrors.ErrInvestorNotFound, analysisCode(t, err))
}

func TestService_SelectionListsAndInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockSnapshotProvider(ctrl)
	service := NewService(mockProvider)

	mockProvider.EXPECT().Current().Return(snapshot(), nil).Times(3)

	startups, err := service.ListStartups()
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, startups)

	investors, err := service.ListInvestors()
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Capital", "Beta Fund", "Gamma"}, investors)

	info, err := service.GetDatasetInfo()
	require.NoError(t, err)
	assert.Equal(t, "v1", info.Version)
	assert.Equal(t, 3, info.Rows)
}

func TestService_DatasetUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockSnapshotProvider(ctrl)
	service := NewService(mockProvider)

	mockProvider.EXPECT().Current().Return(nil, errors.New("sem snapshot")).AnyTimes()

	_, err := service.ListStartups()
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
	_, err = service.ListInvestors()
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
	_, err = service.GetStartup("X")
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
	_, err = service.GetInvestor("Acme")
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
	_, err = service.GetDatasetInfo()
	assert.ErrorIs(t, err, ErrDatasetUnavailable)
}
