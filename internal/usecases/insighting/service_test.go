package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	integratorMocks "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/mocks"
	repoMocks "github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

type serviceMocks struct {
	accountRepo     *repoMocks.MockAccountRepository
	campaignRepo    *repoMocks.MockCampaignRepository
	dailyMetricRepo *repoMocks.MockDailyMetricRepository
	summaryRepo     *repoMocks.MockAccountSummaryRepository
	integrator      *integratorMocks.MockIntegrator
}

func newServiceWithMocks(t *testing.T) (*service, *serviceMocks) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		accountRepo:     repoMocks.NewMockAccountRepository(ctrl),
		campaignRepo:    repoMocks.NewMockCampaignRepository(ctrl),
		dailyMetricRepo: repoMocks.NewMockDailyMetricRepository(ctrl),
		summaryRepo:     repoMocks.NewMockAccountSummaryRepository(ctrl),
		integrator:      integratorMocks.NewMockIntegrator(ctrl),
	}

	svc := &service{
		accountRepo:     m.accountRepo,
		campaignRepo:    m.campaignRepo,
		dailyMetricRepo: m.dailyMetricRepo,
		summaryRepo:     m.summaryRepo,
		integrator:      m.integrator,
		nowFunc: func() time.Time {
			return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
		},
	}

	return svc, m
}

func storedAccount() *domain.Account {
	return &domain.Account{
		ID:          1,
		GoogleAdsID: "1234567890",
		Name:        "Acme Corp",
	}
}

func TestGetCampaignsUnknownAccount(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	m.accountRepo.EXPECT().GetAccountByID(int64(42)).Return(nil, nil)

	response, err := svc.GetCampaigns(context.Background(), 42, 30, false)

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGetCampaignsServesCacheWhenPopulated(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	cached := []*domain.Campaign{{ID: "2001", Name: "Brand - Search"}}

	m.accountRepo.EXPECT().GetAccountByID(int64(1)).Return(storedAccount(), nil)
	m.campaignRepo.EXPECT().ListByAccountID(int64(1)).Return(cached, nil)

	response, err := svc.GetCampaigns(context.Background(), 1, 30, false)

	require.NoError(t, err)
	assert.Equal(t, cached, response.Campaigns)
	assert.Equal(t, "Acme Corp", response.Account)
}

func TestGetCampaignsCacheMissFetchesAndPersists(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	rows := []domain.MetricRow{
		{Key: "2001", Name: "Brand - Search", Status: "ENABLED", Type: "SEARCH",
			Date: "2026-08-30", Impressions: 1000, Clicks: 50, CostMicros: 25_000_000},
		{Key: "2001", Name: "Brand - Search", Status: "ENABLED", Type: "SEARCH",
			Date: "2026-08-31", Impressions: 1000, Clicks: 50, CostMicros: 25_000_000},
	}

	m.accountRepo.EXPECT().GetAccountByID(int64(1)).Return(storedAccount(), nil)
	m.campaignRepo.EXPECT().ListByAccountID(int64(1)).Return(nil, nil)
	m.integrator.EXPECT().GetCampaignRows(gomock.Any(), "1234567890", 30).Return(rows, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(int64(1), gomock.Any()).Return(nil)
	m.dailyMetricRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

	response, err := svc.GetCampaigns(context.Background(), 1, 30, false)

	require.NoError(t, err)
	require.Len(t, response.Campaigns, 1)

	campaign := response.Campaigns[0]
	assert.Equal(t, "2001", campaign.ID)
	assert.Equal(t, int64(2000), campaign.Metrics.Impressions)
	assert.Equal(t, int64(100), campaign.Metrics.Clicks)
	assert.Equal(t, 50.0, campaign.Metrics.Cost)
	assert.Equal(t, "5.00", campaign.Metrics.Ctr)
	assert.Equal(t, "0.50", campaign.Metrics.Cpc)
	require.Len(t, campaign.DailyData, 2)
}

func TestGetCampaignsRefreshBypassesCache(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	rows := []domain.MetricRow{
		{Key: "2001", Name: "Brand - Search", Date: "2026-08-31", Impressions: 10, Clicks: 1},
	}

	m.accountRepo.EXPECT().GetAccountByID(int64(1)).Return(storedAccount(), nil)
	m.integrator.EXPECT().GetCampaignRows(gomock.Any(), "1234567890", 7).Return(rows, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(int64(1), gomock.Any()).Return(nil)
	m.dailyMetricRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	response, err := svc.GetCampaigns(context.Background(), 1, 7, true)

	require.NoError(t, err)
	require.Len(t, response.Campaigns, 1)
}

func TestGetCampaignsFallsBackWhenCacheReadFails(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	rows := []domain.MetricRow{
		{Key: "2001", Name: "Brand - Search", Date: "2026-08-31", Impressions: 10, Clicks: 1},
	}

	m.accountRepo.EXPECT().GetAccountByID(int64(1)).Return(storedAccount(), nil)
	m.campaignRepo.EXPECT().ListByAccountID(int64(1)).
		Return(nil, errors.New("connection refused"))
	m.integrator.EXPECT().GetCampaignRows(gomock.Any(), "1234567890", 30).Return(rows, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(int64(1), gomock.Any()).Return(nil)
	m.dailyMetricRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	response, err := svc.GetCampaigns(context.Background(), 1, 30, false)

	require.NoError(t, err, "an unreadable cache must not break a served response")
	require.Len(t, response.Campaigns, 1)
	assert.Equal(t, "2001", response.Campaigns[0].ID)
}

func TestGetCampaignsSurvivesCacheWriteFailure(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	rows := []domain.MetricRow{
		{Key: "2001", Name: "Brand - Search", Date: "2026-08-31", Impressions: 10, Clicks: 1},
	}

	m.accountRepo.EXPECT().GetAccountByID(int64(1)).Return(storedAccount(), nil)
	m.campaignRepo.EXPECT().ListByAccountID(int64(1)).Return(nil, nil)
	m.integrator.EXPECT().GetCampaignRows(gomock.Any(), "1234567890", 30).Return(rows, nil)
	m.campaignRepo.EXPECT().SaveOrUpdate(int64(1), gomock.Any()).
		Return(errors.New("connection reset"))
	m.dailyMetricRepo.EXPECT().SaveOrUpdate(gomock.Any()).
		Return(errors.New("connection reset"))

	response, err := svc.GetCampaigns(context.Background(), 1, 30, false)

	require.NoError(t, err, "stale cache must not break a served response")
	require.Len(t, response.Campaigns, 1)
}

func TestGetAccountSummaryAggregatesUpstreamRows(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	rows := []domain.MetricRow{
		{Key: "account", Date: "2026-08-30", Impressions: 600, Clicks: 30, CostMicros: 15_000_000, Conversions: 2},
		{Key: "account", Date: "2026-08-31", Impressions: 400, Clicks: 20, CostMicros: 10_000_000, Conversions: 1},
	}

	m.accountRepo.EXPECT().GetAccountByID(int64(1)).Return(storedAccount(), nil)
	m.integrator.EXPECT().GetAccountRows(gomock.Any(), "1234567890", 30).Return(rows, nil)
	m.summaryRepo.EXPECT().SaveOrUpdate(int64(1), 30, gomock.Any()).Return(nil)

	response, err := svc.GetAccountSummary(context.Background(), 1, 30)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), response.Summary.Impressions)
	assert.Equal(t, int64(50), response.Summary.Clicks)
	assert.Equal(t, "25.00", response.Summary.Cost)
	assert.Equal(t, "5.00", response.Summary.Ctr)
	assert.Equal(t, "0.50", response.Summary.Cpc)
	assert.Equal(t, 3.0, response.Summary.Conversions)
	require.Len(t, response.DailyData, 2)
}

func TestGetAccountSummarySurvivesSnapshotWriteFailure(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	m.accountRepo.EXPECT().GetAccountByID(int64(1)).Return(storedAccount(), nil)
	m.integrator.EXPECT().GetAccountRows(gomock.Any(), "1234567890", 30).
		Return([]domain.MetricRow{}, nil)
	m.summaryRepo.EXPECT().SaveOrUpdate(int64(1), 30, gomock.Any()).
		Return(errors.New("connection reset"))

	response, err := svc.GetAccountSummary(context.Background(), 1, 30)

	require.NoError(t, err)
	assert.Equal(t, "0.00", response.Summary.Ctr)
	assert.Equal(t, "0.00", response.Summary.Cpc)
}

func TestGetCampaignPerformanceUsesInclusiveRange(t *testing.T) {
	svc, m := newServiceWithMocks(t)

	stored := []*domain.DailyMetric{{CampaignID: "2001", Date: "2026-08-30"}}

	m.accountRepo.EXPECT().GetAccountByID(int64(1)).Return(storedAccount(), nil)
	m.dailyMetricRepo.EXPECT().
		GetByCampaignAndRange(int64(1), "2001", "2026-08-24", "2026-08-31").
		Return(stored, nil)

	response, err := svc.GetCampaignPerformance(context.Background(), 1, "2001", 7)

	require.NoError(t, err)
	assert.Equal(t, stored, response.Performance)
}
