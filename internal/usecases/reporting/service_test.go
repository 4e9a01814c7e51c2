package reporting

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repoMocks "github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
)

func newServiceWithMocks(t *testing.T) (*service, *repoMocks.MockAccountRepository, *repoMocks.MockDailyMetricRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	accountRepo := repoMocks.NewMockAccountRepository(ctrl)
	dailyMetricRepo := repoMocks.NewMockDailyMetricRepository(ctrl)

	svc := &service{
		accountRepo:     accountRepo,
		dailyMetricRepo: dailyMetricRepo,
		nowFunc: func() time.Time {
			return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
		},
	}

	return svc, accountRepo, dailyMetricRepo
}

func reportFixtures() []*domain.DailyMetric {
	return []*domain.DailyMetric{
		{CampaignID: "2001", CampaignName: "Brand", CampaignType: "SEARCH",
			Date: "2026-08-30", Impressions: 1000, Clicks: 50, Ctr: 5, Cost: 25},
		{CampaignID: "2002", CampaignName: "Display", CampaignType: "DISPLAY",
			Date: "2026-08-30", Impressions: 500, Clicks: 0, Ctr: 0, Cost: 0},
		{CampaignID: "2001", CampaignName: "Brand", CampaignType: "SEARCH",
			Date: "2026-08-31", Impressions: 1000, Clicks: 50, Ctr: 5, Cost: 25},
	}
}

func TestGenerateReport(t *testing.T) {
	svc, accountRepo, dailyMetricRepo := newServiceWithMocks(t)

	accountRepo.EXPECT().GetAccountByID(int64(1)).Return(&domain.Account{ID: 1}, nil)
	dailyMetricRepo.EXPECT().
		GetByAccountAndRange(int64(1), "2026-08-01", "2026-08-31").
		Return(reportFixtures(), nil)

	report, err := svc.GenerateReport(context.Background(), 1, 30)

	require.NoError(t, err)
	assert.Equal(t, 30, report.DateRange)
	assert.Equal(t, "2026-08-31T12:00:00Z", report.GeneratedAt)

	require.Len(t, report.DailyPerformance, 2)
	day := report.DailyPerformance[0]
	assert.Equal(t, "2026-08-30", day.Date)
	assert.Equal(t, int64(1500), day.Impressions)
	assert.Equal(t, int64(50), day.Clicks)
	assert.Equal(t, "3.33", day.Ctr)
	assert.Equal(t, "0.50", day.Cpc)

	require.Len(t, report.Campaigns, 2)
	brand := report.Campaigns[0]
	assert.Equal(t, "Brand", brand.Name)
	assert.Equal(t, "SEARCH", brand.Type)
	assert.Equal(t, int64(2000), brand.Impressions)
	assert.Equal(t, 50.0, brand.Cost)
	assert.Equal(t, "5.00", brand.Ctr)
	assert.Equal(t, "0.50", brand.Cpc)

	summary := report.Summary
	assert.Equal(t, int64(2500), summary.TotalImpressions)
	assert.Equal(t, int64(100), summary.TotalClicks)
	assert.Equal(t, "50.00", summary.TotalCost)
	assert.Equal(t, "2.50", summary.AverageCTR, "mean over all campaigns, zero-ctr included")
	assert.Equal(t, "0.50", summary.AverageCPC, "mean over spending campaigns only")
}

func TestGenerateReportUnknownAccount(t *testing.T) {
	svc, accountRepo, _ := newServiceWithMocks(t)

	accountRepo.EXPECT().GetAccountByID(int64(9)).Return(nil, nil)

	report, err := svc.GenerateReport(context.Background(), 9, 30)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, insighting.ErrAccountNotFound)
}

func TestGenerateReportEmptyRange(t *testing.T) {
	svc, accountRepo, dailyMetricRepo := newServiceWithMocks(t)

	accountRepo.EXPECT().GetAccountByID(int64(1)).Return(&domain.Account{ID: 1}, nil)
	dailyMetricRepo.EXPECT().
		GetByAccountAndRange(int64(1), "2026-08-24", "2026-08-31").
		Return([]*domain.DailyMetric{}, nil)

	report, err := svc.GenerateReport(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Empty(t, report.DailyPerformance)
	assert.Empty(t, report.Campaigns)
	assert.Equal(t, "0.00", report.Summary.AverageCTR)
	assert.Equal(t, "0.00", report.Summary.AverageCPC)
}

func TestExportReportCSV(t *testing.T) {
	svc, accountRepo, dailyMetricRepo := newServiceWithMocks(t)

	accountRepo.EXPECT().GetAccountByID(int64(1)).Return(&domain.Account{ID: 1}, nil)
	dailyMetricRepo.EXPECT().
		GetByAccountAndRange(int64(1), "2026-08-01", "2026-08-31").
		Return(reportFixtures(), nil)

	result, err := svc.ExportReport(context.Background(), 1, 30, FormatCSV)

	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Filename, "report_1_2026-08-31_"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	records, err := csv.NewReader(strings.NewReader(string(result.Body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "date", records[0][0])
	assert.Equal(t, []string{
		"2026-08-30", "2001", "Brand", "SEARCH", "1000", "50", "5.00", "25.00", "0.00",
	}, records[1])
}

func TestExportReportJSON(t *testing.T) {
	svc, accountRepo, dailyMetricRepo := newServiceWithMocks(t)

	accountRepo.EXPECT().GetAccountByID(int64(1)).Return(&domain.Account{ID: 1}, nil)
	dailyMetricRepo.EXPECT().
		GetByAccountAndRange(int64(1), "2026-08-01", "2026-08-31").
		Return(reportFixtures(), nil)

	result, err := svc.ExportReport(context.Background(), 1, 30, FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, "application/json", result.ContentType)
	assert.Contains(t, string(result.Body), `"exportedAt":"2026-08-31T12:00:00Z"`)
}

func TestExportReportUnsupportedFormat(t *testing.T) {
	svc, _, _ := newServiceWithMocks(t)

	result, err := svc.ExportReport(context.Background(), 1, 30, "xlsx")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
