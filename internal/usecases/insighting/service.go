// Package insighting serves campaign and account metrics, caching
// upstream results in Postgres so repeated dashboard loads do not
// re-query the Google Ads API.
package insighting

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/metrics"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// ErrAccountNotFound is returned when the requested account id has
// never been synced.
var ErrAccountNotFound = errors.New("account not found")

const DefaultDateRangeDays = 30

type Service interface {
	GetCampaigns(ctx context.Context, accountID int64, days int, refresh bool) (*domain.CampaignsResponse, error)
	GetAccountSummary(ctx context.Context, accountID int64, days int) (*domain.AccountSummaryResponse, error)
	GetCampaignPerformance(ctx context.Context, accountID int64, campaignID string, days int) (*domain.PerformanceResponse, error)
}

type service struct {
	accountRepo     repository.AccountRepository
	campaignRepo    repository.CampaignRepository
	dailyMetricRepo repository.DailyMetricRepository
	summaryRepo     repository.AccountSummaryRepository
	integrator      googleads.Integrator
	nowFunc         func() time.Time
}

func NewService(
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	dailyMetricRepo repository.DailyMetricRepository,
	summaryRepo repository.AccountSummaryRepository,
	integrator googleads.Integrator,
) Service {
	return &service{
		accountRepo:     accountRepo,
		campaignRepo:    campaignRepo,
		dailyMetricRepo: dailyMetricRepo,
		summaryRepo:     summaryRepo,
		integrator:      integrator,
		nowFunc:         time.Now,
	}
}

// GetCampaigns answers from the campaign cache unless it is empty,
// unreadable, or the caller asked for a refresh; in all three cases it
// pulls fresh rows upstream and rewrites the cache best-effort. Cache
// failures on either side are logged and the fresh data is served
// anyway.
func (s *service) GetCampaigns(
	ctx context.Context,
	accountID int64,
	days int,
	refresh bool,
) (*domain.CampaignsResponse, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "insighting: loading account")
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if !refresh {
		cached, err := s.campaignRepo.ListByAccountID(accountID)
		if err != nil {
			// A broken cache read must not take the endpoint down;
			// fall through to the upstream fetch.
			log.ForContext(ctx).WithError(err).
				WithField("account_id", accountID).
				Warn("insighting: campaign cache read failed")
			metrics.ObserveCacheRead("error")
		}

		if len(cached) > 0 {
			metrics.ObserveCacheRead("hit")
			return &domain.CampaignsResponse{
				Campaigns: cached,
				Account:   account.Name,
			}, nil
		}

		if err == nil {
			metrics.ObserveCacheRead("miss")
		}
	} else {
		metrics.ObserveCacheRead("bypass")
	}

	rows, err := s.integrator.GetCampaignRows(ctx, account.GoogleAdsID, days)
	if err != nil {
		return nil, errors.Wrap(err, "insighting: fetching campaign metrics")
	}

	campaigns := make([]*domain.Campaign, 0)
	for _, totals := range aggregating.Fold(rows) {
		campaigns = append(campaigns, &domain.Campaign{
			ID:     totals.Key,
			Name:   totals.Name,
			Status: totals.Status,
			Type:   totals.Type,
			Metrics: domain.CampaignMetrics{
				Impressions:      totals.Impressions,
				Clicks:           totals.Clicks,
				Ctr:              totals.Ctr,
				Cost:             totals.Cost,
				Conversions:      totals.Conversions,
				ConversionsValue: totals.ConversionsValue,
				Cpc:              totals.Cpc,
			},
			DailyData: totals.Daily,
		})
	}

	s.cacheCampaigns(ctx, accountID, campaigns, rows)

	return &domain.CampaignsResponse{
		Campaigns: campaigns,
		Account:   account.Name,
	}, nil
}

// cacheCampaigns persists the campaign snapshots and their daily rows.
// Failures must not break the response that was already computed.
func (s *service) cacheCampaigns(
	ctx context.Context,
	accountID int64,
	campaigns []*domain.Campaign,
	rows []domain.MetricRow,
) {
	logger := log.ForContext(ctx)

	for _, campaign := range campaigns {
		if err := s.campaignRepo.SaveOrUpdate(accountID, campaign); err != nil {
			logger.WithError(err).
				WithField("campaign_id", campaign.ID).
				Warn("insighting: campaign cache write failed")
			continue
		}

		if m := metrics.Default; m != nil {
			m.CampaignsRefreshed.Inc()
		}
	}

	for _, row := range rows {
		metric := &domain.DailyMetric{
			AccountID:   accountID,
			CampaignID:  row.Key,
			Date:        row.Date,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Ctr:         row.Ctr,
			Cost:        utils.RoundWithTwoDecimalPlace(row.Cost + utils.MicrosToUnits(row.CostMicros)),
			Conversions: row.Conversions,
		}

		if err := s.dailyMetricRepo.SaveOrUpdate(metric); err != nil {
			logger.WithError(err).
				WithFields(log.Fields{"campaign_id": row.Key, "date": row.Date}).
				Warn("insighting: daily metric write failed")
		}
	}
}

// GetAccountSummary always aggregates fresh upstream rows; the stored
// summary is only a write-through snapshot for other consumers.
func (s *service) GetAccountSummary(
	ctx context.Context,
	accountID int64,
	days int,
) (*domain.AccountSummaryResponse, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "insighting: loading account")
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	rows, err := s.integrator.GetAccountRows(ctx, account.GoogleAdsID, days)
	if err != nil {
		return nil, errors.Wrap(err, "insighting: fetching account metrics")
	}

	totals := aggregating.FoldAll(rows)

	summary := &domain.AccountSummary{
		Impressions:      totals.Impressions,
		Clicks:           totals.Clicks,
		Ctr:              totals.Ctr,
		Cost:             utils.FormatTwoDecimal(totals.Cost),
		Conversions:      totals.Conversions,
		ConversionsValue: utils.FormatTwoDecimal(totals.ConversionsValue),
		Cpc:              totals.Cpc,
	}

	if err := s.summaryRepo.SaveOrUpdate(accountID, days, summary); err != nil {
		log.ForContext(ctx).WithError(err).
			WithField("account_id", accountID).
			Warn("insighting: summary cache write failed")
	}

	return &domain.AccountSummaryResponse{
		Summary:   summary,
		DailyData: totals.Daily,
	}, nil
}

// GetCampaignPerformance reads the persisted daily rows; it never
// queries upstream, so a campaign that was never synced yields an
// empty series.
func (s *service) GetCampaignPerformance(
	ctx context.Context,
	accountID int64,
	campaignID string,
	days int,
) (*domain.PerformanceResponse, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "insighting: loading account")
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	start, end := utils.RangeBounds(days, s.nowFunc())

	performance, err := s.dailyMetricRepo.GetByCampaignAndRange(
		accountID,
		campaignID,
		start.Format(time.DateOnly),
		end.Format(time.DateOnly),
	)
	if err != nil {
		return nil, errors.Wrap(err, "insighting: reading campaign performance")
	}

	return &domain.PerformanceResponse{Performance: performance}, nil
}
