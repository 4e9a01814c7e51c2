package googleads

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"

	gadsdomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/metrics"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const campaignQueryTemplate = `
SELECT
  campaign.id,
  campaign.name,
  campaign.status,
  campaign.advertising_channel_type,
  metrics.impressions,
  metrics.clicks,
  metrics.ctr,
  metrics.cost_micros,
  metrics.conversions,
  metrics.conversions_value,
  segments.date
FROM campaign
WHERE segments.date BETWEEN '%s' AND '%s'
  AND campaign.status != 'REMOVED'
ORDER BY segments.date`

const accountQueryTemplate = `
SELECT
  metrics.impressions,
  metrics.clicks,
  metrics.ctr,
  metrics.cost_micros,
  metrics.conversions,
  metrics.conversions_value,
  segments.date
FROM account_performance_view
WHERE segments.date BETWEEN '%s' AND '%s'
ORDER BY segments.date`

const customerQuery = `
SELECT
  customer.id,
  customer.descriptive_name,
  customer.currency_code,
  customer.time_zone,
  customer.status
FROM customer
LIMIT 1`

// Integrator pulls accounts and dated metric rows from the Google Ads
// API. When the reporting credentials are incomplete it serves a
// deterministic placeholder dataset instead of failing every request.
type Integrator interface {
	GetAccountInfo(ctx context.Context, customerID string) (*domain.Account, error)
	GetCampaignRows(ctx context.Context, customerID string, days int) ([]domain.MetricRow, error)
	GetAccountRows(ctx context.Context, customerID string, days int) ([]domain.MetricRow, error)
}

type service struct {
	client  gadsclient.Client
	cfg     *config.Config
	nowFunc func() time.Time
}

func NewService(cfg *config.Config, client gadsclient.Client) Integrator {
	return &service{
		client:  client,
		cfg:     cfg,
		nowFunc: time.Now,
	}
}

func (s *service) GetAccountInfo(ctx context.Context, customerID string) (*domain.Account, error) {
	if !s.cfg.Capabilities.AdsAPI {
		return placeholderAccount(customerID), nil
	}

	results, err := s.client.Search(ctx, customerID, customerQuery)
	if err != nil {
		metrics.ObserveUpstreamQuery("customer", "error")
		return nil, errors.Wrap(err, "googleads: fetching account info")
	}
	metrics.ObserveUpstreamQuery("customer", "ok")

	if len(results) == 0 || results[0].Customer == nil {
		return nil, errors.Errorf("googleads: customer %s returned no data", customerID)
	}

	customer := results[0].Customer

	return &domain.Account{
		GoogleAdsID: customer.ID,
		Name:        customer.DescriptiveName,
		Currency:    customer.CurrencyCode,
		TimeZone:    customer.TimeZone,
		Status:      customer.Status,
	}, nil
}

func (s *service) GetCampaignRows(ctx context.Context, customerID string, days int) ([]domain.MetricRow, error) {
	if !s.cfg.Capabilities.AdsAPI {
		return placeholderCampaignRows(customerID, days, s.nowFunc()), nil
	}

	startDate, endDate := queryBounds(days, s.nowFunc())
	query := fmt.Sprintf(campaignQueryTemplate, startDate, endDate)

	results, err := s.client.Search(ctx, customerID, query)
	if err != nil {
		metrics.ObserveUpstreamQuery("campaign", "error")
		return nil, errors.Wrap(err, "googleads: fetching campaign metrics")
	}
	metrics.ObserveUpstreamQuery("campaign", "ok")

	rows := make([]domain.MetricRow, 0, len(results))
	for _, result := range results {
		if result.Campaign == nil {
			continue
		}

		row := FactoryMetricRow(result)
		row.Key = result.Campaign.ID
		row.Name = result.Campaign.Name
		row.Status = result.Campaign.Status
		row.Type = result.Campaign.AdvertisingChannelType
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *service) GetAccountRows(ctx context.Context, customerID string, days int) ([]domain.MetricRow, error) {
	if !s.cfg.Capabilities.AdsAPI {
		return placeholderAccountRows(customerID, days, s.nowFunc()), nil
	}

	startDate, endDate := queryBounds(days, s.nowFunc())
	query := fmt.Sprintf(accountQueryTemplate, startDate, endDate)

	results, err := s.client.Search(ctx, customerID, query)
	if err != nil {
		metrics.ObserveUpstreamQuery("account", "error")
		return nil, errors.Wrap(err, "googleads: fetching account metrics")
	}
	metrics.ObserveUpstreamQuery("account", "ok")

	rows := make([]domain.MetricRow, 0, len(results))
	for _, result := range results {
		row := FactoryMetricRow(result)
		row.Key = "account"
		rows = append(rows, row)
	}

	return rows, nil
}

// queryBounds renders the inclusive [today-N, today] window in the
// compact form GAQL expects. Returned as a pair for fmt.Sprintf.
func queryBounds(days int, now time.Time) (string, string) {
	start, end := utils.RangeBounds(days, now)
	return start.Format(utils.CompactDate), end.Format(utils.CompactDate)
}

// FactoryMetricRow normalizes one search result into a MetricRow. The
// upstream ctr is a fraction; internally it is kept as a percentage.
func FactoryMetricRow(result *gadsdomain.SearchResult) domain.MetricRow {
	row := domain.MetricRow{}

	if result.Segments != nil {
		row.Date = utils.NormalizeDate(result.Segments.Date)
	}

	if result.Metrics == nil {
		return row
	}

	m := result.Metrics
	row.Impressions = metricInt("impressions", m.Impressions)
	row.Clicks = metricInt("clicks", m.Clicks)
	row.CostMicros = metricInt("cost_micros", m.CostMicros)
	row.Ctr = utils.RoundWithTwoDecimalPlace(m.Ctr * 100)
	row.Conversions = m.Conversions
	row.ConversionsValue = m.ConversionsValue

	return row
}

// metricInt parses the string-encoded int64 metrics of the reporting
// API. Unparseable values are logged and zeroed rather than failing the
// whole result page.
func metricInt(field, raw string) int64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.L.WithField("field", field).
			Warnf("googleads: non-numeric metric value %q, using 0", raw)
		return 0
	}

	return value
}
