package repository

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type DailyMetricRepository interface {
	GetByAccountAndRange(accountID int64, startDate, endDate string) ([]*domain.DailyMetric, error)
	GetByCampaignAndRange(accountID int64, campaignID, startDate, endDate string) ([]*domain.DailyMetric, error)
	SaveOrUpdate(metric *domain.DailyMetric) error
}

type dailyMetricRepository struct {
	db *sql.DB
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{db: conn.DB}
}

// GetByAccountAndRange joins campaigns so report rows carry the campaign
// name and type without a second lookup. Dates are ISO strings and the
// range is inclusive on both ends.
func (r *dailyMetricRepository) GetByAccountAndRange(
	accountID int64,
	startDate, endDate string,
) ([]*domain.DailyMetric, error) {
	query, args, err := psql.
		Select(
			"dm.id", "dm.account_id", "dm.campaign_id", "dm.date",
			"dm.impressions", "dm.clicks", "dm.ctr", "dm.cost", "dm.conversions",
			"COALESCE(c.name, '')", "COALESCE(c.type, '')",
		).
		From("daily_metrics dm").
		LeftJoin("campaigns c ON c.account_id = dm.account_id AND c.google_ads_campaign_id = dm.campaign_id").
		Where(sq.Eq{"dm.account_id": accountID}).
		Where(sq.GtOrEq{"dm.date": startDate}).
		Where(sq.LtOrEq{"dm.date": endDate}).
		OrderBy("dm.date ASC", "dm.campaign_id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "dailyMetricRepository: building range query")
	}

	return r.queryMetrics(query, args)
}

func (r *dailyMetricRepository) GetByCampaignAndRange(
	accountID int64,
	campaignID, startDate, endDate string,
) ([]*domain.DailyMetric, error) {
	query, args, err := psql.
		Select(
			"dm.id", "dm.account_id", "dm.campaign_id", "dm.date",
			"dm.impressions", "dm.clicks", "dm.ctr", "dm.cost", "dm.conversions",
			"COALESCE(c.name, '')", "COALESCE(c.type, '')",
		).
		From("daily_metrics dm").
		LeftJoin("campaigns c ON c.account_id = dm.account_id AND c.google_ads_campaign_id = dm.campaign_id").
		Where(sq.Eq{"dm.account_id": accountID, "dm.campaign_id": campaignID}).
		Where(sq.GtOrEq{"dm.date": startDate}).
		Where(sq.LtOrEq{"dm.date": endDate}).
		OrderBy("dm.date ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "dailyMetricRepository: building campaign range query")
	}

	return r.queryMetrics(query, args)
}

func (r *dailyMetricRepository) queryMetrics(query string, args []any) ([]*domain.DailyMetric, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "dailyMetricRepository: querying metrics")
	}
	defer rows.Close()

	metrics := make([]*domain.DailyMetric, 0)
	for rows.Next() {
		metric := &domain.DailyMetric{}
		err := rows.Scan(
			&metric.ID,
			&metric.AccountID,
			&metric.CampaignID,
			&metric.Date,
			&metric.Impressions,
			&metric.Clicks,
			&metric.Ctr,
			&metric.Cost,
			&metric.Conversions,
			&metric.CampaignName,
			&metric.CampaignType,
		)
		if err != nil {
			return nil, errors.Wrap(err, "dailyMetricRepository: scanning metric")
		}
		metrics = append(metrics, metric)
	}

	return metrics, rows.Err()
}

// SaveOrUpdate upserts on (account_id, campaign_id, date); values are
// replaced, never accumulated, so re-syncing a window is idempotent.
func (r *dailyMetricRepository) SaveOrUpdate(metric *domain.DailyMetric) error {
	query, args, err := psql.
		Insert("daily_metrics").
		Columns(
			"account_id", "campaign_id", "date",
			"impressions", "clicks", "ctr", "cost", "conversions",
		).
		Values(
			metric.AccountID,
			metric.CampaignID,
			metric.Date,
			metric.Impressions,
			metric.Clicks,
			metric.Ctr,
			metric.Cost,
			metric.Conversions,
		).
		Suffix(`ON CONFLICT (account_id, campaign_id, date) DO UPDATE SET
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			ctr = EXCLUDED.ctr,
			cost = EXCLUDED.cost,
			conversions = EXCLUDED.conversions,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "dailyMetricRepository: building upsert query")
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return errors.Wrap(err, "dailyMetricRepository: upserting metric")
	}

	return nil
}
