package repository

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type CampaignRepository interface {
	ListByAccountID(accountID int64) ([]*domain.Campaign, error)
	SaveOrUpdate(accountID int64, campaign *domain.Campaign) error
}

type campaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{db: conn.DB}
}

func (r *campaignRepository) ListByAccountID(accountID int64) ([]*domain.Campaign, error) {
	query, args, err := psql.
		Select(
			"google_ads_campaign_id", "name", "status", "type",
			"impressions", "clicks", "ctr", "cost", "conversions",
			"conversions_value", "cpc",
		).
		From("campaigns").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "campaignRepository: building list query")
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "campaignRepository: listing campaigns")
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		err := rows.Scan(
			&campaign.ID,
			&campaign.Name,
			&campaign.Status,
			&campaign.Type,
			&campaign.Metrics.Impressions,
			&campaign.Metrics.Clicks,
			&campaign.Metrics.Ctr,
			&campaign.Metrics.Cost,
			&campaign.Metrics.Conversions,
			&campaign.Metrics.ConversionsValue,
			&campaign.Metrics.Cpc,
		)
		if err != nil {
			return nil, errors.Wrap(err, "campaignRepository: scanning campaign")
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

// SaveOrUpdate upserts on (account_id, google_ads_campaign_id); the
// metrics snapshot is replaced wholesale, so the latest sync wins.
func (r *campaignRepository) SaveOrUpdate(accountID int64, campaign *domain.Campaign) error {
	query, args, err := psql.
		Insert("campaigns").
		Columns(
			"account_id", "google_ads_campaign_id", "name", "status", "type",
			"impressions", "clicks", "ctr", "cost", "conversions",
			"conversions_value", "cpc",
		).
		Values(
			accountID,
			campaign.ID,
			campaign.Name,
			campaign.Status,
			campaign.Type,
			campaign.Metrics.Impressions,
			campaign.Metrics.Clicks,
			campaign.Metrics.Ctr,
			campaign.Metrics.Cost,
			campaign.Metrics.Conversions,
			campaign.Metrics.ConversionsValue,
			campaign.Metrics.Cpc,
		).
		Suffix(`ON CONFLICT (account_id, google_ads_campaign_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			type = EXCLUDED.type,
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			ctr = EXCLUDED.ctr,
			cost = EXCLUDED.cost,
			conversions = EXCLUDED.conversions,
			conversions_value = EXCLUDED.conversions_value,
			cpc = EXCLUDED.cpc,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "campaignRepository: building upsert query")
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return errors.Wrap(err, "campaignRepository: upserting campaign")
	}

	return nil
}
