package repository

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type AccountSummaryRepository interface {
	SaveOrUpdate(accountID int64, dateRange int, summary *domain.AccountSummary) error
}

type accountSummaryRepository struct {
	db *sql.DB
}

func NewAccountSummaryRepository(conn *postgres.Connection) AccountSummaryRepository {
	return &accountSummaryRepository{db: conn.DB}
}

// SaveOrUpdate keeps one summary row per account as a write-through
// snapshot of the latest aggregate. Reads always recompute upstream, so
// this table only backs dashboards when the API is unreachable.
func (r *accountSummaryRepository) SaveOrUpdate(
	accountID int64,
	dateRange int,
	summary *domain.AccountSummary,
) error {
	query, args, err := psql.
		Insert("account_summaries").
		Columns(
			"account_id", "date_range",
			"impressions", "clicks", "ctr", "cost",
			"conversions", "conversions_value", "cpc",
		).
		Values(
			accountID,
			dateRange,
			summary.Impressions,
			summary.Clicks,
			summary.Ctr,
			summary.Cost,
			summary.Conversions,
			summary.ConversionsValue,
			summary.Cpc,
		).
		Suffix(`ON CONFLICT (account_id) DO UPDATE SET
			date_range = EXCLUDED.date_range,
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
		return errors.Wrap(err, "accountSummaryRepository: building upsert query")
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return errors.Wrap(err, "accountSummaryRepository: upserting summary")
	}

	return nil
}
