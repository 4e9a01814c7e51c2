package repository

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type AccountRepository interface {
	ListAccounts() ([]*domain.Account, error)
	GetAccountByID(id int64) (*domain.Account, error)
	GetAccountByGoogleAdsID(googleAdsID string) (*domain.Account, error)
	SaveOrUpdate(account *domain.Account) (*domain.Account, error)
}

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{db: conn.DB}
}

var accountColumns = []string{
	"id", "google_ads_id", "name", "currency", "time_zone", "status",
	"created_at", "updated_at",
}

func (r *accountRepository) ListAccounts() ([]*domain.Account, error) {
	query, args, err := psql.
		Select(accountColumns...).
		From("accounts").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "accountRepository: building list query")
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "accountRepository: listing accounts")
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *accountRepository) GetAccountByID(id int64) (*domain.Account, error) {
	return r.getAccountBy(sq.Eq{"id": id})
}

func (r *accountRepository) GetAccountByGoogleAdsID(googleAdsID string) (*domain.Account, error) {
	return r.getAccountBy(sq.Eq{"google_ads_id": googleAdsID})
}

func (r *accountRepository) getAccountBy(pred sq.Eq) (*domain.Account, error) {
	query, args, err := psql.
		Select(accountColumns...).
		From("accounts").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "accountRepository: building get query")
	}

	account, err := scanAccount(r.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return account, err
}

// SaveOrUpdate upserts on google_ads_id so re-syncs refresh account
// attributes without duplicating rows.
func (r *accountRepository) SaveOrUpdate(account *domain.Account) (*domain.Account, error) {
	query, args, err := psql.
		Insert("accounts").
		Columns("google_ads_id", "name", "currency", "time_zone", "status").
		Values(
			account.GoogleAdsID,
			account.Name,
			account.Currency,
			account.TimeZone,
			account.Status,
		).
		Suffix(`ON CONFLICT (google_ads_id) DO UPDATE SET
			name = EXCLUDED.name,
			currency = EXCLUDED.currency,
			time_zone = EXCLUDED.time_zone,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "accountRepository: building upsert query")
	}

	err = r.db.QueryRow(query, args...).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "accountRepository: upserting account")
	}

	return account, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	account := &domain.Account{}

	err := row.Scan(
		&account.ID,
		&account.GoogleAdsID,
		&account.Name,
		&account.Currency,
		&account.TimeZone,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "accountRepository: scanning account")
	}

	return account, nil
}
