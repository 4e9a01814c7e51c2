// Package account lists the synced accounts and pulls account
// attributes from upstream into the store.
package account

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/metrics"
)

type Service interface {
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	SyncAccount(ctx context.Context, customerID string) (*domain.SyncAccountsResponse, error)
}

type service struct {
	accountRepo repository.AccountRepository
	integrator  googleads.Integrator
}

func NewService(accountRepo repository.AccountRepository, integrator googleads.Integrator) Service {
	return &service{
		accountRepo: accountRepo,
		integrator:  integrator,
	}
}

func (s *service) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts()
	if err != nil {
		return nil, errors.Wrap(err, "account: listing accounts")
	}

	return accounts, nil
}

// SyncAccount fetches the customer attributes upstream and upserts them
// keyed by google_ads_id, so repeated syncs refresh the same row.
func (s *service) SyncAccount(ctx context.Context, customerID string) (*domain.SyncAccountsResponse, error) {
	info, err := s.integrator.GetAccountInfo(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "account: fetching account info")
	}

	saved, err := s.accountRepo.SaveOrUpdate(info)
	if err != nil {
		return nil, errors.Wrap(err, "account: saving account")
	}

	if m := metrics.Default; m != nil {
		m.AccountsSynced.Inc()
	}

	log.ForContext(ctx).
		WithFields(log.Fields{"account_id": saved.ID, "google_ads_id": saved.GoogleAdsID}).
		Info("account: sync completed")

	return &domain.SyncAccountsResponse{
		Success:  true,
		Accounts: []*domain.Account{saved},
		Message:  "Account synced successfully",
	}, nil
}
