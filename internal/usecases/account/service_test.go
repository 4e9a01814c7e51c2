package account

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	integratorMocks "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/mocks"
	repoMocks "github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func newServiceWithMocks(t *testing.T) (Service, *repoMocks.MockAccountRepository, *integratorMocks.MockIntegrator) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	accountRepo := repoMocks.NewMockAccountRepository(ctrl)
	integrator := integratorMocks.NewMockIntegrator(ctrl)

	return NewService(accountRepo, integrator), accountRepo, integrator
}

func TestListAccounts(t *testing.T) {
	svc, accountRepo, _ := newServiceWithMocks(t)

	stored := []*domain.Account{{ID: 1, Name: "Acme Corp"}}
	accountRepo.EXPECT().ListAccounts().Return(stored, nil)

	accounts, err := svc.ListAccounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, accounts)
}

func TestSyncAccountUpsertsUpstreamInfo(t *testing.T) {
	svc, accountRepo, integrator := newServiceWithMocks(t)

	info := &domain.Account{GoogleAdsID: "1234567890", Name: "Acme Corp"}
	saved := &domain.Account{ID: 7, GoogleAdsID: "1234567890", Name: "Acme Corp"}

	integrator.EXPECT().GetAccountInfo(gomock.Any(), "123-456-7890").Return(info, nil)
	accountRepo.EXPECT().SaveOrUpdate(info).Return(saved, nil)

	response, err := svc.SyncAccount(context.Background(), "123-456-7890")

	require.NoError(t, err)
	assert.True(t, response.Success)
	require.Len(t, response.Accounts, 1)
	assert.Equal(t, int64(7), response.Accounts[0].ID)
}

func TestSyncAccountUpstreamFailure(t *testing.T) {
	svc, _, integrator := newServiceWithMocks(t)

	integrator.EXPECT().GetAccountInfo(gomock.Any(), "123").
		Return(nil, errors.New("quota exceeded"))

	response, err := svc.SyncAccount(context.Background(), "123")

	assert.Nil(t, response)
	assert.Error(t, err)
}
