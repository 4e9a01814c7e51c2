package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repoMocks "github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	insightMocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func newSyncWithMocks(t *testing.T) (*MetricsSync, *repoMocks.MockAccountRepository, *insightMocks.MockService) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	accountRepo := repoMocks.NewMockAccountRepository(ctrl)
	insights := insightMocks.NewMockService(ctrl)

	cfg := &config.Config{}
	cfg.MetricsSync.Enabled = true
	cfg.MetricsSync.CronSchedule = "0 3 * * *"
	cfg.MetricsSync.LookbackDays = 30
	cfg.MetricsSync.MaxConcurrentJobs = 2
	cfg.MetricsSync.RequestDelaySeconds = 0

	return NewMetricsSync(cfg, accountRepo, insights), accountRepo, insights
}

func TestRunRefreshesEveryAccount(t *testing.T) {
	syncer, accountRepo, insights := newSyncWithMocks(t)

	accounts := []*domain.Account{{ID: 1}, {ID: 2}, {ID: 3}}
	accountRepo.EXPECT().ListAccounts().Return(accounts, nil)
	insights.EXPECT().GetCampaigns(gomock.Any(), gomock.Any(), 30, true).
		Return(&domain.CampaignsResponse{}, nil).
		Times(3)

	result, err := syncer.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, result.Accounts)
	assert.Equal(t, 3, result.Succeeded)
	assert.Zero(t, result.Failed)
}

func TestRunCountsPerAccountFailures(t *testing.T) {
	syncer, accountRepo, insights := newSyncWithMocks(t)

	accounts := []*domain.Account{{ID: 1}, {ID: 2}}
	accountRepo.EXPECT().ListAccounts().Return(accounts, nil)
	insights.EXPECT().GetCampaigns(gomock.Any(), int64(1), 30, true).
		Return(nil, errors.New("quota exceeded"))
	insights.EXPECT().GetCampaigns(gomock.Any(), int64(2), 30, true).
		Return(&domain.CampaignsResponse{}, nil)

	result, err := syncer.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
}

func TestStatusExposesLastRun(t *testing.T) {
	syncer, accountRepo, _ := newSyncWithMocks(t)

	accountRepo.EXPECT().ListAccounts().Return([]*domain.Account{}, nil)

	_, err := syncer.Run(context.Background())
	require.NoError(t, err)

	status := syncer.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 3 * * *", status.Schedule)
	assert.False(t, status.Running)
	require.NotNil(t, status.LastRun)
	assert.Zero(t, status.LastRun.Accounts)
}
