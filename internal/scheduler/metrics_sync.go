// Package scheduler refreshes the metric cache for every synced
// account on a cron schedule, keeping dashboards warm without waiting
// for user traffic.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/metrics"
)

// ErrSyncInProgress is returned when a manual trigger races a run that
// has not finished yet.
var ErrSyncInProgress = errors.New("metrics sync already in progress")

// RunResult summarizes one sync pass over all accounts.
type RunResult struct {
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Accounts   int       `json:"accounts"`
	Succeeded  int       `json:"succeeded"`
	Failed     int       `json:"failed"`
}

// Status is the cron status endpoint payload.
type Status struct {
	Enabled  bool       `json:"enabled"`
	Schedule string     `json:"schedule"`
	Running  bool       `json:"running"`
	LastRun  *RunResult `json:"lastRun,omitempty"`
}

type MetricsSync struct {
	cfg         *config.Config
	accountRepo repository.AccountRepository
	insights    insighting.Service
	cron        *gocron.Scheduler

	mu      sync.Mutex
	running bool
	lastRun *RunResult
}

func NewMetricsSync(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	insights insighting.Service,
) *MetricsSync {
	return &MetricsSync{
		cfg:         cfg,
		accountRepo: accountRepo,
		insights:    insights,
		cron:        gocron.NewScheduler(time.UTC),
	}
}

// Start registers the cron job and begins running it asynchronously.
// Disabled schedulers still serve status and manual triggers.
func (s *MetricsSync) Start() error {
	if !s.cfg.MetricsSync.Enabled {
		log.L.Info("scheduler: metrics sync disabled by configuration")
		return nil
	}

	_, err := s.cron.Cron(s.cfg.MetricsSync.CronSchedule).Do(func() {
		if _, err := s.Run(context.Background()); err != nil {
			log.L.WithError(err).Error("scheduler: scheduled sync failed")
		}
	})
	if err != nil {
		return errors.Wrap(err, "scheduler: registering cron job")
	}

	s.cron.StartAsync()
	log.L.WithField("schedule", s.cfg.MetricsSync.CronSchedule).
		Info("scheduler: metrics sync started")

	return nil
}

func (s *MetricsSync) Stop() {
	s.cron.Stop()
}

// Run refreshes every account's campaign cache, at most one pass at a
// time. Per-account failures are counted, not fatal: one broken
// account must not starve the rest.
func (s *MetricsSync) Run(ctx context.Context) (*RunResult, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrSyncInProgress
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if m := metrics.Default; m != nil {
		m.SyncRuns.Inc()
	}

	result := &RunResult{StartedAt: time.Now().UTC()}

	accounts, err := s.accountRepo.ListAccounts()
	if err != nil {
		return nil, errors.Wrap(err, "scheduler: listing accounts")
	}
	result.Accounts = len(accounts)

	s.refreshAccounts(ctx, accounts, result)

	result.FinishedAt = time.Now().UTC()

	s.mu.Lock()
	s.lastRun = result
	s.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"accounts":  result.Accounts,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("scheduler: metrics sync finished")

	return result, nil
}

// refreshAccounts fans the refresh out over a bounded worker pool,
// pacing submissions to stay inside the upstream rate limits.
func (s *MetricsSync) refreshAccounts(
	ctx context.Context,
	accounts []*domain.Account,
	result *RunResult,
) {
	jobs := s.cfg.MetricsSync.MaxConcurrentJobs
	if jobs < 1 {
		jobs = 1
	}
	delay := time.Duration(s.cfg.MetricsSync.RequestDelaySeconds) * time.Second

	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, acc := range accounts {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(account *domain.Account) {
			defer wg.Done()
			defer func() { <-sem }()

			_, err := s.insights.GetCampaigns(
				ctx, account.ID, s.cfg.MetricsSync.LookbackDays, true,
			)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				log.ForContext(ctx).WithError(err).
					WithField("account_id", account.ID).
					Warn("scheduler: account refresh failed")
				return
			}
			result.Succeeded++
		}(acc)
	}

	wg.Wait()
}

// Status reports the scheduler state for the cron status endpoint.
func (s *MetricsSync) Status() *Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &Status{
		Enabled:  s.cfg.MetricsSync.Enabled,
		Schedule: s.cfg.MetricsSync.CronSchedule,
		Running:  s.running,
		LastRun:  s.lastRun,
	}
}
