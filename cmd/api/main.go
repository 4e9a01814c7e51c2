package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/api"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("main: loading configuration")
	}

	log.Setup(cfg.App.LogLevel, cfg.IsProduction())

	m := metrics.New("ads_dashboard")

	conn, err := postgres.NewConnection(cfg)
	if err != nil {
		log.L.WithError(err).Fatal("main: connecting to postgres")
	}
	defer conn.Close()

	accountRepo := repository.NewAccountRepository(conn)
	campaignRepo := repository.NewCampaignRepository(conn)
	dailyMetricRepo := repository.NewDailyMetricRepository(conn)
	summaryRepo := repository.NewAccountSummaryRepository(conn)

	integrator := googleads.NewService(cfg, gadsclient.New(cfg))

	insights := insighting.NewService(accountRepo, campaignRepo, dailyMetricRepo, summaryRepo, integrator)
	accounts := account.NewService(accountRepo, integrator)
	reports := reporting.NewService(accountRepo, dailyMetricRepo)
	auth := authenticating.NewService(cfg)

	metricSync := scheduler.NewMetricsSync(cfg, accountRepo, insights)
	if err := metricSync.Start(); err != nil {
		log.L.WithError(err).Fatal("main: starting metrics sync scheduler")
	}
	defer metricSync.Stop()

	r := router.New(handler.WithRoutes(handler.Services{
		Conn:       conn,
		Accounts:   accounts,
		Insights:   insights,
		Reports:    reports,
		Auth:       auth,
		MetricSync: metricSync,
	}))

	server := api.NewServer(cfg, m, r)

	errs := make(chan error, 1)
	go func() {
		errs <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil {
			log.L.WithError(err).Fatal("main: server failed")
		}
	case sig := <-stop:
		log.L.WithField("signal", sig.String()).Info("main: shutdown requested")
		if err := server.Shutdown(); err != nil {
			log.L.WithError(err).Error("main: shutdown failed")
		}
	}
}
