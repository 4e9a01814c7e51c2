package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
)

// Services groups everything the route table depends on.
type Services struct {
	Conn       *postgres.Connection
	Accounts   account.Service
	Insights   insighting.Service
	Reports    reporting.Service
	Auth       authenticating.Service
	MetricSync *scheduler.MetricsSync
}

// WithRoutes wires every endpoint of the API onto the router.
func WithRoutes(s Services) router.Option {
	return func(r *router.Router) {
		health := NewHealthHandler(s.Conn)
		accounts := NewAccountHandler(s.Accounts)
		campaigns := NewCampaignHandler(s.Insights)
		reports := NewReportHandler(s.Reports)
		auth := NewAuthHandler(s.Auth)
		cron := NewCronHandler(s.MetricSync)

		r.GET("/health", health.Health)
		r.GET("/api", health.ServiceInfo)
		r.Handler(http.MethodGet, "/metrics", promhttp.Handler())

		r.GET("/api/accounts", accounts.List)
		r.POST("/api/accounts/sync/:customerId", accounts.Sync)
		r.GET("/api/accounts/:accountId/summary", campaigns.Summary)

		r.GET("/api/campaigns/:accountId", campaigns.List)
		r.GET("/api/campaigns/:accountId/:campaignId/performance", campaigns.Performance)

		r.GET("/api/reports/:accountId", reports.Generate)
		r.GET("/api/reports/:accountId/export", reports.Export)

		r.GET("/api/auth/url", auth.GoogleAuthURL)
		r.POST("/api/auth/callback", auth.Callback)
		r.POST("/api/auth/refresh", auth.Refresh)
		r.POST("/api/auth/validate", auth.Validate)

		r.POST("/api/cron/metrics/run", cron.Trigger)
		r.GET("/api/cron/status", cron.Status)
	}
}
