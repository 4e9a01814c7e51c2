package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	UpstreamQueries    *prometheus.CounterVec
	CacheReads         *prometheus.CounterVec
	SyncRuns           prometheus.Counter
	AccountsSynced     prometheus.Counter
	CampaignsRefreshed prometheus.Counter
}

// Default is the global metrics instance, set once at startup.
var Default *Metrics

// New creates and registers the collectors under the given namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "path", "status"},
		),
		HTTPLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		UpstreamQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_queries_total",
				Help:      "Google Ads API queries issued, by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		CacheReads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_reads_total",
				Help:      "Metric cache reads, by outcome (hit, miss, bypass)",
			},
			[]string{"outcome"},
		),
		SyncRuns: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sync_runs_total",
				Help:      "Scheduled metric sync executions",
			},
		),
		AccountsSynced: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_synced_total",
				Help:      "Accounts upserted from upstream",
			},
		),
		CampaignsRefreshed: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "campaigns_refreshed_total",
				Help:      "Campaign cache rows refreshed from upstream",
			},
		),
	}

	Default = m
	return m
}

// ObserveCacheRead records a cache read outcome when metrics are enabled.
func ObserveCacheRead(outcome string) {
	if Default != nil {
		Default.CacheReads.WithLabelValues(outcome).Inc()
	}
}

// ObserveUpstreamQuery records an upstream query outcome when metrics are enabled.
func ObserveUpstreamQuery(kind, outcome string) {
	if Default != nil {
		Default.UpstreamQueries.WithLabelValues(kind, outcome).Inc()
	}
}
