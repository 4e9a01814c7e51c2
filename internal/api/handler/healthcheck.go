package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type HealthHandler struct {
	conn      *postgres.Connection
	startedAt time.Time
}

func NewHealthHandler(conn *postgres.Connection) *HealthHandler {
	return &HealthHandler{conn: conn, startedAt: time.Now()}
}

// Health reports liveness plus the database state. A broken store
// downgrades the payload but still answers 200 so load balancers keep
// the API itself in rotation.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	database := "up"
	if err := h.conn.Ping(r.Context()); err != nil {
		database = "down"
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"database":  database,
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ServiceInfo answers the API root with a small endpoint catalogue.
func (h *HealthHandler) ServiceInfo(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"name":    "ads-dashboard-api",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"accounts":    "GET /api/accounts",
			"sync":        "POST /api/accounts/sync/:customerId",
			"summary":     "GET /api/accounts/:accountId/summary",
			"campaigns":   "GET /api/campaigns/:accountId",
			"performance": "GET /api/campaigns/:accountId/:campaignId/performance",
			"reports":     "GET /api/reports/:accountId",
			"export":      "GET /api/reports/:accountId/export",
			"auth":        "GET /api/auth/url",
			"health":      "GET /health",
		},
	})
}
