package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type CronHandler struct {
	sync *scheduler.MetricsSync
}

func NewCronHandler(sync *scheduler.MetricsSync) *CronHandler {
	return &CronHandler{sync: sync}
}

// Trigger runs a full metrics sync immediately, mostly for operators
// and smoke tests. Concurrent triggers answer 409.
func (h *CronHandler) Trigger(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := h.sync.Run(r.Context())
	if err != nil {
		if errors.Is(err, scheduler.ErrSyncInProgress) {
			utils.WriteJSON(w, http.StatusConflict, map[string]string{
				"error": "sync already in progress",
			})
			return
		}

		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Metrics sync failed", nil)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *CronHandler) Status(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.WriteJSON(w, http.StatusOK, h.sync.Status())
}
