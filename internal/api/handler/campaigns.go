package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type CampaignHandler struct {
	service insighting.Service
}

func NewCampaignHandler(service insighting.Service) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// List serves the campaign snapshots for one account. ?refresh=true
// bypasses the cache, ?dateRange=N bounds the upstream window.
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	accountID, ok := parseAccountID(params)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "accountId must be a positive integer", nil)
		return
	}

	days, err := utils.ParseDateRange(r.URL.Query().Get("dateRange"), insighting.DefaultDateRangeDays)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dateRange must be a positive number of days", nil)
		return
	}

	refresh := r.URL.Query().Get("refresh") == "true"

	response, err := h.service.GetCampaigns(r.Context(), accountID, days, refresh)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *CampaignHandler) Summary(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	accountID, ok := parseAccountID(params)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "accountId must be a positive integer", nil)
		return
	}

	days, err := utils.ParseDateRange(r.URL.Query().Get("dateRange"), insighting.DefaultDateRangeDays)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dateRange must be a positive number of days", nil)
		return
	}

	response, err := h.service.GetAccountSummary(r.Context(), accountID, days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *CampaignHandler) Performance(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	accountID, ok := parseAccountID(params)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "accountId must be a positive integer", nil)
		return
	}

	campaignID := params.ByName("campaignId")
	if campaignID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campaignId is required", nil)
		return
	}

	days, err := utils.ParseDateRange(r.URL.Query().Get("dateRange"), insighting.DefaultDateRangeDays)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dateRange must be a positive number of days", nil)
		return
	}

	response, err := h.service.GetCampaignPerformance(r.Context(), accountID, campaignID, days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}
