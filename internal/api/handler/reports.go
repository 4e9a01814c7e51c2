package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type ReportHandler struct {
	service reporting.Service
}

func NewReportHandler(service reporting.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
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

	report, err := h.service.GenerateReport(r.Context(), accountID, days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, report)
}

// Export streams the report as an attachment; ?format selects json
// (default) or csv.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
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

	format := r.URL.Query().Get("format")
	if format == "" {
		format = reporting.FormatJSON
	}

	result, err := h.service.ExportReport(r.Context(), accountID, days, format)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Body)
}
