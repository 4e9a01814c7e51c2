package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

type AccountHandler struct {
	service account.Service
}

func NewAccountHandler(service account.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) Sync(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	customerID := params.ByName("customerId")
	if customerID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "customerId is required", nil)
		return
	}

	response, err := h.service.SyncAccount(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// parseAccountID reads the numeric account id path parameter shared by
// the campaign, summary and report routes.
func parseAccountID(params httprouter.Params) (int64, bool) {
	accountID, err := strconv.ParseInt(params.ByName("accountId"), 10, 64)
	if err != nil || accountID <= 0 {
		return 0, false
	}
	return accountID, true
}
