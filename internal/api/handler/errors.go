package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// writeServiceError maps usecase sentinel errors onto the standard
// error body; everything else is a 500 with the detail kept in logs.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, insighting.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Account not found", nil)
	case errors.Is(err, reporting.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Unsupported export format, use csv or json", nil)
	case errors.Is(err, authenticating.ErrNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrNotConfigured,
			"Google OAuth is not configured; set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET", nil)
	case errors.Is(err, authenticating.ErrInvalidToken):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid or expired token", nil)
	case errors.Is(err, authenticating.ErrExchangeFailed):
		apiErrors.WriteError(w, apiErrors.ErrOAuthExchange, "Authorization code exchange failed", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("handler: request failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
	}
}
