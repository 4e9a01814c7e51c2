package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients.
const (
	// Authentication errors (1000-1999)
	ErrInvalidToken  = "AUTH_001" // bearer token rejected by the identity provider
	ErrExpiredToken  = "AUTH_002" // token expired
	ErrOAuthExchange = "AUTH_003" // authorization code exchange failed
	ErrNotConfigured = "AUTH_004" // OAuth credentials missing on the server

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required parameter absent
	ErrInvalidFormat       = "VAL_003" // parameter present but unparseable

	// Resource errors (4000-4999)
	ErrNotFound = "RES_001" // entity absent in the store

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001" // unexpected internal failure
	ErrDatabaseOperation = "SRV_002" // database operation failed
	ErrExternalService   = "SRV_003" // upstream ads API failure
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrOAuthExchange:       http.StatusInternalServerError,
	ErrNotConfigured:       http.StatusServiceUnavailable,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError is the standard error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error body with the mapped status.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
