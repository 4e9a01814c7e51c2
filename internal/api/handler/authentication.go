package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AuthHandler struct {
	service authenticating.Service
}

func NewAuthHandler(service authenticating.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type callbackRequest struct {
	Code string `json:"code"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type validateRequest struct {
	AccessToken string `json:"accessToken"`
}

// GoogleAuthURL hands the browser the consent URL to start the flow.
func (h *AuthHandler) GoogleAuthURL(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	url, err := h.service.AuthURL(r.URL.Query().Get("state"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.AuthURLResponse{AuthURL: url})
}

// Callback exchanges the authorization code posted back by the
// front-end for tokens and the signed-in user.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	request := callbackRequest{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Code == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "code is required", nil)
		return
	}

	response, err := h.service.ExchangeCode(r.Context(), request.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	request := refreshRequest{}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.RefreshToken == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "refreshToken is required", nil)
		return
	}

	tokens, err := h.service.Refresh(r.Context(), request.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.AuthRefreshResponse{Tokens: tokens})
}

// Validate checks the access token and reports the bound identity.
// The token comes in the body, or as a bearer header for convenience.
// Invalid tokens answer 200 with valid=false so the front-end can
// distinguish "logged out" from a server failure.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	request := validateRequest{}
	_ = json.NewDecoder(r.Body).Decode(&request)

	token := request.AccessToken
	if token == "" {
		token = bearerToken(r)
	}
	if token == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "accessToken is required", nil)
		return
	}

	user, err := h.service.Validate(r.Context(), token)
	if err != nil {
		if err == authenticating.ErrInvalidToken {
			utils.WriteJSON(w, http.StatusOK, domain.AuthValidateResponse{
				Valid: false,
				Error: "invalid or expired token",
			})
			return
		}

		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.AuthValidateResponse{Valid: true, User: user})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
