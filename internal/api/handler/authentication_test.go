package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func authRouter(t *testing.T) (*router.Router, *authMocks.MockService) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := authMocks.NewMockService(ctrl)
	auth := NewAuthHandler(service)

	r := router.New(func(r *router.Router) {
		r.GET("/api/auth/url", auth.GoogleAuthURL)
		r.POST("/api/auth/callback", auth.Callback)
		r.POST("/api/auth/refresh", auth.Refresh)
		r.POST("/api/auth/validate", auth.Validate)
	})

	return r, service
}

func TestGoogleAuthURL(t *testing.T) {
	r, service := authRouter(t)

	service.EXPECT().AuthURL("xyz").Return("https://accounts.google.com/o/oauth2/auth?state=xyz", nil)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/auth/url?state=xyz", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"authUrl"`)
}

func TestGoogleAuthURLUnconfigured(t *testing.T) {
	r, service := authRouter(t)

	service.EXPECT().AuthURL(gomock.Any()).Return("", authenticating.ErrNotConfigured)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/auth/url", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH_004")
}

func TestCallbackMissingCode(t *testing.T) {
	r, _ := authRouter(t)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodPost, "/api/auth/callback", strings.NewReader(`{}`),
	))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_002")
}

func TestCallbackExchangeFailure(t *testing.T) {
	r, service := authRouter(t)

	service.EXPECT().ExchangeCode(gomock.Any(), "bad-code").
		Return(nil, authenticating.ErrExchangeFailed)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodPost, "/api/auth/callback", strings.NewReader(`{"code":"bad-code"}`),
	))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH_003")
}

func TestRefresh(t *testing.T) {
	r, service := authRouter(t)

	service.EXPECT().Refresh(gomock.Any(), "refresh-token").
		Return(&domain.TokenPair{AccessToken: "fresh", RefreshToken: "refresh-token"}, nil)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodPost, "/api/auth/refresh", strings.NewReader(`{"refreshToken":"refresh-token"}`),
	))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"access_token":"fresh"`)
}

func TestValidateInvalidTokenAnswers200(t *testing.T) {
	r, service := authRouter(t)

	service.EXPECT().Validate(gomock.Any(), "stale").
		Return(nil, authenticating.ErrInvalidToken)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodPost, "/api/auth/validate", strings.NewReader(`{"accessToken":"stale"}`),
	))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"valid":false`)
}

func TestValidateMissingToken(t *testing.T) {
	r, _ := authRouter(t)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodPost, "/api/auth/validate", strings.NewReader(`{}`),
	))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
