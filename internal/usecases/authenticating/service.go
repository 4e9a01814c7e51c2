// Package authenticating implements the Google OAuth login flow for the
// dashboard. The server keeps no session state: tokens live in the
// browser and come back as bearer headers.
package authenticating

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

var (
	// ErrNotConfigured is returned while the OAuth client credentials
	// are absent; handlers translate it into a 503 with setup guidance.
	ErrNotConfigured = errors.New("google oauth is not configured")

	// ErrInvalidToken is returned when Google rejects the bearer token.
	ErrInvalidToken = errors.New("invalid access token")

	// ErrExchangeFailed is returned when the authorization code cannot
	// be exchanged for tokens.
	ErrExchangeFailed = errors.New("authorization code exchange failed")
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var oauthScopes = []string{"openid", "email", "profile"}

type Service interface {
	AuthURL(state string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*domain.AuthCallbackResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	Validate(ctx context.Context, accessToken string) (*domain.GoogleUser, error)
}

type service struct {
	oauthConfig *oauth2.Config
	configured  bool
	httpClient  *http.Client
}

func NewService(cfg *config.Config) Service {
	return &service{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleAds.ClientID,
			ClientSecret: cfg.GoogleAds.ClientSecret,
			RedirectURL:  cfg.Server.FrontendURL + "/auth/callback",
			Scopes:       oauthScopes,
			Endpoint:     google.Endpoint,
		},
		configured: cfg.Capabilities.OAuth,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *service) AuthURL(state string) (string, error) {
	if !s.configured {
		return "", ErrNotConfigured
	}

	return s.oauthConfig.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}

// ExchangeCode trades the authorization code for tokens and resolves
// the user identity, preferring the ID token claims over a second
// round-trip to the userinfo endpoint.
func (s *service) ExchangeCode(ctx context.Context, code string) (*domain.AuthCallbackResponse, error) {
	if !s.configured {
		return nil, ErrNotConfigured
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("authenticating: code exchange rejected")
		return nil, ErrExchangeFailed
	}

	pair := &domain.TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}

	idToken, _ := token.Extra("id_token").(string)
	pair.IDToken = idToken

	user, err := userFromIDToken(idToken)
	if err != nil {
		log.ForContext(ctx).WithError(err).
			Debug("authenticating: falling back to userinfo endpoint")

		user, err = s.fetchUserInfo(ctx, token.AccessToken)
		if err != nil {
			return nil, err
		}
	}

	return &domain.AuthCallbackResponse{
		Success: true,
		Tokens:  pair,
		User:    user,
	}, nil
}

// Refresh mints a fresh access token from a stored refresh token. The
// refresh token itself usually does not rotate, so the original one is
// echoed back when Google omits it.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if !s.configured {
		return nil, ErrNotConfigured
	}

	source := s.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("authenticating: token refresh rejected")
		return nil, ErrInvalidToken
	}

	pair := &domain.TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}
	if pair.RefreshToken == "" {
		pair.RefreshToken = refreshToken
	}

	return pair, nil
}

// Validate asks Google whether the access token is still good and
// returns the identity bound to it.
func (s *service) Validate(ctx context.Context, accessToken string) (*domain.GoogleUser, error) {
	if !s.configured {
		return nil, ErrNotConfigured
	}

	return s.fetchUserInfo(ctx, accessToken)
}

func (s *service) fetchUserInfo(ctx context.Context, accessToken string) (*domain.GoogleUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "authenticating: building userinfo request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "authenticating: calling userinfo endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("authenticating: userinfo returned status %d", resp.StatusCode)
	}

	user := &domain.GoogleUser{}
	if err := json.NewDecoder(resp.Body).Decode(user); err != nil {
		return nil, errors.Wrap(err, "authenticating: decoding userinfo response")
	}

	return user, nil
}

// userFromIDToken extracts the identity claims without verifying the
// signature. The token just came from Google over TLS during the code
// exchange, so it is trusted by provenance.
func userFromIDToken(idToken string) (*domain.GoogleUser, error) {
	if idToken == "" {
		return nil, errors.New("authenticating: empty id token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, errors.Wrap(err, "authenticating: parsing id token")
	}

	user := &domain.GoogleUser{
		ID:      claimString(claims, "sub"),
		Email:   claimString(claims, "email"),
		Name:    claimString(claims, "name"),
		Picture: claimString(claims, "picture"),
	}

	if user.ID == "" || user.Email == "" {
		return nil, fmt.Errorf("authenticating: id token missing identity claims")
	}

	return user, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)
	return value
}
