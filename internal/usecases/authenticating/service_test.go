package authenticating

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-dashboard-api/internal/config"
)

func configuredService(t *testing.T) Service {
	t.Helper()

	cfg := &config.Config{}
	cfg.GoogleAds.ClientID = "client-id"
	cfg.GoogleAds.ClientSecret = "client-secret"
	cfg.Server.FrontendURL = "http://localhost:5173"
	cfg.Capabilities.OAuth = true

	return NewService(cfg)
}

func unsignedIDToken(payload string) string {
	encode := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}
	header := `{"alg":"none","typ":"JWT"}`
	return fmt.Sprintf("%s.%s.", encode(header), encode(payload))
}

func TestAuthURLCarriesOfflineConsent(t *testing.T) {
	svc := configuredService(t)

	url, err := svc.AuthURL("state-123")

	require.NoError(t, err)
	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "prompt=consent")
	assert.Contains(t, url, "state=state-123")
	assert.Contains(t, url, "client_id=client-id")
}

func TestAuthURLUnconfigured(t *testing.T) {
	svc := NewService(&config.Config{})

	url, err := svc.AuthURL("state")

	assert.Empty(t, url)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUserFromIDToken(t *testing.T) {
	token := unsignedIDToken(
		`{"sub":"108","email":"ads@example.com","name":"Ads Admin","picture":"https://example.com/p.png"}`,
	)

	user, err := userFromIDToken(token)

	require.NoError(t, err)
	assert.Equal(t, "108", user.ID)
	assert.Equal(t, "ads@example.com", user.Email)
	assert.Equal(t, "Ads Admin", user.Name)
	assert.Equal(t, "https://example.com/p.png", user.Picture)
}

func TestUserFromIDTokenMissingClaims(t *testing.T) {
	token := unsignedIDToken(`{"sub":"108"}`)

	user, err := userFromIDToken(token)

	assert.Nil(t, user)
	assert.Error(t, err)
}

func TestUserFromIDTokenEmpty(t *testing.T) {
	user, err := userFromIDToken("")

	assert.Nil(t, user)
	assert.Error(t, err)
}
