package domain

import "time"

// GoogleUser is the identity returned by Google for the signed-in user.
type GoogleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// TokenPair carries the OAuth tokens handed back to the browser. The
// server keeps no session; the client attaches AccessToken as a bearer.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	IDToken      string    `json:"id_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

type AuthURLResponse struct {
	AuthURL string `json:"authUrl"`
}

type AuthCallbackResponse struct {
	Success bool        `json:"success"`
	Tokens  *TokenPair  `json:"tokens"`
	User    *GoogleUser `json:"user"`
}

type AuthRefreshResponse struct {
	Tokens *TokenPair `json:"tokens"`
}

type AuthValidateResponse struct {
	Valid bool        `json:"valid"`
	User  *GoogleUser `json:"user,omitempty"`
	Error string      `json:"error,omitempty"`
}
