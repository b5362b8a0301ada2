package services

import (
	"context"
	"time"
)

type AdminSession struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*AdminSession, error)

	GoogleEnabled() bool
	GetGoogleAuthURL(state string) string

	// HandleGoogleCallback signs in an allowed Google account
	HandleGoogleCallback(ctx context.Context, code string) (*AdminSession, error)
}

type GoogleAccount struct {
	Email    string
	Name     string
	Verified bool
}

// GoogleIdentityProvider runs the OAuth code flow against Google.
type GoogleIdentityProvider interface {
	GetAuthURL(state string) string
	Identify(ctx context.Context, code string) (*GoogleAccount, error)
}
