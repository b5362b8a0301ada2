package oauth

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-funnel/pkg/config"
)

func TestGetAuthURL(t *testing.T) {
	g := NewGoogleOAuth(config.GoogleOAuthConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:3000/api/v1/auth/google/callback",
	})

	raw := g.GetAuthURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Contains(t, q.Get("scope"), "email")
}

func TestValidateConfig(t *testing.T) {
	assert.Error(t, NewGoogleOAuth(config.GoogleOAuthConfig{}).ValidateConfig())
	assert.NoError(t, NewGoogleOAuth(config.GoogleOAuthConfig{
		ClientID: "a", ClientSecret: "b", RedirectURL: "c",
	}).ValidateConfig())
}
