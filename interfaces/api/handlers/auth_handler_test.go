package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-funnel/domain/services"
	"search-funnel/interfaces/api/middleware"
	"search-funnel/pkg/utils"
)

const testSecret = "test-secret"

type fakeAuth struct {
	google      bool
	callbackErr error
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (*services.AdminSession, error) {
	if username != "admin" || password != "pw" {
		return nil, services.ErrInvalidCredentials
	}
	return &services.AdminSession{Token: "tok", Username: username}, nil
}

func (f *fakeAuth) GoogleEnabled() bool { return f.google }

func (f *fakeAuth) GetGoogleAuthURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeAuth) HandleGoogleCallback(ctx context.Context, code string) (*services.AdminSession, error) {
	if f.callbackErr != nil {
		return nil, f.callbackErr
	}
	return &services.AdminSession{Token: "google-tok", Email: "ops@example.com"}, nil
}

func newAuthApp(auth services.AuthService, consoleURL string) *fiber.App {
	h := NewAuthHandler(auth, consoleURL, false)
	app := fiber.New()
	app.Post("/login", h.Login)
	app.Get("/google", h.GoogleLogin)
	app.Get("/google/callback", h.GoogleCallback)
	app.Get("/me", middleware.Protected(testSecret), h.Me)
	return app
}

func TestAuth_Login(t *testing.T) {
	app := newAuthApp(&fakeAuth{}, "")

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"username":"admin","password":"pw"}`, fiber.StatusOK},
		{"wrong password", `{"username":"admin","password":"nope"}`, fiber.StatusUnauthorized},
		{"missing password", `{"username":"admin"}`, fiber.StatusBadRequest},
		{"malformed", `{`, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAuth_GoogleLoginDisabled(t *testing.T) {
	app := newAuthApp(&fakeAuth{}, "")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/google", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAuth_GoogleRoundTrip(t *testing.T) {
	app := newAuthApp(&fakeAuth{google: true}, "https://console.example.com/")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/google", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	var state string
	for _, c := range resp.Cookies() {
		if c.Name == oauthStateCookie {
			state = c.Value
		}
	}
	require.NotEmpty(t, state)
	assert.True(t, strings.HasSuffix(resp.Header.Get(fiber.HeaderLocation), "state="+state))

	req := httptest.NewRequest(fiber.MethodGet, "/google/callback?code=abc&state="+state, nil)
	req.Header.Set(fiber.HeaderCookie, oauthStateCookie+"="+state)
	resp, err = app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://console.example.com/auth/callback?token=google-tok", resp.Header.Get(fiber.HeaderLocation))
}

func TestAuth_GoogleCallbackRejects(t *testing.T) {
	tests := []struct {
		name   string
		auth   *fakeAuth
		query  string
		cookie string
		status int
	}{
		{"state mismatch", &fakeAuth{google: true}, "?code=abc&state=a", "b", fiber.StatusBadRequest},
		{"missing state", &fakeAuth{google: true}, "?code=abc", "", fiber.StatusBadRequest},
		{"cancelled", &fakeAuth{google: true}, "?error=access_denied&state=s", "s", fiber.StatusUnauthorized},
		{"missing code", &fakeAuth{google: true}, "?state=s", "s", fiber.StatusBadRequest},
		{"not allowed", &fakeAuth{google: true, callbackErr: services.ErrEmailNotAllowed}, "?code=abc&state=s", "s", fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAuthApp(tt.auth, "")
			req := httptest.NewRequest(fiber.MethodGet, "/google/callback"+tt.query, nil)
			if tt.cookie != "" {
				req.Header.Set(fiber.HeaderCookie, oauthStateCookie+"="+tt.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAuth_Me(t *testing.T) {
	app := newAuthApp(&fakeAuth{}, "")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, _, err := utils.GenerateToken(testSecret, "admin", "ops@example.com", time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "admin", data["Username"])
}
