package middleware

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"search-funnel/domain/services"
	"search-funnel/pkg/config"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "middleware-logs")
	if err != nil {
		panic(err)
	}
	_ = logger.Init(dir, false)
	code := m.Run()
	logger.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

func sessionApp(seen *services.SessionContext) *fiber.App {
	app := fiber.New()
	app.Get("/", Session(&config.TrackingConfig{SessionCookie: "fsid"}), func(c *fiber.Ctx) error {
		*seen = SessionFrom(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestSession_IssuesCookieOnce(t *testing.T) {
	var seen services.SessionContext
	app := sessionApp(&seen)

	req := httptest.NewRequest(fiber.MethodGet, "/?utm_source=news", nil)
	req.Header.Set(fiber.HeaderUserAgent, "test-agent")
	resp, err := app.Test(req)
	require.NoError(t, err)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "fsid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Expires.IsZero(), "session cookie")
	assert.Equal(t, cookies[0].Value, seen.SessionID)
	assert.Equal(t, "news", seen.UTMSource)
	assert.Equal(t, "test-agent", seen.UserAgent)

	id := seen.SessionID
	req = httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderCookie, "fsid="+id)
	resp, err = app.Test(req)
	require.NoError(t, err)

	assert.Empty(t, resp.Cookies())
	assert.Equal(t, id, seen.SessionID)
}

func TestSession_ReplacesForgedCookie(t *testing.T) {
	var seen services.SessionContext
	app := sessionApp(&seen)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderCookie, "fsid=<script>")
	_, err := app.Test(req)
	require.NoError(t, err)

	_, err = uuid.Parse(seen.SessionID)
	assert.NoError(t, err)
}

func TestSessionFrom_WithoutMiddleware(t *testing.T) {
	var seen services.SessionContext
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		seen = SessionFrom(c)
		return nil
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Empty(t, seen.SessionID)
	assert.NotEmpty(t, seen.IP)
}

func TestProtected(t *testing.T) {
	const secret = "s3cret"
	app := fiber.New()
	app.Get("/admin", Protected(secret), func(c *fiber.Ctx) error {
		admin, err := utils.GetAdminFromContext(c)
		require.NoError(t, err)
		return c.SendString(admin.Username)
	})
	app.Get("/ws", ProtectedWithQueryToken(secret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	valid, _, err := utils.GenerateToken(secret, "admin", "", time.Hour)
	require.NoError(t, err)
	expired, _, err := utils.GenerateToken(secret, "admin", "", -time.Minute)
	require.NoError(t, err)
	foreign, _, err := utils.GenerateToken("other", "admin", "", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"valid header", "/admin", "Bearer " + valid, fiber.StatusOK},
		{"missing header", "/admin", "", fiber.StatusUnauthorized},
		{"wrong scheme", "/admin", "Token " + valid, fiber.StatusUnauthorized},
		{"expired", "/admin", "Bearer " + expired, fiber.StatusUnauthorized},
		{"wrong secret", "/admin", "Bearer " + foreign, fiber.StatusUnauthorized},
		{"query token", "/ws?token=" + valid, "", fiber.StatusOK},
		{"no token", "/ws", "", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRateLimiter_DisabledPassesThrough(t *testing.T) {
	cfg := &config.RateLimitConfig{Enabled: false, TrackMaxRequests: 1, WindowSeconds: 60}
	app := fiber.New()
	app.Post("/events", TrackRateLimiter(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/events", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	}
}

func TestRateLimiter_Limits(t *testing.T) {
	cfg := &config.RateLimitConfig{Enabled: true, TrackMaxRequests: 2, WindowSeconds: 60}
	app := fiber.New()
	app.Post("/events", TrackRateLimiter(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	var last int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/events", nil))
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last)
}

func TestAdminOnly(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("admin", &utils.AdminContext{Username: "viewer", Role: "viewer"})
		return c.Next()
	}, AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
