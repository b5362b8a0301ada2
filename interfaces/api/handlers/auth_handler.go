package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"search-funnel/domain/dto"
	"search-funnel/domain/services"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	authService  services.AuthService
	consoleURL   string
	secureCookie bool
}

func NewAuthHandler(authService services.AuthService, consoleURL string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		consoleURL:   strings.TrimRight(consoleURL, "/"),
		secureCookie: secureCookie,
	}
}

// Login godoc
// @Summary Sign in with the operator password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} services.AdminSession
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	session, err := h.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return serviceError(c, "Login failed", err)
	}
	return utils.SuccessResponse(c, "Signed in", session)
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Tags Auth
// @Success 302
// @Router /api/v1/auth/google [get]
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	if !h.authService.GoogleEnabled() {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Google sign-in is not configured", nil)
	}

	state, err := generateState()
	if err != nil {
		logger.AuthError("google_state_failed", "Failed to generate state", err, nil)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate state", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: "Lax",
	})

	logger.Auth("google_start", "Redirecting to Google", map[string]interface{}{"ip": c.IP()})
	return c.Redirect(h.authService.GetGoogleAuthURL(state))
}

// GoogleCallback godoc
// @Summary Finish Google sign-in
// @Description Only verified accounts listed in ADMIN_ALLOWED_EMAILS are accepted
// @Tags Auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 200 {object} services.AdminSession
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	stored := c.Cookies(oauthStateCookie)
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	if state == "" || state != stored {
		logger.Auth("google_state_mismatch", "Invalid OAuth state", map[string]interface{}{"ip": c.IP()})
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid OAuth state", nil)
	}
	if msg := c.Query("error"); msg != "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Google sign-in was cancelled", nil)
	}
	code := c.Query("code")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing authorization code", nil)
	}

	session, err := h.authService.HandleGoogleCallback(c.UserContext(), code)
	if err != nil {
		return serviceError(c, "Google sign-in failed", err)
	}

	if h.consoleURL != "" {
		return c.Redirect(h.consoleURL + "/auth/callback?token=" + url.QueryEscape(session.Token))
	}
	return utils.SuccessResponse(c, "Signed in", session)
}

// Me godoc
// @Summary Current operator
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} utils.AdminContext
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	admin, err := utils.GetAdminFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}
	return utils.SuccessResponse(c, "Operator retrieved", admin)
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
