package serviceimpl

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"search-funnel/domain/services"
	"search-funnel/pkg/config"
	"search-funnel/pkg/logger"
	"search-funnel/pkg/utils"
)

type AuthServiceImpl struct {
	admin  config.AdminConfig
	jwt    config.JWTConfig
	google services.GoogleIdentityProvider
}

// NewAuthService wires password login for the operator account and, when
// google is non-nil, Google sign-in for the allowed emails.
func NewAuthService(
	admin config.AdminConfig,
	jwtCfg config.JWTConfig,
	google services.GoogleIdentityProvider,
) services.AuthService {
	return &AuthServiceImpl{
		admin:  admin,
		jwt:    jwtCfg,
		google: google,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*services.AdminSession, error) {
	if s.admin.PasswordHash == "" {
		logger.AuthError("login_disabled", "Password login attempted without ADMIN_PASSWORD_HASH", services.ErrInvalidCredentials, nil)
		return nil, services.ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		logger.Auth("login_failed", "Invalid admin credentials", map[string]interface{}{"username": username})
		return nil, services.ErrInvalidCredentials
	}

	logger.Auth("login", "Admin signed in with password", map[string]interface{}{"username": username})
	return s.issue(s.admin.Username, "")
}

func (s *AuthServiceImpl) GoogleEnabled() bool {
	return s.google != nil
}

func (s *AuthServiceImpl) GetGoogleAuthURL(state string) string {
	if s.google == nil {
		return ""
	}
	return s.google.GetAuthURL(state)
}

func (s *AuthServiceImpl) HandleGoogleCallback(ctx context.Context, code string) (*services.AdminSession, error) {
	if s.google == nil {
		return nil, fmt.Errorf("google sign-in: %w", services.ErrInvalidCredentials)
	}

	account, err := s.google.Identify(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to identify google account: %w", err)
	}

	if !account.Verified || !s.emailAllowed(account.Email) {
		logger.Auth("google_rejected", "Google account is not allowed", map[string]interface{}{
			"email":    account.Email,
			"verified": account.Verified,
		})
		return nil, services.ErrEmailNotAllowed
	}

	logger.Auth("google_login", "Admin signed in with Google", map[string]interface{}{"email": account.Email})
	return s.issue(account.Email, account.Email)
}

func (s *AuthServiceImpl) emailAllowed(email string) bool {
	for _, allowed := range s.admin.AllowedEmails {
		if strings.EqualFold(strings.TrimSpace(allowed), email) {
			return true
		}
	}
	return false
}

func (s *AuthServiceImpl) issue(username, email string) (*services.AdminSession, error) {
	token, expiresAt, err := utils.GenerateToken(s.jwt.Secret, username, email, s.jwt.ExpiresIn)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &services.AdminSession{
		Token:     token,
		Username:  username,
		Email:     email,
		ExpiresAt: expiresAt,
	}, nil
}
