package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"search-funnel/domain/services"
	"search-funnel/pkg/config"
	"search-funnel/pkg/utils"
)

func authFixture(t *testing.T, google services.GoogleIdentityProvider) services.AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(
		config.AdminConfig{Username: "admin", PasswordHash: string(hash), AllowedEmails: []string{"Ops@Example.com"}},
		config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour},
		google,
	)
}

func TestAuthService_Login(t *testing.T) {
	svc := authFixture(t, nil)

	session, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)

	admin, err := utils.ValidateToken(session.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, utils.RoleAdmin, admin.Role)

	_, err = svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "root", "s3cret")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_GoogleCallback(t *testing.T) {
	ctx := context.Background()
	google := new(MockGoogleProvider)
	google.On("Identify", mock.Anything, "good").Return(&services.GoogleAccount{Email: "ops@example.com", Verified: true}, nil)
	google.On("Identify", mock.Anything, "stranger").Return(&services.GoogleAccount{Email: "eve@example.com", Verified: true}, nil)
	google.On("Identify", mock.Anything, "unverified").Return(&services.GoogleAccount{Email: "ops@example.com"}, nil)

	svc := authFixture(t, google)
	require.True(t, svc.GoogleEnabled())

	session, err := svc.HandleGoogleCallback(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", session.Email)

	_, err = svc.HandleGoogleCallback(ctx, "stranger")
	assert.ErrorIs(t, err, services.ErrEmailNotAllowed)

	_, err = svc.HandleGoogleCallback(ctx, "unverified")
	assert.ErrorIs(t, err, services.ErrEmailNotAllowed)
}

func TestAuthService_GoogleDisabled(t *testing.T) {
	svc := authFixture(t, nil)
	assert.False(t, svc.GoogleEnabled())
	assert.Empty(t, svc.GetGoogleAuthURL("state"))
}
