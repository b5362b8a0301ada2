package oauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"search-funnel/domain/services"
	"search-funnel/pkg/config"
)

type GoogleOAuth struct {
	config *oauth2.Config
}

var _ services.GoogleIdentityProvider = (*GoogleOAuth)(nil)

func NewGoogleOAuth(cfg config.GoogleOAuthConfig) *GoogleOAuth {
	return &GoogleOAuth{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				googleoauth2.OpenIDScope,
				googleoauth2.UserinfoEmailScope,
				googleoauth2.UserinfoProfileScope,
			},
		},
	}
}

// GetAuthURL generates the Google OAuth authorization URL
func (g *GoogleOAuth) GetAuthURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// ExchangeCode exchanges the authorization code for tokens
func (g *GoogleOAuth) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return token, nil
}

// GetUserInfo fetches the signed in account's profile
func (g *GoogleOAuth) GetUserInfo(ctx context.Context, token *oauth2.Token) (*googleoauth2.Userinfo, error) {
	svc, err := googleoauth2.NewService(ctx, option.WithTokenSource(g.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	if info.Email == "" {
		return nil, errors.New("invalid user info: missing email")
	}
	return info, nil
}

func (g *GoogleOAuth) Identify(ctx context.Context, code string) (*services.GoogleAccount, error) {
	token, err := g.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := g.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	verified := info.VerifiedEmail != nil && *info.VerifiedEmail
	return &services.GoogleAccount{
		Email:    info.Email,
		Name:     info.Name,
		Verified: verified,
	}, nil
}

// ValidateConfig checks if the Google OAuth configuration is valid
func (g *GoogleOAuth) ValidateConfig() error {
	if g.config.ClientID == "" {
		return errors.New("GOOGLE_CLIENT_ID is not configured")
	}
	if g.config.ClientSecret == "" {
		return errors.New("GOOGLE_CLIENT_SECRET is not configured")
	}
	if g.config.RedirectURL == "" {
		return errors.New("GOOGLE_REDIRECT_URL is not configured")
	}
	return nil
}
