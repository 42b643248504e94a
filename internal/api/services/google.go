package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rohits-web03/roboshow/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var (
	ErrGoogleNoEmail    = errors.New("google account has no email")
	ErrGoogleUnverified = errors.New("google email address is not verified")
)

// NewGoogleOAuth returns nil when no client credentials are configured.
func NewGoogleOAuth(cfg config.GoogleConfig) *oauth2.Config {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil
	}
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

type GoogleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// FetchGoogleUser exchanges an authorization code and loads the profile of
// the signed-in Google account.
func FetchGoogleUser(ctx context.Context, oauthCfg *oauth2.Config, code string) (*GoogleUser, error) {
	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := oauthCfg.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info returned %s", resp.Status)
	}

	var user GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user info: %w", err)
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return &user, nil
}

// Validate rejects profiles that cannot be matched to an account by email.
func (u GoogleUser) Validate() error {
	if u.Email == "" {
		return ErrGoogleNoEmail
	}
	if !u.VerifiedEmail {
		return ErrGoogleUnverified
	}
	return nil
}
