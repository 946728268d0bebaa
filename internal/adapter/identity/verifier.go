package identity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
)

// Supported OAuth providers.
const (
	ProviderGoogle = "google"
	ProviderGithub = "github"
)

// Verifier resolves a provider access token to the identity it belongs to.
type Verifier interface {
	Verify(ctx context.Context, provider, accessToken string) (model.Identity, error)
}

// HTTPVerifier asks the provider's userinfo endpoint who the token owner is.
// The token is never trusted on its own: an identity only exists if the
// provider confirms it.
type HTTPVerifier struct {
	client    *resty.Client
	googleURL string
	githubURL string
	logger    *slog.Logger
}

type googleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type githubUserInfo struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// New creates a verifier for the configured userinfo endpoints.
func New(googleURL, githubURL string, logger *slog.Logger) *HTTPVerifier {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")
	return &HTTPVerifier{client: client, googleURL: googleURL, githubURL: githubURL, logger: logger}
}

func (v *HTTPVerifier) Verify(ctx context.Context, provider, accessToken string) (model.Identity, error) {
	switch provider {
	case ProviderGoogle:
		return v.verifyGoogle(ctx, accessToken)
	case ProviderGithub:
		return v.verifyGithub(ctx, accessToken)
	default:
		return model.Identity{}, fmt.Errorf("%w: provider %s tidak dikenal", domainErrors.ErrValidation, provider)
	}
}

func (v *HTTPVerifier) verifyGoogle(ctx context.Context, accessToken string) (model.Identity, error) {
	var info googleUserInfo
	resp, err := v.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(v.googleURL)
	if err != nil {
		return model.Identity{}, fmt.Errorf("google userinfo: %w", err)
	}
	if resp.IsError() {
		v.logger.Warn("google rejected token", "status", resp.StatusCode())
		return model.Identity{}, domainErrors.ErrAuthentication
	}
	if info.Email == "" {
		return model.Identity{}, domainErrors.ErrAuthentication
	}
	return model.Identity{Email: info.Email, Name: info.Name, Image: info.Picture}, nil
}

func (v *HTTPVerifier) verifyGithub(ctx context.Context, accessToken string) (model.Identity, error) {
	var info githubUserInfo
	resp, err := v.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(v.githubURL)
	if err != nil {
		return model.Identity{}, fmt.Errorf("github userinfo: %w", err)
	}
	if resp.IsError() {
		v.logger.Warn("github rejected token", "status", resp.StatusCode())
		return model.Identity{}, domainErrors.ErrAuthentication
	}
	if info.Login == "" && info.Email == "" {
		return model.Identity{}, domainErrors.ErrAuthentication
	}

	// Github may hide the account email; the noreply address keeps the
	// identity stable across sign-ins.
	email := info.Email
	if email == "" {
		email = info.Login + "@users.noreply.github.com"
	}
	name := info.Name
	if name == "" {
		name = info.Login
	}
	return model.Identity{Email: email, Name: name, Image: info.AvatarURL}, nil
}
