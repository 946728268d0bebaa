package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jokistudio/portal/internal/adapter/identity"
	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/domain/repository"
	pkgAuth "github.com/jokistudio/portal/internal/pkg/auth"
)

// AuthUseCase handles sign-in on both surfaces and resolves credentials to
// live principals. Resolution is fail-closed: any doubt about a token or
// the account behind it reads as unauthenticated.
type AuthUseCase struct {
	users    repository.UserRepository
	verifier identity.Verifier
	sessions pkgAuth.SessionSigner
	bearer   pkgAuth.BearerSigner
	hasher   pkgAuth.PasswordHasher
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, verifier identity.Verifier, sessions pkgAuth.SessionSigner, bearer pkgAuth.BearerSigner, hasher pkgAuth.PasswordHasher) *AuthUseCase {
	return &AuthUseCase{users: users, verifier: verifier, sessions: sessions, bearer: bearer, hasher: hasher}
}

// BootstrapAdmin provisions the administrator account at startup: the
// password is hashed and the account is created, or promoted when the email
// already signed in as a regular user. No-op when no credentials are
// configured, so deployments without the mobile surface need nothing.
func (u *AuthUseCase) BootstrapAdmin(ctx context.Context, email, name, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" && password == "" {
		return nil, nil
	}
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: admin email dan password wajib diisi bersama", domainErrors.ErrValidation)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return u.users.EnsureAdmin(ctx, email, name, hash)
}

// SignIn verifies a provider access token, upserts the account and issues
// a web session token. New accounts always start as USER.
func (u *AuthUseCase) SignIn(ctx context.Context, provider, accessToken string) (*model.User, string, error) {
	if accessToken == "" {
		return nil, "", domainErrors.ErrAuthentication
	}

	id, err := u.verifier.Verify(ctx, provider, accessToken)
	if err != nil {
		return nil, "", err
	}

	user, err := u.users.Upsert(ctx, id)
	if err != nil {
		return nil, "", err
	}

	token, err := u.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// MobileLogin authenticates an administrator with email and password and
// issues a bearer token for the mobile app. Every failure answers the same
// way so neither account existence nor role leaks.
func (u *AuthUseCase) MobileLogin(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrAuthentication
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", domainErrors.ErrAuthentication
	}
	if !user.IsAdmin() || user.PasswordHash == nil {
		return nil, "", domainErrors.ErrAuthentication
	}
	if err := u.hasher.Compare(*user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrAuthentication
	}

	token, err := u.bearer.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ResolveSession maps a web session token to the live account.
func (u *AuthUseCase) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	userID, err := u.sessions.Parse(token)
	if err != nil {
		return nil, domainErrors.ErrAuthentication
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, domainErrors.ErrAuthentication
	}
	return user, nil
}

// ResolveBearer maps a mobile bearer token to the live account. The role
// in the claims is ignored, the stored role decides.
func (u *AuthUseCase) ResolveBearer(ctx context.Context, token string) (*model.User, error) {
	claims, err := u.bearer.Parse(token)
	if err != nil {
		return nil, domainErrors.ErrAuthentication
	}

	user, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainErrors.ErrAuthentication
	}
	return user, nil
}

// RegisterFCMToken stores or clears (nil) the caller's push device token.
func (u *AuthUseCase) RegisterFCMToken(ctx context.Context, userID int64, token *string) error {
	return u.users.SetFCMToken(ctx, userID, token)
}
