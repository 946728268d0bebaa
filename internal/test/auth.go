package test

import (
	"context"
	"errors"

	"github.com/jokistudio/portal/internal/domain/model"
	pkgAuth "github.com/jokistudio/portal/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// SessionSignerStub issues and parses session tokens via overrides.
type SessionSignerStub struct {
	IssueFn func(int64) (string, error)
	ParseFn func(string) (int64, error)
}

func (s SessionSignerStub) Issue(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "session-token", nil
}

func (s SessionSignerStub) Parse(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// BearerSignerStub issues and parses bearer tokens via overrides.
type BearerSignerStub struct {
	IssueFn func(int64, string, string) (string, error)
	ParseFn func(string) (*pkgAuth.MobileClaims, error)
}

func (s BearerSignerStub) Issue(userID int64, email, role string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, email, role)
	}
	return "bearer-token", nil
}

func (s BearerSignerStub) Parse(token string) (*pkgAuth.MobileClaims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.MobileClaims{UserID: 1, IsMobile: true}, nil
}

// GateStub resolves credentials to principals via overrides.
type GateStub struct {
	SessionFn func(context.Context, string) (*model.User, error)
	BearerFn  func(context.Context, string) (*model.User, error)
}

func (s GateStub) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	if s.SessionFn != nil {
		return s.SessionFn(ctx, token)
	}
	return &model.User{ID: 1, Role: model.RoleUser}, nil
}

func (s GateStub) ResolveBearer(ctx context.Context, token string) (*model.User, error) {
	if s.BearerFn != nil {
		return s.BearerFn(ctx, token)
	}
	return &model.User{ID: 1, Role: model.RoleAdmin}, nil
}

// VerifierStub resolves provider tokens via overrides.
type VerifierStub struct {
	VerifyFn func(context.Context, string, string) (model.Identity, error)
}

func (s VerifierStub) Verify(ctx context.Context, provider, accessToken string) (model.Identity, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, provider, accessToken)
	}
	return model.Identity{Email: "user@example.com", Name: "User"}, nil
}
