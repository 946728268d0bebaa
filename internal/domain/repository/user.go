package repository

import (
	"context"

	"github.com/jokistudio/portal/internal/domain/model"
)

// UserRepository describes persistence operations with principals.
type UserRepository interface {
	// Upsert creates the principal on first sign-in and returns the stored
	// record afterwards. Role is assigned at creation only.
	Upsert(ctx context.Context, identity model.Identity) (*model.User, error)
	// EnsureAdmin creates or promotes the account to ADMIN with the given
	// credential hash. Used by startup provisioning only.
	EnsureAdmin(ctx context.Context, email, name, passwordHash string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// SetFCMToken stores or clears (nil) the principal's push token.
	SetFCMToken(ctx context.Context, userID int64, token *string) error
	// ListAdminTokens returns registered push tokens of administrators.
	ListAdminTokens(ctx context.Context) ([]string, error)
}
