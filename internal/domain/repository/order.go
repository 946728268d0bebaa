package repository

import (
	"context"

	"github.com/jokistudio/portal/internal/domain/model"
)

// OrderRepository describes persistence operations with pesanan records.
// Every lifecycle mutation is a single conditional UPDATE so that two
// concurrent requests can never both pass a status precondition.
type OrderRepository interface {
	Create(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// ListAll returns every order with the owner identity embedded.
	ListAll(ctx context.Context) ([]model.OrderWithOwner, error)
	// AttachDepositProof sets bukti_dp and advances PENDING to PROSES in one
	// statement, guarded by owner and current status. Returns the updated
	// order, or false when the guard did not match any row.
	AttachDepositProof(ctx context.Context, orderID, userID int64, proofURL string) (*model.Order, bool, error)
	// AttachFinalProof sets bukti_pelunasan, guarded by owner, status
	// SELESAI and an existing deposit proof. Status is left unchanged.
	AttachFinalProof(ctx context.Context, orderID, userID int64, proofURL string) (*model.Order, bool, error)
	// UpdateStatus moves the order to status, guarded by the expected
	// current status so forward-only transitions hold under concurrency.
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) (*model.Order, bool, error)
}
