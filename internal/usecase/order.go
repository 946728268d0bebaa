package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jokistudio/portal/internal/adapter/objectstore"
	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/domain/repository"
	"github.com/jokistudio/portal/internal/notify"
)

// ProofKind selects which payment proof an upload targets.
type ProofKind string

const (
	ProofDeposit ProofKind = "buktiDP"
	ProofFinal   ProofKind = "buktiPelunasan"
)

// ParseProofKind maps the wire value onto a known proof kind.
func ParseProofKind(value string) (ProofKind, error) {
	switch ProofKind(value) {
	case ProofDeposit, ProofFinal:
		return ProofKind(value), nil
	}
	return "", fmt.Errorf("%w: jenisBukti %q tidak dikenal", domainErrors.ErrValidation, value)
}

// OrderUseCase drives the pesanan lifecycle: intake, proof uploads and
// administrative status transitions.
type OrderUseCase struct {
	orders     repository.OrderRepository
	store      objectstore.Store
	dispatcher notify.Dispatcher
	logger     *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, store objectstore.Store, dispatcher notify.Dispatcher, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, store: store, dispatcher: dispatcher, logger: logger}
}

// Create registers a new order in PENDING for the calling user.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	if err := ValidateOrderDraft(draft); err != nil {
		return nil, err
	}

	order, err := u.orders.Create(ctx, userID, draft)
	if err != nil {
		return nil, err
	}

	u.dispatch(ctx, model.Event{
		Kind:    model.EventOrderCreated,
		OrderID: order.ID,
		Title:   "Pesanan baru",
		Body:    fmt.Sprintf("%s memesan aplikasi %s", order.Nama, order.NamaAplikasi),
		Meta:    map[string]string{"orderId": strconv.FormatInt(order.ID, 10)},
	})

	return order, nil
}

// ListMine returns the caller's orders, newest first.
func (u *OrderUseCase) ListMine(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order with owner identity. Admin only.
func (u *OrderUseCase) ListAll(ctx context.Context, user *model.User) ([]model.OrderWithOwner, error) {
	if !user.IsAdmin() {
		return nil, domainErrors.ErrAuthorization
	}
	return u.orders.ListAll(ctx)
}

// Get returns one order. Non-owners get not-found rather than forbidden so
// order identifiers cannot be probed.
func (u *OrderUseCase) Get(ctx context.Context, user *model.User, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != user.ID && !user.IsAdmin() {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// AttachProof uploads a payment proof and binds it to the order. The upload
// happens before the guarded update; when the guard then misses, the fresh
// object is deleted again so the store holds no orphans.
func (u *OrderUseCase) AttachProof(ctx context.Context, user *model.User, orderID int64, kind ProofKind, dataURI string) (*model.Order, error) {
	if dataURI == "" {
		return nil, fmt.Errorf("%w: bukti wajib diisi", domainErrors.ErrValidation)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != user.ID {
		return nil, domainErrors.ErrNotFound
	}

	var previousProof *string
	switch kind {
	case ProofDeposit:
		if order.Status != model.OrderStatusPending {
			return nil, fmt.Errorf("%w: bukti DP hanya untuk pesanan PENDING", domainErrors.ErrInvalidState)
		}
	case ProofFinal:
		if order.BuktiDP == nil {
			return nil, domainErrors.ErrDepositMissing
		}
		if order.Status != model.OrderStatusSelesai {
			return nil, fmt.Errorf("%w: bukti pelunasan hanya untuk pesanan SELESAI", domainErrors.ErrInvalidState)
		}
		previousProof = order.BuktiPelunasan
	default:
		return nil, fmt.Errorf("%w: jenisBukti tidak dikenal", domainErrors.ErrValidation)
	}

	proofURL, err := u.store.Upload(ctx, dataURI)
	if err != nil {
		return nil, err
	}

	var (
		updated *model.Order
		matched bool
	)
	if kind == ProofDeposit {
		updated, matched, err = u.orders.AttachDepositProof(ctx, orderID, user.ID, proofURL)
	} else {
		updated, matched, err = u.orders.AttachFinalProof(ctx, orderID, user.ID, proofURL)
	}
	if err != nil {
		u.cleanupObject(ctx, proofURL)
		return nil, err
	}
	if !matched {
		// Another request moved the order between the read and the update.
		u.cleanupObject(ctx, proofURL)
		return nil, fmt.Errorf("%w: pesanan sudah berubah", domainErrors.ErrInvalidState)
	}

	// A re-uploaded final proof replaces the previous object only after the
	// new one is confirmed in the record.
	if previousProof != nil && *previousProof != proofURL {
		u.cleanupObject(ctx, *previousProof)
	}

	event := model.Event{
		Kind:    model.EventProofUploaded,
		OrderID: updated.ID,
		Title:   "Bukti pembayaran baru",
		Body:    fmt.Sprintf("%s mengunggah %s untuk %s", updated.Nama, kind, updated.NamaAplikasi),
		Meta: map[string]string{
			"orderId":    strconv.FormatInt(updated.ID, 10),
			"jenisBukti": string(kind),
			"status":     string(updated.Status),
		},
	}
	u.dispatch(ctx, event)

	return updated, nil
}

// SetStatus moves an order along the lifecycle. Admin only; transitions are
// forward-only and checked again inside the guarded update.
func (u *OrderUseCase) SetStatus(ctx context.Context, user *model.User, orderID int64, next model.OrderStatus) (*model.Order, error) {
	if !user.IsAdmin() {
		return nil, domainErrors.ErrAuthorization
	}
	if !next.Valid() {
		return nil, fmt.Errorf("%w: status %q tidak dikenal", domainErrors.ErrValidation, next)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidState, order.Status, next)
	}
	// A completed order with its final proof attached is settled; nothing
	// moves it anymore, not even a rejection.
	if order.Status == model.OrderStatusSelesai && order.BuktiPelunasan != nil {
		return nil, fmt.Errorf("%w: pesanan sudah lunas", domainErrors.ErrInvalidState)
	}

	updated, matched, err := u.orders.UpdateStatus(ctx, orderID, order.Status, next)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, fmt.Errorf("%w: pesanan sudah berubah", domainErrors.ErrInvalidState)
	}

	u.dispatch(ctx, model.Event{
		Kind:    model.EventOrderStatusChanged,
		OrderID: updated.ID,
		Title:   "Status pesanan berubah",
		Body:    fmt.Sprintf("%s kini %s", updated.NamaAplikasi, updated.Status),
		Meta: map[string]string{
			"orderId": strconv.FormatInt(updated.ID, 10),
			"status":  string(updated.Status),
		},
	})

	return updated, nil
}

func (u *OrderUseCase) dispatch(ctx context.Context, event model.Event) {
	if u.dispatcher == nil {
		return
	}
	if err := u.dispatcher.Notify(ctx, event); err != nil {
		u.logger.Warn("notification dispatch failed", "event", event.Kind, "orderID", event.OrderID, "error", err)
	}
}

func (u *OrderUseCase) cleanupObject(ctx context.Context, objectURL string) {
	if err := u.store.Delete(ctx, objectURL); err != nil {
		u.logger.Warn("orphan object cleanup failed", "url", objectURL, "error", err)
	}
}
