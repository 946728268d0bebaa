package test

import (
	"context"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Tokens  []string
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Add seeds a user, assigning an ID when missing.
func (s *UserRepositoryStub) Add(user *model.User) *model.User {
	if user.ID == 0 {
		user.ID = s.Next
		s.Next++
	} else if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
	s.ByEmail[user.Email] = user
	s.ByID[user.ID] = user
	return user
}

// Upsert creates the user on first call and returns the stored record after.
func (s *UserRepositoryStub) Upsert(ctx context.Context, id model.Identity) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if existing, ok := s.ByEmail[id.Email]; ok {
		return existing, nil
	}
	return s.Add(&model.User{Email: id.Email, Name: id.Name, Image: id.Image, Role: model.RoleUser}), nil
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SetFCMToken stores or clears the user's push token.
func (s *UserRepositoryStub) SetFCMToken(ctx context.Context, userID int64, token *string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.FCMToken = token
	return nil
}

// EnsureAdmin creates or promotes the account and records the credential.
func (s *UserRepositoryStub) EnsureAdmin(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	hash := passwordHash
	if existing, ok := s.ByEmail[email]; ok {
		existing.Role = model.RoleAdmin
		existing.PasswordHash = &hash
		return existing, nil
	}
	return s.Add(&model.User{Email: email, Name: name, Role: model.RoleAdmin, PasswordHash: &hash}), nil
}

// ListAdminTokens returns the seeded token list.
func (s *UserRepositoryStub) ListAdminTokens(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Tokens, nil
}

// OrderRepositoryStub allows tests to customize behaviour per method.
type OrderRepositoryStub struct {
	CreateFn             func(context.Context, int64, model.OrderDraft) (*model.Order, error)
	GetByIDFn            func(context.Context, int64) (*model.Order, error)
	ListByUserFn         func(context.Context, int64) ([]model.Order, error)
	ListAllFn            func(context.Context) ([]model.OrderWithOwner, error)
	AttachDepositProofFn func(context.Context, int64, int64, string) (*model.Order, bool, error)
	AttachFinalProofFn   func(context.Context, int64, int64, string) (*model.Order, bool, error)
	UpdateStatusFn       func(context.Context, int64, model.OrderStatus, model.OrderStatus) (*model.Order, bool, error)
}

func (s *OrderRepositoryStub) Create(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, draft)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.OrderWithOwner, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) AttachDepositProof(ctx context.Context, orderID, userID int64, proofURL string) (*model.Order, bool, error) {
	if s.AttachDepositProofFn != nil {
		return s.AttachDepositProofFn(ctx, orderID, userID, proofURL)
	}
	return nil, false, nil
}

func (s *OrderRepositoryStub) AttachFinalProof(ctx context.Context, orderID, userID int64, proofURL string) (*model.Order, bool, error) {
	if s.AttachFinalProofFn != nil {
		return s.AttachFinalProofFn(ctx, orderID, userID, proofURL)
	}
	return nil, false, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) (*model.Order, bool, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to)
	}
	return nil, false, nil
}

// PortfolioRepositoryStub allows tests to customize behaviour per method.
type PortfolioRepositoryStub struct {
	CreateFn  func(context.Context, model.Portfolio) (*model.Portfolio, error)
	GetByIDFn func(context.Context, int64) (*model.Portfolio, error)
	ListFn    func(context.Context) ([]model.Portfolio, error)
	UpdateFn  func(context.Context, model.Portfolio) (*model.Portfolio, error)
	DeleteFn  func(context.Context, int64) error
}

func (s *PortfolioRepositoryStub) Create(ctx context.Context, p model.Portfolio) (*model.Portfolio, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	p.ID = 1
	return &p, nil
}

func (s *PortfolioRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Portfolio, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PortfolioRepositoryStub) List(ctx context.Context) ([]model.Portfolio, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s *PortfolioRepositoryStub) Update(ctx context.Context, p model.Portfolio) (*model.Portfolio, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, p)
	}
	return &p, nil
}

func (s *PortfolioRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}
