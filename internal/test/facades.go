package test

import (
	"context"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/usecase"
)

// FacadeStub implements the HTTP facade via function overrides.
type FacadeStub struct {
	SignInFn           func(context.Context, string, string) (*model.User, string, error)
	MobileLoginFn      func(context.Context, string, string) (*model.User, string, error)
	RegisterFCMTokenFn func(context.Context, int64, *string) error

	CreateOrderFn    func(context.Context, int64, model.OrderDraft) (*model.Order, error)
	MyOrdersFn       func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn      func(context.Context, *model.User) ([]model.OrderWithOwner, error)
	OrderFn          func(context.Context, *model.User, int64) (*model.Order, error)
	AttachProofFn    func(context.Context, *model.User, int64, usecase.ProofKind, string) (*model.Order, error)
	SetOrderStatusFn func(context.Context, *model.User, int64, model.OrderStatus) (*model.Order, error)

	PortfoliosFn      func(context.Context) ([]model.Portfolio, error)
	CreatePortfolioFn func(context.Context, *model.User, usecase.PortfolioDraft) (*model.Portfolio, error)
	UpdatePortfolioFn func(context.Context, *model.User, int64, usecase.PortfolioDraft) (*model.Portfolio, error)
	DeletePortfolioFn func(context.Context, *model.User, int64) error
}

func (s *FacadeStub) SignIn(ctx context.Context, provider, accessToken string) (*model.User, string, error) {
	if s.SignInFn != nil {
		return s.SignInFn(ctx, provider, accessToken)
	}
	return &model.User{ID: 1, Role: model.RoleUser}, "session-token", nil
}

func (s *FacadeStub) MobileLogin(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.MobileLoginFn != nil {
		return s.MobileLoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Role: model.RoleAdmin}, "bearer-token", nil
}

func (s *FacadeStub) RegisterFCMToken(ctx context.Context, userID int64, token *string) error {
	if s.RegisterFCMTokenFn != nil {
		return s.RegisterFCMTokenFn(ctx, userID, token)
	}
	return nil
}

func (s *FacadeStub) CreateOrder(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, userID, draft)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s *FacadeStub) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID)
	}
	return nil, nil
}

func (s *FacadeStub) AllOrders(ctx context.Context, user *model.User) ([]model.OrderWithOwner, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, user)
	}
	return nil, nil
}

func (s *FacadeStub) Order(ctx context.Context, user *model.User, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, user, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) AttachProof(ctx context.Context, user *model.User, orderID int64, kind usecase.ProofKind, dataURI string) (*model.Order, error) {
	if s.AttachProofFn != nil {
		return s.AttachProofFn(ctx, user, orderID, kind, dataURI)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) SetOrderStatus(ctx context.Context, user *model.User, orderID int64, next model.OrderStatus) (*model.Order, error) {
	if s.SetOrderStatusFn != nil {
		return s.SetOrderStatusFn(ctx, user, orderID, next)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *FacadeStub) Portfolios(ctx context.Context) ([]model.Portfolio, error) {
	if s.PortfoliosFn != nil {
		return s.PortfoliosFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) CreatePortfolio(ctx context.Context, user *model.User, draft usecase.PortfolioDraft) (*model.Portfolio, error) {
	if s.CreatePortfolioFn != nil {
		return s.CreatePortfolioFn(ctx, user, draft)
	}
	return &model.Portfolio{ID: 1}, nil
}

func (s *FacadeStub) UpdatePortfolio(ctx context.Context, user *model.User, id int64, draft usecase.PortfolioDraft) (*model.Portfolio, error) {
	if s.UpdatePortfolioFn != nil {
		return s.UpdatePortfolioFn(ctx, user, id, draft)
	}
	return &model.Portfolio{ID: id}, nil
}

func (s *FacadeStub) DeletePortfolio(ctx context.Context, user *model.User, id int64) error {
	if s.DeletePortfolioFn != nil {
		return s.DeletePortfolioFn(ctx, user, id)
	}
	return nil
}
