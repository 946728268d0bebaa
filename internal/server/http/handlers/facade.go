package handlers

import (
	"context"

	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	SignIn(ctx context.Context, provider, accessToken string) (*model.User, string, error)
	MobileLogin(ctx context.Context, email, password string) (*model.User, string, error)
	RegisterFCMToken(ctx context.Context, userID int64, token *string) error
}

// OrderFacade encapsulates pesanan operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error)
	MyOrders(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context, user *model.User) ([]model.OrderWithOwner, error)
	Order(ctx context.Context, user *model.User, orderID int64) (*model.Order, error)
	AttachProof(ctx context.Context, user *model.User, orderID int64, kind usecase.ProofKind, dataURI string) (*model.Order, error)
	SetOrderStatus(ctx context.Context, user *model.User, orderID int64, next model.OrderStatus) (*model.Order, error)
}

// PortfolioFacade provides showcase operations.
type PortfolioFacade interface {
	Portfolios(ctx context.Context) ([]model.Portfolio, error)
	CreatePortfolio(ctx context.Context, user *model.User, draft usecase.PortfolioDraft) (*model.Portfolio, error)
	UpdatePortfolio(ctx context.Context, user *model.User, id int64, draft usecase.PortfolioDraft) (*model.Portfolio, error)
	DeletePortfolio(ctx context.Context, user *model.User, id int64) error
}

// PortalFacade aggregates the full set of operations used across handlers.
type PortalFacade interface {
	AuthFacade
	OrderFacade
	PortfolioFacade
}
