package app

import (
	"context"

	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/usecase"
)

// PortalFacade aggregates the use cases behind one surface for the HTTP
// layer.
type PortalFacade struct {
	auth       *usecase.AuthUseCase
	orders     *usecase.OrderUseCase
	portfolios *usecase.PortfolioUseCase
}

// NewPortalFacade constructs PortalFacade.
func NewPortalFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, portfolios *usecase.PortfolioUseCase) *PortalFacade {
	return &PortalFacade{auth: auth, orders: orders, portfolios: portfolios}
}

func (f *PortalFacade) SignIn(ctx context.Context, provider, accessToken string) (*model.User, string, error) {
	return f.auth.SignIn(ctx, provider, accessToken)
}

func (f *PortalFacade) MobileLogin(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.MobileLogin(ctx, email, password)
}

func (f *PortalFacade) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	return f.auth.ResolveSession(ctx, token)
}

func (f *PortalFacade) ResolveBearer(ctx context.Context, token string) (*model.User, error) {
	return f.auth.ResolveBearer(ctx, token)
}

func (f *PortalFacade) RegisterFCMToken(ctx context.Context, userID int64, token *string) error {
	return f.auth.RegisterFCMToken(ctx, userID, token)
}

func (f *PortalFacade) CreateOrder(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Create(ctx, userID, draft)
}

func (f *PortalFacade) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListMine(ctx, userID)
}

func (f *PortalFacade) AllOrders(ctx context.Context, user *model.User) ([]model.OrderWithOwner, error) {
	return f.orders.ListAll(ctx, user)
}

func (f *PortalFacade) Order(ctx context.Context, user *model.User, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, user, orderID)
}

func (f *PortalFacade) AttachProof(ctx context.Context, user *model.User, orderID int64, kind usecase.ProofKind, dataURI string) (*model.Order, error) {
	return f.orders.AttachProof(ctx, user, orderID, kind, dataURI)
}

func (f *PortalFacade) SetOrderStatus(ctx context.Context, user *model.User, orderID int64, next model.OrderStatus) (*model.Order, error) {
	return f.orders.SetStatus(ctx, user, orderID, next)
}

func (f *PortalFacade) Portfolios(ctx context.Context) ([]model.Portfolio, error) {
	return f.portfolios.List(ctx)
}

func (f *PortalFacade) CreatePortfolio(ctx context.Context, user *model.User, draft usecase.PortfolioDraft) (*model.Portfolio, error) {
	return f.portfolios.Create(ctx, user, draft)
}

func (f *PortalFacade) UpdatePortfolio(ctx context.Context, user *model.User, id int64, draft usecase.PortfolioDraft) (*model.Portfolio, error) {
	return f.portfolios.Update(ctx, user, id, draft)
}

func (f *PortalFacade) DeletePortfolio(ctx context.Context, user *model.User, id int64) error {
	return f.portfolios.Delete(ctx, user, id)
}
