package repository

import (
	"context"

	"github.com/jokistudio/portal/internal/domain/model"
)

// PortfolioRepository describes persistence operations with showcase items.
type PortfolioRepository interface {
	Create(ctx context.Context, p model.Portfolio) (*model.Portfolio, error)
	GetByID(ctx context.Context, id int64) (*model.Portfolio, error)
	List(ctx context.Context) ([]model.Portfolio, error)
	Update(ctx context.Context, p model.Portfolio) (*model.Portfolio, error)
	Delete(ctx context.Context, id int64) error
}
