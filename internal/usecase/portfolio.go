package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jokistudio/portal/internal/adapter/objectstore"
	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/domain/repository"
	"github.com/jokistudio/portal/internal/storage/rediscache"
)

// PortfolioDraft carries the fields of a showcase item. Image is a base64
// data URI on create; on update an empty Image keeps the stored one.
type PortfolioDraft struct {
	Nama      string
	Deskripsi string
	TechStack []string
	Link      string
	Image     string
}

func (d PortfolioDraft) validate(imageRequired bool) error {
	if strings.TrimSpace(d.Nama) == "" {
		return fmt.Errorf("%w: nama wajib diisi", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(d.Deskripsi) == "" {
		return fmt.Errorf("%w: deskripsi wajib diisi", domainErrors.ErrValidation)
	}
	if len(d.TechStack) == 0 {
		return fmt.Errorf("%w: techStack wajib diisi", domainErrors.ErrValidation)
	}
	if imageRequired && d.Image == "" {
		return fmt.Errorf("%w: image wajib diisi", domainErrors.ErrValidation)
	}
	return nil
}

// PortfolioUseCase serves the public showcase and its admin management.
type PortfolioUseCase struct {
	portfolios repository.PortfolioRepository
	cache      *rediscache.PortfolioCache
	store      objectstore.Store
	logger     *slog.Logger
}

// NewPortfolioUseCase constructs PortfolioUseCase.
func NewPortfolioUseCase(portfolios repository.PortfolioRepository, cache *rediscache.PortfolioCache, store objectstore.Store, logger *slog.Logger) *PortfolioUseCase {
	return &PortfolioUseCase{portfolios: portfolios, cache: cache, store: store, logger: logger}
}

// List returns the public showcase, served from cache when warm.
func (u *PortfolioUseCase) List(ctx context.Context) ([]model.Portfolio, error) {
	if items, hit := u.cache.Get(ctx); hit {
		return items, nil
	}

	items, err := u.portfolios.List(ctx)
	if err != nil {
		return nil, err
	}
	u.cache.Set(ctx, items)
	return items, nil
}

// Create adds a showcase item. Admin only.
func (u *PortfolioUseCase) Create(ctx context.Context, user *model.User, draft PortfolioDraft) (*model.Portfolio, error) {
	if !user.IsAdmin() {
		return nil, domainErrors.ErrAuthorization
	}
	if err := draft.validate(true); err != nil {
		return nil, err
	}

	imageURL, err := u.store.Upload(ctx, draft.Image)
	if err != nil {
		return nil, err
	}

	created, err := u.portfolios.Create(ctx, model.Portfolio{
		Nama:      draft.Nama,
		Deskripsi: draft.Deskripsi,
		TechStack: draft.TechStack,
		Link:      draft.Link,
		Image:     imageURL,
	})
	if err != nil {
		u.cleanupObject(ctx, imageURL)
		return nil, err
	}

	u.cache.Invalidate(ctx)
	return created, nil
}

// Update rewrites a showcase item. A new image replaces the stored object
// only after the record points at the new one.
func (u *PortfolioUseCase) Update(ctx context.Context, user *model.User, id int64, draft PortfolioDraft) (*model.Portfolio, error) {
	if !user.IsAdmin() {
		return nil, domainErrors.ErrAuthorization
	}
	if err := draft.validate(false); err != nil {
		return nil, err
	}

	existing, err := u.portfolios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	imageURL := existing.Image
	if draft.Image != "" {
		imageURL, err = u.store.Upload(ctx, draft.Image)
		if err != nil {
			return nil, err
		}
	}

	updated, err := u.portfolios.Update(ctx, model.Portfolio{
		ID:        id,
		Nama:      draft.Nama,
		Deskripsi: draft.Deskripsi,
		TechStack: draft.TechStack,
		Link:      draft.Link,
		Image:     imageURL,
	})
	if err != nil {
		if imageURL != existing.Image {
			u.cleanupObject(ctx, imageURL)
		}
		return nil, err
	}

	if imageURL != existing.Image && existing.Image != "" {
		u.cleanupObject(ctx, existing.Image)
	}

	u.cache.Invalidate(ctx)
	return updated, nil
}

// Delete removes a showcase item and its stored image. Admin only.
func (u *PortfolioUseCase) Delete(ctx context.Context, user *model.User, id int64) error {
	if !user.IsAdmin() {
		return domainErrors.ErrAuthorization
	}

	existing, err := u.portfolios.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.portfolios.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Image != "" {
		u.cleanupObject(ctx, existing.Image)
	}

	u.cache.Invalidate(ctx)
	return nil
}

func (u *PortfolioUseCase) cleanupObject(ctx context.Context, objectURL string) {
	if err := u.store.Delete(ctx, objectURL); err != nil {
		u.logger.Warn("orphan object cleanup failed", "url", objectURL, "error", err)
	}
}
