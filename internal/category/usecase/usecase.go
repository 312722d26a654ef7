package usecase

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/category"
	"github.com/fekuna/omnipos-storefront/internal/category/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("category not found")

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "find category")
	}
	if cat == nil {
		return nil, ErrNotFound
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, error) {
	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	if filters.ParentID != nil {
		parent, err := uc.GetCategory(ctx, *filters.ParentID)
		if err != nil {
			return nil, err
		}
		categories = parent.Children
	}

	if !filters.IncludeChildren {
		flat := make([]model.Category, 0, len(categories))
		for _, c := range categories {
			c.Children = nil
			flat = append(flat, c)
		}
		categories = flat
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}
