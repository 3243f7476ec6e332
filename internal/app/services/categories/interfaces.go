package categories

import (
	"context"
	"vasavimart-service/internal/app/models"
)

type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*models.Category, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindByID(ctx context.Context, categoryID string) (*models.Category, error)
}
