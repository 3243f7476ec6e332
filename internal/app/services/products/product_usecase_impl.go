package products

import (
	"context"
	"fmt"
	"sync"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/app/services/categories"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type productUsecase struct {
	ProductRepository  ProductRepository
	CategoryRepository categories.CategoryRepository
	Log                *zap.Logger
}

var (
	productUsecaseInstance ProductUsecase
	onceProductUsecase     sync.Once
)

func NewProductUsecase(
	productRepository ProductRepository,
	categoryRepository categories.CategoryRepository,
	logger *zap.Logger,
) ProductUsecase {
	onceProductUsecase.Do(func() {
		productUsecaseInstance = &productUsecase{
			ProductRepository:  productRepository,
			CategoryRepository: categoryRepository,
			Log:                logger,
		}
	})
	return productUsecaseInstance
}

func (uc *productUsecase) ListProducts(ctx context.Context, sortKey string, page int) ([]models.Product, int, error) {
	return uc.ProductRepository.FindPaged(ctx, sortKey, page, constvars.ProductsPageSize)
}

func (uc *productUsecase) ListAllProducts(ctx context.Context, page int) ([]models.Product, int, error) {
	return uc.ProductRepository.FindPaged(ctx, constvars.ProductSortRelevance, page, constvars.AllProductsPageSize)
}

func (uc *productUsecase) GetProductByID(ctx context.Context, productID string) (*models.Product, error) {
	product, err := uc.ProductRepository.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, exceptions.ErrProductNotFound(fmt.Errorf("no product with id %s", productID))
	}
	return product, nil
}

func (uc *productUsecase) ListProductsByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error) {
	category, err := uc.CategoryRepository.FindByName(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, exceptions.ErrCategoryNotFound(fmt.Errorf("no category named %q", categoryName))
	}

	return uc.ProductRepository.FindByCategoryID(ctx, category.ID)
}
