package products

import (
	"context"
	"vasavimart-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductUsecase interface {
	ListProducts(ctx context.Context, sortKey string, page int) ([]models.Product, int, error)
	ListAllProducts(ctx context.Context, page int) ([]models.Product, int, error)
	GetProductByID(ctx context.Context, productID string) (*models.Product, error)
	ListProductsByCategoryName(ctx context.Context, categoryName string) ([]models.Product, error)
}

type ProductRepository interface {
	// FindPaged returns one page of products plus the total match count.
	FindPaged(ctx context.Context, sortKey string, page, pageSize int) ([]models.Product, int, error)
	FindByID(ctx context.Context, productID string) (*models.Product, error)
	FindByCategoryID(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error)
}
