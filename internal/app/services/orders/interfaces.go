package orders

import (
	"context"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/dto/responses"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, request *requests.CreateOrder) (*responses.CreateOrder, error)
	ListCurrentOrders(ctx context.Context, phoneNumber string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, request *requests.UpdateOrderStatus) (*responses.UpdateOrderStatus, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	FindByPhoneAndStatuses(ctx context.Context, phoneNumber string, statuses []string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}
