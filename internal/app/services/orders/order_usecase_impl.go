package orders

import (
	"context"
	"fmt"
	"sync"
	"time"
	"vasavimart-service/internal/app/contracts"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/dto/responses"
	"vasavimart-service/internal/pkg/exceptions"
	"vasavimart-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// allowedTransitions is the order lifecycle. Terminal statuses have no
// outgoing edges.
var allowedTransitions = map[string][]string{
	constvars.OrderStatusPending:   {constvars.OrderStatusConfirmed, constvars.OrderStatusCancelled, constvars.OrderStatusExpired},
	constvars.OrderStatusConfirmed: {constvars.OrderStatusShipped, constvars.OrderStatusCancelled},
	constvars.OrderStatusShipped:   {constvars.OrderStatusDelivered},
}

var statusNotificationBodies = map[string]string{
	constvars.OrderStatusConfirmed: "Your order has been confirmed",
	constvars.OrderStatusShipped:   "Your order is on the way",
	constvars.OrderStatusDelivered: "Your order has been delivered",
	constvars.OrderStatusCancelled: "Your order has been cancelled",
	constvars.OrderStatusExpired:   "Your order has expired",
}

type orderUsecase struct {
	OrderRepository OrderRepository
	PushService     contracts.PushService
	Log             *zap.Logger
}

var (
	orderUsecaseInstance OrderUsecase
	onceOrderUsecase     sync.Once
)

func NewOrderUsecase(
	orderRepository OrderRepository,
	pushService contracts.PushService,
	logger *zap.Logger,
) OrderUsecase {
	onceOrderUsecase.Do(func() {
		orderUsecaseInstance = &orderUsecase{
			OrderRepository: orderRepository,
			PushService:     pushService,
			Log:             logger,
		}
	})
	return orderUsecaseInstance
}

func (uc *orderUsecase) CreateOrder(ctx context.Context, request *requests.CreateOrder) (*responses.CreateOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	order := buildOrderModel(request)
	if err := uc.OrderRepository.Create(ctx, order); err != nil {
		return nil, err
	}

	uc.Log.Info("orderUsecase.CreateOrder stored order",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
		zap.String(constvars.LoggingPhoneKey, order.PhoneNumber),
	)

	return &responses.CreateOrder{
		OrderID:     order.ID,
		OrderStatus: order.OrderStatus,
	}, nil
}

func (uc *orderUsecase) ListCurrentOrders(ctx context.Context, phoneNumber string) ([]models.Order, error) {
	return uc.OrderRepository.FindByPhoneAndStatuses(ctx, phoneNumber, []string{
		constvars.OrderStatusPending,
		constvars.OrderStatusConfirmed,
		constvars.OrderStatusShipped,
	})
}

func (uc *orderUsecase) UpdateOrderStatus(ctx context.Context, orderID string, request *requests.UpdateOrderStatus) (*responses.UpdateOrderStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(fmt.Errorf("no order with id %s", orderID))
	}

	if !transitionAllowed(order.OrderStatus, request.OrderStatus) {
		return nil, exceptions.ErrInvalidOrderStatus(
			fmt.Errorf("cannot transition order %s from %s to %s", orderID, order.OrderStatus, request.OrderStatus))
	}

	if err := uc.OrderRepository.UpdateStatus(ctx, orderID, request.OrderStatus); err != nil {
		return nil, err
	}

	uc.Log.Info("orderUsecase.UpdateOrderStatus transitioned order",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String("from", order.OrderStatus),
		zap.String("to", request.OrderStatus),
	)

	uc.notifyStatusChange(order, request.OrderStatus)

	return &responses.UpdateOrderStatus{
		OrderID:        orderID,
		OrderStatus:    request.OrderStatus,
		PreviousStatus: order.OrderStatus,
	}, nil
}

// notifyStatusChange enqueues the push job off the request path. A publish
// failure is logged and swallowed; the status change already happened.
func (uc *orderUsecase) notifyStatusChange(order *models.Order, newStatus string) {
	body, ok := statusNotificationBodies[newStatus]
	if !ok {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := uc.PushService.Publish(ctx, &contracts.PushJob{
			PhoneNumber: order.PhoneNumber,
			Title:       "Sri Vasavi Mart",
			Body:        body,
			Data:        map[string]string{"orderId": order.ID, "orderStatus": newStatus},
		})
		if err != nil {
			uc.Log.Error("orderUsecase.notifyStatusChange publish failed",
				zap.String(constvars.LoggingOrderIDKey, order.ID),
				zap.Error(err),
			)
		}
	}()
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func buildOrderModel(request *requests.CreateOrder) *models.Order {
	now := time.Now().UTC()

	orderID := request.OrdersCartDTO.ID
	if orderID == "" {
		orderID = utils.GenerateOrderID()
	}

	paymentMethod := request.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = constvars.PaymentMethodCashOnDelivery
	}

	productsList := make([]models.OrderProduct, 0, len(request.OrdersCartDTO.ProductsList))
	for _, p := range request.OrdersCartDTO.ProductsList {
		productsList = append(productsList, models.OrderProduct{
			ProductID:       p.ProductID,
			ProductName:     p.ProductName,
			Image:           p.Image,
			CategoryID:      p.CategoryID,
			CategoryName:    p.CategoryName,
			Quantity:        p.Quantity,
			Price:           p.Price,
			DiscountedPrice: p.DiscountedPrice,
			UpdatedAt:       p.UpdatedAt,
		})
	}

	return &models.Order{
		ID: orderID,
		OrdersCartDTO: models.OrdersCart{
			ID:                orderID,
			PhoneNumber:       request.OrdersCartDTO.PhoneNumber,
			UpdatedAt:         now,
			ProductsList:      productsList,
			TotalItemsInCart:  request.OrdersCartDTO.TotalItemsInCart,
			CurrentTotalPrice: request.OrdersCartDTO.CurrentTotalPrice,
			DiscountedAmount:  request.OrdersCartDTO.DiscountedAmount,
			TotalPrice:        request.OrdersCartDTO.TotalPrice,
		},
		DeliveryCharges: request.DeliveryCharges,
		TotalPayable:    request.TotalPayable,
		DeliveryAddress: models.DeliveryAddress{
			ID:           request.DeliveryAddress.ID,
			Type:         request.DeliveryAddress.Type,
			AreaOrStreet: request.DeliveryAddress.AreaOrStreet,
			Landmark:     request.DeliveryAddress.Landmark,
			Pincode:      request.DeliveryAddress.Pincode,
			IsDefault:    request.DeliveryAddress.IsDefault,
			PhoneNumber:  request.DeliveryAddress.PhoneNumber,
		},
		PhoneNumber:   request.PhoneNumber,
		OrderStatus:   constvars.OrderStatusPending,
		PaymentMethod: paymentMethod,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
