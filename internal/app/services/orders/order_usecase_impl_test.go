package orders

import (
	"context"
	"testing"
	"time"
	"vasavimart-service/internal/app/contracts"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *MockOrderRepository) FindByPhoneAndStatuses(ctx context.Context, phoneNumber string, statuses []string) ([]models.Order, error) {
	args := m.Called(ctx, phoneNumber, statuses)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type MockPushService struct {
	mock.Mock
	published chan *contracts.PushJob
}

func NewMockPushService() *MockPushService {
	return &MockPushService{published: make(chan *contracts.PushJob, 1)}
}

func (m *MockPushService) Publish(ctx context.Context, job *contracts.PushJob) error {
	args := m.Called(ctx, job)
	m.published <- job
	return args.Error(0)
}

func newCreateOrderRequest() *requests.CreateOrder {
	return &requests.CreateOrder{
		OrdersCartDTO: requests.OrdersCart{
			PhoneNumber: "+919876543210",
			ProductsList: []requests.OrderProduct{
				{ProductID: "p1", ProductName: "Rice 5kg", Quantity: 2, Price: 450, DiscountedPrice: 399},
			},
			TotalItemsInCart:  2,
			CurrentTotalPrice: 900,
			DiscountedAmount:  102,
			TotalPrice:        798,
		},
		DeliveryCharges: 40,
		TotalPayable:    838,
		DeliveryAddress: requests.DeliveryAddress{AreaOrStreet: "MG Road", Pincode: 515001},
		PhoneNumber:     "+919876543210",
	}
}

func TestCreateOrder(t *testing.T) {
	t.Run("stores order as pending with defaults filled", func(t *testing.T) {
		repo := new(MockOrderRepository)
		uc := &orderUsecase{OrderRepository: repo, PushService: NewMockPushService(), Log: zap.NewNop()}

		var stored *models.Order
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Order) }).
			Return(nil)

		response, err := uc.CreateOrder(context.Background(), newCreateOrderRequest())

		assert.NoError(t, err)
		assert.Equal(t, constvars.OrderStatusPending, response.OrderStatus)
		assert.NotEmpty(t, response.OrderID)
		assert.Equal(t, response.OrderID, stored.ID)
		assert.Equal(t, constvars.PaymentMethodCashOnDelivery, stored.PaymentMethod)
		assert.Equal(t, "+919876543210", stored.PhoneNumber)
		assert.Len(t, stored.OrdersCartDTO.ProductsList, 1)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("keeps the client-provided cart id", func(t *testing.T) {
		repo := new(MockOrderRepository)
		uc := &orderUsecase{OrderRepository: repo, PushService: NewMockPushService(), Log: zap.NewNop()}

		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		request := newCreateOrderRequest()
		request.OrdersCartDTO.ID = "cart-77"
		response, err := uc.CreateOrder(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "cart-77", response.OrderID)
	})
}

func TestListCurrentOrders(t *testing.T) {
	repo := new(MockOrderRepository)
	uc := &orderUsecase{OrderRepository: repo, PushService: NewMockPushService(), Log: zap.NewNop()}

	active := []string{constvars.OrderStatusPending, constvars.OrderStatusConfirmed, constvars.OrderStatusShipped}
	repo.On("FindByPhoneAndStatuses", mock.Anything, "+919876543210", active).
		Return([]models.Order{{ID: "order-1", OrderStatus: constvars.OrderStatusPending}}, nil)

	orders, err := uc.ListCurrentOrders(context.Background(), "+919876543210")

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "order-1", orders[0].ID)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("valid transition updates and enqueues a push job", func(t *testing.T) {
		repo := new(MockOrderRepository)
		push := NewMockPushService()
		uc := &orderUsecase{OrderRepository: repo, PushService: push, Log: zap.NewNop()}

		repo.On("FindByID", mock.Anything, "order-1").
			Return(&models.Order{ID: "order-1", PhoneNumber: "+919876543210", OrderStatus: constvars.OrderStatusPending}, nil)
		repo.On("UpdateStatus", mock.Anything, "order-1", constvars.OrderStatusConfirmed).Return(nil)
		push.On("Publish", mock.Anything, mock.Anything).Return(nil)

		response, err := uc.UpdateOrderStatus(context.Background(), "order-1",
			&requests.UpdateOrderStatus{OrderStatus: constvars.OrderStatusConfirmed})

		assert.NoError(t, err)
		assert.Equal(t, constvars.OrderStatusConfirmed, response.OrderStatus)
		assert.Equal(t, constvars.OrderStatusPending, response.PreviousStatus)

		select {
		case job := <-push.published:
			assert.Equal(t, "+919876543210", job.PhoneNumber)
			assert.Equal(t, "order-1", job.Data["orderId"])
			assert.Equal(t, constvars.OrderStatusConfirmed, job.Data["orderStatus"])
		case <-time.After(2 * time.Second):
			t.Fatal("expected a push job to be published")
		}
	})

	t.Run("invalid transition returns 400 and publishes nothing", func(t *testing.T) {
		repo := new(MockOrderRepository)
		push := NewMockPushService()
		uc := &orderUsecase{OrderRepository: repo, PushService: push, Log: zap.NewNop()}

		repo.On("FindByID", mock.Anything, "order-1").
			Return(&models.Order{ID: "order-1", OrderStatus: constvars.OrderStatusDelivered}, nil)

		_, err := uc.UpdateOrderStatus(context.Background(), "order-1",
			&requests.UpdateOrderStatus{OrderStatus: constvars.OrderStatusPending})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		push.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("unknown order returns 404", func(t *testing.T) {
		repo := new(MockOrderRepository)
		uc := &orderUsecase{OrderRepository: repo, PushService: NewMockPushService(), Log: zap.NewNop()}

		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.UpdateOrderStatus(context.Background(), "missing",
			&requests.UpdateOrderStatus{OrderStatus: constvars.OrderStatusConfirmed})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("publish failure does not fail the status change", func(t *testing.T) {
		repo := new(MockOrderRepository)
		push := NewMockPushService()
		uc := &orderUsecase{OrderRepository: repo, PushService: push, Log: zap.NewNop()}

		repo.On("FindByID", mock.Anything, "order-1").
			Return(&models.Order{ID: "order-1", PhoneNumber: "+919876543210", OrderStatus: constvars.OrderStatusShipped}, nil)
		repo.On("UpdateStatus", mock.Anything, "order-1", constvars.OrderStatusDelivered).Return(nil)
		push.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)

		response, err := uc.UpdateOrderStatus(context.Background(), "order-1",
			&requests.UpdateOrderStatus{OrderStatus: constvars.OrderStatusDelivered})

		assert.NoError(t, err)
		assert.Equal(t, constvars.OrderStatusDelivered, response.OrderStatus)
		<-push.published
	})
}
