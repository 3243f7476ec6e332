package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"vasavimart-service/internal/app/config"
	"vasavimart-service/internal/app/delivery/http/middlewares"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/app/services/bills"
	"vasavimart-service/internal/app/services/orders"
	"vasavimart-service/internal/app/services/shared/jwtmanager"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockOrderUsecase struct {
	mock.Mock
}

func (m *MockOrderUsecase) CreateOrder(ctx context.Context, request *requests.CreateOrder) (*responses.CreateOrder, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.CreateOrder)
	return response, args.Error(1)
}

func (m *MockOrderUsecase) ListCurrentOrders(ctx context.Context, phoneNumber string) ([]models.Order, error) {
	args := m.Called(ctx, phoneNumber)
	list, _ := args.Get(0).([]models.Order)
	return list, args.Error(1)
}

func (m *MockOrderUsecase) UpdateOrderStatus(ctx context.Context, orderID string, request *requests.UpdateOrderStatus) (*responses.UpdateOrderStatus, error) {
	args := m.Called(ctx, orderID, request)
	response, _ := args.Get(0).(*responses.UpdateOrderStatus)
	return response, args.Error(1)
}

type MockBillUsecase struct {
	mock.Mock
}

func (m *MockBillUsecase) RenderBill(ctx context.Context, orderID string) ([]byte, error) {
	args := m.Called(ctx, orderID)
	pdfBytes, _ := args.Get(0).([]byte)
	return pdfBytes, args.Error(1)
}

func newOrderTestRouter(orderUsecase *MockOrderUsecase, billUsecase *MockBillUsecase) (*chi.Mux, *jwtmanager.JWTManager) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:                    "test-secret",
			ChallengeExpTimeInMinutes: 10,
			LoginExpTimeInDays:        180,
		},
	}
	jwtManager := jwtmanager.NewJWTManager(internalConfig)

	middlewareInstance := middlewares.NewMiddlewares(logger, jwtManager, internalConfig)
	orderController := orders.NewOrderController(orderUsecase, logger)
	billController := bills.NewBillController(billUsecase, logger)

	router := chi.NewRouter()
	attachOrderRoutes(router, middlewareInstance, orderController, billController)
	return router, jwtManager
}

func TestOrderRouter_Authentication(t *testing.T) {
	t.Run("current orders without a token returns 401", func(t *testing.T) {
		orderUsecase := new(MockOrderUsecase)
		router, _ := newOrderTestRouter(orderUsecase, new(MockBillUsecase))

		req := httptest.NewRequest("GET", "/current/+919876543210", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		orderUsecase.AssertNotCalled(t, "ListCurrentOrders", mock.Anything, mock.Anything)
	})

	t.Run("current orders with a valid token passes through", func(t *testing.T) {
		orderUsecase := new(MockOrderUsecase)
		router, jwtManager := newOrderTestRouter(orderUsecase, new(MockBillUsecase))

		orderUsecase.On("ListCurrentOrders", mock.Anything, "+919876543210").Return([]models.Order{}, nil)

		loginToken, err := jwtManager.MintLoginToken(&jwtmanager.LoginClaims{
			UserID:      "user-1",
			PhoneNumber: "+919876543210",
			Username:    "ravi",
		})
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/current/+919876543210", nil)
		req.Header.Set("Authorization", "Bearer "+loginToken)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		orderUsecase.AssertExpectations(t)
	})

	t.Run("current orders for another phone number returns 403", func(t *testing.T) {
		orderUsecase := new(MockOrderUsecase)
		router, jwtManager := newOrderTestRouter(orderUsecase, new(MockBillUsecase))

		loginToken, err := jwtManager.MintLoginToken(&jwtmanager.LoginClaims{
			UserID:      "user-1",
			PhoneNumber: "+919876543210",
			Username:    "ravi",
		})
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/current/+918888888888", nil)
		req.Header.Set("Authorization", "Bearer "+loginToken)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		orderUsecase.AssertNotCalled(t, "ListCurrentOrders", mock.Anything, mock.Anything)
	})

	t.Run("challenge token is rejected for authenticated routes", func(t *testing.T) {
		orderUsecase := new(MockOrderUsecase)
		router, jwtManager := newOrderTestRouter(orderUsecase, new(MockBillUsecase))

		challengeToken, err := jwtManager.MintChallengeToken(&jwtmanager.ChallengeClaims{
			SessionID:   "session-abc",
			PhoneNumber: "+919876543210",
			Username:    "ravi",
		})
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/current/+919876543210", nil)
		req.Header.Set("Authorization", "Bearer "+challengeToken)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		orderUsecase.AssertNotCalled(t, "ListCurrentOrders", mock.Anything, mock.Anything)
	})
}

func TestOrderRouter_Bill(t *testing.T) {
	t.Run("bill endpoint streams pdf without a login session", func(t *testing.T) {
		billUsecase := new(MockBillUsecase)
		billUsecase.On("RenderBill", mock.Anything, "order-42").Return([]byte("%PDF-1.4 fake"), nil)

		router, _ := newOrderTestRouter(new(MockOrderUsecase), billUsecase)

		req := httptest.NewRequest("GET", "/order-42/bill", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Body.String(), "%PDF")
	})
}
