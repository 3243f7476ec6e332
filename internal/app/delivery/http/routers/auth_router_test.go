package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"vasavimart-service/internal/app/delivery/http/middlewares"
	"vasavimart-service/internal/app/services/auth"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) SendOTP(ctx context.Context, request *requests.SendOTP) (*responses.SendOTP, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.SendOTP)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.VerifyOTP, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.VerifyOTP)
	return response, args.Error(1)
}

func newAuthTestRouter(mockAuthUsecase *MockAuthUsecase) *chi.Mux {
	logger := zap.NewNop()
	authController := auth.NewAuthController(mockAuthUsecase, logger)
	middlewareInstance := &middlewares.Middlewares{Log: logger}

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)
	return router
}

func TestAuthRouter_SendOTP(t *testing.T) {
	t.Run("valid request returns 200 with challenge token", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("SendOTP", mock.Anything, mock.AnythingOfType("*requests.SendOTP")).
			Return(&responses.SendOTP{Token: "challenge-token"}, nil)

		router := newAuthTestRouter(mockAuthUsecase)

		jsonBody, _ := json.Marshal(requests.SendOTP{PhoneNumber: "+919876543210", Username: "ravi"})
		req := httptest.NewRequest("POST", "/send-otp", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "challenge-token")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("missing phone number returns 400 before the usecase runs", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		jsonBody, _ := json.Marshal(requests.SendOTP{Username: "ravi"})
		req := httptest.NewRequest("POST", "/send-otp", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "SendOTP", mock.Anything, mock.Anything)
	})

	t.Run("malformed phone number returns 400", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		jsonBody, _ := json.Marshal(requests.SendOTP{PhoneNumber: "9876543210", Username: "ravi"})
		req := httptest.NewRequest("POST", "/send-otp", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "SendOTP", mock.Anything, mock.Anything)
	})
}

func TestAuthRouter_VerifyOTP(t *testing.T) {
	t.Run("valid request returns 200 with login token", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("VerifyOTP", mock.Anything, mock.AnythingOfType("*requests.VerifyOTP")).
			Return(&responses.VerifyOTP{LoginToken: "login-token", UserID: "user-1"}, nil)

		router := newAuthTestRouter(mockAuthUsecase)

		jsonBody, _ := json.Marshal(requests.VerifyOTP{Token: "challenge-token", UserOTP: "123456"})
		req := httptest.NewRequest("POST", "/verify-otp", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "login-token")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("missing otp returns 400", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		router := newAuthTestRouter(mockAuthUsecase)

		jsonBody, _ := json.Marshal(requests.VerifyOTP{Token: "challenge-token"})
		req := httptest.NewRequest("POST", "/verify-otp", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "VerifyOTP", mock.Anything, mock.Anything)
	})
}
