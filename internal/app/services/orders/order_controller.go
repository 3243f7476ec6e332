package orders

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/dto/requests"
	"vasavimart-service/internal/pkg/exceptions"
	"vasavimart-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type OrderController struct {
	OrderUsecase OrderUsecase
	Log          *zap.Logger
}

func NewOrderController(orderUsecase OrderUsecase, logger *zap.Logger) *OrderController {
	return &OrderController{
		OrderUsecase: orderUsecase,
		Log:          logger,
	}
}

func (ctrl *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateOrder)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.CreateOrder(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OrderCreatedSuccess, response)
}

func (ctrl *OrderController) ListCurrentOrders(w http.ResponseWriter, r *http.Request) {
	phoneNumber := chi.URLParam(r, "phoneNumber")
	authenticatedPhone, _ := r.Context().Value(constvars.CONTEXT_PHONE_NUMBER_KEY).(string)
	if phoneNumber != authenticatedPhone {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrOrderAccessDenied(fmt.Errorf("requested orders for %s while authenticated as %s", phoneNumber, authenticatedPhone)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := ctrl.OrderUsecase.ListCurrentOrders(ctx, phoneNumber)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrdersFetchedSuccess, orders)
}

func (ctrl *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateOrderStatus)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OrderUsecase.UpdateOrderStatus(ctx, chi.URLParam(r, "orderId"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderStatusUpdated, response)
}
