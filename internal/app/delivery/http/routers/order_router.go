package routers

import (
	"vasavimart-service/internal/app/delivery/http/middlewares"
	"vasavimart-service/internal/app/services/bills"
	"vasavimart-service/internal/app/services/orders"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, middlewares *middlewares.Middlewares, orderController *orders.OrderController, billController *bills.BillController) {
	router.With(middlewares.Authentication).Post("/", orderController.CreateOrder)
	router.With(middlewares.Authentication).Get("/current/{phoneNumber}", orderController.ListCurrentOrders)

	// The status update and bill endpoints are hit by the delivery agent's
	// scanner, which has no login session.
	router.Patch("/{orderId}/status", orderController.UpdateOrderStatus)
	router.Get("/{orderId}/bill", billController.GetBill)
}
