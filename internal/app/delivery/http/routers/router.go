package routers

import (
	"fmt"
	"time"
	"vasavimart-service/internal/app/config"
	"vasavimart-service/internal/app/delivery/http/middlewares"
	"vasavimart-service/internal/app/services/auth"
	"vasavimart-service/internal/app/services/bills"
	"vasavimart-service/internal/app/services/categories"
	"vasavimart-service/internal/app/services/orders"
	"vasavimart-service/internal/app/services/products"
	"vasavimart-service/internal/app/services/pushtokens"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	logrusLogger *logrus.Logger,
	authController *auth.AuthController,
	productController *products.ProductController,
	categoryController *categories.CategoryController,
	orderController *orders.OrderController,
	billController *bills.BillController,
	expoTokenController *pushtokens.ExpoTokenController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	if internalConfig.App.Env != "production" {
		router.Use(middlewares.RequestLogger(internalConfig.App, logrusLogger))
	}
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/products", func(r chi.Router) {
				attachProductListingRoutes(r, productController)
			})

			r.Route("/users/products", func(r chi.Router) {
				attachCatalogRoutes(r, productController, categoryController)
			})

			r.Route("/orders", func(r chi.Router) {
				attachOrderRoutes(r, middlewares, orderController, billController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, expoTokenController)
			})
		})
	})
}
