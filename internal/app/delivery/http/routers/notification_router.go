package routers

import (
	"vasavimart-service/internal/app/delivery/http/middlewares"
	"vasavimart-service/internal/app/services/pushtokens"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, expoTokenController *pushtokens.ExpoTokenController) {
	router.Post("/expo-token", expoTokenController.SaveExpoToken)
}
