package routers

import (
	"vasavimart-service/internal/app/delivery/http/middlewares"
	"vasavimart-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/send-otp", authController.SendOTP)
	router.Post("/verify-otp", authController.VerifyOTP)
}
