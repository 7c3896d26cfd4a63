package routers

import (
	"afiatrack-service/internal/app/delivery/http/controllers"
	"afiatrack-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Use(middlewares.LimitByClientIP)

	router.Post("/signup", authController.Signup)
	router.Post("/login", authController.Login)
	router.Post("/forgot-password", authController.ForgotPassword)
	router.Post("/verify-code", authController.VerifyCode)
	router.Post("/reset-password", authController.ResetPassword)
	router.Post("/change-password", authController.ChangePassword)
}
