package route

import (
	"github.com/gofiber/fiber/v2"

	authController "ramadanku_backend/internals/features/auth/controller"
	"ramadanku_backend/internals/middlewares"
	"ramadanku_backend/internals/store"
)

func AuthRoutes(app *fiber.App, st store.Store) {
	ctrl := authController.NewAuthController(st)

	auth := app.Group("/api/auth", middlewares.LoginRateLimiter())
	auth.Post("/admin-login", ctrl.AdminLogin)
	auth.Post("/supervisor-login", ctrl.SupervisorLogin)
	auth.Post("/logout", ctrl.Logout)
}
