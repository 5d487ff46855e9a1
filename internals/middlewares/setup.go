package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"ramadanku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu CORS, logger, dan rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
