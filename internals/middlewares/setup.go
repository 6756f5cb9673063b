package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"aulataller_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
