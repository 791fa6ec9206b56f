package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"ponselku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar: recovery, CORS, logger, rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
