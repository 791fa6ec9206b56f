package route

import (
	"github.com/gofiber/fiber/v2"

	"ponselku_backend/internals/features/ai/controller"
	"ponselku_backend/internals/middlewares"
)

// AssistantRoutes: endpoint AI langsung (tanpa cache), semua digerbang
// rate limiter khusus AI.
func AssistantRoutes(api fiber.Router, gen controller.Generator) {
	ctrl := controller.NewAssistantController(gen)

	api.Post("/compare", middlewares.AIRateLimiter(), ctrl.Compare)
	api.Post("/match", middlewares.AIRateLimiter(), ctrl.Match)
	api.Post("/chat", middlewares.AIRateLimiter(), ctrl.Chat)
}
