package route

import (
	"github.com/gofiber/fiber/v2"

	"ponselku_backend/internals/features/reviews/controller"
	"ponselku_backend/internals/features/reviews/service"
	"ponselku_backend/internals/middlewares"
)

func ReviewRoutes(api fiber.Router, svc *service.ReviewService) {
	ctrl := controller.NewReviewController(svc)

	review := api.Group("/reviews")
	review.Post("/lookup", middlewares.AIRateLimiter(), ctrl.Lookup)
	review.Get("/", ctrl.ListCached)
}
