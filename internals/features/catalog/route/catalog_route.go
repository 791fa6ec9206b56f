package route

import (
	"github.com/gofiber/fiber/v2"

	"ponselku_backend/internals/features/catalog/controller"
	reviewService "ponselku_backend/internals/features/reviews/service"
)

func CatalogRoutes(api fiber.Router, svc *reviewService.ReviewService) {
	ctrl := controller.NewCatalogController(svc)

	catalog := api.Group("/catalog")
	catalog.Get("/", ctrl.Browse)
	catalog.Get("/filters", ctrl.FilterOptions)
}
