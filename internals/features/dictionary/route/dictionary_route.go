package route

import (
	"github.com/gofiber/fiber/v2"

	"ponselku_backend/internals/features/dictionary/controller"
	"ponselku_backend/internals/features/dictionary/service"
	"ponselku_backend/internals/middlewares"
)

func DictionaryPublicRoutes(api fiber.Router, svc *service.DictionaryService) {
	ctrl := controller.NewDictionaryController(svc)
	api.Get("/dictionary", ctrl.List)
}

func DictionaryAdminRoutes(api fiber.Router, svc *service.DictionaryService) {
	ctrl := controller.NewDictionaryController(svc)
	api.Post("/dictionary/regenerate", middlewares.AIRateLimiter(), ctrl.Regenerate)
}
