package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/admins/controller"
	"ponselku_backend/internals/middlewares"
)

// AdminAuthRoutes dipasang di luar gerbang admin (login belum punya token).
func AdminAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)
	api.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AdminProfileRoutes dipasang di group yang sudah digerbang AdminOnly.
func AdminProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)
	api.Get("/me", ctrl.Me)
}
