package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/toptier/controller"
	"ponselku_backend/internals/middlewares"
)

// TopTierPublicRoutes: halaman peringkat, read-only.
func TopTierPublicRoutes(api fiber.Router, db *gorm.DB, gen controller.Generator) {
	ctrl := controller.NewTopTierController(db, gen)

	toptier := api.Group("/top-tier")
	toptier.Get("/", ctrl.ListAll)
	toptier.Get("/:slug", ctrl.GetBySlug)
}

// TopTierAdminRoutes: kelola kategori dan set peringkatnya.
func TopTierAdminRoutes(api fiber.Router, db *gorm.DB, gen controller.Generator) {
	ctrl := controller.NewTopTierController(db, gen)

	toptier := api.Group("/top-tier")
	toptier.Post("/", ctrl.CreateCategory)
	toptier.Put("/:slug", ctrl.UpdateCategory)
	toptier.Delete("/:slug", ctrl.DeleteCategory)
	toptier.Put("/:slug/rankings", ctrl.SaveRankings)
	toptier.Post("/:slug/generate", middlewares.AIRateLimiter(), ctrl.GenerateRankings)
}
