package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/ai"
	aiRoute "ponselku_backend/internals/features/ai/route"
	adminRoute "ponselku_backend/internals/features/admins/route"
	blogRoute "ponselku_backend/internals/features/blog/route"
	catalogRoute "ponselku_backend/internals/features/catalog/route"
	dictionaryRoute "ponselku_backend/internals/features/dictionary/route"
	dictionaryService "ponselku_backend/internals/features/dictionary/service"
	reviewRoute "ponselku_backend/internals/features/reviews/route"
	reviewService "ponselku_backend/internals/features/reviews/service"
	toptierRoute "ponselku_backend/internals/features/toptier/route"
	"ponselku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) error {
	startTime = time.Now()

	aiClient, err := ai.NewClient()
	if err != nil {
		return err
	}

	// Satu ReviewService dipakai bersama reviews + catalog supaya
	// penggabungan request duplikat berlaku lintas endpoint.
	reviews := reviewService.NewReviewService(reviewService.NewGormStore(db), aiClient)
	dictionary := dictionaryService.NewDictionaryService(dictionaryService.NewGormStore(db), aiClient)

	log.Println("[INFO] Mounting auth routes...")
	adminRoute.AdminAuthRoutes(app.Group("/api"), db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	reviewRoute.ReviewRoutes(public, reviews)
	catalogRoute.CatalogRoutes(public, reviews)
	blogRoute.BlogPublicRoutes(public, db)
	toptierRoute.TopTierPublicRoutes(public, db, aiClient)
	dictionaryRoute.DictionaryPublicRoutes(public, dictionary)
	aiRoute.AssistantRoutes(public, aiClient)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", auth.AdminOnly())
	adminRoute.AdminProfileRoutes(admin, db)
	blogRoute.BlogAdminRoutes(admin, db)
	toptierRoute.TopTierAdminRoutes(admin, db, aiClient)
	dictionaryRoute.DictionaryAdminRoutes(admin, dictionary)

	return nil
}
