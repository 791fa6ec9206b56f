package controller

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"ponselku_backend/internals/features/ai"
	"ponselku_backend/internals/features/catalog/engine"
	"ponselku_backend/internals/features/reviews/service"
	helper "ponselku_backend/internals/helpers"
)

type CatalogController struct {
	Reviews *service.ReviewService
}

func NewCatalogController(reviews *service.ReviewService) *CatalogController {
	return &CatalogController{Reviews: reviews}
}

// 🟢 GET /api/public/catalog?mode=brand|price|need&selector=...&budget=...
// Katalog diproyeksikan ulang dari cache review setiap kali dimuat.
func (ctrl *CatalogController) Browse(c *fiber.Ctx) error {
	recs, err := ctrl.Reviews.ListCached(c.UserContext())
	if err != nil {
		log.Printf("❌ [CATALOG] gagal baca cache review: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat katalog")
	}

	items := make([]engine.CatalogItem, 0, len(recs))
	for i := range recs {
		var payload ai.ReviewPayload
		if err := json.Unmarshal(recs[i].ReviewData, &payload); err != nil {
			log.Printf("⚠️ [CATALOG] review_data korup, slug=%s", recs[i].Slug)
			continue
		}
		items = append(items, engine.ProjectItem(&payload))
	}

	filter := engine.Filter{
		Mode:     engine.FilterMode(c.Query("mode")),
		Selector: c.Query("selector"),
		Budget:   c.Query("budget"),
	}
	result := engine.Apply(items, filter)

	return helper.JsonOK(c, "Katalog berhasil dimuat", fiber.Map{
		"total": len(result),
		"items": result,
	})
}

// 🟢 GET /api/public/catalog/filters — pilihan filter untuk frontend
func (ctrl *CatalogController) FilterOptions(c *fiber.Ctx) error {
	priceLabels := make([]string, 0, len(engine.PriceBrackets))
	for _, b := range engine.PriceBrackets {
		priceLabels = append(priceLabels, b.Label)
	}
	budgetLabels := []string{engine.BudgetAll}
	for _, b := range engine.BudgetBrackets {
		budgetLabels = append(budgetLabels, b.Label)
	}

	return helper.JsonOK(c, "Pilihan filter", fiber.Map{
		"brands":  append(append([]string{}, engine.PrimaryBrands...), engine.BrandOther),
		"prices":  priceLabels,
		"needs":   engine.NeedTags(),
		"budgets": budgetLabels,
	})
}
