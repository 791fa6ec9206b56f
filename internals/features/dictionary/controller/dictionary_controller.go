package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"ponselku_backend/internals/features/ai"
	"ponselku_backend/internals/features/dictionary/service"
	helper "ponselku_backend/internals/helpers"
)

type DictionaryController struct {
	Service *service.DictionaryService
}

func NewDictionaryController(svc *service.DictionaryService) *DictionaryController {
	return &DictionaryController{Service: svc}
}

// 🟢 GET /api/public/dictionary
func (ctrl *DictionaryController) List(c *fiber.Ctx) error {
	entries, err := ctrl.Service.ListEntries(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kamus istilah")
	}
	return helper.JsonOK(c, "Kamus istilah berhasil diambil", entries)
}

// 🟢 POST /api/a/dictionary/regenerate
func (ctrl *DictionaryController) Regenerate(c *fiber.Ctx) error {
	entries, err := ctrl.Service.Regenerate(c.UserContext())
	if errors.Is(err, ai.ErrGenerate) {
		return helper.JsonError(c, fiber.StatusBadGateway, "AI sedang sibuk. Silakan coba lagi.")
	}
	if err != nil {
		log.Printf("❌ [DICTIONARY] regenerate gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kamus istilah")
	}
	return helper.JsonOK(c, "Kamus istilah berhasil digenerate", fiber.Map{
		"count":   len(entries),
		"entries": entries,
	})
}
