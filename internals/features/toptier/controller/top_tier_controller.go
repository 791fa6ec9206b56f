package controller

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/ai"
	"ponselku_backend/internals/features/toptier/dto"
	"ponselku_backend/internals/features/toptier/model"
	"ponselku_backend/internals/features/toptier/service"
	helper "ponselku_backend/internals/helpers"
)

// Generator membatasi dependensi AI ke satu operasi yang dipakai fitur ini.
type Generator interface {
	GenerateTopTier(ctx context.Context, category string) (*ai.TopTierPayload, error)
}

type TopTierController struct {
	DB       *gorm.DB
	Service  *service.TopTierService
	Gen      Generator
	Validate *validator.Validate
}

func NewTopTierController(db *gorm.DB, gen Generator) *TopTierController {
	return &TopTierController{
		DB:       db,
		Service:  service.NewTopTierService(service.NewGormStore(db)),
		Gen:      gen,
		Validate: validator.New(),
	}
}

func (ctrl *TopTierController) categoryBySlug(c *fiber.Ctx) (*model.TopTierCategoryModel, error) {
	var cat model.TopTierCategoryModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&cat, "top_tier_category_slug = ?", c.Params("slug")).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// 🟢 GET /api/public/top-tier — semua kategori beserta peringkatnya
func (ctrl *TopTierController) ListAll(c *fiber.Ctx) error {
	var cats []model.TopTierCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).Order("top_tier_category_name ASC").Find(&cats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data top tier")
	}

	out := make([]dto.CategoryWithRankings, 0, len(cats))
	for _, cat := range cats {
		rankings, err := ctrl.Service.RankingsByCategory(c.UserContext(), cat.TopTierCategoryID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data top tier")
		}
		out = append(out, dto.CategoryWithRankings{Category: cat, Rankings: rankings})
	}
	return helper.JsonOK(c, "Data top tier berhasil diambil", out)
}

// 🟢 GET /api/public/top-tier/:slug
func (ctrl *TopTierController) GetBySlug(c *fiber.Ctx) error {
	cat, err := ctrl.categoryBySlug(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori top tier tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data top tier")
	}

	rankings, err := ctrl.Service.RankingsByCategory(c.UserContext(), cat.TopTierCategoryID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data top tier")
	}
	return helper.JsonOK(c, "Data top tier berhasil diambil", dto.CategoryWithRankings{
		Category: *cat,
		Rankings: rankings,
	})
}

// 🟢 POST /api/a/top-tier
func (ctrl *TopTierController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori wajib diisi")
	}

	baseSlug, err := helper.Slugify(req.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori harus mengandung huruf atau angka")
	}
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB, "top_tier_categories", "top_tier_category_slug", baseSlug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori")
	}

	cat := &model.TopTierCategoryModel{TopTierCategoryName: req.Name, TopTierCategorySlug: slug}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori")
	}
	return helper.JsonCreated(c, "Kategori top tier berhasil dibuat", cat)
}

// 🟡 PUT /api/a/top-tier/:slug — ganti nama kategori, slug tetap
func (ctrl *TopTierController) UpdateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori wajib diisi")
	}

	cat, err := ctrl.categoryBySlug(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori top tier tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
	}

	cat.TopTierCategoryName = req.Name
	if err := ctrl.DB.WithContext(c.UserContext()).Save(cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
	}
	return helper.JsonOK(c, "Kategori top tier berhasil diperbarui", cat)
}

// 🔴 DELETE /api/a/top-tier/:slug — kategori beserta peringkatnya
func (ctrl *TopTierController) DeleteCategory(c *fiber.Ctx) error {
	cat, err := ctrl.categoryBySlug(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori top tier tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}

	if err := ctrl.Service.DeleteCategory(c.UserContext(), cat.TopTierCategoryID); err != nil {
		log.Printf("❌ [TOPTIER] hapus kategori gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	return helper.JsonOK(c, "Kategori top tier berhasil dihapus", nil)
}

// 🟡 PUT /api/a/top-tier/:slug/rankings — ganti seluruh set peringkat
func (ctrl *TopTierController) SaveRankings(c *fiber.Ctx) error {
	var req dto.SaveRankingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Entries wajib diisi (1-10 HP)")
	}

	cat, err := ctrl.categoryBySlug(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori top tier tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan peringkat")
	}

	rankings := dto.BuildRankingModels(cat.TopTierCategoryID, req.Entries)
	if err := ctrl.Service.ReplaceRankings(c.UserContext(), cat.TopTierCategoryID, rankings); err != nil {
		log.Printf("❌ [TOPTIER] ganti peringkat gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan peringkat")
	}
	return helper.JsonOK(c, "Peringkat berhasil disimpan", fiber.Map{
		"category": cat,
		"count":    len(rankings),
	})
}

// 🟢 POST /api/a/top-tier/:slug/generate — isi peringkat lewat AI
func (ctrl *TopTierController) GenerateRankings(c *fiber.Ctx) error {
	cat, err := ctrl.categoryBySlug(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori top tier tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses kategori")
	}

	payload, err := ctrl.Gen.GenerateTopTier(c.UserContext(), cat.TopTierCategoryName)
	if err != nil {
		log.Printf("❌ [TOPTIER] generate gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "AI sedang sibuk. Silakan coba lagi.")
	}

	rankings := dto.BuildRankingModels(cat.TopTierCategoryID, dto.FromAIPayload(payload))
	if err := ctrl.Service.ReplaceRankings(c.UserContext(), cat.TopTierCategoryID, rankings); err != nil {
		log.Printf("❌ [TOPTIER] simpan hasil generate gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan peringkat")
	}
	return helper.JsonOK(c, "Peringkat berhasil digenerate", fiber.Map{
		"category": cat,
		"count":    len(rankings),
	})
}
