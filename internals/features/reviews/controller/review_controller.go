package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ponselku_backend/internals/features/ai"
	"ponselku_backend/internals/features/reviews/dto"
	"ponselku_backend/internals/features/reviews/service"
	helper "ponselku_backend/internals/helpers"
)

type ReviewController struct {
	Service  *service.ReviewService
	Validate *validator.Validate
}

func NewReviewController(svc *service.ReviewService) *ReviewController {
	return &ReviewController{
		Service:  svc,
		Validate: validator.New(),
	}
}

// 🟢 POST /api/public/reviews/lookup
func (ctrl *ReviewController) Lookup(c *fiber.Ctx) error {
	var req dto.LookupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama HP wajib diisi (2-120 karakter)")
	}

	res, err := ctrl.Service.Lookup(c.UserContext(), req.PhoneName)
	switch {
	case errors.Is(err, helper.ErrEmptySlug):
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama HP harus mengandung huruf atau angka")
	case errors.Is(err, ai.ErrGenerate):
		log.Printf("❌ [REVIEW] generate gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "AI sedang sibuk. Silakan coba lagi.")
	case err != nil:
		log.Printf("❌ [REVIEW] lookup gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses review")
	}

	return helper.JsonOK(c, "Review berhasil diambil", dto.ReviewResponse{
		Slug:      res.Slug,
		FromCache: res.FromCache,
		Review:    res.Payload,
	})
}

// 🟢 GET /api/public/reviews
func (ctrl *ReviewController) ListCached(c *fiber.Ctx) error {
	recs, err := ctrl.Service.ListCached(c.UserContext())
	if err != nil {
		log.Printf("❌ [REVIEW] list cache gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar review")
	}

	out := make([]*dto.CachedReviewResponse, 0, len(recs))
	for i := range recs {
		resp, err := dto.ToCachedReviewResponse(&recs[i])
		if err != nil {
			// baris korup dilewati, jangan gagalkan seluruh daftar
			log.Printf("⚠️ [REVIEW] review_data korup, slug=%s", recs[i].Slug)
			continue
		}
		out = append(out, resp)
	}
	return helper.JsonOK(c, "Daftar review berhasil diambil", out)
}
