package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/blog/dto"
	"ponselku_backend/internals/features/blog/model"
	helper "ponselku_backend/internals/helpers"
)

const guestHeader = "X-Guest-ID"

type CommentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db, Validate: validator.New()}
}

func (ctrl *CommentController) visiblePostBySlug(c *fiber.Ctx) (*model.BlogPostModel, error) {
	var post model.BlogPostModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("blog_post_slug = ?", c.Params("slug")).
		Where("blog_post_status = ?", model.PostStatusPublished).
		Where("blog_post_published_at <= ?", time.Now()).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// 🟢 GET /api/public/blog/:slug/comments
func (ctrl *CommentController) ListByPost(c *fiber.Ctx) error {
	post, err := ctrl.visiblePostBySlug(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}

	var comments []model.CommentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("comment_post_id = ?", post.BlogPostID).
		Order("comment_created_at ASC").
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}
	return helper.JsonOK(c, "Daftar komentar berhasil diambil", comments)
}

// 🟢 POST /api/public/blog/:slug/comments (header X-Guest-ID wajib)
func (ctrl *CommentController) Create(c *fiber.Ctx) error {
	guestID := strings.TrimSpace(c.Get(guestHeader))
	if guestID == "" || len(guestID) > 64 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Header X-Guest-ID wajib diisi")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama dan isi komentar wajib diisi")
	}

	post, err := ctrl.visiblePostBySlug(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan komentar")
	}

	comment := &model.CommentModel{
		CommentPostID:     post.BlogPostID,
		CommentGuestID:    guestID,
		CommentAuthorName: req.AuthorName,
		CommentBody:       req.Body,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(comment).Error; err != nil {
		log.Printf("❌ [COMMENT] simpan gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan komentar")
	}
	return helper.JsonCreated(c, "Komentar berhasil dikirim", comment)
}

// 🔴 DELETE /api/public/comments/:id — hanya pemilik guest_id yang sama
func (ctrl *CommentController) Delete(c *fiber.Ctx) error {
	guestID := strings.TrimSpace(c.Get(guestHeader))
	if guestID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Header X-Guest-ID wajib diisi")
	}

	var comment model.CommentModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&comment, "comment_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Komentar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus komentar")
	}

	if comment.CommentGuestID != guestID {
		return helper.JsonError(c, fiber.StatusForbidden, "Komentar hanya bisa dihapus oleh pengirimnya")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus komentar")
	}
	return helper.JsonOK(c, "Komentar berhasil dihapus", nil)
}
