package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/blog/dto"
	"ponselku_backend/internals/features/blog/model"
	helper "ponselku_backend/internals/helpers"
)

type BlogAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBlogAdminController(db *gorm.DB) *BlogAdminController {
	return &BlogAdminController{DB: db, Validate: validator.New()}
}

/* ===============================
   Posts
=================================*/

// 🟢 GET /api/a/posts — semua post termasuk draft
func (ctrl *BlogAdminController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.BlogPostModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung post")
	}

	var posts []model.BlogPostModel
	if err := ctrl.DB.WithContext(c.UserContext()).Order("blog_post_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	return helper.JsonList(c, "Daftar post berhasil diambil", posts,
		helper.BuildPagination(paging, total, len(posts)))
}

// 🟢 POST /api/a/posts — create selalu bikin ID & slug baru di server
func (ctrl *BlogAdminController) Create(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Judul dan konten wajib diisi")
	}

	baseSlug, err := helper.Slugify(req.Title)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Judul harus mengandung huruf atau angka")
	}
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB, "blog_posts", "blog_post_slug", baseSlug)
	if err != nil {
		log.Printf("❌ [BLOG] cek slug unik gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan post")
	}

	post := req.ToModel(slug)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(post).Error; err != nil {
		log.Printf("❌ [BLOG] simpan post gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan post")
	}
	return helper.JsonCreated(c, "Post berhasil dibuat", post)
}

// 🟡 PUT /api/a/posts/:id
func (ctrl *BlogAdminController) Update(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Judul dan konten wajib diisi")
	}

	var post model.BlogPostModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&post, "blog_post_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}

	req.ApplyTo(&post)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&post).Error; err != nil {
		log.Printf("❌ [BLOG] update post gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui post")
	}
	return helper.JsonOK(c, "Post berhasil diperbarui", post)
}

// 🔴 DELETE /api/a/posts/:id (soft delete)
func (ctrl *BlogAdminController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.BlogPostModel{}, "blog_post_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus post")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
	}
	return helper.JsonOK(c, "Post berhasil dihapus", nil)
}

// 🟢 POST /api/a/posts/upload-cover (multipart form, field "cover")
func (ctrl *BlogAdminController) UploadCover(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("cover")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar wajib diunggah di field 'cover'")
	}

	url, err := helper.UploadCoverImage("blog-covers", fileHeader)
	if err != nil {
		log.Printf("❌ [BLOG] upload cover gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah gambar")
	}
	return helper.JsonOK(c, "Gambar berhasil diunggah", fiber.Map{"url": url})
}

/* ===============================
   Categories
=================================*/

// 🟢 POST /api/a/categories
func (ctrl *BlogAdminController) CreateCategory(c *fiber.Ctx) error {
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
	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB, "categories", "category_slug", baseSlug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori")
	}

	cat := &model.CategoryModel{CategoryName: req.Name, CategorySlug: slug}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori")
	}
	return helper.JsonCreated(c, "Kategori berhasil dibuat", cat)
}

// 🟡 PUT /api/a/categories/:id
func (ctrl *BlogAdminController) UpdateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama kategori wajib diisi")
	}

	var cat model.CategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&cat, "category_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	cat.CategoryName = req.Name
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
	}
	return helper.JsonOK(c, "Kategori berhasil diperbarui", cat)
}

// 🔴 DELETE /api/a/categories/:id
func (ctrl *BlogAdminController) DeleteCategory(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.CategoryModel{}, "category_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	return helper.JsonOK(c, "Kategori berhasil dihapus", nil)
}

/* ===============================
   Authors
=================================*/

// 🟢 GET /api/a/authors
func (ctrl *BlogAdminController) ListAuthors(c *fiber.Ctx) error {
	var authors []model.AuthorModel
	if err := ctrl.DB.WithContext(c.UserContext()).Order("author_name ASC").Find(&authors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penulis")
	}
	return helper.JsonOK(c, "Daftar penulis berhasil diambil", authors)
}

// 🟢 POST /api/a/authors
func (ctrl *BlogAdminController) CreateAuthor(c *fiber.Ctx) error {
	var req dto.AuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama penulis wajib diisi")
	}

	author := &model.AuthorModel{
		AuthorName:      req.Name,
		AuthorBio:       req.Bio,
		AuthorAvatarURL: req.AvatarURL,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(author).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penulis")
	}
	return helper.JsonCreated(c, "Penulis berhasil dibuat", author)
}

// 🟡 PUT /api/a/authors/:id
func (ctrl *BlogAdminController) UpdateAuthor(c *fiber.Ctx) error {
	var req dto.AuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nama penulis wajib diisi")
	}

	var author model.AuthorModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&author, "author_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penulis tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penulis")
	}

	author.AuthorName = req.Name
	author.AuthorBio = req.Bio
	author.AuthorAvatarURL = req.AvatarURL
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&author).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui penulis")
	}
	return helper.JsonOK(c, "Penulis berhasil diperbarui", author)
}

// 🔴 DELETE /api/a/authors/:id
func (ctrl *BlogAdminController) DeleteAuthor(c *fiber.Ctx) error {
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.AuthorModel{}, "author_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus penulis")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Penulis tidak ditemukan")
	}
	return helper.JsonOK(c, "Penulis berhasil dihapus", nil)
}
