package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/blog/dto"
	"ponselku_backend/internals/features/blog/model"
	helper "ponselku_backend/internals/helpers"
)

type BlogPublicController struct {
	DB *gorm.DB
}

func NewBlogPublicController(db *gorm.DB) *BlogPublicController {
	return &BlogPublicController{DB: db}
}

// row hasil join post ↔ kategori ↔ penulis ↔ jumlah komentar
type postRow struct {
	BlogPostID   uuid.UUID
	Title        string
	Slug         string
	Excerpt      string
	Content      string
	CoverURL     *string
	Status       string
	PublishedAt  *time.Time
	CategoryName *string
	AuthorName   *string
	CommentCount int64
}

func (r *postRow) toListItem() dto.PostListItem {
	return dto.PostListItem{
		BlogPostID:   r.BlogPostID,
		Title:        r.Title,
		Slug:         r.Slug,
		Excerpt:      r.Excerpt,
		CoverURL:     r.CoverURL,
		Status:       r.Status,
		PublishedAt:  r.PublishedAt,
		CategoryName: r.CategoryName,
		AuthorName:   r.AuthorName,
		CommentCount: r.CommentCount,
	}
}

func (ctrl *BlogPublicController) joinedPosts(c *fiber.Ctx) *gorm.DB {
	return ctrl.DB.WithContext(c.UserContext()).Table("blog_posts").
		Select(`blog_posts.blog_post_id,
			blog_posts.blog_post_title AS title,
			blog_posts.blog_post_slug AS slug,
			blog_posts.blog_post_excerpt AS excerpt,
			blog_posts.blog_post_content AS content,
			blog_posts.blog_post_cover_url AS cover_url,
			blog_posts.blog_post_status AS status,
			blog_posts.blog_post_published_at AS published_at,
			categories.category_name AS category_name,
			authors.author_name AS author_name,
			(SELECT COUNT(*) FROM comments WHERE comments.comment_post_id = blog_posts.blog_post_id) AS comment_count`).
		Joins("LEFT JOIN categories ON categories.category_id = blog_posts.blog_post_category_id").
		Joins("LEFT JOIN authors ON authors.author_id = blog_posts.blog_post_author_id").
		Where("blog_posts.blog_post_deleted_at IS NULL")
}

// 🟢 GET /api/public/blog?category=&page=&per_page=
func (ctrl *BlogPublicController) ListPublished(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)
	cat := c.Query("category")

	// query dibangun ulang untuk Count dan Scan supaya statement tidak saling polusi
	buildQuery := func() *gorm.DB {
		q := ctrl.joinedPosts(c).
			Where("blog_posts.blog_post_status = ?", model.PostStatusPublished).
			Where("blog_posts.blog_post_published_at <= ?", time.Now())
		if cat != "" {
			q = q.Where("categories.category_slug = ?", cat)
		}
		return q
	}

	var total int64
	if err := buildQuery().Count(&total).Error; err != nil {
		log.Printf("❌ [BLOG] hitung post gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar artikel")
	}

	var rows []postRow
	if err := buildQuery().Order("blog_posts.blog_post_published_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		log.Printf("❌ [BLOG] ambil post gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar artikel")
	}

	items := make([]dto.PostListItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toListItem())
	}
	return helper.JsonList(c, "Daftar artikel berhasil diambil", items,
		helper.BuildPagination(paging, total, len(items)))
}

// 🟢 GET /api/public/blog/:slug
func (ctrl *BlogPublicController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var row postRow
	err := ctrl.joinedPosts(c).
		Where("blog_posts.blog_post_slug = ?", slug).
		Where("blog_posts.blog_post_status = ?", model.PostStatusPublished).
		Where("blog_posts.blog_post_published_at <= ?", time.Now()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}
	if err != nil {
		log.Printf("❌ [BLOG] ambil detail gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	return helper.JsonOK(c, "Artikel berhasil diambil", dto.PostDetailResponse{
		PostListItem: row.toListItem(),
		Content:      row.Content,
	})
}

// 🟢 GET /api/public/blog/categories
func (ctrl *BlogPublicController) ListCategories(c *fiber.Ctx) error {
	var cats []model.CategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).Order("category_name ASC").Find(&cats).Error; err != nil {
		log.Printf("❌ [BLOG] ambil kategori gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "Daftar kategori berhasil diambil", cats)
}
