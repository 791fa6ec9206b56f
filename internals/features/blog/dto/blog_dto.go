package dto

import (
	"time"

	"github.com/google/uuid"

	"ponselku_backend/internals/features/blog/model"
)

// Request dari frontend → backend

type PostRequest struct {
	Title      string     `json:"title" validate:"required,min=3,max=255"`
	Excerpt    string     `json:"excerpt" validate:"max=500"`
	Content    string     `json:"content" validate:"required"`
	CoverURL   *string    `json:"cover_url"`
	Status     string     `json:"status" validate:"omitempty,oneof=draft published"`
	CategoryID *uuid.UUID `json:"category_id"`
	AuthorID   *uuid.UUID `json:"author_id"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type AuthorRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

type CommentRequest struct {
	AuthorName string `json:"author_name" validate:"required,min=2,max=100"`
	Body       string `json:"body" validate:"required,min=1,max=2000"`
}

// Response ke frontend

type PostListItem struct {
	BlogPostID   uuid.UUID  `json:"blog_post_id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Excerpt      string     `json:"excerpt"`
	CoverURL     *string    `json:"cover_url,omitempty"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CategoryName *string    `json:"category_name,omitempty"`
	AuthorName   *string    `json:"author_name,omitempty"`
	CommentCount int64      `json:"comment_count"`
}

type PostDetailResponse struct {
	PostListItem
	Content string `json:"content"`
}

// Convert request → model (create). ID selalu dibuat server; tidak ada deteksi
// "baru vs lama" dari bentuk ID — create dan update adalah operasi terpisah.
func (r *PostRequest) ToModel(slug string) *model.BlogPostModel {
	status := r.Status
	if status == "" {
		status = model.PostStatusDraft
	}
	m := &model.BlogPostModel{
		BlogPostTitle:      r.Title,
		BlogPostSlug:       slug,
		BlogPostExcerpt:    r.Excerpt,
		BlogPostContent:    r.Content,
		BlogPostCoverURL:   r.CoverURL,
		BlogPostStatus:     status,
		BlogPostCategoryID: r.CategoryID,
		BlogPostAuthorID:   r.AuthorID,
	}
	if status == model.PostStatusPublished {
		now := time.Now()
		m.BlogPostPublishedAt = &now
	}
	return m
}

// ApplyTo menyalin field request ke model yang sudah ada (update).
func (r *PostRequest) ApplyTo(m *model.BlogPostModel) {
	m.BlogPostTitle = r.Title
	m.BlogPostExcerpt = r.Excerpt
	m.BlogPostContent = r.Content
	m.BlogPostCoverURL = r.CoverURL
	m.BlogPostCategoryID = r.CategoryID
	m.BlogPostAuthorID = r.AuthorID

	if r.Status != "" && r.Status != m.BlogPostStatus {
		m.BlogPostStatus = r.Status
		if r.Status == model.PostStatusPublished && m.BlogPostPublishedAt == nil {
			now := time.Now()
			m.BlogPostPublishedAt = &now
		}
	}
}
