package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

type BlogPostModel struct {
	BlogPostID          uuid.UUID  `gorm:"column:blog_post_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"blog_post_id"`
	BlogPostTitle       string     `gorm:"column:blog_post_title;type:varchar(255);not null" json:"blog_post_title"`
	BlogPostSlug        string     `gorm:"column:blog_post_slug;type:varchar(160);uniqueIndex;not null" json:"blog_post_slug"`
	BlogPostExcerpt     string     `gorm:"column:blog_post_excerpt;type:text" json:"blog_post_excerpt"`
	BlogPostContent     string     `gorm:"column:blog_post_content;type:text;not null" json:"blog_post_content"`
	BlogPostCoverURL    *string    `gorm:"column:blog_post_cover_url;type:text" json:"blog_post_cover_url,omitempty"`
	BlogPostStatus      string     `gorm:"column:blog_post_status;type:varchar(20);default:draft" json:"blog_post_status"`
	BlogPostPublishedAt *time.Time `gorm:"column:blog_post_published_at" json:"blog_post_published_at,omitempty"`
	BlogPostCategoryID  *uuid.UUID `gorm:"column:blog_post_category_id;type:uuid" json:"blog_post_category_id,omitempty"`
	BlogPostAuthorID    *uuid.UUID `gorm:"column:blog_post_author_id;type:uuid" json:"blog_post_author_id,omitempty"`

	BlogPostCreatedAt time.Time      `gorm:"column:blog_post_created_at;autoCreateTime" json:"blog_post_created_at"`
	BlogPostUpdatedAt *time.Time     `gorm:"column:blog_post_updated_at;autoUpdateTime" json:"blog_post_updated_at,omitempty"`
	DeletedAt         gorm.DeletedAt `gorm:"column:blog_post_deleted_at" json:"blog_post_deleted_at,omitempty"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// IsPubliclyVisible: status published dan tanggal publish sudah lewat.
func (m *BlogPostModel) IsPubliclyVisible(now time.Time) bool {
	if m.BlogPostStatus != PostStatusPublished {
		return false
	}
	if m.BlogPostPublishedAt == nil {
		return false
	}
	return !m.BlogPostPublishedAt.After(now)
}
