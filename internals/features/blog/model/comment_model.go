package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel: komentar tamu. GuestID adalah identifier acak per-browser yang
// dikirim frontend lewat header X-Guest-ID; hanya pemilik guest_id yang sama
// yang boleh menghapus komentarnya.
type CommentModel struct {
	CommentID         uuid.UUID `gorm:"column:comment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"comment_id"`
	CommentPostID     uuid.UUID `gorm:"column:comment_post_id;type:uuid;not null;index" json:"comment_post_id"`
	CommentGuestID    string    `gorm:"column:comment_guest_id;type:varchar(64);not null" json:"-"`
	CommentAuthorName string    `gorm:"column:comment_author_name;type:varchar(100);not null" json:"comment_author_name"`
	CommentBody       string    `gorm:"column:comment_body;type:text;not null" json:"comment_body"`
	CommentCreatedAt  time.Time `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}
