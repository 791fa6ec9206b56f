package model

import (
	"time"

	"github.com/google/uuid"
)

type AuthorModel struct {
	AuthorID        uuid.UUID  `gorm:"column:author_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"author_id"`
	AuthorName      string     `gorm:"column:author_name;type:varchar(100);not null" json:"author_name"`
	AuthorBio       string     `gorm:"column:author_bio;type:text" json:"author_bio"`
	AuthorAvatarURL *string    `gorm:"column:author_avatar_url;type:text" json:"author_avatar_url,omitempty"`
	AuthorCreatedAt time.Time  `gorm:"column:author_created_at;autoCreateTime" json:"author_created_at"`
	AuthorUpdatedAt *time.Time `gorm:"column:author_updated_at;autoUpdateTime" json:"author_updated_at,omitempty"`
}

func (AuthorModel) TableName() string {
	return "authors"
}
