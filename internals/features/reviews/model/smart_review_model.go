package model

import (
	"time"

	"gorm.io/datatypes"
)

// SmartReviewModel adalah cache review AI, di-key dengan slug hasil normalisasi
// nama HP. Slug adalah identitas: dua nama yang ternormalisasi sama memang
// sengaja menunjuk record yang sama.
type SmartReviewModel struct {
	Slug       string         `gorm:"column:slug;primaryKey;type:varchar(160)" json:"slug"`
	PhoneName  string         `gorm:"column:phone_name;type:varchar(255);not null" json:"phone_name"`
	ReviewData datatypes.JSON `gorm:"column:review_data;type:jsonb;not null" json:"review_data"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SmartReviewModel) TableName() string {
	return "smart_reviews"
}
