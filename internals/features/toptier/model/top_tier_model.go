package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TopTierCategoryModel struct {
	TopTierCategoryID        uuid.UUID  `gorm:"column:top_tier_category_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"top_tier_category_id"`
	TopTierCategoryName      string     `gorm:"column:top_tier_category_name;type:varchar(100);not null" json:"top_tier_category_name"`
	TopTierCategorySlug      string     `gorm:"column:top_tier_category_slug;type:varchar(120);uniqueIndex;not null" json:"top_tier_category_slug"`
	TopTierCategoryCreatedAt time.Time  `gorm:"column:top_tier_category_created_at;autoCreateTime" json:"top_tier_category_created_at"`
	TopTierCategoryUpdatedAt *time.Time `gorm:"column:top_tier_category_updated_at;autoUpdateTime" json:"top_tier_category_updated_at,omitempty"`
}

func (TopTierCategoryModel) TableName() string {
	return "top_tier_categories"
}

// TopTierRankingModel satu entri peringkat. Satu kategori memiliki list
// berurutan yang diganti utuh setiap kali disimpan (bukan merge).
type TopTierRankingModel struct {
	TopTierRankingID         uuid.UUID      `gorm:"column:top_tier_ranking_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"top_tier_ranking_id"`
	TopTierRankingCategoryID uuid.UUID      `gorm:"column:top_tier_ranking_category_id;type:uuid;not null;index" json:"top_tier_ranking_category_id"`
	TopTierRankingRank       int            `gorm:"column:top_tier_ranking_rank;not null" json:"top_tier_ranking_rank"`
	TopTierRankingPhoneName  string         `gorm:"column:top_tier_ranking_phone_name;type:varchar(255);not null" json:"top_tier_ranking_phone_name"`
	TopTierRankingPrice      string         `gorm:"column:top_tier_ranking_price;type:varchar(100)" json:"top_tier_ranking_price"`
	TopTierRankingHighlights pq.StringArray `gorm:"column:top_tier_ranking_highlights;type:text[]" json:"top_tier_ranking_highlights"`
	TopTierRankingReason     string         `gorm:"column:top_tier_ranking_reason;type:text" json:"top_tier_ranking_reason"`
	TopTierRankingCreatedAt  time.Time      `gorm:"column:top_tier_ranking_created_at;autoCreateTime" json:"top_tier_ranking_created_at"`
}

func (TopTierRankingModel) TableName() string {
	return "top_tier_rankings"
}
