package service

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ponselku_backend/internals/features/reviews/model"
)

// Store adalah kontrak akses smart_reviews. Miss dilaporkan lewat
// gorm.ErrRecordNotFound; error lain berarti store sedang bermasalah.
type Store interface {
	FindBySlug(ctx context.Context, slug string) (*model.SmartReviewModel, error)
	TouchUpdatedAt(ctx context.Context, slug string) error
	Upsert(ctx context.Context, rec *model.SmartReviewModel) error
	ListAll(ctx context.Context) ([]model.SmartReviewModel, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindBySlug(ctx context.Context, slug string) (*model.SmartReviewModel, error) {
	var rec model.SmartReviewModel
	if err := s.db.WithContext(ctx).First(&rec, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) TouchUpdatedAt(ctx context.Context, slug string) error {
	return s.db.WithContext(ctx).
		Model(&model.SmartReviewModel{}).
		Where("slug = ?", slug).
		Update("updated_at", time.Now()).Error
}

// Upsert memakai ON CONFLICT (slug) DO UPDATE supaya dua writer yang menghitung
// slug sama secara bersamaan tidak menghasilkan baris ganda.
func (s *GormStore) Upsert(ctx context.Context, rec *model.SmartReviewModel) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone_name", "review_data", "updated_at"}),
	}).Create(rec).Error
}

func (s *GormStore) ListAll(ctx context.Context) ([]model.SmartReviewModel, error) {
	var recs []model.SmartReviewModel
	if err := s.db.WithContext(ctx).Order("updated_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
