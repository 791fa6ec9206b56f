package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/toptier/model"
)

// Store memisahkan operasi baris dari orkestrasi replace, supaya kontrak
// ganti-utuh bisa diuji tanpa database.
type Store interface {
	// WithinTx menjalankan fn dalam satu transaksi; fn menerima Store yang
	// terikat ke transaksi itu.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error
	InsertRankings(ctx context.Context, rankings []model.TopTierRankingModel) error
	RankingsByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.TopTierRankingModel, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("top_tier_ranking_category_id = ?", categoryID).
		Delete(&model.TopTierRankingModel{}).Error
}

func (s *GormStore) InsertRankings(ctx context.Context, rankings []model.TopTierRankingModel) error {
	return s.db.WithContext(ctx).Create(&rankings).Error
}

func (s *GormStore) RankingsByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.TopTierRankingModel, error) {
	var rankings []model.TopTierRankingModel
	err := s.db.WithContext(ctx).
		Where("top_tier_ranking_category_id = ?", categoryID).
		Order("top_tier_ranking_rank ASC").
		Find(&rankings).Error
	return rankings, err
}

func (s *GormStore) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Delete(&model.TopTierCategoryModel{}, "top_tier_category_id = ?", categoryID).Error
}
