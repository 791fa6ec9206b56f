package service

import (
	"context"

	"gorm.io/gorm"

	"ponselku_backend/internals/features/dictionary/model"
)

// Store memisahkan operasi baris dari orkestrasi regenerate supaya kontrak
// ganti-utuh bisa diuji tanpa database.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Store) error) error
	DeleteAll(ctx context.Context) error
	Insert(ctx context.Context, entries []model.DictionaryEntryModel) error
	ListEntries(ctx context.Context) ([]model.DictionaryEntryModel, error)
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

func (s *GormStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.DictionaryEntryModel{}).Error
}

func (s *GormStore) Insert(ctx context.Context, entries []model.DictionaryEntryModel) error {
	return s.db.WithContext(ctx).Create(&entries).Error
}

func (s *GormStore) ListEntries(ctx context.Context) ([]model.DictionaryEntryModel, error) {
	var entries []model.DictionaryEntryModel
	err := s.db.WithContext(ctx).
		Order("dictionary_entry_category ASC, dictionary_entry_term ASC").
		Find(&entries).Error
	return entries, err
}
