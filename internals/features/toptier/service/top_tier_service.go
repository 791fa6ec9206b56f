package service

import (
	"context"

	"github.com/google/uuid"

	"ponselku_backend/internals/features/toptier/model"
)

type TopTierService struct {
	store Store
}

func NewTopTierService(store Store) *TopTierService {
	return &TopTierService{store: store}
}

// ReplaceRankings mengganti seluruh set peringkat sebuah kategori:
// delete-then-insert dalam satu transaksi, jadi pembaca tidak pernah melihat
// kategori setengah terganti.
func (s *TopTierService) ReplaceRankings(ctx context.Context, categoryID uuid.UUID, rankings []model.TopTierRankingModel) error {
	return s.store.WithinTx(ctx, func(tx Store) error {
		if err := tx.DeleteByCategory(ctx, categoryID); err != nil {
			return err
		}
		if len(rankings) == 0 {
			return nil
		}
		return tx.InsertRankings(ctx, rankings)
	})
}

// DeleteCategory menghapus kategori berikut peringkatnya dalam satu transaksi,
// supaya tidak pernah tersisa kategori kosong kalau salah satu delete gagal.
func (s *TopTierService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	return s.store.WithinTx(ctx, func(tx Store) error {
		if err := tx.DeleteByCategory(ctx, categoryID); err != nil {
			return err
		}
		return tx.DeleteCategory(ctx, categoryID)
	})
}

func (s *TopTierService) RankingsByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.TopTierRankingModel, error) {
	return s.store.RankingsByCategory(ctx, categoryID)
}
