package service

import (
	"context"

	"golang.org/x/sync/singleflight"

	"ponselku_backend/internals/features/ai"
	"ponselku_backend/internals/features/dictionary/model"
)

// Generator dibatasi ke operasi kamus saja supaya mudah difake di test.
type Generator interface {
	GenerateDictionary(ctx context.Context) (*ai.DictionaryPayload, error)
}

type DictionaryService struct {
	store Store
	gen   Generator
	group singleflight.Group
}

func NewDictionaryService(store Store, gen Generator) *DictionaryService {
	return &DictionaryService{store: store, gen: gen}
}

func (s *DictionaryService) ListEntries(ctx context.Context) ([]model.DictionaryEntryModel, error) {
	return s.store.ListEntries(ctx)
}

// Regenerate minta set istilah baru ke AI lalu mengganti seluruh isi tabel
// dalam satu transaksi. Request regenerate yang datang bersamaan digabung
// jadi satu panggilan AI.
func (s *DictionaryService) Regenerate(ctx context.Context) ([]model.DictionaryEntryModel, error) {
	res, err, _ := s.group.Do("dictionary", func() (interface{}, error) {
		payload, err := s.gen.GenerateDictionary(ctx)
		if err != nil {
			return nil, err
		}

		entries := buildEntries(payload)
		err = s.store.WithinTx(ctx, func(tx Store) error {
			if err := tx.DeleteAll(ctx); err != nil {
				return err
			}
			if len(entries) == 0 {
				return nil
			}
			return tx.Insert(ctx, entries)
		})
		if err != nil {
			return nil, err
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]model.DictionaryEntryModel), nil
}

func buildEntries(payload *ai.DictionaryPayload) []model.DictionaryEntryModel {
	entries := make([]model.DictionaryEntryModel, 0, len(payload.Entries))
	for _, e := range payload.Entries {
		if e.Term == "" {
			continue
		}
		entries = append(entries, model.DictionaryEntryModel{
			DictionaryEntryTerm:       e.Term,
			DictionaryEntryDefinition: e.Definition,
			DictionaryEntryCategory:   e.Category,
		})
	}
	return entries
}
