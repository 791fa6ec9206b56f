package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponselku_backend/internals/features/ai"
	"ponselku_backend/internals/features/dictionary/model"
)

// fakeStore menyimpan entri di memori; WithinTx bekerja pada salinan dan baru
// meng-commit kalau fn sukses, meniru rollback transaksi.
type fakeStore struct {
	entries   []model.DictionaryEntryModel
	insertErr error
}

func (f *fakeStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	staged := &fakeStore{
		entries:   append([]model.DictionaryEntryModel(nil), f.entries...),
		insertErr: f.insertErr,
	}
	if err := fn(staged); err != nil {
		return err
	}
	f.entries = staged.entries
	return nil
}

func (f *fakeStore) DeleteAll(ctx context.Context) error {
	f.entries = nil
	return nil
}

func (f *fakeStore) Insert(ctx context.Context, entries []model.DictionaryEntryModel) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.entries = append(f.entries, entries...)
	return nil
}

func (f *fakeStore) ListEntries(ctx context.Context) ([]model.DictionaryEntryModel, error) {
	return append([]model.DictionaryEntryModel(nil), f.entries...), nil
}

type fakeGenerator struct {
	payload *ai.DictionaryPayload
	err     error
}

func (g *fakeGenerator) GenerateDictionary(ctx context.Context) (*ai.DictionaryPayload, error) {
	return g.payload, g.err
}

func seedEntries(terms ...string) []model.DictionaryEntryModel {
	out := make([]model.DictionaryEntryModel, 0, len(terms))
	for _, term := range terms {
		out = append(out, model.DictionaryEntryModel{DictionaryEntryTerm: term})
	}
	return out
}

func TestRegenerateReplacesWholeSet(t *testing.T) {
	store := &fakeStore{entries: seedEntries("LCD", "IPS", "Refresh Rate")}
	gen := &fakeGenerator{payload: &ai.DictionaryPayload{
		Entries: []ai.DictionaryEntryPayload{
			{Term: "AMOLED", Definition: "Panel dengan piksel yang memancarkan cahaya sendiri.", Category: "Layar"},
			{Term: "NFC", Definition: "Untuk pembayaran dan cek saldo e-money.", Category: "Konektivitas"},
		},
	}}
	svc := NewDictionaryService(store, gen)

	entries, err := svc.Regenerate(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// 3 entri lama diganti 2 entri baru → tepat 2 baris, tidak ada sisa.
	listed, err := svc.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, e := range listed {
		assert.NotContains(t, []string{"LCD", "IPS", "Refresh Rate"}, e.DictionaryEntryTerm)
	}
}

func TestRegenerateGeneratorErrorKeepsOldSet(t *testing.T) {
	store := &fakeStore{entries: seedEntries("AMOLED", "NFC")}
	gen := &fakeGenerator{err: ai.ErrGenerate}
	svc := NewDictionaryService(store, gen)

	_, err := svc.Regenerate(context.Background())
	require.ErrorIs(t, err, ai.ErrGenerate)

	listed, err := svc.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestRegenerateInsertFailureKeepsOldSet(t *testing.T) {
	store := &fakeStore{
		entries:   seedEntries("AMOLED", "NFC"),
		insertErr: errors.New("koneksi putus"),
	}
	gen := &fakeGenerator{payload: &ai.DictionaryPayload{
		Entries: []ai.DictionaryEntryPayload{{Term: "eSIM", Definition: "SIM tertanam."}},
	}}
	svc := NewDictionaryService(store, gen)

	_, err := svc.Regenerate(context.Background())
	require.Error(t, err)

	// Transaksi gagal → set lama utuh, bukan kamus kosong.
	listed, listErr := svc.ListEntries(context.Background())
	require.NoError(t, listErr)
	require.Len(t, listed, 2)
	assert.Equal(t, "AMOLED", listed[0].DictionaryEntryTerm)
}

func TestBuildEntriesSkipsEmptyTerms(t *testing.T) {
	payload := &ai.DictionaryPayload{
		Entries: []ai.DictionaryEntryPayload{
			{Term: "AMOLED", Definition: "Jenis panel layar dengan piksel yang memancarkan cahaya sendiri.", Category: "Layar"},
			{Term: "", Definition: "definisi tanpa istilah"},
			{Term: "NFC", Definition: "Near Field Communication, untuk pembayaran dan cek saldo e-money.", Category: "Konektivitas"},
		},
	}

	entries := buildEntries(payload)
	require.Len(t, entries, 2)
	assert.Equal(t, "AMOLED", entries[0].DictionaryEntryTerm)
	assert.Equal(t, "NFC", entries[1].DictionaryEntryTerm)
	assert.Equal(t, "Konektivitas", entries[1].DictionaryEntryCategory)
}

func TestBuildEntriesEmptyPayload(t *testing.T) {
	entries := buildEntries(&ai.DictionaryPayload{})
	assert.Empty(t, entries)
}
