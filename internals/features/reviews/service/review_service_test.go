package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/ai"
	helper "ponselku_backend/internals/helpers"

	"ponselku_backend/internals/features/reviews/model"
)

type fakeStore struct {
	mu       sync.Mutex
	recs     map[string]*model.SmartReviewModel
	findErr  error
	touched  chan string
	upserted chan string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		recs:     map[string]*model.SmartReviewModel{},
		touched:  make(chan string, 8),
		upserted: make(chan string, 8),
	}
}

func (f *fakeStore) FindBySlug(ctx context.Context, slug string) (*model.SmartReviewModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	rec, ok := f.recs[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeStore) TouchUpdatedAt(ctx context.Context, slug string) error {
	f.touched <- slug
	return nil
}

func (f *fakeStore) Upsert(ctx context.Context, rec *model.SmartReviewModel) error {
	f.mu.Lock()
	f.recs[rec.Slug] = rec
	f.mu.Unlock()
	f.upserted <- rec.Slug
	return nil
}

func (f *fakeStore) ListAll(ctx context.Context) ([]model.SmartReviewModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.SmartReviewModel, 0, len(f.recs))
	for _, r := range f.recs {
		out = append(out, *r)
	}
	return out, nil
}

type fakeGenerator struct {
	mu      sync.Mutex
	calls   int
	payload *ai.ReviewPayload
	err     error
	gate    chan struct{} // kalau non-nil, Generate nunggu gate dibuka
}

func (g *fakeGenerator) GenerateReview(ctx context.Context, phoneName string) (*ai.ReviewPayload, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.gate != nil {
		<-g.gate
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.payload, nil
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func samplePayload(name string) *ai.ReviewPayload {
	return &ai.ReviewPayload{PhoneName: name, Price: "Rp 3.999.000", ReleaseDate: "Maret 2025"}
}

func waitSignal(t *testing.T, ch chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("tidak ada sinyal untuk %s", want)
	}
}

func TestLookupMissGeneratesAndPersists(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{payload: samplePayload("Samsung Galaxy S25 Ultra")}
	svc := NewReviewService(store, gen)

	res, err := svc.Lookup(context.Background(), " Samsung Galaxy S25 Ultra! ")
	require.NoError(t, err)

	assert.Equal(t, "samsung-galaxy-s25-ultra", res.Slug)
	assert.False(t, res.FromCache)
	assert.Equal(t, OutcomeMiss, res.Outcome)
	assert.Equal(t, "Samsung Galaxy S25 Ultra", res.Payload.PhoneName)
	waitSignal(t, store.upserted, "samsung-galaxy-s25-ultra")
}

func TestLookupHitRefreshesTimestamp(t *testing.T) {
	store := newFakeStore()
	data, _ := json.Marshal(samplePayload("Samsung Galaxy S25 Ultra"))
	store.recs["samsung-galaxy-s25-ultra"] = &model.SmartReviewModel{
		Slug: "samsung-galaxy-s25-ultra", PhoneName: "Samsung Galaxy S25 Ultra", ReviewData: data,
	}
	gen := &fakeGenerator{payload: samplePayload("tidak boleh dipanggil")}
	svc := NewReviewService(store, gen)

	// casing/spasi beda → slug sama → hit
	res, err := svc.Lookup(context.Background(), "SAMSUNG galaxy s25 ultra")
	require.NoError(t, err)

	assert.True(t, res.FromCache)
	assert.Equal(t, OutcomeHit, res.Outcome)
	assert.Equal(t, 0, gen.callCount())
	waitSignal(t, store.touched, "samsung-galaxy-s25-ultra")
}

func TestLookupCollidingNamesShareRecord(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{payload: samplePayload("Poco F6")}
	svc := NewReviewService(store, gen)

	first, err := svc.Lookup(context.Background(), "Poco F6")
	require.NoError(t, err)
	waitSignal(t, store.upserted, "poco-f6")

	// nama beda tapi ternormalisasi ke slug sama → dapat record cache yang sama
	second, err := svc.Lookup(context.Background(), "poco   f6!!!")
	require.NoError(t, err)

	assert.Equal(t, first.Slug, second.Slug)
	assert.True(t, second.FromCache)
	assert.Equal(t, 1, gen.callCount())
}

func TestLookupStoreErrorTreatedAsMiss(t *testing.T) {
	store := newFakeStore()
	store.findErr = errors.New("connection refused")
	gen := &fakeGenerator{payload: samplePayload("Realme GT 6")}
	svc := NewReviewService(store, gen)

	res, err := svc.Lookup(context.Background(), "Realme GT 6")
	require.NoError(t, err)

	assert.False(t, res.FromCache)
	assert.Equal(t, OutcomeStoreUnavailable, res.Outcome)
	assert.Equal(t, 1, gen.callCount())
}

func TestLookupGeneratorErrorPropagates(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{err: ai.ErrGenerate}
	svc := NewReviewService(store, gen)

	_, err := svc.Lookup(context.Background(), "HP Misterius")
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrGenerate)
}

func TestLookupEmptySlugRejected(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{payload: samplePayload("x")}
	svc := NewReviewService(store, gen)

	_, err := svc.Lookup(context.Background(), "!!! ???")
	assert.ErrorIs(t, err, helper.ErrEmptySlug)
	assert.Equal(t, 0, gen.callCount())
}

func TestLookupSkipsPersistWhenNameEmpty(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{payload: &ai.ReviewPayload{PhoneName: "   "}}
	svc := NewReviewService(store, gen)

	res, err := svc.Lookup(context.Background(), "HP Ngasal 123")
	require.NoError(t, err)
	assert.False(t, res.FromCache)

	select {
	case slug := <-store.upserted:
		t.Fatalf("tidak boleh ada upsert, tapi ada untuk %s", slug)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestLookupConcurrentDuplicatesCoalesced(t *testing.T) {
	store := newFakeStore()
	gen := &fakeGenerator{payload: samplePayload("Itel S23"), gate: make(chan struct{})}
	svc := NewReviewService(store, gen)

	var wg sync.WaitGroup
	results := make([]*LookupResult, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.Lookup(context.Background(), "Itel S23")
			if !assert.NoError(t, err) {
				return
			}
			results[i] = res
		}(i)
	}

	// beri waktu semua goroutine masuk ke singleflight, lalu buka gate
	time.Sleep(100 * time.Millisecond)
	close(gen.gate)
	wg.Wait()

	assert.Equal(t, 1, gen.callCount())
	for _, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, "itel-s23", res.Slug)
		assert.Equal(t, "Itel S23", res.Payload.PhoneName)
	}
}
