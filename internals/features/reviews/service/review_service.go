package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/ai"
	helper "ponselku_backend/internals/helpers"

	"ponselku_backend/internals/features/reviews/model"
)

// StoreOutcome membedakan "record memang tidak ada" dari "store lagi error".
// Keduanya sama-sama lanjut ke generate, tapi harus bisa dibedakan di log.
type StoreOutcome int

const (
	OutcomeHit StoreOutcome = iota
	OutcomeMiss
	OutcomeStoreUnavailable
)

func (o StoreOutcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	default:
		return "store_unavailable"
	}
}

// Generator adalah boundary ke provider AI.
type Generator interface {
	GenerateReview(ctx context.Context, phoneName string) (*ai.ReviewPayload, error)
}

// LookupResult hasil satu kali lookup review.
type LookupResult struct {
	Slug      string
	Payload   *ai.ReviewPayload
	FromCache bool
	Outcome   StoreOutcome
}

const detachedWriteTimeout = 5 * time.Second

// ReviewService mengimplement pola cache-or-generate untuk smart review.
type ReviewService struct {
	store Store
	gen   Generator
	group singleflight.Group
}

func NewReviewService(store Store, gen Generator) *ReviewService {
	return &ReviewService{store: store, gen: gen}
}

// Lookup: normalisasi nama → cek cache by slug → kalau hit, refresh timestamp
// di background dan kembalikan payload; kalau miss (atau store error), generate
// lewat AI, persist best-effort, lalu kembalikan hasilnya.
// Request duplikat untuk slug yang sama digabung jadi satu panggilan AI.
func (s *ReviewService) Lookup(ctx context.Context, rawName string) (*LookupResult, error) {
	slug, err := helper.Slugify(rawName)
	if err != nil {
		return nil, err
	}

	outcome := OutcomeMiss
	rec, err := s.store.FindBySlug(ctx, slug)
	switch {
	case err == nil:
		if payload := decodePayload(rec.ReviewData); payload != nil {
			s.refreshTimestampDetached(slug)
			return &LookupResult{Slug: slug, Payload: payload, FromCache: true, Outcome: OutcomeHit}, nil
		}
		// payload cache korup: perlakukan seperti miss, regenerate
		log.Printf("⚠️ [REVIEW] review_data korup untuk slug=%s, regenerate", slug)
	case errors.Is(err, gorm.ErrRecordNotFound):
		outcome = OutcomeMiss
	default:
		outcome = OutcomeStoreUnavailable
		log.Printf("⚠️ [REVIEW] store lookup gagal (lanjut generate), slug=%s err=%v", slug, err)
	}

	v, err, _ := s.group.Do(slug, func() (interface{}, error) {
		payload, genErr := s.gen.GenerateReview(ctx, rawName)
		if genErr != nil {
			return nil, genErr
		}
		if strings.TrimSpace(payload.PhoneName) != "" {
			s.persistDetached(slug, payload)
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}

	return &LookupResult{Slug: slug, Payload: v.(*ai.ReviewPayload), FromCache: false, Outcome: outcome}, nil
}

// ListCached mengembalikan seluruh isi cache (sumber data katalog).
func (s *ReviewService) ListCached(ctx context.Context) ([]model.SmartReviewModel, error) {
	return s.store.ListAll(ctx)
}

// refreshTimestampDetached: tulis updated_at di background, best-effort.
// Gagal hanya dicatat, tidak pernah memblokir atau menggagalkan read path.
func (s *ReviewService) refreshTimestampDetached(slug string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachedWriteTimeout)
		defer cancel()
		if err := s.store.TouchUpdatedAt(ctx, slug); err != nil {
			log.Printf("⚠️ [REVIEW] refresh updated_at gagal, slug=%s err=%v", slug, err)
		}
	}()
}

// persistDetached: simpan hasil generate di background, best-effort.
// Caller sudah pegang payload-nya; crash di sini cuma kehilangan cache.
func (s *ReviewService) persistDetached(slug string, payload *ai.ReviewPayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("⚠️ [REVIEW] marshal payload gagal, slug=%s err=%v", slug, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), detachedWriteTimeout)
		defer cancel()
		rec := &model.SmartReviewModel{
			Slug:       slug,
			PhoneName:  payload.PhoneName,
			ReviewData: data,
			UpdatedAt:  time.Now(),
		}
		if err := s.store.Upsert(ctx, rec); err != nil {
			log.Printf("⚠️ [REVIEW] persist cache gagal, slug=%s err=%v", slug, err)
		}
	}()
}

func decodePayload(data []byte) *ai.ReviewPayload {
	var payload ai.ReviewPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}
	return &payload
}
