package dto

import (
	"github.com/google/uuid"

	"ponselku_backend/internals/features/ai"
	"ponselku_backend/internals/features/toptier/model"
)

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type RankingEntryRequest struct {
	PhoneName  string   `json:"phone_name" validate:"required,min=2,max=255"`
	Price      string   `json:"price"`
	Highlights []string `json:"highlights"`
	Reason     string   `json:"reason"`
}

type SaveRankingsRequest struct {
	Entries []RankingEntryRequest `json:"entries" validate:"required,min=1,max=10,dive"`
}

type CategoryWithRankings struct {
	Category model.TopTierCategoryModel  `json:"category"`
	Rankings []model.TopTierRankingModel `json:"rankings"`
}

// BuildRankingModels memberi rank 1..n sesuai urutan entries. Urutan request
// adalah urutan peringkat; rank tidak dikirim terpisah oleh client.
func BuildRankingModels(categoryID uuid.UUID, entries []RankingEntryRequest) []model.TopTierRankingModel {
	out := make([]model.TopTierRankingModel, 0, len(entries))
	for i, e := range entries {
		out = append(out, model.TopTierRankingModel{
			TopTierRankingCategoryID: categoryID,
			TopTierRankingRank:       i + 1,
			TopTierRankingPhoneName:  e.PhoneName,
			TopTierRankingPrice:      e.Price,
			TopTierRankingHighlights: e.Highlights,
			TopTierRankingReason:     e.Reason,
		})
	}
	return out
}

// FromAIPayload memetakan hasil generate AI ke bentuk request yang sama
// dengan input admin, supaya jalur simpannya satu.
func FromAIPayload(payload *ai.TopTierPayload) []RankingEntryRequest {
	out := make([]RankingEntryRequest, 0, len(payload.Entries))
	for _, e := range payload.Entries {
		entry := RankingEntryRequest{
			PhoneName: e.PhoneName,
			Price:     e.Price,
			Reason:    e.Reason,
		}
		if e.Highlight != "" {
			entry.Highlights = []string{e.Highlight}
		}
		out = append(out, entry)
	}
	return out
}
