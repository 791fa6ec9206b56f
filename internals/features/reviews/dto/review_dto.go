package dto

import (
	"encoding/json"

	"ponselku_backend/internals/features/ai"
	"ponselku_backend/internals/features/reviews/model"
)

// Request dari frontend → backend
type LookupRequest struct {
	PhoneName string `json:"phone_name" validate:"required,min=2,max=120"`
}

// Response ke frontend
type ReviewResponse struct {
	Slug      string            `json:"slug"`
	FromCache bool              `json:"from_cache"`
	Review    *ai.ReviewPayload `json:"review"`
}

type CachedReviewResponse struct {
	Slug      string            `json:"slug"`
	PhoneName string            `json:"phone_name"`
	Review    *ai.ReviewPayload `json:"review"`
	UpdatedAt string            `json:"updated_at"`
}

// Convert model → response; payload yang tidak bisa di-decode dilewati oleh caller.
func ToCachedReviewResponse(m *model.SmartReviewModel) (*CachedReviewResponse, error) {
	var payload ai.ReviewPayload
	if err := json.Unmarshal(m.ReviewData, &payload); err != nil {
		return nil, err
	}
	return &CachedReviewResponse{
		Slug:      m.Slug,
		PhoneName: m.PhoneName,
		Review:    &payload,
		UpdatedAt: m.UpdatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
