package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponselku_backend/internals/features/ai"
)

func TestBuildRankingModelsAssignsSequentialRanks(t *testing.T) {
	categoryID := uuid.New()
	entries := []RankingEntryRequest{
		{PhoneName: "Samsung Galaxy S25 Ultra", Price: "Rp 21.999.000"},
		{PhoneName: "iPhone 16 Pro Max"},
		{PhoneName: "Xiaomi 15", Highlights: []string{"Snapdragon 8 Elite", "HyperOS 2"}},
	}

	models := BuildRankingModels(categoryID, entries)
	require.Len(t, models, 3)

	for i, m := range models {
		assert.Equal(t, i+1, m.TopTierRankingRank)
		assert.Equal(t, categoryID, m.TopTierRankingCategoryID)
		assert.Equal(t, entries[i].PhoneName, m.TopTierRankingPhoneName)
	}
	assert.Equal(t, []string{"Snapdragon 8 Elite", "HyperOS 2"}, []string(models[2].TopTierRankingHighlights))
}

func TestBuildRankingModelsEmptyEntries(t *testing.T) {
	models := BuildRankingModels(uuid.New(), nil)
	assert.Empty(t, models)
}

func TestFromAIPayloadMapsEntries(t *testing.T) {
	payload := &ai.TopTierPayload{
		Category: "HP Gaming Terbaik",
		Entries: []ai.TopTierEntry{
			{Rank: 1, PhoneName: "ROG Phone 9 Pro", Price: "Rp 16.999.000", Highlight: "Snapdragon 8 Elite", Reason: "Performa gaming paling kencang"},
			{Rank: 2, PhoneName: "RedMagic 10 Pro", Price: "Rp 12.499.000", Reason: "Baterai 7050 mAh"},
		},
	}

	entries := FromAIPayload(payload)
	require.Len(t, entries, 2)

	assert.Equal(t, "ROG Phone 9 Pro", entries[0].PhoneName)
	assert.Equal(t, []string{"Snapdragon 8 Elite"}, entries[0].Highlights)
	assert.Equal(t, "Performa gaming paling kencang", entries[0].Reason)

	// Highlight kosong tidak menghasilkan slice berisi string kosong.
	assert.Nil(t, entries[1].Highlights)

	// Rank dari AI diabaikan; urutan entries yang menentukan.
	models := BuildRankingModels(uuid.New(), entries)
	assert.Equal(t, 1, models[0].TopTierRankingRank)
	assert.Equal(t, 2, models[1].TopTierRankingRank)
}
