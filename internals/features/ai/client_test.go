package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"polos", `{"a":1}`, `{"a":1}`},
		{"fence json", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence tanpa bahasa", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"spasi di ujung", "  {\"a\":1}  ", `{"a":1}`},
		{"fence plus spasi", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFence(tc.in))
		})
	}
}

func TestReviewPayloadParse(t *testing.T) {
	raw := "```json\n" + `{
		"phone_name": "Samsung Galaxy S25 Ultra",
		"price": "Rp 21.999.000",
		"release_date": "Februari 2025",
		"specs": {"chipset": "Snapdragon 8 Elite", "ram": "12GB", "storage": "256GB", "display": "6.9 inci", "battery": "5000 mAh", "charging": "45W", "os": "Android 15", "network": "5G"},
		"performance": {"antutu_score": "2.1 juta", "gaming_notes": "lancar", "daily_use": "sangat gegas"},
		"camera": {"main": "200MP", "ultrawide": "50MP", "telephoto": "50MP", "front": "12MP", "video_notes": "8K"},
		"pros": ["layar terang"],
		"cons": ["harga tinggi"],
		"features": "IP68, S Pen, NFC",
		"ai_note": "flagship terbaik Samsung",
		"target_audience": "power user",
		"suitable_for": ["gaming", "kamera"],
		"verdict": "nyaris sempurna",
		"score": 9.2
	}` + "\n```"

	var payload ReviewPayload
	require.NoError(t, json.Unmarshal([]byte(StripCodeFence(raw)), &payload))

	assert.Equal(t, "Samsung Galaxy S25 Ultra", payload.PhoneName)
	assert.Equal(t, "Rp 21.999.000", payload.Price)
	assert.Equal(t, "Snapdragon 8 Elite", payload.Specs.Chipset)
	assert.Equal(t, []string{"gaming", "kamera"}, payload.SuitableFor)
	assert.InDelta(t, 9.2, payload.Score, 0.001)
}

func TestBuildComparisonPrompt(t *testing.T) {
	p := buildComparisonPrompt([]string{"Poco F6", "Realme GT 6"})
	assert.Contains(t, p, `"Poco F6" vs "Realme GT 6"`)
}

func TestBuildMatchPromptDefaults(t *testing.T) {
	p := buildMatchPrompt(MatchPreferences{CameraPriority: "tinggi", Budget: "4-6 Juta"})
	assert.Contains(t, p, "tidak disebutkan")
	assert.Contains(t, p, "tidak ada")
	assert.Contains(t, p, "4-6 Juta")
}
