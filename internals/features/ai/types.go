package ai

// Struktur hasil AI per fitur. Semua field wajib ada di skema prompt supaya
// hasil generate bisa langsung di-unmarshal tanpa post-processing.

type ReviewSpecs struct {
	Chipset  string `json:"chipset"`
	RAM      string `json:"ram"`
	Storage  string `json:"storage"`
	Display  string `json:"display"`
	Battery  string `json:"battery"`
	Charging string `json:"charging"`
	OS       string `json:"os"`
	Network  string `json:"network"`
}

type ReviewPerformance struct {
	AntutuScore string `json:"antutu_score"`
	GamingNotes string `json:"gaming_notes"`
	DailyUse    string `json:"daily_use"`
}

type ReviewCamera struct {
	Main       string `json:"main"`
	Ultrawide  string `json:"ultrawide"`
	Telephoto  string `json:"telephoto"`
	Front      string `json:"front"`
	VideoNotes string `json:"video_notes"`
}

// ReviewPayload adalah isi review lengkap yang dicache di smart_reviews.review_data.
type ReviewPayload struct {
	PhoneName      string            `json:"phone_name"`
	Price          string            `json:"price"`        // contoh: "Rp 3.999.000"
	ReleaseDate    string            `json:"release_date"` // contoh: "Maret 2025"
	Specs          ReviewSpecs       `json:"specs"`
	Performance    ReviewPerformance `json:"performance"`
	Camera         ReviewCamera      `json:"camera"`
	Pros           []string          `json:"pros"`
	Cons           []string          `json:"cons"`
	Features       string            `json:"features"`
	AINote         string            `json:"ai_note"`
	TargetAudience string            `json:"target_audience"`
	SuitableFor    []string          `json:"suitable_for"`
	Verdict        string            `json:"verdict"`
	Score          float64           `json:"score"`
}

type ComparisonPhone struct {
	PhoneName  string   `json:"phone_name"`
	Price      string   `json:"price"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Score      float64  `json:"score"`
}

type ComparisonPayload struct {
	Summary string            `json:"summary"`
	Phones  []ComparisonPhone `json:"phones"`
	Winner  string            `json:"winner"`
	Reason  string            `json:"reason"`
}

// MatchPreferences adalah input user untuk rekomendasi pembelian.
type MatchPreferences struct {
	Activities     []string `json:"activities"`
	CameraPriority string   `json:"camera_priority"`
	Budget         string   `json:"budget"`
	Notes          string   `json:"notes"`
}

type MatchRecommendation struct {
	PhoneName  string  `json:"phone_name"`
	Price      string  `json:"price"`
	Reason     string  `json:"reason"`
	MatchScore float64 `json:"match_score"`
}

type MatchPayload struct {
	Summary         string                `json:"summary"`
	Recommendations []MatchRecommendation `json:"recommendations"`
}

type TopTierEntry struct {
	Rank      int    `json:"rank"`
	PhoneName string `json:"phone_name"`
	Price     string `json:"price"`
	Highlight string `json:"highlight"`
	Reason    string `json:"reason"`
}

type TopTierPayload struct {
	Category string         `json:"category"`
	Entries  []TopTierEntry `json:"entries"`
}

type DictionaryEntryPayload struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
}

type DictionaryPayload struct {
	Entries []DictionaryEntryPayload `json:"entries"`
}

// ChatMessage satu giliran percakapan asisten.
type ChatMessage struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}
