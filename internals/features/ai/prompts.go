package ai

import (
	"fmt"
	"strings"
)

// Semua prompt memaksa output JSON murni sesuai skema fitur.
// Jawaban di luar JSON dianggap parse error dan diperlakukan sama dengan provider error.

const reviewPromptTemplate = `Kamu adalah reviewer smartphone profesional di Indonesia. Buat review lengkap untuk HP berikut: "%s".

Jawab HANYA dengan satu objek JSON persis berskema ini, tanpa teks lain dan tanpa markdown:
{
  "phone_name": "nama resmi HP",
  "price": "harga pasar Indonesia dalam Rupiah, contoh: Rp 3.999.000",
  "release_date": "bulan dan tahun rilis berbahasa Indonesia, contoh: Maret 2025",
  "specs": {"chipset": "...", "ram": "...", "storage": "...", "display": "...", "battery": "...", "charging": "...", "os": "...", "network": "..."},
  "performance": {"antutu_score": "...", "gaming_notes": "...", "daily_use": "..."},
  "camera": {"main": "...", "ultrawide": "...", "telephoto": "...", "front": "...", "video_notes": "..."},
  "pros": ["..."],
  "cons": ["..."],
  "features": "fitur unggulan dipisah koma, sebutkan rating IP kalau ada (contoh: IP68)",
  "ai_note": "catatan singkat AI tentang posisi HP ini di pasar",
  "target_audience": "siapa yang cocok membeli HP ini",
  "suitable_for": ["gaming", "kamera", "dst"],
  "verdict": "kesimpulan satu paragraf",
  "score": 8.5
}

Aturan:
- Semua teks berbahasa Indonesia.
- Kalau HP tidak dikenal, isi "phone_name" dengan string kosong.
- "score" angka 0-10 dengan satu desimal.
- Jangan pakai blok kode markdown.`

const comparisonPromptTemplate = `Kamu adalah reviewer smartphone profesional di Indonesia. Bandingkan HP berikut secara objektif: %s.

Jawab HANYA dengan satu objek JSON persis berskema ini, tanpa teks lain:
{
  "summary": "ringkasan perbandingan satu paragraf",
  "phones": [
    {"phone_name": "...", "price": "Rp ...", "strengths": ["..."], "weaknesses": ["..."], "score": 8.2}
  ],
  "winner": "nama HP pemenang",
  "reason": "alasan pemenang dipilih"
}

Aturan:
- Urutan "phones" mengikuti urutan input.
- Semua teks berbahasa Indonesia, tanpa markdown.`

const matchPromptTemplate = `Kamu adalah konsultan pembelian smartphone di Indonesia. Rekomendasikan HP sesuai preferensi user berikut.

Aktivitas utama: %s
Prioritas kamera: %s
Budget: %s
Catatan tambahan: %s

Jawab HANYA dengan satu objek JSON persis berskema ini, tanpa teks lain:
{
  "summary": "ringkasan kebutuhan user dan arah rekomendasi",
  "recommendations": [
    {"phone_name": "...", "price": "Rp ...", "reason": "kenapa cocok untuk user ini", "match_score": 92}
  ]
}

Aturan:
- Maksimal 5 rekomendasi, urut dari paling cocok.
- "match_score" angka 0-100.
- Harga harus masuk budget user. Semua teks berbahasa Indonesia, tanpa markdown.`

const topTierPromptTemplate = `Kamu adalah reviewer smartphone profesional di Indonesia. Susun peringkat HP terbaik saat ini untuk kategori "%s".

Jawab HANYA dengan satu objek JSON persis berskema ini, tanpa teks lain:
{
  "category": "%s",
  "entries": [
    {"rank": 1, "phone_name": "...", "price": "Rp ...", "highlight": "keunggulan utama singkat", "reason": "kenapa dapat peringkat ini"}
  ]
}

Aturan:
- Tepat 5 entry, "rank" 1 sampai 5 berurutan.
- Semua teks berbahasa Indonesia, tanpa markdown.`

const dictionaryPrompt = `Kamu adalah penyusun kamus istilah smartphone berbahasa Indonesia. Buat daftar istilah teknis yang sering muncul di spesifikasi HP.

Jawab HANYA dengan satu objek JSON persis berskema ini, tanpa teks lain:
{
  "entries": [
    {"term": "AMOLED", "definition": "penjelasan singkat dan mudah dipahami", "category": "layar"}
  ]
}

Aturan:
- Minimal 20 istilah, mencakup layar, chipset, kamera, baterai, konektivitas, dan software.
- "category" salah satu dari: layar, chipset, kamera, baterai, konektivitas, software, lainnya.
- Semua teks berbahasa Indonesia, tanpa markdown.`

const chatSystemPrompt = `Kamu adalah asisten portal informasi smartphone Ponselku. Jawab pertanyaan seputar HP, spesifikasi, dan rekomendasi pembelian dengan bahasa Indonesia yang santai tapi akurat. Kalau pertanyaan di luar topik smartphone, arahkan kembali dengan sopan. Jawaban singkat, maksimal 3 paragraf.`

func buildReviewPrompt(phoneName string) string {
	return fmt.Sprintf(reviewPromptTemplate, phoneName)
}

func buildComparisonPrompt(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, `"`+n+`"`)
	}
	return fmt.Sprintf(comparisonPromptTemplate, strings.Join(quoted, " vs "))
}

func buildMatchPrompt(prefs MatchPreferences) string {
	activities := strings.Join(prefs.Activities, ", ")
	if activities == "" {
		activities = "tidak disebutkan"
	}
	notes := strings.TrimSpace(prefs.Notes)
	if notes == "" {
		notes = "tidak ada"
	}
	return fmt.Sprintf(matchPromptTemplate, activities, prefs.CameraPriority, prefs.Budget, notes)
}

func buildTopTierPrompt(category string) string {
	return fmt.Sprintf(topTierPromptTemplate, category, category)
}
