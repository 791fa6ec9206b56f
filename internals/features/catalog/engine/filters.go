package engine

import (
	"regexp"
	"strings"
)

/* ===============================
   Mode Brand
=================================*/

// PrimaryBrands adalah daftar brand utama yang tampil sebagai tombol filter.
var PrimaryBrands = []string{
	"Samsung", "Xiaomi", "Apple", "Oppo", "Vivo", "Realme", "Infinix", "Itel", "Tecno",
}

// BrandOther adalah sentinel untuk brand di luar daftar utama.
const BrandOther = "Lainnya"

func brandPredicate(selector string) func(CatalogItem) bool {
	if strings.EqualFold(selector, BrandOther) {
		return func(it CatalogItem) bool {
			for _, b := range PrimaryBrands {
				if strings.EqualFold(it.Brand, b) {
					return false
				}
			}
			return true
		}
	}
	lowSel := strings.ToLower(selector)
	return func(it CatalogItem) bool {
		return strings.Contains(strings.ToLower(it.Name), lowSel) ||
			strings.EqualFold(it.Brand, selector)
	}
}

/* ===============================
   Mode Harga
=================================*/

// PriceBracket satu rentang harga. MinExclusive membedakan batas bawah
// bracket pertama (inklusif) dari bracket lanjutan (eksklusif), supaya
// tepat 2.000.000 cuma masuk bracket pertama.
type PriceBracket struct {
	Label        string
	Min          int
	Max          int // diabaikan kalau OpenTop
	MinExclusive bool
	OpenTop      bool
}

func (b PriceBracket) Contains(n int) bool {
	if b.MinExclusive {
		if n <= b.Min {
			return false
		}
	} else if n < b.Min {
		return false
	}
	if !b.OpenTop && n > b.Max {
		return false
	}
	return true
}

// PriceBrackets adalah lima bracket Rupiah untuk mode harga. Harga yang tidak
// bisa diparse (0) tidak masuk bracket mana pun — item seperti itu memang
// hilang dari hasil mode harga.
var PriceBrackets = []PriceBracket{
	{Label: "1-2 Juta", Min: 1_000_000, Max: 2_000_000},
	{Label: "2-4 Juta", Min: 2_000_000, Max: 4_000_000, MinExclusive: true},
	{Label: "4-6 Juta", Min: 4_000_000, Max: 6_000_000, MinExclusive: true},
	{Label: "6-10 Juta", Min: 6_000_000, Max: 10_000_000, MinExclusive: true},
	{Label: "Diatas 10 Juta", Min: 10_000_000, MinExclusive: true, OpenTop: true},
}

func findBracket(brackets []PriceBracket, label string) (PriceBracket, bool) {
	for _, b := range brackets {
		if strings.EqualFold(b.Label, label) {
			return b, true
		}
	}
	return PriceBracket{}, false
}

func pricePredicate(selector string) func(CatalogItem) bool {
	bracket, ok := findBracket(PriceBrackets, selector)
	if !ok {
		return func(CatalogItem) bool { return false }
	}
	return func(it CatalogItem) bool {
		return bracket.Contains(it.PriceValue)
	}
}

/* ===============================
   Mode Kebutuhan
=================================*/

// BudgetAll mematikan sub-filter budget di mode kebutuhan.
const BudgetAll = "Semua"

// BudgetBrackets: empat rentang sub-filter budget, ekstraksi angka sama
// dengan mode harga.
var BudgetBrackets = []PriceBracket{
	{Label: "Dibawah 3 Juta", Min: 1, Max: 3_000_000},
	{Label: "3-6 Juta", Min: 3_000_000, Max: 6_000_000, MinExclusive: true},
	{Label: "6-10 Juta", Min: 6_000_000, Max: 10_000_000, MinExclusive: true},
	{Label: "Diatas 10 Juta", Min: 10_000_000, MinExclusive: true, OpenTop: true},
}

// NeedMatcher memutuskan satu tag kebutuhan atas haystack lowercase dari
// field teks bebas item. Per-tag supaya bisa diuji dan ditambah sendiri-sendiri.
type NeedMatcher func(it CatalogItem, haystack string) bool

// harus token utuh: "IP68" cocok, "IP6" tanpa digit ketiga tidak
var reWaterResist = regexp.MustCompile(`ip6[789]\b`)

var needMatchers = map[string]NeedMatcher{
	"Gaming": func(it CatalogItem, h string) bool {
		return strings.Contains(h, "gaming") || it.Segment == SegmentFlagship || strings.Contains(h, "performance")
	},
	"Kamera": func(_ CatalogItem, h string) bool {
		return strings.Contains(h, "kamera") || strings.Contains(h, "camera") || strings.Contains(h, "fotografi")
	},
	"Baterai": func(_ CatalogItem, h string) bool {
		return strings.Contains(h, "baterai") || strings.Contains(h, "battery") || strings.Contains(h, "awet")
	},
	"Tahan Air": func(_ CatalogItem, h string) bool {
		return reWaterResist.MatchString(h) || strings.Contains(h, "tahan air") || strings.Contains(h, "waterproof")
	},
	"Murah Meriah": func(it CatalogItem, h string) bool {
		return it.Segment == SegmentEntry || strings.Contains(h, "murah")
	},
	"Buat Kerja": func(_ CatalogItem, h string) bool {
		return strings.Contains(h, "kerja") || strings.Contains(h, "produktivitas") || strings.Contains(h, "bisnis")
	},
}

// NeedTags daftar tag yang dikenal, untuk ditampilkan frontend.
func NeedTags() []string {
	return []string{"Gaming", "Kamera", "Baterai", "Tahan Air", "Murah Meriah", "Buat Kerja"}
}

func needHaystack(it CatalogItem) string {
	parts := []string{it.Features, it.AINote, it.TargetAudience}
	parts = append(parts, it.SuitableFor...)
	return strings.ToLower(strings.Join(parts, " "))
}

func needPredicate(selector, budget string) func(CatalogItem) bool {
	matcher, ok := needMatchers[selector]
	if !ok {
		return func(CatalogItem) bool { return false }
	}

	var budgetBracket *PriceBracket
	if budget != "" && !strings.EqualFold(budget, BudgetAll) {
		if b, ok := findBracket(BudgetBrackets, budget); ok {
			budgetBracket = &b
		} else {
			// budget tidak dikenal → tidak ada yang lolos (bukan error)
			return func(CatalogItem) bool { return false }
		}
	}

	return func(it CatalogItem) bool {
		if !matcher(it, needHaystack(it)) {
			return false
		}
		if budgetBracket != nil && !budgetBracket.Contains(it.PriceValue) {
			return false
		}
		return true
	}
}
