// Package engine adalah mesin filter/sort katalog: proyeksi murni dari cache
// smart review ke item katalog, tanpa state dan tanpa error — input jelek
// paling banter salah kategori, tidak pernah bikin gagal.
package engine

import (
	"sort"
	"strings"

	"ponselku_backend/internals/features/ai"
)

type Segment string

const (
	SegmentEntry    Segment = "Entry"
	SegmentMidrange Segment = "Midrange"
	SegmentFlagship Segment = "Flagship"
)

const (
	entryCeiling  = 3_000_000
	flagshipFloor = 9_000_000
)

// CatalogItem adalah proyeksi satu review ke bentuk yang bisa difilter.
// Tidak dipersist; dihitung ulang setiap katalog dimuat.
type CatalogItem struct {
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Price          string   `json:"price"`
	PriceValue     int      `json:"price_value"`
	ReleaseDate    string   `json:"release_date"`
	ReleaseYear    int      `json:"release_year"`
	releaseMonth   int
	Segment        Segment  `json:"segment"`
	Features       string   `json:"features"`
	AINote         string   `json:"ai_note"`
	TargetAudience string   `json:"target_audience"`
	SuitableFor    []string `json:"suitable_for"`
}

// ProjectItem memetakan payload review ke CatalogItem. Murni dan total.
func ProjectItem(p *ai.ReviewPayload) CatalogItem {
	brand := ""
	if fields := strings.Fields(p.PhoneName); len(fields) > 0 {
		brand = fields[0]
	}

	priceValue := ExtractPriceNumber(p.Price)
	year, month := ParseReleaseDate(p.ReleaseDate)

	segment := SegmentMidrange
	switch {
	case priceValue < entryCeiling:
		segment = SegmentEntry
	case priceValue >= flagshipFloor:
		segment = SegmentFlagship
	}

	return CatalogItem{
		Name:           p.PhoneName,
		Brand:          brand,
		Price:          p.Price,
		PriceValue:     priceValue,
		ReleaseDate:    p.ReleaseDate,
		ReleaseYear:    year,
		releaseMonth:   month,
		Segment:        segment,
		Features:       p.Features,
		AINote:         p.AINote,
		TargetAudience: p.TargetAudience,
		SuitableFor:    p.SuitableFor,
	}
}

type FilterMode string

const (
	ModeBrand FilterMode = "brand"
	ModePrice FilterMode = "price"
	ModeNeed  FilterMode = "need"
)

// Filter adalah satu pilihan filter: mode, selector sesuai mode, dan untuk
// mode Need sebuah sub-bracket budget opsional ("" atau "Semua" = semua).
type Filter struct {
	Mode     FilterMode
	Selector string
	Budget   string
}

// Apply memfilter items sesuai f lalu mengurutkan hasilnya dari rilis terbaru.
// Mode kosong = tanpa filter (browse semua). Mode/selector tidak dikenal
// menghasilkan daftar kosong, bukan error.
func Apply(items []CatalogItem, f Filter) []CatalogItem {
	var pred func(CatalogItem) bool
	switch f.Mode {
	case "":
		pred = func(CatalogItem) bool { return true }
	case ModeBrand:
		pred = brandPredicate(f.Selector)
	case ModePrice:
		pred = pricePredicate(f.Selector)
	case ModeNeed:
		pred = needPredicate(f.Selector, f.Budget)
	default:
		pred = func(CatalogItem) bool { return false }
	}

	out := make([]CatalogItem, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	SortByReleaseDesc(out)
	return out
}

// SortByReleaseDesc mengurutkan in-place, descending (tahun, bulan).
// Stable: urutan input dipertahankan untuk tanggal yang persis sama.
func SortByReleaseDesc(items []CatalogItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ReleaseYear != items[j].ReleaseYear {
			return items[i].ReleaseYear > items[j].ReleaseYear
		}
		return items[i].releaseMonth > items[j].releaseMonth
	})
}

// ReleaseMonth diekspos untuk pengujian dan tie-break eksternal.
func (c CatalogItem) ReleaseMonth() int {
	return c.releaseMonth
}
