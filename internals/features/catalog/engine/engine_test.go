package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ponselku_backend/internals/features/ai"
)

func item(name, price, release string) CatalogItem {
	return ProjectItem(&ai.ReviewPayload{PhoneName: name, Price: price, ReleaseDate: release})
}

func TestExtractPriceNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"Rp 1.500.000", 1_500_000},
		{"Rp 2.000.000 - 2.200.000", 2_000_000},
		{"Rp 3.999.000 (varian 8/256)", 3_999_000},
		{"Rp 5.000.000 ~ 5.500.000", 5_000_000},
		{"Harga belum diumumkan", 0},
		{"", 0},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractPriceNumber(tc.raw))
		})
	}
}

func TestParseReleaseDate(t *testing.T) {
	cases := []struct {
		raw       string
		wantYear  int
		wantMonth int
	}{
		{"Maret 2025", 2025, 2},
		{"2025", 2025, 0},
		{"Desember 2024", 2024, 11},
		{"Rilis Januari 2023", 2023, 0},
		{"TBA", 0, 0},
		{"maret 2025", 2025, 2},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			y, m := ParseReleaseDate(tc.raw)
			assert.Equal(t, tc.wantYear, y)
			assert.Equal(t, tc.wantMonth, m)
		})
	}
}

func TestProjectItemSegment(t *testing.T) {
	assert.Equal(t, SegmentEntry, item("Itel A70", "Rp 1.200.000", "2024").Segment)
	assert.Equal(t, SegmentMidrange, item("Poco X7", "Rp 4.500.000", "2025").Segment)
	assert.Equal(t, SegmentFlagship, item("iPhone 16 Pro", "Rp 19.999.000", "2024").Segment)
	// tepat di batas
	assert.Equal(t, SegmentMidrange, item("A", "Rp 3.000.000", "2024").Segment)
	assert.Equal(t, SegmentFlagship, item("B", "Rp 9.000.000", "2024").Segment)
}

func TestProjectItemBrand(t *testing.T) {
	assert.Equal(t, "Samsung", item("Samsung Galaxy A55", "Rp 5.000.000", "2024").Brand)
	assert.Equal(t, "", item("", "Rp 5.000.000", "2024").Brand)
}

// Bracket harga harus total dan tidak tumpang tindih di batasnya.
func TestPriceBracketsNonOverlapping(t *testing.T) {
	boundaries := []int{
		999_999, 1_000_000, 1_500_000, 2_000_000, 2_000_001,
		4_000_000, 4_000_001, 6_000_000, 6_000_001,
		10_000_000, 10_000_001, 25_000_000,
	}
	for _, n := range boundaries {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			matches := 0
			for _, b := range PriceBrackets {
				if b.Contains(n) {
					matches++
				}
			}
			if n < 1_000_000 {
				assert.Equal(t, 0, matches, "di bawah bracket terendah harus tidak cocok")
			} else {
				assert.Equal(t, 1, matches, "setiap harga valid masuk tepat satu bracket")
			}
		})
	}
}

func TestPriceBracketBoundaryTwoJuta(t *testing.T) {
	first := PriceBrackets[0]
	second := PriceBrackets[1]
	assert.True(t, first.Contains(2_000_000))
	assert.False(t, second.Contains(2_000_000))
}

func TestPriceFilterScenario(t *testing.T) {
	items := []CatalogItem{
		item("HP A", "Rp 1.500.000", "2024"),
		item("HP B", "Rp 2.000.000 - 2.200.000", "2024"),
		item("HP C", "Harga belum diumumkan", "2024"),
	}
	got := Apply(items, Filter{Mode: ModePrice, Selector: "1-2 Juta"})
	require.Len(t, got, 2)
	names := []string{got[0].Name, got[1].Name}
	assert.ElementsMatch(t, []string{"HP A", "HP B"}, names)
}

func TestBrandFilter(t *testing.T) {
	items := []CatalogItem{
		item("Samsung Galaxy S25", "Rp 15.000.000", "Januari 2025"),
		item("Xiaomi 14T", "Rp 6.500.000", "Oktober 2024"),
		item("Nubia Neo 2", "Rp 2.500.000", "Mei 2024"),
	}

	got := Apply(items, Filter{Mode: ModeBrand, Selector: "Samsung"})
	require.Len(t, got, 1)
	assert.Equal(t, "Samsung Galaxy S25", got[0].Name)

	// "Lainnya" = brand di luar daftar utama
	got = Apply(items, Filter{Mode: ModeBrand, Selector: BrandOther})
	require.Len(t, got, 1)
	assert.Equal(t, "Nubia Neo 2", got[0].Name)
}

func TestNeedFilterWaterResistToken(t *testing.T) {
	withIP68 := ProjectItem(&ai.ReviewPayload{
		PhoneName: "Samsung Galaxy A56", Price: "Rp 5.500.000", ReleaseDate: "Maret 2025",
		Features: "IP68, NFC, stereo speaker",
	})
	withIP6Only := ProjectItem(&ai.ReviewPayload{
		PhoneName: "HP Lain", Price: "Rp 5.500.000", ReleaseDate: "Maret 2025",
		Features: "IP6, NFC",
	})

	got := Apply([]CatalogItem{withIP68, withIP6Only}, Filter{Mode: ModeNeed, Selector: "Tahan Air"})
	require.Len(t, got, 1)
	assert.Equal(t, "Samsung Galaxy A56", got[0].Name)
}

func TestNeedFilterGamingViaFlagshipSegment(t *testing.T) {
	flagship := ProjectItem(&ai.ReviewPayload{
		PhoneName: "iPhone 16 Pro Max", Price: "Rp 22.999.000", ReleaseDate: "September 2024",
		Features: "Dynamic Island", AINote: "flagship Apple",
	})
	got := Apply([]CatalogItem{flagship}, Filter{Mode: ModeNeed, Selector: "Gaming"})
	assert.Len(t, got, 1)
}

// Need + budget = irisan, tidak pernah superset salah satunya.
func TestNeedFilterBudgetIntersection(t *testing.T) {
	gamingMurah := ProjectItem(&ai.ReviewPayload{
		PhoneName: "Poco M7", Price: "Rp 2.100.000", ReleaseDate: "2025",
		Features: "gaming mode",
	})
	gamingMahal := ProjectItem(&ai.ReviewPayload{
		PhoneName: "ROG Phone 9", Price: "Rp 18.000.000", ReleaseDate: "2025",
		Features: "gaming flagship",
	})
	bukanGaming := ProjectItem(&ai.ReviewPayload{
		PhoneName: "HP Kantor", Price: "Rp 2.500.000", ReleaseDate: "2025",
		Features: "baterai irit",
	})
	items := []CatalogItem{gamingMurah, gamingMahal, bukanGaming}

	needOnly := Apply(items, Filter{Mode: ModeNeed, Selector: "Gaming"})
	withBudget := Apply(items, Filter{Mode: ModeNeed, Selector: "Gaming", Budget: "Dibawah 3 Juta"})

	require.Len(t, needOnly, 2)
	require.Len(t, withBudget, 1)
	assert.Equal(t, "Poco M7", withBudget[0].Name)

	// subset dari kedua himpunan
	for _, it := range withBudget {
		assert.Contains(t, []string{"Poco M7", "ROG Phone 9"}, it.Name)
		assert.LessOrEqual(t, it.PriceValue, 3_000_000)
	}
}

func TestNeedFilterBudgetSemua(t *testing.T) {
	items := []CatalogItem{
		ProjectItem(&ai.ReviewPayload{PhoneName: "A", Price: "Rp 2.000.000", ReleaseDate: "2025", Features: "gaming"}),
		ProjectItem(&ai.ReviewPayload{PhoneName: "B", Price: "Rp 12.000.000", ReleaseDate: "2025", Features: "gaming"}),
	}
	got := Apply(items, Filter{Mode: ModeNeed, Selector: "Gaming", Budget: BudgetAll})
	assert.Len(t, got, 2)
}

func TestSortByReleaseDescMonthAware(t *testing.T) {
	noMonth := item("Tanpa Bulan", "Rp 3.000.000", "2025")
	withMonth := item("Dengan Bulan", "Rp 3.000.000", "Maret 2025")
	older := item("Lama", "Rp 3.000.000", "Desember 2024")

	got := Apply([]CatalogItem{noMonth, older, withMonth}, Filter{})
	require.Len(t, got, 3)
	// bulan 2 > bulan 0 walau tahun sama
	assert.Equal(t, "Dengan Bulan", got[0].Name)
	assert.Equal(t, "Tanpa Bulan", got[1].Name)
	assert.Equal(t, "Lama", got[2].Name)
}

func TestSortStableOnExactTies(t *testing.T) {
	a := item("Pertama", "Rp 3.000.000", "Maret 2025")
	b := item("Kedua", "Rp 4.000.000", "Maret 2025")
	c := item("Ketiga", "Rp 5.000.000", "Maret 2025")

	got := Apply([]CatalogItem{a, b, c}, Filter{})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Pertama", "Kedua", "Ketiga"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestSortNonIncreasing(t *testing.T) {
	items := []CatalogItem{
		item("A", "Rp 1.000.000", "Juni 2023"),
		item("B", "Rp 1.000.000", "Januari 2025"),
		item("C", "Rp 1.000.000", "Desember 2024"),
		item("D", "Rp 1.000.000", "TBA"),
		item("E", "Rp 1.000.000", "Agustus 2024"),
	}
	got := Apply(items, Filter{})
	for i := 1; i < len(got); i++ {
		prev := got[i-1].ReleaseYear*12 + got[i-1].ReleaseMonth()
		cur := got[i].ReleaseYear*12 + got[i].ReleaseMonth()
		assert.GreaterOrEqual(t, prev, cur)
	}
}

func TestApplyUnknownSelectors(t *testing.T) {
	items := []CatalogItem{item("A", "Rp 2.000.000", "2024")}
	assert.Empty(t, Apply(items, Filter{Mode: ModeNeed, Selector: "Tag Ngawur"}))
	assert.Empty(t, Apply(items, Filter{Mode: ModePrice, Selector: "9-99 Juta"}))
	assert.Empty(t, Apply(items, Filter{Mode: "warna", Selector: "biru"}))
	assert.Len(t, Apply(items, Filter{}), 1)
}
