package engine

import (
	"strconv"
	"strings"
)

// ExtractPriceNumber mengambil angka pembanding dari string harga bebas:
// potong di hyphen/tilde/kurung-buka pertama, lalu buang semua non-digit.
// "Rp 2.000.000 - 2.200.000" → 2000000. Tanpa digit → 0.
func ExtractPriceNumber(raw string) int {
	if idx := strings.IndexAny(raw, "-~("); idx >= 0 {
		raw = raw[:idx]
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// Nama bulan Indonesia → indeks 0-11.
var indonesianMonths = map[string]int{
	"januari":   0,
	"februari":  1,
	"maret":     2,
	"april":     3,
	"mei":       4,
	"juni":      5,
	"juli":      6,
	"agustus":   7,
	"september": 8,
	"oktober":   9,
	"november":  10,
	"desember":  11,
}

// ParseReleaseDate memindai token yang dipisah spasi: cari tahun 4 digit dan
// nama bulan Indonesia. Bulan hilang → 0 (Januari), tahun hilang → 0.
func ParseReleaseDate(raw string) (year, month int) {
	for _, tok := range strings.Fields(raw) {
		tok = strings.Trim(tok, ",.()")
		if len(tok) == 4 {
			if y, err := strconv.Atoi(tok); err == nil {
				year = y
				continue
			}
		}
		if m, ok := indonesianMonths[strings.ToLower(tok)]; ok {
			month = m
		}
	}
	return year, month
}
