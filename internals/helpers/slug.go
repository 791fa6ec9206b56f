package helper

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const DefaultSlugMaxLen = 160

// ErrEmptySlug dikembalikan kalau nama tidak punya karakter yang bisa dipakai.
// Controller wajib menolak input seperti ini sebelum menyentuh store/AI.
var ErrEmptySlug = errors.New("slug kosong: nama tidak mengandung karakter valid")

var (
	reDisallowed = regexp.MustCompile(`[^\w\s-]`)
	reSeparator  = regexp.MustCompile(`[\s_-]+`)
)

// Slugify mengubah nama HP bebas jadi kunci cache [a-z0-9-]:
// lowercase + trim, hilangkan diakritik (é → e), buang karakter di luar
// word/spasi/hyphen, kompres run spasi/underscore/hyphen jadi satu "-",
// lalu trim "-" di ujung. Idempoten: Slugify(Slugify(x)) == Slugify(x).
func Slugify(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diakritik
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) { // mark nonspacing
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reDisallowed.ReplaceAllString(s, "")
	s = reSeparator.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return "", ErrEmptySlug
	}

	// Hard-limit panjang supaya aman sebagai primary key
	if utf8.RuneCountInString(s) > DefaultSlugMaxLen {
		rs := []rune(s)
		s = strings.Trim(string(rs[:DefaultSlugMaxLen]), "-")
	}
	return s, nil
}
