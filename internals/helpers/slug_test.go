package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"spasi jadi strip", "Samsung Galaxy A56 5G", "samsung-galaxy-a56-5g"},
		{"huruf besar dilipat", "IPHONE 16 Pro MAX", "iphone-16-pro-max"},
		{"tanda baca dibuang", "Redmi Note 14 (Pro+)!", "redmi-note-14-pro"},
		{"diakritik dinormalkan", "Pocophone Édition Spéciale", "pocophone-edition-speciale"},
		{"spasi ganda dirapatkan", "  Vivo   V40  Lite  ", "vivo-v40-lite"},
		{"underscore jadi strip", "infinix_gt_20_pro", "infinix-gt-20-pro"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Slugify(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	first, err := Slugify("Samsung Galaxy S25 Ultra!")
	require.NoError(t, err)

	second, err := Slugify(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSlugifyCollision(t *testing.T) {
	a, err := Slugify("iPhone 16 Pro")
	require.NoError(t, err)

	b, err := Slugify("IPHONE 16 PRO!!!")
	require.NoError(t, err)

	// Nama yang hanya beda kapital/tanda baca memetakan ke slug yang sama.
	assert.Equal(t, a, b)
}

func TestSlugifyEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "!!! ???", "---"} {
		_, err := Slugify(in)
		assert.ErrorIs(t, err, ErrEmptySlug, "input: %q", in)
	}
}

func TestSlugifyCapsLength(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "samsung "
	}
	got, err := Slugify(long)
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(got)), 160)
}
