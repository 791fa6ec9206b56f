package helper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// EnsureUniqueSlugCI memastikan slug unik (case-insensitive) di satu tabel/kolom,
// dengan suffix -2, -3, ... lalu fallback random pendek.
func EnsureUniqueSlugCI(ctx context.Context, db *gorm.DB, table, column, baseSlug string) (string, error) {
	slug := baseSlug
	lower := strings.ToLower(slug)

	for i := 0; i < 25; i++ {
		var count int64
		if err := db.WithContext(ctx).Table(table).
			Where(fmt.Sprintf("LOWER(%s) = ?", column), lower).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}

		slug = fmt.Sprintf("%s-%d", baseSlug, i+2)
		lower = strings.ToLower(slug)
	}

	// Fallback: random pendek berbasis waktu
	slug = fmt.Sprintf("%s-%x", baseSlug, time.Now().UnixNano()&0xffff)
	return slug, nil
}
