package helper

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ResolveBySlugs loads the rows whose slug column matches any of the given
// values. Blank entries are filtered out first; values that match nothing are
// dropped silently. The result is never nil, so an all-invalid input resolves
// to an empty set.
func ResolveBySlugs[T any](db *gorm.DB, column string, slugs []string) ([]T, error) {
	clean := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if t := strings.TrimSpace(s); t != "" {
			clean = append(clean, t)
		}
	}
	out := []T{}
	if len(clean) == 0 {
		return out, nil
	}
	if err := db.Where(column+" IN ?", clean).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveOneBySlug returns the row matching slug, or nil when absent/blank.
func ResolveOneBySlug[T any](db *gorm.DB, column, slug string) (*T, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	var row T
	err := db.Where(column+" = ?", slug).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ReplaceAssociation swaps an M2M association set; an empty resolved slice
// clears it entirely.
func ReplaceAssociation(tx *gorm.DB, parent any, name string, resolved any) error {
	return tx.Model(parent).Association(name).Replace(resolved)
}
