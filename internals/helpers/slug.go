package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 220

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify turns free text into a [a-z0-9-] slug: diacritics stripped,
// non-alphanumeric runs collapsed to a single hyphen, ends trimmed.
// Returns "" when nothing usable remains; callers supply their own fallback.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diacritics (é → e, etc.)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = strings.Trim(string(rs[:maxLen]), "-")
	}
	return s
}

// EnsureUniqueSlug builds a slug from title that is unique (case-insensitive)
// in table.column. When title slugifies to nothing, fallback is used instead.
// On collision the suffixes -1, -2, ... are tried in order.
//
// The check-then-insert here is not atomic against concurrent creates with the
// same base; the unique constraint on the column is the final arbiter and a
// violation surfaces as a persistence error.
func EnsureUniqueSlug(db *gorm.DB, table, column, title, fallback string) (string, error) {
	if table == "" || column == "" {
		return "", errors.New("slug: table and column are required")
	}

	base := Slugify(title, DefaultSlugMaxLen)
	if base == "" {
		base = Slugify(fallback, DefaultSlugMaxLen)
	}
	if base == "" {
		base = "item"
	}

	taken, err := slugTaken(db, table, column, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for n := 1; n < 10000; n++ {
		suffix := fmt.Sprintf("-%d", n)
		candidate := trimForSuffix(base, suffix, DefaultSlugMaxLen) + suffix
		taken, err = slugTaken(db, table, column, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("slug: no unique candidate after many attempts")
}

func slugTaken(db *gorm.DB, table, column, candidate string) (bool, error) {
	var cnt int64
	err := db.Table(table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", column), candidate).
		Count(&cnt).Error
	return cnt > 0, err
}

// trimForSuffix cuts base so base+suffix fits maxLen, trimming stray hyphens.
func trimForSuffix(base, suffix string, maxLen int) string {
	keep := maxLen - len(suffix)
	if keep < 1 {
		keep = 1
	}
	rs := []rune(base)
	if len(rs) > keep {
		rs = rs[:keep]
	}
	out := strings.Trim(string(rs), "-")
	if out == "" {
		out = "x"
	}
	return out
}
