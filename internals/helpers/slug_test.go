package helper

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"St. Xavier's College", "st-xavier-s-college"},
		{"  Tribhuvan   University  ", "tribhuvan-university"},
		{"École Normale", "ecole-normale"},
		{"B.Sc. CSIT (4 Years)", "b-sc-csit-4-years"},
		{"---", ""},
		{"नेपाल", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in, 0); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyMaxLen(t *testing.T) {
	got := Slugify("abcde", 3)
	if got != "abc" {
		t.Fatalf("got %q, want %q", got, "abc")
	}
}

type slugRow struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"column:school_slug;uniqueIndex"`
}

func (slugRow) TableName() string { return "slug_rows" }

func openSlugTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:slug-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&slugRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestEnsureUniqueSlugFresh(t *testing.T) {
	db := openSlugTestDB(t)

	got, err := EnsureUniqueSlug(db, "slug_rows", "school_slug", "Budhanilkantha School", "school")
	if err != nil {
		t.Fatalf("EnsureUniqueSlug: %v", err)
	}
	if got != "budhanilkantha-school" {
		t.Fatalf("got %q", got)
	}
}

func TestEnsureUniqueSlugSuffixesOnCollision(t *testing.T) {
	db := openSlugTestDB(t)
	for _, s := range []string{"budhanilkantha-school", "budhanilkantha-school-1"} {
		if err := db.Create(&slugRow{Slug: s}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := EnsureUniqueSlug(db, "slug_rows", "school_slug", "Budhanilkantha School", "school")
	if err != nil {
		t.Fatalf("EnsureUniqueSlug: %v", err)
	}
	if got != "budhanilkantha-school-2" {
		t.Fatalf("got %q, want budhanilkantha-school-2", got)
	}
}

func TestEnsureUniqueSlugFallback(t *testing.T) {
	db := openSlugTestDB(t)

	got, err := EnsureUniqueSlug(db, "slug_rows", "school_slug", "???", "school")
	if err != nil {
		t.Fatalf("EnsureUniqueSlug: %v", err)
	}
	if got != "school" {
		t.Fatalf("got %q, want school", got)
	}
}
