package helper

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type childRow struct {
	ID       uint      `gorm:"primaryKey"`
	ParentID uuid.UUID `gorm:"type:uuid;column:parent_id"`
	FileURL  string    `gorm:"column:file_url"`
}

func (childRow) TableName() string { return "child_rows" }

type lookupRow struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"column:district_slug;uniqueIndex"`
}

func (lookupRow) TableName() string { return "lookup_rows" }

func openNestedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:nested-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&childRow{}, &lookupRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestReconcileChildrenNilLeavesDataAlone(t *testing.T) {
	db := openNestedTestDB(t)
	parent := uuid.New()
	if err := db.Create(&childRow{ParentID: parent, FileURL: "/media/a.webp"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	removed, err := ReconcileChildren[childRow](db, "parent_id", parent, nil)
	if err != nil {
		t.Fatalf("ReconcileChildren: %v", err)
	}
	if removed != nil {
		t.Fatalf("nil rows should be a no-op, removed %v", removed)
	}
	var cnt int64
	db.Model(&childRow{}).Count(&cnt)
	if cnt != 1 {
		t.Fatalf("existing child was touched, count=%d", cnt)
	}
}

func TestReconcileChildrenReplacesAndReportsRemoved(t *testing.T) {
	db := openNestedTestDB(t)
	parent := uuid.New()
	other := uuid.New()
	db.Create(&childRow{ParentID: parent, FileURL: "/media/old.webp"})
	db.Create(&childRow{ParentID: other, FileURL: "/media/keep.webp"})

	rows := []childRow{{ParentID: parent, FileURL: "/media/new.webp"}}
	removed, err := ReconcileChildren(db, "parent_id", parent, &rows)
	if err != nil {
		t.Fatalf("ReconcileChildren: %v", err)
	}
	if len(removed) != 1 || removed[0].FileURL != "/media/old.webp" {
		t.Fatalf("removed = %v", removed)
	}

	var mine, others int64
	db.Model(&childRow{}).Where("parent_id = ?", parent).Count(&mine)
	db.Model(&childRow{}).Where("parent_id = ?", other).Count(&others)
	if mine != 1 || others != 1 {
		t.Fatalf("mine=%d others=%d", mine, others)
	}
}

func TestReconcileChildrenEmptyClears(t *testing.T) {
	db := openNestedTestDB(t)
	parent := uuid.New()
	db.Create(&childRow{ParentID: parent, FileURL: "/media/gone.webp"})

	rows := []childRow{}
	removed, err := ReconcileChildren(db, "parent_id", parent, &rows)
	if err != nil {
		t.Fatalf("ReconcileChildren: %v", err)
	}
	if len(removed) != 1 {
		t.Fatalf("removed = %v", removed)
	}
	var cnt int64
	db.Model(&childRow{}).Where("parent_id = ?", parent).Count(&cnt)
	if cnt != 0 {
		t.Fatalf("count=%d, want 0", cnt)
	}
}

func TestResolveBySlugsDropsUnknownAndBlank(t *testing.T) {
	db := openNestedTestDB(t)
	for _, s := range []string{"kathmandu", "kaski"} {
		db.Create(&lookupRow{Slug: s})
	}

	got, err := ResolveBySlugs[lookupRow](db, "district_slug", []string{"kathmandu", "", "  ", "nope"})
	if err != nil {
		t.Fatalf("ResolveBySlugs: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "kathmandu" {
		t.Fatalf("got %v", got)
	}

	empty, err := ResolveBySlugs[lookupRow](db, "district_slug", []string{"", "missing"})
	if err != nil {
		t.Fatalf("ResolveBySlugs: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("want empty non-nil, got %v", empty)
	}
}

func TestResolveOneBySlug(t *testing.T) {
	db := openNestedTestDB(t)
	db.Create(&lookupRow{Slug: "kaski"})

	row, err := ResolveOneBySlug[lookupRow](db, "district_slug", "kaski")
	if err != nil || row == nil || row.Slug != "kaski" {
		t.Fatalf("row=%v err=%v", row, err)
	}

	for _, s := range []string{"", "   ", "unknown"} {
		row, err := ResolveOneBySlug[lookupRow](db, "district_slug", s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if row != nil {
			t.Fatalf("%q: want nil, got %v", s, row)
		}
	}
}
