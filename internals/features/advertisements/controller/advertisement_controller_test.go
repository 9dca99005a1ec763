package controller

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "schoolinfo_backend/internals/databases"
	adModel "schoolinfo_backend/internals/features/advertisements/model"
)

func setupAdTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:ads-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := NewAdvertisementController(db, nil)
	app := fiber.New()
	app.Get("/api/advertisement/", ctrl.List)
	app.Post("/api/advertisement/create", ctrl.Create)
	return app, db
}

func postAdForm(t *testing.T, app *fiber.App, fields map[string]string) (int, map[string]any) {
	t.Helper()
	var buf strings.Builder
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	_ = w.Close()

	req := httptest.NewRequest("POST", "/api/advertisement/create", strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestAdvertisementCreateRequiresImages(t *testing.T) {
	app, _ := setupAdTest(t)
	status, out := postAdForm(t, app, map[string]string{
		"title":     "Spring Admissions Banner",
		"link":      "https://example.com/admissions",
		"placement": "home-1",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, body %v", status, out)
	}
	errs, _ := out["errors"].(map[string]any)
	if _, ok := errs["image_mobile"]; !ok {
		t.Fatalf("want image_mobile error, got %v", out)
	}
}

func TestAdvertisementCreateRejectsUnknownPlacement(t *testing.T) {
	app, _ := setupAdTest(t)
	status, out := postAdForm(t, app, map[string]string{
		"title":     "Spring Admissions Banner",
		"link":      "https://example.com/admissions",
		"placement": "sidebar-1",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, body %v", status, out)
	}
	errs, _ := out["errors"].(map[string]any)
	if _, ok := errs["placement"]; !ok {
		t.Fatalf("want placement error, got %v", out)
	}
}

func TestAdvertisementListShowsOnlyActive(t *testing.T) {
	app, db := setupAdTest(t)
	rows := []adModel.AdvertisementModel{
		{
			AdvertisementTitle: "Active", AdvertisementLink: "https://example.com/a",
			AdvertisementPlacement: "home-1", AdvertisementIsActive: true,
			AdvertisementImageMobileURL: "/media/ads/mobile/a.webp", AdvertisementImageDesktopURL: "/media/ads/desktop/a.webp",
		},
		{
			AdvertisementTitle: "Paused", AdvertisementLink: "https://example.com/b",
			AdvertisementPlacement: "home-2", AdvertisementIsActive: false,
			AdvertisementImageMobileURL: "/media/ads/mobile/b.webp", AdvertisementImageDesktopURL: "/media/ads/desktop/b.webp",
		},
	}
	for i := range rows {
		// Create overwrites a zero bool with the column default, so remember
		// the intended flag and force it afterwards.
		isActive := rows[i].AdvertisementIsActive
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := db.Model(&rows[i]).
			Update("advertisement_is_active", isActive).Error; err != nil {
			t.Fatalf("seed flag: %v", err)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/advertisement/", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	items, _ := out["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1 active", len(items))
	}
	first, _ := items[0].(map[string]any)
	if first["title"] != "Active" {
		t.Fatalf("title = %v", first["title"])
	}
}
