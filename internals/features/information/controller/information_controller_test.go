package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "schoolinfo_backend/internals/databases"
	iModel "schoolinfo_backend/internals/features/information/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
)

func setupInformationTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:information-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	catCtrl := NewInformationCategoryController(db)
	infoCtrl := NewInformationController(db, nil)
	app := fiber.New()
	app.Post("/api/information-category/create", catCtrl.Create)
	app.Delete("/api/information-category/:slug/delete", catCtrl.Delete)
	app.Post("/api/information/create", infoCtrl.Create)
	app.Put("/api/information/:slug/update", infoCtrl.Update)
	app.Get("/api/information/:slug", infoCtrl.Detail)
	return app, db
}

func sendJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func seedCategory(t *testing.T, app *fiber.App) {
	t.Helper()
	status, out := sendJSON(t, app, "POST", "/api/information-category/create",
		map[string]any{"name": "Exam Notices"})
	if status != fiber.StatusCreated {
		t.Fatalf("seed category status = %d, body %v", status, out)
	}
}

func TestInformationCreateUnknownCategory(t *testing.T) {
	app, _ := setupInformationTest(t)
	status, _ := sendJSON(t, app, "POST", "/api/information/create", map[string]any{
		"title":          "SEE Results Published",
		"category":       "does-not-exist",
		"published_date": "2026-06-20T00:00:00Z",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestInformationCreateFillsMetaDefaults(t *testing.T) {
	app, db := setupInformationTest(t)
	seedCategory(t, app)

	longTitle := "SEE Results Published With Complete Grade Sheets For All Seven Provinces Of The Country"
	summary := strings.Repeat("Results are out. ", 20) // > 160 chars
	status, out := sendJSON(t, app, "POST", "/api/information/create", map[string]any{
		"title":          longTitle,
		"category":       "exam-notices",
		"published_date": "2026-06-20T00:00:00Z",
		"summary":        summary,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body %v", status, out)
	}

	var m iModel.InformationModel
	if err := db.Where("information_title = ?", longTitle).First(&m).Error; err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(m.InformationMetaTitle) != 60 || !strings.HasPrefix(longTitle, m.InformationMetaTitle) {
		t.Fatalf("meta title = %q", m.InformationMetaTitle)
	}
	if len(m.InformationMetaDescription) != 160 {
		t.Fatalf("meta description length = %d", len(m.InformationMetaDescription))
	}
}

func TestInformationSlugStableAcrossUpdate(t *testing.T) {
	app, _ := setupInformationTest(t)
	seedCategory(t, app)

	status, out := sendJSON(t, app, "POST", "/api/information/create", map[string]any{
		"title":          "Scholarship Deadline Extended",
		"category":       "exam-notices",
		"published_date": "2026-06-20T00:00:00Z",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body %v", status, out)
	}

	status, out = sendJSON(t, app, "PUT", "/api/information/scholarship-deadline-extended/update",
		map[string]any{"title": "Totally Different Title"})
	if status != fiber.StatusOK {
		t.Fatalf("update status = %d, body %v", status, out)
	}
	data, _ := out["data"].(map[string]any)
	if data["slug"] != "scholarship-deadline-extended" {
		t.Fatalf("slug changed to %v", data["slug"])
	}
	if data["title"] != "Totally Different Title" {
		t.Fatalf("title = %v", data["title"])
	}
}

func TestInformationRelationSetsDropUnknownSlugs(t *testing.T) {
	app, db := setupInformationTest(t)
	seedCategory(t, app)
	if err := db.Create(&levelModel.LevelModel{LevelTitle: "Bachelors", LevelSlug: "bachelors"}).Error; err != nil {
		t.Fatalf("seed level: %v", err)
	}

	status, out := sendJSON(t, app, "POST", "/api/information/create", map[string]any{
		"title":          "Bachelor Intake Open",
		"category":       "exam-notices",
		"published_date": "2026-06-20T00:00:00Z",
		"levels":         []string{"bachelors", "no-such-level"},
	})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body %v", status, out)
	}
	data, _ := out["data"].(map[string]any)
	levels, _ := data["levels"].([]any)
	if len(levels) != 1 || levels[0] != "bachelors" {
		t.Fatalf("levels = %v", levels)
	}
}

func TestCategoryDeleteRemovesItsInformation(t *testing.T) {
	app, db := setupInformationTest(t)
	seedCategory(t, app)

	status, _ := sendJSON(t, app, "POST", "/api/information/create", map[string]any{
		"title":          "To Be Cascaded",
		"category":       "exam-notices",
		"published_date": "2026-06-20T00:00:00Z",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d", status)
	}

	req := httptest.NewRequest("DELETE", "/api/information-category/exam-notices/delete", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}

	var cnt int64
	db.Model(&iModel.InformationModel{}).Count(&cnt)
	if cnt != 0 {
		t.Fatalf("information rows left: %d", cnt)
	}
}
