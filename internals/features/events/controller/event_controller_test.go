package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "schoolinfo_backend/internals/databases"
	eModel "schoolinfo_backend/internals/features/events/model"
)

func setupEventTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:event-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := NewEventController(db, nil)
	app := fiber.New()
	app.Post("/api/event/create", ctrl.Create)
	app.Get("/api/event/:slug", ctrl.Detail)
	app.Put("/api/event/:slug/update", ctrl.Update)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, target string, body any) (int, map[string]any) {
	t.Helper()
	return doJSON(t, app, "POST", target, body)
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, map[string]any) {
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

func validEventBody() map[string]any {
	return map[string]any{
		"title":            "National Admission Fair",
		"event_date":       "2026-10-15T00:00:00Z",
		"venue":            "Bhrikutimandap, Kathmandu",
		"event_type":       "physical",
		"organizer_custom": "EduFairs Nepal",
	}
}

func TestEventCreateRequiresOrganizer(t *testing.T) {
	app, _ := setupEventTest(t)
	body := validEventBody()
	delete(body, "organizer_custom")

	status, out := postJSON(t, app, "/api/event/create", body)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	errs, _ := out["errors"].(map[string]any)
	if _, ok := errs["organizer"]; !ok {
		t.Fatalf("want organizer error, got %v", out)
	}
}

func TestEventCreatePaidRequiresPrice(t *testing.T) {
	app, _ := setupEventTest(t)
	body := validEventBody()
	body["registration_type"] = "paid"

	status, out := postJSON(t, app, "/api/event/create", body)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	errs, _ := out["errors"].(map[string]any)
	if _, ok := errs["registration_price"]; !ok {
		t.Fatalf("want registration_price error, got %v", out)
	}
}

func TestEventCreateAndSlugCollision(t *testing.T) {
	app, db := setupEventTest(t)

	status, out := postJSON(t, app, "/api/event/create", validEventBody())
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body %v", status, out)
	}
	data, _ := out["data"].(map[string]any)
	if data["slug"] != "national-admission-fair" {
		t.Fatalf("slug = %v", data["slug"])
	}
	if data["registration_type"] != "free" {
		t.Fatalf("registration_type = %v, want default free", data["registration_type"])
	}

	status, out = postJSON(t, app, "/api/event/create", validEventBody())
	if status != fiber.StatusCreated {
		t.Fatalf("second create status = %d, body %v", status, out)
	}
	data, _ = out["data"].(map[string]any)
	if data["slug"] != "national-admission-fair-1" {
		t.Fatalf("second slug = %v", data["slug"])
	}

	var cnt int64
	db.Model(&eModel.EventModel{}).Count(&cnt)
	if cnt != 2 {
		t.Fatalf("count = %d", cnt)
	}
}

func TestEventUpdateToPaidRequiresPrice(t *testing.T) {
	app, _ := setupEventTest(t)
	status, _ := postJSON(t, app, "/api/event/create", validEventBody())
	if status != fiber.StatusCreated {
		t.Fatalf("seed create status = %d", status)
	}

	status, out := doJSON(t, app, "PUT", "/api/event/national-admission-fair/update",
		map[string]any{"registration_type": "paid"})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, body %v", status, out)
	}

	price := 500.0
	status, out = doJSON(t, app, "PUT", "/api/event/national-admission-fair/update",
		map[string]any{"registration_type": "paid", "registration_price": price})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body %v", status, out)
	}
	data, _ := out["data"].(map[string]any)
	if data["registration_price"] != price {
		t.Fatalf("registration_price = %v", data["registration_price"])
	}
}

func TestEventUpdateCannotDropLastOrganizer(t *testing.T) {
	app, _ := setupEventTest(t)
	status, _ := postJSON(t, app, "/api/event/create", validEventBody())
	if status != fiber.StatusCreated {
		t.Fatalf("seed create status = %d", status)
	}

	// Pointing the school at an unknown slug while blanking the custom
	// organizer would leave the event with no organizer at all.
	status, out := doJSON(t, app, "PUT", "/api/event/national-admission-fair/update",
		map[string]any{"organizer_school": "no-such-school", "organizer_custom": ""})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, body %v", status, out)
	}
	errs, _ := out["errors"].(map[string]any)
	if _, ok := errs["organizer"]; !ok {
		t.Fatalf("want organizer error, got %v", out)
	}

	// The stored row keeps its original organizer.
	status, out = doJSON(t, app, "GET", "/api/event/national-admission-fair", nil)
	if status != fiber.StatusOK {
		t.Fatalf("detail status = %d", status)
	}
	data, _ := out["data"].(map[string]any)
	org, _ := data["organizer"].(map[string]any)
	if org["custom"] != "EduFairs Nepal" {
		t.Fatalf("organizer = %v", data["organizer"])
	}
}

func TestEventDetailNotFound(t *testing.T) {
	app, _ := setupEventTest(t)
	req := httptest.NewRequest("GET", "/api/event/does-not-exist", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
