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
	iModel "schoolinfo_backend/internals/features/inquiries/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
)

func setupInquiryTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:inquiry-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := NewInquiryController(db)
	app := fiber.New()
	app.Post("/api/inquiry/create", ctrl.Create)
	app.Get("/api/inquiry/", ctrl.List)
	app.Post("/api/pre-registration/create", ctrl.CreatePreRegistration)
	return app, db
}

func submitJSON(t *testing.T, app *fiber.App, target string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", target, bytes.NewReader(raw))
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

func seedInquirySchool(t *testing.T, db *gorm.DB) schoolModel.SchoolModel {
	t.Helper()
	s := schoolModel.SchoolModel{SchoolName: "Everest Academy", SchoolSlug: "everest-academy"}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}
	return s
}

func TestInquiryCreateWithoutLinks(t *testing.T) {
	app, db := setupInquiryTest(t)

	status, out := submitJSON(t, app, "/api/inquiry/create", map[string]any{
		"full_name": "Sita Sharma",
		"phone":     "9841000000",
		"email":     "sita@example.com",
		"message":   "Looking for +2 science admission.",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body %v", status, out)
	}

	var m iModel.InquiryModel
	if err := db.First(&m).Error; err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if m.InquirySchoolID != nil || m.InquiryCourseID != nil {
		t.Fatalf("links should be nil: %+v", m)
	}
}

func TestInquiryCreateLinksKnownSchool(t *testing.T) {
	app, db := setupInquiryTest(t)
	s := seedInquirySchool(t, db)

	status, out := submitJSON(t, app, "/api/inquiry/create", map[string]any{
		"full_name": "Hari Thapa",
		"phone":     "9841000001",
		"email":     "hari@example.com",
		"school":    "everest-academy",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body %v", status, out)
	}

	var m iModel.InquiryModel
	if err := db.First(&m).Error; err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if m.InquirySchoolID == nil || *m.InquirySchoolID != s.SchoolID {
		t.Fatalf("school link = %v", m.InquirySchoolID)
	}
}

func TestInquiryCreateRequiresContactFields(t *testing.T) {
	app, _ := setupInquiryTest(t)
	status, out := submitJSON(t, app, "/api/inquiry/create", map[string]any{
		"message": "no name or phone",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, body %v", status, out)
	}
	errs, _ := out["errors"].(map[string]any)
	if _, ok := errs["full_name"]; !ok {
		t.Fatalf("want full_name error, got %v", out)
	}
}

func TestPreRegistrationRequiresKnownSchool(t *testing.T) {
	app, db := setupInquiryTest(t)

	status, out := submitJSON(t, app, "/api/pre-registration/create", map[string]any{
		"student_full_name": "Rita Rai",
		"parent_name":       "Gita Rai",
		"phone":             "9841000002",
		"email":             "rita@example.com",
		"grade_or_class":    "Grade 10",
		"school":            "no-such-school",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, body %v", status, out)
	}
	errs, _ := out["errors"].(map[string]any)
	if _, ok := errs["school"]; !ok {
		t.Fatalf("want school error, got %v", out)
	}

	seedInquirySchool(t, db)
	status, out = submitJSON(t, app, "/api/pre-registration/create", map[string]any{
		"student_full_name": "Rita Rai",
		"parent_name":       "Gita Rai",
		"phone":             "9841000002",
		"email":             "rita@example.com",
		"grade_or_class":    "Grade 10",
		"school":            "everest-academy",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body %v", status, out)
	}
}
