package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolinfo_backend/internals/configs"
	database "schoolinfo_backend/internals/databases"
	districtModel "schoolinfo_backend/internals/features/districts/model"
	sModel "schoolinfo_backend/internals/features/schools/model"
	userModel "schoolinfo_backend/internals/features/users/model"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func setupSchoolTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:school-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	configs.JWTSecret = "school-test-secret"

	ctrl := NewSchoolController(db, nil)
	app := fiber.New()
	app.Get("/api/school/", ctrl.List)
	app.Post("/api/school/create", ctrl.Create)
	app.Put("/api/school/:slug/update", ctrl.Update)
	// The self-service route goes through the real middleware so the
	// locals contract between it and findOwn stays covered.
	app.Get("/api/school/me", authMw.AuthMiddleware(), ctrl.Me)
	app.Get("/api/school/:slug", ctrl.Detail)
	return app, db
}

var testUserID = uuid.New()

func bearerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": "school",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func callJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	r := httptest.NewRequest(method, target, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(r, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestSchoolCreateResolvesDistrictAndChildren(t *testing.T) {
	app, db := setupSchoolTest(t)
	if err := db.Create(&districtModel.DistrictModel{
		DistrictName: "Kathmandu", DistrictSlug: "kathmandu",
	}).Error; err != nil {
		t.Fatalf("seed district: %v", err)
	}

	status, out := callJSON(t, app, "POST", "/api/school/create", map[string]any{
		"name":     "Everest Academy",
		"address":  "Baneshwor, Kathmandu",
		"district": "kathmandu",
		"phones":   []map[string]string{{"phone": "01-4411188"}, {"phone": "  "}},
	})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body %v", status, out)
	}
	data, _ := out["data"].(map[string]any)
	if data["slug"] != "everest-academy" {
		t.Fatalf("slug = %v", data["slug"])
	}
	district, _ := data["district"].(map[string]any)
	if district["slug"] != "kathmandu" {
		t.Fatalf("district = %v", data["district"])
	}

	var phones int64
	db.Model(&sModel.SchoolPhoneModel{}).Count(&phones)
	if phones != 1 {
		t.Fatalf("phones = %d, blank entry should be dropped", phones)
	}
}

func TestSchoolUpdateKeepsSlugAndOmittedChildren(t *testing.T) {
	app, db := setupSchoolTest(t)

	status, out := callJSON(t, app, "POST", "/api/school/create", map[string]any{
		"name":   "Everest Academy",
		"phones": []map[string]string{{"phone": "01-4411188"}},
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create status = %d, body %v", status, out)
	}

	// Renaming must not rewrite the slug, and an omitted phones key must not
	// touch the stored phones.
	status, out = callJSON(t, app, "PUT", "/api/school/everest-academy/update", map[string]any{
		"name": "Everest Academy And College",
	})
	if status != fiber.StatusOK {
		t.Fatalf("update status = %d, body %v", status, out)
	}
	data, _ := out["data"].(map[string]any)
	if data["slug"] != "everest-academy" {
		t.Fatalf("slug = %v", data["slug"])
	}

	var phones int64
	db.Model(&sModel.SchoolPhoneModel{}).Count(&phones)
	if phones != 1 {
		t.Fatalf("phones = %d, want untouched", phones)
	}

	// An explicit empty list clears.
	status, _ = callJSON(t, app, "PUT", "/api/school/everest-academy/update", map[string]any{
		"phones": []map[string]string{},
	})
	if status != fiber.StatusOK {
		t.Fatalf("clear status = %d", status)
	}
	db.Model(&sModel.SchoolPhoneModel{}).Count(&phones)
	if phones != 0 {
		t.Fatalf("phones = %d, want cleared", phones)
	}
}

func TestSchoolMeFindsOwnListing(t *testing.T) {
	app, db := setupSchoolTest(t)

	owner := userModel.UserModel{
		UserID: testUserID, UserUsername: "everest", UserPassword: "x",
	}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	status, out := callJSON(t, app, "POST", "/api/school/create", map[string]any{
		"name": "Everest Academy",
		"user": testUserID.String(),
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create status = %d, body %v", status, out)
	}

	req := httptest.NewRequest("GET", "/api/school/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearerToken(t, testUserID))
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("me status = %d", resp.StatusCode)
	}
	me := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&me)
	data, _ := me["data"].(map[string]any)
	if data["slug"] != "everest-academy" {
		t.Fatalf("me slug = %v", data["slug"])
	}
}
