package controller

import (
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
	courseModel "schoolinfo_backend/internals/features/courses/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
)

func setupSearchTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:search-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := NewSearchController(db)
	app := fiber.New()
	app.Get("/api/search", ctrl.GlobalSearch)
	return app, db
}

func runSearch(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func groupLen(t *testing.T, out map[string]any, group string) int {
	t.Helper()
	data, _ := out["data"].(map[string]any)
	rows, _ := data[group].([]any)
	return len(rows)
}

func TestGlobalSearchRequiresQuery(t *testing.T) {
	app, _ := setupSearchTest(t)
	status, _ := runSearch(t, app, "/api/search")
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestGlobalSearchMatchesByName(t *testing.T) {
	app, db := setupSearchTest(t)
	if err := db.Create(&schoolModel.SchoolModel{
		SchoolName: "Everest Academy", SchoolSlug: "everest-academy",
	}).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}
	if err := db.Create(&universityModel.UniversityModel{
		UniversityName: "Everest University", UniversitySlug: "everest-university",
	}).Error; err != nil {
		t.Fatalf("seed university: %v", err)
	}

	status, out := runSearch(t, app, "/api/search?q=everest")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body %v", status, out)
	}
	if n := groupLen(t, out, "schools"); n != 1 {
		t.Fatalf("schools = %d", n)
	}
	if n := groupLen(t, out, "universities"); n != 1 {
		t.Fatalf("universities = %d", n)
	}
	if n := groupLen(t, out, "courses"); n != 0 {
		t.Fatalf("courses = %d", n)
	}
}

// A course hit on the owning university's name, and a school hit through an
// offered course's name.
func TestGlobalSearchTransitiveMatches(t *testing.T) {
	app, db := setupSearchTest(t)

	uni := universityModel.UniversityModel{
		UniversityName: "Pokhara University", UniversitySlug: "pokhara-university",
	}
	if err := db.Create(&uni).Error; err != nil {
		t.Fatalf("seed university: %v", err)
	}
	course := courseModel.CourseModel{
		CourseName: "BBA", CourseSlug: "bba-pokhara-university", CourseUniversityID: uni.UniversityID,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	school := schoolModel.SchoolModel{SchoolName: "Lakeside College", SchoolSlug: "lakeside-college"}
	if err := db.Create(&school).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}
	link := schoolModel.SchoolCourseModel{
		SchoolCourseSchoolID: school.SchoolID, SchoolCourseCourseID: course.CourseID,
	}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("seed school course: %v", err)
	}

	status, out := runSearch(t, app, "/api/search?q=pokhara")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body %v", status, out)
	}
	if n := groupLen(t, out, "courses"); n != 1 {
		t.Fatalf("courses = %d, want match through university name", n)
	}

	status, out = runSearch(t, app, "/api/search?q=bba")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body %v", status, out)
	}
	if n := groupLen(t, out, "schools"); n != 1 {
		t.Fatalf("schools = %d, want match through offered course", n)
	}
}
