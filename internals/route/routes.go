package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	admissionRoute "schoolinfo_backend/internals/features/admissions/route"
	advertisementRoute "schoolinfo_backend/internals/features/advertisements/route"
	courseRoute "schoolinfo_backend/internals/features/courses/route"
	disciplineRoute "schoolinfo_backend/internals/features/disciplines/route"
	districtRoute "schoolinfo_backend/internals/features/districts/route"
	eventRoute "schoolinfo_backend/internals/features/events/route"
	facilityRoute "schoolinfo_backend/internals/features/facilities/route"
	informationRoute "schoolinfo_backend/internals/features/information/route"
	inquiryRoute "schoolinfo_backend/internals/features/inquiries/route"
	levelRoute "schoolinfo_backend/internals/features/levels/route"
	scholarshipRoute "schoolinfo_backend/internals/features/scholarships/route"
	schoolRoute "schoolinfo_backend/internals/features/schools/route"
	searchRoute "schoolinfo_backend/internals/features/search/route"
	typeRoute "schoolinfo_backend/internals/features/types/route"
	universityRoute "schoolinfo_backend/internals/features/universities/route"
	userRoute "schoolinfo_backend/internals/features/users/route"
	"schoolinfo_backend/internals/helpers/storage"
)

// SetupRoutes mounts every feature under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.FileStore) {
	api := app.Group("/api")

	userRoute.AuthRoutes(api, db)

	// Lookup tables.
	districtRoute.DistrictRoutes(api, db)
	levelRoute.LevelRoutes(api, db)
	typeRoute.TypeRoutes(api, db)
	disciplineRoute.DisciplineRoutes(api, db)
	facilityRoute.FacilityRoutes(api, db, store)

	// Core directory entities.
	universityRoute.UniversityRoutes(api, db, store)
	courseRoute.CourseRoutes(api, db, store)
	schoolRoute.SchoolRoutes(api, db, store)

	// Published listings.
	admissionRoute.AdmissionRoutes(api, db)
	scholarshipRoute.ScholarshipRoutes(api, db, store)
	eventRoute.EventRoutes(api, db, store)
	informationRoute.InformationRoutes(api, db, store)
	advertisementRoute.AdvertisementRoutes(api, db, store)

	// Visitor-facing forms and search.
	inquiryRoute.InquiryRoutes(api, db)
	searchRoute.SearchRoutes(api, db)
}
