package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	admissionController "schoolinfo_backend/internals/features/admissions/controller"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func AdmissionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := admissionController.NewAdmissionController(db)

	grp := api.Group("/admission")
	grp.Get("/", ctrl.List)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage admissions.", constants.RoleAdmin),
	)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:slug/update", ctrl.Update)
	admin.Patch("/:slug/update", ctrl.Update)
	admin.Delete("/:slug/delete", ctrl.Delete)

	grp.Get("/:slug", ctrl.Detail)
}
