package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	facilityController "schoolinfo_backend/internals/features/facilities/controller"
	"schoolinfo_backend/internals/helpers/storage"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func FacilityRoutes(api fiber.Router, db *gorm.DB, store storage.FileStore) {
	ctrl := facilityController.NewFacilityController(db, store)

	grp := api.Group("/facility")
	grp.Get("/", ctrl.List)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage facilities.", constants.RoleAdmin),
	)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:slug/update", ctrl.Update)
	admin.Patch("/:slug/update", ctrl.Update)
	admin.Delete("/:slug/delete", ctrl.Delete)

	grp.Get("/:slug", ctrl.Detail)
}
