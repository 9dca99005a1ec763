package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	districtController "schoolinfo_backend/internals/features/districts/controller"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func DistrictRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := districtController.NewDistrictController(db)

	grp := api.Group("/district")
	grp.Get("/", ctrl.List)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage districts.", constants.RoleAdmin),
	)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:slug/update", ctrl.Update)
	admin.Patch("/:slug/update", ctrl.Update)
	admin.Delete("/:slug/delete", ctrl.Delete)

	grp.Get("/:slug", ctrl.Detail)
}
