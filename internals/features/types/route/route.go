package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	typeController "schoolinfo_backend/internals/features/types/controller"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func TypeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := typeController.NewTypeController(db)

	grp := api.Group("/type")
	grp.Get("/", ctrl.List)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage types.", constants.RoleAdmin),
	)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:slug/update", ctrl.Update)
	admin.Patch("/:slug/update", ctrl.Update)
	admin.Delete("/:slug/delete", ctrl.Delete)

	grp.Get("/:slug", ctrl.Detail)
}
