package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	levelController "schoolinfo_backend/internals/features/levels/controller"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func LevelRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := levelController.NewLevelController(db)

	grp := api.Group("/level")
	grp.Get("/", ctrl.List)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage levels.", constants.RoleAdmin),
	)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:slug/update", ctrl.Update)
	admin.Patch("/:slug/update", ctrl.Update)
	admin.Delete("/:slug/delete", ctrl.Delete)

	grp.Get("/:slug", ctrl.Detail)
}
