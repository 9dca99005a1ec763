package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	disciplineController "schoolinfo_backend/internals/features/disciplines/controller"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func DisciplineRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := disciplineController.NewDisciplineController(db)

	grp := api.Group("/discipline")
	grp.Get("/", ctrl.List)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage disciplines.", constants.RoleAdmin),
	)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:slug/update", ctrl.Update)
	admin.Patch("/:slug/update", ctrl.Update)
	admin.Delete("/:slug/delete", ctrl.Delete)

	grp.Get("/:slug", ctrl.Detail)
}
