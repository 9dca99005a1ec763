package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	eventController "schoolinfo_backend/internals/features/events/controller"
	"schoolinfo_backend/internals/helpers/storage"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func EventRoutes(api fiber.Router, db *gorm.DB, store storage.FileStore) {
	ctrl := eventController.NewEventController(db, store)

	grp := api.Group("/event")
	grp.Get("/", ctrl.List)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage events.", constants.RoleAdmin),
	)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:slug/update", ctrl.Update)
	admin.Patch("/:slug/update", ctrl.Update)
	admin.Delete("/:slug/delete", ctrl.Delete)

	grp.Get("/:slug", ctrl.Detail)
}
