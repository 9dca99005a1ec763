package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	adController "schoolinfo_backend/internals/features/advertisements/controller"
	"schoolinfo_backend/internals/helpers/storage"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func AdvertisementRoutes(api fiber.Router, db *gorm.DB, store storage.FileStore) {
	ctrl := adController.NewAdvertisementController(db, store)

	grp := api.Group("/advertisement")
	grp.Get("/", ctrl.List)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage advertisements.", constants.RoleAdmin),
	)
	admin.Get("/admin", ctrl.AdminList)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:id/update", ctrl.Update)
	admin.Patch("/:id/update", ctrl.Update)
	admin.Delete("/:id/delete", ctrl.Delete)
	admin.Get("/:id", ctrl.Detail)
}
