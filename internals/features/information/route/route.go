package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	informationController "schoolinfo_backend/internals/features/information/controller"
	"schoolinfo_backend/internals/helpers/storage"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func InformationRoutes(api fiber.Router, db *gorm.DB, store storage.FileStore) {
	catCtrl := informationController.NewInformationCategoryController(db)
	infoCtrl := informationController.NewInformationController(db, store)

	cat := api.Group("/information-category")
	cat.Get("/", catCtrl.List)
	catAdmin := cat.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage categories.", constants.RoleAdmin),
	)
	catAdmin.Post("/create", catCtrl.Create)
	catAdmin.Put("/:slug/update", catCtrl.Update)
	catAdmin.Patch("/:slug/update", catCtrl.Update)
	catAdmin.Delete("/:slug/delete", catCtrl.Delete)
	cat.Get("/:slug", catCtrl.Detail)

	info := api.Group("/information")
	info.Get("/", infoCtrl.List)
	infoAdmin := info.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage information.", constants.RoleAdmin),
	)
	infoAdmin.Post("/create", infoCtrl.Create)
	infoAdmin.Put("/:slug/update", infoCtrl.Update)
	infoAdmin.Patch("/:slug/update", infoCtrl.Update)
	infoAdmin.Delete("/:slug/delete", infoCtrl.Delete)
	info.Get("/:slug", infoCtrl.Detail)
}
