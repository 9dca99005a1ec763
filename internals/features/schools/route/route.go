package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	schoolController "schoolinfo_backend/internals/features/schools/controller"
	"schoolinfo_backend/internals/helpers/storage"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB, store storage.FileStore) {
	ctrl := schoolController.NewSchoolController(db, store)

	grp := api.Group("/school")
	grp.Get("/", ctrl.List)
	grp.Get("/dropdown", ctrl.Dropdown)

	// Dashboard routes must be registered before the :slug catch-all.
	me := grp.Group("/me", authMw.AuthMiddleware())
	me.Get("/", ctrl.Me)
	me.Put("/update", ctrl.UpdateMe)
	me.Patch("/update", ctrl.UpdateMe)
	me.Get("/inquiries", ctrl.MyInquiries)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage schools.", constants.RoleAdmin),
	)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:slug/update", ctrl.Update)
	admin.Patch("/:slug/update", ctrl.Update)
	admin.Delete("/:slug/delete", ctrl.Delete)

	grp.Get("/:slug", ctrl.Detail)
}
