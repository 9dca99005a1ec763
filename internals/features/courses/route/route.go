package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	courseController "schoolinfo_backend/internals/features/courses/controller"
	"schoolinfo_backend/internals/helpers/storage"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func CourseRoutes(api fiber.Router, db *gorm.DB, store storage.FileStore) {
	ctrl := courseController.NewCourseController(db, store)

	grp := api.Group("/course")
	grp.Get("/", ctrl.List)

	admin := grp.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may manage courses.", constants.RoleAdmin),
	)
	admin.Post("/create", ctrl.Create)
	admin.Put("/:slug/update", ctrl.Update)
	admin.Patch("/:slug/update", ctrl.Update)
	admin.Delete("/:slug/delete", ctrl.Delete)

	grp.Get("/:slug", ctrl.Detail)
}
