package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "schoolinfo_backend/internals/features/users/controller"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)

	grp := api.Group("/auth")
	grp.Post("/register", ctrl.Register)
	grp.Post("/login", ctrl.Login)
	grp.Get("/me", authMw.AuthMiddleware(), ctrl.Me)
}
