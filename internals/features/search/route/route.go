package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	searchController "schoolinfo_backend/internals/features/search/controller"
)

func SearchRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := searchController.NewSearchController(db)
	api.Get("/search", ctrl.GlobalSearch)
}
