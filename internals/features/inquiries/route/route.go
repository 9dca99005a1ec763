package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
	inquiryController "schoolinfo_backend/internals/features/inquiries/controller"
	authMw "schoolinfo_backend/internals/middlewares/auth"
)

func InquiryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := inquiryController.NewInquiryController(db)

	inq := api.Group("/inquiry")
	inq.Post("/create", ctrl.Create)
	inqAdmin := inq.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may view inquiries.", constants.RoleAdmin),
	)
	inqAdmin.Get("/", ctrl.List)
	inqAdmin.Delete("/:id/delete", ctrl.Delete)

	pre := api.Group("/pre-registration")
	pre.Post("/create", ctrl.CreatePreRegistration)
	preAdmin := pre.Group("",
		authMw.AuthMiddleware(),
		authMw.OnlyRoles("Only admin accounts may view pre-registrations.", constants.RoleAdmin),
	)
	preAdmin.Get("/", ctrl.ListPreRegistrations)
	preAdmin.Delete("/:id/delete", ctrl.DeletePreRegistration)
}
