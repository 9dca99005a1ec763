package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "schoolinfo_backend/internals/features/courses/model"
	iDTO "schoolinfo_backend/internals/features/inquiries/dto"
	iModel "schoolinfo_backend/internals/features/inquiries/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	helper "schoolinfo_backend/internals/helpers"
)

type InquiryController struct {
	DB *gorm.DB
}

func NewInquiryController(db *gorm.DB) *InquiryController {
	return &InquiryController{DB: db}
}

/* ===================== GENERAL INQUIRIES ===================== */

// POST /api/inquiry/create  (public)
func (h *InquiryController) Create(c *fiber.Ctx) error {
	var req iDTO.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	school, err := helper.ResolveOneBySlug[schoolModel.SchoolModel](h.DB, "school_slug", req.School)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve school")
	}
	if school != nil {
		m.InquirySchoolID = &school.SchoolID
	}
	course, err := helper.ResolveOneBySlug[courseModel.CourseModel](h.DB, "course_slug", req.Course)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve course")
	}
	if course != nil {
		m.InquiryCourseID = &course.CourseID
	}

	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit inquiry")
	}
	m.InquirySchool = school
	m.InquiryCourse = course
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Inquiry submitted",
		"data":    iDTO.NewInquiryResponse(m),
	})
}

// GET /api/inquiry/  (admin)
func (h *InquiryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	dbq := h.DB.Model(&iModel.InquiryModel{})
	if s := strings.TrimSpace(c.Query("school")); s != "" {
		dbq = dbq.Where("inquiry_school_id IN (?)",
			h.DB.Model(&schoolModel.SchoolModel{}).Select("school_id").Where("school_slug = ?", s))
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count inquiries")
	}
	var rows []iModel.InquiryModel
	if err := dbq.
		Preload("InquirySchool").
		Preload("InquiryCourse").
		Order("inquiry_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch inquiries")
	}

	items := make([]*iDTO.InquiryResponse, 0, len(rows))
	for i := range rows {
		items = append(items, iDTO.NewInquiryResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// DELETE /api/inquiry/:id/delete  (admin)
func (h *InquiryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid inquiry id")
	}
	var m iModel.InquiryModel
	if err := h.DB.First(&m, "inquiry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Inquiry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch inquiry")
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete inquiry")
	}
	return c.JSON(fiber.Map{"message": "Inquiry deleted", "id": m.InquiryID})
}

/* ===================== PRE-REGISTRATIONS ===================== */

// POST /api/pre-registration/create  (public)
func (h *InquiryController) CreatePreRegistration(c *fiber.Ctx) error {
	var req iDTO.CreatePreRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	school, err := helper.ResolveOneBySlug[schoolModel.SchoolModel](h.DB, "school_slug", req.School)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve school")
	}
	if school == nil {
		return helper.FieldError(c, "school", "Unknown school")
	}

	m := req.ToModel()
	m.PreRegistrationSchoolID = school.SchoolID
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit pre-registration")
	}
	m.PreRegistrationSchool = school
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pre-registration submitted",
		"data":    iDTO.NewPreRegistrationResponse(m),
	})
}

// GET /api/pre-registration/  (admin)
func (h *InquiryController) ListPreRegistrations(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)

	dbq := h.DB.Model(&iModel.PreRegistrationInquiryModel{})
	if s := strings.TrimSpace(c.Query("school")); s != "" {
		dbq = dbq.Where("pre_registration_school_id IN (?)",
			h.DB.Model(&schoolModel.SchoolModel{}).Select("school_id").Where("school_slug = ?", s))
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count pre-registrations")
	}
	var rows []iModel.PreRegistrationInquiryModel
	if err := dbq.
		Preload("PreRegistrationSchool").
		Order("pre_registration_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch pre-registrations")
	}

	items := make([]*iDTO.PreRegistrationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, iDTO.NewPreRegistrationResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// DELETE /api/pre-registration/:id/delete  (admin)
func (h *InquiryController) DeletePreRegistration(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid pre-registration id")
	}
	var m iModel.PreRegistrationInquiryModel
	if err := h.DB.First(&m, "pre_registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pre-registration not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch pre-registration")
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete pre-registration")
	}
	return c.JSON(fiber.Map{"message": "Pre-registration deleted", "id": m.PreRegistrationID})
}
