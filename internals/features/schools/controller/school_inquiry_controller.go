package controller

import (
	"github.com/gofiber/fiber/v2"

	inquiryDTO "schoolinfo_backend/internals/features/inquiries/dto"
	inquiryModel "schoolinfo_backend/internals/features/inquiries/model"
	helper "schoolinfo_backend/internals/helpers"
)

// GET /api/school/me/inquiries
//
// Both inquiry kinds land in one payload so the dashboard can render a single
// inbox.
func (h *SchoolController) MyInquiries(c *fiber.Ctx) error {
	m, err := h.findOwn(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c)

	var inquiries []inquiryModel.InquiryModel
	if err := h.DB.
		Preload("InquirySchool").
		Preload("InquiryCourse").
		Where("inquiry_school_id = ?", m.SchoolID).
		Order("inquiry_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&inquiries).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch inquiries")
	}

	var preRegs []inquiryModel.PreRegistrationInquiryModel
	if err := h.DB.
		Preload("PreRegistrationSchool").
		Where("pre_registration_school_id = ?", m.SchoolID).
		Order("pre_registration_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&preRegs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch pre-registrations")
	}

	inqItems := make([]*inquiryDTO.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		inqItems = append(inqItems, inquiryDTO.NewInquiryResponse(&inquiries[i]))
	}
	preItems := make([]*inquiryDTO.PreRegistrationResponse, 0, len(preRegs))
	for i := range preRegs {
		preItems = append(preItems, inquiryDTO.NewPreRegistrationResponse(&preRegs[i]))
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"inquiries":         inqItems,
			"pre_registrations": preItems,
		},
	})
}
