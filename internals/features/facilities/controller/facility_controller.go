package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fDTO "schoolinfo_backend/internals/features/facilities/dto"
	fModel "schoolinfo_backend/internals/features/facilities/model"
	helper "schoolinfo_backend/internals/helpers"
	"schoolinfo_backend/internals/helpers/storage"
)

type FacilityController struct {
	DB    *gorm.DB
	Store storage.FileStore
}

func NewFacilityController(db *gorm.DB, store storage.FileStore) *FacilityController {
	return &FacilityController{DB: db, Store: store}
}

/* ===================== HANDLERS ===================== */

// GET /api/facility/
func (h *FacilityController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "facility_created_at",
		"name":       "lower(facility_name)",
	}, "name")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&fModel.FacilityModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		dbq = dbq.Where("lower(facility_name) LIKE lower(?)", "%"+q+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count facilities")
	}
	var rows []fModel.FacilityModel
	if err := dbq.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch facilities")
	}

	items := make([]*fDTO.FacilityResponse, 0, len(rows))
	for i := range rows {
		items = append(items, fDTO.NewFacilityResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/facility/:slug
func (h *FacilityController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fDTO.NewFacilityResponse(m)})
}

// POST /api/facility/create  (JSON or multipart; icon file optional)
func (h *FacilityController) Create(c *fiber.Ctx) error {
	var req fDTO.CreateFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if fh := helper.TryFormFile(c, "icon"); fh != nil {
		url, err := h.Store.SaveImage("facility/icons", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not store icon image")
		}
		m.FacilityIconURL = &url
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "facilities", "facility_slug", m.FacilityName, "facility")
		if err != nil {
			return err
		}
		m.FacilitySlug = slug
		return tx.Create(m).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create facility")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Facility created",
		"data":    fDTO.NewFacilityResponse(m),
	})
}

// PUT/PATCH /api/facility/:slug/update
func (h *FacilityController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}

	var req fDTO.UpdateFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)

	var oldIcon string
	if fh := helper.TryFormFile(c, "icon"); fh != nil {
		url, err := h.Store.SaveImage("facility/icons", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not store icon image")
		}
		if m.FacilityIconURL != nil {
			oldIcon = *m.FacilityIconURL
		}
		m.FacilityIconURL = &url
	}

	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update facility")
	}
	if oldIcon != "" {
		storage.BestEffortDelete(h.Store, oldIcon)
	}
	return c.JSON(fiber.Map{"message": "Facility updated", "data": fDTO.NewFacilityResponse(m)})
}

// DELETE /api/facility/:slug/delete
func (h *FacilityController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete facility")
	}
	if m.FacilityIconURL != nil {
		storage.BestEffortDelete(h.Store, *m.FacilityIconURL)
	}
	return c.JSON(fiber.Map{"message": "Facility deleted", "id": m.FacilityID})
}

/* ===================== HELPERS ===================== */

func (h *FacilityController) findBySlug(slug string) (*fModel.FacilityModel, error) {
	var m fModel.FacilityModel
	if err := h.DB.Where("facility_slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Facility not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch facility")
	}
	return &m, nil
}
