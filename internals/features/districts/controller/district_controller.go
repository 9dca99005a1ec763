package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dDTO "schoolinfo_backend/internals/features/districts/dto"
	dModel "schoolinfo_backend/internals/features/districts/model"
	helper "schoolinfo_backend/internals/helpers"
)

type DistrictController struct {
	DB *gorm.DB
}

func NewDistrictController(db *gorm.DB) *DistrictController {
	return &DistrictController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /api/district/
func (h *DistrictController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "district_created_at",
		"name":       "lower(district_name)",
	}, "created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&dModel.DistrictModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		dbq = dbq.Where("lower(district_name) LIKE lower(?)", "%"+q+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count districts")
	}

	var rows []dModel.DistrictModel
	if err := dbq.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch districts")
	}

	items := make([]*dDTO.DistrictResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dDTO.NewDistrictResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/district/:slug
func (h *DistrictController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dDTO.NewDistrictResponse(m)})
}

// POST /api/district/create
func (h *DistrictController) Create(c *fiber.Ctx) error {
	var req dDTO.CreateDistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "districts", "district_slug", m.DistrictName, "district")
		if err != nil {
			return err
		}
		m.DistrictSlug = slug
		return tx.Create(m).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create district")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "District created",
		"data":    dDTO.NewDistrictResponse(m),
	})
}

// PUT/PATCH /api/district/:slug/update
func (h *DistrictController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}

	var req dDTO.UpdateDistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update district")
	}
	return c.JSON(fiber.Map{"message": "District updated", "data": dDTO.NewDistrictResponse(m)})
}

// DELETE /api/district/:slug/delete
func (h *DistrictController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete district")
	}
	return c.JSON(fiber.Map{"message": "District deleted", "id": m.DistrictID})
}

/* ===================== HELPERS ===================== */

func (h *DistrictController) findBySlug(slug string) (*dModel.DistrictModel, error) {
	var m dModel.DistrictModel
	if err := h.DB.Where("district_slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "District not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch district")
	}
	return &m, nil
}
