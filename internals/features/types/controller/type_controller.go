package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tDTO "schoolinfo_backend/internals/features/types/dto"
	tModel "schoolinfo_backend/internals/features/types/model"
	helper "schoolinfo_backend/internals/helpers"
)

type TypeController struct {
	DB *gorm.DB
}

func NewTypeController(db *gorm.DB) *TypeController {
	return &TypeController{DB: db}
}

// GET /api/type/
func (h *TypeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "type_created_at",
		"name":       "lower(type_name)",
	}, "name")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&tModel.TypeModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		dbq = dbq.Where("lower(type_name) LIKE lower(?)", "%"+q+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count types")
	}
	var rows []tModel.TypeModel
	if err := dbq.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch types")
	}

	items := make([]*tDTO.TypeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, tDTO.NewTypeResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/type/:slug
func (h *TypeController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tDTO.NewTypeResponse(m)})
}

// POST /api/type/create
func (h *TypeController) Create(c *fiber.Ctx) error {
	var req tDTO.CreateTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "types", "type_slug", m.TypeName, "type")
		if err != nil {
			return err
		}
		m.TypeSlug = slug
		return tx.Create(m).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create type")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Type created",
		"data":    tDTO.NewTypeResponse(m),
	})
}

// PUT/PATCH /api/type/:slug/update
func (h *TypeController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	var req tDTO.UpdateTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update type")
	}
	return c.JSON(fiber.Map{"message": "Type updated", "data": tDTO.NewTypeResponse(m)})
}

// DELETE /api/type/:slug/delete
func (h *TypeController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete type")
	}
	return c.JSON(fiber.Map{"message": "Type deleted", "id": m.TypeID})
}

func (h *TypeController) findBySlug(slug string) (*tModel.TypeModel, error) {
	var m tModel.TypeModel
	if err := h.DB.Where("type_slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Type not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch type")
	}
	return &m, nil
}
