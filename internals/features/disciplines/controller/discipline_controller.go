package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dDTO "schoolinfo_backend/internals/features/disciplines/dto"
	dModel "schoolinfo_backend/internals/features/disciplines/model"
	helper "schoolinfo_backend/internals/helpers"
)

type DisciplineController struct {
	DB *gorm.DB
}

func NewDisciplineController(db *gorm.DB) *DisciplineController {
	return &DisciplineController{DB: db}
}

// GET /api/discipline/
func (h *DisciplineController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "discipline_created_at",
		"name":       "lower(discipline_name)",
	}, "name")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&dModel.DisciplineModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		dbq = dbq.Where("lower(discipline_name) LIKE lower(?)", "%"+q+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count disciplines")
	}
	var rows []dModel.DisciplineModel
	if err := dbq.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch disciplines")
	}

	items := make([]*dDTO.DisciplineResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dDTO.NewDisciplineResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/discipline/:slug
func (h *DisciplineController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dDTO.NewDisciplineResponse(m)})
}

// POST /api/discipline/create
func (h *DisciplineController) Create(c *fiber.Ctx) error {
	var req dDTO.CreateDisciplineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "disciplines", "discipline_slug", m.DisciplineName, "discipline")
		if err != nil {
			return err
		}
		m.DisciplineSlug = slug
		return tx.Create(m).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create discipline")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Discipline created",
		"data":    dDTO.NewDisciplineResponse(m),
	})
}

// PUT/PATCH /api/discipline/:slug/update
func (h *DisciplineController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	var req dDTO.UpdateDisciplineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update discipline")
	}
	return c.JSON(fiber.Map{"message": "Discipline updated", "data": dDTO.NewDisciplineResponse(m)})
}

// DELETE /api/discipline/:slug/delete
func (h *DisciplineController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete discipline")
	}
	return c.JSON(fiber.Map{"message": "Discipline deleted", "id": m.DisciplineID})
}

func (h *DisciplineController) findBySlug(slug string) (*dModel.DisciplineModel, error) {
	var m dModel.DisciplineModel
	if err := h.DB.Where("discipline_slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Discipline not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch discipline")
	}
	return &m, nil
}
