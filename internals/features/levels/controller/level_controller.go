package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lDTO "schoolinfo_backend/internals/features/levels/dto"
	lModel "schoolinfo_backend/internals/features/levels/model"
	helper "schoolinfo_backend/internals/helpers"
)

type LevelController struct {
	DB *gorm.DB
}

func NewLevelController(db *gorm.DB) *LevelController {
	return &LevelController{DB: db}
}

// GET /api/level/
func (h *LevelController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "level_created_at",
		"title":      "lower(level_title)",
	}, "title")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&lModel.LevelModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		dbq = dbq.Where("lower(level_title) LIKE lower(?)", "%"+q+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count levels")
	}
	var rows []lModel.LevelModel
	if err := dbq.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch levels")
	}

	items := make([]*lDTO.LevelResponse, 0, len(rows))
	for i := range rows {
		items = append(items, lDTO.NewLevelResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/level/:slug
func (h *LevelController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": lDTO.NewLevelResponse(m)})
}

// POST /api/level/create
func (h *LevelController) Create(c *fiber.Ctx) error {
	var req lDTO.CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "levels", "level_slug", m.LevelTitle, "level")
		if err != nil {
			return err
		}
		m.LevelSlug = slug
		return tx.Create(m).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create level")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Level created",
		"data":    lDTO.NewLevelResponse(m),
	})
}

// PUT/PATCH /api/level/:slug/update
func (h *LevelController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	var req lDTO.UpdateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update level")
	}
	return c.JSON(fiber.Map{"message": "Level updated", "data": lDTO.NewLevelResponse(m)})
}

// DELETE /api/level/:slug/delete
func (h *LevelController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete level")
	}
	return c.JSON(fiber.Map{"message": "Level deleted", "id": m.LevelID})
}

func (h *LevelController) findBySlug(slug string) (*lModel.LevelModel, error) {
	var m lModel.LevelModel
	if err := h.DB.Where("level_slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Level not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch level")
	}
	return &m, nil
}
