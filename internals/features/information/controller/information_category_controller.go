package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	iDTO "schoolinfo_backend/internals/features/information/dto"
	iModel "schoolinfo_backend/internals/features/information/model"
	helper "schoolinfo_backend/internals/helpers"
)

type InformationCategoryController struct {
	DB *gorm.DB
}

func NewInformationCategoryController(db *gorm.DB) *InformationCategoryController {
	return &InformationCategoryController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /api/information-category/
func (h *InformationCategoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "information_category_created_at",
		"name":       "lower(information_category_name)",
	}, "name")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&iModel.InformationCategoryModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		dbq = dbq.Where("lower(information_category_name) LIKE lower(?)", "%"+q+"%")
	}
	if a := strings.TrimSpace(c.Query("is_active")); a != "" {
		dbq = dbq.Where("information_category_is_active = ?", a == "true" || a == "1")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count categories")
	}
	var rows []iModel.InformationCategoryModel
	if err := dbq.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	items := make([]*iDTO.InformationCategoryResponse, 0, len(rows))
	for i := range rows {
		items = append(items, iDTO.NewInformationCategoryResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/information-category/:slug
func (h *InformationCategoryController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": iDTO.NewInformationCategoryResponse(m)})
}

// POST /api/information-category/create
func (h *InformationCategoryController) Create(c *fiber.Ctx) error {
	var req iDTO.CreateInformationCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "information_categories", "information_category_slug",
			m.InformationCategoryName, "category")
		if err != nil {
			return err
		}
		m.InformationCategorySlug = slug
		return tx.Create(m).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Category created",
		"data":    iDTO.NewInformationCategoryResponse(m),
	})
}

// PUT/PATCH /api/information-category/:slug/update
func (h *InformationCategoryController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	var req iDTO.UpdateInformationCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)

	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update category")
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": iDTO.NewInformationCategoryResponse(m)})
}

// DELETE /api/information-category/:slug/delete
//
// Removing a category takes its information entries with it.
func (h *InformationCategoryController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("information_category_id = ?", m.InformationCategoryID).
			Delete(&iModel.InformationModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&iModel.InformationCategoryModel{},
			"information_category_id = ?", m.InformationCategoryID).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete category")
	}
	return c.JSON(fiber.Map{"message": "Category deleted", "id": m.InformationCategoryID})
}

/* ===================== HELPERS ===================== */

func (h *InformationCategoryController) findBySlug(slug string) (*iModel.InformationCategoryModel, error) {
	var m iModel.InformationCategoryModel
	if err := h.DB.Where("information_category_slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch category")
	}
	return &m, nil
}
