package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	adDTO "schoolinfo_backend/internals/features/advertisements/dto"
	adModel "schoolinfo_backend/internals/features/advertisements/model"
	helper "schoolinfo_backend/internals/helpers"
	"schoolinfo_backend/internals/helpers/storage"
)

type AdvertisementController struct {
	DB    *gorm.DB
	Store storage.FileStore
}

func NewAdvertisementController(db *gorm.DB, store storage.FileStore) *AdvertisementController {
	return &AdvertisementController{DB: db, Store: store}
}

/* ===================== HANDLERS ===================== */

// GET /api/advertisement/ — active banners only, newest first.
func (h *AdvertisementController) List(c *fiber.Ctx) error {
	dbq := h.DB.Model(&adModel.AdvertisementModel{}).Where("advertisement_is_active = ?", true)
	if pl := strings.TrimSpace(c.Query("placement")); pl != "" {
		dbq = dbq.Where("advertisement_placement = ?", pl)
	}
	var rows []adModel.AdvertisementModel
	if err := dbq.Order("advertisement_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch advertisements")
	}
	items := make([]*adDTO.AdvertisementResponse, 0, len(rows))
	for i := range rows {
		items = append(items, adDTO.NewAdvertisementResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GET /api/advertisement/admin — every banner, active or not.
func (h *AdvertisementController) AdminList(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "advertisement_created_at",
		"title":      "lower(advertisement_title)",
		"placement":  "advertisement_placement",
	}, "-created_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&adModel.AdvertisementModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		dbq = dbq.Where("lower(advertisement_title) LIKE lower(?)", "%"+q+"%")
	}
	if pl := strings.TrimSpace(c.Query("placement")); pl != "" {
		dbq = dbq.Where("advertisement_placement = ?", pl)
	}
	if a := strings.TrimSpace(c.Query("is_active")); a != "" {
		dbq = dbq.Where("advertisement_is_active = ?", a == "true" || a == "1")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count advertisements")
	}
	var rows []adModel.AdvertisementModel
	if err := dbq.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch advertisements")
	}
	items := make([]*adDTO.AdvertisementResponse, 0, len(rows))
	for i := range rows {
		items = append(items, adDTO.NewAdvertisementResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/advertisement/:id
func (h *AdvertisementController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": adDTO.NewAdvertisementResponse(m)})
}

// POST /api/advertisement/create — multipart; both images required.
func (h *AdvertisementController) Create(c *fiber.Ctx) error {
	var req adDTO.CreateAdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	mobile := helper.TryFormFile(c, "image_mobile")
	desktop := helper.TryFormFile(c, "image_desktop")
	if mobile == nil {
		return helper.FieldError(c, "image_mobile", "A mobile banner image is required.")
	}
	if desktop == nil {
		return helper.FieldError(c, "image_desktop", "A desktop banner image is required.")
	}

	m := req.ToModel()
	mobileURL, err := h.Store.SaveImage("ads/mobile", mobile)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
	}
	desktopURL, err := h.Store.SaveImage("ads/desktop", desktop)
	if err != nil {
		storage.BestEffortDelete(h.Store, mobileURL)
		return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
	}
	m.AdvertisementImageMobileURL = mobileURL
	m.AdvertisementImageDesktopURL = desktopURL

	if err := h.DB.Create(m).Error; err != nil {
		storage.BestEffortDelete(h.Store, mobileURL)
		storage.BestEffortDelete(h.Store, desktopURL)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create advertisement")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Advertisement created",
		"data":    adDTO.NewAdvertisementResponse(m),
	})
}

// PUT/PATCH /api/advertisement/:id/update
func (h *AdvertisementController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return err
	}
	var req adDTO.UpdateAdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)

	replaced := []string{}
	slots := []struct {
		field string
		dir   string
		dst   *string
	}{
		{"image_mobile", "ads/mobile", &m.AdvertisementImageMobileURL},
		{"image_desktop", "ads/desktop", &m.AdvertisementImageDesktopURL},
	}
	for _, s := range slots {
		fh := helper.TryFormFile(c, s.field)
		if fh == nil {
			continue
		}
		url, err := h.Store.SaveImage(s.dir, fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
		}
		replaced = append(replaced, *s.dst)
		*s.dst = url
	}

	if err := h.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update advertisement")
	}
	for _, old := range replaced {
		storage.BestEffortDelete(h.Store, old)
	}
	return c.JSON(fiber.Map{"message": "Advertisement updated", "data": adDTO.NewAdvertisementResponse(m)})
}

// DELETE /api/advertisement/:id/delete
func (h *AdvertisementController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&adModel.AdvertisementModel{}, "advertisement_id = ?", m.AdvertisementID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete advertisement")
	}
	storage.BestEffortDelete(h.Store, m.AdvertisementImageMobileURL)
	storage.BestEffortDelete(h.Store, m.AdvertisementImageDesktopURL)
	return c.JSON(fiber.Map{"message": "Advertisement deleted", "id": m.AdvertisementID})
}

/* ===================== HELPERS ===================== */

func (h *AdvertisementController) findByID(raw string) (*adModel.AdvertisementModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid advertisement id")
	}
	var m adModel.AdvertisementModel
	if err := h.DB.Where("advertisement_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Advertisement not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch advertisement")
	}
	return &m, nil
}
