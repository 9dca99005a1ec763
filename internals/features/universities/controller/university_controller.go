package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	typeModel "schoolinfo_backend/internals/features/types/model"
	uDTO "schoolinfo_backend/internals/features/universities/dto"
	uModel "schoolinfo_backend/internals/features/universities/model"
	helper "schoolinfo_backend/internals/helpers"
	"schoolinfo_backend/internals/helpers/storage"
)

type UniversityController struct {
	DB    *gorm.DB
	Store storage.FileStore
}

func NewUniversityController(db *gorm.DB, store storage.FileStore) *UniversityController {
	return &UniversityController{DB: db, Store: store}
}

/* ===================== HANDLERS ===================== */

// GET /api/university/
func (h *UniversityController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "university_created_at",
		"name":       "lower(university_name)",
		"priority":   "university_priority",
	}, "priority")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&uModel.UniversityModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		dbq = dbq.Where("lower(university_name) LIKE lower(?)", "%"+q+"%")
	}
	if fa := strings.TrimSpace(c.Query("foreign_affiliation")); fa != "" {
		dbq = dbq.Where("university_foreign_affiliated = ?", fa == "true" || fa == "1")
	}
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		dbq = dbq.Where("university_type_id IN (?)",
			h.DB.Model(&typeModel.TypeModel{}).Select("type_id").Where("type_slug = ?", t))
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count universities")
	}
	var rows []uModel.UniversityModel
	if err := dbq.Preload("UniversityType").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch universities")
	}

	items := make([]*uDTO.UniversityResponse, 0, len(rows))
	for i := range rows {
		items = append(items, uDTO.NewUniversityResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/university/:slug
func (h *UniversityController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": uDTO.NewUniversityResponse(m)})
}

// POST /api/university/create  (JSON or multipart)
func (h *UniversityController) Create(c *fiber.Ctx) error {
	var req uDTO.CreateUniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	var form *multipart.Form
	if helper.IsMultipart(c) {
		form, _ = c.MultipartForm()
		if form != nil {
			req.Phones = helper.DecodeJSONSlice[uDTO.PhoneItem](form.Value["phones"])
			req.Emails = helper.DecodeJSONSlice[uDTO.EmailItem](form.Value["emails"])
			req.Gallery = helper.DecodeJSONSlice[uDTO.GalleryItem](form.Value["gallery"])
		}
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.applyUploads(c, m); err != nil {
		return err
	}
	if err := h.resolveGalleryFiles(form, req.Gallery); err != nil {
		return err
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "universities", "university_slug", m.UniversityName, "university")
		if err != nil {
			return err
		}
		m.UniversitySlug = slug

		t, err := helper.ResolveOneBySlug[typeModel.TypeModel](tx, "type_slug", req.Type)
		if err != nil {
			return err
		}
		if t != nil {
			m.UniversityTypeID = &t.TypeID
		}

		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if _, err := helper.ReconcileChildren(tx, "university_phone_university_id", m.UniversityID,
			uDTO.PhoneRows(m.UniversityID, req.Phones)); err != nil {
			return err
		}
		if _, err := helper.ReconcileChildren(tx, "university_email_university_id", m.UniversityID,
			uDTO.EmailRows(m.UniversityID, req.Emails)); err != nil {
			return err
		}
		_, err = helper.ReconcileChildren(tx, "university_gallery_university_id", m.UniversityID,
			uDTO.GalleryRows(m.UniversityID, req.Gallery))
		return err
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create university")
	}

	created, err := h.findBySlug(m.UniversitySlug, true)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "University created",
		"data":    uDTO.NewUniversityResponse(created),
	})
}

// PUT/PATCH /api/university/:slug/update
func (h *UniversityController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), false)
	if err != nil {
		return err
	}

	var req uDTO.UpdateUniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	var form *multipart.Form
	if helper.IsMultipart(c) {
		form, _ = c.MultipartForm()
		if form != nil {
			req.Phones = helper.DecodeJSONSlice[uDTO.PhoneItem](form.Value["phones"])
			req.Emails = helper.DecodeJSONSlice[uDTO.EmailItem](form.Value["emails"])
			req.Gallery = helper.DecodeJSONSlice[uDTO.GalleryItem](form.Value["gallery"])
		}
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)

	replaced := h.collectReplacedUploads(c, m)
	if replaced == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
	}
	if err := h.resolveGalleryFiles(form, req.Gallery); err != nil {
		return err
	}

	var removedGallery []uModel.UniversityGalleryModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.Type != nil {
			t, err := helper.ResolveOneBySlug[typeModel.TypeModel](tx, "type_slug", *req.Type)
			if err != nil {
				return err
			}
			if t != nil {
				m.UniversityTypeID = &t.TypeID
			} else {
				m.UniversityTypeID = nil
			}
		}
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if _, err := helper.ReconcileChildren(tx, "university_phone_university_id", m.UniversityID,
			uDTO.PhoneRows(m.UniversityID, req.Phones)); err != nil {
			return err
		}
		if _, err := helper.ReconcileChildren(tx, "university_email_university_id", m.UniversityID,
			uDTO.EmailRows(m.UniversityID, req.Emails)); err != nil {
			return err
		}
		removed, err := helper.ReconcileChildren(tx, "university_gallery_university_id", m.UniversityID,
			uDTO.GalleryRows(m.UniversityID, req.Gallery))
		if err != nil {
			return err
		}
		removedGallery = removed
		return nil
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update university")
	}

	kept := map[string]bool{}
	if req.Gallery != nil {
		for _, g := range *req.Gallery {
			kept[g.Image] = true
		}
	}
	for _, g := range removedGallery {
		if !kept[g.UniversityGalleryImageURL] {
			storage.BestEffortDelete(h.Store, g.UniversityGalleryImageURL)
		}
	}
	for _, old := range replaced {
		storage.BestEffortDelete(h.Store, old)
	}

	updated, err := h.findBySlug(m.UniversitySlug, true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "University updated", "data": uDTO.NewUniversityResponse(updated)})
}

// DELETE /api/university/:slug/delete
func (h *UniversityController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), true)
	if err != nil {
		return err
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("university_phone_university_id = ?", m.UniversityID).
			Delete(&uModel.UniversityPhoneModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("university_email_university_id = ?", m.UniversityID).
			Delete(&uModel.UniversityEmailModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("university_gallery_university_id = ?", m.UniversityID).
			Delete(&uModel.UniversityGalleryModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&uModel.UniversityModel{}, "university_id = ?", m.UniversityID).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete university")
	}

	for _, url := range []*string{m.UniversityLogoURL, m.UniversityCoverPhotoURL, m.UniversityOGImageURL} {
		if url != nil {
			storage.BestEffortDelete(h.Store, *url)
		}
	}
	for _, g := range m.UniversityGallery {
		storage.BestEffortDelete(h.Store, g.UniversityGalleryImageURL)
	}
	return c.JSON(fiber.Map{"message": "University deleted", "id": m.UniversityID})
}

/* ===================== HELPERS ===================== */

func (h *UniversityController) findBySlug(slug string, full bool) (*uModel.UniversityModel, error) {
	dbq := h.DB.Where("university_slug = ?", slug)
	if full {
		dbq = dbq.
			Preload("UniversityType").
			Preload("UniversityPhones").
			Preload("UniversityEmails").
			Preload("UniversityGallery")
	}
	var m uModel.UniversityModel
	if err := dbq.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "University not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch university")
	}
	return &m, nil
}

func (h *UniversityController) applyUploads(c *fiber.Ctx, m *uModel.UniversityModel) error {
	slots := []struct {
		field string
		dir   string
		dst   **string
	}{
		{"logo", "university/logos", &m.UniversityLogoURL},
		{"cover_photo", "university/covers", &m.UniversityCoverPhotoURL},
		{"og_image", "university/og", &m.UniversityOGImageURL},
	}
	for _, s := range slots {
		if fh := helper.TryFormFile(c, s.field); fh != nil {
			url, err := h.Store.SaveImage(s.dir, fh)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
			}
			*s.dst = &url
		}
	}
	return nil
}

// collectReplacedUploads stores any newly uploaded logo/cover/og image and
// returns the URLs they displaced, to be deleted after the row is saved.
// A nil return signals a storage failure.
func (h *UniversityController) collectReplacedUploads(c *fiber.Ctx, m *uModel.UniversityModel) []string {
	replaced := []string{}
	slots := []struct {
		field string
		dir   string
		dst   **string
	}{
		{"logo", "university/logos", &m.UniversityLogoURL},
		{"cover_photo", "university/covers", &m.UniversityCoverPhotoURL},
		{"og_image", "university/og", &m.UniversityOGImageURL},
	}
	for _, s := range slots {
		fh := helper.TryFormFile(c, s.field)
		if fh == nil {
			continue
		}
		url, err := h.Store.SaveImage(s.dir, fh)
		if err != nil {
			return nil
		}
		if *s.dst != nil {
			replaced = append(replaced, **s.dst)
		}
		*s.dst = &url
	}
	return replaced
}

// resolveGalleryFiles fills each gallery item's image from its indexed form
// file (gallery_0_image, gallery_1_image, ...) when one was uploaded. Items
// without a file keep whatever image URL the payload carried.
func (h *UniversityController) resolveGalleryFiles(form *multipart.Form, items *[]uDTO.GalleryItem) error {
	if form == nil || items == nil {
		return nil
	}
	for i := range *items {
		fh := helper.IndexedFormFile(form, "gallery", i, "image")
		if fh == nil {
			continue
		}
		url, err := h.Store.SaveImage("university/gallery", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not store gallery image")
		}
		(*items)[i].Image = url
	}
	return nil
}
