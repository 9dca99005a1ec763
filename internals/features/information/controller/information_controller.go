package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "schoolinfo_backend/internals/features/courses/model"
	iDTO "schoolinfo_backend/internals/features/information/dto"
	iModel "schoolinfo_backend/internals/features/information/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
	helper "schoolinfo_backend/internals/helpers"
	"schoolinfo_backend/internals/helpers/storage"
)

type InformationController struct {
	DB    *gorm.DB
	Store storage.FileStore
}

func NewInformationController(db *gorm.DB, store storage.FileStore) *InformationController {
	return &InformationController{DB: db, Store: store}
}

/* ===================== HANDLERS ===================== */

// GET /api/information/
func (h *InformationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"published_date": "information_published_date",
		"created_at":     "information_created_at",
		"title":          "lower(information_title)",
	}, "-published_date")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&iModel.InformationModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		dbq = dbq.Where(
			"lower(information_title) LIKE lower(?) OR lower(information_summary) LIKE lower(?)",
			like, like,
		)
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		dbq = dbq.Where("information_category_id IN (?)",
			h.DB.Model(&iModel.InformationCategoryModel{}).Select("information_category_id").
				Where("information_category_slug = ?", cat))
	}
	if f := strings.TrimSpace(c.Query("featured")); f != "" {
		dbq = dbq.Where("information_featured = ?", f == "true" || f == "1")
	}
	if a := strings.TrimSpace(c.Query("is_active")); a != "" {
		dbq = dbq.Where("information_is_active = ?", a == "true" || a == "1")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count information")
	}
	var rows []iModel.InformationModel
	if err := dbq.
		Preload("InformationCategory").
		Preload("InformationUniversities").
		Preload("InformationLevels").
		Preload("InformationCourses").
		Preload("InformationSchools").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch information")
	}

	items := make([]*iDTO.InformationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, iDTO.NewInformationResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/information/:slug
func (h *InformationController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": iDTO.NewInformationResponse(m)})
}

// POST /api/information/create  (JSON or multipart)
func (h *InformationController) Create(c *fiber.Ctx) error {
	var req iDTO.CreateInformationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if helper.IsMultipart(c) {
		if form, _ := c.MultipartForm(); form != nil {
			req.Universities = helper.DecodeJSONSlice[string](form.Value["universities"])
			req.Levels = helper.DecodeJSONSlice[string](form.Value["levels"])
			req.Courses = helper.DecodeJSONSlice[string](form.Value["courses"])
			req.Schools = helper.DecodeJSONSlice[string](form.Value["schools"])
		}
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if h.collectReplacedUploads(c, m) == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		cat, err := helper.ResolveOneBySlug[iModel.InformationCategoryModel](tx, "information_category_slug", req.Category)
		if err != nil {
			return err
		}
		if cat == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown category")
		}
		m.InformationCategoryID = cat.InformationCategoryID

		slug, err := helper.EnsureUniqueSlug(tx, "information", "information_slug", m.InformationTitle, "information")
		if err != nil {
			return err
		}
		m.InformationSlug = slug

		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return h.replaceRelations(tx, m, &req.Universities, &req.Levels, &req.Courses, &req.Schools)
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create information")
	}

	created, err := h.findBySlug(m.InformationSlug, true)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Information created",
		"data":    iDTO.NewInformationResponse(created),
	})
}

// PUT/PATCH /api/information/:slug/update
func (h *InformationController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), false)
	if err != nil {
		return err
	}
	var req iDTO.UpdateInformationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if helper.IsMultipart(c) {
		if form, _ := c.MultipartForm(); form != nil {
			req.Universities = helper.DecodeJSONSlice[string](form.Value["universities"])
			req.Levels = helper.DecodeJSONSlice[string](form.Value["levels"])
			req.Courses = helper.DecodeJSONSlice[string](form.Value["courses"])
			req.Schools = helper.DecodeJSONSlice[string](form.Value["schools"])
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

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.Category != nil {
			cat, err := helper.ResolveOneBySlug[iModel.InformationCategoryModel](tx, "information_category_slug", *req.Category)
			if err != nil {
				return err
			}
			if cat == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown category")
			}
			m.InformationCategoryID = cat.InformationCategoryID
		}
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		return h.replaceRelations(tx, m, &req.Universities, &req.Levels, &req.Courses, &req.Schools)
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update information")
	}
	for _, old := range replaced {
		storage.BestEffortDelete(h.Store, old)
	}

	updated, err := h.findBySlug(m.InformationSlug, true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Information updated", "data": iDTO.NewInformationResponse(updated)})
}

// DELETE /api/information/:slug/delete
func (h *InformationController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), false)
	if err != nil {
		return err
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, assoc := range []string{"InformationUniversities", "InformationLevels", "InformationCourses", "InformationSchools"} {
			if err := tx.Model(m).Association(assoc).Clear(); err != nil {
				return err
			}
		}
		return tx.Delete(&iModel.InformationModel{}, "information_id = ?", m.InformationID).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete information")
	}
	for _, url := range []*string{m.InformationFeaturedImageURL, m.InformationBannerImageURL} {
		if url != nil {
			storage.BestEffortDelete(h.Store, *url)
		}
	}
	return c.JSON(fiber.Map{"message": "Information deleted", "id": m.InformationID})
}

/* ===================== HELPERS ===================== */

func (h *InformationController) findBySlug(slug string, full bool) (*iModel.InformationModel, error) {
	dbq := h.DB.Where("information_slug = ?", slug)
	if full {
		dbq = dbq.
			Preload("InformationCategory").
			Preload("InformationUniversities").
			Preload("InformationLevels").
			Preload("InformationCourses").
			Preload("InformationSchools")
	}
	var m iModel.InformationModel
	if err := dbq.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Information not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch information")
	}
	return &m, nil
}

func (h *InformationController) replaceRelations(tx *gorm.DB, m *iModel.InformationModel, universities, levels, courses, schools **[]string) error {
	if *universities != nil {
		resolved, err := helper.ResolveBySlugs[universityModel.UniversityModel](tx, "university_slug", **universities)
		if err != nil {
			return err
		}
		if err := helper.ReplaceAssociation(tx, m, "InformationUniversities", resolved); err != nil {
			return err
		}
	}
	if *levels != nil {
		resolved, err := helper.ResolveBySlugs[levelModel.LevelModel](tx, "level_slug", **levels)
		if err != nil {
			return err
		}
		if err := helper.ReplaceAssociation(tx, m, "InformationLevels", resolved); err != nil {
			return err
		}
	}
	if *courses != nil {
		resolved, err := helper.ResolveBySlugs[courseModel.CourseModel](tx, "course_slug", **courses)
		if err != nil {
			return err
		}
		if err := helper.ReplaceAssociation(tx, m, "InformationCourses", resolved); err != nil {
			return err
		}
	}
	if *schools != nil {
		resolved, err := helper.ResolveBySlugs[schoolModel.SchoolModel](tx, "school_slug", **schools)
		if err != nil {
			return err
		}
		if err := helper.ReplaceAssociation(tx, m, "InformationSchools", resolved); err != nil {
			return err
		}
	}
	return nil
}

func (h *InformationController) collectReplacedUploads(c *fiber.Ctx, m *iModel.InformationModel) []string {
	replaced := []string{}
	slots := []struct {
		field string
		dir   string
		dst   **string
	}{
		{"featured_image", "information/featured", &m.InformationFeaturedImageURL},
		{"banner_image", "information/banners", &m.InformationBannerImageURL},
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
