package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cDTO "schoolinfo_backend/internals/features/courses/dto"
	cModel "schoolinfo_backend/internals/features/courses/model"
	disciplineModel "schoolinfo_backend/internals/features/disciplines/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
	helper "schoolinfo_backend/internals/helpers"
	"schoolinfo_backend/internals/helpers/storage"
)

type CourseController struct {
	DB    *gorm.DB
	Store storage.FileStore
}

func NewCourseController(db *gorm.DB, store storage.FileStore) *CourseController {
	return &CourseController{DB: db, Store: store}
}

/* ===================== HANDLERS ===================== */

// GET /api/course/
func (h *CourseController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "course_created_at",
		"updated_at": "course_updated_at",
		"name":       "lower(course_name)",
	}, "-updated_at")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&cModel.CourseModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		dbq = dbq.Where(
			"lower(course_name) LIKE lower(?) OR lower(course_abbreviation) LIKE lower(?) OR lower(course_duration) LIKE lower(?)",
			like, like, like,
		)
	}
	if u := strings.TrimSpace(c.Query("university")); u != "" {
		dbq = dbq.Where("course_university_id IN (?)",
			h.DB.Model(&universityModel.UniversityModel{}).Select("university_id").Where("university_slug = ?", u))
	}
	if l := strings.TrimSpace(c.Query("level")); l != "" {
		dbq = dbq.Where("course_level_id IN (?)",
			h.DB.Model(&levelModel.LevelModel{}).Select("level_id").Where("level_slug = ?", l))
	}
	if d := strings.TrimSpace(c.Query("discipline")); d != "" {
		dbq = dbq.Where("course_id IN (?)",
			h.DB.Table("course_disciplines").Select("course_id").Where("discipline_id IN (?)",
				h.DB.Model(&disciplineModel.DisciplineModel{}).Select("discipline_id").Where("discipline_slug = ?", d)))
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count courses")
	}
	var rows []cModel.CourseModel
	if err := dbq.
		Preload("CourseUniversity").
		Preload("CourseLevel").
		Preload("CourseDisciplines").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	items := make([]*cDTO.CourseResponse, 0, len(rows))
	for i := range rows {
		items = append(items, cDTO.NewCourseResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/course/:slug
func (h *CourseController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cDTO.NewCourseResponse(m)})
}

// POST /api/course/create  (JSON or multipart)
func (h *CourseController) Create(c *fiber.Ctx) error {
	var req cDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	var form *multipart.Form
	if helper.IsMultipart(c) {
		form, _ = c.MultipartForm()
		if form != nil {
			req.Disciplines = helper.DecodeJSONSlice[string](form.Value["disciplines"])
			req.Attachments = helper.DecodeJSONSlice[cDTO.AttachmentItem](form.Value["attachments"])
		}
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.applyOGImage(c, m); err != nil {
		return err
	}
	if err := h.resolveAttachmentFiles(form, req.Attachments); err != nil {
		return err
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		uni, err := helper.ResolveOneBySlug[universityModel.UniversityModel](tx, "university_slug", req.University)
		if err != nil {
			return err
		}
		if uni == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown university")
		}
		m.CourseUniversityID = uni.UniversityID

		// The slug base folds the university name in so two universities can
		// offer the same course name.
		slug, err := helper.EnsureUniqueSlug(tx, "courses", "course_slug",
			m.CourseName+" "+uni.UniversityName, "course")
		if err != nil {
			return err
		}
		m.CourseSlug = slug

		lvl, err := helper.ResolveOneBySlug[levelModel.LevelModel](tx, "level_slug", req.Level)
		if err != nil {
			return err
		}
		if lvl != nil {
			m.CourseLevelID = &lvl.LevelID
		}

		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if req.Disciplines != nil {
			resolved, err := helper.ResolveBySlugs[disciplineModel.DisciplineModel](tx, "discipline_slug", *req.Disciplines)
			if err != nil {
				return err
			}
			if err := helper.ReplaceAssociation(tx, m, "CourseDisciplines", resolved); err != nil {
				return err
			}
		}
		_, err = helper.ReconcileChildren(tx, "course_attachment_course_id", m.CourseID,
			cDTO.AttachmentRows(m.CourseID, req.Attachments))
		return err
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create course")
	}

	created, err := h.findBySlug(m.CourseSlug, true)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created",
		"data":    cDTO.NewCourseResponse(created),
	})
}

// PUT/PATCH /api/course/:slug/update
func (h *CourseController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), false)
	if err != nil {
		return err
	}

	var req cDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	var form *multipart.Form
	if helper.IsMultipart(c) {
		form, _ = c.MultipartForm()
		if form != nil {
			req.Disciplines = helper.DecodeJSONSlice[string](form.Value["disciplines"])
			req.Attachments = helper.DecodeJSONSlice[cDTO.AttachmentItem](form.Value["attachments"])
		}
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)

	var oldOG string
	if fh := helper.TryFormFile(c, "og_image"); fh != nil {
		url, err := h.Store.SaveImage("course/og", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not store OG image")
		}
		if m.CourseOGImageURL != nil {
			oldOG = *m.CourseOGImageURL
		}
		m.CourseOGImageURL = &url
	}
	if err := h.resolveAttachmentFiles(form, req.Attachments); err != nil {
		return err
	}

	var removedAttachments []cModel.CourseAttachmentModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.University != nil {
			uni, err := helper.ResolveOneBySlug[universityModel.UniversityModel](tx, "university_slug", *req.University)
			if err != nil {
				return err
			}
			if uni == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown university")
			}
			m.CourseUniversityID = uni.UniversityID
		}
		if req.Level != nil {
			lvl, err := helper.ResolveOneBySlug[levelModel.LevelModel](tx, "level_slug", *req.Level)
			if err != nil {
				return err
			}
			if lvl != nil {
				m.CourseLevelID = &lvl.LevelID
			} else {
				m.CourseLevelID = nil
			}
		}
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if req.Disciplines != nil {
			resolved, err := helper.ResolveBySlugs[disciplineModel.DisciplineModel](tx, "discipline_slug", *req.Disciplines)
			if err != nil {
				return err
			}
			if err := helper.ReplaceAssociation(tx, m, "CourseDisciplines", resolved); err != nil {
				return err
			}
		}
		removed, err := helper.ReconcileChildren(tx, "course_attachment_course_id", m.CourseID,
			cDTO.AttachmentRows(m.CourseID, req.Attachments))
		if err != nil {
			return err
		}
		removedAttachments = removed
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update course")
	}

	kept := map[string]bool{}
	if req.Attachments != nil {
		for _, a := range *req.Attachments {
			kept[a.File] = true
		}
	}
	for _, a := range removedAttachments {
		if !kept[a.CourseAttachmentFileURL] {
			storage.BestEffortDelete(h.Store, a.CourseAttachmentFileURL)
		}
	}
	if oldOG != "" {
		storage.BestEffortDelete(h.Store, oldOG)
	}

	updated, err := h.findBySlug(m.CourseSlug, true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Course updated", "data": cDTO.NewCourseResponse(updated)})
}

// DELETE /api/course/:slug/delete
func (h *CourseController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), true)
	if err != nil {
		return err
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Association("CourseDisciplines").Clear(); err != nil {
			return err
		}
		if err := tx.Where("course_attachment_course_id = ?", m.CourseID).
			Delete(&cModel.CourseAttachmentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cModel.CourseModel{}, "course_id = ?", m.CourseID).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete course")
	}

	if m.CourseOGImageURL != nil {
		storage.BestEffortDelete(h.Store, *m.CourseOGImageURL)
	}
	for _, a := range m.CourseAttachments {
		storage.BestEffortDelete(h.Store, a.CourseAttachmentFileURL)
	}
	return c.JSON(fiber.Map{"message": "Course deleted", "id": m.CourseID})
}

/* ===================== HELPERS ===================== */

func (h *CourseController) findBySlug(slug string, full bool) (*cModel.CourseModel, error) {
	dbq := h.DB.Where("course_slug = ?", slug)
	if full {
		dbq = dbq.
			Preload("CourseUniversity").
			Preload("CourseLevel").
			Preload("CourseDisciplines").
			Preload("CourseAttachments")
	}
	var m cModel.CourseModel
	if err := dbq.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch course")
	}
	return &m, nil
}

func (h *CourseController) applyOGImage(c *fiber.Ctx, m *cModel.CourseModel) error {
	if fh := helper.TryFormFile(c, "og_image"); fh != nil {
		url, err := h.Store.SaveImage("course/og", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not store OG image")
		}
		m.CourseOGImageURL = &url
	}
	return nil
}

// resolveAttachmentFiles fills attachment file URLs from indexed form files
// (attachments_0_file, attachments_1_file, ...). Attachments may be any file
// type, so SaveFile is used rather than the image pipeline.
func (h *CourseController) resolveAttachmentFiles(form *multipart.Form, items *[]cDTO.AttachmentItem) error {
	if form == nil || items == nil {
		return nil
	}
	for i := range *items {
		fh := helper.IndexedFormFile(form, "attachments", i, "file")
		if fh == nil {
			continue
		}
		url, err := h.Store.SaveFile("course/attachments", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not store attachment")
		}
		(*items)[i].File = url
	}
	return nil
}
