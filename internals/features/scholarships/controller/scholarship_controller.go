package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "schoolinfo_backend/internals/features/courses/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	sDTO "schoolinfo_backend/internals/features/scholarships/dto"
	sModel "schoolinfo_backend/internals/features/scholarships/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
	helper "schoolinfo_backend/internals/helpers"
	"schoolinfo_backend/internals/helpers/storage"
)

type ScholarshipController struct {
	DB    *gorm.DB
	Store storage.FileStore
}

func NewScholarshipController(db *gorm.DB, store storage.FileStore) *ScholarshipController {
	return &ScholarshipController{DB: db, Store: store}
}

/* ===================== HANDLERS ===================== */

// GET /api/scholarship/
func (h *ScholarshipController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"published_date": "scholarship_published_date",
		"created_at":     "scholarship_created_at",
		"title":          "lower(scholarship_title)",
	}, "-published_date")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&sModel.ScholarshipModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		dbq = dbq.Where(
			"lower(scholarship_title) LIKE lower(?) OR lower(scholarship_organizer_custom) LIKE lower(?)",
			like, like,
		)
	}
	if l := strings.TrimSpace(c.Query("level")); l != "" {
		dbq = dbq.Where("scholarship_level_id IN (?)",
			h.DB.Model(&levelModel.LevelModel{}).Select("level_id").Where("level_slug = ?", l))
	}
	if u := strings.TrimSpace(c.Query("university")); u != "" {
		dbq = dbq.Where("scholarship_university_id IN (?)",
			h.DB.Model(&universityModel.UniversityModel{}).Select("university_id").Where("university_slug = ?", u))
	}
	if f := strings.TrimSpace(c.Query("featured")); f != "" {
		dbq = dbq.Where("scholarship_featured = ?", f == "true" || f == "1")
	}
	if a := strings.TrimSpace(c.Query("active")); a == "true" || a == "1" {
		today := time.Now().Format("2006-01-02")
		dbq = dbq.Where("scholarship_active_from <= ? AND scholarship_active_until >= ?", today, today)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count scholarships")
	}
	var rows []sModel.ScholarshipModel
	if err := dbq.
		Preload("ScholarshipOrganizerSchool").
		Preload("ScholarshipOrganizerUniversity").
		Preload("ScholarshipLevel").
		Preload("ScholarshipUniversity").
		Preload("ScholarshipCourses").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch scholarships")
	}

	items := make([]*sDTO.ScholarshipResponse, 0, len(rows))
	for i := range rows {
		items = append(items, sDTO.NewScholarshipResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/scholarship/:slug
func (h *ScholarshipController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sDTO.NewScholarshipResponse(m)})
}

// POST /api/scholarship/create  (JSON or multipart; attachment file optional)
func (h *ScholarshipController) Create(c *fiber.Ctx) error {
	var req sDTO.CreateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if helper.IsMultipart(c) {
		if form, _ := c.MultipartForm(); form != nil {
			req.Courses = helper.DecodeJSONSlice[string](form.Value["courses"])
		}
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.HasOrganizer() {
		return helper.FieldError(c, "organizer", "Specify at least one organizer: school, university, or custom.")
	}

	m := req.ToModel()
	if fh := helper.TryFormFile(c, "attachment"); fh != nil {
		url, err := h.Store.SaveFile("scholarships/attachments", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not store attachment")
		}
		m.ScholarshipAttachmentURL = &url
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "scholarships", "scholarship_slug", m.ScholarshipTitle, "scholarship")
		if err != nil {
			return err
		}
		m.ScholarshipSlug = slug

		if err := h.resolveRefs(tx, m,
			optional(req.OrganizerSchool), optional(req.OrganizerUniversity),
			optional(req.Level), optional(req.University)); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return h.replaceCourses(tx, m, req.Courses)
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create scholarship")
	}

	created, err := h.findBySlug(m.ScholarshipSlug, true)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Scholarship created",
		"data":    sDTO.NewScholarshipResponse(created),
	})
}

// PUT/PATCH /api/scholarship/:slug/update
func (h *ScholarshipController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), false)
	if err != nil {
		return err
	}
	var req sDTO.UpdateScholarshipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if helper.IsMultipart(c) {
		if form, _ := c.MultipartForm(); form != nil {
			req.Courses = helper.DecodeJSONSlice[string](form.Value["courses"])
		}
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)

	var oldAttachment string
	if fh := helper.TryFormFile(c, "attachment"); fh != nil {
		url, err := h.Store.SaveFile("scholarships/attachments", fh)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not store attachment")
		}
		if m.ScholarshipAttachmentURL != nil {
			oldAttachment = *m.ScholarshipAttachmentURL
		}
		m.ScholarshipAttachmentURL = &url
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.resolveRefs(tx, m,
			req.OrganizerSchool, req.OrganizerUniversity, req.Level, req.University); err != nil {
			return err
		}
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		return h.replaceCourses(tx, m, req.Courses)
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update scholarship")
	}
	if oldAttachment != "" {
		storage.BestEffortDelete(h.Store, oldAttachment)
	}

	updated, err := h.findBySlug(m.ScholarshipSlug, true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Scholarship updated", "data": sDTO.NewScholarshipResponse(updated)})
}

// DELETE /api/scholarship/:slug/delete
func (h *ScholarshipController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), false)
	if err != nil {
		return err
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Association("ScholarshipCourses").Clear(); err != nil {
			return err
		}
		return tx.Delete(&sModel.ScholarshipModel{}, "scholarship_id = ?", m.ScholarshipID).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete scholarship")
	}
	if m.ScholarshipAttachmentURL != nil {
		storage.BestEffortDelete(h.Store, *m.ScholarshipAttachmentURL)
	}
	return c.JSON(fiber.Map{"message": "Scholarship deleted", "id": m.ScholarshipID})
}

/* ===================== HELPERS ===================== */

func (h *ScholarshipController) findBySlug(slug string, full bool) (*sModel.ScholarshipModel, error) {
	dbq := h.DB.Where("scholarship_slug = ?", slug)
	if full {
		dbq = dbq.
			Preload("ScholarshipOrganizerSchool").
			Preload("ScholarshipOrganizerUniversity").
			Preload("ScholarshipLevel").
			Preload("ScholarshipUniversity").
			Preload("ScholarshipCourses")
	}
	var m sModel.ScholarshipModel
	if err := dbq.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Scholarship not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch scholarship")
	}
	return &m, nil
}

func (h *ScholarshipController) resolveRefs(tx *gorm.DB, m *sModel.ScholarshipModel, orgSchool, orgUniversity, level, university *string) error {
	if orgSchool != nil {
		s, err := helper.ResolveOneBySlug[schoolModel.SchoolModel](tx, "school_slug", *orgSchool)
		if err != nil {
			return err
		}
		if s != nil {
			m.ScholarshipOrganizerSchoolID = &s.SchoolID
		} else {
			m.ScholarshipOrganizerSchoolID = nil
		}
	}
	if orgUniversity != nil {
		u, err := helper.ResolveOneBySlug[universityModel.UniversityModel](tx, "university_slug", *orgUniversity)
		if err != nil {
			return err
		}
		if u != nil {
			m.ScholarshipOrganizerUniversityID = &u.UniversityID
		} else {
			m.ScholarshipOrganizerUniversityID = nil
		}
	}
	if level != nil {
		l, err := helper.ResolveOneBySlug[levelModel.LevelModel](tx, "level_slug", *level)
		if err != nil {
			return err
		}
		if l != nil {
			m.ScholarshipLevelID = &l.LevelID
		} else {
			m.ScholarshipLevelID = nil
		}
	}
	if university != nil {
		u, err := helper.ResolveOneBySlug[universityModel.UniversityModel](tx, "university_slug", *university)
		if err != nil {
			return err
		}
		if u != nil {
			m.ScholarshipUniversityID = &u.UniversityID
		} else {
			m.ScholarshipUniversityID = nil
		}
	}
	return nil
}

func (h *ScholarshipController) replaceCourses(tx *gorm.DB, m *sModel.ScholarshipModel, slugs *[]string) error {
	if slugs == nil {
		return nil
	}
	resolved, err := helper.ResolveBySlugs[courseModel.CourseModel](tx, "course_slug", *slugs)
	if err != nil {
		return err
	}
	return helper.ReplaceAssociation(tx, m, "ScholarshipCourses", resolved)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
