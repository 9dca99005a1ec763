package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aDTO "schoolinfo_backend/internals/features/admissions/dto"
	aModel "schoolinfo_backend/internals/features/admissions/model"
	courseModel "schoolinfo_backend/internals/features/courses/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
	helper "schoolinfo_backend/internals/helpers"
)

type AdmissionController struct {
	DB *gorm.DB
}

func NewAdmissionController(db *gorm.DB) *AdmissionController {
	return &AdmissionController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /api/admission/
func (h *AdmissionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"published_date": "admission_published_date",
		"created_at":     "admission_created_at",
		"title":          "lower(admission_title)",
	}, "-published_date")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&aModel.AdmissionModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		dbq = dbq.Where("lower(admission_title) LIKE lower(?)", "%"+q+"%")
	}
	if s := strings.TrimSpace(c.Query("school")); s != "" {
		dbq = dbq.Where("admission_school_id IN (?)",
			h.DB.Model(&schoolModel.SchoolModel{}).Select("school_id").Where("school_slug = ?", s))
	}
	if l := strings.TrimSpace(c.Query("level")); l != "" {
		dbq = dbq.Where("admission_level_id IN (?)",
			h.DB.Model(&levelModel.LevelModel{}).Select("level_id").Where("level_slug = ?", l))
	}
	if u := strings.TrimSpace(c.Query("university")); u != "" {
		dbq = dbq.Where("admission_university_id IN (?)",
			h.DB.Model(&universityModel.UniversityModel{}).Select("university_id").Where("university_slug = ?", u))
	}
	if f := strings.TrimSpace(c.Query("featured")); f != "" {
		dbq = dbq.Where("admission_featured = ?", f == "true" || f == "1")
	}
	if a := strings.TrimSpace(c.Query("active")); a == "true" || a == "1" {
		today := time.Now().Format("2006-01-02")
		dbq = dbq.Where("admission_active_from <= ? AND admission_active_until >= ?", today, today)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count admissions")
	}
	var rows []aModel.AdmissionModel
	if err := dbq.
		Preload("AdmissionSchool").
		Preload("AdmissionLevel").
		Preload("AdmissionUniversity").
		Preload("AdmissionCourses").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch admissions")
	}

	items := make([]*aDTO.AdmissionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, aDTO.NewAdmissionResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/admission/:slug
func (h *AdmissionController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": aDTO.NewAdmissionResponse(m)})
}

// POST /api/admission/create
func (h *AdmissionController) Create(c *fiber.Ctx) error {
	var req aDTO.CreateAdmissionRequest
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

	m := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		school, err := helper.ResolveOneBySlug[schoolModel.SchoolModel](tx, "school_slug", req.School)
		if err != nil {
			return err
		}
		if school == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown school")
		}
		m.AdmissionSchoolID = school.SchoolID

		slug, err := helper.EnsureUniqueSlug(tx, "admissions", "admission_slug", m.AdmissionTitle, "admission")
		if err != nil {
			return err
		}
		m.AdmissionSlug = slug

		if err := h.resolveOptionalRefs(tx, m, optional(req.Level), optional(req.University)); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return h.replaceCourses(tx, m, req.Courses)
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create admission")
	}

	created, err := h.findBySlug(m.AdmissionSlug, true)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admission created",
		"data":    aDTO.NewAdmissionResponse(created),
	})
}

// PUT/PATCH /api/admission/:slug/update
func (h *AdmissionController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), false)
	if err != nil {
		return err
	}
	var req aDTO.UpdateAdmissionRequest
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

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.School != nil {
			school, err := helper.ResolveOneBySlug[schoolModel.SchoolModel](tx, "school_slug", *req.School)
			if err != nil {
				return err
			}
			if school == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown school")
			}
			m.AdmissionSchoolID = school.SchoolID
		}
		if err := h.resolveOptionalRefs(tx, m, req.Level, req.University); err != nil {
			return err
		}
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		return h.replaceCourses(tx, m, req.Courses)
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update admission")
	}

	updated, err := h.findBySlug(m.AdmissionSlug, true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Admission updated", "data": aDTO.NewAdmissionResponse(updated)})
}

// DELETE /api/admission/:slug/delete
func (h *AdmissionController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), false)
	if err != nil {
		return err
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Association("AdmissionCourses").Clear(); err != nil {
			return err
		}
		return tx.Delete(&aModel.AdmissionModel{}, "admission_id = ?", m.AdmissionID).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete admission")
	}
	return c.JSON(fiber.Map{"message": "Admission deleted", "id": m.AdmissionID})
}

/* ===================== HELPERS ===================== */

func (h *AdmissionController) findBySlug(slug string, full bool) (*aModel.AdmissionModel, error) {
	dbq := h.DB.Where("admission_slug = ?", slug)
	if full {
		dbq = dbq.
			Preload("AdmissionSchool").
			Preload("AdmissionLevel").
			Preload("AdmissionUniversity").
			Preload("AdmissionCourses")
	}
	var m aModel.AdmissionModel
	if err := dbq.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Admission not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch admission")
	}
	return &m, nil
}

func (h *AdmissionController) resolveOptionalRefs(tx *gorm.DB, m *aModel.AdmissionModel, level, university *string) error {
	if level != nil {
		l, err := helper.ResolveOneBySlug[levelModel.LevelModel](tx, "level_slug", *level)
		if err != nil {
			return err
		}
		if l != nil {
			m.AdmissionLevelID = &l.LevelID
		} else {
			m.AdmissionLevelID = nil
		}
	}
	if university != nil {
		u, err := helper.ResolveOneBySlug[universityModel.UniversityModel](tx, "university_slug", *university)
		if err != nil {
			return err
		}
		if u != nil {
			m.AdmissionUniversityID = &u.UniversityID
		} else {
			m.AdmissionUniversityID = nil
		}
	}
	return nil
}

func (h *AdmissionController) replaceCourses(tx *gorm.DB, m *aModel.AdmissionModel, slugs *[]string) error {
	if slugs == nil {
		return nil
	}
	resolved, err := helper.ResolveBySlugs[courseModel.CourseModel](tx, "course_slug", *slugs)
	if err != nil {
		return err
	}
	return helper.ReplaceAssociation(tx, m, "AdmissionCourses", resolved)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
