package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "schoolinfo_backend/internals/features/courses/model"
	districtModel "schoolinfo_backend/internals/features/districts/model"
	facilityModel "schoolinfo_backend/internals/features/facilities/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	sDTO "schoolinfo_backend/internals/features/schools/dto"
	sModel "schoolinfo_backend/internals/features/schools/model"
	typeModel "schoolinfo_backend/internals/features/types/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
	helper "schoolinfo_backend/internals/helpers"
	"schoolinfo_backend/internals/helpers/storage"
)

type SchoolController struct {
	DB    *gorm.DB
	Store storage.FileStore
}

func NewSchoolController(db *gorm.DB, store storage.FileStore) *SchoolController {
	return &SchoolController{DB: db, Store: store}
}

/* ===================== PUBLIC HANDLERS ===================== */

// GET /api/school/
func (h *SchoolController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"created_at": "school_created_at",
		"name":       "lower(school_name)",
		"priority":   "school_priority",
	}, "priority")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&sModel.SchoolModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		dbq = dbq.Where(
			"lower(school_name) LIKE lower(?) OR lower(school_address) LIKE lower(?)",
			like, like,
		)
	}
	if d := strings.TrimSpace(c.Query("district")); d != "" {
		dbq = dbq.Where("school_district_id IN (?)",
			h.DB.Model(&districtModel.DistrictModel{}).Select("district_id").Where("district_slug = ?", d))
	}
	if l := strings.TrimSpace(c.Query("level")); l != "" {
		dbq = dbq.Where("school_level_id IN (?)",
			h.DB.Model(&levelModel.LevelModel{}).Select("level_id").Where("level_slug = ?", l))
	}
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		dbq = dbq.Where("school_type_id IN (?)",
			h.DB.Model(&typeModel.TypeModel{}).Select("type_id").Where("type_slug = ?", t))
	}
	if u := strings.TrimSpace(c.Query("university")); u != "" {
		dbq = dbq.Where("school_id IN (?)",
			h.DB.Table("school_universities").Select("school_id").Where("university_id IN (?)",
				h.DB.Model(&universityModel.UniversityModel{}).Select("university_id").Where("university_slug = ?", u)))
	}
	if cs := strings.TrimSpace(c.Query("course")); cs != "" {
		dbq = dbq.Where("school_id IN (?)",
			h.DB.Model(&sModel.SchoolCourseModel{}).Select("school_course_school_id").Where("school_course_course_id IN (?)",
				h.DB.Model(&courseModel.CourseModel{}).Select("course_id").Where("course_slug = ?", cs)))
	}
	if f := strings.TrimSpace(c.Query("featured")); f != "" {
		dbq = dbq.Where("school_featured = ?", f == "true" || f == "1")
	}
	if v := strings.TrimSpace(c.Query("verification")); v != "" {
		dbq = dbq.Where("school_verification = ?", v == "true" || v == "1")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count schools")
	}
	var rows []sModel.SchoolModel
	if err := dbq.
		Preload("SchoolDistrict").
		Preload("SchoolLevel").
		Preload("SchoolType").
		Preload("SchoolFacilities").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch schools")
	}

	items := make([]*sDTO.SchoolResponse, 0, len(rows))
	for i := range rows {
		items = append(items, sDTO.NewSchoolResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/school/dropdown  (minimal list for pickers, no paging)
func (h *SchoolController) Dropdown(c *fiber.Ctx) error {
	var rows []sModel.SchoolModel
	if err := h.DB.Model(&sModel.SchoolModel{}).
		Select("school_id", "school_name", "school_slug").
		Order("lower(school_name) ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch schools")
	}
	items := make([]sDTO.SchoolDropdownItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, sDTO.SchoolDropdownItem{ID: r.SchoolID, Name: r.SchoolName, Slug: r.SchoolSlug})
	}
	return c.JSON(fiber.Map{"data": items})
}

// GET /api/school/:slug
func (h *SchoolController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sDTO.NewSchoolResponse(m)})
}

/* ===================== ADMIN HANDLERS ===================== */

// POST /api/school/create  (JSON or multipart)
func (h *SchoolController) Create(c *fiber.Ctx) error {
	var req sDTO.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	form := h.decodeCreateForm(c, &req)
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if h.collectReplacedUploads(c, m) == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
	}
	if err := h.resolveChildFiles(form, req.Gallery, req.Brochures, req.Messages); err != nil {
		return err
	}

	upd := createAsUpdate(&req)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "schools", "school_slug", m.SchoolName, "school")
		if err != nil {
			return err
		}
		m.SchoolSlug = slug
		if err := h.syncRelations(tx, m, upd); err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := h.syncAssociations(tx, m, upd); err != nil {
			return err
		}
		_, err = h.reconcileChildren(tx, m, upd)
		return err
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create school")
	}

	created, err := h.findBySlug(m.SchoolSlug, true)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "School created",
		"data":    sDTO.NewSchoolResponse(created),
	})
}

// PUT/PATCH /api/school/:slug/update
func (h *SchoolController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), false)
	if err != nil {
		return err
	}
	var req sDTO.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	form := h.decodeUpdateForm(c, &req)
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	return h.saveSchool(c, m, &req, form)
}

// DELETE /api/school/:slug/delete
func (h *SchoolController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"), true)
	if err != nil {
		return err
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Association("SchoolFacilities").Clear(); err != nil {
			return err
		}
		if err := tx.Model(m).Association("SchoolUniversities").Clear(); err != nil {
			return err
		}
		for _, child := range []struct {
			column string
			model  any
		}{
			{"school_phone_school_id", &sModel.SchoolPhoneModel{}},
			{"school_email_school_id", &sModel.SchoolEmailModel{}},
			{"school_gallery_school_id", &sModel.SchoolGalleryModel{}},
			{"school_brochure_school_id", &sModel.SchoolBrochureModel{}},
			{"school_social_media_school_id", &sModel.SchoolSocialMediaModel{}},
			{"school_faq_school_id", &sModel.SchoolFAQModel{}},
			{"school_message_school_id", &sModel.SchoolMessageModel{}},
			{"school_course_school_id", &sModel.SchoolCourseModel{}},
		} {
			if err := tx.Where(child.column+" = ?", m.SchoolID).Delete(child.model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&sModel.SchoolModel{}, "school_id = ?", m.SchoolID).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete school")
	}

	for _, url := range []*string{m.SchoolLogoURL, m.SchoolCoverPhotoURL, m.SchoolOGImageURL} {
		if url != nil {
			storage.BestEffortDelete(h.Store, *url)
		}
	}
	for _, g := range m.SchoolGallery {
		storage.BestEffortDelete(h.Store, g.SchoolGalleryImageURL)
	}
	for _, b := range m.SchoolBrochures {
		storage.BestEffortDelete(h.Store, b.SchoolBrochureFileURL)
	}
	for _, msg := range m.SchoolMessages {
		if msg.SchoolMessageImageURL != nil {
			storage.BestEffortDelete(h.Store, *msg.SchoolMessageImageURL)
		}
	}
	return c.JSON(fiber.Map{"message": "School deleted", "id": m.SchoolID})
}

/* ===================== DASHBOARD HANDLERS ===================== */

// GET /api/school/me
func (h *SchoolController) Me(c *fiber.Ctx) error {
	m, err := h.findOwn(c)
	if err != nil {
		return err
	}
	full, err := h.findBySlug(m.SchoolSlug, true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sDTO.NewSchoolResponse(full)})
}

// PUT/PATCH /api/school/me/update
func (h *SchoolController) UpdateMe(c *fiber.Ctx) error {
	m, err := h.findOwn(c)
	if err != nil {
		return err
	}
	var own sDTO.UpdateOwnSchoolRequest
	if err := c.BodyParser(&own); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	var form *multipart.Form
	if helper.IsMultipart(c) {
		form, _ = c.MultipartForm()
		if form != nil {
			own.Phones = helper.DecodeJSONSlice[sDTO.PhoneItem](form.Value["phones"])
			own.Emails = helper.DecodeJSONSlice[sDTO.EmailItem](form.Value["emails"])
			own.Gallery = helper.DecodeJSONSlice[sDTO.GalleryItem](form.Value["gallery"])
			own.Brochures = helper.DecodeJSONSlice[sDTO.BrochureItem](form.Value["brochures"])
			own.SocialMedia = helper.DecodeJSONSlice[sDTO.SocialMediaItem](form.Value["social_media"])
			own.FAQs = helper.DecodeJSONSlice[sDTO.FAQItem](form.Value["faqs"])
			own.Messages = helper.DecodeJSONSlice[sDTO.MessageItem](form.Value["messages"])
		}
	}
	if err := helper.Validate.Struct(own); err != nil {
		return helper.JsonValidationError(c, err)
	}
	return h.saveSchool(c, m, own.ToAdminRequest(), form)
}

/* ===================== HELPERS ===================== */

func (h *SchoolController) findBySlug(slug string, full bool) (*sModel.SchoolModel, error) {
	dbq := h.DB.Where("school_slug = ?", slug)
	if full {
		dbq = dbq.
			Preload("SchoolDistrict").
			Preload("SchoolLevel").
			Preload("SchoolType").
			Preload("SchoolFacilities").
			Preload("SchoolUniversities").
			Preload("SchoolPhones").
			Preload("SchoolEmails").
			Preload("SchoolGallery").
			Preload("SchoolBrochures").
			Preload("SchoolSocialMedia").
			Preload("SchoolFAQs").
			Preload("SchoolMessages").
			Preload("SchoolCourses").
			Preload("SchoolCourses.SchoolCourseCourse")
	}
	var m sModel.SchoolModel
	if err := dbq.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "School not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch school")
	}
	return &m, nil
}

// findOwn resolves the school bound to the authenticated account.
func (h *SchoolController) findOwn(c *fiber.Ctx) (*sModel.SchoolModel, error) {
	userID, ok := c.Locals("user_id").(uuid.UUID)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
	}
	var m sModel.SchoolModel
	if err := h.DB.Where("school_user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No school is linked to this account")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch school")
	}
	return &m, nil
}

func (h *SchoolController) decodeCreateForm(c *fiber.Ctx, req *sDTO.CreateSchoolRequest) *multipart.Form {
	if !helper.IsMultipart(c) {
		return nil
	}
	form, _ := c.MultipartForm()
	if form == nil {
		return nil
	}
	req.Facilities = helper.DecodeJSONSlice[string](form.Value["facilities"])
	req.Universities = helper.DecodeJSONSlice[string](form.Value["universities"])
	req.Phones = helper.DecodeJSONSlice[sDTO.PhoneItem](form.Value["phones"])
	req.Emails = helper.DecodeJSONSlice[sDTO.EmailItem](form.Value["emails"])
	req.Gallery = helper.DecodeJSONSlice[sDTO.GalleryItem](form.Value["gallery"])
	req.Brochures = helper.DecodeJSONSlice[sDTO.BrochureItem](form.Value["brochures"])
	req.SocialMedia = helper.DecodeJSONSlice[sDTO.SocialMediaItem](form.Value["social_media"])
	req.FAQs = helper.DecodeJSONSlice[sDTO.FAQItem](form.Value["faqs"])
	req.Messages = helper.DecodeJSONSlice[sDTO.MessageItem](form.Value["messages"])
	req.Courses = helper.DecodeJSONSlice[sDTO.SchoolCourseItem](form.Value["school_courses"])
	return form
}

func (h *SchoolController) decodeUpdateForm(c *fiber.Ctx, req *sDTO.UpdateSchoolRequest) *multipart.Form {
	if !helper.IsMultipart(c) {
		return nil
	}
	form, _ := c.MultipartForm()
	if form == nil {
		return nil
	}
	req.Facilities = helper.DecodeJSONSlice[string](form.Value["facilities"])
	req.Universities = helper.DecodeJSONSlice[string](form.Value["universities"])
	req.Phones = helper.DecodeJSONSlice[sDTO.PhoneItem](form.Value["phones"])
	req.Emails = helper.DecodeJSONSlice[sDTO.EmailItem](form.Value["emails"])
	req.Gallery = helper.DecodeJSONSlice[sDTO.GalleryItem](form.Value["gallery"])
	req.Brochures = helper.DecodeJSONSlice[sDTO.BrochureItem](form.Value["brochures"])
	req.SocialMedia = helper.DecodeJSONSlice[sDTO.SocialMediaItem](form.Value["social_media"])
	req.FAQs = helper.DecodeJSONSlice[sDTO.FAQItem](form.Value["faqs"])
	req.Messages = helper.DecodeJSONSlice[sDTO.MessageItem](form.Value["messages"])
	req.Courses = helper.DecodeJSONSlice[sDTO.SchoolCourseItem](form.Value["school_courses"])
	return form
}

// createAsUpdate reshapes a create payload so relation syncing shares one code
// path with updates.
func createAsUpdate(req *sDTO.CreateSchoolRequest) *sDTO.UpdateSchoolRequest {
	return &sDTO.UpdateSchoolRequest{
		District:     optional(req.District),
		Level:        optional(req.Level),
		Type:         optional(req.Type),
		Facilities:   req.Facilities,
		Universities: req.Universities,
		Phones:       req.Phones,
		Emails:       req.Emails,
		Gallery:      req.Gallery,
		Brochures:    req.Brochures,
		SocialMedia:  req.SocialMedia,
		FAQs:         req.FAQs,
		Messages:     req.Messages,
		Courses:      req.Courses,
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// saveSchool is the shared update path for admin and dashboard edits.
func (h *SchoolController) saveSchool(c *fiber.Ctx, m *sModel.SchoolModel, req *sDTO.UpdateSchoolRequest, form *multipart.Form) error {
	req.ApplyToModel(m)

	replaced := h.collectReplacedUploads(c, m)
	if replaced == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
	}
	if err := h.resolveChildFiles(form, req.Gallery, req.Brochures, req.Messages); err != nil {
		return err
	}

	var removedFiles []string
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.syncRelations(tx, m, req); err != nil {
			return err
		}
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if err := h.syncAssociations(tx, m, req); err != nil {
			return err
		}
		removed, err := h.reconcileChildren(tx, m, req)
		if err != nil {
			return err
		}
		removedFiles = removed
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update school")
	}

	kept := keptFileSet(req)
	for _, url := range removedFiles {
		if !kept[url] {
			storage.BestEffortDelete(h.Store, url)
		}
	}
	for _, old := range replaced {
		storage.BestEffortDelete(h.Store, old)
	}

	updated, err := h.findBySlug(m.SchoolSlug, true)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "School updated", "data": sDTO.NewSchoolResponse(updated)})
}

// syncRelations resolves the single-valued relation slugs. Unknown or blank
// slugs clear the link.
func (h *SchoolController) syncRelations(tx *gorm.DB, m *sModel.SchoolModel, req *sDTO.UpdateSchoolRequest) error {
	if req.District != nil {
		d, err := helper.ResolveOneBySlug[districtModel.DistrictModel](tx, "district_slug", *req.District)
		if err != nil {
			return err
		}
		if d != nil {
			m.SchoolDistrictID = &d.DistrictID
		} else {
			m.SchoolDistrictID = nil
		}
	}
	if req.Level != nil {
		l, err := helper.ResolveOneBySlug[levelModel.LevelModel](tx, "level_slug", *req.Level)
		if err != nil {
			return err
		}
		if l != nil {
			m.SchoolLevelID = &l.LevelID
		} else {
			m.SchoolLevelID = nil
		}
	}
	if req.Type != nil {
		t, err := helper.ResolveOneBySlug[typeModel.TypeModel](tx, "type_slug", *req.Type)
		if err != nil {
			return err
		}
		if t != nil {
			m.SchoolTypeID = &t.TypeID
		} else {
			m.SchoolTypeID = nil
		}
	}
	return nil
}

// syncAssociations replaces the facility and university sets. Must run after
// the row exists.
func (h *SchoolController) syncAssociations(tx *gorm.DB, m *sModel.SchoolModel, req *sDTO.UpdateSchoolRequest) error {
	if req.Facilities != nil {
		resolved, err := helper.ResolveBySlugs[facilityModel.FacilityModel](tx, "facility_slug", *req.Facilities)
		if err != nil {
			return err
		}
		if err := helper.ReplaceAssociation(tx, m, "SchoolFacilities", resolved); err != nil {
			return err
		}
	}
	if req.Universities != nil {
		resolved, err := helper.ResolveBySlugs[universityModel.UniversityModel](tx, "university_slug", *req.Universities)
		if err != nil {
			return err
		}
		if err := helper.ReplaceAssociation(tx, m, "SchoolUniversities", resolved); err != nil {
			return err
		}
	}
	return nil
}

// reconcileChildren replaces every child collection the payload carries and
// returns the file URLs whose rows were removed.
func (h *SchoolController) reconcileChildren(tx *gorm.DB, m *sModel.SchoolModel, req *sDTO.UpdateSchoolRequest) ([]string, error) {
	var removedFiles []string

	if _, err := helper.ReconcileChildren(tx, "school_phone_school_id", m.SchoolID,
		sDTO.PhoneRows(m.SchoolID, req.Phones)); err != nil {
		return nil, err
	}
	if _, err := helper.ReconcileChildren(tx, "school_email_school_id", m.SchoolID,
		sDTO.EmailRows(m.SchoolID, req.Emails)); err != nil {
		return nil, err
	}

	removedGallery, err := helper.ReconcileChildren(tx, "school_gallery_school_id", m.SchoolID,
		sDTO.GalleryRows(m.SchoolID, req.Gallery))
	if err != nil {
		return nil, err
	}
	for _, g := range removedGallery {
		removedFiles = append(removedFiles, g.SchoolGalleryImageURL)
	}

	removedBrochures, err := helper.ReconcileChildren(tx, "school_brochure_school_id", m.SchoolID,
		sDTO.BrochureRows(m.SchoolID, req.Brochures))
	if err != nil {
		return nil, err
	}
	for _, b := range removedBrochures {
		removedFiles = append(removedFiles, b.SchoolBrochureFileURL)
	}

	if _, err := helper.ReconcileChildren(tx, "school_social_media_school_id", m.SchoolID,
		sDTO.SocialMediaRows(m.SchoolID, req.SocialMedia)); err != nil {
		return nil, err
	}
	if _, err := helper.ReconcileChildren(tx, "school_faq_school_id", m.SchoolID,
		sDTO.FAQRows(m.SchoolID, req.FAQs)); err != nil {
		return nil, err
	}

	removedMessages, err := helper.ReconcileChildren(tx, "school_message_school_id", m.SchoolID,
		sDTO.MessageRows(m.SchoolID, req.Messages))
	if err != nil {
		return nil, err
	}
	for _, msg := range removedMessages {
		if msg.SchoolMessageImageURL != nil {
			removedFiles = append(removedFiles, *msg.SchoolMessageImageURL)
		}
	}

	if req.Courses != nil {
		rows, err := h.courseRows(tx, m.SchoolID, *req.Courses)
		if err != nil {
			return nil, err
		}
		if _, err := helper.ReconcileChildren(tx, "school_course_school_id", m.SchoolID, &rows); err != nil {
			return nil, err
		}
	}
	return removedFiles, nil
}

// courseRows resolves course slugs into attributed link rows. Unknown slugs
// are dropped; duplicate slugs keep the first occurrence.
func (h *SchoolController) courseRows(tx *gorm.DB, schoolID uuid.UUID, items []sDTO.SchoolCourseItem) ([]sModel.SchoolCourseModel, error) {
	rows := make([]sModel.SchoolCourseModel, 0, len(items))
	seen := map[uuid.UUID]bool{}
	for _, it := range items {
		course, err := helper.ResolveOneBySlug[courseModel.CourseModel](tx, "course_slug", it.Course)
		if err != nil {
			return nil, err
		}
		if course == nil || seen[course.CourseID] {
			continue
		}
		seen[course.CourseID] = true
		row := sModel.SchoolCourseModel{
			SchoolCourseSchoolID:  schoolID,
			SchoolCourseCourseID:  course.CourseID,
			SchoolCourseFee:       it.Fee,
			SchoolCourseStatus:    it.Status,
			SchoolCourseAdminOpen: true,
		}
		if it.AdminOpen != nil {
			row.SchoolCourseAdminOpen = *it.AdminOpen
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func keptFileSet(req *sDTO.UpdateSchoolRequest) map[string]bool {
	kept := map[string]bool{}
	if req.Gallery != nil {
		for _, g := range *req.Gallery {
			kept[g.Image] = true
		}
	}
	if req.Brochures != nil {
		for _, b := range *req.Brochures {
			kept[b.File] = true
		}
	}
	if req.Messages != nil {
		for _, msg := range *req.Messages {
			kept[msg.Image] = true
		}
	}
	return kept
}

// collectReplacedUploads stores newly uploaded logo/cover/og images and
// returns the displaced URLs. A nil return signals a storage failure.
func (h *SchoolController) collectReplacedUploads(c *fiber.Ctx, m *sModel.SchoolModel) []string {
	replaced := []string{}
	slots := []struct {
		field string
		dir   string
		dst   **string
	}{
		{"logo", "school/logos", &m.SchoolLogoURL},
		{"cover_photo", "school/covers", &m.SchoolCoverPhotoURL},
		{"og_image", "school/og", &m.SchoolOGImageURL},
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

// resolveChildFiles fills gallery, brochure and message items from their
// indexed form files (gallery_0_image, brochures_0_file, messages_0_image).
func (h *SchoolController) resolveChildFiles(form *multipart.Form, gallery *[]sDTO.GalleryItem, brochures *[]sDTO.BrochureItem, messages *[]sDTO.MessageItem) error {
	if form == nil {
		return nil
	}
	if gallery != nil {
		for i := range *gallery {
			fh := helper.IndexedFormFile(form, "gallery", i, "image")
			if fh == nil {
				continue
			}
			url, err := h.Store.SaveImage("school/gallery", fh)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Could not store gallery image")
			}
			(*gallery)[i].Image = url
		}
	}
	if brochures != nil {
		for i := range *brochures {
			fh := helper.IndexedFormFile(form, "brochures", i, "file")
			if fh == nil {
				continue
			}
			url, err := h.Store.SaveFile("school/brochures", fh)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Could not store brochure")
			}
			(*brochures)[i].File = url
		}
	}
	if messages != nil {
		for i := range *messages {
			fh := helper.IndexedFormFile(form, "messages", i, "image")
			if fh == nil {
				continue
			}
			url, err := h.Store.SaveImage("school/messages", fh)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Could not store message image")
			}
			(*messages)[i].Image = url
		}
	}
	return nil
}
