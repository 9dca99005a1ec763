package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eDTO "schoolinfo_backend/internals/features/events/dto"
	eModel "schoolinfo_backend/internals/features/events/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
	helper "schoolinfo_backend/internals/helpers"
	"schoolinfo_backend/internals/helpers/storage"
)

type EventController struct {
	DB    *gorm.DB
	Store storage.FileStore
}

func NewEventController(db *gorm.DB, store storage.FileStore) *EventController {
	return &EventController{DB: db, Store: store}
}

/* ===================== HANDLERS ===================== */

// GET /api/event/
func (h *EventController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c)
	order, err := helper.SafeOrderClause(c, map[string]string{
		"event_date": "event_date",
		"created_at": "event_created_at",
		"title":      "lower(event_title)",
	}, "-event_date")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown ordering")
	}

	dbq := h.DB.Model(&eModel.EventModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		dbq = dbq.Where(
			"lower(event_title) LIKE lower(?) OR lower(event_venue) LIKE lower(?) OR lower(event_organizer_custom) LIKE lower(?)",
			like, like, like,
		)
	}
	if t := strings.TrimSpace(c.Query("event_type")); t != "" {
		dbq = dbq.Where("event_type = ?", t)
	}
	if r := strings.TrimSpace(c.Query("registration_type")); r != "" {
		dbq = dbq.Where("event_registration_type = ?", r)
	}
	if f := strings.TrimSpace(c.Query("featured")); f != "" {
		dbq = dbq.Where("event_featured = ?", f == "true" || f == "1")
	}
	if a := strings.TrimSpace(c.Query("is_active")); a != "" {
		dbq = dbq.Where("event_is_active = ?", a == "true" || a == "1")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count events")
	}
	var rows []eModel.EventModel
	if err := dbq.
		Preload("EventOrganizerSchool").
		Preload("EventOrganizerUniversity").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch events")
	}

	items := make([]*eDTO.EventResponse, 0, len(rows))
	for i := range rows {
		items = append(items, eDTO.NewEventResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items, "pagination": helper.BuildMeta(total, p)})
}

// GET /api/event/:slug
func (h *EventController) Detail(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": eDTO.NewEventResponse(m)})
}

// POST /api/event/create  (JSON or multipart; images optional)
func (h *EventController) Create(c *fiber.Ctx) error {
	var req eDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.HasOrganizer() {
		return helper.FieldError(c, "organizer", "Specify at least one organizer: school, university, or custom.")
	}
	if req.RegistrationType == eModel.RegistrationPaid && req.RegistrationPrice == nil {
		return helper.FieldError(c, "registration_price", "Registration price is required for paid events.")
	}

	m := req.ToModel()
	if h.collectReplacedUploads(c, m) == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := helper.EnsureUniqueSlug(tx, "events", "event_slug", m.EventTitle, "event")
		if err != nil {
			return err
		}
		m.EventSlug = slug
		if err := h.resolveOrganizers(tx, m, optional(req.OrganizerSchool), optional(req.OrganizerUniversity)); err != nil {
			return err
		}
		return tx.Create(m).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create event")
	}

	created, err := h.findBySlug(m.EventSlug)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Event created",
		"data":    eDTO.NewEventResponse(created),
	})
}

// PUT/PATCH /api/event/:slug/update
func (h *EventController) Update(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	var req eDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	req.ApplyToModel(m)
	if m.EventRegistrationType == eModel.RegistrationPaid && m.EventRegistrationPrice == nil {
		return helper.FieldError(c, "registration_price", "Registration price is required for paid events.")
	}
	if err := h.resolveOrganizers(h.DB, m, req.OrganizerSchool, req.OrganizerUniversity); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update event")
	}
	if !hasOrganizer(m) {
		return helper.FieldError(c, "organizer", "Specify at least one organizer: school, university, or custom.")
	}

	replaced := h.collectReplacedUploads(c, m)
	if replaced == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not store uploaded image")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(m).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update event")
	}
	for _, old := range replaced {
		storage.BestEffortDelete(h.Store, old)
	}

	updated, err := h.findBySlug(m.EventSlug)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Event updated", "data": eDTO.NewEventResponse(updated)})
}

// DELETE /api/event/:slug/delete
func (h *EventController) Delete(c *fiber.Ctx) error {
	m, err := h.findBySlug(c.Params("slug"))
	if err != nil {
		return err
	}
	if err := h.DB.Delete(&eModel.EventModel{}, "event_id = ?", m.EventID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete event")
	}
	for _, url := range []*string{m.EventFeaturedImageURL, m.EventBannerImageURL} {
		if url != nil {
			storage.BestEffortDelete(h.Store, *url)
		}
	}
	return c.JSON(fiber.Map{"message": "Event deleted", "id": m.EventID})
}

/* ===================== HELPERS ===================== */

func (h *EventController) findBySlug(slug string) (*eModel.EventModel, error) {
	var m eModel.EventModel
	if err := h.DB.
		Preload("EventOrganizerSchool").
		Preload("EventOrganizerUniversity").
		Where("event_slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch event")
	}
	return &m, nil
}

func (h *EventController) resolveOrganizers(tx *gorm.DB, m *eModel.EventModel, orgSchool, orgUniversity *string) error {
	if orgSchool != nil {
		s, err := helper.ResolveOneBySlug[schoolModel.SchoolModel](tx, "school_slug", *orgSchool)
		if err != nil {
			return err
		}
		if s != nil {
			m.EventOrganizerSchoolID = &s.SchoolID
		} else {
			m.EventOrganizerSchoolID = nil
		}
	}
	if orgUniversity != nil {
		u, err := helper.ResolveOneBySlug[universityModel.UniversityModel](tx, "university_slug", *orgUniversity)
		if err != nil {
			return err
		}
		if u != nil {
			m.EventOrganizerUniversityID = &u.UniversityID
		} else {
			m.EventOrganizerUniversityID = nil
		}
	}
	return nil
}

func (h *EventController) collectReplacedUploads(c *fiber.Ctx, m *eModel.EventModel) []string {
	replaced := []string{}
	slots := []struct {
		field string
		dir   string
		dst   **string
	}{
		{"featured_image", "events/images", &m.EventFeaturedImageURL},
		{"banner_image", "events/banners", &m.EventBannerImageURL},
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

// hasOrganizer reports whether the merged model still names an organizer.
// Unknown slugs resolve to nil links, so updates must re-check this.
func hasOrganizer(m *eModel.EventModel) bool {
	return m.EventOrganizerSchoolID != nil ||
		m.EventOrganizerUniversityID != nil ||
		strings.TrimSpace(m.EventOrganizerCustom) != ""
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
