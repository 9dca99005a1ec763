package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	eModel "schoolinfo_backend/internals/features/events/model"
)

/* ===================== REQUESTS ===================== */

type CreateEventRequest struct {
	Title            string `json:"title" form:"title" validate:"required,min=2,max=200"`
	Description      string `json:"description" form:"description" validate:"omitempty"`
	ShortDescription string `json:"short_description" form:"short_description" validate:"omitempty,max=500"`

	EventDate    time.Time  `json:"event_date" form:"event_date" validate:"required"`
	EventEndDate *time.Time `json:"event_end_date" form:"event_end_date" validate:"omitempty"`
	Time         string     `json:"time" form:"time" validate:"omitempty,max=40"`
	Venue        string     `json:"venue" form:"venue" validate:"required,max=250"`
	EventType    string     `json:"event_type" form:"event_type" validate:"required,oneof=online physical hybrid"`
	SeatLimit    *int       `json:"seat_limit" form:"seat_limit" validate:"omitempty,min=1"`

	OrganizerSchool     string `json:"organizer_school" form:"organizer_school" validate:"omitempty"`
	OrganizerUniversity string `json:"organizer_university" form:"organizer_university" validate:"omitempty"`
	OrganizerCustom     string `json:"organizer_custom" form:"organizer_custom" validate:"omitempty,max=120"`

	RegistrationType     string     `json:"registration_type" form:"registration_type" validate:"omitempty,oneof=free paid"`
	RegistrationPrice    *float64   `json:"registration_price" form:"registration_price" validate:"omitempty,min=0"`
	RegistrationLink     *string    `json:"registration_link" form:"registration_link" validate:"omitempty,url"`
	RegistrationDeadline *time.Time `json:"registration_deadline" form:"registration_deadline" validate:"omitempty"`

	MetaTitle       string `json:"meta_title" form:"meta_title" validate:"omitempty,max=200"`
	MetaDescription string `json:"meta_description" form:"meta_description" validate:"omitempty,max=500"`
	MetaKeywords    string `json:"meta_keywords" form:"meta_keywords" validate:"omitempty,max=500"`

	Featured *bool `json:"featured" form:"featured" validate:"omitempty"`
	IsActive *bool `json:"is_active" form:"is_active" validate:"omitempty"`
}

func (r *CreateEventRequest) HasOrganizer() bool {
	return strings.TrimSpace(r.OrganizerSchool) != "" ||
		strings.TrimSpace(r.OrganizerUniversity) != "" ||
		strings.TrimSpace(r.OrganizerCustom) != ""
}

func (r *CreateEventRequest) ToModel() *eModel.EventModel {
	m := &eModel.EventModel{
		EventTitle:            r.Title,
		EventDescription:      r.Description,
		EventShortDescription: r.ShortDescription,

		EventDate:      r.EventDate,
		EventEndDate:   r.EventEndDate,
		EventTime:      r.Time,
		EventVenue:     r.Venue,
		EventType:      r.EventType,
		EventSeatLimit: r.SeatLimit,

		EventOrganizerCustom: r.OrganizerCustom,

		EventRegistrationType:     eModel.RegistrationFree,
		EventRegistrationPrice:    r.RegistrationPrice,
		EventRegistrationLink:     r.RegistrationLink,
		EventRegistrationDeadline: r.RegistrationDeadline,

		EventMetaTitle:       r.MetaTitle,
		EventMetaDescription: r.MetaDescription,
		EventMetaKeywords:    r.MetaKeywords,

		EventIsActive: true,
	}
	if r.RegistrationType != "" {
		m.EventRegistrationType = r.RegistrationType
	}
	if r.Featured != nil {
		m.EventFeatured = *r.Featured
	}
	if r.IsActive != nil {
		m.EventIsActive = *r.IsActive
	}
	return m
}

type UpdateEventRequest struct {
	Title            *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	Description      *string `json:"description" form:"description" validate:"omitempty"`
	ShortDescription *string `json:"short_description" form:"short_description" validate:"omitempty,max=500"`

	EventDate    *time.Time `json:"event_date" form:"event_date" validate:"omitempty"`
	EventEndDate *time.Time `json:"event_end_date" form:"event_end_date" validate:"omitempty"`
	Time         *string    `json:"time" form:"time" validate:"omitempty,max=40"`
	Venue        *string    `json:"venue" form:"venue" validate:"omitempty,max=250"`
	EventType    *string    `json:"event_type" form:"event_type" validate:"omitempty,oneof=online physical hybrid"`
	SeatLimit    *int       `json:"seat_limit" form:"seat_limit" validate:"omitempty,min=1"`

	OrganizerSchool     *string `json:"organizer_school" form:"organizer_school" validate:"omitempty"`
	OrganizerUniversity *string `json:"organizer_university" form:"organizer_university" validate:"omitempty"`
	OrganizerCustom     *string `json:"organizer_custom" form:"organizer_custom" validate:"omitempty,max=120"`

	RegistrationType     *string    `json:"registration_type" form:"registration_type" validate:"omitempty,oneof=free paid"`
	RegistrationPrice    *float64   `json:"registration_price" form:"registration_price" validate:"omitempty,min=0"`
	RegistrationLink     *string    `json:"registration_link" form:"registration_link" validate:"omitempty,url"`
	RegistrationDeadline *time.Time `json:"registration_deadline" form:"registration_deadline" validate:"omitempty"`

	MetaTitle       *string `json:"meta_title" form:"meta_title" validate:"omitempty,max=200"`
	MetaDescription *string `json:"meta_description" form:"meta_description" validate:"omitempty,max=500"`
	MetaKeywords    *string `json:"meta_keywords" form:"meta_keywords" validate:"omitempty,max=500"`

	Featured *bool `json:"featured" form:"featured" validate:"omitempty"`
	IsActive *bool `json:"is_active" form:"is_active" validate:"omitempty"`
}

func (r *UpdateEventRequest) ApplyToModel(m *eModel.EventModel) {
	if r.Title != nil {
		m.EventTitle = *r.Title
	}
	if r.Description != nil {
		m.EventDescription = *r.Description
	}
	if r.ShortDescription != nil {
		m.EventShortDescription = *r.ShortDescription
	}
	if r.EventDate != nil {
		m.EventDate = *r.EventDate
	}
	if r.EventEndDate != nil {
		m.EventEndDate = r.EventEndDate
	}
	if r.Time != nil {
		m.EventTime = *r.Time
	}
	if r.Venue != nil {
		m.EventVenue = *r.Venue
	}
	if r.EventType != nil {
		m.EventType = *r.EventType
	}
	if r.SeatLimit != nil {
		m.EventSeatLimit = r.SeatLimit
	}
	if r.OrganizerCustom != nil {
		m.EventOrganizerCustom = *r.OrganizerCustom
	}
	if r.RegistrationType != nil {
		m.EventRegistrationType = *r.RegistrationType
	}
	if r.RegistrationPrice != nil {
		m.EventRegistrationPrice = r.RegistrationPrice
	}
	if r.RegistrationLink != nil {
		m.EventRegistrationLink = r.RegistrationLink
	}
	if r.RegistrationDeadline != nil {
		m.EventRegistrationDeadline = r.RegistrationDeadline
	}
	if r.MetaTitle != nil {
		m.EventMetaTitle = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		m.EventMetaDescription = *r.MetaDescription
	}
	if r.MetaKeywords != nil {
		m.EventMetaKeywords = *r.MetaKeywords
	}
	if r.Featured != nil {
		m.EventFeatured = *r.Featured
	}
	if r.IsActive != nil {
		m.EventIsActive = *r.IsActive
	}
}

/* ===================== RESPONSES ===================== */

type EventOrganizer struct {
	School     string `json:"school,omitempty"`
	University string `json:"university,omitempty"`
	Custom     string `json:"custom,omitempty"`
}

type EventResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`

	EventDate    time.Time  `json:"event_date"`
	EventEndDate *time.Time `json:"event_end_date,omitempty"`
	Time         string     `json:"time"`
	Venue        string     `json:"venue"`
	EventType    string     `json:"event_type"`
	SeatLimit    *int       `json:"seat_limit,omitempty"`

	Organizer EventOrganizer `json:"organizer"`

	RegistrationType     string     `json:"registration_type"`
	RegistrationPrice    *float64   `json:"registration_price,omitempty"`
	RegistrationLink     *string    `json:"registration_link,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`

	FeaturedImageURL *string `json:"featured_image,omitempty"`
	BannerImageURL   *string `json:"banner_image,omitempty"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`

	Featured bool `json:"featured"`
	IsActive bool `json:"is_active"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewEventResponse(m *eModel.EventModel) *EventResponse {
	if m == nil {
		return nil
	}
	resp := &EventResponse{
		ID:               m.EventID,
		Title:            m.EventTitle,
		Slug:             m.EventSlug,
		Description:      m.EventDescription,
		ShortDescription: m.EventShortDescription,

		EventDate:    m.EventDate,
		EventEndDate: m.EventEndDate,
		Time:         m.EventTime,
		Venue:        m.EventVenue,
		EventType:    m.EventType,
		SeatLimit:    m.EventSeatLimit,

		Organizer: EventOrganizer{Custom: m.EventOrganizerCustom},

		RegistrationType:     m.EventRegistrationType,
		RegistrationPrice:    m.EventRegistrationPrice,
		RegistrationLink:     m.EventRegistrationLink,
		RegistrationDeadline: m.EventRegistrationDeadline,

		FeaturedImageURL: m.EventFeaturedImageURL,
		BannerImageURL:   m.EventBannerImageURL,

		MetaTitle:       m.EventMetaTitle,
		MetaDescription: m.EventMetaDescription,
		MetaKeywords:    m.EventMetaKeywords,

		Featured: m.EventFeatured,
		IsActive: m.EventIsActive,

		CreatedAt: m.EventCreatedAt,
		UpdatedAt: m.EventUpdatedAt,
	}
	if m.EventOrganizerSchool != nil {
		resp.Organizer.School = m.EventOrganizerSchool.SchoolSlug
	}
	if m.EventOrganizerUniversity != nil {
		resp.Organizer.University = m.EventOrganizerUniversity.UniversitySlug
	}
	return resp
}
