package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	courseModel "schoolinfo_backend/internals/features/courses/model"
	levelDTO "schoolinfo_backend/internals/features/levels/dto"
	sModel "schoolinfo_backend/internals/features/scholarships/model"
)

/* ===================== REQUESTS ===================== */

type CreateScholarshipRequest struct {
	Title         string    `json:"title" form:"title" validate:"required,min=2,max=255"`
	PublishedDate time.Time `json:"published_date" form:"published_date" validate:"required"`
	ActiveFrom    time.Time `json:"active_from" form:"active_from" validate:"required"`
	ActiveUntil   time.Time `json:"active_until" form:"active_until" validate:"required"`

	OrganizerSchool     string `json:"organizer_school" form:"organizer_school" validate:"omitempty"`
	OrganizerUniversity string `json:"organizer_university" form:"organizer_university" validate:"omitempty"`
	OrganizerCustom     string `json:"organizer_custom" form:"organizer_custom" validate:"omitempty,max=255"`

	Courses    *[]string `json:"courses" validate:"omitempty"`
	Level      string    `json:"level" form:"level" validate:"omitempty"`
	University string    `json:"university" form:"university" validate:"omitempty"`

	Description string `json:"description" form:"description" validate:"omitempty"`
	Featured    *bool  `json:"featured" form:"featured" validate:"omitempty"`
}

// HasOrganizer reports whether at least one organizer field was supplied.
func (r *CreateScholarshipRequest) HasOrganizer() bool {
	return strings.TrimSpace(r.OrganizerSchool) != "" ||
		strings.TrimSpace(r.OrganizerUniversity) != "" ||
		strings.TrimSpace(r.OrganizerCustom) != ""
}

func (r *CreateScholarshipRequest) ToModel() *sModel.ScholarshipModel {
	m := &sModel.ScholarshipModel{
		ScholarshipTitle:           r.Title,
		ScholarshipPublishedDate:   r.PublishedDate,
		ScholarshipActiveFrom:      r.ActiveFrom,
		ScholarshipActiveUntil:     r.ActiveUntil,
		ScholarshipOrganizerCustom: r.OrganizerCustom,
		ScholarshipDescription:     r.Description,
	}
	if r.Featured != nil {
		m.ScholarshipFeatured = *r.Featured
	}
	return m
}

type UpdateScholarshipRequest struct {
	Title         *string    `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	PublishedDate *time.Time `json:"published_date" form:"published_date" validate:"omitempty"`
	ActiveFrom    *time.Time `json:"active_from" form:"active_from" validate:"omitempty"`
	ActiveUntil   *time.Time `json:"active_until" form:"active_until" validate:"omitempty"`

	OrganizerSchool     *string `json:"organizer_school" form:"organizer_school" validate:"omitempty"`
	OrganizerUniversity *string `json:"organizer_university" form:"organizer_university" validate:"omitempty"`
	OrganizerCustom     *string `json:"organizer_custom" form:"organizer_custom" validate:"omitempty,max=255"`

	Courses    *[]string `json:"courses" validate:"omitempty"`
	Level      *string   `json:"level" form:"level" validate:"omitempty"`
	University *string   `json:"university" form:"university" validate:"omitempty"`

	Description *string `json:"description" form:"description" validate:"omitempty"`
	Featured    *bool   `json:"featured" form:"featured" validate:"omitempty"`
}

func (r *UpdateScholarshipRequest) ApplyToModel(m *sModel.ScholarshipModel) {
	if r.Title != nil {
		m.ScholarshipTitle = *r.Title
	}
	if r.PublishedDate != nil {
		m.ScholarshipPublishedDate = *r.PublishedDate
	}
	if r.ActiveFrom != nil {
		m.ScholarshipActiveFrom = *r.ActiveFrom
	}
	if r.ActiveUntil != nil {
		m.ScholarshipActiveUntil = *r.ActiveUntil
	}
	if r.OrganizerCustom != nil {
		m.ScholarshipOrganizerCustom = *r.OrganizerCustom
	}
	if r.Description != nil {
		m.ScholarshipDescription = *r.Description
	}
	if r.Featured != nil {
		m.ScholarshipFeatured = *r.Featured
	}
}

/* ===================== RESPONSES ===================== */

type ScholarshipOrganizer struct {
	School     string `json:"school,omitempty"`
	University string `json:"university,omitempty"`
	Custom     string `json:"custom,omitempty"`
}

type ScholarshipResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	PublishedDate time.Time `json:"published_date"`
	ActiveFrom    time.Time `json:"active_from"`
	ActiveUntil   time.Time `json:"active_until"`

	Organizer ScholarshipOrganizer `json:"organizer"`

	Courses    []string                `json:"courses"`
	Level      *levelDTO.LevelResponse `json:"level,omitempty"`
	University string                  `json:"university,omitempty"`

	Description   string  `json:"description"`
	AttachmentURL *string `json:"attachment,omitempty"`
	Featured      bool    `json:"featured"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewScholarshipResponse(m *sModel.ScholarshipModel) *ScholarshipResponse {
	if m == nil {
		return nil
	}
	resp := &ScholarshipResponse{
		ID:            m.ScholarshipID,
		Title:         m.ScholarshipTitle,
		Slug:          m.ScholarshipSlug,
		PublishedDate: m.ScholarshipPublishedDate,
		ActiveFrom:    m.ScholarshipActiveFrom,
		ActiveUntil:   m.ScholarshipActiveUntil,
		Organizer:     ScholarshipOrganizer{Custom: m.ScholarshipOrganizerCustom},
		Courses:       courseSlugs(m.ScholarshipCourses),
		Level:         levelDTO.NewLevelResponse(m.ScholarshipLevel),
		Description:   m.ScholarshipDescription,
		AttachmentURL: m.ScholarshipAttachmentURL,
		Featured:      m.ScholarshipFeatured,
		CreatedAt:     m.ScholarshipCreatedAt,
		UpdatedAt:     m.ScholarshipUpdatedAt,
	}
	if m.ScholarshipOrganizerSchool != nil {
		resp.Organizer.School = m.ScholarshipOrganizerSchool.SchoolSlug
	}
	if m.ScholarshipOrganizerUniversity != nil {
		resp.Organizer.University = m.ScholarshipOrganizerUniversity.UniversitySlug
	}
	if m.ScholarshipUniversity != nil {
		resp.University = m.ScholarshipUniversity.UniversitySlug
	}
	return resp
}

func courseSlugs(rows []courseModel.CourseModel) []string {
	out := make([]string, 0, len(rows))
	for _, c := range rows {
		out = append(out, c.CourseSlug)
	}
	return out
}
