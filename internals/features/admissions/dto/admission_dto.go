package dto

import (
	"time"

	"github.com/google/uuid"

	aModel "schoolinfo_backend/internals/features/admissions/model"
	courseModel "schoolinfo_backend/internals/features/courses/model"
	levelDTO "schoolinfo_backend/internals/features/levels/dto"
)

/* ===================== REQUESTS ===================== */

type CreateAdmissionRequest struct {
	Title         string    `json:"title" form:"title" validate:"required,min=2,max=255"`
	PublishedDate time.Time `json:"published_date" form:"published_date" validate:"required"`
	ActiveFrom    time.Time `json:"active_from" form:"active_from" validate:"required"`
	ActiveUntil   time.Time `json:"active_until" form:"active_until" validate:"required"`

	School     string    `json:"school" form:"school" validate:"required"` // school slug
	Courses    *[]string `json:"courses" validate:"omitempty"`             // course slugs
	Level      string    `json:"level" form:"level" validate:"omitempty"`
	University string    `json:"university" form:"university" validate:"omitempty"`

	Featured    *bool  `json:"featured" form:"featured" validate:"omitempty"`
	Description string `json:"description" form:"description" validate:"omitempty"`
}

func (r *CreateAdmissionRequest) ToModel() *aModel.AdmissionModel {
	m := &aModel.AdmissionModel{
		AdmissionTitle:         r.Title,
		AdmissionPublishedDate: r.PublishedDate,
		AdmissionActiveFrom:    r.ActiveFrom,
		AdmissionActiveUntil:   r.ActiveUntil,
		AdmissionDescription:   r.Description,
	}
	if r.Featured != nil {
		m.AdmissionFeatured = *r.Featured
	}
	return m
}

type UpdateAdmissionRequest struct {
	Title         *string    `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	PublishedDate *time.Time `json:"published_date" form:"published_date" validate:"omitempty"`
	ActiveFrom    *time.Time `json:"active_from" form:"active_from" validate:"omitempty"`
	ActiveUntil   *time.Time `json:"active_until" form:"active_until" validate:"omitempty"`

	School     *string   `json:"school" form:"school" validate:"omitempty"`
	Courses    *[]string `json:"courses" validate:"omitempty"`
	Level      *string   `json:"level" form:"level" validate:"omitempty"`
	University *string   `json:"university" form:"university" validate:"omitempty"`

	Featured    *bool   `json:"featured" form:"featured" validate:"omitempty"`
	Description *string `json:"description" form:"description" validate:"omitempty"`
}

func (r *UpdateAdmissionRequest) ApplyToModel(m *aModel.AdmissionModel) {
	if r.Title != nil {
		m.AdmissionTitle = *r.Title
	}
	if r.PublishedDate != nil {
		m.AdmissionPublishedDate = *r.PublishedDate
	}
	if r.ActiveFrom != nil {
		m.AdmissionActiveFrom = *r.ActiveFrom
	}
	if r.ActiveUntil != nil {
		m.AdmissionActiveUntil = *r.ActiveUntil
	}
	if r.Featured != nil {
		m.AdmissionFeatured = *r.Featured
	}
	if r.Description != nil {
		m.AdmissionDescription = *r.Description
	}
}

/* ===================== RESPONSES ===================== */

type AdmissionSchoolRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type AdmissionResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	PublishedDate time.Time `json:"published_date"`
	ActiveFrom    time.Time `json:"active_from"`
	ActiveUntil   time.Time `json:"active_until"`

	School     *AdmissionSchoolRef     `json:"school,omitempty"`
	Courses    []string                `json:"courses"`
	Level      *levelDTO.LevelResponse `json:"level,omitempty"`
	University string                  `json:"university,omitempty"`

	Featured    bool   `json:"featured"`
	Description string `json:"description"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewAdmissionResponse(m *aModel.AdmissionModel) *AdmissionResponse {
	if m == nil {
		return nil
	}
	resp := &AdmissionResponse{
		ID:            m.AdmissionID,
		Title:         m.AdmissionTitle,
		Slug:          m.AdmissionSlug,
		PublishedDate: m.AdmissionPublishedDate,
		ActiveFrom:    m.AdmissionActiveFrom,
		ActiveUntil:   m.AdmissionActiveUntil,
		Level:         levelDTO.NewLevelResponse(m.AdmissionLevel),
		Courses:       courseSlugs(m.AdmissionCourses),
		Featured:      m.AdmissionFeatured,
		Description:   m.AdmissionDescription,
		CreatedAt:     m.AdmissionCreatedAt,
		UpdatedAt:     m.AdmissionUpdatedAt,
	}
	if m.AdmissionSchool != nil {
		resp.School = &AdmissionSchoolRef{Name: m.AdmissionSchool.SchoolName, Slug: m.AdmissionSchool.SchoolSlug}
	}
	if m.AdmissionUniversity != nil {
		resp.University = m.AdmissionUniversity.UniversitySlug
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
