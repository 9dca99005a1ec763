package dto

import (
	"time"

	"github.com/google/uuid"

	courseModel "schoolinfo_backend/internals/features/courses/model"
	iModel "schoolinfo_backend/internals/features/information/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
)

/* ===================== CATEGORY ===================== */

type CreateInformationCategoryRequest struct {
	Name        string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" form:"description" validate:"omitempty"`
	Color       string `json:"color" form:"color" validate:"omitempty,hexcolor"`
	IsActive    *bool  `json:"is_active" form:"is_active" validate:"omitempty"`
}

func (r *CreateInformationCategoryRequest) ToModel() *iModel.InformationCategoryModel {
	m := &iModel.InformationCategoryModel{
		InformationCategoryName:        r.Name,
		InformationCategoryDescription: r.Description,
		InformationCategoryColor:       r.Color,
		InformationCategoryIsActive:    true,
	}
	if r.IsActive != nil {
		m.InformationCategoryIsActive = *r.IsActive
	}
	return m
}

type UpdateInformationCategoryRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" form:"description" validate:"omitempty"`
	Color       *string `json:"color" form:"color" validate:"omitempty,hexcolor"`
	IsActive    *bool   `json:"is_active" form:"is_active" validate:"omitempty"`
}

func (r *UpdateInformationCategoryRequest) ApplyToModel(m *iModel.InformationCategoryModel) {
	if r.Name != nil {
		m.InformationCategoryName = *r.Name
	}
	if r.Description != nil {
		m.InformationCategoryDescription = *r.Description
	}
	if r.Color != nil {
		m.InformationCategoryColor = *r.Color
	}
	if r.IsActive != nil {
		m.InformationCategoryIsActive = *r.IsActive
	}
}

type InformationCategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func NewInformationCategoryResponse(m *iModel.InformationCategoryModel) *InformationCategoryResponse {
	if m == nil {
		return nil
	}
	return &InformationCategoryResponse{
		ID:          m.InformationCategoryID,
		Name:        m.InformationCategoryName,
		Slug:        m.InformationCategorySlug,
		Description: m.InformationCategoryDescription,
		Color:       m.InformationCategoryColor,
		IsActive:    m.InformationCategoryIsActive,
		CreatedAt:   m.InformationCategoryCreatedAt,
		UpdatedAt:   m.InformationCategoryUpdatedAt,
	}
}

/* ===================== INFORMATION ===================== */

type CreateInformationRequest struct {
	Title         string    `json:"title" form:"title" validate:"required,min=2,max=200"`
	Category      string    `json:"category" form:"category" validate:"required"` // category slug
	PublishedDate time.Time `json:"published_date" form:"published_date" validate:"required"`
	Summary       string    `json:"summary" form:"summary" validate:"omitempty,max=500"`

	TopDescription   string `json:"top_description" form:"top_description" validate:"omitempty"`
	Content          string `json:"content" form:"content" validate:"omitempty"`
	BelowDescription string `json:"below_description" form:"below_description" validate:"omitempty"`

	MetaTitle       string `json:"meta_title" form:"meta_title" validate:"omitempty,max=60"`
	MetaDescription string `json:"meta_description" form:"meta_description" validate:"omitempty,max=160"`
	MetaKeywords    string `json:"meta_keywords" form:"meta_keywords" validate:"omitempty,max=255"`

	Featured *bool `json:"featured" form:"featured" validate:"omitempty"`
	IsActive *bool `json:"is_active" form:"is_active" validate:"omitempty"`

	Universities *[]string `json:"universities" validate:"omitempty"`
	Levels       *[]string `json:"levels" validate:"omitempty"`
	Courses      *[]string `json:"courses" validate:"omitempty"`
	Schools      *[]string `json:"schools" validate:"omitempty"`
}

func (r *CreateInformationRequest) ToModel() *iModel.InformationModel {
	m := &iModel.InformationModel{
		InformationTitle:            r.Title,
		InformationPublishedDate:    r.PublishedDate,
		InformationSummary:          r.Summary,
		InformationTopDescription:   r.TopDescription,
		InformationContent:          r.Content,
		InformationBelowDescription: r.BelowDescription,
		InformationMetaTitle:        r.MetaTitle,
		InformationMetaDescription:  r.MetaDescription,
		InformationMetaKeywords:     r.MetaKeywords,
		InformationIsActive:         true,
	}
	if r.Featured != nil {
		m.InformationFeatured = *r.Featured
	}
	if r.IsActive != nil {
		m.InformationIsActive = *r.IsActive
	}
	fillMetaDefaults(m)
	return m
}

type UpdateInformationRequest struct {
	Title         *string    `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	Category      *string    `json:"category" form:"category" validate:"omitempty"`
	PublishedDate *time.Time `json:"published_date" form:"published_date" validate:"omitempty"`
	Summary       *string    `json:"summary" form:"summary" validate:"omitempty,max=500"`

	TopDescription   *string `json:"top_description" form:"top_description" validate:"omitempty"`
	Content          *string `json:"content" form:"content" validate:"omitempty"`
	BelowDescription *string `json:"below_description" form:"below_description" validate:"omitempty"`

	MetaTitle       *string `json:"meta_title" form:"meta_title" validate:"omitempty,max=60"`
	MetaDescription *string `json:"meta_description" form:"meta_description" validate:"omitempty,max=160"`
	MetaKeywords    *string `json:"meta_keywords" form:"meta_keywords" validate:"omitempty,max=255"`

	Featured *bool `json:"featured" form:"featured" validate:"omitempty"`
	IsActive *bool `json:"is_active" form:"is_active" validate:"omitempty"`

	Universities *[]string `json:"universities" validate:"omitempty"`
	Levels       *[]string `json:"levels" validate:"omitempty"`
	Courses      *[]string `json:"courses" validate:"omitempty"`
	Schools      *[]string `json:"schools" validate:"omitempty"`
}

func (r *UpdateInformationRequest) ApplyToModel(m *iModel.InformationModel) {
	if r.Title != nil {
		m.InformationTitle = *r.Title
	}
	if r.PublishedDate != nil {
		m.InformationPublishedDate = *r.PublishedDate
	}
	if r.Summary != nil {
		m.InformationSummary = *r.Summary
	}
	if r.TopDescription != nil {
		m.InformationTopDescription = *r.TopDescription
	}
	if r.Content != nil {
		m.InformationContent = *r.Content
	}
	if r.BelowDescription != nil {
		m.InformationBelowDescription = *r.BelowDescription
	}
	if r.MetaTitle != nil {
		m.InformationMetaTitle = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		m.InformationMetaDescription = *r.MetaDescription
	}
	if r.MetaKeywords != nil {
		m.InformationMetaKeywords = *r.MetaKeywords
	}
	if r.Featured != nil {
		m.InformationFeatured = *r.Featured
	}
	if r.IsActive != nil {
		m.InformationIsActive = *r.IsActive
	}
	fillMetaDefaults(m)
}

// fillMetaDefaults derives SEO fields from the content when they were left
// blank: meta title from the title, meta description from the summary.
func fillMetaDefaults(m *iModel.InformationModel) {
	if m.InformationMetaTitle == "" {
		m.InformationMetaTitle = truncate(m.InformationTitle, 60)
	}
	if m.InformationMetaDescription == "" && m.InformationSummary != "" {
		m.InformationMetaDescription = truncate(m.InformationSummary, 160)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

type InformationResponse struct {
	ID            uuid.UUID                    `json:"id"`
	Title         string                       `json:"title"`
	Slug          string                       `json:"slug"`
	Category      *InformationCategoryResponse `json:"category,omitempty"`
	PublishedDate time.Time                    `json:"published_date"`
	Summary       string                       `json:"summary"`

	TopDescription   string `json:"top_description"`
	Content          string `json:"content"`
	BelowDescription string `json:"below_description"`

	FeaturedImageURL *string `json:"featured_image,omitempty"`
	BannerImageURL   *string `json:"banner_image,omitempty"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`

	Featured bool `json:"featured"`
	IsActive bool `json:"is_active"`

	Universities []string `json:"universities"`
	Levels       []string `json:"levels"`
	Courses      []string `json:"courses"`
	Schools      []string `json:"schools"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewInformationResponse(m *iModel.InformationModel) *InformationResponse {
	if m == nil {
		return nil
	}
	resp := &InformationResponse{
		ID:            m.InformationID,
		Title:         m.InformationTitle,
		Slug:          m.InformationSlug,
		Category:      NewInformationCategoryResponse(m.InformationCategory),
		PublishedDate: m.InformationPublishedDate,
		Summary:       m.InformationSummary,

		TopDescription:   m.InformationTopDescription,
		Content:          m.InformationContent,
		BelowDescription: m.InformationBelowDescription,

		FeaturedImageURL: m.InformationFeaturedImageURL,
		BannerImageURL:   m.InformationBannerImageURL,

		MetaTitle:       m.InformationMetaTitle,
		MetaDescription: m.InformationMetaDescription,
		MetaKeywords:    m.InformationMetaKeywords,

		Featured: m.InformationFeatured,
		IsActive: m.InformationIsActive,

		Universities: make([]string, 0, len(m.InformationUniversities)),
		Levels:       make([]string, 0, len(m.InformationLevels)),
		Courses:      make([]string, 0, len(m.InformationCourses)),
		Schools:      make([]string, 0, len(m.InformationSchools)),

		CreatedAt: m.InformationCreatedAt,
		UpdatedAt: m.InformationUpdatedAt,
	}
	resp.Universities = universitySlugs(m.InformationUniversities)
	resp.Levels = levelSlugs(m.InformationLevels)
	resp.Courses = courseSlugs(m.InformationCourses)
	resp.Schools = schoolSlugs(m.InformationSchools)
	return resp
}

func universitySlugs(rows []universityModel.UniversityModel) []string {
	out := make([]string, 0, len(rows))
	for _, u := range rows {
		out = append(out, u.UniversitySlug)
	}
	return out
}

func levelSlugs(rows []levelModel.LevelModel) []string {
	out := make([]string, 0, len(rows))
	for _, l := range rows {
		out = append(out, l.LevelSlug)
	}
	return out
}

func courseSlugs(rows []courseModel.CourseModel) []string {
	out := make([]string, 0, len(rows))
	for _, c := range rows {
		out = append(out, c.CourseSlug)
	}
	return out
}

func schoolSlugs(rows []schoolModel.SchoolModel) []string {
	out := make([]string, 0, len(rows))
	for _, s := range rows {
		out = append(out, s.SchoolSlug)
	}
	return out
}
