package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	cModel "schoolinfo_backend/internals/features/courses/model"
	disciplineModel "schoolinfo_backend/internals/features/disciplines/model"
	levelDTO "schoolinfo_backend/internals/features/levels/dto"
)

/* ===================== NESTED ITEMS ===================== */

type AttachmentItem struct {
	File        string `json:"file"`
	Description string `json:"description"`
}

func AttachmentRows(courseID uuid.UUID, items *[]AttachmentItem) *[]cModel.CourseAttachmentModel {
	if items == nil {
		return nil
	}
	rows := make([]cModel.CourseAttachmentModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.File) == "" {
			continue
		}
		rows = append(rows, cModel.CourseAttachmentModel{
			CourseAttachmentCourseID:    courseID,
			CourseAttachmentFileURL:     it.File,
			CourseAttachmentDescription: it.Description,
		})
	}
	return &rows
}

/* ===================== REQUESTS ===================== */

type CreateCourseRequest struct {
	Name         string `json:"name" form:"name" validate:"required,min=2,max=200"`
	Abbreviation string `json:"abbreviation" form:"abbreviation" validate:"omitempty,max=50"`
	University   string `json:"university" form:"university" validate:"required"` // university slug
	Duration     string `json:"duration" form:"duration" validate:"omitempty,max=100"`
	Level        string `json:"level" form:"level" validate:"omitempty"` // level slug

	Disciplines *[]string `json:"disciplines" validate:"omitempty"` // discipline slugs

	ShortDescription string `json:"short_description" form:"short_description" validate:"omitempty"`
	LongDescription  string `json:"long_description" form:"long_description" validate:"omitempty"`
	Outcome          string `json:"outcome" form:"outcome" validate:"omitempty"`
	Eligibility      string `json:"eligibility" form:"eligibility" validate:"omitempty"`
	Curriculum       string `json:"curriculum" form:"curriculum" validate:"omitempty"`

	MetaTitle       string `json:"meta_title" form:"meta_title" validate:"omitempty,max=255"`
	MetaDescription string `json:"meta_description" form:"meta_description" validate:"omitempty"`
	OGTitle         string `json:"og_title" form:"og_title" validate:"omitempty,max=255"`
	OGDescription   string `json:"og_description" form:"og_description" validate:"omitempty"`

	Attachments *[]AttachmentItem `json:"attachments" validate:"omitempty"`
}

func (r *CreateCourseRequest) ToModel() *cModel.CourseModel {
	return &cModel.CourseModel{
		CourseName:             r.Name,
		CourseAbbreviation:     r.Abbreviation,
		CourseDuration:         r.Duration,
		CourseShortDescription: r.ShortDescription,
		CourseLongDescription:  r.LongDescription,
		CourseOutcome:          r.Outcome,
		CourseEligibility:      r.Eligibility,
		CourseCurriculum:       r.Curriculum,
		CourseMetaTitle:        r.MetaTitle,
		CourseMetaDescription:  r.MetaDescription,
		CourseOGTitle:          r.OGTitle,
		CourseOGDescription:    r.OGDescription,
	}
}

type UpdateCourseRequest struct {
	Name         *string `json:"name" form:"name" validate:"omitempty,min=2,max=200"`
	Abbreviation *string `json:"abbreviation" form:"abbreviation" validate:"omitempty,max=50"`
	University   *string `json:"university" form:"university" validate:"omitempty"`
	Duration     *string `json:"duration" form:"duration" validate:"omitempty,max=100"`
	Level        *string `json:"level" form:"level" validate:"omitempty"`

	Disciplines *[]string `json:"disciplines" validate:"omitempty"`

	ShortDescription *string `json:"short_description" form:"short_description" validate:"omitempty"`
	LongDescription  *string `json:"long_description" form:"long_description" validate:"omitempty"`
	Outcome          *string `json:"outcome" form:"outcome" validate:"omitempty"`
	Eligibility      *string `json:"eligibility" form:"eligibility" validate:"omitempty"`
	Curriculum       *string `json:"curriculum" form:"curriculum" validate:"omitempty"`

	MetaTitle       *string `json:"meta_title" form:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description" form:"meta_description" validate:"omitempty"`
	OGTitle         *string `json:"og_title" form:"og_title" validate:"omitempty,max=255"`
	OGDescription   *string `json:"og_description" form:"og_description" validate:"omitempty"`

	Attachments *[]AttachmentItem `json:"attachments" validate:"omitempty"`
}

func (r *UpdateCourseRequest) ApplyToModel(m *cModel.CourseModel) {
	if r.Name != nil {
		m.CourseName = *r.Name
	}
	if r.Abbreviation != nil {
		m.CourseAbbreviation = *r.Abbreviation
	}
	if r.Duration != nil {
		m.CourseDuration = *r.Duration
	}
	if r.ShortDescription != nil {
		m.CourseShortDescription = *r.ShortDescription
	}
	if r.LongDescription != nil {
		m.CourseLongDescription = *r.LongDescription
	}
	if r.Outcome != nil {
		m.CourseOutcome = *r.Outcome
	}
	if r.Eligibility != nil {
		m.CourseEligibility = *r.Eligibility
	}
	if r.Curriculum != nil {
		m.CourseCurriculum = *r.Curriculum
	}
	if r.MetaTitle != nil {
		m.CourseMetaTitle = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		m.CourseMetaDescription = *r.MetaDescription
	}
	if r.OGTitle != nil {
		m.CourseOGTitle = *r.OGTitle
	}
	if r.OGDescription != nil {
		m.CourseOGDescription = *r.OGDescription
	}
}

/* ===================== RESPONSES ===================== */

type CourseUniversityRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CourseResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Slug         string    `json:"slug"`

	University *CourseUniversityRef   `json:"university,omitempty"`
	Duration   string                 `json:"duration"`
	Level      *levelDTO.LevelResponse `json:"level,omitempty"`

	Disciplines []string `json:"disciplines"`

	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Outcome          string `json:"outcome"`
	Eligibility      string `json:"eligibility"`
	Curriculum       string `json:"curriculum"`

	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	OGTitle         string  `json:"og_title"`
	OGDescription   string  `json:"og_description"`
	OGImageURL      *string `json:"og_image,omitempty"`

	Attachments []AttachmentItem `json:"attachments"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewCourseResponse(m *cModel.CourseModel) *CourseResponse {
	if m == nil {
		return nil
	}
	resp := &CourseResponse{
		ID:           m.CourseID,
		Name:         m.CourseName,
		Abbreviation: m.CourseAbbreviation,
		Slug:         m.CourseSlug,
		Duration:     m.CourseDuration,
		Level:        levelDTO.NewLevelResponse(m.CourseLevel),

		Disciplines: disciplineSlugs(m.CourseDisciplines),

		ShortDescription: m.CourseShortDescription,
		LongDescription:  m.CourseLongDescription,
		Outcome:          m.CourseOutcome,
		Eligibility:      m.CourseEligibility,
		Curriculum:       m.CourseCurriculum,

		MetaTitle:       m.CourseMetaTitle,
		MetaDescription: m.CourseMetaDescription,
		OGTitle:         m.CourseOGTitle,
		OGDescription:   m.CourseOGDescription,
		OGImageURL:      m.CourseOGImageURL,

		Attachments: make([]AttachmentItem, 0, len(m.CourseAttachments)),

		CreatedAt: m.CourseCreatedAt,
		UpdatedAt: m.CourseUpdatedAt,
	}
	if m.CourseUniversity != nil {
		resp.University = &CourseUniversityRef{
			Name: m.CourseUniversity.UniversityName,
			Slug: m.CourseUniversity.UniversitySlug,
		}
	}
	for _, a := range m.CourseAttachments {
		resp.Attachments = append(resp.Attachments, AttachmentItem{
			File:        a.CourseAttachmentFileURL,
			Description: a.CourseAttachmentDescription,
		})
	}
	return resp
}

func disciplineSlugs(rows []disciplineModel.DisciplineModel) []string {
	out := make([]string, 0, len(rows))
	for _, d := range rows {
		out = append(out, d.DisciplineSlug)
	}
	return out
}
