package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	disciplineModel "schoolinfo_backend/internals/features/disciplines/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;primaryKey;column:course_id" json:"course_id"`

	CourseName         string `gorm:"type:varchar(200);not null;column:course_name" json:"course_name"`
	CourseAbbreviation string `gorm:"type:varchar(50);column:course_abbreviation" json:"course_abbreviation"`
	CourseSlug         string `gorm:"type:varchar(220);unique;not null;column:course_slug" json:"course_slug"`

	CourseUniversityID uuid.UUID                        `gorm:"type:uuid;not null;index;column:course_university_id" json:"course_university_id"`
	CourseUniversity   *universityModel.UniversityModel `gorm:"foreignKey:CourseUniversityID;references:UniversityID;constraint:OnDelete:CASCADE" json:"-"`

	CourseDuration string `gorm:"type:varchar(100);column:course_duration" json:"course_duration"`

	CourseLevelID *uuid.UUID             `gorm:"type:uuid;column:course_level_id" json:"course_level_id,omitempty"`
	CourseLevel   *levelModel.LevelModel `gorm:"foreignKey:CourseLevelID;references:LevelID;constraint:OnDelete:SET NULL" json:"-"`

	CourseDisciplines []disciplineModel.DisciplineModel `gorm:"many2many:course_disciplines;foreignKey:CourseID;joinForeignKey:course_id;references:DisciplineID;joinReferences:discipline_id" json:"-"`

	CourseShortDescription string `gorm:"type:text;column:course_short_description" json:"course_short_description"`
	CourseLongDescription  string `gorm:"type:text;column:course_long_description" json:"course_long_description"`
	CourseOutcome          string `gorm:"type:text;column:course_outcome" json:"course_outcome"`
	CourseEligibility      string `gorm:"type:text;column:course_eligibility" json:"course_eligibility"`
	CourseCurriculum       string `gorm:"type:text;column:course_curriculum" json:"course_curriculum"`

	CourseMetaTitle       string  `gorm:"type:varchar(255);column:course_meta_title" json:"course_meta_title"`
	CourseMetaDescription string  `gorm:"type:text;column:course_meta_description" json:"course_meta_description"`
	CourseOGTitle         string  `gorm:"type:varchar(255);column:course_og_title" json:"course_og_title"`
	CourseOGDescription   string  `gorm:"type:text;column:course_og_description" json:"course_og_description"`
	CourseOGImageURL      *string `gorm:"column:course_og_image_url" json:"course_og_image_url,omitempty"`

	CourseAttachments []CourseAttachmentModel `gorm:"foreignKey:CourseAttachmentCourseID;references:CourseID;constraint:OnDelete:CASCADE" json:"course_attachments,omitempty"`

	CourseCreatedAt time.Time  `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}

type CourseAttachmentModel struct {
	CourseAttachmentID          uuid.UUID `gorm:"type:uuid;primaryKey;column:course_attachment_id" json:"course_attachment_id"`
	CourseAttachmentCourseID    uuid.UUID `gorm:"type:uuid;not null;index;column:course_attachment_course_id" json:"-"`
	CourseAttachmentFileURL     string    `gorm:"not null;column:course_attachment_file_url" json:"file"`
	CourseAttachmentDescription string    `gorm:"type:varchar(255);column:course_attachment_description" json:"description"`
}

func (CourseAttachmentModel) TableName() string { return "course_attachments" }

func (m *CourseAttachmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseAttachmentID == uuid.Nil {
		m.CourseAttachmentID = uuid.New()
	}
	return nil
}
