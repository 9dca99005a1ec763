package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "schoolinfo_backend/internals/features/courses/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
)

type ScholarshipModel struct {
	ScholarshipID uuid.UUID `gorm:"type:uuid;primaryKey;column:scholarship_id" json:"scholarship_id"`

	ScholarshipTitle string `gorm:"type:varchar(255);not null;column:scholarship_title" json:"scholarship_title"`
	ScholarshipSlug  string `gorm:"type:varchar(255);unique;not null;column:scholarship_slug" json:"scholarship_slug"`

	ScholarshipPublishedDate time.Time `gorm:"type:date;not null;column:scholarship_published_date" json:"scholarship_published_date"`
	ScholarshipActiveFrom    time.Time `gorm:"type:date;not null;column:scholarship_active_from" json:"scholarship_active_from"`
	ScholarshipActiveUntil   time.Time `gorm:"type:date;not null;column:scholarship_active_until" json:"scholarship_active_until"`

	// Exactly one organizer form is expected: a listed school, a listed
	// university, or free text.
	ScholarshipOrganizerSchoolID     *uuid.UUID                       `gorm:"type:uuid;column:scholarship_organizer_school_id" json:"scholarship_organizer_school_id,omitempty"`
	ScholarshipOrganizerSchool       *schoolModel.SchoolModel         `gorm:"foreignKey:ScholarshipOrganizerSchoolID;references:SchoolID;constraint:OnDelete:SET NULL" json:"-"`
	ScholarshipOrganizerUniversityID *uuid.UUID                       `gorm:"type:uuid;column:scholarship_organizer_university_id" json:"scholarship_organizer_university_id,omitempty"`
	ScholarshipOrganizerUniversity   *universityModel.UniversityModel `gorm:"foreignKey:ScholarshipOrganizerUniversityID;references:UniversityID;constraint:OnDelete:SET NULL" json:"-"`
	ScholarshipOrganizerCustom       string                           `gorm:"type:varchar(255);column:scholarship_organizer_custom" json:"scholarship_organizer_custom"`

	ScholarshipCourses []courseModel.CourseModel `gorm:"many2many:scholarship_courses;foreignKey:ScholarshipID;joinForeignKey:scholarship_id;references:CourseID;joinReferences:course_id" json:"-"`

	ScholarshipLevelID *uuid.UUID             `gorm:"type:uuid;column:scholarship_level_id" json:"scholarship_level_id,omitempty"`
	ScholarshipLevel   *levelModel.LevelModel `gorm:"foreignKey:ScholarshipLevelID;references:LevelID;constraint:OnDelete:SET NULL" json:"-"`

	ScholarshipUniversityID *uuid.UUID                       `gorm:"type:uuid;column:scholarship_university_id" json:"scholarship_university_id,omitempty"`
	ScholarshipUniversity   *universityModel.UniversityModel `gorm:"foreignKey:ScholarshipUniversityID;references:UniversityID;constraint:OnDelete:SET NULL" json:"-"`

	ScholarshipDescription   string  `gorm:"type:text;column:scholarship_description" json:"scholarship_description"`
	ScholarshipAttachmentURL *string `gorm:"column:scholarship_attachment_url" json:"scholarship_attachment_url,omitempty"`

	ScholarshipFeatured bool `gorm:"not null;default:false;column:scholarship_featured" json:"scholarship_featured"`

	ScholarshipCreatedAt time.Time  `gorm:"column:scholarship_created_at;autoCreateTime" json:"scholarship_created_at"`
	ScholarshipUpdatedAt *time.Time `gorm:"column:scholarship_updated_at;autoUpdateTime" json:"scholarship_updated_at,omitempty"`
}

func (ScholarshipModel) TableName() string { return "scholarships" }

func (m *ScholarshipModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScholarshipID == uuid.Nil {
		m.ScholarshipID = uuid.New()
	}
	return nil
}
