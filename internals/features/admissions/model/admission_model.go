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

type AdmissionModel struct {
	AdmissionID uuid.UUID `gorm:"type:uuid;primaryKey;column:admission_id" json:"admission_id"`

	AdmissionTitle string `gorm:"type:varchar(255);not null;column:admission_title" json:"admission_title"`
	AdmissionSlug  string `gorm:"type:varchar(255);unique;not null;column:admission_slug" json:"admission_slug"`

	AdmissionPublishedDate time.Time `gorm:"type:date;not null;column:admission_published_date" json:"admission_published_date"`
	AdmissionActiveFrom    time.Time `gorm:"type:date;not null;column:admission_active_from" json:"admission_active_from"`
	AdmissionActiveUntil   time.Time `gorm:"type:date;not null;column:admission_active_until" json:"admission_active_until"`

	AdmissionSchoolID uuid.UUID                `gorm:"type:uuid;not null;index;column:admission_school_id" json:"admission_school_id"`
	AdmissionSchool   *schoolModel.SchoolModel `gorm:"foreignKey:AdmissionSchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"-"`

	AdmissionCourses []courseModel.CourseModel `gorm:"many2many:admission_courses;foreignKey:AdmissionID;joinForeignKey:admission_id;references:CourseID;joinReferences:course_id" json:"-"`

	AdmissionLevelID *uuid.UUID             `gorm:"type:uuid;column:admission_level_id" json:"admission_level_id,omitempty"`
	AdmissionLevel   *levelModel.LevelModel `gorm:"foreignKey:AdmissionLevelID;references:LevelID;constraint:OnDelete:SET NULL" json:"-"`

	AdmissionUniversityID *uuid.UUID                       `gorm:"type:uuid;column:admission_university_id" json:"admission_university_id,omitempty"`
	AdmissionUniversity   *universityModel.UniversityModel `gorm:"foreignKey:AdmissionUniversityID;references:UniversityID;constraint:OnDelete:SET NULL" json:"-"`

	AdmissionFeatured    bool   `gorm:"not null;default:false;column:admission_featured" json:"admission_featured"`
	AdmissionDescription string `gorm:"type:text;column:admission_description" json:"admission_description"`

	AdmissionCreatedAt time.Time  `gorm:"column:admission_created_at;autoCreateTime" json:"admission_created_at"`
	AdmissionUpdatedAt *time.Time `gorm:"column:admission_updated_at;autoUpdateTime" json:"admission_updated_at,omitempty"`
}

func (AdmissionModel) TableName() string { return "admissions" }

func (m *AdmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdmissionID == uuid.Nil {
		m.AdmissionID = uuid.New()
	}
	return nil
}
