package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "schoolinfo_backend/internals/features/courses/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
)

// InquiryModel is a general visitor inquiry, optionally aimed at a school or
// course. Both links survive the target being deleted.
type InquiryModel struct {
	InquiryID uuid.UUID `gorm:"type:uuid;primaryKey;column:inquiry_id" json:"inquiry_id"`

	InquirySchoolID *uuid.UUID                 `gorm:"type:uuid;index;column:inquiry_school_id" json:"inquiry_school_id,omitempty"`
	InquirySchool   *schoolModel.SchoolModel   `gorm:"foreignKey:InquirySchoolID;references:SchoolID;constraint:OnDelete:SET NULL" json:"-"`
	InquiryCourseID *uuid.UUID                 `gorm:"type:uuid;index;column:inquiry_course_id" json:"inquiry_course_id,omitempty"`
	InquiryCourse   *courseModel.CourseModel   `gorm:"foreignKey:InquiryCourseID;references:CourseID;constraint:OnDelete:SET NULL" json:"-"`

	InquiryFullName string `gorm:"type:varchar(100);not null;column:inquiry_full_name" json:"inquiry_full_name"`
	InquiryPhone    string `gorm:"type:varchar(20);not null;column:inquiry_phone" json:"inquiry_phone"`
	InquiryEmail    string `gorm:"type:varchar(254);not null;column:inquiry_email" json:"inquiry_email"`
	InquiryMessage  string `gorm:"type:text;column:inquiry_message" json:"inquiry_message"`

	InquiryCreatedAt time.Time `gorm:"column:inquiry_created_at;autoCreateTime" json:"inquiry_created_at"`
}

func (InquiryModel) TableName() string { return "inquiries" }

func (m *InquiryModel) BeforeCreate(tx *gorm.DB) error {
	if m.InquiryID == uuid.Nil {
		m.InquiryID = uuid.New()
	}
	return nil
}

// PreRegistrationInquiryModel captures a full pre-registration form for a
// specific school; it goes away with the school.
type PreRegistrationInquiryModel struct {
	PreRegistrationID uuid.UUID `gorm:"type:uuid;primaryKey;column:pre_registration_id" json:"pre_registration_id"`

	PreRegistrationSchoolID uuid.UUID                `gorm:"type:uuid;not null;index;column:pre_registration_school_id" json:"pre_registration_school_id"`
	PreRegistrationSchool   *schoolModel.SchoolModel `gorm:"foreignKey:PreRegistrationSchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"-"`

	PreRegistrationStudentFullName string `gorm:"type:varchar(100);not null;column:pre_registration_student_full_name" json:"pre_registration_student_full_name"`
	PreRegistrationParentName      string `gorm:"type:varchar(100);not null;column:pre_registration_parent_name" json:"pre_registration_parent_name"`
	PreRegistrationPhone           string `gorm:"type:varchar(20);not null;column:pre_registration_phone" json:"pre_registration_phone"`
	PreRegistrationEmail           string `gorm:"type:varchar(254);not null;column:pre_registration_email" json:"pre_registration_email"`
	PreRegistrationGradeOrClass    string `gorm:"type:varchar(30);not null;column:pre_registration_grade_or_class" json:"pre_registration_grade_or_class"`
	PreRegistrationMessage         string `gorm:"type:text;column:pre_registration_message" json:"pre_registration_message"`

	PreRegistrationCreatedAt time.Time `gorm:"column:pre_registration_created_at;autoCreateTime" json:"pre_registration_created_at"`
}

func (PreRegistrationInquiryModel) TableName() string { return "pre_registration_inquiries" }

func (m *PreRegistrationInquiryModel) BeforeCreate(tx *gorm.DB) error {
	if m.PreRegistrationID == uuid.Nil {
		m.PreRegistrationID = uuid.New()
	}
	return nil
}
