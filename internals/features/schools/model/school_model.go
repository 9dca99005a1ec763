package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "schoolinfo_backend/internals/features/courses/model"
	districtModel "schoolinfo_backend/internals/features/districts/model"
	facilityModel "schoolinfo_backend/internals/features/facilities/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	typeModel "schoolinfo_backend/internals/features/types/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
	userModel "schoolinfo_backend/internals/features/users/model"
)

type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"type:uuid;primaryKey;column:school_id" json:"school_id"`

	// The owning account used for the school dashboard. Deleting the account
	// keeps the listing.
	SchoolUserID *uuid.UUID           `gorm:"type:uuid;uniqueIndex;column:school_user_id" json:"school_user_id,omitempty"`
	SchoolUser   *userModel.UserModel `gorm:"foreignKey:SchoolUserID;references:UserID;constraint:OnDelete:SET NULL" json:"-"`

	SchoolName string `gorm:"type:varchar(200);unique;not null;column:school_name" json:"school_name"`
	SchoolSlug string `gorm:"type:varchar(210);unique;not null;column:school_slug" json:"school_slug"`

	SchoolLogoURL         *string    `gorm:"column:school_logo_url" json:"school_logo_url,omitempty"`
	SchoolCoverPhotoURL   *string    `gorm:"column:school_cover_photo_url" json:"school_cover_photo_url,omitempty"`
	SchoolAddress         string     `gorm:"type:varchar(255);column:school_address" json:"school_address"`
	SchoolEstablishedDate *time.Time `gorm:"type:date;column:school_established_date" json:"school_established_date,omitempty"`

	SchoolVerification bool `gorm:"not null;default:false;column:school_verification" json:"school_verification"`
	SchoolFeatured     bool `gorm:"not null;default:false;column:school_featured" json:"school_featured"`

	SchoolDistrictID *uuid.UUID                   `gorm:"type:uuid;column:school_district_id" json:"school_district_id,omitempty"`
	SchoolDistrict   *districtModel.DistrictModel `gorm:"foreignKey:SchoolDistrictID;references:DistrictID;constraint:OnDelete:SET NULL" json:"-"`

	SchoolLevelID  *uuid.UUID             `gorm:"type:uuid;column:school_level_id" json:"school_level_id,omitempty"`
	SchoolLevel    *levelModel.LevelModel `gorm:"foreignKey:SchoolLevelID;references:LevelID;constraint:OnDelete:SET NULL" json:"-"`
	SchoolLevelText string                `gorm:"type:varchar(150);column:school_level_text" json:"school_level_text"`

	SchoolTypeID *uuid.UUID           `gorm:"type:uuid;column:school_type_id" json:"school_type_id,omitempty"`
	SchoolType   *typeModel.TypeModel `gorm:"foreignKey:SchoolTypeID;references:TypeID;constraint:OnDelete:SET NULL" json:"-"`

	SchoolFacilities   []facilityModel.FacilityModel     `gorm:"many2many:school_facilities;foreignKey:SchoolID;joinForeignKey:school_id;references:FacilityID;joinReferences:facility_id" json:"-"`
	SchoolUniversities []universityModel.UniversityModel `gorm:"many2many:school_universities;foreignKey:SchoolID;joinForeignKey:school_id;references:UniversityID;joinReferences:university_id" json:"-"`

	SchoolWebsite        *string `gorm:"column:school_website" json:"school_website,omitempty"`
	SchoolPriority       int     `gorm:"not null;default:999;column:school_priority" json:"school_priority"`
	SchoolMapLink        string  `gorm:"type:varchar(1024);column:school_map_link" json:"school_map_link"`
	SchoolSalientFeature string  `gorm:"type:text;column:school_salient_feature" json:"school_salient_feature"`
	SchoolScholarship    string  `gorm:"type:text;column:school_scholarship" json:"school_scholarship"`
	SchoolAboutCollege   string  `gorm:"type:text;column:school_about_college" json:"school_about_college"`

	SchoolMetaTitle       string  `gorm:"type:varchar(255);column:school_meta_title" json:"school_meta_title"`
	SchoolMetaDescription string  `gorm:"type:text;column:school_meta_description" json:"school_meta_description"`
	SchoolOGTitle         string  `gorm:"type:varchar(255);column:school_og_title" json:"school_og_title"`
	SchoolOGDescription   string  `gorm:"type:text;column:school_og_description" json:"school_og_description"`
	SchoolOGImageURL      *string `gorm:"column:school_og_image_url" json:"school_og_image_url,omitempty"`

	SchoolPhones      []SchoolPhoneModel       `gorm:"foreignKey:SchoolPhoneSchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"school_phones,omitempty"`
	SchoolEmails      []SchoolEmailModel       `gorm:"foreignKey:SchoolEmailSchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"school_emails,omitempty"`
	SchoolGallery     []SchoolGalleryModel     `gorm:"foreignKey:SchoolGallerySchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"school_gallery,omitempty"`
	SchoolBrochures   []SchoolBrochureModel    `gorm:"foreignKey:SchoolBrochureSchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"school_brochures,omitempty"`
	SchoolSocialMedia []SchoolSocialMediaModel `gorm:"foreignKey:SchoolSocialMediaSchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"school_social_media,omitempty"`
	SchoolFAQs        []SchoolFAQModel         `gorm:"foreignKey:SchoolFAQSchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"school_faqs,omitempty"`
	SchoolMessages    []SchoolMessageModel     `gorm:"foreignKey:SchoolMessageSchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"school_messages,omitempty"`
	SchoolCourses     []SchoolCourseModel      `gorm:"foreignKey:SchoolCourseSchoolID;references:SchoolID;constraint:OnDelete:CASCADE" json:"school_courses,omitempty"`

	SchoolCreatedAt time.Time  `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt *time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	return nil
}

/* ===================== CHILD RECORDS ===================== */

type SchoolPhoneModel struct {
	SchoolPhoneID       uuid.UUID `gorm:"type:uuid;primaryKey;column:school_phone_id" json:"school_phone_id"`
	SchoolPhoneSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:school_phone_school_id" json:"-"`
	SchoolPhonePhone    string    `gorm:"type:varchar(20);not null;column:school_phone_phone" json:"phone"`
}

func (SchoolPhoneModel) TableName() string { return "school_phones" }

func (m *SchoolPhoneModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolPhoneID == uuid.Nil {
		m.SchoolPhoneID = uuid.New()
	}
	return nil
}

type SchoolEmailModel struct {
	SchoolEmailID       uuid.UUID `gorm:"type:uuid;primaryKey;column:school_email_id" json:"school_email_id"`
	SchoolEmailSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:school_email_school_id" json:"-"`
	SchoolEmailEmail    string    `gorm:"type:varchar(254);not null;column:school_email_email" json:"email"`
}

func (SchoolEmailModel) TableName() string { return "school_emails" }

func (m *SchoolEmailModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolEmailID == uuid.Nil {
		m.SchoolEmailID = uuid.New()
	}
	return nil
}

type SchoolGalleryModel struct {
	SchoolGalleryID       uuid.UUID `gorm:"type:uuid;primaryKey;column:school_gallery_id" json:"school_gallery_id"`
	SchoolGallerySchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:school_gallery_school_id" json:"-"`
	SchoolGalleryImageURL string    `gorm:"not null;column:school_gallery_image_url" json:"image"`
	SchoolGalleryCaption  string    `gorm:"type:varchar(255);column:school_gallery_caption" json:"caption"`
}

func (SchoolGalleryModel) TableName() string { return "school_gallery" }

func (m *SchoolGalleryModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolGalleryID == uuid.Nil {
		m.SchoolGalleryID = uuid.New()
	}
	return nil
}

type SchoolBrochureModel struct {
	SchoolBrochureID          uuid.UUID `gorm:"type:uuid;primaryKey;column:school_brochure_id" json:"school_brochure_id"`
	SchoolBrochureSchoolID    uuid.UUID `gorm:"type:uuid;not null;index;column:school_brochure_school_id" json:"-"`
	SchoolBrochureFileURL     string    `gorm:"not null;column:school_brochure_file_url" json:"file"`
	SchoolBrochureDescription string    `gorm:"type:varchar(255);column:school_brochure_description" json:"description"`
}

func (SchoolBrochureModel) TableName() string { return "school_brochures" }

func (m *SchoolBrochureModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolBrochureID == uuid.Nil {
		m.SchoolBrochureID = uuid.New()
	}
	return nil
}

type SchoolSocialMediaModel struct {
	SchoolSocialMediaID       uuid.UUID `gorm:"type:uuid;primaryKey;column:school_social_media_id" json:"school_social_media_id"`
	SchoolSocialMediaSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:school_social_media_school_id" json:"-"`
	SchoolSocialMediaPlatform string    `gorm:"type:varchar(50);column:school_social_media_platform" json:"platform"`
	SchoolSocialMediaURL      string    `gorm:"type:varchar(255);column:school_social_media_url" json:"url"`
}

func (SchoolSocialMediaModel) TableName() string { return "school_social_media" }

func (m *SchoolSocialMediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolSocialMediaID == uuid.Nil {
		m.SchoolSocialMediaID = uuid.New()
	}
	return nil
}

type SchoolFAQModel struct {
	SchoolFAQID       uuid.UUID `gorm:"type:uuid;primaryKey;column:school_faq_id" json:"school_faq_id"`
	SchoolFAQSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:school_faq_school_id" json:"-"`
	SchoolFAQQuestion string    `gorm:"type:varchar(255);not null;column:school_faq_question" json:"question"`
	SchoolFAQAnswer   string    `gorm:"type:text;column:school_faq_answer" json:"answer"`
}

func (SchoolFAQModel) TableName() string { return "school_faqs" }

func (m *SchoolFAQModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolFAQID == uuid.Nil {
		m.SchoolFAQID = uuid.New()
	}
	return nil
}

type SchoolMessageModel struct {
	SchoolMessageID          uuid.UUID `gorm:"type:uuid;primaryKey;column:school_message_id" json:"school_message_id"`
	SchoolMessageSchoolID    uuid.UUID `gorm:"type:uuid;not null;index;column:school_message_school_id" json:"-"`
	SchoolMessageImageURL    *string   `gorm:"column:school_message_image_url" json:"image,omitempty"`
	SchoolMessageTitle       string    `gorm:"type:varchar(200);column:school_message_title" json:"title"`
	SchoolMessageMessage     string    `gorm:"type:text;column:school_message_message" json:"message"`
	SchoolMessageName        string    `gorm:"type:varchar(100);column:school_message_name" json:"name"`
	SchoolMessageDesignation string    `gorm:"type:varchar(100);column:school_message_designation" json:"designation"`
}

func (SchoolMessageModel) TableName() string { return "school_messages" }

func (m *SchoolMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolMessageID == uuid.Nil {
		m.SchoolMessageID = uuid.New()
	}
	return nil
}

// SchoolCourseModel is the attributed link between a school and a course it
// offers. One row per school+course pair.
type SchoolCourseModel struct {
	SchoolCourseID       uuid.UUID `gorm:"type:uuid;primaryKey;column:school_course_id" json:"school_course_id"`
	SchoolCourseSchoolID uuid.UUID `gorm:"type:uuid;not null;index:idx_school_course_pair,unique;column:school_course_school_id" json:"-"`
	SchoolCourseCourseID uuid.UUID `gorm:"type:uuid;not null;index:idx_school_course_pair,unique;column:school_course_course_id" json:"-"`

	SchoolCourseCourse *courseModel.CourseModel `gorm:"foreignKey:SchoolCourseCourseID;references:CourseID;constraint:OnDelete:CASCADE" json:"-"`

	SchoolCourseFee      *float64 `gorm:"type:numeric(12,2);column:school_course_fee" json:"fee,omitempty"`
	SchoolCourseStatus   string   `gorm:"type:varchar(50);column:school_course_status" json:"status"`
	SchoolCourseAdminOpen bool    `gorm:"not null;default:true;column:school_course_admin_open" json:"admin_open"`
}

func (SchoolCourseModel) TableName() string { return "school_courses" }

func (m *SchoolCourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolCourseID == uuid.Nil {
		m.SchoolCourseID = uuid.New()
	}
	return nil
}
