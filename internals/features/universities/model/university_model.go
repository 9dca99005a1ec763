package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	typeModel "schoolinfo_backend/internals/features/types/model"
)

type UniversityModel struct {
	UniversityID uuid.UUID `gorm:"type:uuid;primaryKey;column:university_id" json:"university_id"`

	UniversityName string `gorm:"type:varchar(200);unique;not null;column:university_name" json:"university_name"`
	UniversitySlug string `gorm:"type:varchar(210);unique;not null;column:university_slug" json:"university_slug"`

	UniversityAddress         string     `gorm:"type:varchar(255);column:university_address" json:"university_address"`
	UniversityLogoURL         *string    `gorm:"column:university_logo_url" json:"university_logo_url,omitempty"`
	UniversityCoverPhotoURL   *string    `gorm:"column:university_cover_photo_url" json:"university_cover_photo_url,omitempty"`
	UniversityEstablishedDate *time.Time `gorm:"type:date;column:university_established_date" json:"university_established_date,omitempty"`

	UniversityTypeID *uuid.UUID           `gorm:"type:uuid;column:university_type_id" json:"university_type_id,omitempty"`
	UniversityType   *typeModel.TypeModel `gorm:"foreignKey:UniversityTypeID;references:TypeID;constraint:OnDelete:SET NULL" json:"-"`

	UniversityWebsite         *string `gorm:"column:university_website" json:"university_website,omitempty"`
	UniversityLocation        string  `gorm:"type:varchar(255);column:university_location" json:"university_location"`
	UniversitySalientFeatures string  `gorm:"type:text;column:university_salient_features" json:"university_salient_features"`
	UniversityAbout           string  `gorm:"type:text;column:university_about" json:"university_about"`
	UniversityPriority        int     `gorm:"not null;default:999;column:university_priority" json:"university_priority"`

	UniversityMetaTitle       string  `gorm:"type:varchar(255);column:university_meta_title" json:"university_meta_title"`
	UniversityMetaDescription string  `gorm:"type:text;column:university_meta_description" json:"university_meta_description"`
	UniversityOGTitle         string  `gorm:"type:varchar(255);column:university_og_title" json:"university_og_title"`
	UniversityOGDescription   string  `gorm:"type:text;column:university_og_description" json:"university_og_description"`
	UniversityOGImageURL      *string `gorm:"column:university_og_image_url" json:"university_og_image_url,omitempty"`

	UniversityIsVerified        bool `gorm:"not null;default:false;column:university_is_verified" json:"university_is_verified"`
	UniversityForeignAffiliated bool `gorm:"not null;default:false;column:university_foreign_affiliated" json:"university_foreign_affiliated"`
	UniversityStatus            bool `gorm:"not null;default:true;column:university_status" json:"university_status"`

	UniversityPhones  []UniversityPhoneModel   `gorm:"foreignKey:UniversityPhoneUniversityID;references:UniversityID;constraint:OnDelete:CASCADE" json:"university_phones,omitempty"`
	UniversityEmails  []UniversityEmailModel   `gorm:"foreignKey:UniversityEmailUniversityID;references:UniversityID;constraint:OnDelete:CASCADE" json:"university_emails,omitempty"`
	UniversityGallery []UniversityGalleryModel `gorm:"foreignKey:UniversityGalleryUniversityID;references:UniversityID;constraint:OnDelete:CASCADE" json:"university_gallery,omitempty"`

	UniversityCreatedAt time.Time  `gorm:"column:university_created_at;autoCreateTime" json:"university_created_at"`
	UniversityUpdatedAt *time.Time `gorm:"column:university_updated_at;autoUpdateTime" json:"university_updated_at,omitempty"`
}

func (UniversityModel) TableName() string { return "universities" }

func (m *UniversityModel) BeforeCreate(tx *gorm.DB) error {
	if m.UniversityID == uuid.Nil {
		m.UniversityID = uuid.New()
	}
	return nil
}

/* ===================== CHILD RECORDS ===================== */

type UniversityPhoneModel struct {
	UniversityPhoneID           uuid.UUID `gorm:"type:uuid;primaryKey;column:university_phone_id" json:"university_phone_id"`
	UniversityPhoneUniversityID uuid.UUID `gorm:"type:uuid;not null;index;column:university_phone_university_id" json:"-"`
	UniversityPhonePhone        string    `gorm:"type:varchar(20);not null;column:university_phone_phone" json:"phone"`
}

func (UniversityPhoneModel) TableName() string { return "university_phones" }

func (m *UniversityPhoneModel) BeforeCreate(tx *gorm.DB) error {
	if m.UniversityPhoneID == uuid.Nil {
		m.UniversityPhoneID = uuid.New()
	}
	return nil
}

type UniversityEmailModel struct {
	UniversityEmailID           uuid.UUID `gorm:"type:uuid;primaryKey;column:university_email_id" json:"university_email_id"`
	UniversityEmailUniversityID uuid.UUID `gorm:"type:uuid;not null;index;column:university_email_university_id" json:"-"`
	UniversityEmailEmail        string    `gorm:"type:varchar(254);not null;column:university_email_email" json:"email"`
}

func (UniversityEmailModel) TableName() string { return "university_emails" }

func (m *UniversityEmailModel) BeforeCreate(tx *gorm.DB) error {
	if m.UniversityEmailID == uuid.Nil {
		m.UniversityEmailID = uuid.New()
	}
	return nil
}

type UniversityGalleryModel struct {
	UniversityGalleryID           uuid.UUID `gorm:"type:uuid;primaryKey;column:university_gallery_id" json:"university_gallery_id"`
	UniversityGalleryUniversityID uuid.UUID `gorm:"type:uuid;not null;index;column:university_gallery_university_id" json:"-"`
	UniversityGalleryImageURL     string    `gorm:"not null;column:university_gallery_image_url" json:"image"`
	UniversityGalleryCaption      string    `gorm:"type:varchar(255);column:university_gallery_caption" json:"caption"`
}

func (UniversityGalleryModel) TableName() string { return "university_gallery" }

func (m *UniversityGalleryModel) BeforeCreate(tx *gorm.DB) error {
	if m.UniversityGalleryID == uuid.Nil {
		m.UniversityGalleryID = uuid.New()
	}
	return nil
}
