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

type InformationCategoryModel struct {
	InformationCategoryID uuid.UUID `gorm:"type:uuid;primaryKey;column:information_category_id" json:"information_category_id"`

	InformationCategoryName        string `gorm:"type:varchar(100);unique;not null;column:information_category_name" json:"information_category_name"`
	InformationCategorySlug        string `gorm:"type:varchar(120);unique;not null;column:information_category_slug" json:"information_category_slug"`
	InformationCategoryDescription string `gorm:"type:text;column:information_category_description" json:"information_category_description"`
	InformationCategoryColor       string `gorm:"type:varchar(7);not null;default:'#3B82F6';column:information_category_color" json:"information_category_color"`
	InformationCategoryIsActive    bool   `gorm:"not null;default:true;column:information_category_is_active" json:"information_category_is_active"`

	InformationCategoryCreatedAt time.Time  `gorm:"column:information_category_created_at;autoCreateTime" json:"information_category_created_at"`
	InformationCategoryUpdatedAt *time.Time `gorm:"column:information_category_updated_at;autoUpdateTime" json:"information_category_updated_at,omitempty"`
}

func (InformationCategoryModel) TableName() string { return "information_categories" }

func (m *InformationCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.InformationCategoryID == uuid.Nil {
		m.InformationCategoryID = uuid.New()
	}
	if m.InformationCategoryColor == "" {
		m.InformationCategoryColor = "#3B82F6"
	}
	return nil
}

type InformationModel struct {
	InformationID uuid.UUID `gorm:"type:uuid;primaryKey;column:information_id" json:"information_id"`

	InformationTitle string `gorm:"type:varchar(200);not null;column:information_title" json:"information_title"`
	InformationSlug  string `gorm:"type:varchar(220);unique;not null;column:information_slug" json:"information_slug"`

	InformationCategoryID uuid.UUID                 `gorm:"type:uuid;not null;index;column:information_category_id" json:"information_category_id"`
	InformationCategory   *InformationCategoryModel `gorm:"foreignKey:InformationCategoryID;references:InformationCategoryID;constraint:OnDelete:CASCADE" json:"-"`

	InformationPublishedDate time.Time `gorm:"type:date;not null;column:information_published_date" json:"information_published_date"`
	InformationSummary       string    `gorm:"type:varchar(500);column:information_summary" json:"information_summary"`

	InformationTopDescription   string `gorm:"type:text;column:information_top_description" json:"information_top_description"`
	InformationContent          string `gorm:"type:text;column:information_content" json:"information_content"`
	InformationBelowDescription string `gorm:"type:text;column:information_below_description" json:"information_below_description"`

	InformationFeaturedImageURL *string `gorm:"column:information_featured_image_url" json:"information_featured_image_url,omitempty"`
	InformationBannerImageURL   *string `gorm:"column:information_banner_image_url" json:"information_banner_image_url,omitempty"`

	InformationMetaTitle       string `gorm:"type:varchar(60);column:information_meta_title" json:"information_meta_title"`
	InformationMetaDescription string `gorm:"type:varchar(160);column:information_meta_description" json:"information_meta_description"`
	InformationMetaKeywords    string `gorm:"type:varchar(255);column:information_meta_keywords" json:"information_meta_keywords"`

	InformationFeatured bool `gorm:"not null;default:false;column:information_featured" json:"information_featured"`
	InformationIsActive bool `gorm:"not null;default:true;column:information_is_active" json:"information_is_active"`

	InformationUniversities []universityModel.UniversityModel `gorm:"many2many:information_universities;foreignKey:InformationID;joinForeignKey:information_id;references:UniversityID;joinReferences:university_id" json:"-"`
	InformationLevels       []levelModel.LevelModel           `gorm:"many2many:information_levels;foreignKey:InformationID;joinForeignKey:information_id;references:LevelID;joinReferences:level_id" json:"-"`
	InformationCourses      []courseModel.CourseModel         `gorm:"many2many:information_courses;foreignKey:InformationID;joinForeignKey:information_id;references:CourseID;joinReferences:course_id" json:"-"`
	InformationSchools      []schoolModel.SchoolModel         `gorm:"many2many:information_schools;foreignKey:InformationID;joinForeignKey:information_id;references:SchoolID;joinReferences:school_id" json:"-"`

	InformationCreatedAt time.Time  `gorm:"column:information_created_at;autoCreateTime" json:"information_created_at"`
	InformationUpdatedAt *time.Time `gorm:"column:information_updated_at;autoUpdateTime" json:"information_updated_at,omitempty"`
}

func (InformationModel) TableName() string { return "information" }

func (m *InformationModel) BeforeCreate(tx *gorm.DB) error {
	if m.InformationID == uuid.Nil {
		m.InformationID = uuid.New()
	}
	return nil
}
