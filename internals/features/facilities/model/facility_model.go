package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacilityModel struct {
	FacilityID uuid.UUID `gorm:"type:uuid;primaryKey;column:facility_id" json:"facility_id"`

	FacilityName        string  `gorm:"type:varchar(200);unique;not null;column:facility_name" json:"facility_name"`
	FacilitySlug        string  `gorm:"type:varchar(210);unique;not null;column:facility_slug" json:"facility_slug"`
	FacilityIconURL     *string `gorm:"column:facility_icon_url" json:"facility_icon_url,omitempty"`
	FacilityDescription string  `gorm:"type:text;column:facility_description" json:"facility_description"`

	FacilityMetaTitle       string `gorm:"type:varchar(255);column:facility_meta_title" json:"facility_meta_title"`
	FacilityMetaDescription string `gorm:"type:text;column:facility_meta_description" json:"facility_meta_description"`

	FacilityCreatedAt time.Time  `gorm:"column:facility_created_at;autoCreateTime" json:"facility_created_at"`
	FacilityUpdatedAt *time.Time `gorm:"column:facility_updated_at;autoUpdateTime" json:"facility_updated_at,omitempty"`
}

func (FacilityModel) TableName() string { return "facilities" }

func (m *FacilityModel) BeforeCreate(tx *gorm.DB) error {
	if m.FacilityID == uuid.Nil {
		m.FacilityID = uuid.New()
	}
	return nil
}
