package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DistrictModel struct {
	DistrictID uuid.UUID `gorm:"type:uuid;primaryKey;column:district_id" json:"district_id"`

	DistrictName string `gorm:"type:varchar(200);unique;not null;column:district_name" json:"district_name"`
	DistrictSlug string `gorm:"type:varchar(210);unique;not null;column:district_slug" json:"district_slug"`

	DistrictCreatedAt time.Time  `gorm:"column:district_created_at;autoCreateTime" json:"district_created_at"`
	DistrictUpdatedAt *time.Time `gorm:"column:district_updated_at;autoUpdateTime" json:"district_updated_at,omitempty"`
}

func (DistrictModel) TableName() string { return "districts" }

func (m *DistrictModel) BeforeCreate(tx *gorm.DB) error {
	if m.DistrictID == uuid.Nil {
		m.DistrictID = uuid.New()
	}
	return nil
}
