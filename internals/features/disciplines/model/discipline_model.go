package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DisciplineModel struct {
	DisciplineID uuid.UUID `gorm:"type:uuid;primaryKey;column:discipline_id" json:"discipline_id"`

	DisciplineName string `gorm:"type:varchar(200);unique;not null;column:discipline_name" json:"discipline_name"`
	DisciplineSlug string `gorm:"type:varchar(210);unique;not null;column:discipline_slug" json:"discipline_slug"`

	DisciplineCreatedAt time.Time  `gorm:"column:discipline_created_at;autoCreateTime" json:"discipline_created_at"`
	DisciplineUpdatedAt *time.Time `gorm:"column:discipline_updated_at;autoUpdateTime" json:"discipline_updated_at,omitempty"`
}

func (DisciplineModel) TableName() string { return "disciplines" }

func (m *DisciplineModel) BeforeCreate(tx *gorm.DB) error {
	if m.DisciplineID == uuid.Nil {
		m.DisciplineID = uuid.New()
	}
	return nil
}
