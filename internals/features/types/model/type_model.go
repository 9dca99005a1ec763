package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TypeModel struct {
	TypeID uuid.UUID `gorm:"type:uuid;primaryKey;column:type_id" json:"type_id"`

	TypeName string `gorm:"type:varchar(100);unique;not null;column:type_name" json:"type_name"`
	TypeSlug string `gorm:"type:varchar(110);unique;not null;column:type_slug" json:"type_slug"`

	TypeCreatedAt time.Time  `gorm:"column:type_created_at;autoCreateTime" json:"type_created_at"`
	TypeUpdatedAt *time.Time `gorm:"column:type_updated_at;autoUpdateTime" json:"type_updated_at,omitempty"`
}

func (TypeModel) TableName() string { return "types" }

func (m *TypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.TypeID == uuid.Nil {
		m.TypeID = uuid.New()
	}
	return nil
}
