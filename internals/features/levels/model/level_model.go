package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LevelModel struct {
	LevelID uuid.UUID `gorm:"type:uuid;primaryKey;column:level_id" json:"level_id"`

	LevelTitle string `gorm:"type:varchar(100);unique;not null;column:level_title" json:"level_title"`
	LevelSlug  string `gorm:"type:varchar(110);unique;not null;column:level_slug" json:"level_slug"`

	LevelCreatedAt time.Time  `gorm:"column:level_created_at;autoCreateTime" json:"level_created_at"`
	LevelUpdatedAt *time.Time `gorm:"column:level_updated_at;autoUpdateTime" json:"level_updated_at,omitempty"`
}

func (LevelModel) TableName() string { return "levels" }

func (m *LevelModel) BeforeCreate(tx *gorm.DB) error {
	if m.LevelID == uuid.Nil {
		m.LevelID = uuid.New()
	}
	return nil
}
