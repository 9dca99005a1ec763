package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolinfo_backend/internals/constants"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserUsername string `gorm:"type:varchar(150);unique;not null;column:user_username" json:"user_username"`
	UserEmail    string `gorm:"type:varchar(254);column:user_email" json:"user_email"`
	UserPassword string `gorm:"type:varchar(128);not null;column:user_password" json:"-"`

	// "admin" | "school"
	UserRole string `gorm:"type:varchar(20);not null;default:'school';column:user_role" json:"user_role"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	if m.UserRole == "" {
		m.UserRole = constants.RoleSchool
	}
	return nil
}
