package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Placements correspond to the fixed banner slots on the home page.
var AllowedPlacements = map[string]bool{
	"home-1": true, "home-2": true, "home-3": true, "home-4": true,
	"home-5": true, "home-6": true, "home-7": true, "home-8": true,
	"home-9": true, "home-10": true, "home-11": true, "home-12": true,
}

type AdvertisementModel struct {
	AdvertisementID uuid.UUID `gorm:"type:uuid;primaryKey;column:advertisement_id" json:"advertisement_id"`

	AdvertisementTitle     string `gorm:"type:varchar(255);not null;column:advertisement_title" json:"advertisement_title"`
	AdvertisementLink      string `gorm:"type:varchar(255);not null;column:advertisement_link" json:"advertisement_link"`
	AdvertisementPlacement string `gorm:"type:varchar(20);not null;index;column:advertisement_placement" json:"advertisement_placement"`

	AdvertisementImageMobileURL  string `gorm:"not null;column:advertisement_image_mobile_url" json:"advertisement_image_mobile_url"`
	AdvertisementImageDesktopURL string `gorm:"not null;column:advertisement_image_desktop_url" json:"advertisement_image_desktop_url"`

	AdvertisementIsActive bool `gorm:"not null;default:true;column:advertisement_is_active" json:"advertisement_is_active"`

	AdvertisementCreatedAt time.Time  `gorm:"column:advertisement_created_at;autoCreateTime" json:"advertisement_created_at"`
	AdvertisementUpdatedAt *time.Time `gorm:"column:advertisement_updated_at;autoUpdateTime" json:"advertisement_updated_at,omitempty"`
}

func (AdvertisementModel) TableName() string { return "advertisements" }

func (m *AdvertisementModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdvertisementID == uuid.Nil {
		m.AdvertisementID = uuid.New()
	}
	return nil
}
