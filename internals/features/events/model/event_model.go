package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "schoolinfo_backend/internals/features/schools/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
)

const (
	EventTypeOnline   = "online"
	EventTypePhysical = "physical"
	EventTypeHybrid   = "hybrid"

	RegistrationFree = "free"
	RegistrationPaid = "paid"
)

type EventModel struct {
	EventID uuid.UUID `gorm:"type:uuid;primaryKey;column:event_id" json:"event_id"`

	EventTitle            string `gorm:"type:varchar(200);not null;column:event_title" json:"event_title"`
	EventSlug             string `gorm:"type:varchar(220);unique;not null;column:event_slug" json:"event_slug"`
	EventDescription      string `gorm:"type:text;column:event_description" json:"event_description"`
	EventShortDescription string `gorm:"type:varchar(500);column:event_short_description" json:"event_short_description"`

	EventDate      time.Time  `gorm:"type:date;not null;column:event_date" json:"event_date"`
	EventEndDate   *time.Time `gorm:"type:date;column:event_end_date" json:"event_end_date,omitempty"`
	EventTime      string     `gorm:"type:varchar(40);column:event_time" json:"event_time"`
	EventVenue     string     `gorm:"type:varchar(250);not null;column:event_venue" json:"event_venue"`
	EventType      string     `gorm:"type:varchar(10);not null;column:event_type" json:"event_type"`
	EventSeatLimit *int       `gorm:"column:event_seat_limit" json:"event_seat_limit,omitempty"`

	EventOrganizerSchoolID     *uuid.UUID                       `gorm:"type:uuid;column:event_organizer_school_id" json:"event_organizer_school_id,omitempty"`
	EventOrganizerSchool       *schoolModel.SchoolModel         `gorm:"foreignKey:EventOrganizerSchoolID;references:SchoolID;constraint:OnDelete:SET NULL" json:"-"`
	EventOrganizerUniversityID *uuid.UUID                       `gorm:"type:uuid;column:event_organizer_university_id" json:"event_organizer_university_id,omitempty"`
	EventOrganizerUniversity   *universityModel.UniversityModel `gorm:"foreignKey:EventOrganizerUniversityID;references:UniversityID;constraint:OnDelete:SET NULL" json:"-"`
	EventOrganizerCustom       string                           `gorm:"type:varchar(120);column:event_organizer_custom" json:"event_organizer_custom"`

	EventRegistrationType     string     `gorm:"type:varchar(10);not null;default:'free';column:event_registration_type" json:"event_registration_type"`
	EventRegistrationPrice    *float64   `gorm:"type:numeric(8,2);column:event_registration_price" json:"event_registration_price,omitempty"`
	EventRegistrationLink     *string    `gorm:"column:event_registration_link" json:"event_registration_link,omitempty"`
	EventRegistrationDeadline *time.Time `gorm:"type:date;column:event_registration_deadline" json:"event_registration_deadline,omitempty"`

	EventFeaturedImageURL *string `gorm:"column:event_featured_image_url" json:"event_featured_image_url,omitempty"`
	EventBannerImageURL   *string `gorm:"column:event_banner_image_url" json:"event_banner_image_url,omitempty"`

	EventMetaTitle       string `gorm:"type:varchar(200);column:event_meta_title" json:"event_meta_title"`
	EventMetaDescription string `gorm:"type:varchar(500);column:event_meta_description" json:"event_meta_description"`
	EventMetaKeywords    string `gorm:"type:varchar(500);column:event_meta_keywords" json:"event_meta_keywords"`

	EventFeatured bool `gorm:"not null;default:false;column:event_featured" json:"event_featured"`
	EventIsActive bool `gorm:"not null;default:true;column:event_is_active" json:"event_is_active"`

	EventCreatedAt time.Time  `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt *time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
