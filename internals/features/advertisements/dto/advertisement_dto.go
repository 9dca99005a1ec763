package dto

import (
	"time"

	"github.com/google/uuid"

	adModel "schoolinfo_backend/internals/features/advertisements/model"
)

type CreateAdvertisementRequest struct {
	Title     string `json:"title" form:"title" validate:"required,min=2,max=255"`
	Link      string `json:"link" form:"link" validate:"required,url"`
	Placement string `json:"placement" form:"placement" validate:"required,oneof=home-1 home-2 home-3 home-4 home-5 home-6 home-7 home-8 home-9 home-10 home-11 home-12"`
	IsActive  *bool  `json:"is_active" form:"is_active" validate:"omitempty"`
}

func (r *CreateAdvertisementRequest) ToModel() *adModel.AdvertisementModel {
	m := &adModel.AdvertisementModel{
		AdvertisementTitle:     r.Title,
		AdvertisementLink:      r.Link,
		AdvertisementPlacement: r.Placement,
		AdvertisementIsActive:  true,
	}
	if r.IsActive != nil {
		m.AdvertisementIsActive = *r.IsActive
	}
	return m
}

type UpdateAdvertisementRequest struct {
	Title     *string `json:"title" form:"title" validate:"omitempty,min=2,max=255"`
	Link      *string `json:"link" form:"link" validate:"omitempty,url"`
	Placement *string `json:"placement" form:"placement" validate:"omitempty,oneof=home-1 home-2 home-3 home-4 home-5 home-6 home-7 home-8 home-9 home-10 home-11 home-12"`
	IsActive  *bool   `json:"is_active" form:"is_active" validate:"omitempty"`
}

func (r *UpdateAdvertisementRequest) ApplyToModel(m *adModel.AdvertisementModel) {
	if r.Title != nil {
		m.AdvertisementTitle = *r.Title
	}
	if r.Link != nil {
		m.AdvertisementLink = *r.Link
	}
	if r.Placement != nil {
		m.AdvertisementPlacement = *r.Placement
	}
	if r.IsActive != nil {
		m.AdvertisementIsActive = *r.IsActive
	}
}

type AdvertisementResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Link            string     `json:"link"`
	Placement       string     `json:"placement"`
	ImageMobileURL  string     `json:"image_mobile"`
	ImageDesktopURL string     `json:"image_desktop"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func NewAdvertisementResponse(m *adModel.AdvertisementModel) *AdvertisementResponse {
	if m == nil {
		return nil
	}
	return &AdvertisementResponse{
		ID:              m.AdvertisementID,
		Title:           m.AdvertisementTitle,
		Link:            m.AdvertisementLink,
		Placement:       m.AdvertisementPlacement,
		ImageMobileURL:  m.AdvertisementImageMobileURL,
		ImageDesktopURL: m.AdvertisementImageDesktopURL,
		IsActive:        m.AdvertisementIsActive,
		CreatedAt:       m.AdvertisementCreatedAt,
		UpdatedAt:       m.AdvertisementUpdatedAt,
	}
}
