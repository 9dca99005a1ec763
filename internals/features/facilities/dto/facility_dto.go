package dto

import (
	"time"

	"github.com/google/uuid"

	fModel "schoolinfo_backend/internals/features/facilities/model"
)

type CreateFacilityRequest struct {
	Name            string `json:"name" form:"name" validate:"required,min=2,max=200"`
	Description     string `json:"description" form:"description" validate:"omitempty"`
	MetaTitle       string `json:"meta_title" form:"meta_title" validate:"omitempty,max=255"`
	MetaDescription string `json:"meta_description" form:"meta_description" validate:"omitempty"`
}

func (r *CreateFacilityRequest) ToModel() *fModel.FacilityModel {
	return &fModel.FacilityModel{
		FacilityName:            r.Name,
		FacilityDescription:     r.Description,
		FacilityMetaTitle:       r.MetaTitle,
		FacilityMetaDescription: r.MetaDescription,
	}
}

type UpdateFacilityRequest struct {
	Name            *string `json:"name" form:"name" validate:"omitempty,min=2,max=200"`
	Description     *string `json:"description" form:"description" validate:"omitempty"`
	MetaTitle       *string `json:"meta_title" form:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description" form:"meta_description" validate:"omitempty"`
}

func (r *UpdateFacilityRequest) ApplyToModel(m *fModel.FacilityModel) {
	if r.Name != nil {
		m.FacilityName = *r.Name
	}
	if r.Description != nil {
		m.FacilityDescription = *r.Description
	}
	if r.MetaTitle != nil {
		m.FacilityMetaTitle = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		m.FacilityMetaDescription = *r.MetaDescription
	}
}

type FacilityResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	IconURL         *string    `json:"icon,omitempty"`
	Description     string     `json:"description"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func NewFacilityResponse(m *fModel.FacilityModel) *FacilityResponse {
	if m == nil {
		return nil
	}
	return &FacilityResponse{
		ID:              m.FacilityID,
		Name:            m.FacilityName,
		Slug:            m.FacilitySlug,
		IconURL:         m.FacilityIconURL,
		Description:     m.FacilityDescription,
		MetaTitle:       m.FacilityMetaTitle,
		MetaDescription: m.FacilityMetaDescription,
		CreatedAt:       m.FacilityCreatedAt,
		UpdatedAt:       m.FacilityUpdatedAt,
	}
}
