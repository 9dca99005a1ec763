package dto

import (
	"time"

	"github.com/google/uuid"

	dModel "schoolinfo_backend/internals/features/districts/model"
)

type CreateDistrictRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=2,max=200"`
}

func (r *CreateDistrictRequest) ToModel() *dModel.DistrictModel {
	return &dModel.DistrictModel{DistrictName: r.Name}
}

type UpdateDistrictRequest struct {
	Name *string `json:"name" form:"name" validate:"omitempty,min=2,max=200"`
}

// Slug is never applied on update; it is fixed at creation.
func (r *UpdateDistrictRequest) ApplyToModel(m *dModel.DistrictModel) {
	if r.Name != nil {
		m.DistrictName = *r.Name
	}
}

type DistrictResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewDistrictResponse(m *dModel.DistrictModel) *DistrictResponse {
	if m == nil {
		return nil
	}
	return &DistrictResponse{
		ID:        m.DistrictID,
		Name:      m.DistrictName,
		Slug:      m.DistrictSlug,
		CreatedAt: m.DistrictCreatedAt,
		UpdatedAt: m.DistrictUpdatedAt,
	}
}
