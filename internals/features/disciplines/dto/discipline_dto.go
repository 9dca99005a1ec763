package dto

import (
	"time"

	"github.com/google/uuid"

	dModel "schoolinfo_backend/internals/features/disciplines/model"
)

type CreateDisciplineRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=2,max=200"`
}

func (r *CreateDisciplineRequest) ToModel() *dModel.DisciplineModel {
	return &dModel.DisciplineModel{DisciplineName: r.Name}
}

type UpdateDisciplineRequest struct {
	Name *string `json:"name" form:"name" validate:"omitempty,min=2,max=200"`
}

func (r *UpdateDisciplineRequest) ApplyToModel(m *dModel.DisciplineModel) {
	if r.Name != nil {
		m.DisciplineName = *r.Name
	}
}

type DisciplineResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewDisciplineResponse(m *dModel.DisciplineModel) *DisciplineResponse {
	if m == nil {
		return nil
	}
	return &DisciplineResponse{
		ID:        m.DisciplineID,
		Name:      m.DisciplineName,
		Slug:      m.DisciplineSlug,
		CreatedAt: m.DisciplineCreatedAt,
		UpdatedAt: m.DisciplineUpdatedAt,
	}
}
