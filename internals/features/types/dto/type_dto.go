package dto

import (
	"time"

	"github.com/google/uuid"

	tModel "schoolinfo_backend/internals/features/types/model"
)

type CreateTypeRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=2,max=100"`
}

func (r *CreateTypeRequest) ToModel() *tModel.TypeModel {
	return &tModel.TypeModel{TypeName: r.Name}
}

type UpdateTypeRequest struct {
	Name *string `json:"name" form:"name" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateTypeRequest) ApplyToModel(m *tModel.TypeModel) {
	if r.Name != nil {
		m.TypeName = *r.Name
	}
}

type TypeResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewTypeResponse(m *tModel.TypeModel) *TypeResponse {
	if m == nil {
		return nil
	}
	return &TypeResponse{
		ID:        m.TypeID,
		Name:      m.TypeName,
		Slug:      m.TypeSlug,
		CreatedAt: m.TypeCreatedAt,
		UpdatedAt: m.TypeUpdatedAt,
	}
}
