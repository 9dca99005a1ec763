package dto

import (
	"time"

	"github.com/google/uuid"

	lModel "schoolinfo_backend/internals/features/levels/model"
)

type CreateLevelRequest struct {
	Title string `json:"title" form:"title" validate:"required,min=2,max=100"`
}

func (r *CreateLevelRequest) ToModel() *lModel.LevelModel {
	return &lModel.LevelModel{LevelTitle: r.Title}
}

type UpdateLevelRequest struct {
	Title *string `json:"title" form:"title" validate:"omitempty,min=2,max=100"`
}

func (r *UpdateLevelRequest) ApplyToModel(m *lModel.LevelModel) {
	if r.Title != nil {
		m.LevelTitle = *r.Title
	}
}

type LevelResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewLevelResponse(m *lModel.LevelModel) *LevelResponse {
	if m == nil {
		return nil
	}
	return &LevelResponse{
		ID:        m.LevelID,
		Title:     m.LevelTitle,
		Slug:      m.LevelSlug,
		CreatedAt: m.LevelCreatedAt,
		UpdatedAt: m.LevelUpdatedAt,
	}
}
