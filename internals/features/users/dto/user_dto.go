package dto

import (
	"github.com/google/uuid"

	uModel "schoolinfo_backend/internals/features/users/model"
)

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	Password2 string `json:"password2" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

func NewUserResponse(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:   m.UserID,
		Username: m.UserUsername,
		Email:    m.UserEmail,
		Role:     m.UserRole,
	}
}

type LoginResponse struct {
	Access string        `json:"access"`
	User   *UserResponse `json:"user"`
}
