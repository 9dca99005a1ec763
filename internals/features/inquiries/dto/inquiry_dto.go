package dto

import (
	"time"

	"github.com/google/uuid"

	iModel "schoolinfo_backend/internals/features/inquiries/model"
)

/* ===================== REQUESTS ===================== */

type CreateInquiryRequest struct {
	School   string `json:"school" form:"school" validate:"omitempty"` // school slug
	Course   string `json:"course" form:"course" validate:"omitempty"` // course slug
	FullName string `json:"full_name" form:"full_name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" form:"phone" validate:"required,max=20"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Message  string `json:"message" form:"message" validate:"omitempty"`
}

func (r *CreateInquiryRequest) ToModel() *iModel.InquiryModel {
	return &iModel.InquiryModel{
		InquiryFullName: r.FullName,
		InquiryPhone:    r.Phone,
		InquiryEmail:    r.Email,
		InquiryMessage:  r.Message,
	}
}

type CreatePreRegistrationRequest struct {
	School          string `json:"school" form:"school" validate:"required"` // school slug
	StudentFullName string `json:"student_full_name" form:"student_full_name" validate:"required,min=2,max=100"`
	ParentName      string `json:"parent_name" form:"parent_name" validate:"required,min=2,max=100"`
	Phone           string `json:"phone" form:"phone" validate:"required,max=20"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	GradeOrClass    string `json:"grade_or_class" form:"grade_or_class" validate:"required,max=30"`
	Message         string `json:"message" form:"message" validate:"omitempty"`
}

func (r *CreatePreRegistrationRequest) ToModel() *iModel.PreRegistrationInquiryModel {
	return &iModel.PreRegistrationInquiryModel{
		PreRegistrationStudentFullName: r.StudentFullName,
		PreRegistrationParentName:      r.ParentName,
		PreRegistrationPhone:           r.Phone,
		PreRegistrationEmail:           r.Email,
		PreRegistrationGradeOrClass:    r.GradeOrClass,
		PreRegistrationMessage:         r.Message,
	}
}

/* ===================== RESPONSES ===================== */

type InquiryResponse struct {
	ID        uuid.UUID `json:"id"`
	School    string    `json:"school,omitempty"`
	Course    string    `json:"course,omitempty"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewInquiryResponse(m *iModel.InquiryModel) *InquiryResponse {
	if m == nil {
		return nil
	}
	resp := &InquiryResponse{
		ID:        m.InquiryID,
		FullName:  m.InquiryFullName,
		Phone:     m.InquiryPhone,
		Email:     m.InquiryEmail,
		Message:   m.InquiryMessage,
		CreatedAt: m.InquiryCreatedAt,
	}
	if m.InquirySchool != nil {
		resp.School = m.InquirySchool.SchoolSlug
	}
	if m.InquiryCourse != nil {
		resp.Course = m.InquiryCourse.CourseSlug
	}
	return resp
}

type PreRegistrationResponse struct {
	ID              uuid.UUID `json:"id"`
	School          string    `json:"school,omitempty"`
	StudentFullName string    `json:"student_full_name"`
	ParentName      string    `json:"parent_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	GradeOrClass    string    `json:"grade_or_class"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewPreRegistrationResponse(m *iModel.PreRegistrationInquiryModel) *PreRegistrationResponse {
	if m == nil {
		return nil
	}
	resp := &PreRegistrationResponse{
		ID:              m.PreRegistrationID,
		StudentFullName: m.PreRegistrationStudentFullName,
		ParentName:      m.PreRegistrationParentName,
		Phone:           m.PreRegistrationPhone,
		Email:           m.PreRegistrationEmail,
		GradeOrClass:    m.PreRegistrationGradeOrClass,
		Message:         m.PreRegistrationMessage,
		CreatedAt:       m.PreRegistrationCreatedAt,
	}
	if m.PreRegistrationSchool != nil {
		resp.School = m.PreRegistrationSchool.SchoolSlug
	}
	return resp
}
