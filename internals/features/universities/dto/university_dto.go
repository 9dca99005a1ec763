package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	typeDTO "schoolinfo_backend/internals/features/types/dto"
	uModel "schoolinfo_backend/internals/features/universities/model"
)

/* ===================== NESTED ITEMS ===================== */

type PhoneItem struct {
	Phone string `json:"phone"`
}

type EmailItem struct {
	Email string `json:"email"`
}

type GalleryItem struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// PhoneRows maps items to child rows, dropping blank entries.
func PhoneRows(universityID uuid.UUID, items *[]PhoneItem) *[]uModel.UniversityPhoneModel {
	if items == nil {
		return nil
	}
	rows := make([]uModel.UniversityPhoneModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.Phone) == "" {
			continue
		}
		rows = append(rows, uModel.UniversityPhoneModel{
			UniversityPhoneUniversityID: universityID,
			UniversityPhonePhone:        strings.TrimSpace(it.Phone),
		})
	}
	return &rows
}

func EmailRows(universityID uuid.UUID, items *[]EmailItem) *[]uModel.UniversityEmailModel {
	if items == nil {
		return nil
	}
	rows := make([]uModel.UniversityEmailModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.Email) == "" {
			continue
		}
		rows = append(rows, uModel.UniversityEmailModel{
			UniversityEmailUniversityID: universityID,
			UniversityEmailEmail:        strings.TrimSpace(it.Email),
		})
	}
	return &rows
}

// GalleryRows drops items that ended up with no image after file resolution.
func GalleryRows(universityID uuid.UUID, items *[]GalleryItem) *[]uModel.UniversityGalleryModel {
	if items == nil {
		return nil
	}
	rows := make([]uModel.UniversityGalleryModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.Image) == "" {
			continue
		}
		rows = append(rows, uModel.UniversityGalleryModel{
			UniversityGalleryUniversityID: universityID,
			UniversityGalleryImageURL:     it.Image,
			UniversityGalleryCaption:      it.Caption,
		})
	}
	return &rows
}

/* ===================== REQUESTS ===================== */

type CreateUniversityRequest struct {
	Name            string     `json:"name" form:"name" validate:"required,min=2,max=200"`
	Address         string     `json:"address" form:"address" validate:"required,max=255"`
	EstablishedDate *time.Time `json:"established_date" form:"established_date" validate:"omitempty"`
	Type            string     `json:"type" form:"type" validate:"omitempty"` // type slug
	Website         *string    `json:"website" form:"website" validate:"omitempty,url"`
	Location        string     `json:"location" form:"location" validate:"omitempty,max=255"`
	SalientFeatures string     `json:"salient_features" form:"salient_features" validate:"omitempty"`
	About           string     `json:"about" form:"about" validate:"omitempty"`
	Priority        *int       `json:"priority" form:"priority" validate:"omitempty,min=0"`

	MetaTitle       string `json:"meta_title" form:"meta_title" validate:"omitempty,max=255"`
	MetaDescription string `json:"meta_description" form:"meta_description" validate:"omitempty"`
	OGTitle         string `json:"og_title" form:"og_title" validate:"omitempty,max=255"`
	OGDescription   string `json:"og_description" form:"og_description" validate:"omitempty"`

	IsVerified        *bool `json:"is_verified" form:"is_verified" validate:"omitempty"`
	ForeignAffiliated *bool `json:"foreign_affiliated" form:"foreign_affiliated" validate:"omitempty"`
	Status            *bool `json:"status" form:"status" validate:"omitempty"`

	Phones  *[]PhoneItem   `json:"phones" validate:"omitempty"`
	Emails  *[]EmailItem   `json:"emails" validate:"omitempty"`
	Gallery *[]GalleryItem `json:"gallery" validate:"omitempty"`
}

func (r *CreateUniversityRequest) ToModel() *uModel.UniversityModel {
	m := &uModel.UniversityModel{
		UniversityName:            r.Name,
		UniversityAddress:         r.Address,
		UniversityEstablishedDate: r.EstablishedDate,
		UniversityWebsite:         r.Website,
		UniversityLocation:        r.Location,
		UniversitySalientFeatures: r.SalientFeatures,
		UniversityAbout:           r.About,
		UniversityPriority:        999,
		UniversityMetaTitle:       r.MetaTitle,
		UniversityMetaDescription: r.MetaDescription,
		UniversityOGTitle:         r.OGTitle,
		UniversityOGDescription:   r.OGDescription,
		UniversityStatus:          true,
	}
	if r.Priority != nil {
		m.UniversityPriority = *r.Priority
	}
	if r.IsVerified != nil {
		m.UniversityIsVerified = *r.IsVerified
	}
	if r.ForeignAffiliated != nil {
		m.UniversityForeignAffiliated = *r.ForeignAffiliated
	}
	if r.Status != nil {
		m.UniversityStatus = *r.Status
	}
	return m
}

type UpdateUniversityRequest struct {
	Name            *string    `json:"name" form:"name" validate:"omitempty,min=2,max=200"`
	Address         *string    `json:"address" form:"address" validate:"omitempty,max=255"`
	EstablishedDate *time.Time `json:"established_date" form:"established_date" validate:"omitempty"`
	Type            *string    `json:"type" form:"type" validate:"omitempty"`
	Website         *string    `json:"website" form:"website" validate:"omitempty,url"`
	Location        *string    `json:"location" form:"location" validate:"omitempty,max=255"`
	SalientFeatures *string    `json:"salient_features" form:"salient_features" validate:"omitempty"`
	About           *string    `json:"about" form:"about" validate:"omitempty"`
	Priority        *int       `json:"priority" form:"priority" validate:"omitempty,min=0"`

	MetaTitle       *string `json:"meta_title" form:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description" form:"meta_description" validate:"omitempty"`
	OGTitle         *string `json:"og_title" form:"og_title" validate:"omitempty,max=255"`
	OGDescription   *string `json:"og_description" form:"og_description" validate:"omitempty"`

	IsVerified        *bool `json:"is_verified" form:"is_verified" validate:"omitempty"`
	ForeignAffiliated *bool `json:"foreign_affiliated" form:"foreign_affiliated" validate:"omitempty"`
	Status            *bool `json:"status" form:"status" validate:"omitempty"`

	Phones  *[]PhoneItem   `json:"phones" validate:"omitempty"`
	Emails  *[]EmailItem   `json:"emails" validate:"omitempty"`
	Gallery *[]GalleryItem `json:"gallery" validate:"omitempty"`
}

// ApplyToModel overwrites the scalar fields present in the payload. The slug
// never changes here.
func (r *UpdateUniversityRequest) ApplyToModel(m *uModel.UniversityModel) {
	if r.Name != nil {
		m.UniversityName = *r.Name
	}
	if r.Address != nil {
		m.UniversityAddress = *r.Address
	}
	if r.EstablishedDate != nil {
		m.UniversityEstablishedDate = r.EstablishedDate
	}
	if r.Website != nil {
		m.UniversityWebsite = r.Website
	}
	if r.Location != nil {
		m.UniversityLocation = *r.Location
	}
	if r.SalientFeatures != nil {
		m.UniversitySalientFeatures = *r.SalientFeatures
	}
	if r.About != nil {
		m.UniversityAbout = *r.About
	}
	if r.Priority != nil {
		m.UniversityPriority = *r.Priority
	}
	if r.MetaTitle != nil {
		m.UniversityMetaTitle = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		m.UniversityMetaDescription = *r.MetaDescription
	}
	if r.OGTitle != nil {
		m.UniversityOGTitle = *r.OGTitle
	}
	if r.OGDescription != nil {
		m.UniversityOGDescription = *r.OGDescription
	}
	if r.IsVerified != nil {
		m.UniversityIsVerified = *r.IsVerified
	}
	if r.ForeignAffiliated != nil {
		m.UniversityForeignAffiliated = *r.ForeignAffiliated
	}
	if r.Status != nil {
		m.UniversityStatus = *r.Status
	}
}

/* ===================== RESPONSES ===================== */

type UniversityResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Address         string     `json:"address"`
	LogoURL         *string    `json:"logo,omitempty"`
	CoverPhotoURL   *string    `json:"cover_photo,omitempty"`
	EstablishedDate *time.Time `json:"established_date,omitempty"`

	Type *typeDTO.TypeResponse `json:"type,omitempty"`

	Website         *string `json:"website,omitempty"`
	Location        string  `json:"location"`
	SalientFeatures string  `json:"salient_features"`
	About           string  `json:"about"`
	Priority        int     `json:"priority"`

	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	OGTitle         string  `json:"og_title"`
	OGDescription   string  `json:"og_description"`
	OGImageURL      *string `json:"og_image,omitempty"`

	IsVerified        bool `json:"is_verified"`
	ForeignAffiliated bool `json:"foreign_affiliated"`
	Status            bool `json:"status"`

	Phones  []PhoneItem   `json:"phones"`
	Emails  []EmailItem   `json:"emails"`
	Gallery []GalleryItem `json:"gallery"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewUniversityResponse(m *uModel.UniversityModel) *UniversityResponse {
	if m == nil {
		return nil
	}
	resp := &UniversityResponse{
		ID:              m.UniversityID,
		Name:            m.UniversityName,
		Slug:            m.UniversitySlug,
		Address:         m.UniversityAddress,
		LogoURL:         m.UniversityLogoURL,
		CoverPhotoURL:   m.UniversityCoverPhotoURL,
		EstablishedDate: m.UniversityEstablishedDate,
		Type:            typeDTO.NewTypeResponse(m.UniversityType),

		Website:         m.UniversityWebsite,
		Location:        m.UniversityLocation,
		SalientFeatures: m.UniversitySalientFeatures,
		About:           m.UniversityAbout,
		Priority:        m.UniversityPriority,

		MetaTitle:       m.UniversityMetaTitle,
		MetaDescription: m.UniversityMetaDescription,
		OGTitle:         m.UniversityOGTitle,
		OGDescription:   m.UniversityOGDescription,
		OGImageURL:      m.UniversityOGImageURL,

		IsVerified:        m.UniversityIsVerified,
		ForeignAffiliated: m.UniversityForeignAffiliated,
		Status:            m.UniversityStatus,

		Phones:  make([]PhoneItem, 0, len(m.UniversityPhones)),
		Emails:  make([]EmailItem, 0, len(m.UniversityEmails)),
		Gallery: make([]GalleryItem, 0, len(m.UniversityGallery)),

		CreatedAt: m.UniversityCreatedAt,
		UpdatedAt: m.UniversityUpdatedAt,
	}
	for _, p := range m.UniversityPhones {
		resp.Phones = append(resp.Phones, PhoneItem{Phone: p.UniversityPhonePhone})
	}
	for _, e := range m.UniversityEmails {
		resp.Emails = append(resp.Emails, EmailItem{Email: e.UniversityEmailEmail})
	}
	for _, g := range m.UniversityGallery {
		resp.Gallery = append(resp.Gallery, GalleryItem{Image: g.UniversityGalleryImageURL, Caption: g.UniversityGalleryCaption})
	}
	return resp
}
