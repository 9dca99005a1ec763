package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	districtDTO "schoolinfo_backend/internals/features/districts/dto"
	facilityModel "schoolinfo_backend/internals/features/facilities/model"
	levelDTO "schoolinfo_backend/internals/features/levels/dto"
	sModel "schoolinfo_backend/internals/features/schools/model"
	typeDTO "schoolinfo_backend/internals/features/types/dto"
	universityModel "schoolinfo_backend/internals/features/universities/model"
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

type BrochureItem struct {
	File        string `json:"file"`
	Description string `json:"description"`
}

type SocialMediaItem struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type MessageItem struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
}

// SchoolCourseItem links a course by slug with per-school attributes.
type SchoolCourseItem struct {
	Course    string   `json:"course"`
	Fee       *float64 `json:"fee,omitempty"`
	Status    string   `json:"status"`
	AdminOpen *bool    `json:"admin_open,omitempty"`
}

func PhoneRows(schoolID uuid.UUID, items *[]PhoneItem) *[]sModel.SchoolPhoneModel {
	if items == nil {
		return nil
	}
	rows := make([]sModel.SchoolPhoneModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.Phone) == "" {
			continue
		}
		rows = append(rows, sModel.SchoolPhoneModel{
			SchoolPhoneSchoolID: schoolID,
			SchoolPhonePhone:    strings.TrimSpace(it.Phone),
		})
	}
	return &rows
}

func EmailRows(schoolID uuid.UUID, items *[]EmailItem) *[]sModel.SchoolEmailModel {
	if items == nil {
		return nil
	}
	rows := make([]sModel.SchoolEmailModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.Email) == "" {
			continue
		}
		rows = append(rows, sModel.SchoolEmailModel{
			SchoolEmailSchoolID: schoolID,
			SchoolEmailEmail:    strings.TrimSpace(it.Email),
		})
	}
	return &rows
}

func GalleryRows(schoolID uuid.UUID, items *[]GalleryItem) *[]sModel.SchoolGalleryModel {
	if items == nil {
		return nil
	}
	rows := make([]sModel.SchoolGalleryModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.Image) == "" {
			continue
		}
		rows = append(rows, sModel.SchoolGalleryModel{
			SchoolGallerySchoolID: schoolID,
			SchoolGalleryImageURL: it.Image,
			SchoolGalleryCaption:  it.Caption,
		})
	}
	return &rows
}

func BrochureRows(schoolID uuid.UUID, items *[]BrochureItem) *[]sModel.SchoolBrochureModel {
	if items == nil {
		return nil
	}
	rows := make([]sModel.SchoolBrochureModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.File) == "" {
			continue
		}
		rows = append(rows, sModel.SchoolBrochureModel{
			SchoolBrochureSchoolID:    schoolID,
			SchoolBrochureFileURL:     it.File,
			SchoolBrochureDescription: it.Description,
		})
	}
	return &rows
}

func SocialMediaRows(schoolID uuid.UUID, items *[]SocialMediaItem) *[]sModel.SchoolSocialMediaModel {
	if items == nil {
		return nil
	}
	rows := make([]sModel.SchoolSocialMediaModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.URL) == "" && strings.TrimSpace(it.Platform) == "" {
			continue
		}
		rows = append(rows, sModel.SchoolSocialMediaModel{
			SchoolSocialMediaSchoolID: schoolID,
			SchoolSocialMediaPlatform: it.Platform,
			SchoolSocialMediaURL:      it.URL,
		})
	}
	return &rows
}

func FAQRows(schoolID uuid.UUID, items *[]FAQItem) *[]sModel.SchoolFAQModel {
	if items == nil {
		return nil
	}
	rows := make([]sModel.SchoolFAQModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.Question) == "" {
			continue
		}
		rows = append(rows, sModel.SchoolFAQModel{
			SchoolFAQSchoolID: schoolID,
			SchoolFAQQuestion: it.Question,
			SchoolFAQAnswer:   it.Answer,
		})
	}
	return &rows
}

func MessageRows(schoolID uuid.UUID, items *[]MessageItem) *[]sModel.SchoolMessageModel {
	if items == nil {
		return nil
	}
	rows := make([]sModel.SchoolMessageModel, 0, len(*items))
	for _, it := range *items {
		if strings.TrimSpace(it.Title) == "" && strings.TrimSpace(it.Message) == "" {
			continue
		}
		row := sModel.SchoolMessageModel{
			SchoolMessageSchoolID:    schoolID,
			SchoolMessageTitle:       it.Title,
			SchoolMessageMessage:     it.Message,
			SchoolMessageName:        it.Name,
			SchoolMessageDesignation: it.Designation,
		}
		if strings.TrimSpace(it.Image) != "" {
			img := it.Image
			row.SchoolMessageImageURL = &img
		}
		rows = append(rows, row)
	}
	return &rows
}

/* ===================== REQUESTS ===================== */

type CreateSchoolRequest struct {
	User            *uuid.UUID `json:"user" form:"user" validate:"omitempty"` // owning account id
	Name            string     `json:"name" form:"name" validate:"required,min=2,max=200"`
	Address         string     `json:"address" form:"address" validate:"omitempty,max=255"`
	EstablishedDate *time.Time `json:"established_date" form:"established_date" validate:"omitempty"`

	Verification *bool `json:"verification" form:"verification" validate:"omitempty"`
	Featured     *bool `json:"featured" form:"featured" validate:"omitempty"`

	District  string `json:"district" form:"district" validate:"omitempty"` // district slug
	Level     string `json:"level" form:"level" validate:"omitempty"`       // level slug
	LevelText string `json:"level_text" form:"level_text" validate:"omitempty,max=150"`
	Type      string `json:"type" form:"type" validate:"omitempty"` // type slug

	Facilities   *[]string `json:"facilities" validate:"omitempty"`   // facility slugs
	Universities *[]string `json:"universities" validate:"omitempty"` // university slugs

	Website        *string `json:"website" form:"website" validate:"omitempty,url"`
	Priority       *int    `json:"priority" form:"priority" validate:"omitempty,min=0"`
	MapLink        string  `json:"map_link" form:"map_link" validate:"omitempty,max=1024"`
	SalientFeature string  `json:"salient_feature" form:"salient_feature" validate:"omitempty"`
	Scholarship    string  `json:"scholarship" form:"scholarship" validate:"omitempty"`
	AboutCollege   string  `json:"about_college" form:"about_college" validate:"omitempty"`

	MetaTitle       string `json:"meta_title" form:"meta_title" validate:"omitempty,max=255"`
	MetaDescription string `json:"meta_description" form:"meta_description" validate:"omitempty"`
	OGTitle         string `json:"og_title" form:"og_title" validate:"omitempty,max=255"`
	OGDescription   string `json:"og_description" form:"og_description" validate:"omitempty"`

	Phones      *[]PhoneItem        `json:"phones" validate:"omitempty"`
	Emails      *[]EmailItem        `json:"emails" validate:"omitempty"`
	Gallery     *[]GalleryItem      `json:"gallery" validate:"omitempty"`
	Brochures   *[]BrochureItem     `json:"brochures" validate:"omitempty"`
	SocialMedia *[]SocialMediaItem  `json:"social_media" validate:"omitempty"`
	FAQs        *[]FAQItem          `json:"faqs" validate:"omitempty"`
	Messages    *[]MessageItem      `json:"messages" validate:"omitempty"`
	Courses     *[]SchoolCourseItem `json:"school_courses" validate:"omitempty"`
}

func (r *CreateSchoolRequest) ToModel() *sModel.SchoolModel {
	m := &sModel.SchoolModel{
		SchoolUserID:          r.User,
		SchoolName:            r.Name,
		SchoolAddress:         r.Address,
		SchoolEstablishedDate: r.EstablishedDate,
		SchoolLevelText:       r.LevelText,
		SchoolWebsite:         r.Website,
		SchoolPriority:        999,
		SchoolMapLink:         r.MapLink,
		SchoolSalientFeature:  r.SalientFeature,
		SchoolScholarship:     r.Scholarship,
		SchoolAboutCollege:    r.AboutCollege,
		SchoolMetaTitle:       r.MetaTitle,
		SchoolMetaDescription: r.MetaDescription,
		SchoolOGTitle:         r.OGTitle,
		SchoolOGDescription:   r.OGDescription,
	}
	if r.Verification != nil {
		m.SchoolVerification = *r.Verification
	}
	if r.Featured != nil {
		m.SchoolFeatured = *r.Featured
	}
	if r.Priority != nil {
		m.SchoolPriority = *r.Priority
	}
	return m
}

type UpdateSchoolRequest struct {
	User            *uuid.UUID `json:"user" form:"user" validate:"omitempty"`
	Name            *string    `json:"name" form:"name" validate:"omitempty,min=2,max=200"`
	Address         *string    `json:"address" form:"address" validate:"omitempty,max=255"`
	EstablishedDate *time.Time `json:"established_date" form:"established_date" validate:"omitempty"`

	Verification *bool `json:"verification" form:"verification" validate:"omitempty"`
	Featured     *bool `json:"featured" form:"featured" validate:"omitempty"`

	District  *string `json:"district" form:"district" validate:"omitempty"`
	Level     *string `json:"level" form:"level" validate:"omitempty"`
	LevelText *string `json:"level_text" form:"level_text" validate:"omitempty,max=150"`
	Type      *string `json:"type" form:"type" validate:"omitempty"`

	Facilities   *[]string `json:"facilities" validate:"omitempty"`
	Universities *[]string `json:"universities" validate:"omitempty"`

	Website        *string `json:"website" form:"website" validate:"omitempty,url"`
	Priority       *int    `json:"priority" form:"priority" validate:"omitempty,min=0"`
	MapLink        *string `json:"map_link" form:"map_link" validate:"omitempty,max=1024"`
	SalientFeature *string `json:"salient_feature" form:"salient_feature" validate:"omitempty"`
	Scholarship    *string `json:"scholarship" form:"scholarship" validate:"omitempty"`
	AboutCollege   *string `json:"about_college" form:"about_college" validate:"omitempty"`

	MetaTitle       *string `json:"meta_title" form:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description" form:"meta_description" validate:"omitempty"`
	OGTitle         *string `json:"og_title" form:"og_title" validate:"omitempty,max=255"`
	OGDescription   *string `json:"og_description" form:"og_description" validate:"omitempty"`

	Phones      *[]PhoneItem        `json:"phones" validate:"omitempty"`
	Emails      *[]EmailItem        `json:"emails" validate:"omitempty"`
	Gallery     *[]GalleryItem      `json:"gallery" validate:"omitempty"`
	Brochures   *[]BrochureItem     `json:"brochures" validate:"omitempty"`
	SocialMedia *[]SocialMediaItem  `json:"social_media" validate:"omitempty"`
	FAQs        *[]FAQItem          `json:"faqs" validate:"omitempty"`
	Messages    *[]MessageItem      `json:"messages" validate:"omitempty"`
	Courses     *[]SchoolCourseItem `json:"school_courses" validate:"omitempty"`
}

func (r *UpdateSchoolRequest) ApplyToModel(m *sModel.SchoolModel) {
	if r.User != nil {
		m.SchoolUserID = r.User
	}
	if r.Name != nil {
		m.SchoolName = *r.Name
	}
	if r.Address != nil {
		m.SchoolAddress = *r.Address
	}
	if r.EstablishedDate != nil {
		m.SchoolEstablishedDate = r.EstablishedDate
	}
	if r.Verification != nil {
		m.SchoolVerification = *r.Verification
	}
	if r.Featured != nil {
		m.SchoolFeatured = *r.Featured
	}
	if r.LevelText != nil {
		m.SchoolLevelText = *r.LevelText
	}
	if r.Website != nil {
		m.SchoolWebsite = r.Website
	}
	if r.Priority != nil {
		m.SchoolPriority = *r.Priority
	}
	if r.MapLink != nil {
		m.SchoolMapLink = *r.MapLink
	}
	if r.SalientFeature != nil {
		m.SchoolSalientFeature = *r.SalientFeature
	}
	if r.Scholarship != nil {
		m.SchoolScholarship = *r.Scholarship
	}
	if r.AboutCollege != nil {
		m.SchoolAboutCollege = *r.AboutCollege
	}
	if r.MetaTitle != nil {
		m.SchoolMetaTitle = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		m.SchoolMetaDescription = *r.MetaDescription
	}
	if r.OGTitle != nil {
		m.SchoolOGTitle = *r.OGTitle
	}
	if r.OGDescription != nil {
		m.SchoolOGDescription = *r.OGDescription
	}
}

// UpdateOwnSchoolRequest is the dashboard variant: the fields an admin curates
// (verification, featured, priority, the owning account) are not accepted.
type UpdateOwnSchoolRequest struct {
	Address         *string    `json:"address" form:"address" validate:"omitempty,max=255"`
	EstablishedDate *time.Time `json:"established_date" form:"established_date" validate:"omitempty"`

	LevelText *string `json:"level_text" form:"level_text" validate:"omitempty,max=150"`

	Website        *string `json:"website" form:"website" validate:"omitempty,url"`
	MapLink        *string `json:"map_link" form:"map_link" validate:"omitempty,max=1024"`
	SalientFeature *string `json:"salient_feature" form:"salient_feature" validate:"omitempty"`
	Scholarship    *string `json:"scholarship" form:"scholarship" validate:"omitempty"`
	AboutCollege   *string `json:"about_college" form:"about_college" validate:"omitempty"`

	Phones      *[]PhoneItem       `json:"phones" validate:"omitempty"`
	Emails      *[]EmailItem       `json:"emails" validate:"omitempty"`
	Gallery     *[]GalleryItem     `json:"gallery" validate:"omitempty"`
	Brochures   *[]BrochureItem    `json:"brochures" validate:"omitempty"`
	SocialMedia *[]SocialMediaItem `json:"social_media" validate:"omitempty"`
	FAQs        *[]FAQItem         `json:"faqs" validate:"omitempty"`
	Messages    *[]MessageItem     `json:"messages" validate:"omitempty"`
}

func (r *UpdateOwnSchoolRequest) ToAdminRequest() *UpdateSchoolRequest {
	return &UpdateSchoolRequest{
		Address:         r.Address,
		EstablishedDate: r.EstablishedDate,
		LevelText:       r.LevelText,
		Website:         r.Website,
		MapLink:         r.MapLink,
		SalientFeature:  r.SalientFeature,
		Scholarship:     r.Scholarship,
		AboutCollege:    r.AboutCollege,
		Phones:          r.Phones,
		Emails:          r.Emails,
		Gallery:         r.Gallery,
		Brochures:       r.Brochures,
		SocialMedia:     r.SocialMedia,
		FAQs:            r.FAQs,
		Messages:        r.Messages,
	}
}

/* ===================== RESPONSES ===================== */

type SchoolUniversityRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SchoolCourseResponse struct {
	CourseName string   `json:"course_name"`
	CourseSlug string   `json:"course"`
	Fee        *float64 `json:"fee,omitempty"`
	Status     string   `json:"status"`
	AdminOpen  bool     `json:"admin_open"`
}

type SchoolResponse struct {
	ID   uuid.UUID  `json:"id"`
	User *uuid.UUID `json:"user,omitempty"`
	Name string     `json:"name"`
	Slug string     `json:"slug"`

	LogoURL         *string    `json:"logo,omitempty"`
	CoverPhotoURL   *string    `json:"cover_photo,omitempty"`
	Address         string     `json:"address"`
	EstablishedDate *time.Time `json:"established_date,omitempty"`

	Verification bool `json:"verification"`
	Featured     bool `json:"featured"`

	District  *districtDTO.DistrictResponse `json:"district,omitempty"`
	Level     *levelDTO.LevelResponse       `json:"level,omitempty"`
	LevelText string                        `json:"level_text"`
	Type      *typeDTO.TypeResponse         `json:"type,omitempty"`

	Facilities   []string              `json:"facilities"`
	Universities []SchoolUniversityRef `json:"universities"`

	Website        *string `json:"website,omitempty"`
	Priority       int     `json:"priority"`
	MapLink        string  `json:"map_link"`
	SalientFeature string  `json:"salient_feature"`
	Scholarship    string  `json:"scholarship"`
	AboutCollege   string  `json:"about_college"`

	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	OGTitle         string  `json:"og_title"`
	OGDescription   string  `json:"og_description"`
	OGImageURL      *string `json:"og_image,omitempty"`

	Phones      []PhoneItem            `json:"phones"`
	Emails      []EmailItem            `json:"emails"`
	Gallery     []GalleryItem          `json:"gallery"`
	Brochures   []BrochureItem         `json:"brochures"`
	SocialMedia []SocialMediaItem      `json:"social_media"`
	FAQs        []FAQItem              `json:"faqs"`
	Messages    []MessageItem          `json:"messages"`
	Courses     []SchoolCourseResponse `json:"school_courses"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewSchoolResponse(m *sModel.SchoolModel) *SchoolResponse {
	if m == nil {
		return nil
	}
	resp := &SchoolResponse{
		ID:   m.SchoolID,
		User: m.SchoolUserID,
		Name: m.SchoolName,
		Slug: m.SchoolSlug,

		LogoURL:         m.SchoolLogoURL,
		CoverPhotoURL:   m.SchoolCoverPhotoURL,
		Address:         m.SchoolAddress,
		EstablishedDate: m.SchoolEstablishedDate,

		Verification: m.SchoolVerification,
		Featured:     m.SchoolFeatured,

		District:  districtDTO.NewDistrictResponse(m.SchoolDistrict),
		Level:     levelDTO.NewLevelResponse(m.SchoolLevel),
		LevelText: m.SchoolLevelText,
		Type:      typeDTO.NewTypeResponse(m.SchoolType),

		Facilities:   facilitySlugs(m.SchoolFacilities),
		Universities: universityRefs(m.SchoolUniversities),

		Website:        m.SchoolWebsite,
		Priority:       m.SchoolPriority,
		MapLink:        m.SchoolMapLink,
		SalientFeature: m.SchoolSalientFeature,
		Scholarship:    m.SchoolScholarship,
		AboutCollege:   m.SchoolAboutCollege,

		MetaTitle:       m.SchoolMetaTitle,
		MetaDescription: m.SchoolMetaDescription,
		OGTitle:         m.SchoolOGTitle,
		OGDescription:   m.SchoolOGDescription,
		OGImageURL:      m.SchoolOGImageURL,

		Phones:      make([]PhoneItem, 0, len(m.SchoolPhones)),
		Emails:      make([]EmailItem, 0, len(m.SchoolEmails)),
		Gallery:     make([]GalleryItem, 0, len(m.SchoolGallery)),
		Brochures:   make([]BrochureItem, 0, len(m.SchoolBrochures)),
		SocialMedia: make([]SocialMediaItem, 0, len(m.SchoolSocialMedia)),
		FAQs:        make([]FAQItem, 0, len(m.SchoolFAQs)),
		Messages:    make([]MessageItem, 0, len(m.SchoolMessages)),
		Courses:     make([]SchoolCourseResponse, 0, len(m.SchoolCourses)),

		CreatedAt: m.SchoolCreatedAt,
		UpdatedAt: m.SchoolUpdatedAt,
	}
	for _, p := range m.SchoolPhones {
		resp.Phones = append(resp.Phones, PhoneItem{Phone: p.SchoolPhonePhone})
	}
	for _, e := range m.SchoolEmails {
		resp.Emails = append(resp.Emails, EmailItem{Email: e.SchoolEmailEmail})
	}
	for _, g := range m.SchoolGallery {
		resp.Gallery = append(resp.Gallery, GalleryItem{Image: g.SchoolGalleryImageURL, Caption: g.SchoolGalleryCaption})
	}
	for _, b := range m.SchoolBrochures {
		resp.Brochures = append(resp.Brochures, BrochureItem{File: b.SchoolBrochureFileURL, Description: b.SchoolBrochureDescription})
	}
	for _, s := range m.SchoolSocialMedia {
		resp.SocialMedia = append(resp.SocialMedia, SocialMediaItem{Platform: s.SchoolSocialMediaPlatform, URL: s.SchoolSocialMediaURL})
	}
	for _, f := range m.SchoolFAQs {
		resp.FAQs = append(resp.FAQs, FAQItem{Question: f.SchoolFAQQuestion, Answer: f.SchoolFAQAnswer})
	}
	for _, msg := range m.SchoolMessages {
		item := MessageItem{
			Title:       msg.SchoolMessageTitle,
			Message:     msg.SchoolMessageMessage,
			Name:        msg.SchoolMessageName,
			Designation: msg.SchoolMessageDesignation,
		}
		if msg.SchoolMessageImageURL != nil {
			item.Image = *msg.SchoolMessageImageURL
		}
		resp.Messages = append(resp.Messages, item)
	}
	for _, sc := range m.SchoolCourses {
		item := SchoolCourseResponse{
			Fee:       sc.SchoolCourseFee,
			Status:    sc.SchoolCourseStatus,
			AdminOpen: sc.SchoolCourseAdminOpen,
		}
		if sc.SchoolCourseCourse != nil {
			item.CourseName = sc.SchoolCourseCourse.CourseName
			item.CourseSlug = sc.SchoolCourseCourse.CourseSlug
		}
		resp.Courses = append(resp.Courses, item)
	}
	return resp
}

// SchoolDropdownItem is the minimal shape used by admin pickers.
type SchoolDropdownItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

func facilitySlugs(rows []facilityModel.FacilityModel) []string {
	out := make([]string, 0, len(rows))
	for _, f := range rows {
		out = append(out, f.FacilitySlug)
	}
	return out
}

func universityRefs(rows []universityModel.UniversityModel) []SchoolUniversityRef {
	out := make([]SchoolUniversityRef, 0, len(rows))
	for _, u := range rows {
		out = append(out, SchoolUniversityRef{Name: u.UniversityName, Slug: u.UniversitySlug})
	}
	return out
}
