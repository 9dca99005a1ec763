package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	admissionDTO "schoolinfo_backend/internals/features/admissions/dto"
	admissionModel "schoolinfo_backend/internals/features/admissions/model"
	courseDTO "schoolinfo_backend/internals/features/courses/dto"
	courseModel "schoolinfo_backend/internals/features/courses/model"
	eventDTO "schoolinfo_backend/internals/features/events/dto"
	eventModel "schoolinfo_backend/internals/features/events/model"
	informationDTO "schoolinfo_backend/internals/features/information/dto"
	informationModel "schoolinfo_backend/internals/features/information/model"
	schoolDTO "schoolinfo_backend/internals/features/schools/dto"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	universityDTO "schoolinfo_backend/internals/features/universities/dto"
	universityModel "schoolinfo_backend/internals/features/universities/model"
)

// perGroupLimit caps each result group so a broad query stays cheap.
const perGroupLimit = 5

type SearchController struct {
	DB *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{DB: db}
}

// GET /api/search?q=...
//
// One query string fans out across schools, universities, courses,
// admissions, events and information, returning the top matches of each.
func (h *SearchController) GlobalSearch(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return fiber.NewError(fiber.StatusBadRequest, "No query provided")
	}
	like := "%" + q + "%"

	schools, err := h.searchSchools(like)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Search failed")
	}
	universities, err := h.searchUniversities(like)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Search failed")
	}
	courses, err := h.searchCourses(like)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Search failed")
	}
	admissions, err := h.searchAdmissions(like)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Search failed")
	}
	events, err := h.searchEvents(like)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Search failed")
	}
	information, err := h.searchInformation(like)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Search failed")
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"schools":      schools,
		"universities": universities,
		"courses":      courses,
		"admissions":   admissions,
		"events":       events,
		"information":  information,
	}})
}

/* ===================== GROUP QUERIES ===================== */

// Schools match on their own name and address, and transitively on the
// names of linked universities and offered courses.
func (h *SearchController) searchSchools(like string) ([]*schoolDTO.SchoolResponse, error) {
	linkedUniversities := h.DB.Table("school_universities").Select("school_id").Where("university_id IN (?)",
		h.DB.Model(&universityModel.UniversityModel{}).Select("university_id").
			Where("lower(university_name) LIKE lower(?)", like))
	offeredCourses := h.DB.Model(&schoolModel.SchoolCourseModel{}).Select("school_course_school_id").
		Where("school_course_course_id IN (?)",
			h.DB.Model(&courseModel.CourseModel{}).Select("course_id").
				Where("lower(course_name) LIKE lower(?)", like))

	var rows []schoolModel.SchoolModel
	if err := h.DB.Model(&schoolModel.SchoolModel{}).
		Where(h.DB.
			Where("lower(school_name) LIKE lower(?)", like).
			Or("lower(school_address) LIKE lower(?)", like).
			Or("school_id IN (?)", linkedUniversities).
			Or("school_id IN (?)", offeredCourses)).
		Preload("SchoolDistrict").
		Preload("SchoolLevel").
		Preload("SchoolType").
		Order("school_priority ASC").Limit(perGroupLimit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*schoolDTO.SchoolResponse, 0, len(rows))
	for i := range rows {
		out = append(out, schoolDTO.NewSchoolResponse(&rows[i]))
	}
	return out, nil
}

func (h *SearchController) searchUniversities(like string) ([]*universityDTO.UniversityResponse, error) {
	var rows []universityModel.UniversityModel
	if err := h.DB.Model(&universityModel.UniversityModel{}).
		Where("lower(university_name) LIKE lower(?)", like).
		Preload("UniversityType").
		Order("university_priority ASC").Limit(perGroupLimit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*universityDTO.UniversityResponse, 0, len(rows))
	for i := range rows {
		out = append(out, universityDTO.NewUniversityResponse(&rows[i]))
	}
	return out, nil
}

// Courses match on name, abbreviation and the owning university's name.
func (h *SearchController) searchCourses(like string) ([]*courseDTO.CourseResponse, error) {
	matchingUniversities := h.DB.Model(&universityModel.UniversityModel{}).Select("university_id").
		Where("lower(university_name) LIKE lower(?)", like)

	var rows []courseModel.CourseModel
	if err := h.DB.Model(&courseModel.CourseModel{}).
		Where(h.DB.
			Where("lower(course_name) LIKE lower(?)", like).
			Or("lower(course_abbreviation) LIKE lower(?)", like).
			Or("course_university_id IN (?)", matchingUniversities)).
		Preload("CourseUniversity").
		Preload("CourseLevel").
		Order("course_updated_at DESC").Limit(perGroupLimit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*courseDTO.CourseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, courseDTO.NewCourseResponse(&rows[i]))
	}
	return out, nil
}

// Admissions match on title and on the announcing school's or linked
// university's name.
func (h *SearchController) searchAdmissions(like string) ([]*admissionDTO.AdmissionResponse, error) {
	matchingSchools := h.DB.Model(&schoolModel.SchoolModel{}).Select("school_id").
		Where("lower(school_name) LIKE lower(?)", like)
	matchingUniversities := h.DB.Model(&universityModel.UniversityModel{}).Select("university_id").
		Where("lower(university_name) LIKE lower(?)", like)

	var rows []admissionModel.AdmissionModel
	if err := h.DB.Model(&admissionModel.AdmissionModel{}).
		Where(h.DB.
			Where("lower(admission_title) LIKE lower(?)", like).
			Or("admission_school_id IN (?)", matchingSchools).
			Or("admission_university_id IN (?)", matchingUniversities)).
		Preload("AdmissionSchool").
		Preload("AdmissionLevel").
		Preload("AdmissionUniversity").
		Order("admission_published_date DESC").Limit(perGroupLimit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*admissionDTO.AdmissionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, admissionDTO.NewAdmissionResponse(&rows[i]))
	}
	return out, nil
}

func (h *SearchController) searchEvents(like string) ([]*eventDTO.EventResponse, error) {
	var rows []eventModel.EventModel
	if err := h.DB.Model(&eventModel.EventModel{}).
		Where("lower(event_title) LIKE lower(?)", like).
		Preload("EventOrganizerSchool").
		Preload("EventOrganizerUniversity").
		Order("event_date DESC").Limit(perGroupLimit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*eventDTO.EventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, eventDTO.NewEventResponse(&rows[i]))
	}
	return out, nil
}

func (h *SearchController) searchInformation(like string) ([]*informationDTO.InformationResponse, error) {
	var rows []informationModel.InformationModel
	if err := h.DB.Model(&informationModel.InformationModel{}).
		Where("lower(information_title) LIKE lower(?)", like).
		Preload("InformationCategory").
		Order("information_published_date DESC").Limit(perGroupLimit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*informationDTO.InformationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, informationDTO.NewInformationResponse(&rows[i]))
	}
	return out, nil
}
