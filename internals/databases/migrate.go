package database

import (
	"gorm.io/gorm"

	admissionModel "schoolinfo_backend/internals/features/admissions/model"
	adModel "schoolinfo_backend/internals/features/advertisements/model"
	courseModel "schoolinfo_backend/internals/features/courses/model"
	disciplineModel "schoolinfo_backend/internals/features/disciplines/model"
	districtModel "schoolinfo_backend/internals/features/districts/model"
	eventModel "schoolinfo_backend/internals/features/events/model"
	facilityModel "schoolinfo_backend/internals/features/facilities/model"
	informationModel "schoolinfo_backend/internals/features/information/model"
	inquiryModel "schoolinfo_backend/internals/features/inquiries/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	scholarshipModel "schoolinfo_backend/internals/features/scholarships/model"
	schoolModel "schoolinfo_backend/internals/features/schools/model"
	typeModel "schoolinfo_backend/internals/features/types/model"
	universityModel "schoolinfo_backend/internals/features/universities/model"
	userModel "schoolinfo_backend/internals/features/users/model"
)

// Migrate creates every table the API serves. Order matters: referenced
// tables first so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},

		&districtModel.DistrictModel{},
		&levelModel.LevelModel{},
		&typeModel.TypeModel{},
		&disciplineModel.DisciplineModel{},
		&facilityModel.FacilityModel{},

		&universityModel.UniversityModel{},
		&universityModel.UniversityPhoneModel{},
		&universityModel.UniversityEmailModel{},
		&universityModel.UniversityGalleryModel{},

		&courseModel.CourseModel{},
		&courseModel.CourseAttachmentModel{},

		&schoolModel.SchoolModel{},
		&schoolModel.SchoolPhoneModel{},
		&schoolModel.SchoolEmailModel{},
		&schoolModel.SchoolGalleryModel{},
		&schoolModel.SchoolBrochureModel{},
		&schoolModel.SchoolSocialMediaModel{},
		&schoolModel.SchoolFAQModel{},
		&schoolModel.SchoolMessageModel{},
		&schoolModel.SchoolCourseModel{},

		&admissionModel.AdmissionModel{},
		&scholarshipModel.ScholarshipModel{},
		&eventModel.EventModel{},

		&informationModel.InformationCategoryModel{},
		&informationModel.InformationModel{},

		&adModel.AdvertisementModel{},
		&inquiryModel.InquiryModel{},
		&inquiryModel.PreRegistrationInquiryModel{},
	)
}
