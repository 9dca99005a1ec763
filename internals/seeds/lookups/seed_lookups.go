package lookups

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	disciplineModel "schoolinfo_backend/internals/features/disciplines/model"
	districtModel "schoolinfo_backend/internals/features/districts/model"
	facilityModel "schoolinfo_backend/internals/features/facilities/model"
	levelModel "schoolinfo_backend/internals/features/levels/model"
	typeModel "schoolinfo_backend/internals/features/types/model"
	helper "schoolinfo_backend/internals/helpers"
)

// Lookup seed files are flat JSON arrays of names. Existing rows are matched
// by slug and skipped, so re-running a seed is harmless.

func readNames(filePath string) []string {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[WARNING] seed file %s: %v", filePath, err)
		return nil
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		log.Printf("[WARNING] seed file %s: %v", filePath, err)
		return nil
	}
	return names
}

func SeedDistrictsFromJSON(db *gorm.DB, filePath string) {
	for _, name := range readNames(filePath) {
		slug := helper.Slugify(name, 0)
		var existing districtModel.DistrictModel
		if err := db.Where("district_slug = ?", slug).First(&existing).Error; err == nil {
			continue
		}
		row := districtModel.DistrictModel{DistrictName: name, DistrictSlug: slug}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[WARNING] seed district %q: %v", name, err)
		}
	}
}

func SeedLevelsFromJSON(db *gorm.DB, filePath string) {
	for _, title := range readNames(filePath) {
		slug := helper.Slugify(title, 0)
		var existing levelModel.LevelModel
		if err := db.Where("level_slug = ?", slug).First(&existing).Error; err == nil {
			continue
		}
		row := levelModel.LevelModel{LevelTitle: title, LevelSlug: slug}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[WARNING] seed level %q: %v", title, err)
		}
	}
}

func SeedTypesFromJSON(db *gorm.DB, filePath string) {
	for _, name := range readNames(filePath) {
		slug := helper.Slugify(name, 0)
		var existing typeModel.TypeModel
		if err := db.Where("type_slug = ?", slug).First(&existing).Error; err == nil {
			continue
		}
		row := typeModel.TypeModel{TypeName: name, TypeSlug: slug}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[WARNING] seed type %q: %v", name, err)
		}
	}
}

func SeedDisciplinesFromJSON(db *gorm.DB, filePath string) {
	for _, name := range readNames(filePath) {
		slug := helper.Slugify(name, 0)
		var existing disciplineModel.DisciplineModel
		if err := db.Where("discipline_slug = ?", slug).First(&existing).Error; err == nil {
			continue
		}
		row := disciplineModel.DisciplineModel{DisciplineName: name, DisciplineSlug: slug}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[WARNING] seed discipline %q: %v", name, err)
		}
	}
}

func SeedFacilitiesFromJSON(db *gorm.DB, filePath string) {
	for _, name := range readNames(filePath) {
		slug := helper.Slugify(name, 0)
		var existing facilityModel.FacilityModel
		if err := db.Where("facility_slug = ?", slug).First(&existing).Error; err == nil {
			continue
		}
		row := facilityModel.FacilityModel{FacilityName: name, FacilitySlug: slug}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[WARNING] seed facility %q: %v", name, err)
		}
	}
}
