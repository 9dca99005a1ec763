package seeds

import (
	"gorm.io/gorm"

	"schoolinfo_backend/internals/seeds/lookups"
	"schoolinfo_backend/internals/seeds/users"
)

// RunAllSeeds loads the baseline lookup data and accounts. Every seeder is
// idempotent, so this can run on each deploy.
func RunAllSeeds(db *gorm.DB) {
	lookups.SeedDistrictsFromJSON(db, "internals/seeds/lookups/data_districts.json")
	lookups.SeedLevelsFromJSON(db, "internals/seeds/lookups/data_levels.json")
	lookups.SeedTypesFromJSON(db, "internals/seeds/lookups/data_types.json")
	lookups.SeedDisciplinesFromJSON(db, "internals/seeds/lookups/data_disciplines.json")
	lookups.SeedFacilitiesFromJSON(db, "internals/seeds/lookups/data_facilities.json")

	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
