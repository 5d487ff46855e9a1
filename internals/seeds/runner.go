package seeds

import (
	"gorm.io/gorm"

	mosques "ramadanku_backend/internals/seeds/mosques"
)

// RunAllSeeds dipanggil saat startup dengan driver postgres & RUN_SEEDS=true.
// Driver memory punya seed bawaannya sendiri (NewSeededMemoryStore).
func RunAllSeeds(db *gorm.DB) {
	mosques.SeedMosquesFromJSON(db, "internals/seeds/mosques/data_mosques.json")
}
