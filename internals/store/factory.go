package store

import (
	"fmt"
	"log"

	"ramadanku_backend/internals/configs"
	database "ramadanku_backend/internals/databases"
)

// NewFromEnv memilih driver store sekali saat startup berdasarkan
// STORE_DRIVER. Instance yang sama di-inject ke semua controller.
func NewFromEnv() (Store, error) {
	switch configs.StoreDriver {
	case "memory":
		log.Println("✅ Store driver: memory (seeded)")
		return NewSeededMemoryStore(), nil

	case "sheets":
		if configs.SheetEndpoint == "" {
			return nil, fmt.Errorf("STORE_DRIVER=sheets membutuhkan SHEET_ENDPOINT")
		}
		log.Printf("✅ Store driver: sheets (%s)", configs.SheetEndpoint)
		return NewSheetStore(configs.SheetEndpoint, nil), nil

	case "postgres":
		database.ConnectDB()
		database.TunePool()
		database.WarmUpQueries()
		log.Println("✅ Store driver: postgres")
		return NewPostgresStore(database.DB)

	default:
		return nil, fmt.Errorf("STORE_DRIVER tidak dikenal: %s", configs.StoreDriver)
	}
}
