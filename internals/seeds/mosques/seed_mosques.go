package mosques

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ramadanku_backend/internals/features/mosques/model"
)

// MosqueSeed: password di file seed masih plaintext, di-hash saat insert.
// File seed jangan dipakai di production dengan password default!
type MosqueSeed struct {
	MosqueID           string `json:"mosque_id"`
	MosqueName         string `json:"mosque_name"`
	SupervisorPassword string `json:"supervisor_password"`
}

func SeedMosquesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []MosqueSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range seeds {
		var existing model.MosqueModel
		if err := db.Where("mosque_id = ?", s.MosqueID).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Masjid %s sudah ada, lewati...", s.MosqueID)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.SupervisorPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password masjid %s: %v", s.MosqueID, err)
			continue
		}

		newMosque := model.MosqueModel{
			MosqueID:                     s.MosqueID,
			MosqueName:                   s.MosqueName,
			MosqueSupervisorPasswordHash: string(hash),
		}

		if err := db.Create(&newMosque).Error; err != nil {
			log.Printf("❌ Gagal insert masjid %s: %v", s.MosqueID, err)
		} else {
			log.Printf("✅ Berhasil insert masjid %s (%s)", newMosque.MosqueName, newMosque.MosqueID)
		}
	}
}
