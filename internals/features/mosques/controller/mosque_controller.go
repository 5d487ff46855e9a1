package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "ramadanku_backend/internals/helpers"
	"ramadanku_backend/internals/store"
)

type MosqueController struct {
	Store store.Store
}

func NewMosqueController(st store.Store) *MosqueController {
	return &MosqueController{Store: st}
}

// 🟢 GET /api/public/mosques — daftar masjid untuk dropdown login & wizard.
// Hash password tidak ikut terserialisasi (json:"-" di model).
func (ctrl *MosqueController) GetAll(c *fiber.Ctx) error {
	snap, err := ctrl.Store.GetAll(c.Context())
	if err != nil {
		log.Printf("[ERROR] Gagal ambil daftar masjid: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengambil data masjid")
	}
	return helper.Success(c, "Daftar masjid berhasil diambil", snap.Mosques)
}
