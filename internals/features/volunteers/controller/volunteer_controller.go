package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ramadanku_backend/internals/features/volunteers/dto"
	helper "ramadanku_backend/internals/helpers"
	"ramadanku_backend/internals/store"
)

var validate = validator.New()

type VolunteerController struct {
	Store store.Store
}

func NewVolunteerController(st store.Store) *VolunteerController {
	return &VolunteerController{Store: st}
}

// 🟢 POST /api/public/volunteers — pendaftaran relawan, tanpa login.
func (ctrl *VolunteerController) Register(c *fiber.Ctx) error {
	var req dto.VolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	saved, err := ctrl.Store.CreateVolunteer(c.Context(), req.ToModel())
	if err != nil {
		log.Printf("[ERROR] Gagal simpan pendaftaran relawan: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal menyimpan pendaftaran")
	}

	log.Printf("[SUCCESS] Relawan terdaftar: %s", saved.VolunteerID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran relawan berhasil", saved)
}

// 🟢 GET /api/a/volunteers — daftar pendaftar, khusus admin.
func (ctrl *VolunteerController) GetAll(c *fiber.Ctx) error {
	snap, err := ctrl.Store.GetAll(c.Context())
	if err != nil {
		log.Printf("[ERROR] Gagal ambil daftar relawan: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengambil data relawan")
	}
	return helper.Success(c, "Daftar relawan berhasil diambil", snap.Volunteers)
}
