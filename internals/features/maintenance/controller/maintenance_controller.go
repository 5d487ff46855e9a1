package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ramadanku_backend/internals/constants"
	"ramadanku_backend/internals/features/maintenance/dto"
	"ramadanku_backend/internals/features/maintenance/model"
	helper "ramadanku_backend/internals/helpers"
	"ramadanku_backend/internals/store"
)

var validate = validator.New()

type MaintenanceController struct {
	Store store.Store
}

func NewMaintenanceController(st store.Store) *MaintenanceController {
	return &MaintenanceController{Store: st}
}

// 🟢 POST /api/u/maintenance — laporan kebersihan & pemeliharaan harian.
func (ctrl *MaintenanceController) Create(c *fiber.Ctx) error {
	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidDayCode(req.MaintenanceDayCode) {
		return helper.Error(c, fiber.StatusBadRequest, "Kode hari tidak dikenal")
	}

	if helper.GetUserRole(c) == constants.RoleSupervisor &&
		helper.GetUserMosqueID(c) != req.MaintenanceMosqueID {
		return helper.Error(c, fiber.StatusForbidden, "Supervisor hanya boleh mengisi laporan masjidnya sendiri")
	}

	saved, err := ctrl.Store.CreateMaintenance(c.Context(), req.ToModel())
	if err != nil {
		log.Printf("[ERROR] Gagal create laporan pemeliharaan: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal menyimpan laporan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Laporan pemeliharaan dibuat", saved)
}

// 🟢 PUT /api/u/maintenance/:id
// Supervisor: masjid sendiri & status masih pending. Admin: bebas.
func (ctrl *MaintenanceController) Update(c *fiber.Ctx) error {
	maintenanceID := c.Params("id")

	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	snap, err := ctrl.Store.GetAll(c.Context())
	if err != nil {
		log.Printf("[ERROR] Gagal ambil snapshot: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengambil data dari store")
	}

	existing := findMaintenanceByID(snap.MaintenanceReports, maintenanceID)
	if existing == nil {
		return helper.Error(c, fiber.StatusNotFound, "Laporan pemeliharaan tidak ditemukan")
	}

	if helper.GetUserRole(c) == constants.RoleSupervisor {
		if helper.GetUserMosqueID(c) != existing.MaintenanceMosqueID {
			return helper.Error(c, fiber.StatusForbidden, "Supervisor hanya boleh mengedit laporan masjidnya sendiri")
		}
		if !existing.IsPending() {
			return helper.Error(c, fiber.StatusForbidden, "Laporan yang sudah diproses admin tidak bisa diedit supervisor")
		}
	}

	updated := req.ToModel()
	updated.MaintenanceID = existing.MaintenanceID
	updated.MaintenanceStatus = existing.MaintenanceStatus
	updated.MaintenanceCreatedAt = existing.MaintenanceCreatedAt
	updated.MaintenanceDayCode = existing.MaintenanceDayCode
	updated.MaintenanceMosqueID = existing.MaintenanceMosqueID

	saved, err := ctrl.Store.UpdateMaintenance(c.Context(), updated)
	if err != nil {
		log.Printf("[ERROR] Gagal update laporan pemeliharaan %s: %v", maintenanceID, err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal menyimpan laporan")
	}

	return helper.Success(c, "Laporan pemeliharaan diperbarui", saved)
}

// 🟢 PATCH /api/a/maintenance/:id/status
func (ctrl *MaintenanceController) UpdateStatus(c *fiber.Ctx) error {
	maintenanceID := c.Params("id")

	var req dto.UpdateMaintenanceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidStatus(req.Status) {
		return helper.Error(c, fiber.StatusBadRequest, "Status tidak dikenal")
	}

	saved, err := ctrl.Store.UpdateMaintenanceStatus(c.Context(), maintenanceID, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Laporan pemeliharaan tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal update status pemeliharaan %s: %v", maintenanceID, err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal menyimpan status")
	}

	return helper.Success(c, "Status laporan pemeliharaan diperbarui", saved)
}

func findMaintenanceByID(reports []model.MaintenanceReportModel, id string) *model.MaintenanceReportModel {
	for i := range reports {
		if reports[i].MaintenanceID == id {
			return &reports[i]
		}
	}
	return nil
}
