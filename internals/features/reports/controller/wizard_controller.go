package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"ramadanku_backend/internals/constants"
	"ramadanku_backend/internals/features/reports/dto"
	"ramadanku_backend/internals/features/reports/service"
	helper "ramadanku_backend/internals/helpers"
)

type WizardController struct {
	Wizard *service.WizardService
}

func NewWizardController(w *service.WizardService) *WizardController {
	return &WizardController{Wizard: w}
}

type selectDayRequest struct {
	DayCode string `json:"day_code" validate:"required"`
}

type selectMosqueRequest struct {
	MosqueID string `json:"mosque_id" validate:"required"`
}

type selectCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// 🟢 POST /api/u/wizard — buka sesi entry baru.
func (ctrl *WizardController) Start(c *fiber.Ctx) error {
	sess := ctrl.Wizard.Start(helper.GetUserName(c))
	log.Printf("[INFO] Sesi wizard %s dibuka oleh %s", sess.SessionID, sess.SupervisorName)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi wizard dibuka", sess)
}

// 🟢 POST /api/u/wizard/:session/day
func (ctrl *WizardController) SelectDay(c *fiber.Ctx) error {
	var req selectDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sess, err := ctrl.Wizard.SelectDay(c.Params("session"), req.DayCode)
	if err != nil {
		return wizardError(c, err)
	}
	return helper.Success(c, "Hari dipilih", sess)
}

// 🟢 POST /api/u/wizard/:session/mosque
func (ctrl *WizardController) SelectMosque(c *fiber.Ctx) error {
	var req selectMosqueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if helper.GetUserRole(c) == constants.RoleSupervisor &&
		helper.GetUserMosqueID(c) != req.MosqueID {
		return helper.Error(c, fiber.StatusForbidden, "Supervisor hanya boleh mengisi laporan masjidnya sendiri")
	}

	sess, err := ctrl.Wizard.SelectMosque(c.Context(), c.Params("session"), req.MosqueID)
	if err != nil {
		return wizardError(c, err)
	}
	return helper.Success(c, "Masjid dipilih, record kerja siap", sess)
}

// 🟢 POST /api/u/wizard/:session/category
func (ctrl *WizardController) SelectCategory(c *fiber.Ctx) error {
	var req selectCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	sess, err := ctrl.Wizard.SelectCategory(c.Params("session"), req.Category)
	if err != nil {
		return wizardError(c, err)
	}
	return helper.Success(c, "Kategori dipilih", sess)
}

// 🟢 POST /api/u/wizard/:session/submit — simpan field kategori + persist
// seluruh record ke store.
func (ctrl *WizardController) SubmitCategory(c *fiber.Ctx) error {
	sessionID := c.Params("session")

	var req dto.CategoryFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Supervisor tidak boleh menimpa record yang sudah diproses admin.
	sess, err := ctrl.Wizard.Session(sessionID)
	if err != nil {
		return wizardError(c, err)
	}
	if helper.GetUserRole(c) == constants.RoleSupervisor &&
		sess.Working != nil && sess.Working.ReportID != "" && !sess.Working.IsPending() {
		return helper.Error(c, fiber.StatusForbidden, "Laporan yang sudah diproses admin tidak bisa diedit supervisor")
	}

	sess, err = ctrl.Wizard.SubmitCategory(c.Context(), sessionID, &req)
	if err != nil {
		return wizardError(c, err)
	}
	return helper.Success(c, "Kategori tersimpan", sess)
}

// 🟢 POST /api/u/wizard/:session/cancel — keluar dari form tanpa simpan.
func (ctrl *WizardController) CancelCategory(c *fiber.Ctx) error {
	sess, err := ctrl.Wizard.CancelCategory(c.Params("session"))
	if err != nil {
		return wizardError(c, err)
	}
	return helper.Success(c, "Edit kategori dibatalkan", sess)
}

// 🟢 POST /api/u/wizard/:session/finish — tutup sesi.
func (ctrl *WizardController) Finish(c *fiber.Ctx) error {
	sess, err := ctrl.Wizard.Finish(c.Params("session"))
	if err != nil {
		return wizardError(c, err)
	}
	return helper.Success(c, "Sesi wizard selesai", sess)
}

// wizardError memetakan error service ke kode HTTP.
func wizardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWrongState):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownDay),
		errors.Is(err, service.ErrUnknownMosque),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrCategoryMismatch):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("[ERROR] Wizard gagal akses store: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengakses store")
	}
}
