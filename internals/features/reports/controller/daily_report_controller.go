package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ramadanku_backend/internals/constants"
	"ramadanku_backend/internals/features/reports/dto"
	"ramadanku_backend/internals/features/reports/model"
	"ramadanku_backend/internals/features/reports/service"
	helper "ramadanku_backend/internals/helpers"
	"ramadanku_backend/internals/store"
)

var validate = validator.New()

type DailyReportController struct {
	Store      store.Store
	Summarizer service.Summarizer
}

func NewDailyReportController(st store.Store, sum service.Summarizer) *DailyReportController {
	return &DailyReportController{Store: st, Summarizer: sum}
}

// 🟢 GET /api/public/all — snapshot lengkap: masjid, hari, semua laporan.
// Satu fetch untuk bootstrap frontend, bukan endpoint per-entitas.
func (ctrl *DailyReportController) GetAllData(c *fiber.Ctx) error {
	snap, err := ctrl.Store.GetAll(c.Context())
	if err != nil {
		log.Printf("[ERROR] Gagal ambil snapshot: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengambil data dari store")
	}

	return helper.Success(c, "Data berhasil diambil", fiber.Map{
		"mosques": snap.Mosques,
		"days":    snap.Days,
		"reports": dto.ToDailyReportResponseList(snap.Reports),
	})
}

// 🟢 POST /api/u/reports — buat laporan lengkap (semua kategori sekaligus).
// Supervisor hanya boleh membuat untuk masjidnya sendiri.
func (ctrl *DailyReportController) CreateReport(c *fiber.Ctx) error {
	var req dto.DailyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidDayCode(req.ReportDayCode) {
		return helper.Error(c, fiber.StatusBadRequest, "Kode hari tidak dikenal")
	}

	if helper.GetUserRole(c) == constants.RoleSupervisor &&
		helper.GetUserMosqueID(c) != req.ReportMosqueID {
		return helper.Error(c, fiber.StatusForbidden, "Supervisor hanya boleh mengisi laporan masjidnya sendiri")
	}

	saved, err := ctrl.Store.CreateReport(c.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, store.ErrDuplicateReport) {
			return helper.Error(c, fiber.StatusConflict, "Laporan untuk pasangan hari & masjid ini sudah ada")
		}
		log.Printf("[ERROR] Gagal create laporan: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal menyimpan laporan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Laporan berhasil dibuat", dto.ToDailyReportResponse(saved))
}

// 🟢 PUT /api/u/reports/:id — update laporan lengkap.
// Supervisor: masjid sendiri & status masih pending. Admin: bebas.
func (ctrl *DailyReportController) UpdateReport(c *fiber.Ctx) error {
	reportID := c.Params("id")

	var req dto.DailyReportRequest
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

	existing := findReportByID(snap.Reports, reportID)
	if existing == nil {
		return helper.Error(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
	}

	if msg := editDenied(c, existing); msg != "" {
		return helper.Error(c, fiber.StatusForbidden, msg)
	}

	updated := req.ToModel()
	updated.ReportID = existing.ReportID
	updated.ReportStatus = existing.ReportStatus
	updated.ReportCreatedAt = existing.ReportCreatedAt
	// pasangan (hari, masjid) tidak boleh berpindah lewat update
	updated.ReportDayCode = existing.ReportDayCode
	updated.ReportMosqueID = existing.ReportMosqueID

	saved, err := ctrl.Store.UpdateReport(c.Context(), updated)
	if err != nil {
		log.Printf("[ERROR] Gagal update laporan %s: %v", reportID, err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal menyimpan laporan")
	}

	return helper.Success(c, "Laporan berhasil diperbarui", dto.ToDailyReportResponse(saved))
}

// 🟢 PATCH /api/a/reports/:id/status — admin meng-approve / me-reject.
func (ctrl *DailyReportController) UpdateStatus(c *fiber.Ctx) error {
	reportID := c.Params("id")

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidStatus(req.Status) {
		return helper.Error(c, fiber.StatusBadRequest, "Status tidak dikenal")
	}

	saved, err := ctrl.Store.UpdateReportStatus(c.Context(), reportID, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal update status laporan %s: %v", reportID, err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal menyimpan status")
	}

	return helper.Success(c, "Status laporan diperbarui", dto.ToDailyReportResponse(saved))
}

// 🟢 GET /api/public/summary/:day — agregasi satu hari, semua masjid.
// data=null + has_reports=false artinya belum ada laporan untuk hari itu.
func (ctrl *DailyReportController) GetDailySummary(c *fiber.Ctx) error {
	dayCode := c.Params("day")
	if !constants.IsValidDayCode(dayCode) {
		return helper.Error(c, fiber.StatusBadRequest, "Kode hari tidak dikenal")
	}

	snap, err := ctrl.Store.GetAll(c.Context())
	if err != nil {
		log.Printf("[ERROR] Gagal ambil snapshot: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengambil data dari store")
	}

	totals := service.Aggregate(snap.Reports, dayCode)
	if totals == nil {
		return helper.Success(c, "Belum ada laporan untuk hari ini", fiber.Map{
			"day_code":    dayCode,
			"has_reports": false,
			"totals":      nil,
		})
	}

	return helper.Success(c, "Ringkasan harian berhasil dihitung", fiber.Map{
		"day_code":    dayCode,
		"has_reports": true,
		"totals":      totals,
	})
}

// 🟢 POST /api/a/analysis/:day — narasi AI dari laporan APPROVED hari itu.
func (ctrl *DailyReportController) AnalyzeDay(c *fiber.Ctx) error {
	dayCode := c.Params("day")
	if !constants.IsValidDayCode(dayCode) {
		return helper.Error(c, fiber.StatusBadRequest, "Kode hari tidak dikenal")
	}
	if ctrl.Summarizer == nil {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Layanan analisis AI tidak dikonfigurasi")
	}

	snap, err := ctrl.Store.GetAll(c.Context())
	if err != nil {
		log.Printf("[ERROR] Gagal ambil snapshot: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengambil data dari store")
	}

	var approved []model.DailyReportModel
	for _, r := range snap.Reports {
		if r.ReportDayCode == dayCode && r.ReportStatus == constants.StatusApproved {
			approved = append(approved, r)
		}
	}

	narrative, err := ctrl.Summarizer.Summarize(c.Context(), approved)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}

	return helper.Success(c, "Analisis berhasil dibuat", fiber.Map{
		"day_code":  dayCode,
		"analyzed":  len(approved),
		"narrative": narrative,
	})
}

func findReportByID(reports []model.DailyReportModel, id string) *model.DailyReportModel {
	for i := range reports {
		if reports[i].ReportID == id {
			return &reports[i]
		}
	}
	return nil
}

// editDenied mengembalikan pesan penolakan, atau "" kalau boleh edit.
func editDenied(c *fiber.Ctx, existing *model.DailyReportModel) string {
	if helper.GetUserRole(c) != constants.RoleSupervisor {
		return "" // admin bebas edit
	}
	if helper.GetUserMosqueID(c) != existing.ReportMosqueID {
		return "Supervisor hanya boleh mengedit laporan masjidnya sendiri"
	}
	if !existing.IsPending() {
		return "Laporan yang sudah diproses admin tidak bisa diedit supervisor"
	}
	return ""
}
