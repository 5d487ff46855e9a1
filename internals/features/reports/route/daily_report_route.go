package route

import (
	"github.com/gofiber/fiber/v2"

	reportController "ramadanku_backend/internals/features/reports/controller"
	"ramadanku_backend/internals/features/reports/service"
	"ramadanku_backend/internals/store"
)

// Route publik: baca snapshot & ringkasan harian, tanpa token.
func ReportPublicRoutes(public fiber.Router, st store.Store) {
	ctrl := reportController.NewDailyReportController(st, nil)

	public.Get("/all", ctrl.GetAllData)
	public.Get("/summary/:day", ctrl.GetDailySummary)
}

// Route user login (supervisor/admin): entry laporan + wizard.
func ReportUserRoutes(user fiber.Router, st store.Store, wizard *service.WizardService) {
	ctrl := reportController.NewDailyReportController(st, nil)
	wiz := reportController.NewWizardController(wizard)

	user.Post("/reports", ctrl.CreateReport)
	user.Put("/reports/:id", ctrl.UpdateReport)

	w := user.Group("/wizard")
	w.Post("/", wiz.Start)
	w.Post("/:session/day", wiz.SelectDay)
	w.Post("/:session/mosque", wiz.SelectMosque)
	w.Post("/:session/category", wiz.SelectCategory)
	w.Post("/:session/submit", wiz.SubmitCategory)
	w.Post("/:session/cancel", wiz.CancelCategory)
	w.Post("/:session/finish", wiz.Finish)
}

// Route admin: workflow status + analisis AI.
func ReportAdminRoutes(admin fiber.Router, st store.Store, sum service.Summarizer) {
	ctrl := reportController.NewDailyReportController(st, sum)

	admin.Patch("/reports/:id/status", ctrl.UpdateStatus)
	admin.Post("/analysis/:day", ctrl.AnalyzeDay)
}
