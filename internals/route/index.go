package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"ramadanku_backend/internals/constants"
	authRoute "ramadanku_backend/internals/features/auth/route"
	maintenanceRoute "ramadanku_backend/internals/features/maintenance/route"
	mosqueRoute "ramadanku_backend/internals/features/mosques/route"
	reportRoute "ramadanku_backend/internals/features/reports/route"
	"ramadanku_backend/internals/features/reports/service"
	volunteerRoute "ramadanku_backend/internals/features/volunteers/route"
	authMiddleware "ramadanku_backend/internals/middlewares/auth"
	"ramadanku_backend/internals/store"
)

var startTime time.Time

// SetupRoutes merakit seluruh surface HTTP:
//
//	/api/auth    → login admin / supervisor, logout (rate limit ketat)
//	/api/public  → snapshot, daftar masjid, ringkasan harian, daftar relawan
//	/api/u       → butuh token (supervisor atau admin): entry laporan + wizard
//	/api/a       → butuh token role admin: status workflow + analisis AI
func SetupRoutes(app *fiber.App, st store.Store, sum service.Summarizer) {
	startTime = time.Now()
	wizard := service.NewWizardService(st)

	BaseRoutes(app, st)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, st)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	mosqueRoute.MosquePublicRoutes(public, st)
	reportRoute.ReportPublicRoutes(public, st)
	volunteerRoute.VolunteerPublicRoutes(public, st)

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	reportRoute.ReportUserRoutes(user, st, wizard)
	maintenanceRoute.MaintenanceUserRoutes(user, st)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("fitur admin"), constants.RoleAdmin),
	)
	reportRoute.ReportAdminRoutes(admin, st, sum)
	volunteerRoute.VolunteerAdminRoutes(admin, st)
	maintenanceRoute.MaintenanceAdminRoutes(admin, st)
}
