package route

import (
	"github.com/gofiber/fiber/v2"

	maintenanceController "ramadanku_backend/internals/features/maintenance/controller"
	"ramadanku_backend/internals/store"
)

func MaintenanceUserRoutes(user fiber.Router, st store.Store) {
	ctrl := maintenanceController.NewMaintenanceController(st)

	user.Post("/maintenance", ctrl.Create)
	user.Put("/maintenance/:id", ctrl.Update)
}

func MaintenanceAdminRoutes(admin fiber.Router, st store.Store) {
	ctrl := maintenanceController.NewMaintenanceController(st)

	admin.Patch("/maintenance/:id/status", ctrl.UpdateStatus)
}
