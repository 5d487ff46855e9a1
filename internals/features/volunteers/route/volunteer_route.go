package route

import (
	"github.com/gofiber/fiber/v2"

	volunteerController "ramadanku_backend/internals/features/volunteers/controller"
	"ramadanku_backend/internals/store"
)

func VolunteerPublicRoutes(public fiber.Router, st store.Store) {
	ctrl := volunteerController.NewVolunteerController(st)

	public.Post("/volunteers", ctrl.Register)
}

func VolunteerAdminRoutes(admin fiber.Router, st store.Store) {
	ctrl := volunteerController.NewVolunteerController(st)

	admin.Get("/volunteers", ctrl.GetAll)
}
