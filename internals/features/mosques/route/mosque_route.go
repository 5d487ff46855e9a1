package route

import (
	"github.com/gofiber/fiber/v2"

	mosqueController "ramadanku_backend/internals/features/mosques/controller"
	"ramadanku_backend/internals/store"
)

func MosquePublicRoutes(public fiber.Router, st store.Store) {
	ctrl := mosqueController.NewMosqueController(st)

	public.Get("/mosques", ctrl.GetAll)
}
