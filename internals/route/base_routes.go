package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"ramadanku_backend/internals/configs"
	"ramadanku_backend/internals/store"
)

func BaseRoutes(app *fiber.App, st store.Store) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ramadanku backend siap 🚀")
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("Simulasi panic error!") // testing panic handler
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		serverStatus := "OK"
		storeStatus := "Connected"
		httpStatus := fiber.StatusOK

		// health cek ringan: snapshot harus bisa diambil dari driver aktif
		if _, err := st.GetAll(c.Context()); err != nil {
			serverStatus = "DOWN"
			storeStatus = "Store connection error"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"store":          storeStatus,
			"store_driver":   configs.StoreDriver,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
