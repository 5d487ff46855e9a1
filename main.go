package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"ramadanku_backend/internals/configs"
	database "ramadanku_backend/internals/databases"
	"ramadanku_backend/internals/features/reports/service"
	middlewares "ramadanku_backend/internals/middlewares"
	routes "ramadanku_backend/internals/route"
	seeds "ramadanku_backend/internals/seeds"
	"ramadanku_backend/internals/store"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// timeout guard menyeluruh: store remote (sheets) ikut terpotong
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 Store: memory / sheets / postgres, dipilih lewat STORE_DRIVER
	st, err := store.NewFromEnv()
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi store: %v", err)
	}

	// 🌱 seeding masjid hanya relevan untuk driver postgres
	if configs.StoreDriver == "postgres" {
		if run, _ := strconv.ParseBool(os.Getenv("RUN_SEEDS")); run {
			seeds.RunAllSeeds(database.DB)
		}
	}

	// 🤖 Gemini opsional: tanpa API key fitur analisis dimatikan, bukan fatal
	var summarizer service.Summarizer
	if configs.GeminiAPIKey != "" {
		gs, err := service.NewGeminiSummarizer(context.Background(), configs.GeminiAPIKey, configs.GeminiModel)
		if err != nil {
			log.Printf("⚠️ Gemini tidak aktif: %v", err)
		} else {
			summarizer = gs
		}
	}

	// ✅ Routes
	routes.SetupRoutes(app, st, summarizer)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB (kalau driver postgres)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if configs.StoreDriver == "postgres" && database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
