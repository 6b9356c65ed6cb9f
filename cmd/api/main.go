package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	config "github.com/buzaev-fedor/stepik-week-4/configs"
	"github.com/buzaev-fedor/stepik-week-4/database"
	"github.com/buzaev-fedor/stepik-week-4/handlers"
	"github.com/buzaev-fedor/stepik-week-4/logger"
	"github.com/buzaev-fedor/stepik-week-4/middleware"
	"github.com/buzaev-fedor/stepik-week-4/repository"
	"github.com/buzaev-fedor/stepik-week-4/routes"
	"github.com/buzaev-fedor/stepik-week-4/seed"
	"github.com/buzaev-fedor/stepik-week-4/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl := logger.New(cfg.Environment)
	defer zl.Sync()

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zl.Fatal("database migration failed", zap.Error(err))
	}

	goals, err := seed.LoadGoals(cfg.GoalsFile)
	if err != nil {
		zl.Fatal("failed to load goals seed data", zap.Error(err))
	}
	teacherRecords, err := seed.LoadTeachers(cfg.TeachersFile)
	if err != nil {
		zl.Fatal("failed to load teachers seed data", zap.Error(err))
	}

	repo := repository.New(db, zl)
	catalog := services.NewCatalogService(repo, zl)
	teachers := services.NewTeacherService(repo, zl)
	bookings := services.NewBookingService(repo, zl)
	requests := services.NewRequestService(repo, zl)

	// Seeding runs to completion before the listener starts serving.
	if err := catalog.Seed(context.Background(), goals, teacherRecords); err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:       "Tutor Marketplace",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			zl.Error("request failed",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.Int("status", code),
				zap.Error(err))

			if code == fiber.StatusNotFound {
				return c.Status(code).JSON(fiber.Map{
					"error": "Nothing found! What a shame, head back to the main page!",
				})
			}
			return c.Status(code).JSON(fiber.Map{
				"error": "Something went wrong, but we will fix it",
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Register(app, handlers.New(catalog, teachers, bookings, requests, zl))

	zl.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := app.Listen(cfg.ListenAddr); err != nil {
		zl.Fatal("server failed to start", zap.Error(err))
	}
}
