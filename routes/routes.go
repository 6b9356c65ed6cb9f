package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buzaev-fedor/stepik-week-4/handlers"
)

func Register(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	api.Get("/goals", h.ListGoals)
	api.Get("/goals/:alias/teachers", h.TeachersByGoal)

	api.Get("/teachers", h.ListTeachers)
	// featured must be registered before the id route
	api.Get("/teachers/featured", h.FeaturedTeachers)
	api.Get("/teachers/:teacherId", h.GetTeacherProfile)

	api.Post("/requests", h.CreateRequest)
	api.Post("/bookings", h.CreateBooking)
}
