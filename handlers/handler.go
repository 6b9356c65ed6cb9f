package handlers

import (
	"go.uber.org/zap"

	"github.com/buzaev-fedor/stepik-week-4/services"
)

// featuredCount is how many random teachers the landing endpoint shows.
const featuredCount = 6

// Handler bundles the service dependencies of the HTTP layer.
type Handler struct {
	catalog  services.CatalogService
	teachers services.TeacherService
	bookings services.BookingService
	requests services.RequestService
	logger   *zap.Logger
}

func New(
	catalog services.CatalogService,
	teachers services.TeacherService,
	bookings services.BookingService,
	requests services.RequestService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		catalog:  catalog,
		teachers: teachers,
		bookings: bookings,
		requests: requests,
		logger:   logger,
	}
}
