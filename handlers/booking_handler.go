package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/buzaev-fedor/stepik-week-4/services"
)

type CreateBookingRequest struct {
	TeacherID   uint   `json:"teacher_id" validate:"required"`
	Weekday     string `json:"weekday" validate:"required,oneof=mon tue wed thu fri sat sun"`
	Time        string `json:"time" validate:"required,timetoken"`
	ClientName  string `json:"client_name" validate:"required,min=3"`
	ClientPhone string `json:"client_phone" validate:"required,ruphone"`
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientPhone = strings.TrimSpace(req.ClientPhone)
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	booking, err := h.bookings.Create(c.Context(),
		req.TeacherID, req.ClientName, req.ClientPhone, req.Weekday, req.Time)
	if err != nil {
		if errors.Is(err, services.ErrTeacherNotFound) {
			return notFound(c)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}
