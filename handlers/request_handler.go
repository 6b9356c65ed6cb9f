package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/buzaev-fedor/stepik-week-4/services"
)

type CreateTeacherRequest struct {
	Goal     string `json:"goal" validate:"required"`
	FreeTime string `json:"free_time" validate:"required,freetime"`
	Name     string `json:"name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"required,ruphone"`
}

func (h *Handler) CreateRequest(c *fiber.Ctx) error {
	var req CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	request, err := h.requests.Create(c.Context(),
		req.Goal, req.FreeTime, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			return notFound(c)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}
