package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/buzaev-fedor/stepik-week-4/models"
	"github.com/buzaev-fedor/stepik-week-4/services"
)

func (h *Handler) ListGoals(c *fiber.Ctx) error {
	goals, err := h.catalog.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(goals)
}

func (h *Handler) ListTeachers(c *fiber.Ctx) error {
	teachers, err := h.teachers.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(teachers)
}

func (h *Handler) FeaturedTeachers(c *fiber.Ctx) error {
	teachers, err := h.teachers.Sample(c.Context(), featuredCount)
	if err != nil {
		return err
	}
	return c.JSON(teachers)
}

func (h *Handler) TeachersByGoal(c *fiber.Ctx) error {
	alias := c.Params("alias")

	goal, err := h.catalog.GetByAlias(c.Context(), alias)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			return notFound(c)
		}
		return err
	}

	teachers, err := h.teachers.FilterByGoal(c.Context(), alias)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(fiber.Map{
		"goal":     goal,
		"teachers": teachers,
	})
}

func (h *Handler) GetTeacherProfile(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("teacherId"))
	if err != nil || id <= 0 {
		return notFound(c)
	}

	teacher, err := h.teachers.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTeacherNotFound) {
			return notFound(c)
		}
		return err
	}

	schedule, err := teacher.FreeTime()
	if err != nil {
		h.logger.Error("corrupt free-time column",
			zap.Uint("teacher_id", teacher.ID), zap.Error(err))
		return err
	}

	return c.JSON(fiber.Map{
		"teacher":  teacher,
		"schedule": schedule,
		"days":     models.Weekdays,
	})
}
