package tasks

import (
	"errors"

	"oktodeck-backend/internal/logger"
	"oktodeck-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateTaskRequest struct {
	Text string `json:"text"`
}

// GET /api/tasks
func ListHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"tasks": s.Tasks(),
			"stats": s.Stats(),
		})
	}
}

// POST /api/tasks
func CreateHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTaskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		task, err := s.Add(body.Text)
		if err != nil {
			logger.S().Errorw("task add persisted with error", "err", err)
		}
		if task.ID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "text must not be blank")
		}

		return c.Status(fiber.StatusCreated).JSON(task)
	}
}

// POST /api/tasks/:id/toggle
func ToggleHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		task, err := s.Toggle(c.Params("id"))
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		if err != nil {
			logger.S().Errorw("task toggle persisted with error", "id", c.Params("id"), "err", err)
		}
		return c.JSON(task)
	}
}

// DELETE /api/tasks/:id
func DeleteHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.Delete(c.Params("id")); err != nil {
			logger.S().Errorw("task delete persisted with error", "id", c.Params("id"), "err", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
