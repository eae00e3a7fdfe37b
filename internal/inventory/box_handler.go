package inventory

import (
	"oktodeck-backend/internal/logger"
	"oktodeck-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateBoxRequest struct {
	Name string `json:"name"`
}

// GET /api/boxes
func ListBoxesHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, custom := s.Boxes()
		return c.JSON(fiber.Map{
			"boxes":  all,
			"custom": custom,
		})
	}
}

// POST /api/boxes
// Custom boxes are append-only; duplicates against the fixed enumeration
// or earlier customs are rejected.
func CreateBoxHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBoxRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		added, err := s.AddCustomBox(body.Name)
		if err != nil {
			logger.S().Errorw("custom box persisted with error", "box", body.Name, "err", err)
		}
		if !added {
			return fiber.NewError(fiber.StatusConflict, "Box already exists")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": body.Name})
	}
}
