package deckorder

import (
	"errors"

	"oktodeck-backend/internal/logger"
	"oktodeck-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/deck-orders
func ListHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Items())
	}
}

// POST /api/deck-orders
func CreateHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Fields
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item, err := s.Add(body)
		if err != nil {
			logger.S().Errorw("deck order add persisted with error", "err", err)
		}
		if item.ID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "productName is required")
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/deck-orders/:id
func UpdateHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body Fields
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		item, err := s.Update(c.Params("id"), body)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Order item not found")
		}
		if err != nil {
			logger.S().Errorw("deck order update persisted with error", "id", c.Params("id"), "err", err)
		}

		return c.JSON(item)
	}
}

// DELETE /api/deck-orders/:id
func DeleteHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.Delete(c.Params("id")); err != nil {
			logger.S().Errorw("deck order delete persisted with error", "id", c.Params("id"), "err", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DELETE /api/deck-orders?confirm=true
// Clearing everything is destructive and unrecoverable, so it demands the
// explicit confirmation flag.
func ClearHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Query("confirm") != "true" {
			return fiber.NewError(fiber.StatusBadRequest, "confirm=true is required to clear the deck order list")
		}
		if err := s.Clear(); err != nil {
			logger.S().Errorw("deck order clear persisted with error", "err", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
