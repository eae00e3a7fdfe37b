// Package notifications serves the bounded activity log.
package notifications

import (
	"oktodeck-backend/internal/logger"
	"oktodeck-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/notifications — newest first, at most 50.
func ListHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.Notifications())
	}
}

// DELETE /api/notifications
func ClearHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.ClearNotifications(); err != nil {
			logger.S().Errorw("notification clear persisted with error", "err", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
