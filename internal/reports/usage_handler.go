// Package reports serves the usage ledger and its monthly aggregation.
package reports

import (
	"oktodeck-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/usage
func ListUsageHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.UsageEntries())
	}
}

// GET /api/usage/months
func AvailableMonthsHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"months": s.AvailableMonths()})
	}
}

// GET /api/usage/monthly?month=YYYY-MM
func MonthlyUsageHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		month := c.Query("month")
		if month == "" {
			return fiber.NewError(fiber.StatusBadRequest, "month is required")
		}

		rows, err := s.MonthlyUsage(month)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "month must be formatted YYYY-MM")
		}

		return c.JSON(fiber.Map{
			"month": month,
			"rows":  rows,
		})
	}
}
