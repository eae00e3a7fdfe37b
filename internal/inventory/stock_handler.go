package inventory

import (
	"errors"

	"oktodeck-backend/internal/logger"
	"oktodeck-backend/internal/models"
	"oktodeck-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateStockItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Box      string `json:"box"`
}

type UpdateQuantityRequest struct {
	Delta *int `json:"delta"`
	Value *int `json:"value"`
}

type EditStockItemRequest struct {
	Name string `json:"name"`
	Box  string `json:"box"`
}

type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// GET /api/stock
// Query: search, box ("all" or a box name), sort
// (default|name-asc|name-desc|qty-asc|qty-desc).
func ListStockHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sortMode := store.SortMode(c.Query("sort"))
		if !store.ValidSortMode(sortMode) {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown sort mode")
		}

		view := s.View(store.Query{
			Search: c.Query("search"),
			Box:    c.Query("box"),
			Sort:   sortMode,
		})

		return c.JSON(fiber.Map{
			"grouped":        view.Grouped,
			"items":          view.Items,
			"groups":         view.Groups,
			"total_items":    len(s.Items()),
			"total_quantity": s.TotalQuantity(),
		})
	}
}

// POST /api/stock
func CreateStockItemHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStockItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" || body.Box == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name and box are required")
		}

		item, err := s.Add(body.Name, body.Quantity, body.Box)
		if err != nil {
			// Optimistic: the in-memory add stands, persistence catches up
			// on the next write or reload.
			logger.S().Errorw("stock add persisted with error", "item", item.Name, "err", err)
		}
		if item.ID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name must not be blank")
		}

		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PATCH /api/stock/:id/quantity
// Body carries either a relative {"delta": -2} or an absolute {"value": 7}.
func UpdateQuantityHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateQuantityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if (body.Delta == nil) == (body.Value == nil) {
			return fiber.NewError(fiber.StatusBadRequest, "provide exactly one of delta or value")
		}

		id := c.Params("id")
		var (
			item models.StockItem
			err  error
		)
		if body.Delta != nil {
			item, err = s.ChangeQuantity(id, *body.Delta)
		} else {
			item, err = s.SetQuantity(id, *body.Value)
		}
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		if err != nil {
			logger.S().Errorw("quantity update persisted with error", "id", id, "err", err)
		}

		return c.JSON(item)
	}
}

// PUT /api/stock/:id
func EditStockItemHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body EditStockItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name must not be blank")
		}

		item, err := s.Edit(c.Params("id"), body.Name, body.Box)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		if err != nil {
			logger.S().Errorw("stock edit persisted with error", "id", c.Params("id"), "err", err)
		}

		return c.JSON(item)
	}
}

// DELETE /api/stock/:id
// Idempotent: deleting an id that is already gone still returns 204.
func DeleteStockItemHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.Remove(c.Params("id")); err != nil {
			logger.S().Errorw("stock delete persisted with error", "id", c.Params("id"), "err", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/stock/undo
func UndoDeleteHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, ok, err := s.UndoRemove()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Nothing to undo")
		}
		if err != nil {
			logger.S().Errorw("undo persisted with error", "id", item.ID, "err", err)
		}
		return c.JSON(item)
	}
}

// PUT /api/stock/order
func ReorderHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ReorderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if len(body.IDs) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ids are required")
		}

		if err := s.Reorder(body.IDs); err != nil {
			logger.S().Errorw("reorder persisted with error", "err", err)
		}
		return c.JSON(s.Items())
	}
}

// POST /api/reset
// Restores the seed catalog and clears the usage ledger, the notification
// log and the task list. Deck orders and custom boxes are kept.
func ResetHandler(s *store.Store, clearers ...func() error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.Reset(); err != nil {
			logger.S().Errorw("reset persisted with error", "err", err)
		}
		for _, clear := range clearers {
			if err := clear(); err != nil {
				logger.S().Errorw("reset clear persisted with error", "err", err)
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
