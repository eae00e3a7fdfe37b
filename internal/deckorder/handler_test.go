package deckorder

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"oktodeck-backend/internal/models"
)

func newTestApp(t *testing.T) (*fiber.App, *Store) {
	t.Helper()
	s := newTestStore(t)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Get("/api/deck-orders", ListHandler(s))
	app.Post("/api/deck-orders", CreateHandler(s))
	app.Delete("/api/deck-orders", ClearHandler(s))
	app.Put("/api/deck-orders/:id", UpdateHandler(s))
	app.Delete("/api/deck-orders/:id", DeleteHandler(s))
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateAndUpdateEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/deck-orders",
		Fields{ProductName: ptr("Hose"), Colour: ptr("Blue")})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.DeckOrderItem
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &created))
	require.Equal(t, "1", created.Quantity)

	resp = doJSON(t, app, http.MethodPost, "/api/deck-orders", Fields{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/deck-orders/"+created.ID,
		Fields{Quantity: ptr("2 rolls")})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/deck-orders/ghost",
		Fields{Quantity: ptr("2")})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClearDemandsConfirmation(t *testing.T) {
	app, s := newTestApp(t)
	_, err := s.Add(Fields{ProductName: ptr("Hose")})
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodDelete, "/api/deck-orders", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Len(t, s.Items(), 1)

	resp = doJSON(t, app, http.MethodDelete, "/api/deck-orders?confirm=true", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.Empty(t, s.Items())
}
