package main

import (
	"os"
	"strings"

	"oktodeck-backend/internal/auth"
	"oktodeck-backend/internal/config"
	"oktodeck-backend/internal/database"
	"oktodeck-backend/internal/deckorder"
	"oktodeck-backend/internal/inventory"
	"oktodeck-backend/internal/logger"
	"oktodeck-backend/internal/notifications"
	"oktodeck-backend/internal/realtime"
	"oktodeck-backend/internal/reports"
	"oktodeck-backend/internal/store"
	"oktodeck-backend/internal/tasks"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

func main() {
	logger.Init(os.Getenv("APP_ENV"))
	log := logger.S()

	cfg := config.Load()

	var backend store.Backend
	switch cfg.Backend {
	case "postgres":
		if err := database.Init(cfg); err != nil {
			log.Fatalw("database init failed", "err", err)
		}
		backend = store.NewGormBackend(database.DB)
	case "file":
		backend = store.NewFileBackend(cfg.DataDir)
	}

	hub := realtime.NewHub(log)
	go hub.Run()

	stockStore, err := store.New(backend, hub, log)
	if err != nil {
		log.Fatalw("stock store init failed", "err", err)
	}
	orderStore, err := deckorder.New(backend, hub, log)
	if err != nil {
		log.Fatalw("deck order store init failed", "err", err)
	}
	taskStore, err := tasks.New(backend, hub, log)
	if err != nil {
		log.Fatalw("task store init failed", "err", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Errorw("unexpected error", "err", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Change stream (token never fits in a ws handshake header from
	// browsers, so this stays open; it carries no data, only pokes).
	api.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	api.Get("/ws", hub.Handler())

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Stock
	protected.Get("/stock", inventory.ListStockHandler(stockStore))
	protected.Post("/stock", inventory.CreateStockItemHandler(stockStore))
	protected.Get("/stock/export", inventory.ExportStockHandler(stockStore))
	protected.Put("/stock/order", inventory.ReorderHandler(stockStore))
	protected.Post("/stock/undo", inventory.UndoDeleteHandler(stockStore))
	protected.Patch("/stock/:id/quantity", inventory.UpdateQuantityHandler(stockStore))
	protected.Put("/stock/:id", inventory.EditStockItemHandler(stockStore))
	protected.Delete("/stock/:id", inventory.DeleteStockItemHandler(stockStore))

	// Boxes
	protected.Get("/boxes", inventory.ListBoxesHandler(stockStore))
	protected.Post("/boxes", inventory.CreateBoxHandler(stockStore))

	// Usage reports
	protected.Get("/usage", reports.ListUsageHandler(stockStore))
	protected.Get("/usage/months", reports.AvailableMonthsHandler(stockStore))
	protected.Get("/usage/monthly", reports.MonthlyUsageHandler(stockStore))

	// Notifications
	protected.Get("/notifications", notifications.ListHandler(stockStore))
	protected.Delete("/notifications", notifications.ClearHandler(stockStore))

	// Deck orders
	protected.Get("/deck-orders", deckorder.ListHandler(orderStore))
	protected.Post("/deck-orders", deckorder.CreateHandler(orderStore))
	protected.Delete("/deck-orders", deckorder.ClearHandler(orderStore))
	protected.Put("/deck-orders/:id", deckorder.UpdateHandler(orderStore))
	protected.Delete("/deck-orders/:id", deckorder.DeleteHandler(orderStore))

	// Tasks
	protected.Get("/tasks", tasks.ListHandler(taskStore))
	protected.Post("/tasks", tasks.CreateHandler(taskStore))
	protected.Post("/tasks/:id/toggle", tasks.ToggleHandler(taskStore))
	protected.Delete("/tasks/:id", tasks.DeleteHandler(taskStore))

	// Full reset: seed catalog back, ledger/notifications/tasks cleared.
	protected.Post("/reset", inventory.ResetHandler(stockStore, taskStore.Clear))

	log.Infow("server listening", "port", cfg.HTTPPort, "backend", cfg.Backend)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
}
