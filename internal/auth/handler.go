package auth

import (
	"strings"
	"time"

	"oktodeck-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	KeepLoggedIn bool   `json:"keep_logged_in"`
}

// LoginHandler validates the single shared credential and issues a JWT.
// Config carries only the bcrypt hash of the password.
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Username = strings.TrimSpace(body.Username)
		if body.Username == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Username and password are required")
		}

		if body.Username != cfg.SharedUser ||
			bcrypt.CompareHashAndPassword([]byte(cfg.SharedPassHash), []byte(body.Password)) != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}

		ttl := 24 * time.Hour
		if body.KeepLoggedIn {
			ttl = 30 * 24 * time.Hour
		}

		token, err := GenerateToken(cfg.JWTSecret, body.Username, ttl)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not sign token")
		}

		return c.JSON(fiber.Map{
			"token":    token,
			"username": body.Username,
		})
	}
}

func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, ok := c.Locals(CtxUsernameKey).(string)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Could not read session")
		}
		return c.JSON(fiber.Map{"username": username})
	}
}
