package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrNoUserInToken = errors.New("user id not found in token")

// GetUserIDFromToken mengambil user_id yang sudah ditaruh middleware auth
// di locals. Di-validate sebagai uuid supaya tidak ada id liar masuk query.
func GetUserIDFromToken(c *fiber.Ctx) (string, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return "", ErrNoUserInToken
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", ErrNoUserInToken
	}
	return raw, nil
}

// IsAdminFromToken: role claim yang ditaruh middleware auth.
func IsAdminFromToken(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == "admin" || role == "owner"
}
