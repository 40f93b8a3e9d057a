// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromToken mengembalikan user_id yang diset AuthMiddleware.
func GetUserIDFromToken(c *fiber.Ctx) (string, error) {
	if v, ok := c.Locals("user_id").(string); ok && strings.TrimSpace(v) != "" {
		return v, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user ID tidak ditemukan")
}

// GetRoleFromToken mengembalikan role dari klaim (kosong bila tidak ada).
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok {
		return v
	}
	return ""
}

// GetRawAccessToken mengembalikan access token dari cookie atau Authorization header.
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
