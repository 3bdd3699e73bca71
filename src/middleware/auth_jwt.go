package middleware

import (
	"strings"

	"Backend-Scholarship-Finder/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthJWT.
const (
	LocalAdminID  = "adminId"
	LocalUsername = "username"
	LocalRole     = "role"
	LocalToken    = "token"
	LocalClaims   = "claims"
)

// AuthJWT ตรวจ Bearer token, blacklist และเก็บ claims ไว้ใน Locals
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	revoked, err := utils.IsTokenBlacklisted(tokenStr)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	if revoked {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Token has been revoked")
	}

	c.Locals(LocalAdminID, claims.UserID)
	c.Locals(LocalUsername, claims.Username)
	c.Locals(LocalRole, claims.Role)
	c.Locals(LocalToken, tokenStr)
	c.Locals(LocalClaims, claims)

	return c.Next()
}

// RequireRole อนุญาตเฉพาะ token ที่มี role ตรงกัน ต้องใช้หลัง AuthJWT
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if got, _ := c.Locals(LocalRole).(string); got != role {
			return utils.HandleError(c, fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}
