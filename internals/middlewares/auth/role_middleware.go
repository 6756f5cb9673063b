package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "aulataller_backend/internals/helpers/auth"
)

// RequireRoles rejects callers whose role is not in the allow list.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		if _, ok := allowed[helperAuth.GetRole(c)]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Access denied")
		}
		return c.Next()
	}
}
