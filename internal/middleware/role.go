package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawrest/pawrest-server/internal/models"
)

// RequireRoles gates a route to the given roles. Admin is a superset role and
// passes every gate. Must run after RequireAuth.
func RequireRoles(allowed ...models.Role) fiber.Handler {
	allowedSet := map[models.Role]bool{}
	for _, r := range allowed {
		allowedSet[r] = true
	}

	return func(c *fiber.Ctx) error {
		user := UserFromCtx(c)
		if user == nil {
			return fiber.ErrUnauthorized
		}
		if user.Role == models.RoleAdmin || allowedSet[user.Role] {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
}
