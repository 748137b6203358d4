package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const RoleAdmin = "ADMIN"

// CanModify is the single ownership policy used before every mutation:
// administrators may touch anything, everyone else only resources they
// own. A nil owner (creator was deleted) is admin-only territory.
func CanModify(actorID uint, actorRole string, ownerID *uint) bool {
	if actorRole == RoleAdmin {
		return true
	}
	return ownerID != nil && *ownerID == actorID
}

// AdminOnly guards endpoints reserved for administrators.
func AdminOnly(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok || role != RoleAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "Administrator access required!", nil)
	}
	return c.Next()
}
