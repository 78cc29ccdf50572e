package middleware

import (
	"github.com/gofiber/fiber/v2"

	"selfassessment_backend/internals/constants"
	helperAuth "selfassessment_backend/internals/helpers/auth"
)

// RequireRoles gates a route group on the role claim.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helperAuth.GetRoleFromToken(c)
		if err != nil {
			return err
		}
		if !constants.RoleIn(role, allowed) {
			return fiber.NewError(fiber.StatusForbidden, "Your role does not permit this action")
		}
		return c.Next()
	}
}
