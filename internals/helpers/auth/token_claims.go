// file: internals/helpers/auth/token_claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by middlewares/auth.AuthJWT.
const (
	LocUserID = "user_id"
	LocRole   = "role"
	LocUnitID = "unit_id"
)

// GetUserIDFromToken reads the authenticated user id from Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id missing from token")
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id in token is not a valid UUID")
	}
	return id, nil
}

// GetRoleFromToken reads the workflow role claim.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	raw, ok := c.Locals(LocRole).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "role missing from token")
	}
	return strings.TrimSpace(raw), nil
}

// GetUnitIDFromToken reads the administrative-unit scope claim. Central
// committee tokens may legitimately carry none; callers decide whether that
// is an error.
func GetUnitIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUnitID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "unit_id in token is not a valid UUID")
	}
	return id, nil
}
