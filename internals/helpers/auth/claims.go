package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aulataller_backend/internals/constants"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID         = "user_id"
	LocRole           = "role"
	LocOrganizationID = "organization_id"
	LocProfessorID    = "professor_id"
	LocUserName       = "user_name"
)

func localString(c *fiber.Ctx, key string) string {
	if v := c.Locals(key); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// GetUserIDFromToken returns the caller's user id or an unauthorized error.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := localString(c, LocUserID)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user id missing from token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "invalid user id in token")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	return strings.ToLower(localString(c, LocRole))
}

// GetOrganizationIDFromToken returns the caller's organization scope, if any.
func GetOrganizationIDFromToken(c *fiber.Ctx) *uuid.UUID {
	raw := localString(c, LocOrganizationID)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// GetProfessorIDFromToken returns the legacy professor-profile id, if the
// token carries one.
func GetProfessorIDFromToken(c *fiber.Ctx) *uuid.UUID {
	raw := localString(c, LocProfessorID)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func IsAdmin(c *fiber.Ctx) bool       { return GetRole(c) == constants.RoleAdmin }
func IsCoordinator(c *fiber.Ctx) bool { return GetRole(c) == constants.RoleCoordinator }
func IsTeacher(c *fiber.Ctx) bool     { return GetRole(c) == constants.RoleTeacher }

func IsStaff(c *fiber.Ctx) bool {
	r := GetRole(c)
	return r == constants.RoleAdmin || r == constants.RoleCoordinator
}
