package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/hierarchy"
)

// Locals keys set by the auth middleware.
const (
	LocUserID      = "user_id"
	LocUserEmail   = "user_email"
	LocUserRole    = "user_role"
	LocDioceseID   = "diocese_id"
	LocParishID    = "parish_id"
	LocCommunityID = "community_id"
)

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fmt.Errorf("missing user id in token")
	}
	return uuid.Parse(raw)
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

// CurrentPrincipal rebuilds the hierarchy principal from the claims the
// auth middleware stashed in Locals.
func CurrentPrincipal(c *fiber.Ctx) (hierarchy.Principal, error) {
	id, err := GetUserID(c)
	if err != nil {
		return hierarchy.Principal{}, err
	}
	p := hierarchy.Principal{
		ID:   id,
		Role: GetUserRole(c),
	}
	p.DioceseID = localUUID(c, LocDioceseID)
	p.ParishID = localUUID(c, LocParishID)
	p.CommunityID = localUUID(c, LocCommunityID)
	return p, nil
}

func localUUID(c *fiber.Ctx, key string) *uuid.UUID {
	raw, ok := c.Locals(key).(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
