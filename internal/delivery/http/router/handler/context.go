package handler

import (
	"gestao/internal/delivery/http/middleware"
	"gestao/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorProfileID reads the acting professional's profile ID set by the
// session middleware. Routes behind RequireRoles always have it.
func actorProfileID(c echo.Context) uuid.UUID {
	id, _ := c.Get(middleware.ContextKeyProfileID).(uuid.UUID)

	return id
}

// actorRole reads the acting professional's role set by the session middleware.
func actorRole(c echo.Context) entity.Role {
	role, _ := c.Get(middleware.ContextKeyRole).(entity.Role)

	return role
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// queryUUID parses an optional UUID query parameter; nil when absent.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
