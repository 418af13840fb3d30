package router

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"gestao/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func registeredPaths(t *testing.T) map[string]bool {
	t.Helper()

	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	params := RouterParams{
		SessionMiddleware: middleware.NewSessionMiddleware(nil, nil, logger),
		MetricsHandler:    http.NotFoundHandler(),
	}
	NewRouter(params).RegisterRoutes(e)

	paths := make(map[string]bool)
	for _, route := range e.Routes() {
		paths[route.Path] = true
	}

	return paths
}

func TestRegisterRoutesMountsDepartmentsUnderAPI(t *testing.T) {
	paths := registeredPaths(t)

	assert.True(t, paths["/api/athletes"])
	assert.True(t, paths["/api/psychology/interventions"])
	assert.True(t, paths["/api/social/anamneses"])
	assert.True(t, paths["/api/pedagogy/schools"])
	assert.True(t, paths["/api/reports/summary"])
	assert.True(t, paths["/api/admin/users"])
}

func TestRegisterRoutesKeepsSessionLifecycleAtRoot(t *testing.T) {
	paths := registeredPaths(t)

	assert.True(t, paths["/auth/signin"])
	assert.True(t, paths["/auth/session"])
	assert.True(t, paths["/health"])
	assert.True(t, paths["/metrics"])
}
