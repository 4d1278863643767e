package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The mounted paths are the public API contract; moving one breaks clients.
func TestSetupRoutesRegistersDocumentedPaths(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:routes_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	SetupRoutes(app, db)

	registered := make(map[string]bool)
	for _, route := range app.GetRoutes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/logout",
		"GET /api/users/me",
		"GET /api/admin/users",
		"GET /api/performance-statistics/performance",
		"POST /api/performance-statistics/save-statistics",
		"POST /api/performance-statistics/sent-otp",
		"POST /api/performance-statistics/verify-otp",
		"GET /api/performance-statistics/summary",
		"GET /api/performance-statistics/labels",
		"POST /api/performance-statistics/labels/filter",
		"POST /api/performance-statistics/report-values",
		"POST /api/reports/generate",
		"POST /api/reports/excel",
		"POST /api/reports/district-excel",
		"PUT /api/admin/modules/:id",
		"PUT /api/admin/districts/:id",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}

	// the reports endpoints must not hide behind the admin prefix
	assert.False(t, registered["POST /api/admin/reports/generate"])
}
