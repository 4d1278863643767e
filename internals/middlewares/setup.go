package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the app-wide middleware stack. Route-group specific
// guards (auth, role checks, per-route limiters) are mounted by the routes.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
