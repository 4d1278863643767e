package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "polstat_backend/internals/features/users/controller"
	middlewares "polstat_backend/internals/middlewares"
	authMiddleware "polstat_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public login/register endpoints and the
// authenticated logout.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
