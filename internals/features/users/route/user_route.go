package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "polstat_backend/internals/features/users/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	api.Get("/users/me", ctrl.Me)
}

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	api.Get("/users", ctrl.List)
}
