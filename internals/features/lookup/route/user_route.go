package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupController "polstat_backend/internals/features/lookup/controller"
)

// LookupUserRoutes exposes the catalog read-only to reporting units (GET
// only), e.g. for the navigation sidebar.
func LookupUserRoutes(api fiber.Router, db *gorm.DB) {
	moduleCtrl := lookupController.NewModuleController(db)
	topicCtrl := lookupController.NewTopicController(db)

	api.Get("/modules", moduleCtrl.List)
	api.Get("/modules/:id", moduleCtrl.GetByID)
	api.Get("/topics", topicCtrl.List)
	api.Get("/topics/:id", topicCtrl.GetByID)
}
