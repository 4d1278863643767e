package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgController "polstat_backend/internals/features/organization/controller"
)

func OrganizationAdminRoutes(api fiber.Router, db *gorm.DB) {
	stateCtrl := orgController.NewStateController(db)
	rangeCtrl := orgController.NewRangeController(db)
	districtCtrl := orgController.NewDistrictController(db)

	states := api.Group("/states")
	states.Get("/", stateCtrl.List)
	states.Post("/", stateCtrl.Create)
	states.Put("/:id", stateCtrl.Update)
	states.Delete("/:id", stateCtrl.Delete)

	ranges := api.Group("/ranges")
	ranges.Get("/", rangeCtrl.List)
	ranges.Post("/", rangeCtrl.Create)
	ranges.Put("/:id", rangeCtrl.Update)
	ranges.Delete("/:id", rangeCtrl.Delete)

	districts := api.Group("/districts")
	districts.Get("/", districtCtrl.List)
	districts.Post("/", districtCtrl.Create)
	districts.Put("/:id", districtCtrl.Update)
	districts.Delete("/:id", districtCtrl.Delete)
}
