package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportsController "polstat_backend/internals/features/reports/controller"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reportsController.NewReportsController(db)

	group := api.Group("/reports")
	group.Post("/generate", ctrl.Generate)
	group.Post("/excel", ctrl.ExportCSV)
	group.Post("/district-excel", ctrl.DistrictExportCSV)
}
