package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/configs"
	perfController "polstat_backend/internals/features/performance/controller"
	perfService "polstat_backend/internals/features/performance/service"
	reportsController "polstat_backend/internals/features/reports/controller"
	middlewares "polstat_backend/internals/middlewares"
)

// PerformanceStatisticRoutes mounts the entry-form, ledger and finalize
// endpoints plus the dashboard reads under /performance-statistics.
func PerformanceStatisticRoutes(api fiber.Router, db *gorm.DB) {
	form := perfService.NewFormService(db, nil, nil)
	ledger := perfService.NewLedgerService(db, nil)
	otp := perfService.NewOtpService(db, nil, configs.OTPBypass)

	ctrl := perfController.NewPerformanceController(db, form, ledger, otp, nil)
	reportsCtrl := reportsController.NewReportsController(db)

	group := api.Group("/performance-statistics")
	group.Get("/performance", ctrl.GetPerformanceForm)
	group.Post("/save-statistics", ctrl.SaveStatistics)
	group.Post("/sent-otp", middlewares.OtpRateLimiter(), ctrl.SentOtp)
	group.Post("/verify-otp", middlewares.OtpRateLimiter(), ctrl.VerifyOtp)
	group.Get("/summary", ctrl.Summary)
	group.Get("/labels", ctrl.Labels)
	group.Post("/labels/filter", reportsCtrl.FilterLabels)
	group.Post("/report-values", reportsCtrl.ReportValues)
}
