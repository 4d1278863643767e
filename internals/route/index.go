package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/constants"
	lookupRoute "polstat_backend/internals/features/lookup/route"
	orgRoute "polstat_backend/internals/features/organization/route"
	perfRoute "polstat_backend/internals/features/performance/route"
	reportsRoute "polstat_backend/internals/features/reports/route"
	usersRoute "polstat_backend/internals/features/users/route"
	authMiddleware "polstat_backend/internals/middlewares/auth"
)

// SetupRoutes mounts everything under /api. Two privilege tiers: every
// authenticated user can read the catalog and work their own statistics;
// catalog/geography maintenance and the cross-unit reports need ADMIN.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	usersRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(constants.AdminOnly...),
	)

	log.Println("[INFO] Mounting user routes...")
	usersRoute.UserRoutes(private, db)
	usersRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting lookup routes...")
	lookupRoute.LookupUserRoutes(private, db)
	lookupRoute.LookupAdminRoutes(admin, db)

	log.Println("[INFO] Mounting organization routes...")
	orgRoute.OrganizationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting performance routes...")
	perfRoute.PerformanceStatisticRoutes(private, db)

	// reports live at /api/reports but stay admin-only
	log.Println("[INFO] Mounting report routes...")
	reports := app.Group("/api",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRoles(constants.AdminOnly...),
	)
	reportsRoute.ReportRoutes(reports, db)
}
