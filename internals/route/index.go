package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/constants"
	adsRoute "namur_backend/internals/features/ads/route"
	catalogRoute "namur_backend/internals/features/catalog/route"
	dashboardController "namur_backend/internals/features/dashboard/controller"
	landsRoute "namur_backend/internals/features/lands/route"
	newsRoute "namur_backend/internals/features/news/route"
	notificationsRoute "namur_backend/internals/features/notifications/route"
	notificationService "namur_backend/internals/features/notifications/service"
	usersRoute "namur_backend/internals/features/users/route"
	"namur_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the API in three rings: public, authenticated,
// and staff-only.
func SetupRoutes(app *fiber.App, db *gorm.DB, push *notificationService.PushService) {
	api := app.Group("/api")

	// public
	usersRoute.AuthRoutes(api, db)
	adsRoute.AdPublicRoutes(api, db)
	catalogRoute.CatalogPublicRoutes(api, db)
	newsRoute.NewsPublicRoutes(api, db)
	landsRoute.CropCalendarPublicRoutes(api, db)

	// any authenticated actor
	authed := api.Group("", auth.AuthMiddleware())
	usersRoute.UserRoutes(authed, db)
	adsRoute.AdProtectedRoutes(authed, db)
	catalogRoute.CatalogProtectedRoutes(authed, db)
	landsRoute.LandRoutes(authed, db)
	notificationsRoute.NotificationUserRoutes(authed, db, push)

	// staff only
	staff := api.Group("/admin",
		auth.AuthMiddleware(),
		auth.RequireRoles("admin panel", constants.StaffRoles...),
	)
	usersRoute.UserAdminRoutes(staff, db)
	catalogRoute.CatalogAdminRoutes(staff, db)
	newsRoute.NewsAdminRoutes(staff, db)
	adsRoute.AdLogRoutes(staff, db)
	landsRoute.CropCalendarAdminRoutes(staff, db)
	notificationsRoute.NotificationAdminRoutes(staff, db, push)

	dash := dashboardController.NewDashboardController(db)
	staff.Get("/dashboard", dash.GetStats)
}
