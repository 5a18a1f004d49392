package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cropCalendarController "namur_backend/internals/features/lands/cropcalendar/controller"
	cropPlanController "namur_backend/internals/features/lands/cropplan/controller"
	landController "namur_backend/internals/features/lands/land/controller"
	landMapController "namur_backend/internals/features/lands/landmap/controller"
	landProductController "namur_backend/internals/features/lands/landproduct/controller"
)

// LandRoutes cover the farmer-facing land, land-product and crop-plan
// endpoints.
func LandRoutes(api fiber.Router, db *gorm.DB) {
	land := landController.NewLandController(db)
	lands := api.Group("/lands")
	lands.Post("/", land.CreateLand)
	lands.Get("/user/:userId", land.GetLandsByUser)
	lands.Get("/:id", land.GetLandByID)
	lands.Put("/:id", land.UpdateLand)
	lands.Delete("/:id", land.DeleteLand)

	lp := landProductController.NewLandProductController(db)
	landProducts := api.Group("/land-products")
	landProducts.Post("/", lp.CreateLandProduct)
	landProducts.Get("/land/:landId", lp.GetLandProductsByLand)
	landProducts.Get("/user/:userId", lp.GetLandProductsByUser)
	landProducts.Put("/:id", lp.UpdateLandProduct)
	landProducts.Delete("/:id", lp.DeleteLandProduct)

	cp := cropPlanController.NewCropPlanController(db)
	cropPlans := api.Group("/crop-plans")
	cropPlans.Post("/", cp.CreateCropPlan)
	cropPlans.Get("/land/:landId", cp.GetCropPlansByLand)
	cropPlans.Get("/user/:userId", cp.GetCropPlansByUser)
	cropPlans.Put("/:id", cp.UpdateCropPlan)
	cropPlans.Delete("/:id", cp.DeleteCropPlan)
}

// CropCalendarPublicRoutes serve read-only calendar data to the app.
func CropCalendarPublicRoutes(api fiber.Router, db *gorm.DB) {
	cc := cropCalendarController.NewCropCalendarController(db)
	calendars := api.Group("/crop-calendars")
	calendars.Get("/", cc.GetCropCalendars)
	calendars.Get("/product/:productId", cc.GetCropCalendarByProduct)

	lm := landMapController.NewLandMapController(db)
	maps := api.Group("/land-maps")
	maps.Get("/", lm.SearchLandMaps)
	maps.Get("/:id", lm.GetLandMapByID)
}

// CropCalendarAdminRoutes let the panel maintain calendar content and
// import survey polygons.
func CropCalendarAdminRoutes(api fiber.Router, db *gorm.DB) {
	cc := cropCalendarController.NewCropCalendarController(db)
	calendars := api.Group("/crop-calendars")
	calendars.Post("/", cc.CreateCropCalendar)
	calendars.Put("/:id", cc.UpdateCropCalendar)
	calendars.Delete("/:id", cc.DeleteCropCalendar)

	lm := landMapController.NewLandMapController(db)
	maps := api.Group("/land-maps")
	maps.Post("/import", lm.ImportLandMaps)
}
