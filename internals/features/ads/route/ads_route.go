package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adController "namur_backend/internals/features/ads/ad/controller"
	logController "namur_backend/internals/features/ads/log/controller"
)

// AdPublicRoutes are readable without a token (app listing screens).
func AdPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adController.NewAdController(db)

	ads := api.Group("/ads")
	ads.Get("/", ctrl.GetAds)
	ads.Get("/filter", ctrl.FilterAds)
	ads.Get("/recent", ctrl.GetRecentAdsByDistrict)
	ads.Get("/filtered", ctrl.GetFilteredAds)
	ads.Get("/:id", ctrl.GetAdByID)
}

// AdProtectedRoutes mutate ads and require an authenticated actor.
func AdProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adController.NewAdController(db)

	ads := api.Group("/ads")
	ads.Post("/", ctrl.CreateAd)
	ads.Put("/:id", ctrl.UpdateAd)
	ads.Delete("/:id", ctrl.DeleteAd)
}

// AdLogRoutes expose the audit trail to the admin panel.
func AdLogRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := logController.NewAdLogController(db)

	logs := api.Group("/ad-logs")
	logs.Get("/", ctrl.GetLogs)
	logs.Get("/ad/:adId", ctrl.GetLogsByAd)
}
