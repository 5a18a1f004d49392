package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsController "namur_backend/internals/features/news/news/controller"
)

// NewsPublicRoutes feed the app's news screen.
func NewsPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := newsController.NewNewsController(db)
	api.Get("/news", ctrl.GetNews)
}

// NewsAdminRoutes maintain news content from the panel.
func NewsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := newsController.NewNewsController(db)
	api.Post("/news", ctrl.CreateNews)
	api.Put("/news/:id", ctrl.UpdateNews)
	api.Delete("/news/:id", ctrl.DeleteNews)
	api.Get("/news-logs", ctrl.GetNewsLogs)
}
