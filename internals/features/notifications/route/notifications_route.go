package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "namur_backend/internals/features/notifications/controller"
	"namur_backend/internals/features/notifications/service"
)

// NotificationUserRoutes let the app register its device token.
func NotificationUserRoutes(api fiber.Router, db *gorm.DB, push *service.PushService) {
	ctrl := notificationController.NewNotificationController(db, push)
	api.Post("/notifications/token", ctrl.SaveToken)
}

// NotificationAdminRoutes send pushes and read the history.
func NotificationAdminRoutes(api fiber.Router, db *gorm.DB, push *service.PushService) {
	ctrl := notificationController.NewNotificationController(db, push)
	api.Post("/notifications/send-all", ctrl.SendToAll)
	api.Post("/notifications/send-targeted", ctrl.SendTargeted)
	api.Get("/notifications/logs", ctrl.GetLogs)
}
