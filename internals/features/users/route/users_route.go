package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"namur_backend/internals/middlewares"

	adminController "namur_backend/internals/features/users/admin/controller"
	authController "namur_backend/internals/features/users/auth/controller"
	subadminController "namur_backend/internals/features/users/subadmin/controller"
	userController "namur_backend/internals/features/users/user/controller"
)

// AuthRoutes are the unauthenticated login endpoints, behind the
// tighter login rate limit.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	user := userController.NewUserController(db)
	staff := authController.NewAuthController(db)

	auth := api.Group("/auth", middlewares.LoginRateLimiter())
	auth.Post("/google", user.GoogleLogin)
	auth.Post("/login", staff.StaffLogin)
}

// UserRoutes are the authenticated app endpoints for the user's own
// profile.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	user := userController.NewUserController(db)

	users := api.Group("/users")
	users.Put("/:id/details", user.SaveBasicDetails)
	users.Put("/:id/location", user.SaveLocation)
	users.Put("/:id/profile-image", user.UploadProfileImage)
	users.Get("/:id", user.GetUserByID)
}

// UserAdminRoutes manage the user base from the panel.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	user := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", user.GetUsers)
	users.Put("/:id/verify", user.VerifyUser)
	users.Put("/:id/block", user.BlockUser)
	users.Put("/:id/unblock", user.UnblockUser)
	users.Delete("/:id", user.DeleteUser)

	admin := adminController.NewAdminController(db)
	admins := api.Group("/admins")
	admins.Post("/", admin.RegisterAdmin)
	admins.Get("/", admin.GetAdmins)
	admins.Get("/:id", admin.GetAdminByID)

	sub := subadminController.NewSubadminController(db)
	subadmins := api.Group("/subadmins")
	subadmins.Post("/", sub.CreateSubadmin)
	subadmins.Get("/", sub.GetSubadmins)
	subadmins.Get("/:id", sub.GetSubadminByID)
	subadmins.Put("/:id", sub.UpdateSubadmin)
	subadmins.Delete("/:id", sub.DeleteSubadmin)
}
