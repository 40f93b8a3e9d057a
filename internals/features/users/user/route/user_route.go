package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/users/user/controller"
	"coursehub_backend/internals/middlewares"
)

// AuthPublicRoutes: register/login/refresh tanpa auth.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.RefreshToken)
}

// UserPrivateRoutes: profil sendiri + manajemen user oleh admin.
func UserPrivateRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)
	adminCtrl := controller.NewUserAdminController(db)

	users := api.Group("/users")
	users.Get("/me", authCtrl.GetMe)
	users.Put("/me", authCtrl.UpdateProfile)
	users.Put("/me/password", authCtrl.ChangePassword)

	users.Get("/", adminCtrl.GetUsers)
	users.Patch("/:id/role", adminCtrl.UpdateUserRole)
	users.Patch("/:id/active", adminCtrl.SetUserActive)
}
