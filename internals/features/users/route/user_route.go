package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "anpl_backend/internals/features/users/controller"
	"anpl_backend/internals/features/users/service"
)

// AuthRoutes exposes account creation and login (no auth required).
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(service.NewUserService(db))
	auth := api.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", ctrl.Login)
}

// UserRoutes exposes the logged-in participant's own profile.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(service.NewUserService(db))
	users := api.Group("/users")
	users.Get("/me", ctrl.GetProfile)
	users.Patch("/me", ctrl.UpdateProfile)
	users.Post("/me/photos/:kind", ctrl.UploadPhoto)
}
