package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badmintonController "anpl_backend/internals/features/badminton/controller"
	"anpl_backend/internals/features/badminton/service"
)

// PublicRoutes exposes the category catalogue and the family pairing options.
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	badminton := api.Group("/badminton")
	badminton.Get("/categories", ctrl.ListCategories)
	badminton.Get("/relations", ctrl.ListRelationOptions)
}

// UserRoutes exposes bundle creation and lookup for logged-in participants.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	badminton := api.Group("/badminton")
	badminton.Post("/bundles", ctrl.CreateBundle)
	badminton.Get("/bundles/:id", ctrl.GetBundle)
}

func newController(db *gorm.DB) *badmintonController.BundleController {
	svc := service.NewBundleService(service.NewGormBundleStore(db))
	return badmintonController.NewBundleController(db, svc)
}
