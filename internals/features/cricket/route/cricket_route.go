package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cricketController "anpl_backend/internals/features/cricket/controller"
	"anpl_backend/internals/features/cricket/service"
	"anpl_backend/internals/features/notifications"
)

// UserRoutes exposes cricket registration for logged-in participants.
func UserRoutes(api fiber.Router, db *gorm.DB, notifier notifications.Notifier) {
	ctrl := newController(db, notifier)
	cricket := api.Group("/cricket")
	cricket.Post("/registrations", ctrl.Register)
	cricket.Get("/registrations/:id", ctrl.GetRegistration)
}

// AdminRoutes exposes status overrides and per-event listings.
func AdminRoutes(api fiber.Router, db *gorm.DB, notifier notifications.Notifier) {
	ctrl := newController(db, notifier)
	cricket := api.Group("/cricket")
	cricket.Patch("/registrations/:id/status", ctrl.UpdateStatus)
	cricket.Get("/events/:event_id/registrations", ctrl.ListByEvent)
}

func newController(db *gorm.DB, notifier notifications.Notifier) *cricketController.RegistrationController {
	svc := service.NewRegistrationService(service.NewGormRegistrationStore(db), notifier)
	return cricketController.NewRegistrationController(db, svc)
}
