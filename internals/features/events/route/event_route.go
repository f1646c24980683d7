package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "anpl_backend/internals/features/events/controller"
)

// PublicRoutes exposes the event catalogue.
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)
	events := api.Group("/events")
	events.Get("/", ctrl.ListEvents)
	events.Get("/:id", ctrl.GetEvent)
}

// AdminRoutes exposes event management.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)
	events := api.Group("/events")
	events.Post("/", ctrl.CreateEvent)
	events.Patch("/:id", ctrl.UpdateEvent)
}
