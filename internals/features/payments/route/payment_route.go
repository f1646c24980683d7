package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"anpl_backend/internals/features/notifications"
	paymentController "anpl_backend/internals/features/payments/controller"
	"anpl_backend/internals/features/payments/gateway"
	"anpl_backend/internals/features/payments/service"
)

// UserRoutes exposes order creation, callback verification and polling.
func UserRoutes(api fiber.Router, db *gorm.DB, gw gateway.Gateway, notifier notifications.Notifier) {
	svc := service.NewPaymentService(service.NewGormPaymentStore(db), gw, notifier)
	ctrl := paymentController.NewPaymentController(svc)

	payments := api.Group("/payments")
	payments.Post("/orders", ctrl.InitiateOrder)
	payments.Post("/verify", ctrl.Verify)
	payments.Get("/orders/:order_id", ctrl.Poll)
	payments.Get("/registrations/:registration_id", ctrl.PollRegistration)
	payments.Get("/bundles/:bundle_id", ctrl.PollBundle)
}
