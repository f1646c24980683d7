package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badmintonRoute "anpl_backend/internals/features/badminton/route"
	cricketRoute "anpl_backend/internals/features/cricket/route"
	eventRoute "anpl_backend/internals/features/events/route"
	"anpl_backend/internals/features/notifications"
	"anpl_backend/internals/features/payments/gateway"
	paymentRoute "anpl_backend/internals/features/payments/route"
	userRoute "anpl_backend/internals/features/users/route"
	"anpl_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the full HTTP surface:
//
//	/api        public (auth, events, badminton catalogue)
//	/api/u      logged-in participants
//	/api/a      admins
func SetupRoutes(app *fiber.App, db *gorm.DB, gw gateway.Gateway, notifier notifications.Notifier) {
	app.Static("/uploads", "./uploads")

	api := app.Group("/api")
	userRoute.AuthRoutes(api, db)
	eventRoute.PublicRoutes(api, db)
	badmintonRoute.PublicRoutes(api, db)

	userGroup := api.Group("/u", auth.AuthMiddleware())
	userRoute.UserRoutes(userGroup, db)
	cricketRoute.UserRoutes(userGroup, db, notifier)
	badmintonRoute.UserRoutes(userGroup, db)
	paymentRoute.UserRoutes(userGroup, db, gw, notifier)

	adminGroup := api.Group("/a", auth.AuthMiddleware(), auth.AdminOnly())
	eventRoute.AdminRoutes(adminGroup, db)
	cricketRoute.AdminRoutes(adminGroup, db, notifier)
}
