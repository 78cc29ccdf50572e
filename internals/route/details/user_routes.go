// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifController "selfassessment_backend/internals/features/notifications/controller"
)

// UserRoutes: per-user surfaces shared by every role.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	notifs := notifController.NewNotificationController(db)

	r.Get("/notifications", notifs.List)
	r.Put("/notifications/:id/read", notifs.MarkRead)
}
