// file: internals/route/details/chairman_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoringController "selfassessment_backend/internals/features/assessment/scoring/controller"
)

// ChairmanRoutes: pull a validated submission under review, then sign off.
func ChairmanRoutes(r fiber.Router, db *gorm.DB) {
	chairman := scoringController.NewChairmanController(db)

	r.Post("/submissions/:id/begin-review", chairman.BeginReview)
	r.Post("/submissions/:id/finalize", chairman.Finalize)
}
