// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fwController "selfassessment_backend/internals/features/framework/controller"
)

// PublicRoutes: the read-only assessment framework the form UI renders from.
// No auth — the framework itself is not sensitive.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	fw := fwController.NewFrameworkController(db)

	framework := r.Group("/framework")
	framework.Get("/dimensions", fw.ListDimensions)
	framework.Get("/dimensions/:id/indicators", fw.ListIndicators)
	framework.Get("/indicators/:id/sub-questions", fw.ListSubQuestions)
	framework.Get("/applicable", fw.ListApplicable)
}
