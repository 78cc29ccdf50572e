// file: internals/route/details/contributor_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	respController "selfassessment_backend/internals/features/assessment/responses/controller"
	submController "selfassessment_backend/internals/features/assessment/submissions/controller"
)

// ContributorRoutes: draft lifecycle, auto-save, submit, resubmit.
func ContributorRoutes(r fiber.Router, db *gorm.DB) {
	subs := submController.NewSubmissionController(db)
	approvals := submController.NewApprovalController(db)
	resps := respController.NewResponseController(db)

	r.Post("/submissions", subs.CreateDraft)
	r.Get("/submissions", subs.List)
	r.Get("/submissions/:id", subs.GetByID)
	r.Patch("/submissions/:id/name", subs.Rename)
	r.Post("/submissions/:id/submit", subs.SubmitForApproval)
	r.Post("/submissions/:id/resubmit-central", approvals.ResubmitToCentral)

	r.Put("/submissions/:id/responses", resps.Save)
	r.Get("/submissions/:id/responses", resps.ListBySubmission)
}
