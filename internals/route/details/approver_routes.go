// file: internals/route/details/approver_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	respController "selfassessment_backend/internals/features/assessment/responses/controller"
	submController "selfassessment_backend/internals/features/assessment/submissions/controller"
)

// ApproverRoutes: the regional/federal first-stage review surface. Unit scope
// is enforced inside the controllers against the caller's unit claim.
func ApproverRoutes(r fiber.Router, db *gorm.DB) {
	subs := submController.NewSubmissionController(db)
	approvals := submController.NewApprovalController(db)
	resps := respController.NewResponseController(db)

	r.Get("/submissions", subs.List)
	r.Get("/submissions/:id", subs.GetByID)
	r.Get("/submissions/:id/responses", resps.ListBySubmission)

	r.Post("/responses/:id/approve", approvals.ApproveResponse)
	r.Post("/responses/:id/reject", approvals.RejectResponse)
	r.Post("/submissions/:id/approve-remaining", approvals.ApproveRemaining)
	r.Post("/submissions/:id/decision", approvals.SubmitRegionalApproval)
	r.Post("/submissions/:id/reject-to-contributor", approvals.RejectToContributor)
}
