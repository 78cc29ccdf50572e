// file: internals/route/details/committee_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	respController "selfassessment_backend/internals/features/assessment/responses/controller"
	scoringController "selfassessment_backend/internals/features/assessment/scoring/controller"
	submController "selfassessment_backend/internals/features/assessment/submissions/controller"
	middleware "selfassessment_backend/internals/middlewares/auth"

	"selfassessment_backend/internals/constants"
)

// CommitteeRoutes: central validation plus subjective scoring. The secretary
// shares the reads; writes are gated tighter per route.
func CommitteeRoutes(r fiber.Router, db *gorm.DB) {
	subs := submController.NewSubmissionController(db)
	approvals := submController.NewApprovalController(db)
	resps := respController.NewResponseController(db)
	scoring := scoringController.NewScoringController(db)

	r.Get("/submissions", subs.List)
	r.Get("/submissions/:id", subs.GetByID)
	r.Get("/submissions/:id/responses", resps.ListBySubmission)
	r.Get("/submissions/:id/subjective-responses", scoring.ListSubjectiveResponses)
	r.Get("/submissions/:id/scoring-submissions", scoring.ListScoringSubmissions)
	r.Get("/responses/:id/scores", scoring.ListScores)
	r.Get("/responses/:id/final-score", scoring.GetFinalScore)

	scorers := middleware.RequireRoles(constants.ScoringRoles...)
	r.Post("/responses/:id/validate", scorers, approvals.ValidateResponse)
	r.Post("/submissions/:id/decision", scorers, approvals.SubmitCentralValidation)
	r.Put("/responses/:id/score", scorers, scoring.AssignScore)
	r.Post("/submissions/:id/submit-scoring", scorers, scoring.SubmitMyScoring)
}
