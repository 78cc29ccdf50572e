// file: internals/features/assessment/scoring/controller/chairman_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "selfassessment_backend/internals/features/assessment/scoring/service"
	submDTO "selfassessment_backend/internals/features/assessment/submissions/dto"
	helper "selfassessment_backend/internals/helpers"
	helperAuth "selfassessment_backend/internals/helpers/auth"
)

// ChairmanController is the sign-off surface: pull a validated submission
// under review, then finalize once the members have submitted their scoring.
type ChairmanController struct {
	DB      *gorm.DB
	Service *service.ScoringService
}

func NewChairmanController(db *gorm.DB) *ChairmanController {
	return &ChairmanController{
		DB:      db,
		Service: service.NewScoringService(db),
	}
}

// POST /api/ch/submissions/:id/begin-review
func (ctrl *ChairmanController) BeginReview(c *fiber.Ctx) error {
	chairmanID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	sub, err := ctrl.Service.BeginChairmanReview(c.Context(), submissionID, chairmanID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "submission under chairman review", submDTO.FromModel(sub))
}

// POST /api/ch/submissions/:id/finalize
func (ctrl *ChairmanController) Finalize(c *fiber.Ctx) error {
	chairmanID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	sub, err := ctrl.Service.FinalizeScoring(c.Context(), submissionID, chairmanID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "scoring finalized", submDTO.FromModel(sub))
}
