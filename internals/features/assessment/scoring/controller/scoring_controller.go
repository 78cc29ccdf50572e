// file: internals/features/assessment/scoring/controller/scoring_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	respDTO "selfassessment_backend/internals/features/assessment/responses/dto"
	dto "selfassessment_backend/internals/features/assessment/scoring/dto"
	service "selfassessment_backend/internals/features/assessment/scoring/service"
	helper "selfassessment_backend/internals/helpers"
	helperAuth "selfassessment_backend/internals/helpers/auth"
)

// ScoringController is the committee-member surface: independent 0 / 0.5 / 1
// scoring of subjective responses and the per-member "submit to chairman"
// completion record.
type ScoringController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.ScoringService
}

func NewScoringController(db *gorm.DB) *ScoringController {
	return &ScoringController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewScoringService(db),
	}
}

// GET /api/cc/submissions/:id/subjective-responses
func (ctrl *ScoringController) ListSubjectiveResponses(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}
	rows, err := ctrl.Service.ListSubjectiveResponses(c.Context(), submissionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "subjective responses fetched", respDTO.FromModels(rows), nil)
}

// PUT /api/cc/responses/:id/score
func (ctrl *ScoringController) AssignScore(c *fiber.Ctx) error {
	memberID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	responseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid response id")
	}

	var req dto.AssignScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	saved, err := ctrl.Service.AssignSubjectiveScore(c.Context(), responseID, memberID, *req.ScoreValue)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "score recorded", dto.FromScoreModel(saved))
}

// GET /api/cc/responses/:id/scores
// Every member's score plus the live consensus mean.
func (ctrl *ScoringController) ListScores(c *fiber.Ctx) error {
	responseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid response id")
	}
	scores, err := ctrl.Service.ListScoresByResponse(c.Context(), responseID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	final, err := ctrl.Service.FinalScore(c.Context(), responseID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "scores fetched", fiber.Map{
		"scores":      dto.FromScoreModels(scores),
		"final_score": final,
	})
}

// GET /api/cc/responses/:id/final-score
func (ctrl *ScoringController) GetFinalScore(c *fiber.Ctx) error {
	responseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid response id")
	}
	final, err := ctrl.Service.FinalScore(c.Context(), responseID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonOK(c, "final score computed", fiber.Map{
		"response_id": responseID,
		"final_score": final,
	})
}

// POST /api/cc/submissions/:id/submit-scoring
func (ctrl *ScoringController) SubmitMyScoring(c *fiber.Ctx) error {
	memberID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	rec, err := ctrl.Service.SubmitMyScoringToChairman(c.Context(), submissionID, memberID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "scoring submitted to the chairman", dto.ScoringSubmissionDTO{
		RecordID:           rec.RecordID,
		RecordSubmissionID: rec.RecordSubmissionID,
		RecordMemberUserID: rec.RecordMemberUserID,
		RecordSubmittedAt:  rec.RecordSubmittedAt,
	})
}

// GET /api/cc/submissions/:id/scoring-submissions
func (ctrl *ScoringController) ListScoringSubmissions(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}
	rows, err := ctrl.Service.ListScoringSubmissions(c.Context(), submissionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "scoring submissions fetched", dto.FromRecordModels(rows), nil)
}
