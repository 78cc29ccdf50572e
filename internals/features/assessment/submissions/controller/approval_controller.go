// file: internals/features/assessment/submissions/controller/approval_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	respDTO "selfassessment_backend/internals/features/assessment/responses/dto"
	respModel "selfassessment_backend/internals/features/assessment/responses/model"
	respService "selfassessment_backend/internals/features/assessment/responses/service"
	dto "selfassessment_backend/internals/features/assessment/submissions/dto"
	service "selfassessment_backend/internals/features/assessment/submissions/service"
	unitService "selfassessment_backend/internals/features/units/service"
	helper "selfassessment_backend/internals/helpers"
	helperAuth "selfassessment_backend/internals/helpers/auth"
)

// ApprovalController exposes both review stages: the regional/federal pass
// under /api/r and the central committee validation pass under /api/cc.
type ApprovalController struct {
	DB          *gorm.DB
	Validator   *validator.Validate
	Service     *service.ApprovalService
	Submissions *service.SubmissionService
	Responses   *respService.ResponseService
	Units       *unitService.UnitService
}

func NewApprovalController(db *gorm.DB) *ApprovalController {
	return &ApprovalController{
		DB:          db,
		Validator:   validator.New(),
		Service:     service.NewApprovalService(db),
		Submissions: service.NewSubmissionService(db),
		Responses:   respService.NewResponseService(db),
		Units:       unitService.NewUnitService(db),
	}
}

// ensureSubmissionScope loads the submission and checks it against the
// caller's role scope. Central committee roles always pass.
func (ctrl *ApprovalController) ensureSubmissionScope(c *fiber.Ctx, submissionID uuid.UUID) (unitService.Actor, error) {
	actor, err := actorFromToken(c)
	if err != nil {
		return actor, err
	}
	sub, err := ctrl.Submissions.GetSubmissionByID(c.Context(), submissionID)
	if err != nil {
		return actor, err
	}
	units, err := ctrl.Units.UnitIndex(c.Context())
	if err != nil {
		return actor, err
	}
	if !unitService.CanAccessSubmission(*sub, actor, units) {
		return actor, helper.NewNotFound("submission")
	}
	return actor, nil
}

// ensureResponseScope resolves the response's submission and applies the
// same scope check.
func (ctrl *ApprovalController) ensureResponseScope(c *fiber.Ctx, responseID uuid.UUID) (unitService.Actor, error) {
	resp, err := ctrl.Responses.GetByID(c.Context(), responseID)
	if err != nil {
		return unitService.Actor{}, err
	}
	return ctrl.ensureSubmissionScope(c, resp.ResponseSubmissionID)
}

/* =========================
   Regional / federal stage
========================= */

// POST /api/r/responses/:id/approve
func (ctrl *ApprovalController) ApproveResponse(c *fiber.Ctx) error {
	responseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid response id")
	}
	actor, err := ctrl.ensureResponseScope(c, responseID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	var req dto.ApproveResponseRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := ctrl.Validator.Struct(req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	resp, err := ctrl.Service.ApproveResponseByRegionalApprover(c.Context(), responseID, actor.UserID, req.Note)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "response approved", respDTO.FromModel(resp))
}

// POST /api/r/responses/:id/reject
func (ctrl *ApprovalController) RejectResponse(c *fiber.Ctx) error {
	responseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid response id")
	}
	actor, err := ctrl.ensureResponseScope(c, responseID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	var req dto.RejectResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := ctrl.Service.RejectResponseByRegionalApprover(c.Context(), responseID, actor.UserID, req.Reason)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "response rejected", respDTO.FromModel(resp))
}

// POST /api/r/submissions/:id/approve-remaining
func (ctrl *ApprovalController) ApproveRemaining(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}
	actor, err := ctrl.ensureSubmissionScope(c, submissionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	affected, err := ctrl.Service.ApproveRemainingResponses(c.Context(), submissionID, actor.UserID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "remaining responses approved", fiber.Map{"approved_count": affected})
}

// POST /api/r/submissions/:id/decision
func (ctrl *ApprovalController) SubmitRegionalApproval(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}
	actor, err := ctrl.ensureSubmissionScope(c, submissionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	sub, err := ctrl.Service.SubmitRegionalApproval(c.Context(), submissionID, actor.UserID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "regional decision applied", dto.FromModel(sub))
}

// POST /api/r/submissions/:id/reject-to-contributor
func (ctrl *ApprovalController) RejectToContributor(c *fiber.Ctx) error {
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}
	actor, err := ctrl.ensureSubmissionScope(c, submissionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	var req dto.RejectToContributorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sub, err := ctrl.Service.RejectToContributor(c.Context(), submissionID, actor.UserID, req.AdditionalComment)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "submission returned to contributor", dto.FromModel(sub))
}

/* =========================
   Central validation stage
========================= */

// POST /api/cc/responses/:id/validate
func (ctrl *ApprovalController) ValidateResponse(c *fiber.Ctx) error {
	responseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid response id")
	}

	var req dto.ValidateResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	resp, err := ctrl.Service.ValidateResponse(c.Context(), responseID,
		respModel.StageStatus(req.Status), req.RejectionReason, req.GeneralNote)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "response validated", respDTO.FromModel(resp))
}

// POST /api/cc/submissions/:id/decision
func (ctrl *ApprovalController) SubmitCentralValidation(c *fiber.Ctx) error {
	validatorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	sub, err := ctrl.Service.SubmitCentralValidation(c.Context(), submissionID, validatorID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "central validation applied", dto.FromModel(sub))
}

// POST /api/c/submissions/:id/resubmit-central
func (ctrl *ApprovalController) ResubmitToCentral(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	sub, err := ctrl.Service.ResubmitToCentralCommittee(c.Context(), submissionID, userID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "submission resubmitted to the central committee", dto.FromModel(sub))
}
