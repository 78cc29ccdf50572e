// file: internals/features/assessment/responses/controller/response_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "selfassessment_backend/internals/features/assessment/responses/dto"
	service "selfassessment_backend/internals/features/assessment/responses/service"
	submService "selfassessment_backend/internals/features/assessment/submissions/service"
	unitService "selfassessment_backend/internals/features/units/service"
	helper "selfassessment_backend/internals/helpers"
	helperAuth "selfassessment_backend/internals/helpers/auth"
)

type ResponseController struct {
	DB          *gorm.DB
	Validator   *validator.Validate
	Service     *service.ResponseService
	Submissions *submService.SubmissionService
	Units       *unitService.UnitService
}

func NewResponseController(db *gorm.DB) *ResponseController {
	return &ResponseController{
		DB:          db,
		Validator:   validator.New(),
		Service:     service.NewResponseService(db),
		Submissions: submService.NewSubmissionService(db),
		Units:       unitService.NewUnitService(db),
	}
}

// PUT /api/c/submissions/:id/responses
// The auto-save endpoint: upsert keyed by (submission, sub-question).
func (ctrl *ResponseController) Save(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	var req dto.SaveResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	saved, err := ctrl.Service.SaveResponse(c.Context(), userID, service.SaveResponseInput{
		SubmissionID:  submissionID,
		SubQuestionID: req.ResponseSubQuestionID,
		Value:         req.ResponseValue,
		EvidenceLink:  req.ResponseEvidenceLink,
	})
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "response saved", dto.FromModel(saved))
}

// GET /api/c|r|cc/submissions/:id/responses
func (ctrl *ResponseController) ListBySubmission(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	unitID, err := helperAuth.GetUnitIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	sub, err := ctrl.Submissions.GetSubmissionByID(c.Context(), submissionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	units, err := ctrl.Units.UnitIndex(c.Context())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	actor := unitService.Actor{UserID: userID, Role: role, UnitID: unitID}
	if !unitService.CanAccessSubmission(*sub, actor, units) {
		return helper.JsonDomainError(c, helper.NewNotFound("submission"))
	}

	rows, err := ctrl.Service.ListBySubmission(c.Context(), submissionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "responses fetched", dto.FromModels(rows), nil)
}
