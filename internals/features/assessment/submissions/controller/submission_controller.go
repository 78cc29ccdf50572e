// file: internals/features/assessment/submissions/controller/submission_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "selfassessment_backend/internals/features/assessment/submissions/dto"
	model "selfassessment_backend/internals/features/assessment/submissions/model"
	service "selfassessment_backend/internals/features/assessment/submissions/service"
	unitService "selfassessment_backend/internals/features/units/service"
	helper "selfassessment_backend/internals/helpers"
	helperAuth "selfassessment_backend/internals/helpers/auth"
)

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.SubmissionService
	Units     *unitService.UnitService
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewSubmissionService(db),
		Units:     unitService.NewUnitService(db),
	}
}

func actorFromToken(c *fiber.Ctx) (unitService.Actor, error) {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return unitService.Actor{}, err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return unitService.Actor{}, err
	}
	unitID, err := helperAuth.GetUnitIDFromToken(c)
	if err != nil {
		return unitService.Actor{}, err
	}
	return unitService.Actor{UserID: userID, Role: role, UnitID: unitID}, nil
}

// POST /api/c/submissions
func (ctrl *SubmissionController) CreateDraft(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	var req dto.CreateDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sub, created, err := ctrl.Service.GetOrCreateDraftSubmission(c.Context(), req.SubmissionUnitID, req.SubmissionYearID, userID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	if created {
		return helper.JsonCreated(c, "draft submission created", dto.FromModel(sub))
	}
	return helper.JsonOK(c, "existing submission returned", dto.FromModel(sub))
}

// PATCH /api/c/submissions/:id/name
func (ctrl *SubmissionController) Rename(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	var req dto.RenameSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sub, err := ctrl.Service.RenameDraft(c.Context(), submissionID, userID, req.SubmissionName)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "submission renamed", dto.FromModel(sub))
}

// POST /api/c/submissions/:id/submit
func (ctrl *SubmissionController) SubmitForApproval(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	sub, err := ctrl.Service.SubmitForApproval(c.Context(), submissionID, userID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "submission sent for approval", dto.FromModel(sub))
}

// GET /api/r|cc|c/submissions
// Role visibility is applied after the query: contributors see their own,
// approvers their unit subtree, committee everything.
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	var f service.ListSubmissionsFilter
	if v := c.Query("year_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid year_id")
		}
		f.YearID = &id
	}
	if v := c.Query("unit_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid unit_id")
		}
		f.UnitID = &id
	}
	if v := c.Query("status"); v != "" {
		st := model.SubmissionStatus(v)
		if !st.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid status")
		}
		f.Status = &st
	}

	subs, err := ctrl.Service.ListSubmissions(c.Context(), f)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	units, err := ctrl.Units.UnitIndex(c.Context())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	visible := unitService.FilterSubmissionsByAccess(subs, actor, units)

	p := helper.ResolvePaging(c, 20, 200)
	total := int64(len(visible))
	start := p.Offset
	if start > len(visible) {
		start = len(visible)
	}
	end := start + p.Limit
	if end > len(visible) {
		end = len(visible)
	}
	page := visible[start:end]

	return helper.JsonList(c, "submissions fetched", dto.FromModels(page),
		helper.BuildPagination(total, p.Page, p.PerPage, len(page)))
}

// GET /api/r|cc|c/submissions/:id
func (ctrl *SubmissionController) GetByID(c *fiber.Ctx) error {
	actor, err := actorFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	submissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid submission id")
	}

	sub, err := ctrl.Service.GetSubmissionByID(c.Context(), submissionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	units, err := ctrl.Units.UnitIndex(c.Context())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	// Out-of-scope submissions read as absent, not forbidden.
	if !unitService.CanAccessSubmission(*sub, actor, units) {
		return helper.JsonDomainError(c, helper.NewNotFound("submission"))
	}

	return helper.JsonOK(c, "submission fetched", dto.FromModel(sub))
}
