// file: internals/features/framework/controller/framework_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "selfassessment_backend/internals/features/framework/service"
	helper "selfassessment_backend/internals/helpers"
)

// FrameworkController serves the read-only assessment framework: dimensions,
// indicators, and the sub-question trees units answer against.
type FrameworkController struct {
	DB      *gorm.DB
	Service *service.FrameworkService
}

func NewFrameworkController(db *gorm.DB) *FrameworkController {
	return &FrameworkController{
		DB:      db,
		Service: service.NewFrameworkService(db),
	}
}

// GET /api/public/framework/dimensions
func (ctrl *FrameworkController) ListDimensions(c *fiber.Ctx) error {
	rows, err := ctrl.Service.ListDimensions(c.Context())
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "dimensions fetched", rows, nil)
}

// GET /api/public/framework/dimensions/:id/indicators
func (ctrl *FrameworkController) ListIndicators(c *fiber.Ctx) error {
	dimensionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid dimension id")
	}
	rows, err := ctrl.Service.ListIndicatorsByDimension(c.Context(), dimensionID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "indicators fetched", rows, nil)
}

// GET /api/public/framework/indicators/:id/sub-questions
// Tree order: parent before children, siblings by display order.
func (ctrl *FrameworkController) ListSubQuestions(c *fiber.Ctx) error {
	indicatorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid indicator id")
	}
	rows, err := ctrl.Service.GetSubQuestionsInTreeOrder(c.Context(), indicatorID)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "sub-questions fetched", rows, nil)
}

// GET /api/public/framework/applicable?unit_type=
// The full question set a unit of the given type must answer.
func (ctrl *FrameworkController) ListApplicable(c *fiber.Ctx) error {
	unitType := c.Query("unit_type")
	if unitType == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "unit_type is required")
	}
	rows, err := ctrl.Service.ApplicableSubQuestions(c.Context(), unitType)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "applicable sub-questions fetched", rows, nil)
}
