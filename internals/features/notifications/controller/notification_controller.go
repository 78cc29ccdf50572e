// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "selfassessment_backend/internals/features/notifications/service"
	helper "selfassessment_backend/internals/helpers"
	helperAuth "selfassessment_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB      *gorm.DB
	Service *service.NotificationService
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		DB:      db,
		Service: service.NewNotificationService(db),
	}
}

// GET /api/u/notifications
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Service.ListForUser(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonList(c, "notifications fetched", rows,
		helper.BuildPagination(total, p.Page, p.PerPage, len(rows)))
}

// PUT /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	notificationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := ctrl.Service.MarkRead(c.Context(), notificationID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "notification not found")
		}
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "notification marked read", fiber.Map{"notification_id": notificationID})
}
