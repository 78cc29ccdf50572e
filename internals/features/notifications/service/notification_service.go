// file: internals/features/notifications/service/notification_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "selfassessment_backend/internals/features/notifications/model"
)

const (
	EventSubmissionUpdated = "submission.updated"
	EventSubmissionRejected = "submission.rejected"
	EventScoringSubmitted  = "scoring.submitted"
)

type NotificationService struct {
	DB  *gorm.DB
	Bus *Bus
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db, Bus: DefaultBus}
}

// EmitSubmissionUpdated persists a broadcast notification row and publishes
// on the bus. Failures are logged, never surfaced: emission must not fail
// the workflow operation that triggered it.
func (s *NotificationService) EmitSubmissionUpdated(ctx context.Context, submissionID uuid.UUID, status string, payload map[string]any) {
	s.emit(ctx, EventSubmissionUpdated, nil, submissionID, status, payload)
}

// EmitToUser targets a specific user (e.g. the contributor on rejection).
func (s *NotificationService) EmitToUser(ctx context.Context, event string, userID uuid.UUID, submissionID uuid.UUID, status string, payload map[string]any) {
	s.emit(ctx, event, &userID, submissionID, status, payload)
}

func (s *NotificationService) emit(ctx context.Context, event string, userID *uuid.UUID, submissionID uuid.UUID, status string, payload map[string]any) {
	row := model.NotificationModel{
		NotificationEvent:        event,
		NotificationUserID:       userID,
		NotificationSubmissionID: submissionID,
		NotificationPayload:      datatypes.JSONMap(payload),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[NotificationService] persist %s failed: %v", event, err)
	}

	s.Bus.Publish(SubmissionEvent{
		Event:        event,
		SubmissionID: submissionID,
		Status:       status,
	})
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.NotificationModel, int64, error) {
	q := s.DB.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ? OR notification_user_id IS NULL", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("notification_id = ? AND (notification_user_id = ? OR notification_user_id IS NULL)", notificationID, userID).
		Update("notification_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
