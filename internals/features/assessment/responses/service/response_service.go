// file: internals/features/assessment/responses/service/response_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "selfassessment_backend/internals/features/assessment/responses/model"
	submModel "selfassessment_backend/internals/features/assessment/submissions/model"
	notifService "selfassessment_backend/internals/features/notifications/service"
	helper "selfassessment_backend/internals/helpers"
)

type ResponseService struct {
	DB     *gorm.DB
	Notifs *notifService.NotificationService
}

func NewResponseService(db *gorm.DB) *ResponseService {
	return &ResponseService{
		DB:     db,
		Notifs: notifService.NewNotificationService(db),
	}
}

type SaveResponseInput struct {
	SubmissionID  uuid.UUID
	SubQuestionID uuid.UUID
	Value         string
	EvidenceLink  *string
}

// SaveResponse is the auto-save upsert keyed by (submission, sub-question).
// An empty value is a valid overwrite used to clear a prior answer. Stage
// status fields are never touched here; the edit lock is enforced against
// the submission status.
func (s *ResponseService) SaveResponse(ctx context.Context, contributorID uuid.UUID, in SaveResponseInput) (*model.ResponseModel, error) {
	var sub submModel.SubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&sub, "submission_id = ?", in.SubmissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFound("submission")
		}
		return nil, err
	}
	if sub.SubmissionContributorUserID != contributorID {
		return nil, helper.NewPermission("only the owning contributor may edit responses")
	}
	if !sub.SubmissionStatus.Editable() {
		return nil, helper.NewPrecondition("responses cannot be edited while the submission is %q", string(sub.SubmissionStatus))
	}

	var evidence *string
	if in.EvidenceLink != nil {
		if v := strings.TrimSpace(*in.EvidenceLink); v != "" {
			evidence = &v
		}
	}

	row := model.ResponseModel{
		ResponseSubmissionID:  in.SubmissionID,
		ResponseSubQuestionID: in.SubQuestionID,
		ResponseValue:         in.Value,
		ResponseEvidenceLink:  evidence,
		ResponseUpdatedAt:     time.Now(),
	}

	// Concurrent auto-saves of the same cell converge on the last write.
	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "response_submission_id"},
				{Name: "response_sub_question_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"response_value",
				"response_evidence_link",
				"response_updated_at",
			}),
		}).
		Create(&row).Error; err != nil {
		return nil, err
	}

	var saved model.ResponseModel
	if err := s.DB.WithContext(ctx).
		First(&saved, "response_submission_id = ? AND response_sub_question_id = ?",
			in.SubmissionID, in.SubQuestionID).Error; err != nil {
		return nil, err
	}

	s.Notifs.EmitSubmissionUpdated(ctx, sub.SubmissionID, string(sub.SubmissionStatus), map[string]any{
		"sub_question_id": in.SubQuestionID.String(),
	})
	return &saved, nil
}

// ListBySubmission returns all responses for a submission; ordering against
// the sub-question tree is the caller's job.
func (s *ResponseService) ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]model.ResponseModel, error) {
	var out []model.ResponseModel
	err := s.DB.WithContext(ctx).
		Where("response_submission_id = ?", submissionID).
		Find(&out).Error
	return out, err
}

func (s *ResponseService) GetByID(ctx context.Context, responseID uuid.UUID) (*model.ResponseModel, error) {
	var resp model.ResponseModel
	if err := s.DB.WithContext(ctx).
		First(&resp, "response_id = ?", responseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFound("response")
		}
		return nil, err
	}
	return &resp, nil
}
