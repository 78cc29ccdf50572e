// file: internals/features/assessment/submissions/service/approval_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	respModel "selfassessment_backend/internals/features/assessment/responses/model"
	model "selfassessment_backend/internals/features/assessment/submissions/model"
	notifService "selfassessment_backend/internals/features/notifications/service"
	helper "selfassessment_backend/internals/helpers"
)

// ApprovalService carries both human-review stages: the regional/federal
// approval pass and the central committee validation pass.
type ApprovalService struct {
	DB     *gorm.DB
	Notifs *notifService.NotificationService
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{
		DB:     db,
		Notifs: notifService.NewNotificationService(db),
	}
}

// AggregateStageDecision folds per-response stage statuses into a submission
// -level outcome. Rejection wins outright; approval requires every answered
// response reviewed and approved; an empty set is not aggregatable.
func AggregateStageDecision(statuses []respModel.StageStatus) (AggregateResult, error) {
	if len(statuses) == 0 {
		return AggregateNone, helper.NewPrecondition("submission has no answered responses to decide on")
	}
	pending := 0
	for _, st := range statuses {
		switch st {
		case respModel.StageStatusRejected:
			return AggregateAnyRejected, nil
		case respModel.StageStatusPending:
			pending++
		}
	}
	if pending > 0 {
		return AggregateNone, helper.NewPrecondition("%d response(s) are still pending review", pending)
	}
	return AggregateAllApproved, nil
}

/* =========================
   Regional / federal stage
========================= */

func (s *ApprovalService) loadResponseWithSubmission(tx *gorm.DB, responseID uuid.UUID) (*respModel.ResponseModel, *model.SubmissionModel, error) {
	var resp respModel.ResponseModel
	if err := tx.First(&resp, "response_id = ?", responseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, helper.NewNotFound("response")
		}
		return nil, nil, err
	}
	var sub model.SubmissionModel
	if err := tx.First(&sub, "submission_id = ?", resp.ResponseSubmissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, helper.NewNotFound("submission")
		}
		return nil, nil, err
	}
	return &resp, &sub, nil
}

// ApproveResponseByRegionalApprover marks one response approved at the
// regional stage; only valid while the submission awaits initial approval.
func (s *ApprovalService) ApproveResponseByRegionalApprover(ctx context.Context, responseID, approverID uuid.UUID, note *string) (*respModel.ResponseModel, error) {
	var out *respModel.ResponseModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resp, sub, err := s.loadResponseWithSubmission(tx, responseID)
		if err != nil {
			return err
		}
		if sub.SubmissionStatus != model.SubmissionStatusPendingInitialApproval {
			return helper.NewPrecondition("responses can only be approved while the submission is pending initial approval")
		}
		updates := map[string]any{
			"response_regional_status": respModel.StageStatusApproved,
			"response_updated_at":      time.Now(),
		}
		if note != nil && strings.TrimSpace(*note) != "" {
			updates["response_regional_note"] = strings.TrimSpace(*note)
		}
		if err := tx.Model(resp).Updates(updates).Error; err != nil {
			return err
		}
		resp.ResponseRegionalStatus = respModel.StageStatusApproved
		out = resp
		return nil
	})
	return out, err
}

// RejectResponseByRegionalApprover requires a non-blank reason.
func (s *ApprovalService) RejectResponseByRegionalApprover(ctx context.Context, responseID, approverID uuid.UUID, reason string) (*respModel.ResponseModel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, helper.NewDomainValidation("a rejection reason is required")
	}
	var out *respModel.ResponseModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resp, sub, err := s.loadResponseWithSubmission(tx, responseID)
		if err != nil {
			return err
		}
		if sub.SubmissionStatus != model.SubmissionStatusPendingInitialApproval {
			return helper.NewPrecondition("responses can only be rejected while the submission is pending initial approval")
		}
		if err := tx.Model(resp).Updates(map[string]any{
			"response_regional_status":           respModel.StageStatusRejected,
			"response_regional_rejection_reason": reason,
			"response_updated_at":                time.Now(),
		}).Error; err != nil {
			return err
		}
		resp.ResponseRegionalStatus = respModel.StageStatusRejected
		resp.ResponseRegionalRejectionReason = &reason
		out = resp
		return nil
	})
	return out, err
}

// ApproveRemainingResponses is the bulk "approve all answered questions"
// action. It touches only answered responses still pending, so rejections
// set one by one are never clobbered.
func (s *ApprovalService) ApproveRemainingResponses(ctx context.Context, submissionID, approverID uuid.UUID) (int64, error) {
	var affected int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub model.SubmissionModel
		if err := tx.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.NewNotFound("submission")
			}
			return err
		}
		if sub.SubmissionStatus != model.SubmissionStatusPendingInitialApproval {
			return helper.NewPrecondition("bulk approval is only available while the submission is pending initial approval")
		}
		res := tx.Model(&respModel.ResponseModel{}).
			Where(`response_submission_id = ?
				AND response_regional_status = ?
				AND btrim(response_value) <> ''`,
				submissionID, respModel.StageStatusPending).
			Updates(map[string]any{
				"response_regional_status": respModel.StageStatusApproved,
				"response_updated_at":      time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// SubmitRegionalApproval aggregates the answered responses' regional
// statuses and applies the submission-level transition, stamping approver
// and approval date. Aggregate and flip happen in one transaction so a
// response edited mid-review cannot half-apply.
func (s *ApprovalService) SubmitRegionalApproval(ctx context.Context, submissionID, approverID uuid.UUID) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.NewNotFound("submission")
			}
			return err
		}

		var responses []respModel.ResponseModel
		if err := tx.Where("response_submission_id = ? AND btrim(response_value) <> ''", submissionID).
			Find(&responses).Error; err != nil {
			return err
		}

		statuses := make([]respModel.StageStatus, 0, len(responses))
		for _, r := range responses {
			statuses = append(statuses, r.ResponseRegionalStatus)
		}
		agg, err := AggregateStageDecision(statuses)
		if err != nil {
			return err
		}

		next, err := NextStatus(sub.SubmissionStatus, EventRegionalDecision, agg)
		if err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]any{
			"submission_status":           next,
			"submission_approver_user_id": approverID,
			"submission_updated_at":       now,
		}
		if agg == AggregateAllApproved {
			updates["submission_approval_date"] = now
			sub.SubmissionApprovalDate = &now
		} else {
			reason := rollUpRejectionReasons(responses, regionalStage)
			updates["submission_rejection_reason"] = reason
			sub.SubmissionRejectionReason = &reason
		}
		if err := tx.Model(&sub).Updates(updates).Error; err != nil {
			return err
		}
		sub.SubmissionStatus = next
		sub.SubmissionApproverUserID = &approverID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, &sub)
	return &sub, nil
}

/* =========================
   Central validation stage
========================= */

// ValidateResponse records the central committee's verdict on one response.
// Rejection requires a non-blank reason.
func (s *ApprovalService) ValidateResponse(ctx context.Context, responseID uuid.UUID, status respModel.StageStatus, rejectionReason, generalNote *string) (*respModel.ResponseModel, error) {
	if status != respModel.StageStatusApproved && status != respModel.StageStatusRejected {
		return nil, helper.NewDomainValidation("validation status must be approved or rejected")
	}
	var reason string
	if status == respModel.StageStatusRejected {
		if rejectionReason == nil || strings.TrimSpace(*rejectionReason) == "" {
			return nil, helper.NewDomainValidation("a rejection reason is required")
		}
		reason = strings.TrimSpace(*rejectionReason)
	}

	var out *respModel.ResponseModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		resp, sub, err := s.loadResponseWithSubmission(tx, responseID)
		if err != nil {
			return err
		}
		if sub.SubmissionStatus != model.SubmissionStatusPendingCentralValidation {
			return helper.NewPrecondition("responses can only be validated while the submission is pending central validation")
		}
		updates := map[string]any{
			"response_validation_status": status,
			"response_updated_at":        time.Now(),
		}
		if status == respModel.StageStatusRejected {
			updates["response_central_rejection_reason"] = reason
			resp.ResponseCentralRejectionReason = &reason
		}
		if generalNote != nil && strings.TrimSpace(*generalNote) != "" {
			note := strings.TrimSpace(*generalNote)
			updates["response_general_note"] = note
			resp.ResponseGeneralNote = &note
		}
		if err := tx.Model(resp).Updates(updates).Error; err != nil {
			return err
		}
		resp.ResponseValidationStatus = status
		out = resp
		return nil
	})
	return out, err
}

// SubmitCentralValidation mirrors the regional decision over the validation
// statuses.
func (s *ApprovalService) SubmitCentralValidation(ctx context.Context, submissionID, validatorID uuid.UUID) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.NewNotFound("submission")
			}
			return err
		}

		var responses []respModel.ResponseModel
		if err := tx.Where("response_submission_id = ? AND btrim(response_value) <> ''", submissionID).
			Find(&responses).Error; err != nil {
			return err
		}

		statuses := make([]respModel.StageStatus, 0, len(responses))
		for _, r := range responses {
			statuses = append(statuses, r.ResponseValidationStatus)
		}
		agg, err := AggregateStageDecision(statuses)
		if err != nil {
			return err
		}

		next, err := NextStatus(sub.SubmissionStatus, EventCentralDecision, agg)
		if err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]any{
			"submission_status":     next,
			"submission_updated_at": now,
		}
		if agg == AggregateAnyRejected {
			reason := rollUpRejectionReasons(responses, centralStage)
			updates["submission_rejection_reason"] = reason
			sub.SubmissionRejectionReason = &reason
		}
		if err := tx.Model(&sub).Updates(updates).Error; err != nil {
			return err
		}
		sub.SubmissionStatus = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, &sub)
	return &sub, nil
}

// RejectToContributor pushes a centrally-rejected submission back down to
// the contributor, appending the approver's comment to the committee's
// existing rejection reason.
func (s *ApprovalService) RejectToContributor(ctx context.Context, submissionID, approverID uuid.UUID, additionalComment string) (*model.SubmissionModel, error) {
	additionalComment = strings.TrimSpace(additionalComment)
	if additionalComment == "" {
		return nil, helper.NewDomainValidation("an additional comment is required when rejecting to the contributor")
	}

	var sub model.SubmissionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.NewNotFound("submission")
			}
			return err
		}

		next, err := NextStatus(sub.SubmissionStatus, EventRejectToContributor, AggregateNone)
		if err != nil {
			return err
		}

		reason := additionalComment
		if sub.SubmissionRejectionReason != nil && strings.TrimSpace(*sub.SubmissionRejectionReason) != "" {
			reason = strings.TrimSpace(*sub.SubmissionRejectionReason) + "\n" + additionalComment
		}

		if err := tx.Model(&sub).Updates(map[string]any{
			"submission_status":           next,
			"submission_rejection_reason": reason,
			"submission_approver_user_id": approverID,
			"submission_updated_at":       time.Now(),
		}).Error; err != nil {
			return err
		}
		sub.SubmissionStatus = next
		sub.SubmissionRejectionReason = &reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, &sub)
	return &sub, nil
}

// ResubmitToCentralCommittee re-enters central review after the contributor
// corrected a central rejection. Previously rejected validation marks go
// back to pending; their reasons remain for audit.
func (s *ApprovalService) ResubmitToCentralCommittee(ctx context.Context, submissionID, contributorID uuid.UUID) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.NewNotFound("submission")
			}
			return err
		}
		if sub.SubmissionContributorUserID != contributorID {
			return helper.NewPermission("only the owning contributor may resubmit this submission")
		}

		next, err := NextStatus(sub.SubmissionStatus, EventResubmitToCentral, AggregateNone)
		if err != nil {
			return err
		}

		if err := tx.Model(&respModel.ResponseModel{}).
			Where("response_submission_id = ? AND response_validation_status = ?",
				submissionID, respModel.StageStatusRejected).
			Updates(map[string]any{
				"response_validation_status": respModel.StageStatusPending,
				"response_updated_at":        time.Now(),
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&sub).Updates(map[string]any{
			"submission_status":     next,
			"submission_updated_at": time.Now(),
		}).Error; err != nil {
			return err
		}
		sub.SubmissionStatus = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, &sub)
	return &sub, nil
}

/* =========================
   Internals
========================= */

type stage int

const (
	regionalStage stage = iota
	centralStage
)

// rollUpRejectionReasons concatenates the per-response reasons of the stage
// into the submission-level rejection reason shown to the contributor.
func rollUpRejectionReasons(responses []respModel.ResponseModel, st stage) string {
	var parts []string
	for _, r := range responses {
		switch st {
		case regionalStage:
			if r.ResponseRegionalStatus == respModel.StageStatusRejected && r.ResponseRegionalRejectionReason != nil {
				parts = append(parts, *r.ResponseRegionalRejectionReason)
			}
		case centralStage:
			if r.ResponseValidationStatus == respModel.StageStatusRejected && r.ResponseCentralRejectionReason != nil {
				parts = append(parts, *r.ResponseCentralRejectionReason)
			}
		}
	}
	if len(parts) == 0 {
		return "rejected"
	}
	return strings.Join(parts, "\n")
}

func (s *ApprovalService) notifyDecision(ctx context.Context, sub *model.SubmissionModel) {
	s.Notifs.EmitSubmissionUpdated(ctx, sub.SubmissionID, string(sub.SubmissionStatus), map[string]any{
		"unit_id": sub.SubmissionUnitID.String(),
	})
	switch sub.SubmissionStatus {
	case model.SubmissionStatusRejectedByRegionalApprover, model.SubmissionStatusRejectedByCentralCommittee:
		payload := map[string]any{}
		if sub.SubmissionRejectionReason != nil {
			payload["reason"] = *sub.SubmissionRejectionReason
		}
		s.Notifs.EmitToUser(ctx, notifService.EventSubmissionRejected,
			sub.SubmissionContributorUserID, sub.SubmissionID, string(sub.SubmissionStatus), payload)
	}
}
