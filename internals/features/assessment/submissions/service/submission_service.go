// file: internals/features/assessment/submissions/service/submission_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	respModel "selfassessment_backend/internals/features/assessment/responses/model"
	model "selfassessment_backend/internals/features/assessment/submissions/model"
	fwService "selfassessment_backend/internals/features/framework/service"
	notifService "selfassessment_backend/internals/features/notifications/service"
	unitService "selfassessment_backend/internals/features/units/service"
	helper "selfassessment_backend/internals/helpers"
)

type SubmissionService struct {
	DB        *gorm.DB
	Framework *fwService.FrameworkService
	Units     *unitService.UnitService
	Notifs    *notifService.NotificationService
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{
		DB:        db,
		Framework: fwService.NewFrameworkService(db),
		Units:     unitService.NewUnitService(db),
		Notifs:    notifService.NewNotificationService(db),
	}
}

// GetOrCreateDraftSubmission is the explicit form-entry call replacing lazy
// creation on first keystroke. At most one non-terminal submission exists
// per (unit, year, contributor); an existing one is returned as-is.
func (s *SubmissionService) GetOrCreateDraftSubmission(ctx context.Context, unitID, yearID, contributorID uuid.UUID) (*model.SubmissionModel, bool, error) {
	if _, err := s.Units.GetUnitByID(ctx, unitID); err != nil {
		return nil, false, err
	}

	var sub model.SubmissionModel
	err := s.DB.WithContext(ctx).
		Where(`submission_unit_id = ?
			AND submission_year_id = ?
			AND submission_contributor_user_id = ?
			AND submission_status <> ?`,
			unitID, yearID, contributorID, model.SubmissionStatusScoringComplete).
		Order("submission_created_at DESC").
		First(&sub).Error
	if err == nil {
		return &sub, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	sub = model.SubmissionModel{
		SubmissionUnitID:            unitID,
		SubmissionYearID:            yearID,
		SubmissionContributorUserID: contributorID,
		SubmissionStatus:            model.SubmissionStatusDraft,
	}
	if err := s.DB.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, false, err
	}
	log.Printf("[SubmissionService] draft created submission_id=%s unit_id=%s year_id=%s", sub.SubmissionID, unitID, yearID)
	return &sub, true, nil
}

func (s *SubmissionService) GetSubmissionByID(ctx context.Context, submissionID uuid.UUID) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&sub, "submission_id = ?", submissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFound("submission")
		}
		return nil, err
	}
	return &sub, nil
}

type ListSubmissionsFilter struct {
	YearID *uuid.UUID
	UnitID *uuid.UUID
	Status *model.SubmissionStatus
}

// ListSubmissions returns submissions matching the filter. Role visibility
// is applied by the caller via the access filter over the unit hierarchy.
func (s *SubmissionService) ListSubmissions(ctx context.Context, f ListSubmissionsFilter) ([]model.SubmissionModel, error) {
	q := s.DB.WithContext(ctx).Model(&model.SubmissionModel{})
	if f.YearID != nil {
		q = q.Where("submission_year_id = ?", *f.YearID)
	}
	if f.UnitID != nil {
		q = q.Where("submission_unit_id = ?", *f.UnitID)
	}
	if f.Status != nil {
		q = q.Where("submission_status = ?", *f.Status)
	}
	var out []model.SubmissionModel
	err := q.Order("submission_created_at DESC").Find(&out).Error
	return out, err
}

// RenameDraft updates the submission name while still editable.
func (s *SubmissionService) RenameDraft(ctx context.Context, submissionID, contributorID uuid.UUID, name string) (*model.SubmissionModel, error) {
	sub, err := s.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.SubmissionContributorUserID != contributorID {
		return nil, helper.NewPermission("only the owning contributor may rename this submission")
	}
	if !sub.SubmissionStatus.Editable() {
		return nil, helper.NewPrecondition("submission can no longer be edited while %q", string(sub.SubmissionStatus))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, helper.NewDomainValidation("submission name must not be empty")
	}
	if err := s.DB.WithContext(ctx).Model(sub).
		Updates(map[string]any{
			"submission_name":       name,
			"submission_updated_at": time.Now(),
		}).Error; err != nil {
		return nil, err
	}
	sub.SubmissionName = &name
	return sub, nil
}

// MissingAnswer names one unanswered applicable sub-question.
type MissingAnswer struct {
	SubQuestionID uuid.UUID `json:"sub_question_id"`
	DimensionName string    `json:"dimension_name"`
	IndicatorName string    `json:"indicator_name"`
	Label         string    `json:"label"`
}

// FindMissingAnswers is the pure completeness gate: every applicable
// sub-question must carry a non-empty response.
func FindMissingAnswers(applicable []fwService.ApplicableSubQuestion, responses []respModel.ResponseModel) []MissingAnswer {
	answered := make(map[uuid.UUID]bool, len(responses))
	for _, r := range responses {
		if r.Answered() {
			answered[r.ResponseSubQuestionID] = true
		}
	}

	var missing []MissingAnswer
	for _, q := range applicable {
		if !answered[q.SubQuestionID] {
			missing = append(missing, MissingAnswer{
				SubQuestionID: q.SubQuestionID,
				DimensionName: q.DimensionName,
				IndicatorName: q.IndicatorName,
				Label:         fmt.Sprintf("%s — %s", q.DimensionName, q.SubQuestionText),
			})
		}
	}
	return missing
}

// SubmitForApproval moves an editable submission into the regional review
// queue. Fails listing every unanswered dimension/question; nothing is
// persisted on failure.
func (s *SubmissionService) SubmitForApproval(ctx context.Context, submissionID, contributorID uuid.UUID) (*model.SubmissionModel, error) {
	var sub model.SubmissionModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.NewNotFound("submission")
			}
			return err
		}
		if sub.SubmissionContributorUserID != contributorID {
			return helper.NewPermission("only the owning contributor may submit this submission")
		}

		next, err := NextStatus(sub.SubmissionStatus, EventSubmitForApproval, AggregateNone)
		if err != nil {
			return err
		}

		unit, err := s.Units.GetUnitByID(ctx, sub.SubmissionUnitID)
		if err != nil {
			return err
		}
		applicable, err := s.Framework.ApplicableSubQuestions(ctx, unit.UnitType)
		if err != nil {
			return err
		}
		if len(applicable) == 0 {
			return helper.NewPrecondition("no assessment questions are defined for unit type %q", unit.UnitType)
		}

		var responses []respModel.ResponseModel
		if err := tx.Where("response_submission_id = ?", sub.SubmissionID).
			Find(&responses).Error; err != nil {
			return err
		}

		if missing := FindMissingAnswers(applicable, responses); len(missing) > 0 {
			labels := make([]string, 0, len(missing))
			for _, m := range missing {
				labels = append(labels, m.Label)
			}
			return helper.NewDomainValidation("submission is incomplete", labels...)
		}

		// Re-entering review after a regional rejection: rejected review
		// marks go back to pending, reasons stay for audit.
		if err := tx.Model(&respModel.ResponseModel{}).
			Where("response_submission_id = ? AND response_regional_status = ?",
				sub.SubmissionID, respModel.StageStatusRejected).
			Updates(map[string]any{
				"response_regional_status": respModel.StageStatusPending,
				"response_updated_at":      time.Now(),
			}).Error; err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]any{
			"submission_status":       next,
			"submission_submitted_at": now,
			"submission_updated_at":   now,
		}
		if err := tx.Model(&sub).Updates(updates).Error; err != nil {
			return err
		}
		sub.SubmissionStatus = next
		sub.SubmissionSubmittedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notifs.EmitSubmissionUpdated(ctx, sub.SubmissionID, string(sub.SubmissionStatus), map[string]any{
		"unit_id": sub.SubmissionUnitID.String(),
	})
	return &sub, nil
}
