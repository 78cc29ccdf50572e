// file: internals/features/assessment/scoring/service/scoring_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	respModel "selfassessment_backend/internals/features/assessment/responses/model"
	model "selfassessment_backend/internals/features/assessment/scoring/model"
	submModel "selfassessment_backend/internals/features/assessment/submissions/model"
	submService "selfassessment_backend/internals/features/assessment/submissions/service"
	fwModel "selfassessment_backend/internals/features/framework/model"
	notifService "selfassessment_backend/internals/features/notifications/service"
	helper "selfassessment_backend/internals/helpers"
)

// ScoringService manages independent committee-member scoring of subjective
// responses, consensus averaging, and chairman finalization.
type ScoringService struct {
	DB     *gorm.DB
	Notifs *notifService.NotificationService
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{
		DB:     db,
		Notifs: notifService.NewNotificationService(db),
	}
}

// ConsensusMean is the arithmetic mean over the currently recorded member
// scores; nil when nobody has scored. Exact rational arithmetic, no
// rounding — presentation rounds, this does not.
func ConsensusMean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	return &mean
}

func (s *ScoringService) getSubmission(ctx context.Context, submissionID uuid.UUID) (*submModel.SubmissionModel, error) {
	var sub submModel.SubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&sub, "submission_id = ?", submissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFound("submission")
		}
		return nil, err
	}
	return &sub, nil
}

func scoringOpen(status submModel.SubmissionStatus) bool {
	return status == submModel.SubmissionStatusValidated ||
		status == submModel.SubmissionStatusPendingChairmanApproval
}

// ListSubjectiveResponses filters a submission's responses to the ones whose
// sub-question is free-text.
func (s *ScoringService) ListSubjectiveResponses(ctx context.Context, submissionID uuid.UUID) ([]respModel.ResponseModel, error) {
	var out []respModel.ResponseModel
	err := s.DB.WithContext(ctx).
		Table("submission_responses AS r").
		Select("r.*").
		Joins("JOIN assessment_sub_questions sq ON sq.sub_question_id = r.response_sub_question_id").
		Where("r.response_submission_id = ? AND sq.sub_question_response_type = ?",
			submissionID, fwModel.ResponseTypeSubjective).
		Scan(&out).Error
	return out, err
}

// AssignSubjectiveScore upserts one member's score for one response.
// Different members never overwrite each other; a member revising their own
// score before final submission is the expected case.
func (s *ScoringService) AssignSubjectiveScore(ctx context.Context, responseID, memberID uuid.UUID, value float64) (*model.SubjectiveScoreModel, error) {
	if !model.ValidScoreValue(value) {
		return nil, helper.NewDomainValidation("score must be 0, 0.5 or 1")
	}

	var resp respModel.ResponseModel
	if err := s.DB.WithContext(ctx).
		First(&resp, "response_id = ?", responseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFound("response")
		}
		return nil, err
	}

	var subQ fwModel.SubQuestionModel
	if err := s.DB.WithContext(ctx).
		First(&subQ, "sub_question_id = ?", resp.ResponseSubQuestionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFound("sub-question")
		}
		return nil, err
	}
	if subQ.SubQuestionResponseType != fwModel.ResponseTypeSubjective {
		return nil, helper.NewPrecondition("only subjective responses are scored by the committee")
	}

	sub, err := s.getSubmission(ctx, resp.ResponseSubmissionID)
	if err != nil {
		return nil, err
	}
	if !scoringOpen(sub.SubmissionStatus) {
		return nil, helper.NewPrecondition("scoring is closed while the submission is %q", string(sub.SubmissionStatus))
	}

	row := model.SubjectiveScoreModel{
		ScoreResponseID:   responseID,
		ScoreMemberUserID: memberID,
		ScoreValue:        value,
		ScoreUpdatedAt:    time.Now(),
	}
	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "score_response_id"},
				{Name: "score_member_user_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"score_value", "score_updated_at"}),
		}).
		Create(&row).Error; err != nil {
		return nil, err
	}

	var saved model.SubjectiveScoreModel
	if err := s.DB.WithContext(ctx).
		First(&saved, "score_response_id = ? AND score_member_user_id = ?", responseID, memberID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *ScoringService) ListScoresByResponse(ctx context.Context, responseID uuid.UUID) ([]model.SubjectiveScoreModel, error) {
	var out []model.SubjectiveScoreModel
	err := s.DB.WithContext(ctx).
		Where("score_response_id = ?", responseID).
		Order("score_created_at ASC").
		Find(&out).Error
	return out, err
}

// FinalScore recomputes the consensus mean on every read; it keeps moving
// as members add or revise scores until finalization.
func (s *ScoringService) FinalScore(ctx context.Context, responseID uuid.UUID) (*float64, error) {
	scores, err := s.ListScoresByResponse(ctx, responseID)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, len(scores))
	for _, sc := range scores {
		values = append(values, sc.ScoreValue)
	}
	return ConsensusMean(values), nil
}

// SubmitMyScoringToChairman records that this member finished scoring every
// subjective response of the submission. Idempotent per member; other
// members and the submission status are untouched.
func (s *ScoringService) SubmitMyScoringToChairman(ctx context.Context, submissionID, memberID uuid.UUID) (*model.ChairmanScoringSubmissionModel, error) {
	sub, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if !scoringOpen(sub.SubmissionStatus) {
		return nil, helper.NewPrecondition("scoring can only be submitted while the submission is %q or %q",
			string(submModel.SubmissionStatusValidated), string(submModel.SubmissionStatusPendingChairmanApproval))
	}

	subjective, err := s.ListSubjectiveResponses(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if len(subjective) == 0 {
		return nil, helper.NewPrecondition("submission has no subjective responses to score")
	}

	var scored []uuid.UUID
	if err := s.DB.WithContext(ctx).
		Model(&model.SubjectiveScoreModel{}).
		Where("score_member_user_id = ?", memberID).
		Pluck("score_response_id", &scored).Error; err != nil {
		return nil, err
	}
	scoredSet := make(map[uuid.UUID]bool, len(scored))
	for _, id := range scored {
		scoredSet[id] = true
	}

	var missing []string
	for _, r := range subjective {
		if !scoredSet[r.ResponseID] {
			missing = append(missing, fmt.Sprintf("response %s", r.ResponseID))
		}
	}
	if len(missing) > 0 {
		return nil, helper.NewDomainValidation("every subjective response must be scored before submitting to the chairman", missing...)
	}

	row := model.ChairmanScoringSubmissionModel{
		RecordSubmissionID: submissionID,
		RecordMemberUserID: memberID,
		RecordSubmittedAt:  time.Now(),
	}
	if err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "record_submission_id"},
				{Name: "record_member_user_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"record_submitted_at"}),
		}).
		Create(&row).Error; err != nil {
		return nil, err
	}

	var saved model.ChairmanScoringSubmissionModel
	if err := s.DB.WithContext(ctx).
		First(&saved, "record_submission_id = ? AND record_member_user_id = ?", submissionID, memberID).Error; err != nil {
		return nil, err
	}

	s.Notifs.EmitSubmissionUpdated(ctx, submissionID, string(sub.SubmissionStatus), map[string]any{
		"event_detail": notifService.EventScoringSubmitted,
		"member_id":    memberID.String(),
	})
	return &saved, nil
}

// ListScoringSubmissions drives the "N of M members submitted" progress.
func (s *ScoringService) ListScoringSubmissions(ctx context.Context, submissionID uuid.UUID) ([]model.ChairmanScoringSubmissionModel, error) {
	var out []model.ChairmanScoringSubmissionModel
	err := s.DB.WithContext(ctx).
		Where("record_submission_id = ?", submissionID).
		Order("record_submitted_at ASC").
		Find(&out).Error
	return out, err
}

// BeginChairmanReview moves a validated submission under the chairman's
// review. Members may still revise their scores until finalization.
func (s *ScoringService) BeginChairmanReview(ctx context.Context, submissionID, chairmanID uuid.UUID) (*submModel.SubmissionModel, error) {
	return s.transition(ctx, submissionID, submService.EventBeginChairmanReview)
}

// FinalizeScoring is the chairman sign-off closing the workflow. Gated on
// at least one member having submitted their completed scoring.
func (s *ScoringService) FinalizeScoring(ctx context.Context, submissionID, chairmanID uuid.UUID) (*submModel.SubmissionModel, error) {
	records, err := s.ListScoringSubmissions(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, helper.NewPrecondition("no committee member has submitted scoring to the chairman yet")
	}
	return s.transition(ctx, submissionID, submService.EventChairmanFinalize)
}

func (s *ScoringService) transition(ctx context.Context, submissionID uuid.UUID, event submService.Event) (*submModel.SubmissionModel, error) {
	var sub submModel.SubmissionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.NewNotFound("submission")
			}
			return err
		}
		next, err := submService.NextStatus(sub.SubmissionStatus, event, submService.AggregateNone)
		if err != nil {
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

	s.Notifs.EmitSubmissionUpdated(ctx, sub.SubmissionID, string(sub.SubmissionStatus), nil)
	return &sub, nil
}
