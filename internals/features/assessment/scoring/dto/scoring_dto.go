// file: internals/features/assessment/scoring/dto/scoring_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "selfassessment_backend/internals/features/assessment/scoring/model"
)

// Pointer so an explicit 0 survives the "required" check.
type AssignScoreRequest struct {
	ScoreValue *float64 `json:"score_value" validate:"required"`
}

type ScoreDTO struct {
	ScoreID           uuid.UUID `json:"score_id"`
	ScoreResponseID   uuid.UUID `json:"score_response_id"`
	ScoreMemberUserID uuid.UUID `json:"score_member_user_id"`
	ScoreValue        float64   `json:"score_value"`
	ScoreUpdatedAt    time.Time `json:"score_updated_at"`
}

func FromScoreModel(m *model.SubjectiveScoreModel) ScoreDTO {
	return ScoreDTO{
		ScoreID:           m.ScoreID,
		ScoreResponseID:   m.ScoreResponseID,
		ScoreMemberUserID: m.ScoreMemberUserID,
		ScoreValue:        m.ScoreValue,
		ScoreUpdatedAt:    m.ScoreUpdatedAt,
	}
}

func FromScoreModels(ms []model.SubjectiveScoreModel) []ScoreDTO {
	out := make([]ScoreDTO, 0, len(ms))
	for i := range ms {
		out = append(out, FromScoreModel(&ms[i]))
	}
	return out
}

type ScoringSubmissionDTO struct {
	RecordID           uuid.UUID `json:"record_id"`
	RecordSubmissionID uuid.UUID `json:"record_submission_id"`
	RecordMemberUserID uuid.UUID `json:"record_member_user_id"`
	RecordSubmittedAt  time.Time `json:"record_submitted_at"`
}

func FromRecordModels(ms []model.ChairmanScoringSubmissionModel) []ScoringSubmissionDTO {
	out := make([]ScoringSubmissionDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ScoringSubmissionDTO{
			RecordID:           m.RecordID,
			RecordSubmissionID: m.RecordSubmissionID,
			RecordMemberUserID: m.RecordMemberUserID,
			RecordSubmittedAt:  m.RecordSubmittedAt,
		})
	}
	return out
}
