// file: internals/features/assessment/scoring/model/subjective_score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// One score per (response, committee member). A member may overwrite their
// own score before chairman finalization, never another member's.
type SubjectiveScoreModel struct {
	ScoreID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:score_id" json:"score_id"`
	ScoreResponseID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_subjective_scores_response_member;column:score_response_id" json:"score_response_id"`
	ScoreMemberUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subjective_scores_response_member;column:score_member_user_id" json:"score_member_user_id"`

	// allowed values: 0, 0.5, 1
	ScoreValue float64 `gorm:"type:numeric(2,1);not null;column:score_value" json:"score_value"`

	ScoreCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:score_created_at" json:"score_created_at"`
	ScoreUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:score_updated_at" json:"score_updated_at"`
}

func (SubjectiveScoreModel) TableName() string { return "subjective_scores" }

func ValidScoreValue(v float64) bool {
	return v == 0 || v == 0.5 || v == 1
}
