// file: internals/features/assessment/scoring/model/chairman_scoring_submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Tracks which committee members handed their completed scoring to the
// chairman. Grow-only; a member resubmitting just re-stamps their record.
type ChairmanScoringSubmissionModel struct {
	RecordID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:record_id" json:"record_id"`
	RecordSubmissionID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_chairman_scoring_submission_member;column:record_submission_id" json:"record_submission_id"`
	RecordMemberUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_chairman_scoring_submission_member;column:record_member_user_id" json:"record_member_user_id"`

	RecordSubmittedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:record_submitted_at" json:"record_submitted_at"`
}

func (ChairmanScoringSubmissionModel) TableName() string { return "chairman_scoring_submissions" }
