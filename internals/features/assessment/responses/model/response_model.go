// file: internals/features/assessment/responses/model/response_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StageStatus is the per-response status within one review stage. The
// regional and central stages keep independent fields of this type; each
// stage mutates only its own.
type StageStatus string

const (
	StageStatusPending  StageStatus = "pending"
	StageStatusApproved StageStatus = "approved"
	StageStatusRejected StageStatus = "rejected"
)

func (s StageStatus) Valid() bool {
	switch s {
	case StageStatusPending, StageStatusApproved, StageStatusRejected:
		return true
	}
	return false
}

// One response per (submission, sub-question), upserted on every auto-save.
// An empty value is a legitimate overwrite used to clear a prior answer.
// Stage fields are written only by the approval coordinator, never by saves.
type ResponseModel struct {
	ResponseID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:response_id" json:"response_id"`
	ResponseSubmissionID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_responses_submission_sub_question;column:response_submission_id" json:"response_submission_id"`
	ResponseSubQuestionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_responses_submission_sub_question;column:response_sub_question_id" json:"response_sub_question_id"`

	ResponseValue        string  `gorm:"type:text;not null;default:'';column:response_value" json:"response_value"`
	ResponseEvidenceLink *string `gorm:"type:varchar(500);column:response_evidence_link" json:"response_evidence_link,omitempty"`

	ResponseRegionalStatus          StageStatus `gorm:"type:varchar(16);not null;default:'pending';column:response_regional_status" json:"response_regional_status"`
	ResponseRegionalRejectionReason *string     `gorm:"type:text;column:response_regional_rejection_reason" json:"response_regional_rejection_reason,omitempty"`
	ResponseRegionalNote            *string     `gorm:"type:text;column:response_regional_note" json:"response_regional_note,omitempty"`

	ResponseValidationStatus       StageStatus `gorm:"type:varchar(16);not null;default:'pending';column:response_validation_status" json:"response_validation_status"`
	ResponseCentralRejectionReason *string     `gorm:"type:text;column:response_central_rejection_reason" json:"response_central_rejection_reason,omitempty"`
	ResponseGeneralNote            *string     `gorm:"type:text;column:response_general_note" json:"response_general_note,omitempty"`

	ResponseCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:response_created_at" json:"response_created_at"`
	ResponseUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:response_updated_at" json:"response_updated_at"`
}

func (ResponseModel) TableName() string { return "submission_responses" }

// Answered: a non-empty, non-whitespace value counts as an answer.
func (r ResponseModel) Answered() bool {
	for _, c := range r.ResponseValue {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return true
		}
	}
	return false
}
