// file: internals/features/assessment/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionStatus is the closed status set of the workflow. All transition
// branching lives in the state machine; nothing else compares statuses ad hoc.
type SubmissionStatus string

const (
	SubmissionStatusDraft                      SubmissionStatus = "draft"
	SubmissionStatusPendingInitialApproval     SubmissionStatus = "pending_initial_approval"
	SubmissionStatusRejectedByRegionalApprover SubmissionStatus = "rejected_by_regional_approver"
	SubmissionStatusPendingCentralValidation   SubmissionStatus = "pending_central_validation"
	SubmissionStatusRejectedByCentralCommittee SubmissionStatus = "rejected_by_central_committee"
	SubmissionStatusValidated                  SubmissionStatus = "validated"
	SubmissionStatusPendingChairmanApproval    SubmissionStatus = "pending_chairman_approval"
	SubmissionStatusScoringComplete            SubmissionStatus = "scoring_complete"
)

var AllSubmissionStatuses = []SubmissionStatus{
	SubmissionStatusDraft,
	SubmissionStatusPendingInitialApproval,
	SubmissionStatusRejectedByRegionalApprover,
	SubmissionStatusPendingCentralValidation,
	SubmissionStatusRejectedByCentralCommittee,
	SubmissionStatusValidated,
	SubmissionStatusPendingChairmanApproval,
	SubmissionStatusScoringComplete,
}

func (s SubmissionStatus) Valid() bool {
	for _, v := range AllSubmissionStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Editable reports whether the contributor may still write responses.
// The edit lock is enforced server-side, not just by form rendering.
func (s SubmissionStatus) Editable() bool {
	switch s {
	case SubmissionStatusDraft,
		SubmissionStatusRejectedByRegionalApprover,
		SubmissionStatusRejectedByCentralCommittee:
		return true
	}
	return false
}

// Terminal: the practical end state. Never hard-deleted either way.
func (s SubmissionStatus) Terminal() bool {
	return s == SubmissionStatusScoringComplete
}

type SubmissionModel struct {
	SubmissionID                uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submission_id" json:"submission_id"`
	SubmissionUnitID            uuid.UUID        `gorm:"type:uuid;not null;index;column:submission_unit_id" json:"submission_unit_id"`
	SubmissionYearID            uuid.UUID        `gorm:"type:uuid;not null;index;column:submission_year_id" json:"submission_year_id"`
	SubmissionContributorUserID uuid.UUID        `gorm:"type:uuid;not null;index;column:submission_contributor_user_id" json:"submission_contributor_user_id"`
	SubmissionName              *string          `gorm:"type:varchar(160);column:submission_name" json:"submission_name,omitempty"`
	SubmissionStatus            SubmissionStatus `gorm:"type:varchar(32);not null;default:'draft';column:submission_status" json:"submission_status"`

	SubmissionApproverUserID  *uuid.UUID `gorm:"type:uuid;column:submission_approver_user_id" json:"submission_approver_user_id,omitempty"`
	SubmissionSubmittedAt     *time.Time `gorm:"type:timestamptz;column:submission_submitted_at" json:"submission_submitted_at,omitempty"`
	SubmissionApprovalDate    *time.Time `gorm:"type:timestamptz;column:submission_approval_date" json:"submission_approval_date,omitempty"`
	SubmissionRejectionReason *string    `gorm:"type:text;column:submission_rejection_reason" json:"submission_rejection_reason,omitempty"`

	SubmissionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:submission_created_at" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:submission_updated_at" json:"submission_updated_at"`
	SubmissionDeletedAt gorm.DeletedAt `gorm:"column:submission_deleted_at;index" json:"submission_deleted_at,omitempty"`
}

func (SubmissionModel) TableName() string { return "submissions" }
