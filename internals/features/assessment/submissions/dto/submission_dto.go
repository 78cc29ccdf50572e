// file: internals/features/assessment/submissions/dto/submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "selfassessment_backend/internals/features/assessment/submissions/model"
)

/* =========================================================
   Requests
========================================================= */

type CreateDraftRequest struct {
	SubmissionUnitID uuid.UUID `json:"submission_unit_id" validate:"required"`
	SubmissionYearID uuid.UUID `json:"submission_year_id" validate:"required"`
}

type RenameSubmissionRequest struct {
	SubmissionName string `json:"submission_name" validate:"required,max=160"`
}

type ApproveResponseRequest struct {
	Note *string `json:"note,omitempty" validate:"omitempty,max=2000"`
}

type RejectResponseRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type ValidateResponseRequest struct {
	Status          string  `json:"status" validate:"required,oneof=approved rejected"`
	RejectionReason *string `json:"rejection_reason,omitempty" validate:"omitempty,max=4000"`
	GeneralNote     *string `json:"general_note,omitempty" validate:"omitempty,max=4000"`
}

type RejectToContributorRequest struct {
	AdditionalComment string `json:"additional_comment" validate:"required"`
}

/* =========================================================
   Responses
========================================================= */

type SubmissionResponse struct {
	SubmissionID                uuid.UUID              `json:"submission_id"`
	SubmissionUnitID            uuid.UUID              `json:"submission_unit_id"`
	SubmissionYearID            uuid.UUID              `json:"submission_year_id"`
	SubmissionContributorUserID uuid.UUID              `json:"submission_contributor_user_id"`
	SubmissionName              *string                `json:"submission_name,omitempty"`
	SubmissionStatus            model.SubmissionStatus `json:"submission_status"`
	SubmissionApproverUserID    *uuid.UUID             `json:"submission_approver_user_id,omitempty"`
	SubmissionSubmittedAt       *time.Time             `json:"submission_submitted_at,omitempty"`
	SubmissionApprovalDate      *time.Time             `json:"submission_approval_date,omitempty"`
	SubmissionRejectionReason   *string                `json:"submission_rejection_reason,omitempty"`
	SubmissionCreatedAt         time.Time              `json:"submission_created_at"`
	SubmissionUpdatedAt         time.Time              `json:"submission_updated_at"`
}

func FromModel(m *model.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:                m.SubmissionID,
		SubmissionUnitID:            m.SubmissionUnitID,
		SubmissionYearID:            m.SubmissionYearID,
		SubmissionContributorUserID: m.SubmissionContributorUserID,
		SubmissionName:              m.SubmissionName,
		SubmissionStatus:            m.SubmissionStatus,
		SubmissionApproverUserID:    m.SubmissionApproverUserID,
		SubmissionSubmittedAt:       m.SubmissionSubmittedAt,
		SubmissionApprovalDate:      m.SubmissionApprovalDate,
		SubmissionRejectionReason:   m.SubmissionRejectionReason,
		SubmissionCreatedAt:         m.SubmissionCreatedAt,
		SubmissionUpdatedAt:         m.SubmissionUpdatedAt,
	}
}

func FromModels(ms []model.SubmissionModel) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
