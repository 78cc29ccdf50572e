// file: internals/features/assessment/responses/dto/response_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "selfassessment_backend/internals/features/assessment/responses/model"
)

// SaveResponseRequest: the value intentionally has no "required" tag — an
// empty string is a valid overwrite used to clear a prior answer.
type SaveResponseRequest struct {
	ResponseSubQuestionID uuid.UUID `json:"response_sub_question_id" validate:"required"`
	ResponseValue         string    `json:"response_value"`
	ResponseEvidenceLink  *string   `json:"response_evidence_link,omitempty" validate:"omitempty,url,max=500"`
}

type ResponseDTO struct {
	ResponseID            uuid.UUID `json:"response_id"`
	ResponseSubmissionID  uuid.UUID `json:"response_submission_id"`
	ResponseSubQuestionID uuid.UUID `json:"response_sub_question_id"`

	ResponseValue        string  `json:"response_value"`
	ResponseEvidenceLink *string `json:"response_evidence_link,omitempty"`

	ResponseRegionalStatus          model.StageStatus `json:"response_regional_status"`
	ResponseRegionalRejectionReason *string           `json:"response_regional_rejection_reason,omitempty"`
	ResponseRegionalNote            *string           `json:"response_regional_note,omitempty"`

	ResponseValidationStatus       model.StageStatus `json:"response_validation_status"`
	ResponseCentralRejectionReason *string           `json:"response_central_rejection_reason,omitempty"`
	ResponseGeneralNote            *string           `json:"response_general_note,omitempty"`

	ResponseUpdatedAt time.Time `json:"response_updated_at"`
}

func FromModel(m *model.ResponseModel) ResponseDTO {
	return ResponseDTO{
		ResponseID:                      m.ResponseID,
		ResponseSubmissionID:            m.ResponseSubmissionID,
		ResponseSubQuestionID:           m.ResponseSubQuestionID,
		ResponseValue:                   m.ResponseValue,
		ResponseEvidenceLink:            m.ResponseEvidenceLink,
		ResponseRegionalStatus:          m.ResponseRegionalStatus,
		ResponseRegionalRejectionReason: m.ResponseRegionalRejectionReason,
		ResponseRegionalNote:            m.ResponseRegionalNote,
		ResponseValidationStatus:        m.ResponseValidationStatus,
		ResponseCentralRejectionReason:  m.ResponseCentralRejectionReason,
		ResponseGeneralNote:             m.ResponseGeneralNote,
		ResponseUpdatedAt:               m.ResponseUpdatedAt,
	}
}

func FromModels(ms []model.ResponseModel) []ResponseDTO {
	out := make([]ResponseDTO, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
