// file: internals/features/assessment/submissions/model/submission_model_test.go
package model

import "testing"

func TestEditableStatuses(t *testing.T) {
	editable := map[SubmissionStatus]bool{
		SubmissionStatusDraft:                      true,
		SubmissionStatusRejectedByRegionalApprover: true,
		SubmissionStatusRejectedByCentralCommittee: true,
	}
	for _, s := range AllSubmissionStatuses {
		if got := s.Editable(); got != editable[s] {
			t.Errorf("%s.Editable() = %v, want %v", s, got, editable[s])
		}
	}
}

func TestTerminalStatus(t *testing.T) {
	for _, s := range AllSubmissionStatuses {
		want := s == SubmissionStatusScoringComplete
		if got := s.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, want)
		}
	}
}

func TestValidRejectsUnknown(t *testing.T) {
	if SubmissionStatus("archived").Valid() {
		t.Error("unknown status must not validate")
	}
	for _, s := range AllSubmissionStatuses {
		if !s.Valid() {
			t.Errorf("%s must validate", s)
		}
	}
}
