// file: internals/features/assessment/submissions/service/approval_service_test.go
package service

import (
	"errors"
	"testing"

	respModel "selfassessment_backend/internals/features/assessment/responses/model"
	helper "selfassessment_backend/internals/helpers"
)

func TestAggregateStageDecisionAllApproved(t *testing.T) {
	got, err := AggregateStageDecision([]respModel.StageStatus{
		respModel.StageStatusApproved,
		respModel.StageStatusApproved,
		respModel.StageStatusApproved,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != AggregateAllApproved {
		t.Fatalf("got %s, want %s", got, AggregateAllApproved)
	}
}

func TestAggregateStageDecisionRejectionWins(t *testing.T) {
	// One rejection decides the submission regardless of what else is there.
	got, err := AggregateStageDecision([]respModel.StageStatus{
		respModel.StageStatusApproved,
		respModel.StageStatusRejected,
		respModel.StageStatusPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != AggregateAnyRejected {
		t.Fatalf("got %s, want %s", got, AggregateAnyRejected)
	}
}

func TestAggregateStageDecisionPendingBlocksApproval(t *testing.T) {
	_, err := AggregateStageDecision([]respModel.StageStatus{
		respModel.StageStatusApproved,
		respModel.StageStatusPending,
	})
	var pre *helper.PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("err = %v, want PreconditionError", err)
	}
}

func TestAggregateStageDecisionEmptySet(t *testing.T) {
	_, err := AggregateStageDecision(nil)
	var pre *helper.PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("err = %v, want PreconditionError", err)
	}
}

func TestRollUpRejectionReasons(t *testing.T) {
	r1 := "missing evidence"
	r2 := "figure does not match the annual report"
	responses := []respModel.ResponseModel{
		{ResponseRegionalStatus: respModel.StageStatusApproved},
		{ResponseRegionalStatus: respModel.StageStatusRejected, ResponseRegionalRejectionReason: &r1},
		{ResponseRegionalStatus: respModel.StageStatusRejected, ResponseRegionalRejectionReason: &r2},
	}

	got := rollUpRejectionReasons(responses, regionalStage)
	want := r1 + "\n" + r2
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// The central roll-up reads the validation fields, not the regional ones.
	if got := rollUpRejectionReasons(responses, centralStage); got != "rejected" {
		t.Fatalf("central roll-up over regional-only rejections = %q, want fallback", got)
	}
}
