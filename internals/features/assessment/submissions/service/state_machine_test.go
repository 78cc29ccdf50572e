// file: internals/features/assessment/submissions/service/state_machine_test.go
package service

import (
	"errors"
	"testing"

	model "selfassessment_backend/internals/features/assessment/submissions/model"
	helper "selfassessment_backend/internals/helpers"
)

func TestNextStatusHappyPath(t *testing.T) {
	steps := []struct {
		current   model.SubmissionStatus
		event     Event
		aggregate AggregateResult
		want      model.SubmissionStatus
	}{
		{model.SubmissionStatusDraft, EventSubmitForApproval, AggregateNone, model.SubmissionStatusPendingInitialApproval},
		{model.SubmissionStatusPendingInitialApproval, EventRegionalDecision, AggregateAllApproved, model.SubmissionStatusPendingCentralValidation},
		{model.SubmissionStatusPendingCentralValidation, EventCentralDecision, AggregateAllApproved, model.SubmissionStatusValidated},
		{model.SubmissionStatusValidated, EventBeginChairmanReview, AggregateNone, model.SubmissionStatusPendingChairmanApproval},
		{model.SubmissionStatusPendingChairmanApproval, EventChairmanFinalize, AggregateNone, model.SubmissionStatusScoringComplete},
	}
	for _, s := range steps {
		got, err := NextStatus(s.current, s.event, s.aggregate)
		if err != nil {
			t.Fatalf("NextStatus(%s, %s, %s): unexpected error: %v", s.current, s.event, s.aggregate, err)
		}
		if got != s.want {
			t.Fatalf("NextStatus(%s, %s, %s) = %s, want %s", s.current, s.event, s.aggregate, got, s.want)
		}
	}
}

func TestNextStatusRejectionBranches(t *testing.T) {
	got, err := NextStatus(model.SubmissionStatusPendingInitialApproval, EventRegionalDecision, AggregateAnyRejected)
	if err != nil || got != model.SubmissionStatusRejectedByRegionalApprover {
		t.Fatalf("regional rejection = (%s, %v), want rejected_by_regional_approver", got, err)
	}

	got, err = NextStatus(model.SubmissionStatusPendingCentralValidation, EventCentralDecision, AggregateAnyRejected)
	if err != nil || got != model.SubmissionStatusRejectedByCentralCommittee {
		t.Fatalf("central rejection = (%s, %v), want rejected_by_central_committee", got, err)
	}

	// Both rejected states re-enter the regional queue on resubmission.
	for _, from := range []model.SubmissionStatus{
		model.SubmissionStatusRejectedByRegionalApprover,
		model.SubmissionStatusRejectedByCentralCommittee,
	} {
		got, err = NextStatus(from, EventSubmitForApproval, AggregateNone)
		if err != nil || got != model.SubmissionStatusPendingInitialApproval {
			t.Fatalf("resubmit from %s = (%s, %v), want pending_initial_approval", from, got, err)
		}
	}
}

func TestNextStatusCentralShortcuts(t *testing.T) {
	// Resubmission after a central rejection skips the regional pass.
	got, err := NextStatus(model.SubmissionStatusRejectedByCentralCommittee, EventResubmitToCentral, AggregateNone)
	if err != nil || got != model.SubmissionStatusPendingCentralValidation {
		t.Fatalf("resubmit-to-central = (%s, %v), want pending_central_validation", got, err)
	}

	// The approver may push it down to the contributor instead.
	got, err = NextStatus(model.SubmissionStatusRejectedByCentralCommittee, EventRejectToContributor, AggregateNone)
	if err != nil || got != model.SubmissionStatusRejectedByRegionalApprover {
		t.Fatalf("reject-to-contributor = (%s, %v), want rejected_by_regional_approver", got, err)
	}
}

func TestNextStatusFinalizeFromValidated(t *testing.T) {
	got, err := NextStatus(model.SubmissionStatusValidated, EventChairmanFinalize, AggregateNone)
	if err != nil || got != model.SubmissionStatusScoringComplete {
		t.Fatalf("finalize from validated = (%s, %v), want scoring_complete", got, err)
	}
}

func TestNextStatusOutOfOrder(t *testing.T) {
	cases := []struct {
		current model.SubmissionStatus
		event   Event
	}{
		{model.SubmissionStatusDraft, EventRegionalDecision},
		{model.SubmissionStatusDraft, EventChairmanFinalize},
		{model.SubmissionStatusPendingInitialApproval, EventSubmitForApproval},
		{model.SubmissionStatusPendingInitialApproval, EventCentralDecision},
		{model.SubmissionStatusPendingCentralValidation, EventRegionalDecision},
		{model.SubmissionStatusValidated, EventSubmitForApproval},
		{model.SubmissionStatusValidated, EventResubmitToCentral},
		{model.SubmissionStatusRejectedByRegionalApprover, EventResubmitToCentral},
		{model.SubmissionStatusRejectedByRegionalApprover, EventRejectToContributor},
		{model.SubmissionStatusScoringComplete, EventSubmitForApproval},
		{model.SubmissionStatusScoringComplete, EventChairmanFinalize},
	}
	for _, c := range cases {
		got, err := NextStatus(c.current, c.event, AggregateAllApproved)
		var pre *helper.PreconditionError
		if !errors.As(err, &pre) {
			t.Fatalf("NextStatus(%s, %s) err = %v, want PreconditionError", c.current, c.event, err)
		}
		if got != c.current {
			t.Fatalf("NextStatus(%s, %s) moved to %s on error", c.current, c.event, got)
		}
	}
}

func TestNextStatusDecisionNeedsAggregate(t *testing.T) {
	_, err := NextStatus(model.SubmissionStatusPendingInitialApproval, EventRegionalDecision, AggregateNone)
	var pre *helper.PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("regional decision without aggregate: err = %v, want PreconditionError", err)
	}

	_, err = NextStatus(model.SubmissionStatusPendingCentralValidation, EventCentralDecision, AggregateNone)
	if !errors.As(err, &pre) {
		t.Fatalf("central decision without aggregate: err = %v, want PreconditionError", err)
	}
}

func TestNextStatusUnknownEvent(t *testing.T) {
	_, err := NextStatus(model.SubmissionStatusDraft, Event("tamper"), AggregateNone)
	var pre *helper.PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("unknown event: err = %v, want PreconditionError", err)
	}
}
