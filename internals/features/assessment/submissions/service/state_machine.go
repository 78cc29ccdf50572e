// file: internals/features/assessment/submissions/service/state_machine.go
package service

import (
	model "selfassessment_backend/internals/features/assessment/submissions/model"
	helper "selfassessment_backend/internals/helpers"
)

// Event is a workflow trigger against a submission.
type Event string

const (
	EventSubmitForApproval   Event = "submit_for_approval"
	EventRegionalDecision    Event = "regional_decision"
	EventCentralDecision     Event = "central_decision"
	EventResubmitToCentral   Event = "resubmit_to_central"
	EventRejectToContributor Event = "reject_to_contributor"
	EventBeginChairmanReview Event = "begin_chairman_review"
	EventChairmanFinalize    Event = "chairman_finalize"
)

// AggregateResult is the outcome of aggregating per-response stage statuses,
// relevant only for the two decision events.
type AggregateResult string

const (
	AggregateNone        AggregateResult = "none"
	AggregateAllApproved AggregateResult = "all_approved"
	AggregateAnyRejected AggregateResult = "any_rejected"
)

// NextStatus is the single transition table of the workflow. Every branch of
// the lifecycle is decided here; callers aggregate, then ask. An invalid
// (status, event) pair yields a PreconditionError and no transition.
func NextStatus(current model.SubmissionStatus, event Event, aggregate AggregateResult) (model.SubmissionStatus, error) {
	switch event {
	case EventSubmitForApproval:
		switch current {
		case model.SubmissionStatusDraft,
			model.SubmissionStatusRejectedByRegionalApprover,
			model.SubmissionStatusRejectedByCentralCommittee:
			return model.SubmissionStatusPendingInitialApproval, nil
		}

	case EventRegionalDecision:
		if current == model.SubmissionStatusPendingInitialApproval {
			switch aggregate {
			case AggregateAllApproved:
				return model.SubmissionStatusPendingCentralValidation, nil
			case AggregateAnyRejected:
				return model.SubmissionStatusRejectedByRegionalApprover, nil
			default:
				return current, helper.NewPrecondition("regional decision requires an aggregate of the response review statuses")
			}
		}

	case EventCentralDecision:
		if current == model.SubmissionStatusPendingCentralValidation {
			switch aggregate {
			case AggregateAllApproved:
				return model.SubmissionStatusValidated, nil
			case AggregateAnyRejected:
				return model.SubmissionStatusRejectedByCentralCommittee, nil
			default:
				return current, helper.NewPrecondition("central decision requires an aggregate of the response validation statuses")
			}
		}

	case EventResubmitToCentral:
		// Deliberate shortcut: a central rejection goes straight back to
		// central review after edits, skipping a fresh regional pass.
		if current == model.SubmissionStatusRejectedByCentralCommittee {
			return model.SubmissionStatusPendingCentralValidation, nil
		}

	case EventRejectToContributor:
		// The approver pushes a central rejection one level further down so
		// the original contributor re-enters the edit cycle.
		if current == model.SubmissionStatusRejectedByCentralCommittee {
			return model.SubmissionStatusRejectedByRegionalApprover, nil
		}

	case EventBeginChairmanReview:
		if current == model.SubmissionStatusValidated {
			return model.SubmissionStatusPendingChairmanApproval, nil
		}

	case EventChairmanFinalize:
		switch current {
		case model.SubmissionStatusValidated, model.SubmissionStatusPendingChairmanApproval:
			return model.SubmissionStatusScoringComplete, nil
		}

	default:
		return current, helper.NewPrecondition("unknown workflow event %q", string(event))
	}

	return current, helper.NewPrecondition(
		"operation %q is not allowed while the submission is %q", string(event), string(current))
}
