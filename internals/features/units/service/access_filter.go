// file: internals/features/units/service/access_filter.go
package service

import (
	"github.com/google/uuid"

	"selfassessment_backend/internals/constants"
	submModel "selfassessment_backend/internals/features/assessment/submissions/model"
	unitModel "selfassessment_backend/internals/features/units/model"
)

// Actor is the authenticated caller as seen by the workflow: role plus the
// administrative-unit scope carried in the token (Nil for central roles).
type Actor struct {
	UserID uuid.UUID
	Role   string
	UnitID uuid.UUID
}

// FilterSubmissionsByAccess applies role-scoped visibility:
//   - contributors see only their own submissions
//   - regional/federal approvers see submissions of units inside their scope
//   - central committee roles see everything
//
// Pure filter; units is the hierarchy snapshot from UnitService.UnitIndex.
func FilterSubmissionsByAccess(
	subs []submModel.SubmissionModel,
	actor Actor,
	units map[uuid.UUID]unitModel.AdministrativeUnitModel,
) []submModel.SubmissionModel {
	out := make([]submModel.SubmissionModel, 0, len(subs))

	switch actor.Role {
	case constants.RoleDataContributor:
		for _, s := range subs {
			if s.SubmissionContributorUserID == actor.UserID {
				out = append(out, s)
			}
		}
	case constants.RoleRegionalApprover, constants.RoleFederalApprover:
		for _, s := range subs {
			if IsWithinScope(units, actor.UnitID, s.SubmissionUnitID) {
				out = append(out, s)
			}
		}
	case constants.RoleCommitteeMember, constants.RoleCommitteeChairman, constants.RoleCommitteeSecretary:
		out = append(out, subs...)
	}

	return out
}

// CanAccessSubmission is the single-submission form of the filter.
func CanAccessSubmission(
	sub submModel.SubmissionModel,
	actor Actor,
	units map[uuid.UUID]unitModel.AdministrativeUnitModel,
) bool {
	return len(FilterSubmissionsByAccess([]submModel.SubmissionModel{sub}, actor, units)) == 1
}
