package constants

import "fmt"

// Workflow roles. One role string per actor, carried in the JWT.
const (
	RoleDataContributor    = "data_contributor"    // institute / data encoder filling the form
	RoleRegionalApprover   = "regional_approver"   // first-stage reviewer for regional units
	RoleFederalApprover    = "federal_approver"    // first-stage reviewer for federal institutes
	RoleCommitteeMember    = "committee_member"    // central committee, validation + subjective scoring
	RoleCommitteeChairman  = "committee_chairman"  // finalizes scoring
	RoleCommitteeSecretary = "committee_secretary" // read access to the full central stage
)

// Role error message templates
const (
	ErrOnlyContributorsCanAccess = "Only data contributors may access %s."
	ErrOnlyApproversCanAccess    = "Only regional or federal approvers may access %s."
	ErrOnlyCommitteeCanAccess    = "Only central committee members may access %s."
	ErrOnlyChairmanCanAccess     = "Only the committee chairman may access %s."
)

func RoleErrorContributor(feature string) string {
	return fmt.Sprintf(ErrOnlyContributorsCanAccess, feature)
}

func RoleErrorApprover(feature string) string {
	return fmt.Sprintf(ErrOnlyApproversCanAccess, feature)
}

func RoleErrorCommittee(feature string) string {
	return fmt.Sprintf(ErrOnlyCommitteeCanAccess, feature)
}

func RoleErrorChairman(feature string) string {
	return fmt.Sprintf(ErrOnlyChairmanCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleDataContributor,
		RoleRegionalApprover,
		RoleFederalApprover,
		RoleCommitteeMember,
		RoleCommitteeChairman,
		RoleCommitteeSecretary,
	}

	ApproverRoles = []string{
		RoleRegionalApprover,
		RoleFederalApprover,
	}

	CentralCommitteeRoles = []string{
		RoleCommitteeMember,
		RoleCommitteeChairman,
		RoleCommitteeSecretary,
	}

	ScoringRoles = []string{
		RoleCommitteeMember,
		RoleCommitteeChairman,
	}

	ChairmanOnly = []string{
		RoleCommitteeChairman,
	}
)

func RoleIn(role string, allowed []string) bool {
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
