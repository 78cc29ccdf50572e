// file: internals/features/units/service/access_filter_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	"selfassessment_backend/internals/constants"
	submModel "selfassessment_backend/internals/features/assessment/submissions/model"
	unitModel "selfassessment_backend/internals/features/units/model"
)

// region → sub-city → woreda chain plus an unrelated sibling region.
func testHierarchy() (map[uuid.UUID]unitModel.AdministrativeUnitModel, uuid.UUID, uuid.UUID, uuid.UUID, uuid.UUID) {
	region := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	subCity := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	woreda := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")
	otherRegion := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000001")

	units := map[uuid.UUID]unitModel.AdministrativeUnitModel{
		region:      {UnitID: region, UnitType: unitModel.UnitTypeRegion},
		subCity:     {UnitID: subCity, UnitType: unitModel.UnitTypeSubCity, UnitParentID: &region},
		woreda:      {UnitID: woreda, UnitType: unitModel.UnitTypeWoreda, UnitParentID: &subCity},
		otherRegion: {UnitID: otherRegion, UnitType: unitModel.UnitTypeRegion},
	}
	return units, region, subCity, woreda, otherRegion
}

func TestIsWithinScope(t *testing.T) {
	units, region, subCity, woreda, otherRegion := testHierarchy()

	if !IsWithinScope(units, region, region) {
		t.Error("a unit is within its own scope")
	}
	if !IsWithinScope(units, region, woreda) {
		t.Error("woreda descends from region through the sub-city")
	}
	if !IsWithinScope(units, subCity, woreda) {
		t.Error("woreda descends directly from the sub-city")
	}
	if IsWithinScope(units, region, otherRegion) {
		t.Error("sibling region must be out of scope")
	}
	if IsWithinScope(units, woreda, region) {
		t.Error("scope never widens upward")
	}
	if IsWithinScope(units, uuid.Nil, woreda) || IsWithinScope(units, region, uuid.Nil) {
		t.Error("nil ids are never in scope")
	}
}

func TestIsWithinScopeCycleGuard(t *testing.T) {
	a := uuid.MustParse("cccccccc-0000-0000-0000-000000000001")
	b := uuid.MustParse("cccccccc-0000-0000-0000-000000000002")
	units := map[uuid.UUID]unitModel.AdministrativeUnitModel{
		a: {UnitID: a, UnitParentID: &b},
		b: {UnitID: b, UnitParentID: &a},
	}
	scope := uuid.MustParse("cccccccc-0000-0000-0000-000000000003")
	if IsWithinScope(units, scope, a) {
		t.Error("corrupted hierarchy must resolve to out-of-scope, not hang")
	}
}

func TestFilterSubmissionsByAccess(t *testing.T) {
	units, region, _, woreda, otherRegion := testHierarchy()

	owner := uuid.MustParse("dddddddd-0000-0000-0000-000000000001")
	stranger := uuid.MustParse("dddddddd-0000-0000-0000-000000000002")

	subs := []submModel.SubmissionModel{
		{SubmissionUnitID: woreda, SubmissionContributorUserID: owner},
		{SubmissionUnitID: otherRegion, SubmissionContributorUserID: stranger},
	}

	t.Run("contributor sees only their own", func(t *testing.T) {
		got := FilterSubmissionsByAccess(subs, Actor{UserID: owner, Role: constants.RoleDataContributor}, units)
		if len(got) != 1 || got[0].SubmissionContributorUserID != owner {
			t.Fatalf("got %d submissions, want the owner's 1", len(got))
		}
	})

	t.Run("regional approver sees their subtree", func(t *testing.T) {
		got := FilterSubmissionsByAccess(subs, Actor{Role: constants.RoleRegionalApprover, UnitID: region}, units)
		if len(got) != 1 || got[0].SubmissionUnitID != woreda {
			t.Fatalf("got %d submissions, want the woreda's 1", len(got))
		}
	})

	t.Run("approver without scope sees nothing", func(t *testing.T) {
		got := FilterSubmissionsByAccess(subs, Actor{Role: constants.RoleFederalApprover}, units)
		if len(got) != 0 {
			t.Fatalf("got %d submissions, want 0", len(got))
		}
	})

	t.Run("committee roles see everything", func(t *testing.T) {
		for _, role := range constants.CentralCommitteeRoles {
			got := FilterSubmissionsByAccess(subs, Actor{Role: role}, units)
			if len(got) != len(subs) {
				t.Fatalf("role %s: got %d submissions, want %d", role, len(got), len(subs))
			}
		}
	})

	t.Run("unknown role sees nothing", func(t *testing.T) {
		got := FilterSubmissionsByAccess(subs, Actor{Role: "auditor"}, units)
		if len(got) != 0 {
			t.Fatalf("got %d submissions, want 0", len(got))
		}
	})
}

func TestCanAccessSubmission(t *testing.T) {
	units, region, _, woreda, otherRegion := testHierarchy()
	sub := submModel.SubmissionModel{SubmissionUnitID: woreda}

	if !CanAccessSubmission(sub, Actor{Role: constants.RoleRegionalApprover, UnitID: region}, units) {
		t.Error("in-scope approver must access")
	}
	if CanAccessSubmission(sub, Actor{Role: constants.RoleRegionalApprover, UnitID: otherRegion}, units) {
		t.Error("out-of-scope approver must not access")
	}
}
