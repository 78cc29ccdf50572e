// file: internals/features/framework/service/framework_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	fwModel "selfassessment_backend/internals/features/framework/model"
	unitModel "selfassessment_backend/internals/features/units/model"
)

func TestApplicableIndicatorType(t *testing.T) {
	cases := []struct {
		unitType string
		want     fwModel.IndicatorType
	}{
		{unitModel.UnitTypeFederalInstitute, fwModel.IndicatorTypeRegion},
		{unitModel.UnitTypeCityAdministration, fwModel.IndicatorTypeRegion},
		{unitModel.UnitTypeRegion, fwModel.IndicatorTypeRegion},
		{unitModel.UnitTypeSubCity, fwModel.IndicatorTypeWoreda},
		{unitModel.UnitTypeWoreda, fwModel.IndicatorTypeWoreda},
	}
	for _, c := range cases {
		if got := ApplicableIndicatorType(c.unitType); got != c.want {
			t.Errorf("ApplicableIndicatorType(%s) = %s, want %s", c.unitType, got, c.want)
		}
	}
}

func sq(id string, parent *uuid.UUID, order int) fwModel.SubQuestionModel {
	return fwModel.SubQuestionModel{
		SubQuestionID:       uuid.MustParse(id),
		SubQuestionParentID: parent,
		SubQuestionOrder:    order,
	}
}

func TestFlattenTreeOrder(t *testing.T) {
	rootA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	rootB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	childA1 := uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	childA2 := uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
	grandA11 := uuid.MustParse("00000000-0000-0000-0000-000000000a11")

	// Deliberately shuffled input; orders decide sibling placement.
	items := []fwModel.SubQuestionModel{
		sq(childA2.String(), &rootA, 2),
		sq(rootB.String(), nil, 2),
		sq(grandA11.String(), &childA1, 1),
		sq(rootA.String(), nil, 1),
		sq(childA1.String(), &rootA, 1),
	}

	got := FlattenTreeOrder(items)
	want := []uuid.UUID{rootA, childA1, grandA11, childA2, rootB}
	if len(got) != len(want) {
		t.Fatalf("flattened %d items, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].SubQuestionID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].SubQuestionID, id)
		}
	}
}

func TestFlattenTreeOrderDepthCap(t *testing.T) {
	// Chain of 5; levels past the third are cut off.
	ids := make([]uuid.UUID, 5)
	items := make([]fwModel.SubQuestionModel, 5)
	for i := range ids {
		ids[i] = uuid.New()
	}
	items[0] = sq(ids[0].String(), nil, 0)
	for i := 1; i < 5; i++ {
		items[i] = sq(ids[i].String(), &ids[i-1], 0)
	}

	got := FlattenTreeOrder(items)
	if len(got) != 3 {
		t.Fatalf("flattened %d items past the depth cap, want 3", len(got))
	}
}

func TestFlattenTreeOrderOrphanParent(t *testing.T) {
	missing := uuid.New()
	items := []fwModel.SubQuestionModel{
		sq(uuid.New().String(), &missing, 1),
		sq(uuid.New().String(), nil, 1),
	}
	// The orphan is unreachable from any root; only the root comes out.
	if got := FlattenTreeOrder(items); len(got) != 1 {
		t.Fatalf("flattened %d items, want 1 (orphan dropped)", len(got))
	}
}
