// file: internals/features/assessment/submissions/service/submission_service_test.go
package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	respModel "selfassessment_backend/internals/features/assessment/responses/model"
	fwService "selfassessment_backend/internals/features/framework/service"
)

func applicableSet() []fwService.ApplicableSubQuestion {
	return []fwService.ApplicableSubQuestion{
		{
			SubQuestionID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			SubQuestionText: "Share of services available online",
			DimensionName:   "Service Delivery",
			IndicatorName:   "Digital services",
		},
		{
			SubQuestionID:   uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			SubQuestionText: "ICT staff training plan in place",
			DimensionName:   "Human Capital",
			IndicatorName:   "Capacity building",
		},
	}
}

func TestFindMissingAnswersComplete(t *testing.T) {
	apps := applicableSet()
	responses := []respModel.ResponseModel{
		{ResponseSubQuestionID: apps[0].SubQuestionID, ResponseValue: "64%"},
		{ResponseSubQuestionID: apps[1].SubQuestionID, ResponseValue: "yes, since 2024"},
	}
	if missing := FindMissingAnswers(apps, responses); len(missing) != 0 {
		t.Fatalf("expected no missing answers, got %d", len(missing))
	}
}

func TestFindMissingAnswersNamesDimensionAndQuestion(t *testing.T) {
	apps := applicableSet()
	responses := []respModel.ResponseModel{
		{ResponseSubQuestionID: apps[0].SubQuestionID, ResponseValue: "64%"},
	}

	missing := FindMissingAnswers(apps, responses)
	if len(missing) != 1 {
		t.Fatalf("expected 1 missing answer, got %d", len(missing))
	}
	m := missing[0]
	if m.SubQuestionID != apps[1].SubQuestionID {
		t.Fatalf("wrong sub-question flagged: %s", m.SubQuestionID)
	}
	if m.DimensionName != "Human Capital" {
		t.Fatalf("dimension = %q, want %q", m.DimensionName, "Human Capital")
	}
	if !strings.Contains(m.Label, "Human Capital") || !strings.Contains(m.Label, "ICT staff training plan in place") {
		t.Fatalf("label %q does not name dimension and question", m.Label)
	}
}

func TestFindMissingAnswersWhitespaceIsNotAnAnswer(t *testing.T) {
	apps := applicableSet()
	responses := []respModel.ResponseModel{
		{ResponseSubQuestionID: apps[0].SubQuestionID, ResponseValue: "   \n\t"},
		{ResponseSubQuestionID: apps[1].SubQuestionID, ResponseValue: "ok"},
	}
	missing := FindMissingAnswers(apps, responses)
	if len(missing) != 1 || missing[0].SubQuestionID != apps[0].SubQuestionID {
		t.Fatalf("whitespace-only value must count as missing, got %+v", missing)
	}
}

func TestFindMissingAnswersIgnoresStrayResponses(t *testing.T) {
	apps := applicableSet()
	// A response to a question outside the applicable set satisfies nothing.
	responses := []respModel.ResponseModel{
		{ResponseSubQuestionID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), ResponseValue: "n/a"},
	}
	if missing := FindMissingAnswers(apps, responses); len(missing) != 2 {
		t.Fatalf("expected both questions missing, got %d", len(missing))
	}
}
