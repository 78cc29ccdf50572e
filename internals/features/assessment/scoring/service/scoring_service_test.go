// file: internals/features/assessment/scoring/service/scoring_service_test.go
package service

import (
	"math"
	"testing"

	model "selfassessment_backend/internals/features/assessment/scoring/model"
	submModel "selfassessment_backend/internals/features/assessment/submissions/model"
)

func TestConsensusMeanEmpty(t *testing.T) {
	if got := ConsensusMean(nil); got != nil {
		t.Fatalf("mean over no scores = %v, want nil", *got)
	}
}

func TestConsensusMean(t *testing.T) {
	cases := []struct {
		values []float64
		want   float64
	}{
		{[]float64{1}, 1},
		{[]float64{0, 1}, 0.5},
		{[]float64{0.5, 0.5, 0.5}, 0.5},
		{[]float64{1, 1, 0}, 2.0 / 3.0},
		{[]float64{0, 0.5, 1}, 0.5},
	}
	for _, c := range cases {
		got := ConsensusMean(c.values)
		if got == nil {
			t.Fatalf("ConsensusMean(%v) = nil", c.values)
		}
		if math.Abs(*got-c.want) > 1e-12 {
			t.Errorf("ConsensusMean(%v) = %v, want %v", c.values, *got, c.want)
		}
	}
}

func TestValidScoreValue(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1} {
		if !model.ValidScoreValue(v) {
			t.Errorf("%v must be a valid score", v)
		}
	}
	for _, v := range []float64{-0.5, 0.25, 0.75, 1.5, 2} {
		if model.ValidScoreValue(v) {
			t.Errorf("%v must not be a valid score", v)
		}
	}
}

func TestScoringOpenStatuses(t *testing.T) {
	open := map[submModel.SubmissionStatus]bool{
		submModel.SubmissionStatusValidated:               true,
		submModel.SubmissionStatusPendingChairmanApproval: true,
	}
	for _, s := range submModel.AllSubmissionStatuses {
		if got := scoringOpen(s); got != open[s] {
			t.Errorf("scoringOpen(%s) = %v, want %v", s, got, open[s])
		}
	}
}
