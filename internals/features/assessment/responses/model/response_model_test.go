// file: internals/features/assessment/responses/model/response_model_test.go
package model

import "testing"

func TestAnswered(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n\r ", false},
		{"0", true},
		{"  yes  ", true},
	}
	for _, c := range cases {
		r := ResponseModel{ResponseValue: c.value}
		if got := r.Answered(); got != c.want {
			t.Errorf("Answered(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestStageStatusValid(t *testing.T) {
	for _, s := range []StageStatus{StageStatusPending, StageStatusApproved, StageStatusRejected} {
		if !s.Valid() {
			t.Errorf("%s must validate", s)
		}
	}
	if StageStatus("deferred").Valid() {
		t.Error("unknown stage status must not validate")
	}
}
