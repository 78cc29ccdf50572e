// file: internals/helpers/json_response_test.go
package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 2, 20, 20)
	if p.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("page 2 of 3 must have both neighbours: %+v", p)
	}

	p = BuildPagination(0, 1, 20, 0)
	if p.TotalPages != 1 || p.HasNext || p.HasPrev {
		t.Fatalf("empty result must still report one page: %+v", p)
	}
}

func TestDomainErrorMessages(t *testing.T) {
	if got := NewNotFound("submission").Error(); got != "submission not found" {
		t.Fatalf("NotFound message = %q", got)
	}
	if got := NewPrecondition("submission is %q", "draft").Error(); got != `submission is "draft"` {
		t.Fatalf("Precondition message = %q", got)
	}

	v := NewDomainValidation("submission is incomplete", "Service Delivery — online services", "Human Capital — training plan")
	want := "submission is incomplete: Service Delivery — online services; Human Capital — training plan"
	if v.Error() != want {
		t.Fatalf("Validation message = %q, want %q", v.Error(), want)
	}
}
