// file: internals/helpers/domain_error.go
package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Typed workflow errors

   Services return these; controllers hand them to JsonDomainError and never
   pick HTTP status codes per call site.
=================================*/

// PreconditionError: a workflow operation was called while the submission or
// response is not in the state it requires.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

func NewPrecondition(format string, args ...any) *PreconditionError {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}

// DomainValidationError: bad or missing input (empty rejection reason,
// unanswered required questions). Missing lists the specific offending items
// so the UI can name them instead of a bare "incomplete".
type DomainValidationError struct {
	Reason  string
	Missing []string
}

func (e *DomainValidationError) Error() string {
	if len(e.Missing) == 0 {
		return e.Reason
	}
	return e.Reason + ": " + strings.Join(e.Missing, "; ")
}

func NewDomainValidation(reason string, missing ...string) *DomainValidationError {
	return &DomainValidationError{Reason: reason, Missing: missing}
}

// PermissionError: the actor's role/scope does not allow the action.
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string { return e.Reason }

func NewPermission(format string, args ...any) *PermissionError {
	return &PermissionError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError: referenced submission/response/sub-question does not resolve.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

/* ===============================
   Error → HTTP mapping
=================================*/

// JsonDomainError maps a service error onto the JSON envelope.
// Unknown errors fall back to 500 with the original message.
func JsonDomainError(c *fiber.Ctx, err error) error {
	var pre *PreconditionError
	if errors.As(err, &pre) {
		return JsonError(c, fiber.StatusConflict, pre.Reason)
	}

	var val *DomainValidationError
	if errors.As(err, &val) {
		if len(val.Missing) > 0 {
			return JsonValidationError(c, map[string][]string{"missing": val.Missing})
		}
		return JsonError(c, fiber.StatusBadRequest, val.Reason)
	}

	var perm *PermissionError
	if errors.As(err, &perm) {
		return JsonError(c, fiber.StatusForbidden, perm.Reason)
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return JsonError(c, fiber.StatusNotFound, nf.Error())
	}

	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}

	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
