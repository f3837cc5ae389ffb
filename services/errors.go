package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to handlers. Wrap with fmt.Errorf("%w: …") and match
// with errors.Is.
var (
	// ErrForbidden: actor lacks the required role, is not the department HOU,
	// or is not the assignee. Never retried.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict: the CRF is not at the status this transition requires.
	// The caller may refresh and retry manually.
	ErrConflict = errors.New("conflict")
	// ErrValidation: bad payload, e.g. a target user without the required
	// PIC role.
	ErrValidation = errors.New("validation")
	// ErrNotFound: unknown CRF, user or attachment id.
	ErrNotFound = errors.New("not found")
)

func forbiddenf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
