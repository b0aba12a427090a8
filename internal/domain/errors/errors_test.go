package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"forbidden", ErrForbidden},
		{"invalid state transition", ErrInvalidStateTransition},
		{"validation", ErrValidation},
		{"already exists", ErrAlreadyExists},
		{"invalid credentials", ErrInvalidCredentials},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestWrappedSentinelMatches(t *testing.T) {
	wrapped := fmt.Errorf("%w: quote already processed", ErrInvalidStateTransition)
	if !stdErrors.Is(wrapped, ErrInvalidStateTransition) {
		t.Fatalf("expected wrapped error to match sentinel")
	}
}
