package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("board: %w", ErrNotFound), http.StatusNotFound},
		{"validation", ErrValidation, http.StatusUnprocessableEntity},
		{"bad request", ErrBadRequest, http.StatusBadRequest},
		{"conflict", ErrConflict, http.StatusBadRequest},
		{"remote", ErrRemote, http.StatusInternalServerError},
		{"unavailable", ErrUnavailable, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"app error code wins", New(http.StatusTeapot, "teapot", ErrNotFound), http.StatusTeapot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapErrorToStatus(tc.err); got != tc.want {
				t.Errorf("MapErrorToStatus(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestValidationJoinsMessages(t *testing.T) {
	err := Validation(
		FieldError{Field: "name", Message: "name is required"},
		FieldError{Field: "slug", Message: "slug is required"},
	)
	if err.Code != http.StatusUnprocessableEntity {
		t.Errorf("code = %d, want 422", err.Code)
	}
	if err.Error() != "name is required; slug is required" {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("Validation should wrap ErrValidation")
	}
	if len(err.Fields) != 2 {
		t.Errorf("fields = %v", err.Fields)
	}
}

func TestConflictIsBadRequest(t *testing.T) {
	err := Conflict("duplicate slug")
	if err.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", err.Code)
	}
	if !errors.Is(err, ErrConflict) {
		t.Error("Conflict should wrap ErrConflict")
	}
}
