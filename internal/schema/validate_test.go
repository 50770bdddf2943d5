package schema_test

import (
	"errors"
	"testing"

	"github.com/boddenberg/zapay-go/internal/domain"
)

// assertValidationError fails the test unless err is a *domain.ValidationError
// naming the given field and constraint.
func assertValidationError(t *testing.T, err error, field, constraint string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error on %q, got nil", field)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
	if verr.Field != field {
		t.Errorf("expected field %q, got %q", field, verr.Field)
	}
	if verr.Constraint != constraint {
		t.Errorf("expected constraint %q, got %q", constraint, verr.Constraint)
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
