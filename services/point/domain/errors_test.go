package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrPointNotFound, "point not found"},
		{ErrInvalidSubmission, "invalid submission"},
		{ErrUnknownItem, "unknown item"},
		{ErrImageStorage, "image storage failed"},
		{ErrImageRejected, "image type not accepted"},
		{ErrImageTooLarge, "image too large"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("unexpected message: got %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestFieldError_MatchesInvalidSubmission(t *testing.T) {
	err := fmt.Errorf("register point: %w", NewFieldError("email", "must not be empty"))

	if !errors.Is(err, ErrInvalidSubmission) {
		t.Fatal("errors.Is must match ErrInvalidSubmission through a FieldError")
	}

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatal("errors.As must extract the *FieldError")
	}
	if fe.Field != "email" {
		t.Fatalf("expected field %q, got %q", "email", fe.Field)
	}
	if fe.Error() != "invalid submission: email: must not be empty" {
		t.Fatalf("unexpected message: %q", fe.Error())
	}
}

func TestStorageErrors_DoubleWrapped(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrImageStorage, ErrImageTooLarge)
	if !errors.Is(err, ErrImageStorage) || !errors.Is(err, ErrImageTooLarge) {
		t.Fatal("double-wrapped storage error must match both sentinels")
	}
}
