package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("alice")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Username != "alice" {
		t.Errorf("Expected username %s, got %s", "alice", user.Username)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Empty username
	_, err = NewUser("")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected error wrapping %v, got %v", ErrValidation, err)
	}
	if err == nil || err.Error() != "username is required" {
		t.Errorf("Expected message %q, got %v", "username is required", err)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:       uuid.New(),
		Username: "bob",
	}

	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected error %v, got %v", ErrInvalidID, err)
	}

	invalidUser = validUser
	invalidUser.Username = ""
	var ve *ValidationError
	if err := invalidUser.Validate(); !errors.As(err, &ve) || ve.Field != "username" {
		t.Errorf("Expected username validation error, got %v", err)
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(NewValidationError("f", "bad", nil)) {
		t.Error("Expected ValidationError to be recognised")
	}
	if !IsValidationError(ErrValidation) {
		t.Error("Expected ErrValidation to be recognised")
	}
	if IsValidationError(errors.New("boom")) {
		t.Error("Expected plain error not to be a validation error")
	}
}
