package domain

import (
	"fmt"
	"strings"
)

// Field length bounds
const (
	MaxAccountCodeLength      = 20
	MaxAccountNameLength      = 255
	MaxReferenceLength        = 50
	MaxDescriptionLength      = 500
	MaxEntryDescriptionLength = 255
)

// ValidateAccountCode validates a chart-of-accounts code.
func ValidateAccountCode(code string) error {
	code = strings.TrimSpace(code)

	if code == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrInvalidAccountCode)
	}

	if len(code) > MaxAccountCodeLength {
		return fmt.Errorf("%w: code exceeds %d characters", ErrInvalidAccountCode, MaxAccountCodeLength)
	}

	return nil
}

// ValidateAccountName validates an account display name.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidateReference validates a transaction reference string.
func ValidateReference(reference string) error {
	reference = strings.TrimSpace(reference)

	if reference == "" {
		return fmt.Errorf("%w: reference cannot be empty", ErrInvalidReference)
	}

	if len(reference) > MaxReferenceLength {
		return fmt.Errorf("%w: reference exceeds %d characters", ErrInvalidReference, MaxReferenceLength)
	}

	return nil
}

// ValidateDescription validates a transaction description.
func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)

	if description == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidDescription)
	}

	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidateEntryDescription validates an optional entry line description.
func ValidateEntryDescription(description *string) error {
	if description == nil {
		return nil
	}

	if len(*description) > MaxEntryDescriptionLength {
		return fmt.Errorf("%w: entry description exceeds %d characters", ErrInvalidDescription, MaxEntryDescriptionLength)
	}

	return nil
}
