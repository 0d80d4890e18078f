package usecases

import (
	"unicode/utf8"

	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// validatePassword enforces the bcrypt-compatible length window.
func validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if len(password) > maxPasswordLength {
		return errors.NewValidationError("password must be at most 72 bytes")
	}
	return nil
}
