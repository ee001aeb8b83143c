package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Canonical textual UUID: 8-4-4-4-12 hex groups, version nibble 1-5,
	// variant nibble 8/9/a/b. Anonymous submissions are trusted only this far.
	uuidRegex = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	// Simple local@domain.tld shape, same pattern the contact form enforces
	// client-side. Intentionally loose: deliverability is the mailer's problem.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("uuid_v15", UUIDField)
	_ = v.RegisterValidation("simple_email", SimpleEmailField)
}

// UUIDField validates that a string field is a canonical-format UUID
func UUIDField(fl validator.FieldLevel) bool {
	return IsUUID(fl.Field().String())
}

// SimpleEmailField validates that a string field looks like local@domain.tld
func SimpleEmailField(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// IsUUID reports whether s is a canonical-format UUID string
func IsUUID(s string) bool {
	return uuidRegex.MatchString(s)
}

// IsEmail reports whether s matches the local@domain.tld pattern
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}
