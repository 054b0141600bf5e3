// Package validation provides input validation helpers shared by the
// wizard, enrollment, and handler layers.
package validation

import (
	"strings"
)

// Validator collects field-level validation errors.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Required checks that a string is non-empty after trimming.
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// Email checks the email shape.
func (v *Validator) Email(field, email string) {
	v.Check(ValidEmail(email), field, "must be a valid email address")
}

// ValidEmail applies a permissive email shape check: a non-empty local
// part, exactly one "@", and a dot somewhere in the domain. Anything
// stricter rejects real addresses; full RFC validation belongs to the
// mail provider.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at < 1 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
