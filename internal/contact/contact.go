// Package contact implements the contact-form intake pipeline: payload
// validation and validate-then-persist submission handling.
package contact

import (
	"fmt"
	"net/mail"
	"strings"
)

// Input is one contact-form payload before validation.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ValidationError describes why an Input was rejected. The field name keys
// into the form dictionary so the UI can point at the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Normalize trims surrounding whitespace from every field.
func (in Input) Normalize() Input {
	return Input{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}
}

// Validate enforces the submission schema: non-empty name and message, a
// syntactically valid email address, and an optional phone. The first
// violation rejects the whole payload.
func Validate(in Input) (Input, error) {
	in = in.Normalize()
	if in.Name == "" {
		return Input{}, &ValidationError{Field: "name", Reason: "name is required"}
	}
	if in.Email == "" {
		return Input{}, &ValidationError{Field: "email", Reason: "email is required"}
	}
	if !validEmail(in.Email) {
		return Input{}, &ValidationError{Field: "email", Reason: "email address is not valid"}
	}
	if in.Message == "" {
		return Input{}, &ValidationError{Field: "message", Reason: "message is required"}
	}
	return in, nil
}

// validEmail accepts a bare addr-spec such as jane@example.com. Display names
// and address groups are rejected even though net/mail would parse them.
func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	return addr.Address == value
}
