// Package validation implements request-field precondition checks.
//
// All violated fields are collected and reported together, so a caller sees
// every problem in one round trip.
package validation

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// FieldError describes a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the set of violations for one request. It implements error so
// services can return it through their regular error path; callers detect it
// with errors.As.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Add appends a violation for the given field.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Err returns the collected violations as an error, or nil if none were added.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// MinLength reports whether s is at least n characters long. Length is
// counted in runes so multi-byte input is not penalized.
func MinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// ValidEmail reports whether s is a syntactically valid bare email address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Bob <bob@x.com>"; only the bare
	// address counts.
	return addr.Address == s
}
