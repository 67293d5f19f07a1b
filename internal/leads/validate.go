package leads

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minNameLength    = 2
	minMessageLength = 10
	maxFieldLength   = 320
)

// emailPattern accepts the usual local@domain.tld shape without attempting
// full RFC 5322 coverage.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError describes a single schema violation. The HTTP layer returns the
// full list so a client can fix every field in one round trip.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidEmail reports whether value looks like a deliverable email address.
func ValidEmail(value string) bool {
	return value != "" && len(value) <= maxFieldLength && emailPattern.MatchString(value)
}

// NormalizeEmail lowercases and trims an address. Every consumer of an email
// address (subscriber primary key, rate-limit identity, mail recipient) must
// see the same normalized form.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ContactForm carries the raw contact-form fields prior to persistence.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Validate returns every violated rule, never stopping at the first.
func (f ContactForm) Validate() []FieldError {
	var violations []FieldError
	if utf8.RuneCountInString(strings.TrimSpace(f.Name)) < minNameLength {
		violations = append(violations, FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	}
	if !ValidEmail(f.Email) {
		violations = append(violations, FieldError{Field: "email", Message: "Invalid email address"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Message)) < minMessageLength {
		violations = append(violations, FieldError{Field: "message", Message: "Message must be at least 10 characters"})
	}
	return violations
}

// SubscribeForm carries the raw newsletter-subscription fields.
type SubscribeForm struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate returns every violated rule.
func (f SubscribeForm) Validate() []FieldError {
	var violations []FieldError
	if !ValidEmail(f.Email) {
		violations = append(violations, FieldError{Field: "email", Message: "Invalid email address"})
	}
	return violations
}

// DownloadForm carries the raw download-request fields. Subscribe defaults
// to false when absent from the request body. Name is a pointer so an absent
// name and a present-but-empty name validate differently.
type DownloadForm struct {
	Email      string  `json:"email"`
	Name       *string `json:"name"`
	Company    string  `json:"company"`
	ResourceID string  `json:"resourceId"`
	Subscribe  bool    `json:"subscribe"`
}

// Validate returns every violated rule.
func (f DownloadForm) Validate() []FieldError {
	var violations []FieldError
	if !ValidEmail(f.Email) {
		violations = append(violations, FieldError{Field: "email", Message: "Invalid email address"})
	}
	if f.Name != nil && strings.TrimSpace(*f.Name) == "" {
		violations = append(violations, FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(f.ResourceID) == "" {
		violations = append(violations, FieldError{Field: "resourceId", Message: "Resource ID is required"})
	}
	return violations
}

// DisplayName returns the submitted name, or "" when the field was omitted.
func (f DownloadForm) DisplayName() string {
	if f.Name == nil {
		return ""
	}
	return strings.TrimSpace(*f.Name)
}
