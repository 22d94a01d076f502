package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/kbukum/github2/errors"
)

const maxLoginLength = 39

var (
	loginPattern      = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)
	repositoryPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// Validator accumulates field errors across chained checks:
//
//	err := validation.New().Login("user", user).Repository("repo", repo).Err()
type Validator struct {
	fields []FieldError
}

// FieldError is one failed check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New starts an empty validator.
func New() *Validator { return &Validator{} }

// AddError records a failed check.
func (v *Validator) AddError(field, message string) {
	v.fields = append(v.fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool { return len(v.fields) > 0 }

// Errors returns the failed checks in the order they ran.
func (v *Validator) Errors() []FieldError { return v.fields }

// Validate folds the failures into one INVALID_INPUT error whose message
// lists "field: message" pairs. It returns nil when every check passed.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}
	parts := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return errors.Validation(strings.Join(parts, "; ")).WithDetail("fields", v.fields)
}

// Err is Validate as a plain error, nil when there is nothing to report.
func (v *Validator) Err() error {
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "is required")
	}
	return v
}

// Login checks that value is a well-formed account name.
func (v *Validator) Login(field, value string) *Validator {
	switch {
	case strings.TrimSpace(value) == "":
		v.AddError(field, "is required")
	case len(value) > maxLoginLength:
		v.AddError(field, fmt.Sprintf("must be %d characters or less", maxLoginLength))
	case !loginPattern.MatchString(value):
		v.AddError(field, "may only contain alphanumerics and inner hyphens")
	}
	return v
}

// Repository checks that value is a well-formed repository name.
func (v *Validator) Repository(field, value string) *Validator {
	switch {
	case strings.TrimSpace(value) == "":
		v.AddError(field, "is required")
	case value == "." || value == "..":
		v.AddError(field, "is reserved")
	case !repositoryPattern.MatchString(value):
		v.AddError(field, "may only contain alphanumerics, '.', '-' and '_'")
	}
	return v
}

// MaxLength checks if a string is within max length.
func (v *Validator) MaxLength(field, value string, maxLen int) *Validator {
	if len(value) > maxLen {
		v.AddError(field, fmt.Sprintf("must be %d characters or less", maxLen))
	}
	return v
}

// OneOf checks if a value is one of the allowed values. Empty values pass.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" || slices.Contains(allowed, value) {
		return v
	}
	v.AddError(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// IssueNumber checks that n can name an issue.
func (v *Validator) IssueNumber(field string, n int) *Validator {
	if n <= 0 {
		v.AddError(field, "must be a positive issue number")
	}
	return v
}

// Custom records message for field unless condition holds.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Required is the single-field form of Validator.Required.
func Required(field, value string) error {
	return New().Required(field, value).Err()
}
