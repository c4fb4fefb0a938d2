// Package validation checks submitted form fields before they reach the backend.
package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validator returns an error message for v, or "" when v is acceptable.
type Validator func(v string) string

// Required rejects blank values and values longer than maxLen runes.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// Optional limits the length of a value that may be blank.
func Optional(fieldName string, maxLen int) Validator {
	return func(v string) string {
		if utf8.RuneCountInString(strings.TrimSpace(v)) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// NonNegativeInt accepts blank or a whole number of at least zero.
func NonNegativeInt(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fieldName + " must be a whole number."
		}
		if n < 0 {
			return fieldName + " cannot be negative."
		}
		return ""
	}
}

// Email accepts a single bare address.
func Email(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v {
			return "Enter a valid " + strings.ToLower(fieldName) + "."
		}
		return ""
	}
}

// OptionalURL accepts blank or an absolute http(s) URL.
func OptionalURL(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		u, err := url.Parse(v)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fieldName + " must be a valid http(s) URL."
		}
		return ""
	}
}

// OneOf accepts exactly one of options.
func OneOf(fieldName string, options ...string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		for _, opt := range options {
			if v == opt {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(options, ", "))
	}
}

// FieldValidator accumulates the first error of each field.
type FieldValidator struct {
	errors map[string]string
}

// New creates a FieldValidator.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate runs validators against value, stopping at the first failure.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	for _, v := range validators {
		if msg := v(value); msg != "" {
			fv.errors[field] = msg
			break
		}
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}

// Valid reports whether no field failed.
func (fv *FieldValidator) Valid() bool { return len(fv.errors) == 0 }
