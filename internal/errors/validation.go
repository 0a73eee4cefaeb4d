package errors

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strings"
)

// ValidationBuilder collects per-field messages so a form can show every
// problem at once. Build returns nil when nothing was recorded.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a message against field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf records a formatted message against field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records that field is missing
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns an InvalidArgument error carrying the field messages, or nil
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	return InvalidArgument(summarize(vb.fields)).WithMeta(metaValidationErrors, vb.fields)
}

// summarize renders "validation failed: a: x; b: y, z" in field order
func summarize(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = field + ": " + strings.Join(fields[field], ", ")
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateRequired records a blank (whitespace only) value
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMaxLength counts runes, not bytes
func ValidateMaxLength(field, value string, maxValue int, vb *ValidationBuilder) {
	if len([]rune(value)) > maxValue {
		vb.Fieldf(field, "must be no more than %d characters", maxValue)
	}
}

// ValidateRange checks minValue <= value <= maxValue
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateOptionalRange checks the range only when the value is present
func ValidateOptionalRange(field string, value *int, minValue, maxValue int, vb *ValidationBuilder) {
	if value != nil {
		ValidateRange(field, *value, minValue, maxValue, vb)
	}
}

// ValidateEnum checks value against the known tags
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}

// ValidateOptionalEnum checks the enum only when the value is present
func ValidateOptionalEnum(field string, value *string, allowed []string, vb *ValidationBuilder) {
	if value != nil {
		ValidateEnum(field, *value, allowed, vb)
	}
}

// ValidateOptionalURL checks that a present value is an absolute http(s) URL
func ValidateOptionalURL(field string, value *string, vb *ValidationBuilder) {
	if value == nil {
		return
	}
	u, err := url.Parse(*value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		vb.Field(field, "must be an http or https URL")
	}
}
