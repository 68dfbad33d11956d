package validation

import (
	"strings"
	"unicode/utf8"
)

// Subject name bounds
var (
	SubjectNameMaxLength = 100
)

// StringValidation checks a whitespace-trimmed string
type StringValidation struct {
	Value    string
	MaxLen   int
	Required bool
}

// NewStringValidation creates a new string validation. The value is trimmed.
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    strings.TrimSpace(value),
		Required: true,
	}
}

// WithMaxLength sets maximum length in runes
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}
	if v.MaxLen > 0 && utf8.RuneCountInString(v.Value) > v.MaxLen {
		return false
	}
	return true
}

// RangeValidation checks an integer against inclusive bounds
type RangeValidation struct {
	Value int
	Min   int
	Max   int
}

// NewRangeValidation creates a range validation with bounds 0..0
func NewRangeValidation(value int) *RangeValidation {
	return &RangeValidation{Value: value}
}

// Between sets both bounds
func (v *RangeValidation) Between(min, max int) *RangeValidation {
	v.Min, v.Max = min, max
	return v
}

// Validate performs validation
func (v *RangeValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}
