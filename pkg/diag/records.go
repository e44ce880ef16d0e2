/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package diag

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how far an unknown field may be from a
// recognized one before no suggestion is offered.
const maxSuggestionDistance = 3

// UnknownField builds a record for an unrecognized schema or attribute key.
// When the key is close to a recognized field name, the record carries the
// nearest one as a suggestion.
func UnknownField(what, field string, recognized []string) *Record {
	return &Record{
		Code:       CodeUnknownField,
		What:       what,
		Field:      field,
		Message:    fmt.Sprintf("%s contains unknown field %q", what, field),
		Suggestion: nearestField(field, recognized),
	}
}

// InvalidType builds a record for an unrecognized type tag.
func InvalidType(what, typeTag string) *Record {
	return &Record{
		Code:    CodeInvalidType,
		What:    what,
		Message: fmt.Sprintf("%s declares invalid type %q", what, typeTag),
	}
}

// MissingRequiredField builds a record for a required key that is absent or
// whose container is malformed.
func MissingRequiredField(what, field string) *Record {
	return &Record{
		Code:    CodeMissingRequiredField,
		What:    what,
		Field:   field,
		Message: fmt.Sprintf("%s is missing required field %q", what, field),
	}
}

// TypeMismatch builds a record for a value whose runtime shape does not
// match its declared primitive kind.
func TypeMismatch(value any, want string) *Record {
	return &Record{
		Code:    CodeTypeMismatch,
		Message: fmt.Sprintf("%q is not %s", fmt.Sprint(value), want),
	}
}

// InvalidRange builds a record for a malformed range definition.
func InvalidRange(rng any) *Record {
	return &Record{
		Code:    CodeInvalidRange,
		Message: fmt.Sprintf("%q is not a valid range", fmt.Sprint(rng)),
	}
}

// OutOfRange builds a record for a numeric value outside its declared bounds.
func OutOfRange(name string, value, min, max any) *Record {
	return &Record{
		Code:  CodeOutOfRange,
		What:  name,
		Field: name,
		Message: fmt.Sprintf("the value %q of property %q is out of range (min: %q, max: %q)",
			fmt.Sprint(value), name, fmt.Sprint(min), fmt.Sprint(max)),
	}
}

// InvalidTimestamp builds a record for a value that does not parse as a
// calendar timestamp, preserving the underlying parser message.
func InvalidTimestamp(value any, cause error) *Record {
	msg := fmt.Sprintf("%q is not a valid timestamp", fmt.Sprint(value))
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &Record{
		Code:    CodeInvalidTimestamp,
		Message: msg,
	}
}

// JSONValidation builds a record for a JSON Schema failure. The kind
// distinguishes instance errors from schema errors.
func JSONValidation(kind string, cause error) *Record {
	return &Record{
		Code:    CodeValidationError,
		Message: fmt.Sprintf("%s: %v", kind, cause),
	}
}

// ConstraintViolation builds a record for a value that breaks an attached
// constraint.
func ConstraintViolation(name, message string) *Record {
	return &Record{
		Code:    CodeValidationError,
		What:    name,
		Message: message,
	}
}

// InvalidVersion builds a record for a version string that fails the grammar
// or one of its cross-field rules.
func InvalidVersion(version string) *Record {
	return &Record{
		Code:    CodeInvalidVersion,
		Message: fmt.Sprintf("value %q does not respect the version grammar", version),
	}
}

// nearestField returns the recognized field closest to name, or "" when
// nothing is within maxSuggestionDistance.
func nearestField(name string, recognized []string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, candidate := range recognized {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
