/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package datatype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// StrToNum converts a string representation of a number into a numeric type.
// Numeric values pass through unchanged. Integral strings become int64,
// everything else that parses becomes float64.
func StrToNum(value any) (any, error) {
	if _, ok := asFloat(value); ok {
		return value, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%q is not a number", fmt.Sprint(value))
	}
	if i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

// Numeric checks that value is a number of any width. The value is returned
// unchanged either way.
func Numeric(col *diag.Collector, value any) any {
	if _, ok := asFloat(value); !ok {
		col.Add(diag.TypeMismatch(value, "a numeric"))
	}
	return value
}

// Integer checks that value is an integer. Integral strings are coerced and
// floats are truncated toward zero; anything else records a TypeMismatch and
// the original value is returned.
func Integer(col *diag.Collector, value any) any {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return value
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return i
		}
	}
	col.Add(diag.TypeMismatch(value, "an integer"))
	return value
}

// Float checks that value is a floating point number.
func Float(col *diag.Collector, value any) any {
	switch value.(type) {
	case float32, float64:
		return value
	}
	col.Add(diag.TypeMismatch(value, "a float"))
	return value
}

// String checks that value is a string.
func String(col *diag.Collector, value any) any {
	if _, ok := value.(string); !ok {
		col.Add(diag.TypeMismatch(value, "a string"))
	}
	return value
}

// List checks that value is a list.
func List(col *diag.Collector, value any) any {
	if _, ok := value.([]any); !ok {
		col.Add(diag.TypeMismatch(value, "a list"))
	}
	return value
}

// Map checks that value is a mapping with string keys.
func Map(col *diag.Collector, value any) any {
	if _, ok := value.(map[string]any); !ok {
		col.Add(diag.TypeMismatch(value, "a map"))
	}
	return value
}

// Boolean checks that value is a boolean. The case-insensitive strings
// "true" and "false" are coerced to the boolean value.
func Boolean(col *diag.Collector, value any) any {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(v) {
		case "true":
			return true
		case "false":
			return false
		}
	}
	col.Add(diag.TypeMismatch(value, "a boolean"))
	return value
}

// asFloat reports whether value is numeric and returns it widened to float64.
// Booleans are not numeric.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
