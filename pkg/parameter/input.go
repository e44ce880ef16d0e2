/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parameter

import (
	"fmt"

	"github.com/NVIDIA/tosca-stack/pkg/datatype"
	"github.com/NVIDIA/tosca-stack/pkg/diag"
	"github.com/NVIDIA/tosca-stack/pkg/version"
)

// Input is a declared template input wrapping a type schema. Construction
// validates the schema's field names and type tag; the Input itself is
// immutable afterwards.
type Input struct {
	Name   string
	Schema *Schema

	col *diag.Collector
}

// NewInput constructs an Input from a name and a raw schema mapping.
// Every unrecognized field name and an unrecognized type tag each produce
// their own diagnostic; the checks accumulate rather than aborting early.
func NewInput(col *diag.Collector, name string, schemaDef map[string]any) *Input {
	in := &Input{
		Name:   name,
		Schema: NewSchema(col, name, schemaDef),
		col:    col,
	}
	in.validateFields()
	in.validateType()
	return in
}

// Type returns the declared type tag.
func (in *Input) Type() string { return in.Schema.Type }

// Required reports whether a value must be supplied for this input.
func (in *Input) Required() bool { return in.Schema.Required() }

// Description returns the declared description.
func (in *Input) Description() string { return in.Schema.Description }

// Default returns the declared default value.
func (in *Input) Default() any { return in.Schema.Default }

// Constraints returns the constraints attached to the schema.
func (in *Input) Constraints() []Constraint { return in.Schema.Constraints() }

// Status returns the declared status.
func (in *Input) Status() string { return in.Schema.Status }

// Title returns the declared title.
func (in *Input) Title() string { return in.Schema.Title }

// Hint returns the declared hint.
func (in *Input) Hint() string { return in.Schema.Hint }

// UI returns the declared UI metadata.
func (in *Input) UI() any { return in.Schema.UI }

// UIType returns the declared UI kind.
func (in *Input) UIType() string { return in.Schema.UIType }

// Validate validates a concrete value against the declared type and every
// attached constraint. A nil value skips type validation but constraints
// still run. The resolved (possibly coerced) value is returned; failures
// are recorded in the collector and the call never aborts early.
func (in *Input) Validate(resolver TypeResolver, value any) any {
	before := in.col.Len()

	var resolved any
	if value != nil {
		resolved = in.validateValue(resolver, value)
	}
	for _, c := range in.Schema.Constraints() {
		c.Validate(in.col, value)
	}

	if in.col.Len() > before {
		inputValidationTotal.WithLabelValues(statusInvalid).Inc()
	} else {
		inputValidationTotal.WithLabelValues(statusValid).Inc()
	}
	return resolved
}

// validateFields checks every raw schema key against the recognized input
// field set, producing one UnknownField diagnostic per offending key.
func (in *Input) validateFields() {
	for _, name := range in.Schema.Keys() {
		if !recognizedField(name, inputFields) {
			in.col.Add(diag.UnknownField(in.what(), name, inputFields))
		}
	}
}

// validateType checks the declared type tag against the recognized set.
func (in *Input) validateType() {
	for _, t := range PropertyTypes {
		if in.Schema.Type == t {
			return
		}
	}
	in.col.Add(diag.InvalidType(in.what(), in.Schema.Type))
}

// validateValue resolves the declared type and dispatches the value to the
// matching validator. Complex datatypes are probed first by exact tag, then
// under the network datatype namespace. The schema rides along only for the
// generic map-like and enumerated kinds; the other validators are
// schema-agnostic.
func (in *Input) validateValue(resolver TypeResolver, value any) any {
	if resolver != nil {
		if dt, ok := resolver.Resolve(in.Schema.Type); ok {
			return dt.ValidateValue(in.col, value)
		}
		if dt, ok := resolver.Resolve(DatatypeNetworkPrefix + in.Schema.Type); ok {
			return dt.ValidateValue(in.col, value)
		}
	}

	switch in.Schema.Type {
	case TypeNumber:
		return datatype.Numeric(in.col, value)
	case TypeInteger:
		return datatype.Integer(in.col, value)
	case TypeFloat:
		return datatype.Float(in.col, value)
	case TypeString:
		return datatype.String(in.col, value)
	case TypeBoolean:
		return datatype.Boolean(in.col, value)
	case TypeList:
		return datatype.List(in.col, value)
	case TypeMap:
		return datatype.Map(in.col, value)
	case TypeTimestamp:
		return datatype.Timestamp(in.col, value)
	case TypeRange:
		return datatype.Range(in.col, value)
	case TypeScalarUnitSize:
		return datatype.ScalarUnitSize(in.col, value)
	case TypeScalarUnitFrequency:
		return datatype.ScalarUnitFrequency(in.col, value)
	case TypeScalarUnitTime:
		return datatype.ScalarUnitTime(in.col, value)
	case TypeVersion:
		version.Parse(in.col, fmt.Sprint(value))
		return value
	case TypePortDef:
		return datatype.ValueInRange(in.col, value, []any{1, 65535}, in.Name)
	case TypeJSON:
		return datatype.JSON(in.col, value, in.Schema.EntrySchema)
	case TypeEnum:
		return datatype.Enum(in.col, value, in.Schema)
	}
	return value
}

func (in *Input) what() string {
	return fmt.Sprintf("Input %q", in.Name)
}
