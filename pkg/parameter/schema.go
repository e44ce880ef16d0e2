/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parameter

import (
	"fmt"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// Recognized type tags for declared parameters.
const (
	TypeInteger             = "integer"
	TypeString              = "string"
	TypeBoolean             = "boolean"
	TypeFloat               = "float"
	TypeRange               = "range"
	TypeNumber              = "number"
	TypeTimestamp           = "timestamp"
	TypeList                = "list"
	TypeMap                 = "map"
	TypeScalarUnitSize      = "scalar-unit.size"
	TypeScalarUnitFrequency = "scalar-unit.frequency"
	TypeScalarUnitTime      = "scalar-unit.time"
	TypeVersion             = "version"
	TypePortDef             = "PortDef"
	TypePortSpec            = "PortSpec"
	TypeJSON                = "json"
	TypeEnum                = "enum"
)

// PropertyTypes is the set of recognized type tags.
var PropertyTypes = []string{
	TypeInteger, TypeString, TypeBoolean, TypeFloat, TypeRange, TypeNumber,
	TypeTimestamp, TypeList, TypeMap, TypeScalarUnitSize,
	TypeScalarUnitFrequency, TypeScalarUnitTime, TypeVersion, TypePortDef,
	TypePortSpec, TypeJSON, TypeEnum,
}

// Schema is the declarative description of a parameter value: its expected
// type, constraints, and metadata. It is read-only once constructed.
type Schema struct {
	Name string

	Type        string
	Description string
	Default     any
	Status      string
	Title       string
	Hint        string
	UI          any
	UIType      string
	EntrySchema any

	required    *bool
	constraints []Constraint
	raw         map[string]any
}

// NewSchema parses a raw schema mapping. A missing type tag records a
// MissingRequiredField diagnostic; the rest of the fields are lifted as-is.
func NewSchema(col *diag.Collector, name string, def map[string]any) *Schema {
	s := &Schema{Name: name, raw: def}
	if def == nil {
		col.Add(diag.MissingRequiredField(fmt.Sprintf("Schema %q", name), fieldType))
		return s
	}

	if _, present := def[fieldType]; !present {
		col.Add(diag.MissingRequiredField(fmt.Sprintf("Schema %q", name), fieldType))
	}
	s.Type, _ = def[fieldType].(string)
	s.Description, _ = def[fieldDescription].(string)
	s.Default = def[fieldDefault]
	s.Status, _ = def[fieldStatus].(string)
	s.Title, _ = def[fieldTitle].(string)
	s.Hint, _ = def[fieldHint].(string)
	s.UI = def[fieldUI]
	s.UIType, _ = def[fieldUIType].(string)
	s.EntrySchema = def[fieldEntrySchema]

	if r, ok := def[fieldRequired].(bool); ok {
		s.required = &r
	}
	s.constraints = parseConstraints(col, name, def[fieldConstraints])
	return s
}

// Required reports whether a value must be supplied. Parameters are required
// unless the schema says otherwise.
func (s *Schema) Required() bool {
	if s.required == nil {
		return true
	}
	return *s.required
}

// Constraints returns the constraint objects attached to the schema.
func (s *Schema) Constraints() []Constraint {
	return s.constraints
}

// EnumValues returns the enumerated-constraint payload when the schema's
// first constraint carries one, satisfying datatype.EnumSource.
func (s *Schema) EnumValues() []any {
	if len(s.constraints) == 0 {
		return nil
	}
	if e, ok := s.constraints[0].(*EnumRename); ok {
		return e.Values
	}
	return nil
}

// Keys returns the raw schema field names.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.raw))
	for k := range s.raw {
		keys = append(keys, k)
	}
	return keys
}
