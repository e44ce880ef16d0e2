/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"fmt"

	"github.com/NVIDIA/tosca-stack/pkg/datatype"
	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// Datatype is one built-in datatype definition.
type Datatype struct {
	Name        string           `yaml:"-"`
	Description string           `yaml:"description"`
	DerivedFrom string           `yaml:"derived_from"`
	Properties  map[string]*Prop `yaml:"properties"`
	Constraints []map[string]any `yaml:"constraints"`

	reg *Registry
}

// Prop is a property declaration inside a datatype definition.
type Prop struct {
	Type     string `yaml:"type"`
	Required *bool  `yaml:"required"`
}

// IsRequired reports whether the property must be present. Properties are
// required unless declared otherwise.
func (p *Prop) IsRequired() bool {
	return p.Required == nil || *p.Required
}

// ValidateValue checks a concrete value against the datatype definition.
// Definitions with properties expect a mapping: unknown keys, missing
// required keys, and per-property type mismatches each record their own
// diagnostic. Definitions derived from a primitive validate the value as
// that primitive plus any attached range constraint.
func (dt *Datatype) ValidateValue(col *diag.Collector, value any) any {
	if len(dt.Properties) == 0 {
		return dt.validateDerived(col, value)
	}

	m, ok := value.(map[string]any)
	if !ok {
		col.Add(diag.TypeMismatch(value, fmt.Sprintf("a value of datatype %q", dt.Name)))
		return value
	}

	what := fmt.Sprintf("Datatype %q", dt.Name)
	for key := range m {
		if _, known := dt.Properties[key]; !known {
			col.Add(diag.UnknownField(what, key, dt.propertyNames()))
		}
	}
	for name, prop := range dt.Properties {
		v, present := m[name]
		if !present {
			if prop.IsRequired() {
				col.Add(diag.MissingRequiredField(what, name))
			}
			continue
		}
		dt.validateProperty(col, prop, v)
	}
	return value
}

// validateDerived validates a value for a datatype with no properties of
// its own, falling back to the primitive it derives from.
func (dt *Datatype) validateDerived(col *diag.Collector, value any) any {
	switch dt.DerivedFrom {
	case "integer":
		value = datatype.Integer(col, value)
		if rng, ok := dt.inRange(); ok {
			datatype.ValueInRange(col, value, rng, dt.Name)
		}
	case "string":
		value = datatype.String(col, value)
	case "float":
		value = datatype.Float(col, value)
	case "boolean":
		value = datatype.Boolean(col, value)
	}
	return value
}

// validateProperty dispatches one property value by its declared type,
// resolving nested datatype tags through the registry.
func (dt *Datatype) validateProperty(col *diag.Collector, prop *Prop, value any) {
	switch prop.Type {
	case "string":
		datatype.String(col, value)
	case "integer":
		datatype.Integer(col, value)
	case "float":
		datatype.Float(col, value)
	case "boolean":
		datatype.Boolean(col, value)
	case "list":
		datatype.List(col, value)
	case "map":
		datatype.Map(col, value)
	case "range":
		datatype.Range(col, value)
	case "timestamp":
		datatype.Timestamp(col, value)
	default:
		if dt.reg == nil {
			return
		}
		nested, ok := dt.reg.Resolve(prop.Type)
		if !ok {
			nested, ok = dt.reg.Resolve("tosca.datatypes.network." + prop.Type)
		}
		if ok {
			nested.ValidateValue(col, value)
		}
	}
}

// inRange extracts an in_range constraint payload when one is declared.
func (dt *Datatype) inRange() (any, bool) {
	for _, c := range dt.Constraints {
		if rng, ok := c["in_range"]; ok {
			return rng, true
		}
	}
	return nil, false
}

func (dt *Datatype) propertyNames() []string {
	names := make([]string, 0, len(dt.Properties))
	for n := range dt.Properties {
		names = append(names, n)
	}
	return names
}
