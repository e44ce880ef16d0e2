/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parameter

import (
	"fmt"
	"reflect"

	"github.com/NVIDIA/tosca-stack/pkg/datatype"
	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// Constraint is an independent rule attached to a schema, invoked once per
// validation call. Implementations record failures in the collector and
// never abort the batch.
type Constraint interface {
	Validate(col *diag.Collector, value any)
}

// Constraint keys recognized in raw schema definitions.
const (
	constraintValidValues = "valid_values"
	constraintInRange     = "in_range"
	constraintEnum        = "enum"
)

// parseConstraints lifts the raw constraint list of a schema into constraint
// objects. Constraint kinds this core does not know are skipped.
func parseConstraints(col *diag.Collector, name string, raw any) []Constraint {
	list, ok := raw.([]any)
	if !ok {
		if raw != nil {
			col.Add(diag.TypeMismatch(raw, "a list"))
		}
		return nil
	}

	var out []Constraint
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		for key, payload := range m {
			switch key {
			case constraintValidValues:
				values, _ := payload.([]any)
				out = append(out, &ValidValues{Name: name, Values: values})
			case constraintInRange:
				rng, _ := payload.([]any)
				out = append(out, &InRange{Name: name, Range: rng})
			case constraintEnum:
				values, _ := payload.([]any)
				out = append(out, &EnumRename{Values: values})
			}
		}
	}
	return out
}

// ValidValues checks membership of a value in a fixed list.
type ValidValues struct {
	Name   string
	Values []any
}

// Validate records a ValidationError when the value is not one of the
// declared values.
func (c *ValidValues) Validate(col *diag.Collector, value any) {
	for _, v := range c.Values {
		if reflect.DeepEqual(v, value) {
			return
		}
	}
	col.Add(diag.ConstraintViolation(c.Name,
		fmt.Sprintf("the value %q of property %q is not in valid_values %v",
			fmt.Sprint(value), c.Name, c.Values)))
}

// InRange checks that a numeric value lies inside the declared bounds.
type InRange struct {
	Name  string
	Range []any
}

// Validate delegates to the range validators.
func (c *InRange) Validate(col *diag.Collector, value any) {
	datatype.ValueInRange(col, value, anySlice(c.Range), c.Name)
}

// EnumRename carries the enumerated-constraint payload: a list of single-key
// mappings from declared value to its rename. The rename itself is applied
// by the enum validator; as a constraint this is not a membership check.
type EnumRename struct {
	Values []any
}

// Validate is a no-op: enum normalization is best-effort.
func (c *EnumRename) Validate(_ *diag.Collector, _ any) {}

func anySlice(in []any) any {
	if in == nil {
		return []any{}
	}
	return in
}
