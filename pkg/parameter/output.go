/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parameter

import (
	"fmt"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// ValueKind discriminates the recognized shapes of an Output value.
type ValueKind int

const (
	// ValueUnrecognized marks a value shape this layer does not interpret.
	ValueUnrecognized ValueKind = iota

	// ValueLiteral is a literal string value.
	ValueLiteral

	// ValueAttributeRef is a reference to an attribute of a node.
	ValueAttributeRef

	// ValuePropertyRef is a reference to a property of a node.
	ValuePropertyRef
)

// ResolvedValue is the closed projection of an Output value.
type ResolvedValue struct {
	Kind      ValueKind
	Literal   string
	Node      string
	Attribute string
	Property  string
}

// Output is a declared template output. Unlike Input it keeps its raw
// attribute mapping, deliberately looser than a Schema.
type Output struct {
	Name string

	attrs any
	col   *diag.Collector
}

// NewOutput constructs an Output from a name and a raw attribute value.
// Validation is deferred to Validate so batch callers control when
// diagnostics are produced.
func NewOutput(col *diag.Collector, name string, attrs any) *Output {
	return &Output{Name: name, attrs: attrs, col: col}
}

// Validate checks the attribute mapping: a structural failure (attrs not a
// mapping), a missing value key, and unrecognized field names each record
// their own diagnostic, independently.
func (o *Output) Validate() {
	before := o.col.Len()

	m, ok := o.attrs.(map[string]any)
	if !ok {
		o.col.Add(diag.MissingRequiredField(o.what(), fieldValue))
	}
	if o.Value() == nil {
		o.col.Add(diag.MissingRequiredField(o.what(), fieldValue))
	}
	for name := range m {
		if !recognizedField(name, outputFields) {
			o.col.Add(diag.UnknownField(o.what(), name, outputFields))
		}
	}

	if o.col.Len() > before {
		outputValidationTotal.WithLabelValues(statusInvalid).Inc()
	} else {
		outputValidationTotal.WithLabelValues(statusValid).Inc()
	}
}

// Description returns the declared description.
func (o *Output) Description() string {
	s, _ := o.attr(fieldDescription).(string)
	return s
}

// Default returns the declared default value.
func (o *Output) Default() any { return o.attr(fieldDefault) }

// Hidden reports whether the output is hidden. Defaults to false.
func (o *Output) Hidden() bool {
	b, _ := o.attr(fieldHidden).(bool)
	return b
}

// Type returns the declared type tag, when any.
func (o *Output) Type() string {
	s, _ := o.attr(fieldType).(string)
	return s
}

// UIType returns the declared UI kind.
func (o *Output) UIType() string {
	s, _ := o.attr(fieldUIType).(string)
	return s
}

// Required reports whether the output is required. Defaults to false.
func (o *Output) Required() bool {
	b, _ := o.attr(fieldRequired).(bool)
	return b
}

// Constraints returns the raw constraint list, when any.
func (o *Output) Constraints() any { return o.attr(fieldConstraints) }

// Value returns the raw value: a literal, an external reference, or
// whatever else the document carried.
func (o *Output) Value() any { return o.attr(fieldValue) }

// Resolved projects the value onto the closed variant: literal string,
// attribute reference, property reference, or unrecognized.
func (o *Output) Resolved() ResolvedValue {
	switch v := o.Value().(type) {
	case AttributeRef:
		return ResolvedValue{
			Kind:      ValueAttributeRef,
			Node:      v.NodeTemplateName(),
			Attribute: v.AttributeName(),
		}
	case PropertyRef:
		return ResolvedValue{
			Kind:     ValuePropertyRef,
			Node:     v.NodeTemplateName(),
			Property: v.PropertyName(),
		}
	case string:
		return ResolvedValue{Kind: ValueLiteral, Literal: v}
	default:
		return ResolvedValue{Kind: ValueUnrecognized}
	}
}

// Values reduces the value to its mapping view: {value: <literal>} for a
// literal, {node, attribute|property} for a reference, empty for anything
// else. Unrecognized shapes are the caller's problem, not an error here.
func (o *Output) Values() map[string]any {
	switch r := o.Resolved(); r.Kind {
	case ValueLiteral:
		return map[string]any{"value": r.Literal}
	case ValueAttributeRef:
		return map[string]any{"node": r.Node, "attribute": r.Attribute}
	case ValuePropertyRef:
		return map[string]any{"node": r.Node, "property": r.Property}
	default:
		return map[string]any{}
	}
}

// attr fetches a raw attribute, tolerating a malformed container.
func (o *Output) attr(name string) any {
	m, ok := o.attrs.(map[string]any)
	if !ok {
		return nil
	}
	return m[name]
}

func (o *Output) what() string {
	return fmt.Sprintf("Output %q", o.Name)
}
