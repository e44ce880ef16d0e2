/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parameter

import (
	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// DatatypeNetworkPrefix is the namespace probed as a fallback when a type
// tag does not resolve as-is.
const DatatypeNetworkPrefix = "tosca.datatypes.network."

// ResolvedDatatype is a named complex datatype definition produced by the
// external type resolver.
type ResolvedDatatype interface {
	// ValidateValue checks a concrete value against the datatype definition,
	// recording diagnostics and returning the value, possibly coerced.
	ValidateValue(col *diag.Collector, value any) any
}

// TypeResolver resolves a type tag to a built-in datatype definition, or
// reports that the tag names no complex datatype (the case for primitives).
type TypeResolver interface {
	Resolve(typeTag string) (ResolvedDatatype, bool)
}

// AttributeRef is the shape of an external "attribute of a node" reference
// that an Output value may hold instead of a literal.
type AttributeRef interface {
	NodeTemplateName() string
	AttributeName() string
}

// PropertyRef is the shape of an external "property of a node" reference.
type PropertyRef interface {
	NodeTemplateName() string
	PropertyName() string
}
