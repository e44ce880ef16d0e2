/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package datatype

import (
	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// Unbounded is the sentinel marking an open range bound.
const Unbounded = "UNBOUNDED"

// Range checks that rng is a two-element ordered sequence whose bounds are
// numeric or the UNBOUNDED sentinel, with min not exceeding max when both
// bounds are numeric. min == max is allowed.
func Range(col *diag.Collector, rng any) any {
	List(col, rng)
	bounds, ok := rng.([]any)
	if !ok || len(bounds) != 2 {
		col.Add(diag.InvalidRange(rng))
		return rng
	}

	min, minBounded := boundValue(col, bounds[0])
	max, maxBounded := boundValue(col, bounds[1])

	if minBounded && maxBounded && min > max {
		col.Add(diag.InvalidRange(rng))
	}
	return rng
}

// ValueInRange checks that value is numeric and inside the given range.
// UNBOUNDED bounds are never checked. The range itself is validated first.
func ValueInRange(col *diag.Collector, value any, rng any, name string) any {
	Numeric(col, value)
	Range(col, rng)

	v, ok := asFloat(value)
	if !ok {
		return value
	}
	bounds, ok := rng.([]any)
	if !ok || len(bounds) != 2 {
		return value
	}

	// Equality with a bound is valid on both ends.
	if min, bounded := numericBound(bounds[0]); bounded && v < min {
		col.Add(diag.OutOfRange(name, value, bounds[0], bounds[1]))
	}
	if max, bounded := numericBound(bounds[1]); bounded && v > max {
		col.Add(diag.OutOfRange(name, value, bounds[0], bounds[1]))
	}
	return value
}

// boundValue validates a single range bound, recording a diagnostic for
// non-numeric bounds that are not the UNBOUNDED sentinel.
func boundValue(col *diag.Collector, bound any) (float64, bool) {
	if bound == Unbounded {
		return 0, false
	}
	Numeric(col, bound)
	return numericBound(bound)
}

// numericBound returns the bound as float64 when it is numeric.
func numericBound(bound any) (float64, bool) {
	if bound == Unbounded {
		return 0, false
	}
	return asFloat(bound)
}
