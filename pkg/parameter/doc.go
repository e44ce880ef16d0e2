/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package parameter models the declared parameters of a template: Input and
// Output entities wrapping a type schema.
//
// Construction eagerly validates declared field names and the type tag,
// accumulating every problem into the shared diagnostic collector so a
// single malformed declaration reports all of its defects in one pass.
// Value validation happens later, zero or more times, routing through an
// external type resolver and the primitive validators in pkg/datatype, then
// through every attached constraint. Constraints are independent: all of
// them run even when an earlier one fails.
package parameter
