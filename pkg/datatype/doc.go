/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package datatype implements the primitive value validators of the template
// language: numeric, integer, float, string, boolean, list, map, timestamp,
// JSON document, enumerated value, numeric range, and scalar-unit checks.
//
// Every validator takes the shared diagnostic collector and one value (plus,
// where relevant, a schema or range argument) and returns the value, possibly
// coerced. Failures are recorded in the collector; validators never panic and
// never stop a batch. All validators are pure with respect to their inputs
// and safe for concurrent use.
package datatype
