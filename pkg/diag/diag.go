/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package diag provides the shared diagnostic sink used by the template
// validation core. Validators record typed diagnostics and keep going, so a
// single pass over a template surfaces every defect instead of stopping at
// the first one.
package diag

import (
	"fmt"
	"sync"
)

// Code identifies the kind of a validation diagnostic.
type Code string

// Diagnostic codes as constants
const (
	CodeUnknownField         Code = "UNKNOWN_FIELD"
	CodeInvalidType          Code = "INVALID_TYPE"
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"
	CodeTypeMismatch         Code = "TYPE_MISMATCH"
	CodeInvalidRange         Code = "INVALID_RANGE"
	CodeOutOfRange           Code = "OUT_OF_RANGE"
	CodeInvalidTimestamp     Code = "INVALID_TIMESTAMP"
	CodeValidationError      Code = "VALIDATION_ERROR"
	CodeInvalidVersion       Code = "INVALID_VERSION"
)

// Record is a single typed validation diagnostic.
type Record struct {
	// Code classifies the failure.
	Code Code `json:"code" yaml:"code"`

	// What names the entity the diagnostic refers to (e.g. `Input "cpus"`).
	What string `json:"what,omitempty" yaml:"what,omitempty"`

	// Field is the offending field name, when the failure is about a field.
	Field string `json:"field,omitempty" yaml:"field,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`

	// Suggestion carries a "did you mean" hint for unknown fields.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Error implements the error interface so records can flow through error
// plumbing when a caller wants them to.
func (r *Record) Error() string {
	if r.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %q?)", r.Code, r.Message, r.Suggestion)
	}
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

// Collector accumulates diagnostic records. It is safe for concurrent use;
// validators append and continue, callers read the batch when done.
type Collector struct {
	mu      sync.Mutex
	records []*Record
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a record to the collector. Nil records are ignored.
func (c *Collector) Add(r *Record) {
	if r == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r)
}

// Records returns a copy of the accumulated records in insertion order.
func (c *Collector) Records() []*Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of accumulated records.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Empty reports whether no diagnostics have been recorded.
func (c *Collector) Empty() bool {
	return c.Len() == 0
}
