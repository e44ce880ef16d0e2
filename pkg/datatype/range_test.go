/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name    string
		rng     any
		wantErr bool
	}{
		{"both unbounded", []any{Unbounded, Unbounded}, false},
		{"min unbounded", []any{Unbounded, 10}, false},
		{"normal", []any{1, 10}, false},
		{"min equals max", []any{2, 2}, false},
		{"inverted", []any{5, 2}, true},
		{"too short", []any{1}, true},
		{"too long", []any{1, 2, 3}, true},
		{"not a list", "1..10", true},
		{"non numeric bound", []any{"low", 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := diag.NewCollector()
			Range(col, tt.rng)
			assert.Equal(t, tt.wantErr, !col.Empty())
		})
	}
}

func TestValueInRange(t *testing.T) {
	col := diag.NewCollector()
	ValueInRange(col, 3, []any{1, Unbounded}, "size")
	assert.True(t, col.Empty())

	// Bound equality is valid on both ends.
	ValueInRange(col, 1, []any{1, 10}, "size")
	ValueInRange(col, 10, []any{1, 10}, "size")
	assert.True(t, col.Empty())

	col = diag.NewCollector()
	ValueInRange(col, 0, []any{1, 10}, "size")
	recs := col.Records()
	assert.Equal(t, 1, len(recs))
	assert.Equal(t, diag.CodeOutOfRange, recs[0].Code)
	assert.Contains(t, recs[0].Message, `min: "1"`)
	assert.Contains(t, recs[0].Message, `max: "10"`)

	col = diag.NewCollector()
	ValueInRange(col, 99, []any{Unbounded, 10}, "size")
	assert.Equal(t, diag.CodeOutOfRange, col.Records()[0].Code)

	// Non-numeric value records a mismatch, not an out-of-range.
	col = diag.NewCollector()
	ValueInRange(col, "three", []any{1, 10}, "size")
	assert.Equal(t, diag.CodeTypeMismatch, col.Records()[0].Code)
}
