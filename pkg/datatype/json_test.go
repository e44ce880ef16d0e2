/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

func TestJSON_ValidInstance(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"size": map[string]any{"type": "integer"},
		},
	}

	col := diag.NewCollector()
	value := map[string]any{"name": "web", "size": 3}
	got := JSON(col, value, schema)
	assert.Equal(t, value, got)
	assert.True(t, col.Empty())
}

func TestJSON_InstanceError(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"name"},
	}

	col := diag.NewCollector()
	JSON(col, map[string]any{"size": 3}, schema)
	recs := col.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, diag.CodeValidationError, recs[0].Code)
	assert.Contains(t, recs[0].Message, "instance error")
}

func TestJSON_SchemaError(t *testing.T) {
	// "type" must be a string or array of strings, not a number.
	schema := map[string]any{"type": 12}

	col := diag.NewCollector()
	JSON(col, map[string]any{}, schema)
	recs := col.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, diag.CodeValidationError, recs[0].Code)
	assert.Contains(t, recs[0].Message, "schema error")
}

func TestEnum_RenameAndPassThrough(t *testing.T) {
	src := stubEnumSource{values: []any{
		map[string]any{"small": "t2.small"},
		map[string]any{"large": "t2.large"},
	}}

	col := diag.NewCollector()
	assert.Equal(t, "t2.large", Enum(col, "large", src))
	assert.True(t, col.Empty())
}

func TestEnum_UnmappedValuePassesThrough(t *testing.T) {
	src := stubEnumSource{values: []any{
		map[string]any{"small": "t2.small"},
	}}

	// No matching mapping: the original string comes back with no diagnostic.
	col := diag.NewCollector()
	assert.Equal(t, "xlarge", Enum(col, "xlarge", src))
	assert.True(t, col.Empty())
}

func TestEnum_NonStringValue(t *testing.T) {
	col := diag.NewCollector()
	got := Enum(col, 7, stubEnumSource{})
	assert.Equal(t, 7, got)
	assert.Equal(t, diag.CodeTypeMismatch, col.Records()[0].Code)
}

type stubEnumSource struct {
	values []any
}

func (s stubEnumSource) EnumValues() []any { return s.values }
