/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package datatype

import (
	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// EnumSource supplies the enumerated-constraint payload attached to a
// schema: a list of single-key mappings from declared value to its rename.
type EnumSource interface {
	EnumValues() []any
}

// Enum checks that value is a string and applies the schema's enum rename
// when one matches. A value with no matching mapping is returned unchanged;
// this normalization is best-effort, not a membership check.
func Enum(col *diag.Collector, value any, src EnumSource) any {
	String(col, value)
	s, ok := value.(string)
	if !ok || src == nil {
		return value
	}

	for _, entry := range src.EnumValues() {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if mapped, ok := m[s]; ok {
			return mapped
		}
	}
	return value
}
