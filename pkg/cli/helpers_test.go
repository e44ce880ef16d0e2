/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSetValues(t *testing.T) {
	tests := []struct {
		name      string
		pairs     []string
		want      map[string]any
		wantError bool
	}{
		{
			name:  "empty",
			pairs: nil,
			want:  map[string]any{},
		},
		{
			name:  "typed scalars",
			pairs: []string{"cpus=4", "flavor=m1.large", "debug=true"},
			want:  map[string]any{"cpus": 4, "flavor": "m1.large", "debug": true},
		},
		{
			name:  "yaml list value",
			pairs: []string{"ports=[80, 443]"},
			want:  map[string]any{"ports": []any{80, 443}},
		},
		{
			name:  "empty value stays nil",
			pairs: []string{"flavor="},
			want:  map[string]any{"flavor": nil},
		},
		{
			name:      "missing separator",
			pairs:     []string{"cpus"},
			wantError: true,
		},
		{
			name:      "empty name",
			pairs:     []string{"=4"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSetValues(tt.pairs)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
