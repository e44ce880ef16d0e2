/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package diag

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_AccumulatesInOrder(t *testing.T) {
	c := NewCollector()
	require.True(t, c.Empty())

	c.Add(InvalidType(`Input "a"`, "bogus"))
	c.Add(MissingRequiredField(`Output "b"`, "value"))
	c.Add(nil) // ignored

	recs := c.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, CodeInvalidType, recs[0].Code)
	assert.Equal(t, CodeMissingRequiredField, recs[1].Code)
	assert.Equal(t, "value", recs[1].Field)
}

func TestCollector_ConcurrentAdds(t *testing.T) {
	c := NewCollector()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			c.Add(TypeMismatch("x", "an integer"))
		}()
	}
	wg.Wait()

	assert.Equal(t, n, c.Len())
}

func TestUnknownField_Suggestion(t *testing.T) {
	recognized := []string{"type", "description", "default", "constraints", "required"}

	r := UnknownField(`Input "cpus"`, "requird", recognized)
	assert.Equal(t, "required", r.Suggestion)
	assert.Contains(t, r.Error(), "did you mean")

	// Far from everything: no suggestion.
	r = UnknownField(`Input "cpus"`, "zzzzzzzzzzzz", recognized)
	assert.Empty(t, r.Suggestion)
}

func TestRecord_ErrorFormat(t *testing.T) {
	r := OutOfRange("size", 0, 1, 10)
	assert.Contains(t, r.Error(), "OUT_OF_RANGE")
	assert.Contains(t, r.Message, `"size"`)
	assert.Contains(t, r.Message, `min: "1"`)
	assert.Contains(t, r.Message, `max: "10"`)
}
