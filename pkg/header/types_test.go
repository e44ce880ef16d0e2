package header

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_AppliesOptions(t *testing.T) {
	h := New(
		WithKind("ValidationReport"),
		WithAPIVersion("validationreport.tosca.nvidia.com/v1"),
		WithMetadata("emitted-at", "2026-01-02T03:04:05Z"),
		WithMetadata("run", "abc"),
	)

	assert.Equal(t, "ValidationReport", h.Kind)
	assert.Equal(t, "validationreport.tosca.nvidia.com/v1", h.APIVersion)
	assert.Equal(t, "2026-01-02T03:04:05Z", h.Metadata["emitted-at"])
	assert.Equal(t, "abc", h.Metadata["run"])
}

func TestWithMetadata_InitializesNilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("key", "value")(h)
	assert.Equal(t, "value", h.Metadata["key"])
}

func TestSet_DerivesAPIVersion(t *testing.T) {
	var h Header
	h.Set("Fingerprint")

	assert.Equal(t, "Fingerprint", h.Kind)
	assert.Equal(t, "fingerprint.tosca.nvidia.com/v1", h.APIVersion)
	assert.True(t, strings.HasSuffix(h.Metadata["emitted-at"], "Z"))
}
