/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runFingerprint(t *testing.T, args ...string) (*FingerprintReport, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "report.yaml")

	argv := append([]string{"toscactl", "fingerprint", "--output", out}, args...)
	runErr := New().Run(context.Background(), argv)

	raw, err := os.ReadFile(out)
	if err != nil {
		return nil, runErr
	}
	var rep FingerprintReport
	require.NoError(t, yaml.Unmarshal(raw, &rep))
	return &rep, runErr
}

func TestFingerprint_AssociatedFiles(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "service.yaml")
	require.NoError(t, os.WriteFile(tplPath, []byte(testTemplate), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db.yaml"), []byte("db: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "web.yaml"), []byte("web: 1\n"), 0o644))

	rep, err := runFingerprint(t, "--template", tplPath,
		"--associated", "db.yaml", "--associated", "web.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Fingerprint", rep.Kind)
	assert.Equal(t, "sha256", rep.Algorithm)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), rep.Digest)

	// Naming the files in another order yields the same digest.
	again, err := runFingerprint(t, "--template", tplPath,
		"--associated", "web.yaml", "--associated", "db.yaml")
	require.NoError(t, err)
	assert.Equal(t, rep.Digest, again.Digest)
}

func TestFingerprint_DirAndAssociatedExclusive(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "service.yaml")
	require.NoError(t, os.WriteFile(tplPath, []byte(testTemplate), 0o644))

	_, err := runFingerprint(t, "--template", tplPath,
		"--dir", dir, "--associated", "db.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestFingerprint_MissingAssociatedFile(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "service.yaml")
	require.NoError(t, os.WriteFile(tplPath, []byte(testTemplate), 0o644))

	_, err := runFingerprint(t, "--template", tplPath, "--associated", "ghost.yaml")
	require.Error(t, err)
}
