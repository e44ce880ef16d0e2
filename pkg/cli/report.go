/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"github.com/google/uuid"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
	"github.com/NVIDIA/tosca-stack/pkg/header"
)

// ValidationReport is the emitted result of one validate run.
type ValidationReport struct {
	header.Header `yaml:",inline"`

	RunID              string         `json:"runId" yaml:"runId"`
	Template           string         `json:"template" yaml:"template"`
	DefinitionsVersion string         `json:"definitionsVersion,omitempty" yaml:"definitionsVersion,omitempty"`
	Inputs             int            `json:"inputs" yaml:"inputs"`
	Outputs            int            `json:"outputs" yaml:"outputs"`
	Valid              bool           `json:"valid" yaml:"valid"`
	Diagnostics        []*diag.Record `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// newValidationReport assembles a report from the parsed template and the
// diagnostics accumulated while validating it.
func newValidationReport(path string, tpl *template, col *diag.Collector) *ValidationReport {
	rep := &ValidationReport{
		RunID:              uuid.NewString(),
		Template:           path,
		DefinitionsVersion: tpl.DefinitionsVersion,
		Inputs:             len(tpl.Inputs),
		Outputs:            len(tpl.Outputs),
		Valid:              col.Empty(),
		Diagnostics:        col.Records(),
	}
	rep.Set("ValidationReport")
	return rep
}

// FingerprintReport is the emitted result of one fingerprint run.
type FingerprintReport struct {
	header.Header `yaml:",inline"`

	Template  string `json:"template" yaml:"template"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Digest    string `json:"digest" yaml:"digest"`
}

// VersionReport is the emitted result of one version run.
type VersionReport struct {
	header.Header `yaml:",inline"`

	Raw         string         `json:"raw" yaml:"raw"`
	Canonical   string         `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Major       string         `json:"major,omitempty" yaml:"major,omitempty"`
	Minor       string         `json:"minor,omitempty" yaml:"minor,omitempty"`
	Fix         string         `json:"fix,omitempty" yaml:"fix,omitempty"`
	Qualifier   string         `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
	Build       string         `json:"build,omitempty" yaml:"build,omitempty"`
	Valid       bool           `json:"valid" yaml:"valid"`
	Diagnostics []*diag.Record `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}
