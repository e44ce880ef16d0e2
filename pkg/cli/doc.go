// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the toscactl tool.
//
// # Overview
//
// The toscactl CLI validates the parameter sections of TOSCA service
// templates and fingerprints template content. It is designed for template
// authors and CI pipelines that gate on template quality.
//
// # Commands
//
// validate - Validate template inputs and outputs:
//
//	toscactl validate --template service.yaml
//	toscactl validate -f service.yaml --set cpus=4 --set flavor=m1.large
//	toscactl validate -f service.yaml --set cpus=4 --fail-on-error
//
// Loads the topology template's inputs and outputs, checks every schema
// field set, validates supplied values against declared types and
// constraints, and emits a ValidationReport. Validation never stops at the
// first problem: every diagnostic found in one pass is reported.
// Use --fail-on-error for CI/CD pipelines (non-zero exit on diagnostics).
//
// fingerprint - Compute a template content digest:
//
//	toscactl fingerprint --template service.yaml --associated imports/db.yaml
//	toscactl fingerprint -f service.yaml --dir imports/
//
// Computes one deterministic digest over the template and its associated
// files. The digest does not depend on the order the files are named or
// discovered.
//
// version - Canonicalize a version property string:
//
//	toscactl version 18
//	toscactl version 1.0.0.rc1-2
//
// Parses a version property using the template version grammar
// major[.minor[.fix[.qualifier[-build]]]] and reports its components.
//
// # Global Flags
//
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show build version information
//
// # Exit Codes
//
//	0  Success
//	1  General error, or diagnostics recorded with --fail-on-error
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/parameter - Input and output parameter models
//   - pkg/registry - Built-in datatype definitions
//   - pkg/version - Version property grammar
//   - pkg/fingerprint - Content digests
//   - pkg/serializer - Output formatting
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/tosca-stack/pkg/cli.version=1.0.0'"
package cli
