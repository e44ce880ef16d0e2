/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package version parses and validates the template language's version
// property: major[.minor[.fix[.qualifier]]][-build]. Parsing is two-phase:
// the grammar over-accepts syntactically, then cross-field rules narrow
// acceptance semantically. Constraint additions land in the second phase so
// the grammar itself never has to change.
package version

import (
	"log/slog"
	"strings"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// Property is a validated version property. A Property is either fully
// populated and valid, or the grammar/cross-field failure has already been
// recorded by the time the constructor returns.
type Property struct {
	// Major, Minor, Fix and Build are digit sequences; Qualifier is
	// alphanumeric. All but Major may be empty.
	Major     string
	Minor     string
	Fix       string
	Qualifier string
	Build     string

	version string
	valid   bool
}

// Parse parses a raw version string, recording an InvalidVersion diagnostic
// for grammar or cross-field failures. The returned Property is never nil.
func Parse(col *diag.Collector, raw string) *Property {
	p := &Property{version: raw}

	fields, ok := scan(raw)
	if !ok {
		col.Add(diag.InvalidVersion(raw))
		return p
	}
	p.Major = fields.major
	p.Minor = fields.minor
	p.Fix = fields.fix
	p.Qualifier = fields.qualifier
	p.Build = fields.build
	p.valid = true

	// All-zero forms mean "no version specified".
	switch raw {
	case "0", "0.0", "0.0.0":
		slog.Warn("version assumed as not provided", slog.String("version", raw))
		p.version = ""
	}

	// A qualifier needs a fix version to anchor it, and means nothing on an
	// all-zero prefix.
	if p.Qualifier != "" && (p.Fix == "" ||
		(p.Major == "0" && p.Minor == "0" && p.Fix == "0")) {
		col.Add(diag.InvalidVersion(raw))
		p.valid = false
	}

	// A build component is only meaningful under a qualifier.
	if p.Build != "" && p.Qualifier == "" {
		col.Add(diag.InvalidVersion(raw))
		p.valid = false
	}

	// A bare major version (other than 0) implies minor 0 in the canonical
	// form.
	if p.Minor == "" && p.Build == "" && p.Major != "0" {
		slog.Warn("minor version assumed \"0\"", slog.String("version", raw))
		p.version = p.Major + ".0"
	}

	return p
}

// GetVersion returns the canonical version string. It is empty when the
// version was one of the all-zero "not specified" forms.
func (p *Property) GetVersion() string {
	return p.version
}

// Defined reports whether the property parsed cleanly and denotes an actual
// version.
func (p *Property) Defined() bool {
	return p.valid && p.version != ""
}

// fields holds the raw substrings produced by the grammar scan.
type fields struct {
	major, minor, fix, qualifier, build string
}

// scan matches the version grammar: dotted components where the first three
// are digit sequences, an alphanumeric qualifier terminates the dotted part,
// and an optional "-build" suffix carries a digit sequence. A trailing "-"
// with no digits is tolerated and treated as no build, matching the
// language's historical acceptance.
func scan(raw string) (fields, bool) {
	var f fields

	rest := raw
	if i := strings.IndexByte(raw, '-'); i >= 0 {
		rest = raw[:i]
		build := raw[i+1:]
		if build != "" && !isDigits(build) {
			return fields{}, false
		}
		f.build = build
	}

	parts := strings.Split(rest, ".")
	if len(parts) > 4 {
		return fields{}, false
	}

	// Major is mandatory and numeric.
	if !isDigits(parts[0]) {
		return fields{}, false
	}
	f.major = parts[0]

	// Numeric components fill minor then fix; the first non-numeric
	// alphanumeric component is the qualifier and must come last.
	numeric := []*string{&f.minor, &f.fix}
	for i, part := range parts[1:] {
		switch {
		case isDigits(part) && len(numeric) > 0 && i < 2:
			*numeric[0] = part
			numeric = numeric[1:]
		case isAlnum(part):
			f.qualifier = part
			if i != len(parts[1:])-1 {
				return fields{}, false
			}
		default:
			return fields{}, false
		}
	}
	return f, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if (b < '0' || b > '9') && (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') {
			return false
		}
	}
	return true
}
