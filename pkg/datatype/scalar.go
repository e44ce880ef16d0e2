/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package datatype

import (
	"strconv"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// sizeSuffixes maps the template language's size units (case-insensitive)
// to resource.Quantity suffixes.
var sizeSuffixes = map[string]string{
	"b":   "",
	"kb":  "k",
	"kib": "Ki",
	"mb":  "M",
	"mib": "Mi",
	"gb":  "G",
	"gib": "Gi",
	"tb":  "T",
	"tib": "Ti",
}

// frequencyMultipliers maps frequency units to their Hz multiplier.
var frequencyMultipliers = map[string]float64{
	"hz":  1,
	"khz": 1e3,
	"mhz": 1e6,
	"ghz": 1e9,
}

// ScalarUnitSize checks that value is a scalar-unit size string such as
// "10 GB" or "512 MiB". The value is returned unchanged.
func ScalarUnitSize(col *diag.Collector, value any) any {
	num, unit, ok := splitScalar(value)
	if ok {
		if suffix, known := sizeSuffixes[strings.ToLower(unit)]; known {
			if _, err := resource.ParseQuantity(num + suffix); err == nil {
				return value
			}
		}
	}
	col.Add(diag.TypeMismatch(value, "a scalar-unit size"))
	return value
}

// ScalarUnitTime checks that value is a scalar-unit time string such as
// "10 ms" or "2 d". The value is returned unchanged.
func ScalarUnitTime(col *diag.Collector, value any) any {
	num, unit, ok := splitScalar(value)
	if ok {
		switch strings.ToLower(unit) {
		case "d":
			if _, err := strconv.ParseFloat(num, 64); err == nil {
				return value
			}
		case "h", "m", "s", "ms", "us", "ns":
			if _, err := time.ParseDuration(num + strings.ToLower(unit)); err == nil {
				return value
			}
		}
	}
	col.Add(diag.TypeMismatch(value, "a scalar-unit time"))
	return value
}

// ScalarUnitFrequency checks that value is a scalar-unit frequency string
// such as "2.4 GHz". The value is returned unchanged.
func ScalarUnitFrequency(col *diag.Collector, value any) any {
	num, unit, ok := splitScalar(value)
	if ok {
		if _, known := frequencyMultipliers[strings.ToLower(unit)]; known {
			if _, err := strconv.ParseFloat(num, 64); err == nil {
				return value
			}
		}
	}
	col.Add(diag.TypeMismatch(value, "a scalar-unit frequency"))
	return value
}

// splitScalar splits a scalar-unit string into its numeric part and unit.
// The unit may be separated from the number by whitespace or attached.
func splitScalar(value any) (num, unit string, ok bool) {
	s, isString := value.(string)
	if !isString {
		return "", "", false
	}
	s = strings.TrimSpace(s)

	if fields := strings.Fields(s); len(fields) == 2 {
		return fields[0], fields[1], true
	}

	// Attached form: find the boundary between digits and the unit.
	i := len(s)
	for i > 0 && !isDigitOrDot(s[i-1]) {
		i--
	}
	if i == 0 || i == len(s) {
		return "", "", false
	}
	return s[:i], s[i:], true
}

func isDigitOrDot(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}
