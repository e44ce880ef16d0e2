/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package datatype

import (
	"fmt"
	"time"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// timestampLayouts is the permissive calendar grammar the template language
// accepts: the YAML 1.1 timestamp forms plus the common date-only form.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02t15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999 -07:00",
	"2006-01-02 15:04:05.999999999 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp checks that value parses as a calendar timestamp. Values already
// decoded to time.Time by the document loader pass through. The value is
// returned unchanged; failures record an InvalidTimestamp diagnostic
// carrying the underlying parser message.
func Timestamp(col *diag.Collector, value any) any {
	switch v := value.(type) {
	case time.Time:
		return value
	case string:
		var lastErr error
		for _, layout := range timestampLayouts {
			if _, err := time.Parse(layout, v); err == nil {
				return value
			} else {
				lastErr = err
			}
		}
		col.Add(diag.InvalidTimestamp(value, lastErr))
		return value
	default:
		col.Add(diag.InvalidTimestamp(value, fmt.Errorf("unsupported value of type %T", value)))
		return value
	}
}
