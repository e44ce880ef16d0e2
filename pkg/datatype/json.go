/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package datatype

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
)

// schemaURL is the synthetic resource name the inline schema is compiled
// under; it never resolves outside the compiler.
const schemaURL = "inline://schema.json"

// JSON checks that value conforms to the supplied JSON Schema document.
// Schema compilation failures and instance violations are recorded as
// distinct ValidationError diagnostics preserving the underlying cause.
func JSON(col *diag.Collector, value, schema any) any {
	schemaDoc, err := normalizeJSON(schema)
	if err != nil {
		col.Add(diag.JSONValidation("validation schema error", err))
		return value
	}
	instance, err := normalizeJSON(value)
	if err != nil {
		col.Add(diag.JSONValidation("validation error", err))
		return value
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		col.Add(diag.JSONValidation("validation schema error", err))
		return value
	}
	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		col.Add(diag.JSONValidation("validation schema error", err))
		return value
	}

	if err := compiled.Validate(instance); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			col.Add(diag.JSONValidation("validation instance error", verr))
		} else {
			col.Add(diag.JSONValidation("validation error", err))
		}
	}
	return value
}

// normalizeJSON round-trips a document-loader value through JSON so numbers
// and keys take the shapes the schema validator expects.
func normalizeJSON(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}
