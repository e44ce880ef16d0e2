/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parameter

// Schema and attribute field names.
const (
	fieldType        = "type"
	fieldDescription = "description"
	fieldDefault     = "default"
	fieldConstraints = "constraints"
	fieldRequired    = "required"
	fieldStatus      = "status"
	fieldEntrySchema = "entry_schema"
	fieldTitle       = "title"
	fieldHint        = "hint"
	fieldUIType      = "uitype"
	fieldUI          = "ui"
	fieldValue       = "value"
	fieldHidden      = "hidden"
)

// inputFields is the recognized field set for Input schemas.
var inputFields = []string{
	fieldType, fieldDescription, fieldDefault, fieldConstraints,
	fieldRequired, fieldStatus, fieldEntrySchema, fieldTitle, fieldHint,
	fieldUIType, fieldUI,
}

// outputFields is the recognized field set for Output attributes.
var outputFields = []string{
	fieldDescription, fieldValue, fieldDefault, fieldHidden, fieldType,
	fieldRequired, fieldConstraints, fieldUIType,
}

func recognizedField(name string, set []string) bool {
	for _, f := range set {
		if f == name {
			return true
		}
	}
	return false
}
