/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package registry resolves named built-in datatypes for the parameter
// model. Definitions are embedded at build time, so they are parsed once
// and the in-memory representation is reused for the lifetime of the
// process.
package registry

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/tosca-stack/pkg/parameter"
)

var (
	//go:embed data/datatypes.yaml
	datatypeData []byte

	loadOnce  sync.Once
	cached    *Registry
	cachedErr error
)

// Registry holds the built-in datatype definitions, keyed by full tag.
type Registry struct {
	types map[string]*Datatype
}

// Load parses and caches the embedded datatype definitions.
func Load() (*Registry, error) {
	loadOnce.Do(func() {
		var types map[string]*Datatype
		if err := yaml.Unmarshal(datatypeData, &types); err != nil {
			cachedErr = fmt.Errorf("failed to parse datatype definitions: %w", err)
			return
		}
		reg := &Registry{types: types}
		for name, dt := range types {
			dt.Name = name
			dt.reg = reg
		}
		cached = reg
	})

	if cachedErr != nil {
		return nil, cachedErr
	}
	if cached == nil {
		return nil, fmt.Errorf("datatype registry not initialized")
	}
	return cached, nil
}

// Resolve returns the built-in datatype definition for an exact tag, or
// false when the tag names no complex datatype. Primitive tags always
// resolve to false; namespace fallbacks are the caller's concern.
func (r *Registry) Resolve(tag string) (parameter.ResolvedDatatype, bool) {
	dt, ok := r.types[tag]
	if !ok {
		return nil, false
	}
	return dt, true
}

// Tags returns the registered datatype tags.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.types))
	for tag := range r.types {
		tags = append(tags, tag)
	}
	return tags
}
