/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/tosca-stack/pkg/diag"
	"github.com/NVIDIA/tosca-stack/pkg/parameter"
)

// templateDoc is the subset of a service template the CLI reads.
type templateDoc struct {
	DefinitionsVersion string `yaml:"tosca_definitions_version"`

	TopologyTemplate struct {
		Inputs  map[string]map[string]any `yaml:"inputs"`
		Outputs map[string]any            `yaml:"outputs"`
	} `yaml:"topology_template"`
}

// template holds the parsed parameter sections of one service template.
type template struct {
	DefinitionsVersion string
	Inputs             []*parameter.Input
	Outputs            []*parameter.Output
}

// loadTemplate parses the template file and constructs its input and output
// models. Schema problems are recorded on the collector; only unreadable or
// unparseable files return an error.
func loadTemplate(col *diag.Collector, path string) (*template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %q: %w", path, err)
	}

	var doc templateDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse template %q: %w", path, err)
	}

	tpl := &template{DefinitionsVersion: doc.DefinitionsVersion}
	for _, name := range sortedKeys(doc.TopologyTemplate.Inputs) {
		tpl.Inputs = append(tpl.Inputs, parameter.NewInput(col, name, doc.TopologyTemplate.Inputs[name]))
	}
	for _, name := range sortedKeys(doc.TopologyTemplate.Outputs) {
		out := parameter.NewOutput(col, name, doc.TopologyTemplate.Outputs[name])
		out.Validate()
		tpl.Outputs = append(tpl.Outputs, out)
	}
	return tpl, nil
}

// input returns the declared input with the given name.
func (t *template) input(name string) (*parameter.Input, bool) {
	for _, in := range t.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return nil, false
}

// inputNames returns the declared input names in declaration-sorted order.
func (t *template) inputNames() []string {
	names := make([]string, 0, len(t.Inputs))
	for _, in := range t.Inputs {
		names = append(names, in.Name)
	}
	return names
}

func sortedKeys[M map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
