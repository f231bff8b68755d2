// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads and validates sweep configurations. A config names the
// job template, the sweep dimensions with their value-sets, and the target
// cluster. YAML and HCL formats are supported, selected by file extension.
package config

import (
	"bytes"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"sweep-toolkit/pkg/sweep"
)

// Config is the static configuration surface of a sweep run.
type Config struct {
	// Template is the path of the job description template.
	Template string `yaml:"template"`
	// WorkloadName seeds the generated per-job names.
	WorkloadName string `yaml:"workload_name"`
	Namespace    string `yaml:"namespace"`
	// Workers bounds concurrent submissions; zero or one means sequential.
	Workers    int         `yaml:"workers"`
	Cluster    Cluster     `yaml:"cluster"`
	Dimensions []Dimension `yaml:"dimensions"`
}

// Cluster identifies the GKE cluster receiving the jobs. All fields are
// optional; when empty the current kubectl context or kubeconfig is used.
type Cluster struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Project  string `yaml:"project"`
}

// Dimension declares one sweep axis and its ordered candidate values.
type Dimension struct {
	Name   string     `yaml:"name"`
	Values ScalarList `yaml:"values"`
}

// ScalarList decodes a YAML sequence of scalars into their literal text, so
// `[15, 50]` and `[organoid, primary]` both load without type juggling.
type ScalarList []string

func (v *ScalarList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: dimension values must be a sequence of scalars", node.Line)
	}
	out := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: dimension values must be scalars", item.Line)
		}
		out = append(out, item.Value)
	}
	*v = out
	return nil
}

// Load reads and parses the sweep config at path. The result is not yet
// validated; call Validate before use.
func Load(fsys afero.Fs, path string) (*Config, error) {
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sweep config %q", path)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return parseYAML(path, content)
	case ".hcl":
		return parseHCL(path, content)
	default:
		return nil, errors.Errorf("unsupported sweep config format %q (expected .yaml, .yml or .hcl)", ext)
	}
}

func parseYAML(path string, content []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse sweep config %q", path)
	}
	return &cfg, nil
}

// Validate checks the configuration before any enumeration begins. A declared
// dimension with an empty value-set is rejected here; the dispatcher itself
// treats an empty product as a clean no-op.
func (c *Config) Validate() error {
	if c.Template == "" {
		return sweep.NewConfigurationError("no job template configured")
	}
	if len(c.Dimensions) == 0 {
		return sweep.NewConfigurationError("no sweep dimensions configured")
	}
	seen := make(map[string]bool, len(c.Dimensions))
	for _, d := range c.Dimensions {
		if d.Name == "" {
			return sweep.NewConfigurationError("dimension with an empty name")
		}
		if d.Name == sweep.BindingIndex || d.Name == sweep.BindingJobName {
			return sweep.NewConfigurationError("dimension %q shadows a reserved placeholder", d.Name)
		}
		if seen[d.Name] {
			return sweep.NewConfigurationError("duplicate dimension %q", d.Name)
		}
		seen[d.Name] = true
		if len(d.Values) == 0 {
			return sweep.NewConfigurationError("dimension %q has an empty value set", d.Name)
		}
	}
	if c.Workers < 0 {
		return sweep.NewConfigurationError("workers must not be negative")
	}
	return nil
}

// SweepDimensions converts the declared dimensions, preserving order.
func (c *Config) SweepDimensions() []sweep.Dimension {
	dims := make([]sweep.Dimension, len(c.Dimensions))
	for i, d := range c.Dimensions {
		dims[i] = sweep.Dimension{Name: d.Name, Values: d.Values}
	}
	return dims
}
