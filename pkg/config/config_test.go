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

package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"sweep-toolkit/pkg/sweep"
)

const yamlConfig = `template: templates/job.yaml.tmpl
workload_name: umap
namespace: sweeps
workers: 4
cluster:
  name: research-cluster
  location: us-central1-a
  project: my-project
dimensions:
  - name: dataset
    values: [organoid, primary]
  - name: neighbors
    values: [15, 50, 100, 500]
  - name: components
    values: [2, 3, 50, 100]
`

const hclConfigText = `template      = "templates/job.yaml.tmpl"
workload_name = "umap"
namespace     = "sweeps"
workers       = 4

cluster {
  name     = "research-cluster"
  location = "us-central1-a"
  project  = "my-project"
}

dimension "dataset" {
  values = ["organoid", "primary"]
}

dimension "neighbors" {
  values = [15, 50, 100, 500]
}

dimension "components" {
  values = [2, 3, 50, 100]
}
`

func wantConfig() *Config {
	return &Config{
		Template:     "templates/job.yaml.tmpl",
		WorkloadName: "umap",
		Namespace:    "sweeps",
		Workers:      4,
		Cluster: Cluster{
			Name:     "research-cluster",
			Location: "us-central1-a",
			Project:  "my-project",
		},
		Dimensions: []Dimension{
			{Name: "dataset", Values: ScalarList{"organoid", "primary"}},
			{Name: "neighbors", Values: ScalarList{"15", "50", "100", "500"}},
			{Name: "components", Values: ScalarList{"2", "3", "50", "100"}},
		},
	}
}

func loadFromString(t *testing.T, path, content string) (*Config, error) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return Load(fsys, path)
}

func TestLoadYAML(t *testing.T) {
	cfg, err := loadFromString(t, "sweep.yaml", yamlConfig)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(wantConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestLoadHCL(t *testing.T) {
	cfg, err := loadFromString(t, "sweep.hcl", hclConfigText)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	// Numeric HCL values load as their literal text, same as YAML scalars.
	if diff := cmp.Diff(wantConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	if _, err := loadFromString(t, "sweep.json", "{}"); err == nil {
		t.Fatal("expected an error for an unsupported config format")
	}
}

func TestLoadRejectsUnknownYAMLField(t *testing.T) {
	if _, err := loadFromString(t, "sweep.yaml", "tempalte: x\n"); err == nil {
		t.Fatal("expected an error for an unknown config field")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(afero.NewMemMapFs(), "nope.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		reason string
	}{
		{
			name:   "missing template",
			mutate: func(c *Config) { c.Template = "" },
			reason: "template",
		},
		{
			name:   "no dimensions",
			mutate: func(c *Config) { c.Dimensions = nil },
			reason: "dimensions",
		},
		{
			name: "empty value set",
			mutate: func(c *Config) {
				c.Dimensions[1].Values = nil
			},
			reason: "empty value set",
		},
		{
			name: "duplicate dimension",
			mutate: func(c *Config) {
				c.Dimensions = append(c.Dimensions, Dimension{Name: "dataset", Values: ScalarList{"x"}})
			},
			reason: "duplicate",
		},
		{
			name: "reserved placeholder",
			mutate: func(c *Config) {
				c.Dimensions = append(c.Dimensions, Dimension{Name: "job_name", Values: ScalarList{"x"}})
			},
			reason: "reserved",
		},
		{
			name:   "negative workers",
			mutate: func(c *Config) { c.Workers = -1 },
			reason: "workers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := wantConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			var cfgErr *sweep.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate error = %v (%T), want *sweep.ConfigurationError", err, err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error %q does not mention %q", err, tt.reason)
			}
		})
	}
}

func TestSweepDimensionsPreserveOrder(t *testing.T) {
	dims := wantConfig().SweepDimensions()
	want := []sweep.Dimension{
		{Name: "dataset", Values: []string{"organoid", "primary"}},
		{Name: "neighbors", Values: []string{"15", "50", "100", "500"}},
		{Name: "components", Values: []string{"2", "3", "50", "100"}},
	}
	if diff := cmp.Diff(want, dims); diff != "" {
		t.Errorf("dimension conversion mismatch (-want +got):\n%s", diff)
	}
}
