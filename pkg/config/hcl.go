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
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"sweep-toolkit/pkg/sweep"
)

type hclConfig struct {
	Template     string         `hcl:"template,optional"`
	WorkloadName string         `hcl:"workload_name,optional"`
	Namespace    string         `hcl:"namespace,optional"`
	Workers      int            `hcl:"workers,optional"`
	Cluster      *hclCluster    `hcl:"cluster,block"`
	Dimensions   []hclDimension `hcl:"dimension,block"`
}

type hclCluster struct {
	Name     string `hcl:"name,optional"`
	Location string `hcl:"location,optional"`
	Project  string `hcl:"project,optional"`
}

type hclDimension struct {
	Name   string    `hcl:"name,label"`
	Values cty.Value `hcl:"values"`
}

func parseHCL(path string, content []byte) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse sweep config %q", path)
	}

	var parsed hclConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode sweep config %q", path)
	}

	cfg := &Config{
		Template:     parsed.Template,
		WorkloadName: parsed.WorkloadName,
		Namespace:    parsed.Namespace,
		Workers:      parsed.Workers,
	}
	if parsed.Cluster != nil {
		cfg.Cluster = Cluster{
			Name:     parsed.Cluster.Name,
			Location: parsed.Cluster.Location,
			Project:  parsed.Cluster.Project,
		}
	}
	for _, d := range parsed.Dimensions {
		values, err := scalarList(d.Values)
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %q", d.Name)
		}
		cfg.Dimensions = append(cfg.Dimensions, Dimension{Name: d.Name, Values: values})
	}
	return cfg, nil
}

// scalarList converts an HCL list or tuple into the literal text of its
// elements; numbers come out as their decimal representation.
func scalarList(v cty.Value) ([]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.CanIterateElements() {
		return nil, sweep.NewConfigurationError("values must be a list of scalars")
	}
	out := make([]string, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, element := it.Element()
		converted, err := convert.Convert(element, cty.String)
		if err != nil {
			return nil, errors.Wrap(err, "value is not a scalar")
		}
		out = append(out, converted.AsString())
	}
	return out, nil
}
