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

package sweep

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDimensions() []Dimension {
	return []Dimension{
		{Name: "dataset", Values: []string{"organoid", "primary"}},
		{Name: "neighbors", Values: []string{"15", "50"}},
		{Name: "components", Values: []string{"2", "3"}},
	}
}

func collect(t *testing.T, dims []Dimension) []string {
	t.Helper()
	var out []string
	it := NewProduct(dims)
	for {
		combo, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, combo.String())
	}
}

func TestProductOrder(t *testing.T) {
	got := collect(t, testDimensions())
	want := []string{
		"dataset=organoid, neighbors=15, components=2",
		"dataset=organoid, neighbors=15, components=3",
		"dataset=organoid, neighbors=50, components=2",
		"dataset=organoid, neighbors=50, components=3",
		"dataset=primary, neighbors=15, components=2",
		"dataset=primary, neighbors=15, components=3",
		"dataset=primary, neighbors=50, components=2",
		"dataset=primary, neighbors=50, components=3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("product enumeration mismatch (-want +got):\n%s", diff)
	}
}

func TestProductIsDeterministic(t *testing.T) {
	first := collect(t, testDimensions())
	second := collect(t, testDimensions())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two enumerations of the same dimensions differ (-first +second):\n%s", diff)
	}
}

func TestProductUniqueAndComplete(t *testing.T) {
	dims := []Dimension{
		{Name: "dataset", Values: []string{"organoid", "primary"}},
		{Name: "neighbors", Values: []string{"15", "50", "100", "500"}},
		{Name: "components", Values: []string{"2", "3", "50", "100"}},
	}
	combos := collect(t, dims)
	if len(combos) != Size(dims) {
		t.Fatalf("enumerated %d combinations, want %d", len(combos), Size(dims))
	}
	seen := make(map[string]bool, len(combos))
	for _, c := range combos {
		if seen[c] {
			t.Errorf("combination enumerated twice: %s", c)
		}
		seen[c] = true
	}
}

func TestProductEmptyValueSet(t *testing.T) {
	tests := []struct {
		name string
		dims []Dimension
	}{
		{
			name: "empty outer dimension",
			dims: []Dimension{
				{Name: "dataset", Values: nil},
				{Name: "neighbors", Values: []string{"15", "50"}},
				{Name: "components", Values: []string{"2", "3"}},
			},
		},
		{
			name: "empty inner dimension",
			dims: []Dimension{
				{Name: "dataset", Values: []string{"organoid"}},
				{Name: "neighbors", Values: []string{"15"}},
				{Name: "components", Values: nil},
			},
		},
		{
			name: "no dimensions",
			dims: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(t, tt.dims); len(got) != 0 {
				t.Errorf("expected empty product, got %d combinations", len(got))
			}
			if got := Size(tt.dims); got != 0 {
				t.Errorf("Size() = %d, want 0", got)
			}
		})
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		dims []Dimension
		want int
	}{
		{"three dimensions", testDimensions(), 8},
		{"single dimension", []Dimension{{Name: "dataset", Values: []string{"organoid"}}}, 1},
		{"full sweep", []Dimension{
			{Name: "dataset", Values: []string{"organoid", "primary"}},
			{Name: "neighbors", Values: []string{"15", "50", "100", "500"}},
			{Name: "components", Values: []string{"2", "3", "50", "100"}},
		}, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.dims); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCombinationBindings(t *testing.T) {
	it := NewProduct(testDimensions())
	combo, ok := it.Next()
	if !ok {
		t.Fatal("expected at least one combination")
	}
	want := map[string]string{
		"dataset":    "organoid",
		"neighbors":  "15",
		"components": "2",
	}
	if diff := cmp.Diff(want, combo.Bindings()); diff != "" {
		t.Errorf("bindings mismatch (-want +got):\n%s", diff)
	}
}
