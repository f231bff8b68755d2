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

// Package sweep enumerates the Cartesian product of configured parameter
// dimensions and dispatches one rendered job request per combination.
package sweep

import (
	"fmt"
	"strings"
)

// Dimension is one named axis of a sweep: an ordered, finite set of candidate
// values fixed at configuration time. Numeric values are carried as their
// literal scalar text.
type Dimension struct {
	Name   string
	Values []string
}

// Assignment binds a single dimension to one of its values.
type Assignment struct {
	Dimension string
	Value     string
}

// Combination assigns exactly one value to each dimension, in declaration
// order. It is one point in the sweep's product space.
type Combination []Assignment

// Bindings returns the combination as a placeholder-name to value map.
func (c Combination) Bindings() map[string]string {
	bindings := make(map[string]string, len(c))
	for _, a := range c {
		bindings[a.Dimension] = a.Value
	}
	return bindings
}

func (c Combination) String() string {
	parts := make([]string, len(c))
	for i, a := range c {
		parts[i] = fmt.Sprintf("%s=%s", a.Dimension, a.Value)
	}
	return strings.Join(parts, ", ")
}

// Size returns the number of combinations in the product of dims: the product
// of the value-set sizes, zero if any value-set is empty.
func Size(dims []Dimension) int {
	if len(dims) == 0 {
		return 0
	}
	n := 1
	for _, d := range dims {
		n *= len(d.Values)
	}
	return n
}

// Product lazily enumerates the Cartesian product of a dimension list in
// nested declaration order, outermost dimension first. No combination is
// materialized before it is requested.
type Product struct {
	dims      []Dimension
	idx       []int
	exhausted bool
}

// NewProduct returns an iterator over the product of dims. If any dimension
// has an empty value-set the product is empty; that is a valid no-op, not an
// error.
func NewProduct(dims []Dimension) *Product {
	p := &Product{dims: dims, idx: make([]int, len(dims))}
	if len(dims) == 0 {
		p.exhausted = true
	}
	for _, d := range dims {
		if len(d.Values) == 0 {
			p.exhausted = true
		}
	}
	return p
}

// Next returns the next combination, or false once the product is exhausted.
func (p *Product) Next() (Combination, bool) {
	if p.exhausted {
		return nil, false
	}

	combo := make(Combination, len(p.dims))
	for i, d := range p.dims {
		combo[i] = Assignment{Dimension: d.Name, Value: d.Values[p.idx[i]]}
	}

	// Odometer increment, innermost dimension fastest.
	for i := len(p.idx) - 1; i >= 0; i-- {
		p.idx[i]++
		if p.idx[i] < len(p.dims[i].Values) {
			return combo, true
		}
		p.idx[i] = 0
	}
	p.exhausted = true
	return combo, true
}
