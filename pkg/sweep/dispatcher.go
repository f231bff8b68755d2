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
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"sweep-toolkit/pkg/orchestrator"
)

// Reserved placeholder names bound by the dispatcher in addition to the
// dimension names. Dimensions may not shadow them.
const (
	BindingIndex   = "index"
	BindingJobName = "job_name"
)

// Renderer produces a job description from a set of placeholder bindings.
// Every placeholder in the template must resolve to a binding; a missing
// binding is a rendering failure, never an empty substitution.
type Renderer interface {
	Render(bindings map[string]string) (string, error)
}

// Dispatcher enumerates the full product of its dimensions and, for each
// combination, renders one job request and submits it through the client.
// Submissions are fire-and-forget: the dispatcher holds no relationship to a
// job after the scheduler has accepted it.
type Dispatcher struct {
	Dimensions []Dimension
	Renderer   Renderer
	Client     orchestrator.SubmissionClient

	// WorkloadName seeds the generated per-job names. Defaults to "sweep".
	WorkloadName string

	// Workers bounds the number of in-flight submissions. At most one when
	// zero or one, in which case submissions are issued in strict nested
	// enumeration order. With more workers every combination is still
	// attempted exactly once, but ordering is relaxed.
	Workers int
}

// Failure pairs a combination with the error that kept it from being
// submitted.
type Failure struct {
	Combination Combination
	Err         error
}

// Report summarizes a run: every combination is counted exactly once, either
// as submitted or as a failure.
type Report struct {
	Attempted int
	Submitted int
	Failures  []Failure
}

// Err returns a summary error when any submissions failed, nil otherwise.
func (r Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d submissions failed", len(r.Failures), r.Attempted)
}

func (d *Dispatcher) validate() error {
	if d.Renderer == nil {
		return NewConfigurationError("no job template renderer configured")
	}
	if d.Client == nil {
		return NewConfigurationError("no submission client configured")
	}
	seen := make(map[string]bool, len(d.Dimensions))
	for _, dim := range d.Dimensions {
		if dim.Name == "" {
			return NewConfigurationError("dimension with an empty name")
		}
		if dim.Name == BindingIndex || dim.Name == BindingJobName {
			return NewConfigurationError("dimension %q shadows a reserved placeholder", dim.Name)
		}
		if seen[dim.Name] {
			return NewConfigurationError("duplicate dimension %q", dim.Name)
		}
		seen[dim.Name] = true
	}
	return nil
}

// Run enumerates the product and issues one submission per combination.
// Per-combination failures are collected in the report rather than aborting
// the run; the returned error is non-nil only for an invalid setup or a
// canceled context. An empty product is a successful no-op.
func (d *Dispatcher) Run(ctx context.Context) (Report, error) {
	if err := d.validate(); err != nil {
		return Report{}, err
	}
	if d.Workers > 1 {
		return d.runConcurrent(ctx)
	}
	return d.runSequential(ctx)
}

func (d *Dispatcher) runSequential(ctx context.Context) (Report, error) {
	var report Report
	it := NewProduct(d.Dimensions)
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		combo, ok := it.Next()
		if !ok {
			break
		}
		report.Attempted++
		if err := d.dispatch(ctx, i, combo); err != nil {
			logrus.Warnf("%v", err)
			report.Failures = append(report.Failures, Failure{Combination: combo, Err: err})
			continue
		}
		report.Submitted++
	}
	return report, nil
}

func (d *Dispatcher) runConcurrent(ctx context.Context) (Report, error) {
	var (
		report Report
		mu     sync.Mutex
		wg     sync.WaitGroup
	)
	sem := make(chan struct{}, d.Workers)
	it := NewProduct(d.Dimensions)

	canceled := false
	for i := 0; ; i++ {
		if ctx.Err() != nil {
			canceled = true
			break
		}
		combo, ok := it.Next()
		if !ok {
			break
		}
		report.Attempted++

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, combo Combination) {
			defer wg.Done()
			defer func() { <-sem }()

			err := d.dispatch(ctx, i, combo)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logrus.Warnf("%v", err)
				report.Failures = append(report.Failures, Failure{Combination: combo, Err: err})
				return
			}
			report.Submitted++
		}(i, combo)
	}

	// Completion waits for every in-flight submission, canceled or not.
	wg.Wait()
	if canceled {
		return report, ctx.Err()
	}
	return report, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, index int, combo Combination) error {
	bindings := combo.Bindings()
	bindings[BindingIndex] = strconv.Itoa(index)

	jobName := d.jobName(index, combo)
	bindings[BindingJobName] = jobName

	manifest, err := d.Renderer.Render(bindings)
	if err != nil {
		return &TemplateBindingError{Combination: combo, Cause: err}
	}

	logrus.Debugf("Submitting job %q for combination (%s)", jobName, combo)
	handle, err := d.Client.Submit(ctx, orchestrator.JobRequest{Name: jobName, Manifest: manifest})
	if err != nil {
		return &SubmissionError{Combination: combo, Cause: err}
	}
	logrus.Debugf("Scheduler accepted job %q", handle.Name)
	return nil
}

// jobName derives a DNS-1123-safe name from the workload name, the
// combination's values, and the enumeration index, which keeps names unique
// within a run.
func (d *Dispatcher) jobName(index int, combo Combination) string {
	parts := []string{d.WorkloadName}
	if d.WorkloadName == "" {
		parts[0] = "sweep"
	}
	for _, a := range combo {
		parts = append(parts, a.Value)
	}
	base := sanitizeName(strings.Join(parts, "-"))

	// The index suffix keeps names unique, so it survives truncation to the
	// 63-character label limit.
	suffix := "-" + strconv.Itoa(index)
	if len(base)+len(suffix) > 63 {
		base = strings.Trim(base[:63-len(suffix)], "-")
	}
	return base + suffix
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		out = "sweep"
	}
	return out
}
