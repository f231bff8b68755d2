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

import "fmt"

// ConfigurationError reports an invalid sweep setup. It is detected before
// enumeration begins and is fatal to the whole run.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid sweep configuration: " + e.Reason
}

// NewConfigurationError builds a ConfigurationError from a format string.
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// TemplateBindingError reports a combination that could not be fully bound
// into the job template. It is fatal to that combination only.
type TemplateBindingError struct {
	Combination Combination
	Cause       error
}

func (e *TemplateBindingError) Error() string {
	return fmt.Sprintf("template binding failed for combination (%s): %v", e.Combination, e.Cause)
}

func (e *TemplateBindingError) Unwrap() error {
	return e.Cause
}

// SubmissionError reports a combination whose rendered job request was
// rejected by the scheduler or could not be delivered. It is fatal to that
// combination only.
type SubmissionError struct {
	Combination Combination
	Cause       error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed for combination (%s): %v", e.Combination, e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
