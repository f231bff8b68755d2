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

package orchestrator

import "context"

// JobRequest is a fully rendered job description, ready for submission. It is
// immutable once rendered; the scheduler either accepts or rejects it.
type JobRequest struct {
	// Name is the job name the dispatcher bound into the manifest.
	Name string
	// Manifest is the rendered job description.
	Manifest string
}

// JobHandle identifies a job the scheduler accepted.
type JobHandle struct {
	Name      string
	Namespace string
	UID       string
}

// SubmissionClient forwards rendered job requests to a cluster scheduler.
// Implementations own per-submission timeout and cancellation semantics; the
// caller issues exactly one Submit per combination and makes no idempotency
// assumption.
type SubmissionClient interface {
	Submit(ctx context.Context, req JobRequest) (JobHandle, error)
}
