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

// Package manifestdir writes rendered job manifests to a directory instead of
// submitting them, for inspection or a later kubectl apply.
package manifestdir

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"sweep-toolkit/pkg/orchestrator"
)

// Client saves one manifest file per job request.
type Client struct {
	fsys afero.Fs
	dir  string
}

// New returns a client writing into dir, which is created on first use.
func New(fsys afero.Fs, dir string) *Client {
	return &Client{fsys: fsys, dir: dir}
}

// Submit writes the manifest to <dir>/<job name>.yaml.
func (c *Client) Submit(ctx context.Context, req orchestrator.JobRequest) (orchestrator.JobHandle, error) {
	if err := c.fsys.MkdirAll(c.dir, 0755); err != nil {
		return orchestrator.JobHandle{}, fmt.Errorf("failed to create output directory %q: %w", c.dir, err)
	}
	name := req.Name
	if name == "" {
		name = "job"
	}
	path := filepath.Join(c.dir, name+".yaml")
	if err := afero.WriteFile(c.fsys, path, []byte(req.Manifest), 0644); err != nil {
		return orchestrator.JobHandle{}, fmt.Errorf("failed to write manifest %q: %w", path, err)
	}
	return orchestrator.JobHandle{Name: name}, nil
}
