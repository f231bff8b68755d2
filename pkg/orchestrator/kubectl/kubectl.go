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

// Package kubectl submits rendered job manifests by piping them to
// `kubectl create -f -`.
package kubectl

import (
	"context"
	"fmt"
	"strings"

	"sweep-toolkit/pkg/logging"
	"sweep-toolkit/pkg/orchestrator"
	"sweep-toolkit/pkg/shell"
)

// Client shells out to kubectl for each submission. When a cluster name is
// set, Configure points the kubectl context at that GKE cluster first.
type Client struct {
	ClusterName     string
	ClusterLocation string
	ProjectID       string
	Namespace       string
}

// Configure fetches cluster credentials via gcloud. It is a no-op when no
// cluster name is configured; the current kubectl context is used as-is.
func (c *Client) Configure() error {
	if c.ClusterName == "" {
		return nil
	}
	logging.Info("Configuring kubectl for cluster '%s'...", c.ClusterName)
	res := shell.ExecuteCommand("gcloud", "container", "clusters", "get-credentials", c.ClusterName,
		"--zone", c.ClusterLocation, "--project", c.ProjectID)
	if res.ExitCode != 0 {
		return fmt.Errorf("failed to get cluster credentials: %s\n%s", res.Stderr, res.Stdout)
	}
	logging.Info("kubectl configured successfully.")
	return nil
}

// Submit pipes the rendered manifest to kubectl's stdin.
func (c *Client) Submit(ctx context.Context, req orchestrator.JobRequest) (orchestrator.JobHandle, error) {
	args := []string{"create", "-f", "-"}
	if c.Namespace != "" {
		args = append(args, "--namespace", c.Namespace)
	}

	cmd := shell.NewCommand("kubectl", args...)
	cmd.SetInput(req.Manifest)
	res := cmd.ExecuteContext(ctx)
	if res.ExitCode != 0 {
		return orchestrator.JobHandle{}, fmt.Errorf("kubectl create failed with exit code %d: %s\n%s", res.ExitCode, res.Stderr, res.Stdout)
	}

	handle := orchestrator.JobHandle{Name: req.Name, Namespace: c.Namespace}
	if name := parseCreatedName(res.Stdout); name != "" {
		handle.Name = name
	}
	logging.Debug("kubectl accepted job %q", handle.Name)
	return handle, nil
}

// parseCreatedName extracts the job name from kubectl output such as
// "job.batch/umap-organoid-15-2-0 created".
func parseCreatedName(stdout string) string {
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasSuffix(line, " created") {
			continue
		}
		ref := strings.TrimSuffix(line, " created")
		if idx := strings.LastIndex(ref, "/"); idx >= 0 {
			return ref[idx+1:]
		}
	}
	return ""
}
