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

// Package kube submits rendered job manifests directly through the Kubernetes
// API instead of shelling out to kubectl.
package kube

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/yaml"

	"sweep-toolkit/pkg/orchestrator"
)

// Client creates batch/v1 Jobs from rendered manifests.
type Client struct {
	clientset kubernetes.Interface
	namespace string
}

// New builds a client from a kubeconfig. An empty kubeconfigPath uses the
// default loading rules (KUBECONFIG, then ~/.kube/config).
func New(kubeconfigPath, namespace string) (*Client, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfigPath != "" {
		loadingRules.ExplicitPath = kubeconfigPath
	}
	restConfig, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return NewWithClientset(clientset, namespace), nil
}

// NewWithClientset builds a client around an existing clientset.
func NewWithClientset(clientset kubernetes.Interface, namespace string) *Client {
	return &Client{clientset: clientset, namespace: namespace}
}

// Submit decodes the rendered manifest as a batch/v1 Job and creates it. The
// job's own namespace wins over the client's; both empty means "default".
func (c *Client) Submit(ctx context.Context, req orchestrator.JobRequest) (orchestrator.JobHandle, error) {
	var job batchv1.Job
	if err := yaml.Unmarshal([]byte(req.Manifest), &job); err != nil {
		return orchestrator.JobHandle{}, fmt.Errorf("failed to decode rendered manifest as batch/v1 Job: %w", err)
	}
	if job.Kind != "" && job.Kind != "Job" {
		return orchestrator.JobHandle{}, fmt.Errorf("rendered manifest has kind %q, expected Job", job.Kind)
	}
	if job.Name == "" && job.GenerateName == "" {
		job.Name = req.Name
	}

	namespace := job.Namespace
	if namespace == "" {
		namespace = c.namespace
	}
	if namespace == "" {
		namespace = metav1.NamespaceDefault
	}

	created, err := c.clientset.BatchV1().Jobs(namespace).Create(ctx, &job, metav1.CreateOptions{})
	if err != nil {
		return orchestrator.JobHandle{}, fmt.Errorf("failed to create job %q in namespace %q: %w", job.Name, namespace, err)
	}
	logrus.Debugf("Created job %q in namespace %q (uid %s)", created.Name, created.Namespace, created.UID)
	return orchestrator.JobHandle{
		Name:      created.Name,
		Namespace: created.Namespace,
		UID:       string(created.UID),
	}, nil
}
