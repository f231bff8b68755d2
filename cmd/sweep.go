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

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"sweep-toolkit/pkg/config"
	"sweep-toolkit/pkg/logging"
	"sweep-toolkit/pkg/orchestrator"
	"sweep-toolkit/pkg/orchestrator/kube"
	"sweep-toolkit/pkg/orchestrator/kubectl"
	"sweep-toolkit/pkg/orchestrator/manifestdir"
	"sweep-toolkit/pkg/render"
	"sweep-toolkit/pkg/sweep"
)

var (
	configPath      string
	templatePath    string
	workloadName    string
	outputDir       string
	workers         int
	kubeconfigPath  string
	namespace       string
	useKubectl      bool
	clusterName     string
	clusterLocation string
	projectID       string
)

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the sweep config (.yaml, .yml or .hcl). Required.")
	sweepCmd.Flags().StringVarP(&templatePath, "template", "t", "", "Path to the job description template. Overrides the config file.")
	sweepCmd.Flags().StringVarP(&workloadName, "workload-name", "w", "", "Name prefix for the generated jobs. Overrides the config file.")
	sweepCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write rendered manifests to this directory instead of submitting them.")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "Maximum number of in-flight submissions. Overrides the config file.")
	sweepCmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to the kubeconfig. Defaults to the standard loading rules.")
	sweepCmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace to create the jobs in. Overrides the config file.")
	sweepCmd.Flags().BoolVar(&useKubectl, "use-kubectl", false, "Submit via the kubectl CLI instead of the Kubernetes API.")
	sweepCmd.Flags().StringVar(&clusterName, "cluster-name", "", "Name of the GKE cluster to submit to (kubectl backend only).")
	sweepCmd.Flags().StringVar(&clusterLocation, "cluster-location", "", "Location (zone or region) of the GKE cluster.")
	sweepCmd.Flags().StringVarP(&projectID, "project", "p", "", "Google Cloud Project ID owning the cluster.")

	_ = sweepCmd.MarkFlagRequired("config")
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Enumerates the configured parameter sweep and submits one job per combination.",
	Long: `The 'sweep' command loads a sweep config, enumerates the Cartesian product of
its dimensions, renders each combination into the job template, and submits
every rendered manifest to the cluster. A single combination's failure does
not stop the rest of the sweep; all failures are reported at the end.`,
	Run:          runSweepCmd,
	SilenceUsage: true,
}

func runSweepCmd(cmd *cobra.Command, args []string) {
	logging.Info("Executing sweepctl sweep command...")

	fsys := afero.NewOsFs()
	cfg, err := config.Load(fsys, configPath)
	if err != nil {
		logging.Fatal("Failed to load sweep config: %v", err)
	}
	applyFlagOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		logging.Fatal("%v", err)
	}

	tmpl, err := render.Load(fsys, cfg.Template)
	if err != nil {
		logging.Fatal("Failed to load job template: %v", err)
	}

	client, err := buildClient(fsys, cfg)
	if err != nil {
		logging.Fatal("Failed to create submission client: %v", err)
	}

	dispatcher := &sweep.Dispatcher{
		Dimensions:   cfg.SweepDimensions(),
		Renderer:     tmpl,
		Client:       client,
		WorkloadName: cfg.WorkloadName,
		Workers:      cfg.Workers,
	}

	total := sweep.Size(dispatcher.Dimensions)
	logging.Info("Sweeping %d dimensions, %d combinations.", len(dispatcher.Dimensions), total)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := dispatcher.Run(ctx)
	if err != nil {
		logging.Fatal("sweepctl sweep failed: %v", err)
	}
	for _, f := range report.Failures {
		logging.Error("%v", f.Err)
	}
	if err := report.Err(); err != nil {
		logging.Fatal("%v", err)
	}
	logging.Info("Submitted %d of %d job requests.", report.Submitted, report.Attempted)
}

func applyFlagOverrides(cfg *config.Config) {
	if templatePath != "" {
		cfg.Template = templatePath
	}
	if workloadName != "" {
		cfg.WorkloadName = workloadName
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if namespace != "" {
		cfg.Namespace = namespace
	}
	if clusterName != "" {
		cfg.Cluster.Name = clusterName
	}
	if clusterLocation != "" {
		cfg.Cluster.Location = clusterLocation
	}
	if projectID != "" {
		cfg.Cluster.Project = projectID
	}
}

func buildClient(fsys afero.Fs, cfg *config.Config) (orchestrator.SubmissionClient, error) {
	if outputDir != "" {
		logging.Info("Writing rendered manifests to %s instead of submitting.", outputDir)
		return manifestdir.New(fsys, outputDir), nil
	}
	if useKubectl {
		client := &kubectl.Client{
			ClusterName:     cfg.Cluster.Name,
			ClusterLocation: cfg.Cluster.Location,
			ProjectID:       cfg.Cluster.Project,
			Namespace:       cfg.Namespace,
		}
		if err := client.Configure(); err != nil {
			return nil, err
		}
		return client, nil
	}
	return kube.New(kubeconfigPath, cfg.Namespace)
}
