// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hafacts/pkg/collector"
	"github.com/NVIDIA/hafacts/pkg/collector/powerha"
	"github.com/NVIDIA/hafacts/pkg/defaults"
	"github.com/NVIDIA/hafacts/pkg/serializer"
	"github.com/NVIDIA/hafacts/pkg/snapshotter"
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collect",
		EnableShellCompletion: true,
		Usage:                 "Collect PowerHA cluster facts",
		Description: `Collect PowerHA SystemMirror facts from the local node:
  - installed fileset level and architecture (RSCT or CAA)
  - cluster id and name, repository disk and SNMP community
  - the local node name and cluster daemon PIDs
  - sites, networks and node interfaces
  - resource groups with their policies, per-node state and resources
  - applications and the resource groups active on this node

Nodes without PowerHA report only installed: false.

The output can be JSON, YAML or table, written to stdout, a file or a
Kubernetes ConfigMap.

# Examples

Collect to stdout:
  hafacts collect

Collect to a file as JSON:
  hafacts collect -t json -o /var/tmp/hafacts.json

Publish into a ConfigMap:
  hafacts collect -o cm://inventory/aixnode1-hafacts

Replay captured command output:
  hafacts collect --replay-dir ./capture --hostname aixnode1 --fqdn aixnode1.example.com`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "utilities-dir",
				Usage:   "PowerHA utilities directory",
				Value:   powerha.DefaultPaths().Utilities,
				Sources: cli.EnvVars("HAFACTS_UTILITIES_DIR"),
			},
			&cli.StringFlag{
				Name:    "lslpp",
				Usage:   "path of the lslpp command",
				Value:   powerha.DefaultPaths().LSLPP,
				Sources: cli.EnvVars("HAFACTS_LSLPP"),
			},
			&cli.StringFlag{
				Name:    "lssrc",
				Usage:   "path of the lssrc command",
				Value:   powerha.DefaultPaths().LSSRC,
				Sources: cli.EnvVars("HAFACTS_LSSRC"),
			},
			&cli.DurationFlag{
				Name:    "command-timeout",
				Usage:   "timeout for each command",
				Value:   defaults.CommandTimeout,
				Sources: cli.EnvVars("HAFACTS_COMMAND_TIMEOUT"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "timeout for the whole collection",
				Value:   defaults.CollectorTimeout,
				Sources: cli.EnvVars("HAFACTS_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "hostname",
				Usage:   "override the short host name used to find the local node",
				Sources: cli.EnvVars("HAFACTS_HOSTNAME"),
			},
			&cli.StringFlag{
				Name:    "fqdn",
				Usage:   "override the fully qualified host name",
				Sources: cli.EnvVars("HAFACTS_FQDN"),
			},
			&cli.StringFlag{
				Name:    "replay-dir",
				Usage:   "read captured command output from this directory instead of running commands",
				Sources: cli.EnvVars("HAFACTS_REPLAY_DIR"),
			},
			redactFlag,
			outputFlag,
			formatFlag,
			kubeconfigFlag,
		},
		Action: runCollect,
	}
}

func runCollect(ctx context.Context, cmd *cli.Command) (err error) {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"),
		serializer.WithKubeconfig(cmd.String("kubeconfig")))
	if err != nil {
		return err
	}
	defer func() {
		if c, ok := ser.(serializer.Closer); ok {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to write output: %w", cerr)
			}
		}
	}()

	ns := snapshotter.NodeSnapshotter{
		Version:    version,
		Factory:    collector.NewDefaultFactory(factoryOptions(cmd)...),
		Serializer: ser,
		Redact:     redactPatterns(cmd),
		Timeout:    cmd.Duration("timeout"),
	}

	slog.Debug("collecting",
		"format", outFormat,
		"output", cmd.String("output"),
		"redact", ns.Redact)

	return ns.Measure(ctx)
}

func factoryOptions(cmd *cli.Command) []collector.Option {
	opts := []collector.Option{
		collector.WithPaths(powerha.Paths{
			LSLPP:     cmd.String("lslpp"),
			LSSRC:     cmd.String("lssrc"),
			Utilities: cmd.String("utilities-dir"),
		}),
		collector.WithCommandTimeout(cmd.Duration("command-timeout")),
		collector.WithIdentity(cmd.String("hostname"), cmd.String("fqdn")),
	}
	if dir := cmd.String("replay-dir"); dir != "" {
		opts = append(opts, collector.WithReplayDir(dir))
	}
	return opts
}
