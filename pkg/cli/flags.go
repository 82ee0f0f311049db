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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/hafacts/pkg/measurement"
	"github.com/NVIDIA/hafacts/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output destination: file path, cm://namespace/name or - for stdout",
		Sources: cli.EnvVars("HAFACTS_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatYAML),
		Sources: cli.EnvVars("HAFACTS_FORMAT"),
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "kubeconfig for cm:// output (default: in-cluster or $KUBECONFIG)",
		Sources: cli.EnvVars("HAFACTS_KUBECONFIG"),
	}

	redactFlag = &cli.StringSliceFlag{
		Name:    "redact",
		Usage:   "measurement keys to remove from the output, * globs allowed; none disables",
		Value:   []string{measurement.KeySNMPCommunity},
		Sources: cli.EnvVars("HAFACTS_REDACT"),
	}
)

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// redactPatterns returns the --redact patterns. "none" disables redaction.
func redactPatterns(cmd *cli.Command) []string {
	patterns := []string{}
	for _, p := range cmd.StringSlice("redact") {
		p = strings.TrimSpace(p)
		if strings.EqualFold(p, "none") {
			return []string{}
		}
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
