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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	haerrors "github.com/NVIDIA/hafacts/pkg/errors"
)

const replayDir = "../collector/powerha/testdata/caa"

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name}, args...))
}

func replayArgs(out, format string) []string {
	return []string{
		"collect",
		"--replay-dir", replayDir,
		"--hostname", "aixnode1",
		"--fqdn", "aixnode1.example.com",
		"-t", format,
		"-o", out,
	}
}

func TestCollect_JSONFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "facts.json")

	require.NoError(t, runCLI(t, replayArgs(out, "json")...))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "ClusterFacts", doc["kind"])

	facts, ok := doc["powerha"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "prod_cl", facts["cluster_name"])
	assert.Nil(t, facts["snmp_community"])
}

func TestCollect_YAMLFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "facts.yaml")

	require.NoError(t, runCLI(t, replayArgs(out, "yaml")...))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "ClusterFacts", doc["kind"])
}

func TestCollect_TableFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "facts.txt")

	require.NoError(t, runCLI(t, replayArgs(out, "table")...))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "FIELD"), "table output starts with the header row")
	assert.Contains(t, string(data), "prod_cl")
}

func TestCollect_NoRedaction(t *testing.T) {
	out := filepath.Join(t.TempDir(), "facts.json")

	args := append(replayArgs(out, "json"), "--redact", "none")
	require.NoError(t, runCLI(t, args...))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc struct {
		PowerHA struct {
			SNMPCommunity *string `json:"snmp_community"`
		} `json:"powerha"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.NotNil(t, doc.PowerHA.SNMPCommunity)
	assert.Equal(t, "public", *doc.PowerHA.SNMPCommunity)
}

func TestCollect_InvalidFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "facts.xml")

	err := runCLI(t, replayArgs(out, "xml")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "nothing is written on a bad format")
}

func TestCollect_MissingOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "facts.json")

	err := runCLI(t, replayArgs(out, "json")...)
	require.Error(t, err)
}

func TestCollect_InvalidConfigMapURI(t *testing.T) {
	err := runCLI(t, replayArgs("cm://only-namespace", "json")...)
	require.Error(t, err)
}

func TestFactoryOptions_EnvVars(t *testing.T) {
	t.Setenv("HAFACTS_REPLAY_DIR", replayDir)
	t.Setenv("HAFACTS_HOSTNAME", "aixnode1")
	t.Setenv("HAFACTS_FQDN", "aixnode1.example.com")
	t.Setenv("HAFACTS_FORMAT", "json")

	out := filepath.Join(t.TempDir(), "facts.json")
	require.NoError(t, runCLI(t, "collect", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"generic", errors.New("boom"), 1},
		{"canceled", fmt.Errorf("collect: %w", context.Canceled), 2},
		{"deadline", context.DeadlineExceeded, 2},
		{"timeout code", haerrors.New(haerrors.ErrCodeTimeout, "collection timed out"), 2},
		{"internal code", haerrors.New(haerrors.ErrCodeInternal, "failed"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRootCmd_LogLevel(t *testing.T) {
	// global flags are accepted before the subcommand
	err := runCLI(t, "--debug", "--log-level", "warn", "collect", "--format", "bogus")
	require.Error(t, err)
}

func TestCollectCmd_DescribesCollectedFacts(t *testing.T) {
	desc := collectCmd().Description

	for _, want := range []string{"architecture", "SNMP community", "daemon PIDs", "resource groups", "applications"} {
		assert.Contains(t, desc, want)
	}
	for _, absent := range []string{"edition", "substate", "local disks"} {
		assert.NotContains(t, desc, absent)
	}
}
