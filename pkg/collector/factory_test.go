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

package collector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/hafacts/pkg/collector/powerha"
	"github.com/NVIDIA/hafacts/pkg/collector/runner"
	"github.com/NVIDIA/hafacts/pkg/defaults"
)

func TestNewDefaultFactory_Defaults(t *testing.T) {
	factory := NewDefaultFactory()

	assert.Equal(t, powerha.DefaultPaths(), factory.Paths)
	assert.Equal(t, defaults.CommandTimeout, factory.CommandTimeout)
	assert.Empty(t, factory.ReplayDir)
	assert.Nil(t, factory.Runner)
	assert.IsType(t, &runner.ExecRunner{}, factory.runner())
}

func TestFactoryOptions(t *testing.T) {
	paths := powerha.Paths{LSLPP: "/usr/bin/lslpp", Utilities: "/opt/utils"}
	factory := NewDefaultFactory(
		WithPaths(paths),
		WithCommandTimeout(5*time.Second),
		WithReplayDir("/var/tmp/capture"),
		WithIdentity("aixnode1", "aixnode1.example.com"),
	)

	assert.Equal(t, paths, factory.Paths)
	assert.Equal(t, 5*time.Second, factory.CommandTimeout)
	assert.Equal(t, "aixnode1", factory.Hostname)
	assert.Equal(t, "aixnode1.example.com", factory.FQDN)
	assert.IsType(t, &runner.ReplayRunner{}, factory.runner())

	static := runner.NewStaticRunner(nil)
	factory = NewDefaultFactory(WithReplayDir("/var/tmp/capture"), WithRunner(static))
	assert.Same(t, static, factory.runner())
}

func TestCreatePowerHACollector_Replay(t *testing.T) {
	factory := NewDefaultFactory(
		WithReplayDir("powerha/testdata/caa"),
		WithIdentity("aixnode1", "aixnode1.example.com"),
	)

	col, err := factory.CreatePowerHACollector(context.Background())
	require.NoError(t, err)
	require.NotNil(t, col)

	facts, err := col.Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, facts.Installed)
	assert.Equal(t, ptr.To("prod_cl"), facts.ClusterName)
	assert.Equal(t, ptr.To("node1"), facts.NodeName)
	assert.Equal(t, []string{"prod_rg"}, facts.ActiveRGs)
}

func TestCreatePowerHACollector_NotInstalled(t *testing.T) {
	factory := NewDefaultFactory(
		WithRunner(runner.NewStaticRunner(nil)),
		WithIdentity("h", "h.example.com"),
	)

	col, err := factory.CreatePowerHACollector(context.Background())
	require.NoError(t, err)

	facts, err := col.Collect(context.Background())
	require.NoError(t, err)
	assert.False(t, facts.Installed)
}

func TestCreatePowerHACollector_ResolvesIdentity(t *testing.T) {
	factory := NewDefaultFactory(WithRunner(runner.NewStaticRunner(nil)))

	col, err := factory.CreatePowerHACollector(context.Background())
	if err != nil {
		t.Skipf("hostname not available: %v", err)
	}

	pc, ok := col.(*powerha.Collector)
	require.True(t, ok)
	assert.NotEmpty(t, pc.Identity().Hostname)
}
