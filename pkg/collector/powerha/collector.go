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

package powerha

import (
	"context"
	"log/slog"
	"path/filepath"

	"k8s.io/utils/ptr"

	"github.com/NVIDIA/hafacts/pkg/collector/host"
	"github.com/NVIDIA/hafacts/pkg/collector/lines"
	"github.com/NVIDIA/hafacts/pkg/collector/runner"
	"github.com/NVIDIA/hafacts/pkg/errors"
)

const (
	// DefaultLSLPP is the AIX fileset query utility.
	DefaultLSLPP = "/bin/lslpp"
	// DefaultLSSRC is the AIX system resource controller query utility.
	DefaultLSSRC = "/bin/lssrc"
	// DefaultUtilities is the PowerHA utilities directory.
	DefaultUtilities = "/usr/es/sbin/cluster/utilities"

	serverFileset = "cluster.es.server.rte"
)

// Paths locates the commands the collector runs.
type Paths struct {
	LSLPP     string
	LSSRC     string
	Utilities string
}

// DefaultPaths returns the standard AIX locations.
func DefaultPaths() Paths {
	return Paths{
		LSLPP:     DefaultLSLPP,
		LSSRC:     DefaultLSSRC,
		Utilities: DefaultUtilities,
	}
}

func (p Paths) utility(name string) string {
	return filepath.Join(p.Utilities, name)
}

// Option configures a Collector.
type Option func(*Collector)

// WithRunner sets the command runner. Default is runner.NewExecRunner().
func WithRunner(r runner.Runner) Option {
	return func(c *Collector) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithIdentity sets the names the local host is known by.
func WithIdentity(id host.Identity) Option {
	return func(c *Collector) {
		c.identity = id
	}
}

// WithPaths sets the command locations. Empty fields keep their defaults.
func WithPaths(p Paths) Option {
	return func(c *Collector) {
		if p.LSLPP != "" {
			c.paths.LSLPP = p.LSLPP
		}
		if p.LSSRC != "" {
			c.paths.LSSRC = p.LSSRC
		}
		if p.Utilities != "" {
			c.paths.Utilities = p.Utilities
		}
	}
}

// Collector gathers PowerHA facts by running the cluster utilities in a
// fixed order. It holds no state between calls.
type Collector struct {
	runner   runner.Runner
	identity host.Identity
	paths    Paths
}

// NewCollector creates a Collector with the provided options.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		runner: runner.NewExecRunner(),
		paths:  DefaultPaths(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Identity returns the host identity used for node matching.
func (c *Collector) Identity() host.Identity {
	return c.identity
}

type section struct {
	name    string
	collect func(context.Context, *ClusterFacts)
}

// Collect builds a fresh ClusterFacts. A host without the PowerHA server
// fileset yields Installed=false and no other command is run. Missing
// utilities leave their sections empty. Only cancellation of ctx is
// reported as an error.
func (c *Collector) Collect(ctx context.Context) (*ClusterFacts, error) {
	slog.Info("collecting powerha facts")

	if err := ctx.Err(); err != nil {
		return nil, canceled("version", err)
	}

	version, ok := c.collectVersion(ctx)
	if err := ctx.Err(); err != nil {
		return nil, canceled("version", err)
	}
	if !ok {
		slog.Info("powerha not installed", "fileset", serverFileset)
		return &ClusterFacts{Installed: false}, nil
	}

	facts := newClusterFacts(version)

	sections := []section{
		{"cluster", c.collectCluster},
		{"snmp", c.collectSNMP},
		{"daemons", c.collectDaemons},
		{"sites", c.collectSites},
		{"networks", c.collectNetworks},
		{"nodes", c.collectNodes},
		{"resource-groups", c.collectResourceGroups},
		{"applications", c.collectApplications},
	}

	for _, s := range sections {
		if err := ctx.Err(); err != nil {
			return nil, canceled(s.name, err)
		}
		s.collect(ctx, facts)
	}
	if err := ctx.Err(); err != nil {
		return nil, canceled("applications", err)
	}

	slog.Info("powerha facts collected",
		"version", version,
		"architecture", facts.Architecture,
		"nodes", len(facts.Nodes),
		"resource_groups", len(facts.ResourceGroups),
		"active_rgs", len(facts.ActiveRGs))

	return facts, nil
}

func newClusterFacts(version string) *ClusterFacts {
	return &ClusterFacts{
		Installed:      true,
		Version:        ptr.To(version),
		Architecture:   ArchitectureFromVersion(version),
		ActiveRGs:      []string{},
		Daemons:        map[string]*string{},
		Sites:          map[string]*Site{},
		Networks:       map[string]*Network{},
		Nodes:          map[string]Node{},
		ResourceGroups: map[string]*ResourceGroup{},
		Applications:   map[string]*Application{},
	}
}

func canceled(section string, err error) error {
	return errors.WrapWithContext(errors.ErrCodeTimeout, "powerha collection canceled", err,
		map[string]any{"section": section})
}

// collectVersion reads the installed level of the server fileset.
//
//	#Path:Fileset:Level:PTF Id:State:Type:Description:EFIX Locked
//	/usr/lib/objrepos:cluster.es.server.rte:7.2.5.0: :COMMITTED:I:Base Server Runtime:
func (c *Collector) collectVersion(ctx context.Context) (string, bool) {
	out, ok := c.runner.Run(ctx, c.paths.LSLPP, "-lc", serverFileset)
	if !ok {
		return "", false
	}

	var version *string
	for _, fields := range lines.NewParser().Records(out) {
		version = optional(fields, 2)
	}
	if version == nil {
		return "", false
	}
	return *version, true
}

// field returns fields[i] or "" when absent.
func field(fields []string, i int) string {
	v, _ := lines.Field(fields, i)
	return v
}

// optional returns a pointer to fields[i] or nil when absent.
func optional(fields []string, i int) *string {
	v, ok := lines.Field(fields, i)
	if !ok {
		return nil
	}
	return ptr.To(v)
}

// tokens splits a whitespace-separated list. Empty input yields an empty,
// non-nil slice.
func tokens(fields []string, i int) []string {
	return List(field(fields, i)).Tokens
}
