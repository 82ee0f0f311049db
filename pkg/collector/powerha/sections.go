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

	"github.com/NVIDIA/hafacts/pkg/collector/lines"
)

// collectCluster reads the cluster identity. The repository disk is only
// reported on CAA clusters. The last data line wins.
//
//	#CL_NAME:CL_ID:CL_TYPE:... (header varies by release)
//	1542277463:prod_cl:Standard:...:hdisk2
func (c *Collector) collectCluster(ctx context.Context, facts *ClusterFacts) {
	out, ok := c.runner.Run(ctx, c.paths.utility("cllsclstr"), "-c")
	if !ok {
		slog.Debug("no cluster definition")
		return
	}

	for _, fields := range lines.NewParser().Records(out) {
		facts.ClusterID = optional(fields, 0)
		facts.ClusterName = optional(fields, 1)
		if facts.Architecture == ArchitectureCAA {
			facts.RepoDisk = optional(fields, 4)
		}
	}
}

// collectSNMP reads the community used for cluster status queries.
//
//	Community: public
func (c *Collector) collectSNMP(ctx context.Context, facts *ClusterFacts) {
	out, ok := c.runner.Run(ctx, c.paths.utility("cl_community_name"))
	if !ok {
		return
	}

	parser := lines.NewParser(lines.WithWhitespaceFields())
	for _, fields := range parser.Records(out) {
		facts.SNMPCommunity = optional(fields, 1)
	}
}

// collectDaemons reads the cluster subsystems from the system resource
// controller. Inoperative subsystems have no PID column.
//
//	Subsystem         Group            PID          Status
//	clstrmgrES       cluster          5570740      active
//	clinfoES         cluster                       inoperative
func (c *Collector) collectDaemons(ctx context.Context, facts *ClusterFacts) {
	out, ok := c.runner.Run(ctx, c.paths.LSSRC, "-g", "cluster")
	if !ok {
		return
	}

	parser := lines.NewParser(
		lines.WithWhitespaceFields(),
		lines.WithSkipPrefixes("Subsystem"),
	)
	for _, fields := range parser.Records(out) {
		var pid *string
		if len(fields) >= 4 {
			pid = optional(fields, 2)
		}
		facts.Daemons[fields[0]] = pid
	}

	slog.Debug("collected daemons", "count", len(facts.Daemons))
}

// collectSites reads the site definitions.
//
//	siteA:nodeA1 nodeA2:NO:NONE:1:hmc1 hmc2
func (c *Collector) collectSites(ctx context.Context, facts *ClusterFacts) {
	out, ok := c.runner.Run(ctx, c.paths.utility("cllssite"), "-c")
	if !ok {
		return
	}

	for _, fields := range lines.NewParser().Records(out) {
		facts.Sites[fields[0]] = &Site{
			Nodes:      tokens(fields, 1),
			Dominance:  field(fields, 2),
			Protection: field(fields, 3),
			Priority:   field(fields, 4),
			HMCs:       tokens(fields, 5),
		}
	}

	slog.Debug("collected sites", "count", len(facts.Sites))
}

// collectNetworks reads the network definitions. Only the first four
// columns are reliable; the header names do not line up with the data.
//
//	net_ether_01:public:true:default
func (c *Collector) collectNetworks(ctx context.Context, facts *ClusterFacts) {
	out, ok := c.runner.Run(ctx, c.paths.utility("cllsnw"), "-c")
	if !ok {
		return
	}

	for _, fields := range lines.NewParser().Records(out) {
		facts.Networks[fields[0]] = &Network{
			Attribute:     field(fields, 1),
			Alias:         field(fields, 2),
			MonitorMethod: field(fields, 3),
		}
	}

	slog.Debug("collected networks", "count", len(facts.Networks))
}

// collectApplications reads the application controllers. Fore/back mode
// and monitor only exist on CAA clusters.
//
//	app1:/opt/app/start.sh:/opt/app/stop.sh:background:app1_mon
func (c *Collector) collectApplications(ctx context.Context, facts *ClusterFacts) {
	out, ok := c.runner.Run(ctx, c.paths.utility("cllsserv"), "-c")
	if !ok {
		return
	}

	caa := facts.Architecture == ArchitectureCAA
	for _, fields := range lines.NewParser().Records(out) {
		app := &Application{
			StartScript: field(fields, 1),
			StopScript:  field(fields, 2),
		}
		if caa {
			app.ForeBack = optional(fields, 3)
			app.Monitor = optional(fields, 4)
		}
		facts.Applications[fields[0]] = app
	}

	slog.Debug("collected applications", "count", len(facts.Applications))
}
