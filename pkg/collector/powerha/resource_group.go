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

const (
	rgStatusFields = 7
	rgMinFields    = 3
	rgOnline       = "ONLINE"
)

// collectResourceGroups reads the resource group states and merges in the
// resource definitions of every group.
//
//	rg1:ONLINE:nodeA:non-concurrent:OHN:FNPN:NFB
//	rg1:OFFLINE:nodeB:non-concurrent:OHN:FNPN:NFB
//
// Some releases print non-ASCII bytes in this output, so lines are
// reduced to printable ASCII before they are split.
func (c *Collector) collectResourceGroups(ctx context.Context, facts *ClusterFacts) {
	out, ok := c.runner.Run(ctx, c.paths.utility("clRGinfo"), "-c")
	if !ok {
		return
	}

	parser := lines.NewParser(
		lines.WithSanitize(true),
		lines.WithFieldLimit(rgStatusFields),
		lines.WithSkipPrefixes("clRGinfo:"),
	)

	rc := &rgCorrelator{collector: c, facts: facts}
	for _, fields := range parser.Records(out) {
		if len(fields) < rgMinFields {
			slog.Debug("skipping short resource group line", "fields", len(fields))
			continue
		}
		rc.observe(ctx, fields)
	}

	slog.Debug("collected resource groups",
		"count", len(facts.ResourceGroups),
		"active", len(facts.ActiveRGs))
}

// rgCorrelator merges status lines into resource group records. A group is
// created at its first line, which also fetches its resource definitions.
// Later lines for the group only add node states.
type rgCorrelator struct {
	collector *Collector
	facts     *ClusterFacts
}

func (r *rgCorrelator) observe(ctx context.Context, fields []string) {
	group, status, node := fields[0], fields[1], fields[2]

	rg, seen := r.facts.ResourceGroups[group]
	if !seen {
		rg = &ResourceGroup{
			Type:         field(fields, 3),
			OnlineWhere:  field(fields, 4),
			FailoverTo:   field(fields, 5),
			FallbackWhen: field(fields, 6),
			NodeStatus:   map[string]string{},
			Attributes:   r.collector.resourceAttributes(ctx, group),
		}
		r.facts.ResourceGroups[group] = rg
	}
	rg.NodeStatus[node] = status

	if status == rgOnline && r.collector.isLocalNode(r.facts, node) {
		r.facts.AnyRGActive = true
		r.facts.ActiveRGs = append(r.facts.ActiveRGs, group)
	}
}

// resourceAttributes reads the resource definitions of a group. Columns
// are named by the "#" header line. Values of SplitAttributes columns
// become token lists. When several data lines exist, or a column name
// repeats, the last one wins.
//
//	#NAME:SERVICE_LABEL:DISK:VOLUME_GROUP:FILESYSTEM:APPLICATIONS
//	rg1:svc1:hdisk1 hdisk2:datavg:/data /logs:app1
func (c *Collector) resourceAttributes(ctx context.Context, group string) map[string]Attribute {
	attrs := map[string]Attribute{}

	out, ok := c.runner.Run(ctx, c.paths.utility("cllsres"), "-c", "-g", group)
	if !ok {
		return attrs
	}

	for _, row := range lines.NewParser().Table(out) {
		for _, name := range row.Names() {
			value, ok := row.Get(name)
			if !ok || name == "" {
				continue
			}
			if IsSplitAttribute(name) {
				attrs[name] = List(value)
			} else {
				attrs[name] = Scalar(value)
			}
		}
	}

	return attrs
}
