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

	"k8s.io/utils/ptr"

	"github.com/NVIDIA/hafacts/pkg/collector/lines"
)

const (
	nodeGroupWidth    = 6
	serviceGroupWidth = 7
	serviceRole       = "service"
)

// collectNodes reads the node definitions. After the node name each line
// repeats groups of participant, role, interface, type, visibility and
// value. Groups whose role is "service" carry one extra field.
//
//	nodeA:nodeA:boot:en0:ether:public:10.0.0.1:nodeA_svc:service:en0:ether:public:10.0.0.10:x
//
// A participant naming the local host resolves NodeName.
func (c *Collector) collectNodes(ctx context.Context, facts *ClusterFacts) {
	out, ok := c.runner.Run(ctx, c.paths.utility("cllsnode"), "-c")
	if !ok {
		return
	}

	for _, fields := range lines.NewParser().Records(out) {
		name := fields[0]
		node := Node{}
		facts.Nodes[name] = node

		for i := 1; i < len(fields); {
			participant := fields[i]
			role := field(fields, i+1)

			iface, ok := lines.Field(fields, i+2)
			if !ok {
				slog.Debug("ignoring node group without interface", "node", name, "offset", i)
				break
			}

			def, seen := node[iface]
			if !seen {
				def = &Interface{
					Type:       field(fields, i+3),
					Visibility: field(fields, i+4),
					Roles:      map[string]map[string]string{},
				}
				node[iface] = def
			}
			if def.Roles[role] == nil {
				def.Roles[role] = map[string]string{}
			}
			def.Roles[role][participant] = field(fields, i+5)

			if c.identity.Matches(participant) {
				facts.NodeName = ptr.To(name)
			}

			if role == serviceRole {
				i += serviceGroupWidth
			} else {
				i += nodeGroupWidth
			}
		}
	}

	slog.Debug("collected nodes", "count", len(facts.Nodes), "local", ptr.Deref(facts.NodeName, ""))
}
