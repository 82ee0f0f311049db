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

// isLocalNode reports whether a cluster node name refers to this host,
// either by host name, FQDN or the node name resolved from the node
// definitions.
func (c *Collector) isLocalNode(facts *ClusterFacts, node string) bool {
	if node == "" {
		return false
	}
	if c.identity.Matches(node) {
		return true
	}
	return facts.NodeName != nil && *facts.NodeName == node
}
