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
	"encoding/json"
	"strings"
)

// Architecture is the cluster-membership technology generation.
type Architecture string

const (
	// ArchitectureRSCT is PowerHA 6 on Reliable Scalable Cluster Technology.
	ArchitectureRSCT Architecture = "RSCT"
	// ArchitectureCAA is PowerHA 7 on Cluster-Aware AIX.
	ArchitectureCAA Architecture = "CAA"
	// ArchitectureUnknown is any other release.
	ArchitectureUnknown Architecture = "UNKNOWN"
)

// ArchitectureFromVersion derives the architecture from the leading
// character of a fileset version such as "7.2.5.0".
func ArchitectureFromVersion(version string) Architecture {
	switch {
	case strings.HasPrefix(version, "6"):
		return ArchitectureRSCT
	case strings.HasPrefix(version, "7"):
		return ArchitectureCAA
	default:
		return ArchitectureUnknown
	}
}

// SplitAttributes lists the resource group attribute names whose values
// are whitespace-separated token lists rather than scalars.
var SplitAttributes = []string{
	"disk",
	"volume_group",
	"concurrent_volume_group",
	"filesystem",
	"export_filesystem",
	"shared_tape_resources",
	"aix_connections_services",
	"aix_fast_connect_services",
	"communication_links",
	"applications",
	"mount_filesystem",
	"service_label",
	"nfs_network",
	"node_priority_policy",
	"nodes",
	"gmd_rep_resource",
	"pprc_rep_resource",
	"ercmf_rep_resource",
	"sr_rep_resource",
	"tc_rep_resource",
	"genxd_rep_resource",
	"svcpprc_rep_resource",
	"gmvg_rep_resource",
	"primarynodes",
	"secondarynodes",
	"export_filesystem_v4",
	"stable_storage_path",
	"userdefined_resources",
	"raw_disk",
}

var splitAttributeSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(SplitAttributes))
	for _, name := range SplitAttributes {
		m[name] = struct{}{}
	}
	return m
}()

// IsSplitAttribute reports whether name holds a token list.
func IsSplitAttribute(name string) bool {
	_, ok := splitAttributeSet[name]
	return ok
}

// ClusterFacts describes a PowerHA cluster as observed from the local node.
// When Installed is false every other field is zero.
type ClusterFacts struct {
	Installed     bool         `json:"installed" yaml:"installed"`
	Version       *string      `json:"version" yaml:"version"`
	Architecture  Architecture `json:"architecture" yaml:"architecture"`
	ClusterID     *string      `json:"cluster_id" yaml:"cluster_id"`
	ClusterName   *string      `json:"cluster_name" yaml:"cluster_name"`
	NodeName      *string      `json:"node_name" yaml:"node_name"`
	RepoDisk      *string      `json:"repo_disk" yaml:"repo_disk"`
	SNMPCommunity *string      `json:"snmp_community" yaml:"snmp_community"`
	AnyRGActive   bool         `json:"any_rg_active" yaml:"any_rg_active"`

	// ActiveRGs lists resource groups online on this node in discovery order.
	ActiveRGs []string `json:"active_rgs" yaml:"active_rgs"`

	// Daemons maps subsystem name to process ID. A nil PID means the
	// subsystem is not running.
	Daemons        map[string]*string        `json:"daemons" yaml:"daemons"`
	Sites          map[string]*Site          `json:"sites" yaml:"sites"`
	Networks       map[string]*Network       `json:"networks" yaml:"networks"`
	Nodes          map[string]Node           `json:"nodes" yaml:"nodes"`
	ResourceGroups map[string]*ResourceGroup `json:"resource_groups" yaml:"resource_groups"`
	Applications   map[string]*Application   `json:"applications" yaml:"applications"`
}

// notInstalled is the serialized form of a host without PowerHA.
type notInstalled struct {
	Installed bool `json:"installed" yaml:"installed"`
}

type clusterFactsAlias ClusterFacts

// MarshalJSON emits only the installed flag when PowerHA is absent.
func (f ClusterFacts) MarshalJSON() ([]byte, error) {
	if !f.Installed {
		return json.Marshal(notInstalled{})
	}
	return json.Marshal(clusterFactsAlias(f))
}

// MarshalYAML emits only the installed flag when PowerHA is absent.
func (f ClusterFacts) MarshalYAML() (any, error) {
	if !f.Installed {
		return notInstalled{}, nil
	}
	return clusterFactsAlias(f), nil
}

// Site is a named group of nodes used for placement policy.
type Site struct {
	Nodes      []string `json:"nodes" yaml:"nodes"`
	Dominance  string   `json:"dominance" yaml:"dominance"`
	Protection string   `json:"protection" yaml:"protection"`
	Priority   string   `json:"priority" yaml:"priority"`
	HMCs       []string `json:"hmcs" yaml:"hmcs"`
}

// Network is a cluster network definition.
type Network struct {
	Attribute     string `json:"attribute" yaml:"attribute"`
	Alias         string `json:"alias" yaml:"alias"`
	MonitorMethod string `json:"monitor_method" yaml:"monitor_method"`
}

// Node maps interface name to the interface definition.
type Node map[string]*Interface

// Interface is one network interface of a cluster node. An interface can
// serve several roles, each carrying a value per participant.
type Interface struct {
	Type       string `json:"type" yaml:"type"`
	Visibility string `json:"visibility" yaml:"visibility"`

	// Roles maps role to participant to value (usually an IP label).
	Roles map[string]map[string]string `json:"roles" yaml:"roles"`
}

// ResourceGroup is a cluster-managed unit of application ownership.
type ResourceGroup struct {
	Type         string `json:"type" yaml:"type"`
	OnlineWhere  string `json:"online_where" yaml:"online_where"`
	FailoverTo   string `json:"failover_to" yaml:"failover_to"`
	FallbackWhen string `json:"fallback_when" yaml:"fallback_when"`

	// NodeStatus maps node name to the group state on that node.
	NodeStatus map[string]string `json:"node_status" yaml:"node_status"`

	// Attributes holds the resource definitions of the group keyed by
	// lower-cased column name.
	Attributes map[string]Attribute `json:"attributes" yaml:"attributes"`
}

// Attribute is a resource group attribute value. Attributes named in
// SplitAttributes carry Tokens; all others carry Value.
type Attribute struct {
	Value  string
	Tokens []string
}

// Scalar returns a scalar attribute.
func Scalar(v string) Attribute {
	return Attribute{Value: v}
}

// List returns a token list attribute split on whitespace. An empty
// string yields an empty, non-nil list.
func List(v string) Attribute {
	tokens := strings.Fields(v)
	if tokens == nil {
		tokens = []string{}
	}
	return Attribute{Value: v, Tokens: tokens}
}

// IsList reports whether the attribute is a token list.
func (a Attribute) IsList() bool {
	return a.Tokens != nil
}

// String returns the raw attribute value.
func (a Attribute) String() string {
	return a.Value
}

// MarshalJSON encodes a list attribute as an array and a scalar as a string.
func (a Attribute) MarshalJSON() ([]byte, error) {
	if a.IsList() {
		return json.Marshal(a.Tokens)
	}
	return json.Marshal(a.Value)
}

// MarshalYAML encodes a list attribute as a sequence and a scalar as a string.
func (a Attribute) MarshalYAML() (any, error) {
	if a.IsList() {
		return a.Tokens, nil
	}
	return a.Value, nil
}

// Application is an application controller defined in the cluster.
// ForeBack and Monitor are only reported on CAA clusters.
type Application struct {
	StartScript string  `json:"start_script" yaml:"start_script"`
	StopScript  string  `json:"stop_script" yaml:"stop_script"`
	ForeBack    *string `json:"fore_back,omitempty" yaml:"fore_back,omitempty"`
	Monitor     *string `json:"monitor,omitempty" yaml:"monitor,omitempty"`
}
