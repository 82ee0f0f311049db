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
	"strings"

	"k8s.io/utils/ptr"

	"github.com/NVIDIA/hafacts/pkg/measurement"
	"github.com/NVIDIA/hafacts/pkg/version"
)

const notRunning = "inoperative"

// Measurement flattens the facts into a PowerHA measurement with the
// cluster, daemons, resource-groups and applications subtypes. Nested
// values use dotted keys such as "<group>.state.<node>". Subtypes without
// data are omitted.
func (f *ClusterFacts) Measurement() *measurement.Measurement {
	cluster := measurement.NewSubtypeBuilder(measurement.SubtypeCluster).
		SetBool(measurement.KeyInstalled, f.Installed)

	if !f.Installed {
		return measurement.NewMeasurement(measurement.TypePowerHA).
			WithSubtypeBuilder(cluster).
			Build()
	}

	cluster.
		SetOptional(measurement.KeyVersion, f.Version).
		SetString(measurement.KeyArchitecture, string(f.Architecture)).
		SetOptional(measurement.KeyClusterID, f.ClusterID).
		SetOptional(measurement.KeyClusterName, f.ClusterName).
		SetOptional(measurement.KeyNodeName, f.NodeName).
		SetOptional(measurement.KeyRepoDisk, f.RepoDisk).
		SetOptional(measurement.KeySNMPCommunity, f.SNMPCommunity).
		SetBool(measurement.KeyAnyRGActive, f.AnyRGActive).
		SetString(measurement.KeyActiveRGs, strings.Join(f.ActiveRGs, ",")).
		SetInt(measurement.KeyNodeCount, len(f.Nodes)).
		SetInt(measurement.KeySiteCount, len(f.Sites)).
		SetInt(measurement.KeyNetworkCount, len(f.Networks))
	setLevel(cluster, f.Version)

	daemons := measurement.NewSubtypeBuilder(measurement.SubtypeDaemons)
	for name, pid := range f.Daemons {
		daemons.SetString(name, ptr.Deref(pid, notRunning))
	}

	groups := measurement.NewSubtypeBuilder(measurement.SubtypeResourceGroups)
	for name, rg := range f.ResourceGroups {
		groups.
			SetString(name+".type", rg.Type).
			SetString(name+".online-where", rg.OnlineWhere).
			SetString(name+".failover-to", rg.FailoverTo).
			SetString(name+".fallback-when", rg.FallbackWhen)
		for node, status := range rg.NodeStatus {
			groups.SetString(name+".state."+node, status)
		}
		for attr, value := range rg.Attributes {
			groups.SetString(name+".attr."+attr, attributeString(value))
		}
	}

	apps := measurement.NewSubtypeBuilder(measurement.SubtypeApplications)
	for name, app := range f.Applications {
		apps.
			SetString(name+".start-script", app.StartScript).
			SetString(name+".stop-script", app.StopScript).
			SetOptional(name+".fore-back", app.ForeBack).
			SetOptional(name+".monitor", app.Monitor)
	}

	return measurement.NewMeasurement(measurement.TypePowerHA).
		WithSubtypeBuilder(cluster).
		WithSubtypeBuilder(daemons).
		WithSubtypeBuilder(groups).
		WithSubtypeBuilder(apps).
		Build()
}

// setLevel adds the release, technology level and service pack derived
// from the fileset level. Unparseable levels add nothing.
func setLevel(b *measurement.SubtypeBuilder, level *string) {
	if level == nil {
		return
	}
	l, err := version.Parse(*level)
	if err != nil || l.Precision < 2 {
		return
	}
	b.SetString(measurement.KeyRelease, l.ReleaseName())
	if l.Precision == version.MaxPrecision {
		b.SetInt(measurement.KeyTechLevel, l.Modification).
			SetInt(measurement.KeyServicePack, l.Fix)
	}
}

// attributeString renders list attributes comma-separated.
func attributeString(a Attribute) string {
	if !a.IsList() {
		return a.Value
	}
	return strings.Join(a.Tokens, ",")
}
