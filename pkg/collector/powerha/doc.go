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

// Package powerha collects IBM PowerHA SystemMirror facts on AIX.
//
// The collector runs the PowerHA and AIX query utilities in a fixed
// order, parses their colon- or whitespace-delimited output and merges
// the records into a single ClusterFacts model.
//
// # Sources
//
//	lslpp -lc cluster.es.server.rte   installed version
//	cllsclstr -c                      cluster id, name, repository disk
//	cl_community_name                 SNMP community
//	lssrc -g cluster                  cluster subsystems and PIDs
//	cllssite -c                       sites
//	cllsnw -c                         networks
//	cllsnode -c                       nodes and interfaces
//	clRGinfo -c                       resource group states
//	cllsres -c -g <group>             resource group definitions
//	cllsserv -c                       application controllers
//
// The PowerHA utilities are resolved under Paths.Utilities, which defaults
// to /usr/es/sbin/cluster/utilities.
//
// # Behavior
//
// Without the server fileset the result is ClusterFacts{Installed: false}
// and nothing else is run. A utility that is missing, fails or prints
// nothing leaves its section empty. Sources expected to print a single
// record keep the last one.
//
// The local node is found by matching the host name and FQDN against the
// node interface participants. A resource group is active on this node
// when a status line names the host name, the FQDN or the resolved node
// name with status ONLINE.
//
// # Usage
//
//	id, err := host.Resolve(ctx)
//	if err != nil {
//	    return err
//	}
//	c := powerha.NewCollector(powerha.WithIdentity(id))
//	facts, err := c.Collect(ctx)
//
// Recorded command output can be replayed on any host:
//
//	c := powerha.NewCollector(
//	    powerha.WithRunner(runner.NewReplayRunner("/var/tmp/capture")),
//	)
package powerha
