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

// Package measurement provides a flat, key-value view of collected facts.
//
// # Core Types
//
//   - Type: the measurement source (PowerHA, Host)
//   - Measurement: a Type and a slice of Subtypes
//   - Subtype: named collection of readings (e.g. "cluster", "daemons")
//   - Reading: interface for type-safe scalar values (int, string, bool)
//
// The nested PowerHA model is flattened into subtypes whose keys are dotted
// paths, such as "prod_rg.state.node1" in the "resource-groups" subtype.
// This view is easy to diff and to filter, while the snapshot keeps the
// full model alongside it.
//
// # Building Measurements
//
//	m := measurement.NewMeasurement(measurement.TypePowerHA).
//	    WithSubtypeBuilder(
//	        measurement.NewSubtypeBuilder(measurement.SubtypeCluster).
//	            SetString(measurement.KeyClusterName, "prod_cl").
//	            SetOptional(measurement.KeyRepoDisk, facts.RepoDisk),
//	    ).
//	    Build()
//
// Builders without readings are skipped so the result always validates.
//
// # Filtering Data
//
// Remove sensitive keys using wildcard patterns:
//
//	m.Redact([]string{"snmp-community", "*-script"})
//
// FilterOut and FilterIn apply the same patterns to a single readings map.
//
// # Serialization
//
// Readings marshal to their underlying value, so JSON and YAML output
// carries no wrapper objects. Subtype implements custom unmarshalers that
// restore Readings from decoded values.
package measurement
