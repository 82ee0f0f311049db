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

// Package header provides the document header shared by hafacts outputs.
//
// Every document carries a Kind, an APIVersion and a Metadata map, in the
// style of Kubernetes resources:
//
//	kind: ClusterFacts
//	apiVersion: hafacts.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2026-10-16T08:30:00Z"
//	  version: v0.3.0
//	  source-node: aixnode1
//
// # Usage
//
//	var h header.Header
//	h.Init(header.KindClusterFacts, header.APIVersion, version)
//	h.SetMetadata(header.MetadataSourceNode, hostname)
//
// Or with options:
//
//	h := header.New(
//	    header.WithKind(header.KindClusterFacts),
//	    header.WithAPIVersion(header.APIVersion),
//	    header.WithMetadata("site", "dc1"),
//	)
package header
