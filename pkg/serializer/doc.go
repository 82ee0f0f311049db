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

// Package serializer writes hafacts documents as JSON, YAML or a flat
// FIELD/VALUE table.
//
// # Destinations
//
// NewFileWriterOrStdout maps an output flag to a Serializer:
//
//	""  or "-"              stdout
//	cm://namespace/name     ConfigMapWriter (server-side apply)
//	anything else           Writer that atomically replaces the file on Close
//
// Typical use:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, output)
//	if err != nil {
//	    return err
//	}
//	if c, ok := w.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	return w.Serialize(ctx, snapshot)
//
// # Table Format
//
// Documents are rendered through their JSON form and flattened into dotted
// keys, so the table uses the same names as the JSON output:
//
//	FIELD                       VALUE
//	-----                       -----
//	powerha.cluster_name        prodcluster
//	powerha.installed           true
//	powerha.version             7.2.5.1
//
// # HTTP
//
// RespondJSON and RespondYAML buffer the encoding before writing headers so
// an encoding error becomes a 500 instead of a truncated 200.
package serializer
