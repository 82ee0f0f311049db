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

// Package lines splits delimiter-based command output into field records.
//
// PowerHA and AIX utilities print colon-separated rows (the "-c" output
// mode) or whitespace-aligned columns. Parser turns such text into
// records, dropping blank lines, comment lines and lines that start with
// a tool-specific label.
//
// # Records
//
//	p := lines.NewParser(lines.WithDelimiter(":"))
//	for _, fields := range p.Records(out) {
//	    id, _ := lines.Field(fields, 0)
//	    name, _ := lines.Field(fields, 1)
//	}
//
// # Header-keyed tables
//
// Some utilities print a "#"-prefixed header naming the columns. Table
// parses such output in two phases: the header line builds a name to
// index table, then each data line is looked up by name:
//
//	for _, row := range p.Table(out) {
//	    disks, ok := row.Get("disk")
//	}
//
// The leading "#" is stripped from the first name only and names are
// lower-cased. Header and data widths often disagree: a name without a
// matching data field is absent and data fields past the header are
// ignored. Data lines seen before any header are dropped.
//
// Trailing empty fields are dropped when splitting, so "a:b::" yields
// two fields. A trailing empty value is therefore absent, not "".
package lines
