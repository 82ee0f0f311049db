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

package runner

import (
	"context"
	"path/filepath"
	"strings"
)

// Runner runs a command and returns its standard output.
// The boolean is false when the command produced nothing usable.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, bool)
}

// Key returns the canonical identifier of a command line: the base name of
// the executable followed by its arguments, joined by underscores.
//
//	Key("/usr/es/sbin/cluster/utilities/cllsres", "-c", "-g", "rg1") == "cllsres_-c_-g_rg1"
func Key(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, filepath.Base(name))
	parts = append(parts, args...)
	return strings.Join(parts, "_")
}
