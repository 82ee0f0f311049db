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
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"
)

// ReplayRunner serves captured command output from files in Dir.
// The file for a command line is named by Key, optionally with a ".txt"
// extension. A missing or empty file behaves like a command that failed.
type ReplayRunner struct {
	Dir string
}

// NewReplayRunner creates a ReplayRunner reading from dir.
func NewReplayRunner(dir string) *ReplayRunner {
	return &ReplayRunner{Dir: dir}
}

// Run returns the content of the file matching the command line.
func (r *ReplayRunner) Run(ctx context.Context, name string, args ...string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	key := Key(name, args...)
	for _, candidate := range []string{key, key + ".txt"} {
		b, err := os.ReadFile(filepath.Join(r.Dir, candidate))
		if err != nil {
			continue
		}
		if !utf8.Valid(b) || strings.TrimSpace(string(b)) == "" {
			slog.Debug("replay file unusable", "command", key, "file", candidate)
			return "", false
		}
		slog.Debug("replaying command output", "command", key, "file", candidate)
		return string(b), true
	}

	slog.Debug("no replay file for command", "command", key, "dir", r.Dir)
	return "", false
}

// StaticRunner serves output from an in-memory map keyed by Key.
// It records every invocation and is safe for concurrent use.
type StaticRunner struct {
	Outputs map[string]string

	mu    sync.Mutex
	calls []string
}

// NewStaticRunner creates a StaticRunner with the given outputs.
func NewStaticRunner(outputs map[string]string) *StaticRunner {
	return &StaticRunner{Outputs: outputs}
}

// Run returns the mapped output for the command line, if any.
func (r *StaticRunner) Run(ctx context.Context, name string, args ...string) (string, bool) {
	key := Key(name, args...)

	r.mu.Lock()
	r.calls = append(r.calls, key)
	r.mu.Unlock()

	if ctx.Err() != nil {
		return "", false
	}
	out, ok := r.Outputs[key]
	if !ok || out == "" {
		return "", false
	}
	return out, true
}

// Calls returns the command keys in invocation order.
func (r *StaticRunner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallCount returns how many times the command key was invoked.
func (r *StaticRunner) CallCount(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == key {
			n++
		}
	}
	return n
}
