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
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/NVIDIA/hafacts/pkg/defaults"
)

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithTimeout sets the maximum duration of a single command.
// Default is defaults.CommandTimeout.
func WithTimeout(d time.Duration) Option {
	return func(r *ExecRunner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithMaxOutput sets the maximum number of stdout bytes retained per command.
// Output beyond the limit is discarded. Default is defaults.CommandMaxOutput.
func WithMaxOutput(n int64) Option {
	return func(r *ExecRunner) {
		if n > 0 {
			r.maxOutput = n
		}
	}
}

// WithEnv sets the environment of executed commands. By default commands
// inherit the process environment with LANG=C so column headers are not localized.
func WithEnv(env []string) Option {
	return func(r *ExecRunner) {
		r.env = env
	}
}

// ExecRunner runs commands on the local host.
type ExecRunner struct {
	timeout   time.Duration
	maxOutput int64
	env       []string
}

// NewExecRunner creates an ExecRunner with the provided options.
func NewExecRunner(opts ...Option) *ExecRunner {
	r := &ExecRunner{
		timeout:   defaults.CommandTimeout,
		maxOutput: defaults.CommandMaxOutput,
		env:       append(os.Environ(), "LANG=C", "LC_ALL=C"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes name with args and returns its stdout.
// Any failure is reported as ("", false) and never as an error.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, bool) {
	key := Key(name, args...)
	base := filepath.Base(name)
	start := time.Now()

	if err := ctx.Err(); err != nil {
		observe(base, resultCanceled, start)
		return "", false
	}

	path, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("command not available", "command", key, "error", err)
		observe(base, resultMissing, start)
		return "", false
	}

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(cctx, path, args...)
	cmd.Env = r.env
	cmd.Stdin = nil
	cmd.Stderr = io.Discard
	cmd.Stdout = &limitedWriter{w: &stdout, n: r.maxOutput}
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		result := resultFailed
		if cctx.Err() != nil {
			result = resultTimeout
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("command exited with error",
				"command", key,
				"exit_code", exitErr.ExitCode(),
				"duration", time.Since(start).String())
		} else {
			slog.Debug("command failed", "command", key, "error", err)
		}
		observe(base, result, start)
		return "", false
	}

	if stdout.Len() == 0 {
		observe(base, resultEmpty, start)
		return "", false
	}

	slog.Debug("command completed",
		"command", key,
		"bytes", stdout.Len(),
		"duration", time.Since(start).String())
	observe(base, resultOK, start)

	return stdout.String(), true
}

// limitedWriter drops writes once n bytes have been accepted while still
// reporting success, so the child process is not killed by a short write.
type limitedWriter struct {
	w io.Writer
	n int64
}

func (l *limitedWriter) Write(p []byte) (int, error) {
	if l.n <= 0 {
		return len(p), nil
	}
	chunk := p
	if int64(len(chunk)) > l.n {
		chunk = chunk[:l.n]
	}
	if _, err := l.w.Write(chunk); err != nil {
		return 0, err
	}
	l.n -= int64(len(chunk))
	return len(p), nil
}
