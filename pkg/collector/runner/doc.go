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

// Package runner executes cluster utilities and returns their captured output.
//
// The Runner contract is deliberately narrow: a command either produces text
// or it does not. A missing binary, a non-zero exit status, a timeout, a
// canceled context and an empty stdout all collapse to ("", false). Callers
// treat that result exactly like a command that printed zero lines, which is
// how an unlicensed or unconfigured PowerHA feature looks from the outside.
//
// # Implementations
//
//   - ExecRunner runs the real binaries through os/exec with a per-command
//     timeout and an output size cap.
//   - ReplayRunner serves previously captured output from a directory, one file
//     per command line. It lets the collector run on hosts without PowerHA.
//   - StaticRunner serves output from memory and counts invocations. It is
//     intended for tests.
//
// # Usage
//
//	r := runner.NewExecRunner(runner.WithTimeout(10 * time.Second))
//	out, ok := r.Run(ctx, "/bin/lssrc", "-g", "cluster")
//	if !ok {
//	    // treat as no output
//	}
package runner
