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

// Package collector creates the fact collectors used by the CLI and the daemon.
//
// # Overview
//
// Collection is split into small subpackages, leaf to root:
//   - collector/runner - runs a command and returns its output or nothing
//   - collector/lines - splits delimiter-based output into records
//   - collector/host - resolves the local host name and FQDN
//   - collector/powerha - builds ClusterFacts from the PowerHA utilities
//
// # Factory Pattern
//
// The Factory interface abstracts collector construction so callers and
// tests can substitute the command runner:
//
//	type Factory interface {
//	    CreatePowerHACollector(ctx context.Context) (FactsCollector, error)
//	}
//
// The DefaultFactory resolves the host identity and wires an ExecRunner,
// or a ReplayRunner when a capture directory is configured:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithCommandTimeout(10*time.Second),
//	    collector.WithIdentity("aixnode1", "aixnode1.example.com"),
//	)
//	c, err := factory.CreatePowerHACollector(ctx)
//	if err != nil {
//	    return err
//	}
//	facts, err := c.Collect(ctx)
//
// # Error Handling
//
// Missing or failing utilities never surface as errors; their sections are
// left empty. Errors are returned when the host name cannot be determined
// or the context is canceled.
package collector
