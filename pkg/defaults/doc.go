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

// Package defaults provides centralized configuration constants for hafacts.
//
// This package defines timeout values, size limits and other configuration
// defaults used across the codebase.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Command timeouts: For each PowerHA or AIX utility invocation
//   - Collector timeouts: For a complete facts collection
//   - Server timeouts: For the HTTP daemon
//   - ConfigMap timeouts: For Kubernetes ConfigMap output
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/hafacts/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - Commands: 30s each; clRGinfo can stall while the cluster manager is busy
//   - Collector: 5m overall, respects parent context deadline
//   - Server shutdown: 30s for graceful shutdown
package defaults
