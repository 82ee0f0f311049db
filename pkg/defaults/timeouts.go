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

package defaults

import "time"

// Command execution limits for cluster utilities.
const (
	// CommandTimeout is the maximum duration a single utility may run.
	// A command that exceeds it is treated as producing no output.
	CommandTimeout = 30 * time.Second

	// CommandMaxOutput is the maximum number of stdout bytes retained per command.
	CommandMaxOutput = 4 << 20
)

// Collector timeouts for data collection operations.
const (
	// CollectorTimeout is the default timeout for a complete facts collection.
	// Collectors should respect parent context deadlines when shorter.
	CollectorTimeout = 5 * time.Minute

	// FactsHandlerTimeout is the timeout for a facts request served by the daemon.
	// Should be less than ServerWriteTimeout to allow error handling.
	FactsHandlerTimeout = 4 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 5 * time.Minute

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// ConfigMap timeouts for Kubernetes ConfigMap operations.
const (
	// ConfigMapWriteTimeout is the timeout for writing to ConfigMaps.
	ConfigMapWriteTimeout = 30 * time.Second
)
