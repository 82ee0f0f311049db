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

// Package server provides the HTTP server used by the hafacts daemon.
//
// The server registers /health, /ready and /metrics (Prometheus) itself and
// wraps every configured handler with middleware, outermost first:
//
//	metrics -> API version -> request ID -> panic recovery -> rate limit -> logging
//
// A root handler listing the routes is added unless the caller registers "/".
//
// # Configuration
//
// NewConfig reads the environment:
//
//	PORT                       listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS   graceful shutdown budget
//	HAFACTS_RATE_LIMIT         requests per second (default 10)
//	HAFACTS_RATE_LIMIT_BURST   token bucket size (default 20)
//
// # Errors
//
// Handlers report failures with WriteErrorFromErr, which maps
// errors.StructuredError codes to HTTP statuses (StatusFromError) and
// returns an ErrorResponse carrying the request ID.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("hafactsd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{"/v1/facts": h}),
//	)
//	return s.Run(ctx)
package server
