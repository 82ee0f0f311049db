// Package api runs the hafacts daemon, serving PowerHA cluster facts over HTTP.
//
// The daemon collects a fresh snapshot on every request; nothing is cached
// between requests. Collections are serialized so two requests never run
// the PowerHA utilities concurrently.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/hafacts/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/facts - Collect and return a snapshot (JSON by default,
//     YAML with ?format=yaml or an Accept header containing "yaml")
//
// System endpoints:
//   - GET /health  - Liveness
//   - GET /ready   - Readiness
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// Server settings come from pkg/server (PORT, SHUTDOWN_TIMEOUT_SECONDS,
// HAFACTS_RATE_LIMIT, HAFACTS_RATE_LIMIT_BURST). Collection settings:
//   - HAFACTS_UTILITIES_DIR: PowerHA utilities directory
//   - HAFACTS_LSLPP, HAFACTS_LSSRC: AIX command paths
//   - HAFACTS_COMMAND_TIMEOUT: per-command timeout (e.g. 30s)
//   - HAFACTS_HOSTNAME, HAFACTS_FQDN: host identity overrides
//   - HAFACTS_REPLAY_DIR: serve captured command output instead of running commands
//   - HAFACTS_REDACT: comma-separated redaction patterns, "none" to disable
//
// When started by systemd with Type=notify, the daemon reports READY=1 once
// listening and STOPPING=1 on shutdown.
package api
