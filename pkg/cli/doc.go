// Package cli implements the hafacts command line.
//
// # Commands
//
// collect - Collect PowerHA cluster facts:
//
//	hafacts collect [--output facts.yaml] [--format yaml]
//
// Runs the AIX and PowerHA utilities once on the local node and writes the
// facts snapshot. Nodes without PowerHA report installed: false.
//
// # Flags
//
//	--output, -o        Output: file path, cm://namespace/name or - (default: stdout)
//	--format, -t        Output format: yaml, json, table (default: yaml)
//	--utilities-dir     PowerHA utilities directory
//	--lslpp, --lssrc    AIX command paths
//	--command-timeout   Per-command timeout
//	--timeout           Whole-collection timeout
//	--hostname, --fqdn  Host identity overrides
//	--replay-dir        Read captured command output instead of running commands
//	--redact            Measurement keys to remove (default: snmp-community)
//	--kubeconfig        Kubeconfig for cm:// output
//
// Global flags are --log-level and --debug. Every flag has an HAFACTS_*
// environment variable, for example HAFACTS_OUTPUT or HAFACTS_REPLAY_DIR.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/hafacts/pkg/cli.version=1.0.0'"
package cli
