package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"github.com/NVIDIA/hafacts/pkg/collector"
	"github.com/NVIDIA/hafacts/pkg/collector/powerha"
	"github.com/NVIDIA/hafacts/pkg/logging"
	"github.com/NVIDIA/hafacts/pkg/server"
	"github.com/NVIDIA/hafacts/pkg/snapshotter"
)

const (
	name           = "hafactsd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/hafacts/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// sdNotify is replaced in tests.
var sdNotify = daemon.SdNotify

// Serve starts the daemon and blocks until shutdown.
func Serve() error {
	return ServeContext(context.Background())
}

// ServeContext starts the daemon and blocks until ctx is canceled or the
// process receives SIGINT or SIGTERM.
func ServeContext(ctx context.Context) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := newServer(newSnapshotter(os.Getenv))

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	notify(daemon.SdNotifyStopping)
	return nil
}

func newServer(snap *snapshotter.NodeSnapshotter) *server.Server {
	facts := NewFactsHandler(snap, 0)

	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(map[string]http.HandlerFunc{
			"/v1/facts": facts.Handle,
		}),
		server.WithReadyHook(func() { notify(daemon.SdNotifyReady) }),
	)
}

// notify reports state to systemd when running under a notify unit.
func notify(state string) {
	sent, err := sdNotify(false, state)
	if err != nil {
		slog.Warn("systemd notification failed", "state", state, "error", err)
		return
	}
	if sent {
		slog.Debug("systemd notified", "state", state)
	}
}

// newSnapshotter builds the daemon's snapshotter from HAFACTS_* variables:
// HAFACTS_UTILITIES_DIR, HAFACTS_LSLPP, HAFACTS_LSSRC,
// HAFACTS_COMMAND_TIMEOUT (Go duration), HAFACTS_HOSTNAME, HAFACTS_FQDN,
// HAFACTS_REPLAY_DIR and HAFACTS_REDACT (comma-separated patterns).
func newSnapshotter(getenv func(string) string) *snapshotter.NodeSnapshotter {
	opts := []collector.Option{
		collector.WithPaths(powerha.Paths{
			LSLPP:     getenv("HAFACTS_LSLPP"),
			LSSRC:     getenv("HAFACTS_LSSRC"),
			Utilities: getenv("HAFACTS_UTILITIES_DIR"),
		}),
		collector.WithIdentity(getenv("HAFACTS_HOSTNAME"), getenv("HAFACTS_FQDN")),
	}

	if v := getenv("HAFACTS_COMMAND_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			opts = append(opts, collector.WithCommandTimeout(d))
		} else {
			slog.Warn("ignoring invalid HAFACTS_COMMAND_TIMEOUT", "value", v)
		}
	}

	if dir := getenv("HAFACTS_REPLAY_DIR"); dir != "" {
		opts = append(opts, collector.WithReplayDir(dir))
	}

	snap := &snapshotter.NodeSnapshotter{
		Version: version,
		Factory: collector.NewDefaultFactory(opts...),
	}

	if v := getenv("HAFACTS_REDACT"); v != "" {
		snap.Redact = splitPatterns(v)
	}

	return snap
}

// splitPatterns splits a comma-separated pattern list. "none" disables
// redaction.
func splitPatterns(v string) []string {
	if strings.EqualFold(strings.TrimSpace(v), "none") {
		return []string{}
	}
	patterns := []string{}
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
