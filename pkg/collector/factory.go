package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/NVIDIA/hafacts/pkg/collector/host"
	"github.com/NVIDIA/hafacts/pkg/collector/powerha"
	"github.com/NVIDIA/hafacts/pkg/collector/runner"
	"github.com/NVIDIA/hafacts/pkg/defaults"
)

// FactsCollector gathers PowerHA cluster facts.
type FactsCollector interface {
	Collect(ctx context.Context) (*powerha.ClusterFacts, error)
	// Identity is the host the facts are collected on.
	Identity() host.Identity
}

// Factory creates collectors.
type Factory interface {
	CreatePowerHACollector(ctx context.Context) (FactsCollector, error)
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithPaths sets the locations of the AIX and PowerHA utilities.
func WithPaths(p powerha.Paths) Option {
	return func(f *DefaultFactory) {
		f.Paths = p
	}
}

// WithCommandTimeout sets the per-command timeout of the ExecRunner.
func WithCommandTimeout(d time.Duration) Option {
	return func(f *DefaultFactory) {
		f.CommandTimeout = d
	}
}

// WithReplayDir serves command output from captured files in dir instead
// of running commands.
func WithReplayDir(dir string) Option {
	return func(f *DefaultFactory) {
		f.ReplayDir = dir
	}
}

// WithIdentity overrides the resolved host name and FQDN. Empty values
// keep the resolved ones.
func WithIdentity(hostname, fqdn string) Option {
	return func(f *DefaultFactory) {
		f.Hostname = hostname
		f.FQDN = fqdn
	}
}

// WithRunner sets the command runner, taking precedence over WithReplayDir.
func WithRunner(r runner.Runner) Option {
	return func(f *DefaultFactory) {
		f.Runner = r
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	Paths          powerha.Paths
	CommandTimeout time.Duration
	ReplayDir      string
	Hostname       string
	FQDN           string
	Runner         runner.Runner
}

// NewDefaultFactory creates a factory with the provided options.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Paths:          powerha.DefaultPaths(),
		CommandTimeout: defaults.CommandTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreatePowerHACollector creates a PowerHA collector for the local host.
// The host identity is resolved only when no override covers both names.
func (f *DefaultFactory) CreatePowerHACollector(ctx context.Context) (FactsCollector, error) {
	id := host.Identity{}
	if f.Hostname == "" || f.FQDN == "" {
		resolved, err := host.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		id = resolved
	}
	id = id.WithOverrides(f.Hostname, f.FQDN)

	slog.Debug("creating powerha collector",
		"hostname", id.Hostname,
		"fqdn", id.FQDN,
		"utilities", f.Paths.Utilities,
		"replay", f.ReplayDir)

	return powerha.NewCollector(
		powerha.WithRunner(f.runner()),
		powerha.WithIdentity(id),
		powerha.WithPaths(f.Paths),
	), nil
}

func (f *DefaultFactory) runner() runner.Runner {
	switch {
	case f.Runner != nil:
		return f.Runner
	case f.ReplayDir != "":
		return runner.NewReplayRunner(f.ReplayDir)
	default:
		return runner.NewExecRunner(runner.WithTimeout(f.CommandTimeout))
	}
}
