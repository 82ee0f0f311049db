package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/hafacts/pkg/collector"
	"github.com/NVIDIA/hafacts/pkg/collector/powerha"
	"github.com/NVIDIA/hafacts/pkg/defaults"
	"github.com/NVIDIA/hafacts/pkg/header"
	"github.com/NVIDIA/hafacts/pkg/measurement"
	"github.com/NVIDIA/hafacts/pkg/serializer"
)

// NodeSnapshotter collects PowerHA facts from the current node and wraps
// them in a Snapshot.
type NodeSnapshotter struct {
	// Version is the hafacts version recorded in the header.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is the serializer to use for output. If nil, a default stdout JSON serializer is used.
	Serializer serializer.Serializer

	// Redact lists measurement key patterns removed from the snapshot. Nil
	// uses DefaultRedactPatterns; an empty non-nil slice disables redaction.
	Redact []string

	// Timeout bounds a single collection. Zero uses defaults.CollectorTimeout.
	Timeout time.Duration
}

// Measure collects a snapshot and serializes it with the configured Serializer.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap, err := n.Snapshot(ctx)
	if err != nil {
		return err
	}

	if n.Serializer == nil {
		n.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := n.Serializer.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Snapshot collects the node's facts and returns the snapshot without
// serializing it.
func (n *NodeSnapshotter) Snapshot(ctx context.Context) (*Snapshot, error) {
	if n.Factory == nil {
		n.Factory = collector.NewDefaultFactory()
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = defaults.CollectorTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Debug("starting node snapshot")

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	fc, err := n.Factory.CreatePowerHACollector(ctx)
	if err != nil {
		snapshotCollectionTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to create powerha collector: %w", err)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	snap := NewSnapshot()
	snap.Measurements = make([]*measurement.Measurement, 0, 2)

	g.Go(func() error {
		collectorStart := time.Now()
		defer func() {
			snapshotCollectorDuration.WithLabelValues("metadata").Observe(time.Since(collectorStart).Seconds())
		}()
		id := fc.Identity()
		mu.Lock()
		snap.Init(header.KindClusterFacts, header.APIVersion, n.Version)
		snap.SetMetadata(header.MetadataSourceNode, id.Hostname)
		snap.Measurements = append(snap.Measurements, id.Measurement())
		mu.Unlock()
		slog.Debug("obtained node metadata", slog.String("name", id.Hostname), slog.String("version", n.Version))
		return nil
	})

	g.Go(func() error {
		collectorStart := time.Now()
		defer func() {
			snapshotCollectorDuration.WithLabelValues("powerha").Observe(time.Since(collectorStart).Seconds())
		}()
		slog.Debug("collecting powerha facts")
		facts, err := fc.Collect(gctx)
		if err != nil {
			slog.Error("failed to collect powerha facts", slog.String("error", err.Error()))
			return fmt.Errorf("failed to collect powerha facts: %w", err)
		}
		mu.Lock()
		snap.PowerHA = facts
		snap.Measurements = append(snap.Measurements, facts.Measurement())
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		snapshotCollectionTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	sortMeasurements(snap.Measurements)
	n.redact(snap)

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	snapshotMeasurementCount.Set(float64(len(snap.Measurements)))
	recordFacts(snap.PowerHA)

	slog.Info("snapshot collection complete",
		slog.Bool("installed", snap.PowerHA.Installed),
		slog.Int("active_rgs", len(snap.PowerHA.ActiveRGs)),
		slog.Duration("duration", time.Since(start)))

	return snap, nil
}

func (n *NodeSnapshotter) redactPatterns() []string {
	if n.Redact == nil {
		return DefaultRedactPatterns
	}
	return n.Redact
}

// redact removes matching keys from the measurements and clears the typed
// fields they mirror, so a redacted value appears nowhere in the document.
func (n *NodeSnapshotter) redact(snap *Snapshot) {
	patterns := n.redactPatterns()
	if len(patterns) == 0 {
		return
	}
	for _, m := range snap.Measurements {
		m.Redact(patterns)
	}
	if snap.PowerHA != nil && measurement.MatchesAny(measurement.KeySNMPCommunity, patterns) {
		snap.PowerHA.SNMPCommunity = nil
	}
}

// sortMeasurements orders measurements by type so output does not depend on
// which collector finished first.
func sortMeasurements(ms []*measurement.Measurement) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Type < ms[j].Type
	})
}

func recordFacts(facts *powerha.ClusterFacts) {
	if facts == nil || !facts.Installed {
		powerhaInstalled.Set(0)
		powerhaActiveResourceGroups.Set(0)
		return
	}
	powerhaInstalled.Set(1)
	powerhaActiveResourceGroups.Set(float64(len(facts.ActiveRGs)))
}
