// Package snapshotter assembles the ClusterFacts document for the local node.
//
// A Snapshot carries a header (kind ClusterFacts, apiVersion
// hafacts.nvidia.com/v1alpha1, timestamp, version and source node), the typed
// PowerHA facts, and their flattened measurements:
//
//	kind: ClusterFacts
//	apiVersion: hafacts.nvidia.com/v1alpha1
//	metadata:
//	  source-node: aixnode1
//	  timestamp: "2026-01-02T03:04:05Z"
//	powerha:
//	  installed: true
//	  version: 7.2.5.1
//	  ...
//	measurements:
//	  - type: Host
//	  - type: PowerHA
//
// NodeSnapshotter.Snapshot returns the document for the daemon;
// NodeSnapshotter.Measure also writes it through a serializer.Serializer:
//
//	s := &snapshotter.NodeSnapshotter{
//	    Version:    version,
//	    Factory:    collector.NewDefaultFactory(),
//	    Serializer: serializer.NewStdoutWriter(serializer.FormatYAML),
//	}
//	if err := s.Measure(ctx); err != nil {
//	    return err
//	}
//
// Keys matching the Redact patterns (default: snmp-community) are removed
// from the measurements, and the SNMP community is cleared from the typed
// facts when its key is redacted.
//
// Collection durations and outcomes are exported as Prometheus metrics
// prefixed hafacts_snapshot_, along with gauges for the last observed
// PowerHA state.
package snapshotter
