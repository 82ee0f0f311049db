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

package snapshotter

import (
	"context"

	"github.com/NVIDIA/hafacts/pkg/collector/powerha"
	"github.com/NVIDIA/hafacts/pkg/header"
	"github.com/NVIDIA/hafacts/pkg/measurement"
)

// DefaultRedactPatterns are the measurement keys removed from snapshots
// unless the caller overrides them.
var DefaultRedactPatterns = []string{measurement.KeySNMPCommunity}

// Snapshotter collects a snapshot and writes it to its destination.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// NewSnapshot creates a new Snapshot instance with an initialized Measurements slice.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Measurements: make([]*measurement.Measurement, 0),
	}
}

// Snapshot is the document hafacts publishes for one node: the typed
// PowerHA facts plus their flattened measurement view.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// PowerHA is the typed cluster facts of the node.
	PowerHA *powerha.ClusterFacts `json:"powerha" yaml:"powerha"`

	// Measurements contains the flattened PowerHA and host measurements.
	Measurements []*measurement.Measurement `json:"measurements" yaml:"measurements"`
}

// Measurement returns the measurement of type t, or nil.
func (s *Snapshot) Measurement(t measurement.Type) *measurement.Measurement {
	for _, m := range s.Measurements {
		if m != nil && m.Type == t {
			return m
		}
	}
	return nil
}
