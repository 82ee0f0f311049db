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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/hafacts/pkg/defaults"
	"github.com/NVIDIA/hafacts/pkg/errors"
	"github.com/NVIDIA/hafacts/pkg/serializer"
	"github.com/NVIDIA/hafacts/pkg/server"
	"github.com/NVIDIA/hafacts/pkg/snapshotter"
)

// SnapshotSource produces a fresh snapshot per call.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*snapshotter.Snapshot, error)
}

// FactsHandler serves GET /v1/facts. Collections are serialized: a request
// waits for the running collection to finish before starting its own, so
// no two sets of PowerHA commands overlap.
type FactsHandler struct {
	source  SnapshotSource
	timeout time.Duration
	sem     chan struct{}
}

// NewFactsHandler creates a handler collecting through source. A timeout of
// zero uses defaults.FactsHandlerTimeout.
func NewFactsHandler(source SnapshotSource, timeout time.Duration) *FactsHandler {
	if timeout <= 0 {
		timeout = defaults.FactsHandlerTimeout
	}
	return &FactsHandler{
		source:  source,
		timeout: timeout,
		sem:     make(chan struct{}, 1),
	}
}

// Handle collects a snapshot and writes it as JSON or YAML, chosen by the
// format query parameter or the Accept header.
func (h *FactsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	select {
	case h.sem <- struct{}{}:
		defer func() { <-h.sem }()
	case <-ctx.Done():
		server.WriteErrorFromErr(w, r,
			errors.Wrap(errors.ErrCodeUnavailable, "collection in progress", ctx.Err()),
			"collection in progress", nil)
		return
	}

	start := time.Now()
	snap, err := h.source.Snapshot(ctx)
	if err != nil {
		slog.Error("facts collection failed",
			"requestID", server.RequestIDFromContext(r.Context()),
			"error", err)
		server.WriteErrorFromErr(w, r, err, "facts collection failed", nil)
		return
	}

	slog.Debug("facts collected",
		"requestID", server.RequestIDFromContext(r.Context()),
		"duration", time.Since(start).String())

	serializer.Respond(w, http.StatusOK, serializer.FormatFromRequest(r), snap)
}
