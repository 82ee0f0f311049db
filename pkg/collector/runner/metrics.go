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

package runner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK       = "ok"
	resultEmpty    = "empty"
	resultMissing  = "missing"
	resultFailed   = "failed"
	resultTimeout  = "timeout"
	resultCanceled = "canceled"
)

var (
	commandTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hafacts_command_total",
			Help: "Total number of cluster utility invocations by outcome",
		},
		[]string{"command", "result"},
	)

	commandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hafacts_command_duration_seconds",
			Help:    "Time taken by individual cluster utility invocations",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"command"},
	)
)

// observe records one invocation. The command label is the executable base
// name only so per-group arguments do not create new series.
func observe(name, result string, start time.Time) {
	commandTotal.WithLabelValues(name, result).Inc()
	commandDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
