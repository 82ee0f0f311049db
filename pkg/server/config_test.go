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

package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/hafacts/pkg/defaults"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig()

		assert.Empty(t, cfg.Address)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, rate.Limit(10), cfg.RateLimit)
		assert.Equal(t, 20, cfg.RateLimitBurst)
		assert.Equal(t, defaults.ServerReadTimeout, cfg.ReadTimeout)
		assert.Equal(t, defaults.ServerReadHeaderTimeout, cfg.ReadHeaderTimeout)
		assert.Equal(t, defaults.ServerWriteTimeout, cfg.WriteTimeout)
		assert.Equal(t, defaults.ServerIdleTimeout, cfg.IdleTimeout)
		assert.Equal(t, defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "45")
		t.Setenv("HAFACTS_RATE_LIMIT", "0.5")
		t.Setenv("HAFACTS_RATE_LIMIT_BURST", "3")

		cfg := parseConfig()

		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 45*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, rate.Limit(0.5), cfg.RateLimit)
		assert.Equal(t, 3, cfg.RateLimitBurst)
	})

	t.Run("invalid values use defaults", func(t *testing.T) {
		t.Setenv("PORT", "invalid")
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-1")
		t.Setenv("HAFACTS_RATE_LIMIT", "fast")
		t.Setenv("HAFACTS_RATE_LIMIT_BURST", "0")

		cfg := parseConfig()

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
		assert.Equal(t, rate.Limit(10), cfg.RateLimit)
		assert.Equal(t, 20, cfg.RateLimitBurst)
	})

	t.Run("out of range port uses default", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		assert.Equal(t, 8080, parseConfig().Port)
	})
}
