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

// Package host resolves the local host identity used to locate this node
// in cluster listings.
package host

import (
	"context"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/NVIDIA/hafacts/pkg/errors"
	"github.com/NVIDIA/hafacts/pkg/measurement"
)

// Identity holds the names the local host is known by.
type Identity struct {
	// Hostname is the short host name, without domain.
	Hostname string `json:"hostname" yaml:"hostname"`
	// FQDN is the fully-qualified domain name. Equals Hostname when no
	// domain could be determined.
	FQDN string `json:"fqdn" yaml:"fqdn"`
}

// Matches reports whether name equals the short host name or the FQDN.
func (i Identity) Matches(name string) bool {
	if name == "" {
		return false
	}
	return name == i.Hostname || name == i.FQDN
}

// Measurement returns the identity as a Host measurement.
func (i Identity) Measurement() *measurement.Measurement {
	return measurement.NewMeasurement(measurement.TypeHost).
		WithSubtypeBuilder(measurement.NewSubtypeBuilder(measurement.SubtypeIdentity).
			SetString(measurement.KeyHostname, i.Hostname).
			SetString(measurement.KeyFQDN, i.FQDN)).
		Build()
}

// CNAMEResolver looks up the canonical name of a host.
type CNAMEResolver interface {
	LookupCNAME(ctx context.Context, host string) (string, error)
}

var (
	hostnameFunc               = os.Hostname
	resolver     CNAMEResolver = net.DefaultResolver
)

// Resolve determines the local Identity. The short name is the kernel host
// name up to the first dot. The FQDN is the kernel host name when it is
// already qualified, otherwise its canonical DNS name. DNS failures fall
// back to the short name.
func Resolve(ctx context.Context) (Identity, error) {
	name, err := hostnameFunc()
	if err != nil {
		return Identity{}, errors.Wrap(errors.ErrCodeInternal, "failed to get hostname", err)
	}
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if name == "" {
		return Identity{}, errors.New(errors.ErrCodeInternal, "hostname is empty")
	}

	short, _, qualified := strings.Cut(name, ".")
	id := Identity{Hostname: short, FQDN: name}
	if qualified {
		return id, nil
	}

	cname, err := resolver.LookupCNAME(ctx, name)
	if err != nil {
		slog.Debug("fqdn lookup failed, using short name", "hostname", name, "error", err)
		return id, nil
	}
	if cname = strings.TrimSuffix(cname, "."); cname != "" {
		id.FQDN = cname
	}

	return id, nil
}

// WithOverrides returns a copy of id with non-empty overrides applied.
// A short name derived from an override FQDN is used when no hostname
// override is given and the current hostname is empty.
func (i Identity) WithOverrides(hostname, fqdn string) Identity {
	if hostname != "" {
		i.Hostname = hostname
	}
	if fqdn != "" {
		i.FQDN = fqdn
		if i.Hostname == "" {
			i.Hostname, _, _ = strings.Cut(fqdn, ".")
		}
	}
	return i
}
