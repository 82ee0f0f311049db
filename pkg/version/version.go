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

// Package version parses AIX fileset levels.
//
// AIX filesets are versioned as Version.Release.Modification.Fix (VRMF),
// for example "7.2.5.3" as reported by lslpp for cluster.es.server.rte.
// PowerHA releases are named by their first two components ("7.2"), the
// modification level is the technology level and the fix level is the
// service pack.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for level parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 4 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// MaxPrecision is the number of VRMF components.
const MaxPrecision = 4

// Level is an AIX fileset level. Precision is the number of components
// present in the parsed string; missing components are zero.
type Level struct {
	Version      int `json:"version" yaml:"version"`
	Release      int `json:"release" yaml:"release"`
	Modification int `json:"modification" yaml:"modification"`
	Fix          int `json:"fix" yaml:"fix"`

	Precision int `json:"precision" yaml:"precision"`
}

// ReleaseName returns the "V.R" product release, such as "7.2".
func (l Level) ReleaseName() string {
	return fmt.Sprintf("%d.%d", l.Version, l.Release)
}

// Parse parses a fileset level such as "7.2.5.3". One to four numeric
// components are accepted; surrounding whitespace is ignored.
func Parse(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Level{}, ErrEmptyVersion
	}

	parts := strings.Split(s, ".")
	if len(parts) > MaxPrecision {
		return Level{}, ErrTooManyComponents
	}

	var vals [MaxPrecision]int
	for i, part := range parts {
		if part == "" {
			return Level{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Level{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Level{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}
		vals[i] = num
	}

	return Level{
		Version:      vals[0],
		Release:      vals[1],
		Modification: vals[2],
		Fix:          vals[3],
		Precision:    len(parts),
	}, nil
}
