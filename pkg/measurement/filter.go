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

package measurement

import "strings"

// FilterOut returns a new map without the readings whose keys match any of
// the patterns. Patterns support "*" wildcards:
//   - "snmp-*" matches keys starting with "snmp-"
//   - "*-script" matches keys ending with "-script"
//   - "*community*" matches keys containing "community"
//   - "repo-disk" matches the key exactly
func FilterOut(readings map[string]Reading, patterns []string) map[string]Reading {
	return filter(readings, patterns, false)
}

// FilterIn returns a new map with only the readings whose keys match any of
// the patterns. It is the complement of FilterOut.
func FilterIn(readings map[string]Reading, patterns []string) map[string]Reading {
	return filter(readings, patterns, true)
}

// MatchesAny reports whether key matches any of the patterns.
func MatchesAny(key string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(key, pattern) {
			return true
		}
	}
	return false
}

func filter(readings map[string]Reading, patterns []string, keep bool) map[string]Reading {
	result := make(map[string]Reading, len(readings))
	for key, value := range readings {
		if MatchesAny(key, patterns) == keep {
			result[key] = value
		}
	}
	return result
}

// matchesPattern checks if a key matches a wildcard pattern.
// Segments between wildcards must appear in order, e.g. "a*b*c" matches "aXbYc".
func matchesPattern(key, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return key == pattern
	}

	segments := strings.Split(pattern, "*")
	first, last := segments[0], segments[len(segments)-1]

	if !strings.HasPrefix(key, first) {
		return false
	}
	rest := key[len(first):]

	for _, segment := range segments[1 : len(segments)-1] {
		if segment == "" {
			continue
		}
		idx := strings.Index(rest, segment)
		if idx == -1 {
			return false
		}
		rest = rest[idx+len(segment):]
	}

	return strings.HasSuffix(rest, last)
}
