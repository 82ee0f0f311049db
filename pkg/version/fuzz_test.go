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

package version

import (
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("7")
	f.Add("7.2")
	f.Add("7.2.5")
	f.Add("7.2.5.3")
	f.Add("6.1.0.0")
	f.Add("0.0.0.0")
	f.Add("999.999.999.999")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("7.")
	f.Add(".7")
	f.Add("7..2")
	f.Add("-1")
	f.Add("7.-2")
	f.Add("a.b.c.d")
	f.Add("7.2.5.3.1")
	f.Add("   7.2.5.3")
	f.Add("7.2.5.3   ")
	f.Add("7. 2.5.3")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		l, err := Parse(input)
		if err != nil {
			return
		}

		if l.Precision < 1 || l.Precision > MaxPrecision {
			t.Errorf("Parse(%q) returned invalid precision: %d", input, l.Precision)
		}
		if l.Version < 0 || l.Release < 0 || l.Modification < 0 || l.Fix < 0 {
			t.Errorf("Parse(%q) returned negative component: %+v", input, l)
		}

		// The release name must parse back to the same version and release
		r, err := Parse(l.ReleaseName())
		if err != nil {
			t.Errorf("Parse(%q) of release name failed: %v", l.ReleaseName(), err)
		} else if r.Version != l.Version || r.Release != l.Release {
			t.Errorf("release round-trip mismatch for %q: %+v != %+v", input, r, l)
		}
	})
}
