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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr error
	}{
		{"full", "7.2.5.3", Level{7, 2, 5, 3, 4}, nil},
		{"release only", "7.2", Level{7, 2, 0, 0, 2}, nil},
		{"version only", "6", Level{6, 0, 0, 0, 1}, nil},
		{"whitespace", " 7.1.3.0 ", Level{7, 1, 3, 0, 4}, nil},
		{"empty", "", Level{}, ErrEmptyVersion},
		{"too many", "7.2.5.3.1", Level{}, ErrTooManyComponents},
		{"letters", "7.2.x.0", Level{}, ErrNonNumeric},
		{"empty component", "7..5", Level{}, ErrNonNumeric},
		{"negative", "7.-2", Level{}, ErrNegativeComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_ReleaseName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7.2.5.3", "7.2"},
		{"6.1.0.0", "6.1"},
		{"7", "7.0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.ReleaseName())
		})
	}
}
