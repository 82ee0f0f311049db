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

package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	assert.Equal(t, "ClusterFacts", KindClusterFacts.String())
	assert.True(t, KindClusterFacts.IsValid())
	assert.False(t, Kind("Snapshot").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindClusterFacts),
		WithAPIVersion(APIVersion),
		WithMetadata("site", "dc1"),
	)

	assert.Equal(t, KindClusterFacts, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, map[string]string{"site": "dc1"}, h.Metadata)

	empty := New()
	assert.NotNil(t, empty.Metadata)
	assert.Empty(t, empty.Metadata)
}

func TestWithMetadata_NilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("a", "b")(h)
	assert.Equal(t, "b", h.Metadata["a"])
}

func TestInit(t *testing.T) {
	h := New(WithMetadata("stale", "x"))
	h.Init(KindClusterFacts, APIVersion, "v1.2.3")

	assert.Equal(t, KindClusterFacts, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "v1.2.3", h.Metadata[MetadataVersion])
	assert.NotContains(t, h.Metadata, "stale")

	ts, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)

	h.Init(KindClusterFacts, APIVersion, "")
	assert.NotContains(t, h.Metadata, MetadataVersion)
}

func TestSetMetadata(t *testing.T) {
	var h Header
	h.SetMetadata(MetadataSourceNode, "")
	assert.Nil(t, h.Metadata)

	h.SetMetadata(MetadataSourceNode, "aixnode1")
	assert.Equal(t, "aixnode1", h.Metadata[MetadataSourceNode])
}

func TestGetters(t *testing.T) {
	h := New(WithKind(KindClusterFacts), WithMetadata(MetadataVersion, "v1"))
	assert.Equal(t, KindClusterFacts, h.GetKind())
	assert.Equal(t, "v1", h.GetMetadata()[MetadataVersion])
}
