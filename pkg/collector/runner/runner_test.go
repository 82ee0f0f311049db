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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
		want string
	}{
		{"bare name", "lssrc", nil, "lssrc"},
		{"absolute path", "/bin/lssrc", []string{"-g", "cluster"}, "lssrc_-g_cluster"},
		{"underscore in name", "/usr/es/sbin/cluster/utilities/cl_community_name", nil, "cl_community_name"},
		{"group argument", "/usr/es/sbin/cluster/utilities/cllsres", []string{"-c", "-g", "rg1"}, "cllsres_-c_-g_rg1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.cmd, tt.args...))
		})
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner()
	out, ok := r.Run(context.Background(), "/nonexistent/usr/es/sbin/cluster/utilities/cllsclstr", "-c")
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestExecRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewExecRunner()
	out, ok := r.Run(ctx, "echo", "hello")
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestExecRunner_Output(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	r := NewExecRunner()
	out, ok := r.Run(context.Background(), "sh", "-c", "printf 'a:b:c\n'")
	require.True(t, ok)
	assert.Equal(t, "a:b:c\n", out)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	r := NewExecRunner()
	out, ok := r.Run(context.Background(), "sh", "-c", "echo partial; exit 3")
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestExecRunner_EmptyOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	r := NewExecRunner()
	_, ok := r.Run(context.Background(), "sh", "-c", "exit 0")
	assert.False(t, ok)
}

func TestExecRunner_Timeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if testing.Short() {
		t.Skip("skipping timing test in short mode")
	}

	r := NewExecRunner(WithTimeout(100 * time.Millisecond))
	start := time.Now()
	_, ok := r.Run(context.Background(), "sh", "-c", "sleep 5; echo late")
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecRunner_MaxOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	r := NewExecRunner(WithMaxOutput(4))
	out, ok := r.Run(context.Background(), "sh", "-c", "printf 'abcdefgh'")
	require.True(t, ok)
	assert.Equal(t, "abcd", out)
}

func TestLimitedWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &limitedWriter{w: &buf, n: 5}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = w.Write([]byte("defg"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = w.Write([]byte("hij"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "abcde", buf.String())
}

func TestReplayRunner(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cllsclstr_-c"), []byte("1234:prod_cl\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lssrc_-g_cluster.txt"), []byte("Subsystem Group PID Status\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cllsnw_-c"), []byte("   \n"), 0o600))

	r := NewReplayRunner(dir)
	ctx := context.Background()

	out, ok := r.Run(ctx, "/usr/es/sbin/cluster/utilities/cllsclstr", "-c")
	assert.True(t, ok)
	assert.Equal(t, "1234:prod_cl\n", out)

	out, ok = r.Run(ctx, "/bin/lssrc", "-g", "cluster")
	assert.True(t, ok)
	assert.Contains(t, out, "Subsystem")

	_, ok = r.Run(ctx, "/usr/es/sbin/cluster/utilities/cllsnw", "-c")
	assert.False(t, ok, "blank file should be absent")

	_, ok = r.Run(ctx, "/usr/es/sbin/cluster/utilities/cllsserv", "-c")
	assert.False(t, ok, "missing file should be absent")
}

func TestStaticRunner(t *testing.T) {
	r := NewStaticRunner(map[string]string{
		"cllsres_-c_-g_rg1": "#NAME:DISK\nrg1:hdisk1\n",
		"cllsnw_-c":         "",
	})
	ctx := context.Background()

	out, ok := r.Run(ctx, "/usr/es/sbin/cluster/utilities/cllsres", "-c", "-g", "rg1")
	assert.True(t, ok)
	assert.Contains(t, out, "hdisk1")

	_, ok = r.Run(ctx, "/usr/es/sbin/cluster/utilities/cllsnw", "-c")
	assert.False(t, ok)

	_, ok = r.Run(ctx, "/usr/es/sbin/cluster/utilities/cllsres", "-c", "-g", "rg1")
	assert.True(t, ok)

	assert.Equal(t, 2, r.CallCount("cllsres_-c_-g_rg1"))
	assert.Equal(t, []string{"cllsres_-c_-g_rg1", "cllsnw_-c", "cllsres_-c_-g_rg1"}, r.Calls())
}
