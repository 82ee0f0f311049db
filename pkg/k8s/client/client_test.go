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

package client

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/NVIDIA/hafacts/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/rest"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

func resetClient() {
	clientOnce = sync.Once{}
	cachedClient = nil
	cachedConfig = nil
	clientErr = nil
}

func TestBuildKubeClient_InvalidPath(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		env  string
	}{
		{name: "explicit invalid path", arg: "/nonexistent/path/to/kubeconfig"},
		{name: "env var with invalid path", env: "/nonexistent/env/kubeconfig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KUBECONFIG", tt.env)

			_, _, err := BuildKubeClient(tt.arg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to build kube config")
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
		})
	}
}

func TestBuildKubeClient_InvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, os.WriteFile(path, []byte("invalid yaml content"), 0o600))

	_, _, err := BuildKubeClient(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build kube config")
}

func TestResolveKubeconfig(t *testing.T) {
	t.Setenv("KUBECONFIG", "/from/env")
	assert.Equal(t, "/explicit", resolveKubeconfig("/explicit"))
	assert.Equal(t, "/from/env", resolveKubeconfig(""))

	t.Setenv("KUBECONFIG", "")
	t.Setenv("HOME", t.TempDir())
	assert.Empty(t, resolveKubeconfig(""), "no kubeconfig in home means in-cluster")
}

func TestGetKubeClient_Cached(t *testing.T) {
	resetClient()
	t.Cleanup(resetClient)
	t.Setenv("KUBECONFIG", "/nonexistent/kubeconfig")

	client1, config1, err1 := GetKubeClient()
	client2, config2, err2 := GetKubeClient()

	require.Error(t, err1)
	//nolint:errorlint // same cached instance
	assert.True(t, err1 == err2)
	assert.Nil(t, client1)
	assert.Nil(t, client2)
	assert.Nil(t, config1)
	assert.Nil(t, config2)
}

func TestAuthMethod(t *testing.T) {
	tests := []struct {
		name   string
		config *rest.Config
		want   string
	}{
		{name: "nil", config: nil, want: "none"},
		{name: "provider", config: &rest.Config{AuthProvider: &clientcmdapi.AuthProviderConfig{Name: "oidc"}}, want: "oidc"},
		{name: "exec", config: &rest.Config{ExecProvider: &clientcmdapi.ExecConfig{Command: "aws"}}, want: "exec"},
		{name: "token", config: &rest.Config{BearerToken: "abc"}, want: "bearer-token"},
		{name: "token file", config: &rest.Config{BearerTokenFile: "/var/run/token"}, want: "bearer-token"},
		{name: "cert", config: &rest.Config{TLSClientConfig: rest.TLSClientConfig{CertData: []byte("x")}}, want: "cert"},
		{name: "default", config: &rest.Config{}, want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthMethod(tt.config))
		})
	}
}
