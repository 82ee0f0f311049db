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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/hafacts/pkg/defaults"
	"github.com/NVIDIA/hafacts/pkg/errors"
	"github.com/NVIDIA/hafacts/pkg/header"
	"github.com/NVIDIA/hafacts/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
)

const (
	// ConfigMapFieldManager owns the fields hafacts applies.
	ConfigMapFieldManager = "hafacts"
	// ConfigMapAppName is the app.kubernetes.io/name label value.
	ConfigMapAppName = "hafacts"
)

// ConfigMapOption configures a ConfigMapWriter.
type ConfigMapOption func(*ConfigMapWriter)

// WithKubeClient sets the client used to apply the ConfigMap.
func WithKubeClient(c client.Interface) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.client = c
	}
}

// WithKubeconfig loads the client from an explicit kubeconfig path.
func WithKubeconfig(path string) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.kubeconfig = path
	}
}

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace  string
	name       string
	format     Format
	client     client.Interface
	kubeconfig string
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    knownFormat(format),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serialize applies doc to the ConfigMap. The ConfigMap will have:
// - data.facts.{yaml|json|txt}: the serialized document
// - data.format: the format used
// - data.timestamp: RFC 3339 collection time
func (w *ConfigMapWriter) Serialize(ctx context.Context, doc any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	kube, err := w.kubeClient()
	if err != nil {
		return err
	}

	content, err := Marshal(w.format, doc)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to serialize document", err)
	}

	kind, version, timestamp := documentInfo(doc)

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      ConfigMapAppName,
			"app.kubernetes.io/component": strings.ToLower(kind),
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			"facts." + w.format.Extension(): string(content),
			"format":                        string(w.format),
			"timestamp":                     timestamp,
		})

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	// Server-side apply creates or updates in one call; Force takes over
	// fields last written by the CLI or a previous daemon.
	_, err = kube.CoreV1().ConfigMaps(w.namespace).Apply(
		writeCtx,
		configMap,
		metav1.ApplyOptions{
			FieldManager: ConfigMapFieldManager,
			Force:        true,
		},
	)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeUnavailable, "failed to apply ConfigMap", err,
			map[string]any{"namespace": w.namespace, "name": w.name})
	}

	return nil
}

func (w *ConfigMapWriter) kubeClient() (client.Interface, error) {
	if w.client != nil {
		return w.client, nil
	}
	kube, config, err := client.GetKubeClientWithConfig(w.kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	slog.Info("configmap operation",
		"namespace", w.namespace,
		"name", w.name,
		"auth_method", client.AuthMethod(config),
		"format", w.format)
	w.client = kube
	return kube, nil
}

// documentInfo extracts kind, version and timestamp from a document with a
// header, falling back to defaults for anything missing.
func documentInfo(doc any) (kind, version, timestamp string) {
	if h, ok := doc.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		kind = h.GetKind().String()
		md := h.GetMetadata()
		version = md[header.MetadataVersion]
		timestamp = md[header.MetadataTimestamp]
	}
	if kind == "" {
		kind = header.KindClusterFacts.String()
	}
	if version == "" {
		version = "unknown"
	}
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return kind, version, timestamp
}

// Close is a no-op for ConfigMapWriter as there are no resources to release.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name
// and returns the namespace and name components.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	path := strings.TrimPrefix(uri, ConfigMapURIScheme)

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
