package serializer

import (
	"context"
	"fmt"
	"testing"

	"github.com/NVIDIA/hafacts/pkg/errors"
	"github.com/NVIDIA/hafacts/pkg/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

type headedDoc struct {
	header.Header `json:",inline" yaml:",inline"`
	Cluster       string `json:"cluster" yaml:"cluster"`
}

func newHeadedDoc() *headedDoc {
	d := &headedDoc{Cluster: "prod"}
	d.Init(header.KindClusterFacts, header.APIVersion, "v1.2.3")
	d.Metadata[header.MetadataTimestamp] = "2026-01-02T03:04:05Z"
	return d
}

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		name          string
		uri           string
		wantNamespace string
		wantName      string
		wantErr       bool
	}{
		{name: "valid URI", uri: "cm://powerha/cluster-facts", wantNamespace: "powerha", wantName: "cluster-facts"},
		{name: "valid URI with spaces", uri: "cm://powerha / cluster-facts ", wantNamespace: "powerha", wantName: "cluster-facts"},
		{name: "name keeps later slashes", uri: "cm://default/a/b", wantNamespace: "default", wantName: "a/b"},
		{name: "missing scheme", uri: "powerha/cluster-facts", wantErr: true},
		{name: "wrong scheme", uri: "http://powerha/cluster-facts", wantErr: true},
		{name: "missing name", uri: "cm://powerha/", wantErr: true},
		{name: "missing namespace", uri: "cm:///cluster-facts", wantErr: true},
		{name: "missing separator", uri: "cm://powerha", wantErr: true},
		{name: "empty URI", uri: "", wantErr: true},
		{name: "only scheme", uri: "cm://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			namespace, name, err := parseConfigMapURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNamespace, namespace)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestNewConfigMapWriter(t *testing.T) {
	tests := []struct {
		name       string
		format     Format
		wantFormat Format
	}{
		{name: "json", format: FormatJSON, wantFormat: FormatJSON},
		{name: "yaml", format: FormatYAML, wantFormat: FormatYAML},
		{name: "unknown format defaults to JSON", format: Format("unknown"), wantFormat: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewConfigMapWriter("powerha", "facts", tt.format, WithKubeconfig("/tmp/kubeconfig"))
			assert.Equal(t, "powerha", w.namespace)
			assert.Equal(t, "facts", w.name)
			assert.Equal(t, tt.wantFormat, w.format)
			assert.Equal(t, "/tmp/kubeconfig", w.kubeconfig)
			assert.NoError(t, w.Close())
		})
	}
}

func TestConfigMapWriter_Serialize(t *testing.T) {
	kube := fake.NewClientset()
	w := NewConfigMapWriter("powerha", "cluster-facts", FormatYAML, WithKubeClient(kube))

	require.NoError(t, w.Serialize(context.Background(), newHeadedDoc()))

	cm, err := kube.CoreV1().ConfigMaps("powerha").Get(context.Background(), "cluster-facts", metav1.GetOptions{})
	require.NoError(t, err)

	assert.Equal(t, ConfigMapAppName, cm.Labels["app.kubernetes.io/name"])
	assert.Equal(t, "clusterfacts", cm.Labels["app.kubernetes.io/component"])
	assert.Equal(t, "v1.2.3", cm.Labels["app.kubernetes.io/version"])
	assert.Equal(t, "yaml", cm.Data["format"])
	assert.Equal(t, "2026-01-02T03:04:05Z", cm.Data["timestamp"])
	assert.Contains(t, cm.Data["facts.yaml"], "cluster: prod")
	assert.Contains(t, cm.Data["facts.yaml"], "kind: ClusterFacts")
}

func TestConfigMapWriter_SerializeUpdates(t *testing.T) {
	kube := fake.NewClientset()
	w := NewConfigMapWriter("powerha", "cluster-facts", FormatJSON, WithKubeClient(kube))

	doc := newHeadedDoc()
	require.NoError(t, w.Serialize(context.Background(), doc))
	doc.Cluster = "dr"
	require.NoError(t, w.Serialize(context.Background(), doc))

	cm, err := kube.CoreV1().ConfigMaps("powerha").Get(context.Background(), "cluster-facts", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Contains(t, cm.Data["facts.json"], `"cluster": "dr"`)
}

func TestConfigMapWriter_SerializeWithoutHeader(t *testing.T) {
	kube := fake.NewClientset()
	w := NewConfigMapWriter("default", "plain", FormatJSON, WithKubeClient(kube))

	require.NoError(t, w.Serialize(context.Background(), map[string]string{"a": "b"}))

	cm, err := kube.CoreV1().ConfigMaps("default").Get(context.Background(), "plain", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "unknown", cm.Labels["app.kubernetes.io/version"])
	assert.NotEmpty(t, cm.Data["timestamp"])
}

func TestConfigMapWriter_ApplyError(t *testing.T) {
	kube := fake.NewClientset()
	kube.PrependReactor("patch", "configmaps", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, fmt.Errorf("forbidden")
	})
	w := NewConfigMapWriter("powerha", "cluster-facts", FormatJSON, WithKubeClient(kube))

	err := w.Serialize(context.Background(), newHeadedDoc())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnavailable, errors.CodeOf(err))
}

func TestDocumentInfo(t *testing.T) {
	kind, version, ts := documentInfo(newHeadedDoc())
	assert.Equal(t, "ClusterFacts", kind)
	assert.Equal(t, "v1.2.3", version)
	assert.Equal(t, "2026-01-02T03:04:05Z", ts)

	kind, version, ts = documentInfo("plain")
	assert.Equal(t, header.KindClusterFacts.String(), kind)
	assert.Equal(t, "unknown", version)
	assert.NotEmpty(t, ts)
}
