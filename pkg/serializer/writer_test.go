package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

const (
	testName  = "test"
	test1Name = "test1"
)

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	require.NoError(t, writer.Serialize(context.Background(), data))

	var result []testConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal(t, testConfig{Name: test1Name, Value: 123}, result[0])
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	require.NoError(t, writer.Serialize(context.Background(), data))

	var result []testConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal(t, testConfig{Name: test1Name, Value: 123}, result[0])
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := []any{
		testConfig{Name: test1Name, Value: 123},
		testConfig{Name: "test2", Value: 456},
	}

	require.NoError(t, writer.Serialize(context.Background(), data))

	output := buf.String()
	assert.Contains(t, output, "FIELD")
	assert.Contains(t, output, "VALUE")
	assert.Contains(t, output, "[0].name")
	assert.Contains(t, output, "[1].value")
}

func TestWriter_SerializeTable_CustomMarshaler(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	require.NoError(t, writer.Serialize(context.Background(), json.RawMessage(`{"installed":false}`)))

	assert.Contains(t, buf.String(), "installed")
	assert.Contains(t, buf.String(), "false")
}

func TestWriter_SerializeTable_LargeIntegers(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	require.NoError(t, writer.Serialize(context.Background(), map[string]int64{"cluster-id": 1234567890}))

	assert.Contains(t, buf.String(), "1234567890")
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	require.NoError(t, writer.Serialize(context.Background(), testConfig{Name: testName, Value: 123}))

	var result testConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, testName, result.Name)
}

func TestWriter_SerializeError(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	err := writer.Serialize(context.Background(), make(chan int))
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestWriter_Close(t *testing.T) {
	writer := NewStdoutWriter(FormatJSON)
	assert.NoError(t, writer.Close())
	assert.NoError(t, writer.Close(), "multiple Close calls are safe")
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	for _, path := range []string{"", "  ", "\t", "\n", "-"} {
		writer, err := NewFileWriterOrStdout(FormatJSON, path)
		require.NoError(t, err)
		w, ok := writer.(*Writer)
		require.True(t, ok, "path %q should give a stdout writer", path)
		assert.Equal(t, os.Stdout, w.output)
	}
}

func TestNewFileWriterOrStdout_File(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "facts.json")

	writer, err := NewFileWriterOrStdout(FormatJSON, tmpFile)
	require.NoError(t, err)

	require.NoError(t, writer.Serialize(context.Background(), testConfig{Name: testName, Value: 123}))

	_, statErr := os.Stat(tmpFile)
	assert.True(t, os.IsNotExist(statErr), "file is written on Close")

	closer, ok := writer.(Closer)
	require.True(t, ok)
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	var result testConfig
	require.NoError(t, json.Unmarshal(content, &result))
	assert.Equal(t, testConfig{Name: testName, Value: 123}, result)
}

func TestNewFileWriterOrStdout_ConfigMap(t *testing.T) {
	writer, err := NewFileWriterOrStdout(FormatYAML, "cm://powerha/facts")
	require.NoError(t, err)

	cm, ok := writer.(*ConfigMapWriter)
	require.True(t, ok)
	assert.Equal(t, "powerha", cm.namespace)
	assert.Equal(t, "facts", cm.name)
	assert.Equal(t, FormatYAML, cm.format)

	_, err = NewFileWriterOrStdout(FormatYAML, "cm://powerha")
	assert.Error(t, err)
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	_, err := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json")
	assert.Error(t, err)
}

func TestWriteToFile_Replaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facts.yaml")

	require.NoError(t, WriteToFile(path, []byte("first")))
	require.NoError(t, WriteToFile(path, []byte("second")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestWriteToFile_MissingDir(t *testing.T) {
	err := WriteToFile(filepath.Join(t.TempDir(), "missing", "facts.json"), []byte("x"))
	assert.Error(t, err)
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("invalid"), true},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.IsUnknown())
		})
	}
}

func TestFormat_Extension(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.Extension())
	assert.Equal(t, "yaml", FormatYAML.Extension())
	assert.Equal(t, "txt", FormatTable.Extension())
}

func TestSupportedFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "yaml", "table"}, SupportedFormats())
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	require.NoError(t, writer.Serialize(context.Background(), []testConfig{}))
	assert.Contains(t, buf.String(), "<empty>")
}

func TestWriter_SerializeTable_NestedStructs(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type inner struct {
		Field1 string
		Field2 int
	}

	type outer struct {
		Name  string
		Inner inner
		Empty []string
	}

	data := outer{
		Name:  "test",
		Inner: inner{Field1: "value", Field2: 42},
		Empty: []string{},
	}

	require.NoError(t, writer.Serialize(context.Background(), data))

	output := buf.String()
	assert.Contains(t, output, "Inner.Field1")
	assert.Contains(t, output, "Inner.Field2")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "42")
	assert.Contains(t, output, "[]")
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type dataWithNil struct {
		Name  string
		Value *int
	}

	require.NoError(t, writer.Serialize(context.Background(), dataWithNil{Name: "test"}))

	output := buf.String()
	assert.Contains(t, output, "Name")
	assert.Regexp(t, `Value\s+-`, output)
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	require.NoError(t, writer.Serialize(context.Background(), "hello"))
	assert.Regexp(t, `value\s+hello`, buf.String())
}
