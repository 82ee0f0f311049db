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
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	respond(w, statusCode, "application/json", buf.Bytes())
}

// RespondYAML writes a YAML response with the given status code and data,
// buffered like RespondJSON.
func RespondYAML(w http.ResponseWriter, statusCode int, data any) {
	content, err := encodeYAML(data)
	if err != nil {
		slog.Error("yaml encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	respond(w, statusCode, "application/yaml", content)
}

// Respond writes data in the given format. Table output is not offered over
// HTTP and falls back to JSON.
func Respond(w http.ResponseWriter, statusCode int, format Format, data any) {
	if format == FormatYAML {
		RespondYAML(w, statusCode, data)
		return
	}
	RespondJSON(w, statusCode, data)
}

// FormatFromRequest picks the response format from the format query
// parameter, then the Accept header. JSON is the default.
func FormatFromRequest(r *http.Request) Format {
	if f := Format(strings.ToLower(r.URL.Query().Get("format"))); f == FormatYAML || f == FormatJSON {
		return f
	}
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "yaml") {
		return FormatYAML
	}
	return FormatJSON
}

// encodeYAML recovers from encoder panics, which yaml.v3 raises for
// unsupported values such as channels.
func encodeYAML(data any) (content []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &yamlPanicError{value: r}
		}
	}()
	return Marshal(FormatYAML, data)
}

type yamlPanicError struct {
	value any
}

func (e *yamlPanicError) Error() string {
	return fmt.Sprintf("failed to serialize to YAML: %v", e.value)
}

func respond(w http.ResponseWriter, statusCode int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}
