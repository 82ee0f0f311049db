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

package lines

import (
	"log/slog"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser splits command output into field records.
type Parser struct {
	delimiter     string
	whitespace    bool
	commentPrefix string
	skipPrefixes  []string
	fieldLimit    int
	sanitize      bool
}

// WithDelimiter sets the field delimiter.
// Default is colon (":").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		if delim != "" {
			p.delimiter = delim
			p.whitespace = false
		}
	}
}

// WithWhitespaceFields splits fields on runs of whitespace instead of a
// fixed delimiter. Leading and trailing whitespace is ignored.
func WithWhitespaceFields() Option {
	return func(p *Parser) {
		p.whitespace = true
	}
}

// WithCommentPrefix sets the prefix marking comment lines in Records and
// header lines in Table. An empty prefix disables comment detection.
// Default is "#".
func WithCommentPrefix(prefix string) Option {
	return func(p *Parser) {
		p.commentPrefix = prefix
	}
}

// WithSkipPrefixes drops lines whose first non-blank characters match any
// of the prefixes. Used for labels a tool echoes, such as a column header.
func WithSkipPrefixes(prefixes ...string) Option {
	return func(p *Parser) {
		p.skipPrefixes = append(p.skipPrefixes, prefixes...)
	}
}

// WithFieldLimit keeps at most n fields per record. Zero means no limit.
func WithFieldLimit(n int) Option {
	return func(p *Parser) {
		if n >= 0 {
			p.fieldLimit = n
		}
	}
}

// WithSanitize removes every byte that is not printable ASCII or a tab
// before a line is split.
func WithSanitize(sanitize bool) Option {
	return func(p *Parser) {
		p.sanitize = sanitize
	}
}

// NewParser creates a new Parser with the provided options.
// Default settings: colon delimiter, "#" comments, no field limit.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:     ":",
		commentPrefix: "#",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Records splits text into field records. Blank lines, comments and
// skipped labels are dropped, as are lines with no non-empty field.
func (p *Parser) Records(text string) [][]string {
	var result [][]string
	for _, line := range p.lines(text) {
		if p.isComment(line) {
			continue
		}
		fields := p.split(line)
		if len(fields) == 0 {
			continue
		}
		result = append(result, fields)
	}
	return result
}

// Row is one data line of a header-keyed table.
type Row struct {
	names  []string
	index  map[string]int
	fields []string
}

// Get returns the field named by the header. A name repeated in the header
// refers to its last column. It reports false when the header has no such
// name or the data line is too short to carry it.
func (r Row) Get(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return Field(r.fields, i)
}

// Names returns the header names in column order.
func (r Row) Names() []string {
	return r.names
}

// Fields returns the raw data fields of the row.
func (r Row) Fields() []string {
	return r.fields
}

// Table parses text whose column names come from a comment-prefixed header
// line. Each header resets the name table for the lines that follow it.
func (p *Parser) Table(text string) []Row {
	var (
		result []Row
		names  []string
		index  map[string]int
	)

	for _, line := range p.lines(text) {
		if p.isComment(line) {
			names, index = p.header(line)
			continue
		}
		if index == nil {
			slog.Debug("dropping data line before header", "line", line)
			continue
		}
		result = append(result, Row{names: names, index: index, fields: p.split(line)})
	}

	return result
}

func (p *Parser) header(line string) ([]string, map[string]int) {
	raw := p.split(strings.TrimPrefix(strings.TrimLeft(line, " \t"), p.commentPrefix))
	names := make([]string, len(raw))
	index := make(map[string]int, len(raw))
	for i, name := range raw {
		name = strings.ToLower(strings.TrimSpace(name))
		names[i] = name
		index[name] = i
	}
	return names, index
}

// Field returns fields[i] and whether it exists.
func Field(fields []string, i int) (string, bool) {
	if i < 0 || i >= len(fields) {
		return "", false
	}
	return fields[i], true
}

func (p *Parser) lines(text string) []string {
	parts := strings.Split(text, "\n")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimRight(part, "\r")
		if p.sanitize {
			part = sanitize(part)
		}
		if strings.TrimSpace(part) == "" {
			continue
		}
		if p.hasSkipPrefix(part) {
			continue
		}
		result = append(result, part)
	}
	return result
}

func (p *Parser) isComment(line string) bool {
	return p.commentPrefix != "" && strings.HasPrefix(strings.TrimLeft(line, " \t"), p.commentPrefix)
}

func (p *Parser) hasSkipPrefix(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, prefix := range p.skipPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func (p *Parser) split(line string) []string {
	var fields []string
	if p.whitespace {
		fields = strings.Fields(line)
	} else {
		fields = strings.Split(line, p.delimiter)
		for len(fields) > 0 && fields[len(fields)-1] == "" {
			fields = fields[:len(fields)-1]
		}
	}
	if p.fieldLimit > 0 && len(fields) > p.fieldLimit {
		fields = fields[:p.fieldLimit]
	}
	return fields
}

// nonPrintable drops everything but tabs and printable ASCII. Invalid
// UTF-8 bytes decode as RuneError and are dropped too.
var nonPrintable = runes.Remove(runes.Predicate(func(r rune) bool {
	return r != '\t' && (r < 0x20 || r >= 0x7f)
}))

func sanitize(s string) string {
	out, _, err := transform.String(nonPrintable, s)
	if err != nil {
		slog.Debug("sanitize failed", "error", err)
		return ""
	}
	return out
}
