// Package uxf is the public facade over the lexer/parser/pprint/value
// packages: Parse a UXF document from text or a file, inspect or
// mutate it in memory via the value package directly, render it back
// to text, and compare two documents for strict equality or semantic
// equivalence (spec.md §4.4).
package uxf

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uxfio/uxf/parser"
	"github.com/uxfio/uxf/pprint"
	"github.com/uxfio/uxf/reporter"
	"github.com/uxfio/uxf/value"
)

// Document is the in-memory UXF document parser.Parse/pprint.Document
// operate on; re-exported here so callers never need to import value
// directly for the common case.
type Document = value.Document

// ImportResolver is declared in package parser (see parser/options.go
// for why) and aliased here so callers configuring Options never need
// to import parser directly.
type ImportResolver = parser.ImportResolver

// PostProcessFlag selects which spec.md §4.2.5 cleanup policy runs
// after a root parse.
type PostProcessFlag = parser.PostProcessFlag

const (
	ReplaceImports   = parser.ReplaceImports
	DropUnusedTTypes = parser.DropUnusedTTypes
	Standalone       = parser.Standalone
)

// Options configures Parse/ParseFile.
type Options = parser.Options

// Parse lexes and parses data as a root UXF document. sink receives
// every diagnostic raised while lexing or parsing, including nested
// imports; a nil sink discards them.
func Parse(ctx context.Context, data []byte, filename string, sink reporter.Sink, opts Options) (*Document, error) {
	if sink == nil {
		sink = reporter.SinkFunc(func(reporter.Event) {})
	}
	return parser.Parse(ctx, data, filename, sink, opts)
}

// ParseFile reads filename and parses it as a root document. If opts.Dir
// is empty it defaults to filename's directory, matching Parse's own
// fallback for in-memory input (spec.md §4.2.1). A filename ending in
// ".gz" is transparently decompressed: spec.md §6.1 places gzip at the
// I/O layer, not the core, so Parse itself only ever sees plain text.
func ParseFile(ctx context.Context, filename string, sink reporter.Sink, opts Options) (*Document, error) {
	data, err := readMaybeGzip(filename)
	if err != nil {
		return nil, err
	}
	if opts.Dir == "" {
		opts.Dir = filepath.Dir(filename)
	}
	return Parse(ctx, data, filename, sink, opts)
}

func readMaybeGzip(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(filename, ".gz") {
		return data, nil
	}
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return io.ReadAll(gz)
}

// Format is the pretty-printer's configuration, re-exported from
// package pprint.
type Format = pprint.Format

// DefaultFormat is pprint.DefaultFormat().
func DefaultFormat() Format { return pprint.DefaultFormat() }

// WriteString renders doc as UXF text under f, reporting wrapwidth
// warnings (563/564) through sink; a nil sink discards them.
func WriteString(doc *Document, f Format, sink reporter.Sink) string {
	var h *reporter.Handler
	if sink != nil {
		h = reporter.NewHandler(sink, "")
	}
	return pprint.Document(doc, f, h)
}

// WriteFile renders doc under f and writes it to filename, gzip-
// compressing transparently when filename ends in ".gz".
func WriteFile(doc *Document, f Format, filename string, sink reporter.Sink) error {
	return writeMaybeGzip(filename, WriteString(doc, f, sink))
}

// WriteCompactString renders doc in the single-line compact form
// spec.md §2/§8.2 distinguish from the wrap-aware pretty-printed form.
func WriteCompactString(doc *Document) string {
	return pprint.Compact(doc)
}

// WriteCompactFile is WriteCompactString followed by a (gzip-
// transparent) write to filename.
func WriteCompactFile(doc *Document, filename string) error {
	return writeMaybeGzip(filename, WriteCompactString(doc))
}

func writeMaybeGzip(filename, text string) error {
	if !strings.HasSuffix(filename, ".gz") {
		return os.WriteFile(filename, []byte(text), 0o644)
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(text)); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0o644)
}
