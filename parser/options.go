package parser

import (
	"context"
	"io"
)

// ImportResolver is how the parser fetches the bytes named by a
// filename or http(s):// import (spec.md §4.2.1). It is defined here
// rather than in the root uxf package: uxf depends on parser for
// Parse/ParseFile, so an interface referencing parser from uxf would
// create an import cycle. uxf.ImportResolver is a type alias back to
// this one (DESIGN.md).
type ImportResolver interface {
	// Find resolves a bare filename import against searchPaths, in
	// order, and returns its contents. searchPaths is supplied by the
	// caller: the including file's directory, ".", then each UXF_PATH
	// entry (spec.md §4.2.1, §6.4).
	Find(filename string, searchPaths []string) (io.ReadCloser, error)
	// FetchURL retrieves the body of an http:// or https:// import.
	FetchURL(ctx context.Context, url string) (io.ReadCloser, error)
}

// PostProcessFlag selects which of the two independent cleanup
// policies from spec.md §4.2.5 run after a root-level parse.
type PostProcessFlag int

const (
	ReplaceImports PostProcessFlag = 1 << iota
	DropUnusedTTypes

	// Standalone is --standalone from spec.md §6.2: both policies.
	Standalone = ReplaceImports | DropUnusedTTypes
)

// Options configures a root-level Parse call. Per spec.md §4.2.1,
// imported files are parsed ignoring Flags - standalone semantics
// apply only to the root document - but they still use the same
// Resolver and SearchPaths as the root parse.
type Options struct {
	Flags PostProcessFlag

	// Resolver fetches filename and http(s):// imports. A nil
	// Resolver turns any import into a fatal error.
	Resolver ImportResolver

	// SearchPaths is appended after the including file's directory and
	// "." when resolving a filename import - typically UXF_PATH split
	// on the OS path separator by the caller (spec.md §6.4).
	SearchPaths []string

	// Dir is the directory searched first for the root document's
	// filename imports. When Dir is empty, the directory of the root's
	// filename is used instead (none for in-memory input or stdin).
	// Dir is ignored for an imported file, whose own directory (its
	// import path joined onto the including file's directory) is used.
	Dir string
}
