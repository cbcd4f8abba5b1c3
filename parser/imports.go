package parser

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/uxfio/uxf/value"
)

// handleImport classifies one `!import` line per spec.md §4.2.1 and
// dispatches it.
func (p *fileParser) handleImport(ctx context.Context, raw string) error {
	switch {
	case strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://"):
		return p.importURL(ctx, raw)
	case !strings.Contains(raw, "."):
		return p.importSystem(raw)
	default:
		return p.importFile(ctx, raw)
	}
}

// importSystem handles the three built-in no-dot import names
// (spec.md §4.2.1). "numeric" pulls in both Complex and Fraction.
func (p *fileParser) importSystem(name string) error {
	switch name {
	case "complex":
		return p.importSystemTClass(complexTClass, name)
	case "fraction":
		return p.importSystemTClass(fractionTClass, name)
	case "numeric":
		if err := p.importSystemTClass(complexTClass, name); err != nil {
			return err
		}
		return p.importSystemTClass(fractionTClass, name)
	default:
		return p.h.Fatalf(ErrUnknownSystemImport, p.line, "there is no system ttype import called %q", name)
	}
}

func (p *fileParser) importSystemTClass(builder func() (*value.TClass, error), source string) error {
	tc, err := builder()
	if err != nil {
		return p.h.Fatalf(ErrDuplicateFieldName, p.line, "%v", err)
	}
	return p.mergeTClass(tc, source, systemSource)
}

// importFile resolves and recursively parses a bare-filename import,
// merging only its TClasses into this document (spec.md §4.2.1: the
// imported document's own root value is discarded - only its
// tclass_for_ttype is interesting to the including file).
func (p *fileParser) importFile(ctx context.Context, filename string) error {
	key := canonicalImportKey(p.dir(), filename)
	if p.pc.resolved[key] {
		return nil // already fully imported elsewhere in this tree: not an error
	}
	if p.pc.resolving[key] {
		return p.h.Fatalf(ErrCircularImport, p.line, "circular import of %q", filename)
	}
	if p.opts().Resolver == nil {
		return p.h.Fatalf(ErrImportReadFailed, p.line, "no import resolver configured for %q", filename)
	}
	searchPaths := append([]string{p.dir(), "."}, p.opts().SearchPaths...)
	rc, err := p.opts().Resolver.Find(filename, searchPaths)
	if err != nil {
		return p.h.Fatalf(ErrImportReadFailed, p.line, "failed to import %q: %v", filename, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return p.h.Fatalf(ErrImportReadFailed, p.line, "failed to read import %q: %v", filename, err)
	}

	p.pc.resolving[key] = true
	nested, err := p.pc.parseFile(ctx, data, key, true)
	delete(p.pc.resolving, key)
	if err != nil {
		return err
	}
	p.pc.resolved[key] = true
	return p.mergeImportedTClasses(nested, filename)
}

// importURL fetches and recursively parses an http(s):// import.
func (p *fileParser) importURL(ctx context.Context, url string) error {
	if p.pc.resolved[url] {
		return nil
	}
	if p.pc.resolving[url] {
		return p.h.Fatalf(ErrCircularImport, p.line, "circular import of %q", url)
	}
	if p.opts().Resolver == nil {
		return p.h.Fatalf(ErrURLFetchFailed, p.line, "no import resolver configured for %q", url)
	}
	rc, err := p.opts().Resolver.FetchURL(ctx, url)
	if err != nil {
		return p.h.Fatalf(ErrURLFetchFailed, p.line, "failed to download import %q: %v", url, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return p.h.Fatalf(ErrURLReadFailed, p.line, "failed to read import %q: %v", url, err)
	}

	p.pc.resolving[url] = true
	nested, err := p.pc.parseFile(ctx, data, url, true)
	delete(p.pc.resolving, url)
	if err != nil {
		return err
	}
	p.pc.resolved[url] = true
	return p.mergeImportedTClasses(nested, url)
}

func (p *fileParser) mergeImportedTClasses(nested *value.Document, source string) error {
	for _, tc := range nested.TClasses() {
		if err := p.mergeTClass(tc, source, importedSource); err != nil {
			return err
		}
	}
	return nil
}

// canonicalImportKey gives a filename import a stable key for cycle
// detection within one import tree: the including file's directory
// joined with the import text, cleaned. This is a simplification of
// original_source's full_filename (which canonicalizes against the
// process's current directory too); it is sufficient here since the
// key only needs to be self-consistent within a single Parse call.
func canonicalImportKey(dir, filename string) string {
	return filepath.Clean(filepath.Join(dir, filename))
}
