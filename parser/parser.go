package parser

import (
	"context"
	"path/filepath"

	"github.com/uxfio/uxf/lexer"
	"github.com/uxfio/uxf/reporter"
	"github.com/uxfio/uxf/token"
	"github.com/uxfio/uxf/value"
)

// parseCtx is shared by a root parse and every import it pulls in: the
// resolver/search-path configuration and the import-cycle tracker
// described in DESIGN.md (two sets - resolving ancestors, and already-
// fully-resolved imports - rather than the single shared set
// original_source's Rust parser threads through by clone).
type parseCtx struct {
	opts      Options
	sink      reporter.Sink
	resolving map[string]bool
	resolved  map[string]bool
}

// fileParser parses one file's token queue, root or import, into its
// own Document. A root parse and each import it pulls in get their own
// fileParser sharing one parseCtx.
type fileParser struct {
	pc       *parseCtx
	h        *reporter.Handler
	doc      *value.Document
	isImport bool
	fileDir  string
	line     int
}

// Parse lexes and parses data as a root document. sink receives every
// diagnostic event raised while lexing or parsing, including nested
// imports; opts configures import resolution and the post-processing
// cleanup policies (spec.md §4.2.5).
func Parse(ctx context.Context, data []byte, filename string, sink reporter.Sink, opts Options) (*value.Document, error) {
	pc := &parseCtx{
		opts:      opts,
		sink:      sink,
		resolving: make(map[string]bool),
		resolved:  make(map[string]bool),
	}
	return pc.parseFile(ctx, data, filename, false)
}

func (pc *parseCtx) parseFile(ctx context.Context, data []byte, filename string, isImport bool) (*value.Document, error) {
	h := reporter.NewHandler(pc.sink, filename)
	result, err := lexer.Lex(data, h)
	if err != nil {
		return nil, err
	}
	doc := value.NewDocument()
	doc.Custom = result.Custom

	dir := pc.opts.Dir
	if filename != "" && filename != "-" && (isImport || dir == "") {
		dir = filepath.Dir(filename)
	}
	p := &fileParser{pc: pc, h: h, doc: doc, isImport: isImport, fileDir: dir}
	if err := p.run(ctx, result.Tokens); err != nil {
		return nil, err
	}
	return doc, nil
}

func (p *fileParser) opts() Options { return p.pc.opts }
func (p *fileParser) dir() string   { return p.fileDir }

// run consumes the token queue in the order spec.md §4.2 describes:
// an optional FileComment, then Import tokens, then TClass
// definitions, then exactly one top-level value.
func (p *fileParser) run(ctx context.Context, tokens []token.Token) error {
	i := 0

	if i < len(tokens) && tokens[i].Kind == token.FileComment {
		if s, ok := tokens[i].Value.(value.Str); ok {
			p.doc.Comment = string(s)
		}
		i++
	}

	for i < len(tokens) && tokens[i].Kind == token.Import {
		p.line = tokens[i].Line
		raw := ""
		if s, ok := tokens[i].Value.(value.Str); ok {
			raw = string(s)
		}
		if raw != "" {
			if err := p.handleImport(ctx, raw); err != nil {
				return err
			}
		}
		i++
	}

	n, err := p.parseTClassBlock(tokens[i:])
	if err != nil {
		return err
	}
	i += n

	if err := p.buildRoot(tokens[i:]); err != nil {
		return err
	}

	if !p.isImport {
		return postProcess(p.doc, p.h, p.opts().Flags)
	}
	return nil
}
