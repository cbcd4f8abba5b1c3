// Command uxf lints or converts UXF documents (spec.md §6.2).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/uxfio/uxf"
	"github.com/uxfio/uxf/reporter"
)

type options struct {
	Lint           bool `long:"lint" description:"Lint infile(s) and report diagnostics without writing output"`
	Standalone     bool `long:"standalone" description:"Equivalent to --dropunused --replaceimports"`
	DropUnused     bool `long:"dropunused" description:"Drop ttypes no value references"`
	ReplaceImports bool `long:"replaceimports" description:"Inline imported ttypes and drop the import list"`
	Indent         int  `long:"indent" description:"Indent width: 0-8 spaces, or 9 for one tab" default:"2"`
	WrapWidth      int  `long:"wrapwidth" description:"Wrap column, 40-240; other values use 96" default:"96"`
	Compact        bool `long:"compact" description:"Write compact (single-line) output"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] infile [outfile]"
	rest, err := parser.Parse()
	if err != nil {
		os.Exit(flagsExitCode(err))
	}

	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "uxf: at least one infile is required")
		os.Exit(1)
	}

	if opts.Lint {
		os.Exit(runLint(opts, rest))
	}
	os.Exit(runConvert(opts, rest))
}

func flagsExitCode(err error) int {
	if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
		return 0
	}
	return 1
}

// runLint parses every infile concurrently (spec.md §5's only
// sanctioned core concurrency: independent Parse calls, each owning
// its own Document) and reports a non-zero exit if any file produced a
// Fatal event.
func runLint(opts options, infiles []string) int {
	ctx := context.Background()
	var g errgroup.Group
	failed := make([]bool, len(infiles))

	for i, infile := range infiles {
		i, infile := i, infile
		g.Go(func() error {
			sink := reporter.NewStderrSink(os.Stderr, "uxf")
			_, err := uxf.ParseFile(ctx, infile, sink, uxf.Options{Flags: postProcessFlags(opts)})
			if err != nil {
				failed[i] = true
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, f := range failed {
		if f {
			return 1
		}
	}
	return 0
}

func runConvert(opts options, args []string) int {
	infile := args[0]
	outfile := "-"
	if len(args) > 1 {
		outfile = args[1]
	}

	if outfile != "-" {
		inAbs, errIn := filepath.Abs(infile)
		outAbs, errOut := filepath.Abs(outfile)
		if errIn == nil && errOut == nil && filepath.Clean(inAbs) == filepath.Clean(outAbs) {
			fmt.Fprintln(os.Stderr, "uxf: refusing to overwrite infile")
			return 1
		}
	}

	ctx := context.Background()
	sink := reporter.NewStderrSink(os.Stderr, "uxf")
	doc, err := uxf.ParseFile(ctx, infile, sink, uxf.Options{Flags: postProcessFlags(opts)})
	if err != nil {
		fmt.Fprintln(os.Stderr, "uxf:", err)
		return 1
	}

	if opts.Compact {
		if outfile == "-" {
			fmt.Print(uxf.WriteCompactString(doc))
			return 0
		}
		if err := uxf.WriteCompactFile(doc, outfile); err != nil {
			fmt.Fprintln(os.Stderr, "uxf:", err)
			return 1
		}
		return 0
	}

	format := uxf.Format{Indent: opts.Indent, WrapWidth: opts.WrapWidth}
	if outfile == "-" {
		fmt.Print(uxf.WriteString(doc, format, sink))
		return 0
	}
	if err := uxf.WriteFile(doc, format, outfile, sink); err != nil {
		fmt.Fprintln(os.Stderr, "uxf:", err)
		return 1
	}
	return 0
}

func postProcessFlags(opts options) uxf.PostProcessFlag {
	if opts.Standalone {
		return uxf.Standalone
	}
	var pf uxf.PostProcessFlag
	if opts.DropUnused {
		pf |= uxf.DropUnusedTTypes
	}
	if opts.ReplaceImports {
		pf |= uxf.ReplaceImports
	}
	return pf
}
