// Command uxfcmp compares two UXF documents for strict equality or
// semantic equivalence (spec.md §6.3).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/uxfio/uxf"
	"github.com/uxfio/uxf/reporter"
)

type options struct {
	Equivalent bool `long:"equivalent" description:"Compare for semantic equivalence instead of strict equality"`

	Positional struct {
		File1 string `positional-arg-name:"file1"`
		File2 string `positional-arg-name:"file2"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] file1 file2"
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ctx := context.Background()
	sink := reporter.NewStderrSink(os.Stderr, "uxfcmp")

	doc1, err := uxf.ParseFile(ctx, opts.Positional.File1, sink, uxf.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "uxfcmp:", err)
		os.Exit(1)
	}
	doc2, err := uxf.ParseFile(ctx, opts.Positional.File2, sink, uxf.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "uxfcmp:", err)
		os.Exit(1)
	}

	var verb string
	if opts.Equivalent {
		if uxf.Equivalent(doc1, doc2, uxf.EquivAll) {
			verb = "Equivalent:"
		} else {
			verb = "Unequivalent:"
		}
	} else {
		if uxf.Equal(doc1, doc2) {
			verb = "Equal:"
		} else {
			verb = "Unequal:"
		}
	}
	fmt.Println(verb, opts.Positional.File1, opts.Positional.File2)
	os.Exit(0)
}
