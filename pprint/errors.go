package pprint

// Error codes. Grounded on the same numbering scheme as parser/errors.go,
// filling the 563/564 slots original_source's tokenizer.rs reserves for
// the pretty-printer's two wrapwidth warnings.
const (
	// ErrWrapWidthTooNarrowForImports: the widest single import line
	// exceeds the configured wrapwidth. The line is written unbroken;
	// the wrapwidth used for the rest of the document is not changed.
	// Grounded on tokenizer.rs's handle_imports, code 563.
	ErrWrapWidthTooNarrowForImports = 563

	// ErrWrapWidthTooNarrowForTClasses: same, but for the widest TClass
	// definition line (measured as the whole line written).
	// Grounded on tokenizer.rs's handle_tclasses, code 564.
	ErrWrapWidthTooNarrowForTClasses = 564
)
