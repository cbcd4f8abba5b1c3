// Package pprint renders a value.Document back to UXF text: a
// two-phase tokenize/layout pretty-printer (spec.md §4.3), grounded on
// the Begin/End/Str/Rws/Rnl token model and wrapwidth-widening warnings
// (563/564) found in original_source's pprint/tokenizer.rs - whose own
// collection-visiting logic was left as stubs, so the list/map/table
// rendering here is an original implementation of spec.md's prose
// rather than a port.
package pprint

// Format holds the pretty-printer's three configurable parameters
// (spec.md §4.3); each field says how an out-of-range value is handled.
type Format struct {
	// Indent is 0-8 spaces, or 9 meaning one tab. Any other value is
	// silently replaced by the default of 2 spaces.
	Indent int
	// WrapWidth is 40-240. Zero or any value outside that range is
	// replaced by the default of 96.
	WrapWidth int
	// RealDP is nil for the "natural" Real representation, or a
	// pointer to a value in [0,15] for a fixed fractional-digit count.
	// Out-of-range values are clamped to the nearest bound.
	RealDP *int
}

// DefaultFormat matches spec.md §4.3's defaults: 2-space indent, 96
// column wrapwidth, natural real formatting.
func DefaultFormat() Format {
	return Format{Indent: 2, WrapWidth: 96}
}

// indentUnit returns the literal text one indent level contributes.
func (f Format) indentUnit() string {
	switch {
	case f.Indent == 9:
		return "\t"
	case f.Indent >= 0 && f.Indent <= 8:
		n := f.Indent
		b := make([]byte, n)
		for i := range b {
			b[i] = ' '
		}
		return string(b)
	default:
		return "  "
	}
}

// wrapWidth returns WrapWidth when it lies in [40,240], and 96
// otherwise (including zero, when the caller left it unset).
func (f Format) wrapWidth() int {
	switch {
	case f.WrapWidth == 0:
		return 96
	case f.WrapWidth < 40 || f.WrapWidth > 240:
		return 96
	default:
		return f.WrapWidth
	}
}

func (f Format) realDP() (int, bool) {
	if f.RealDP == nil {
		return 0, false
	}
	dp := *f.RealDP
	switch {
	case dp < 0:
		return 0, true
	case dp > 15:
		return 15, true
	default:
		return dp, true
	}
}
