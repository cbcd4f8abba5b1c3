package lexer

// Error codes from spec.md §4.1's table.
const (
	ErrMissingHeader       = 110
	ErrMalformedHeader     = 120
	ErrHeaderNotUxf        = 130
	ErrFutureVersion       = 141 // warning, not fatal
	ErrUnparsableVersion   = 151
	ErrHashNotFollowedByLT = 160
	ErrInvalidChar         = 170
	ErrSelfImport          = 176
	ErrCommentMisplaced    = 180
	ErrConcatNonString     = 195
	ErrFieldVTypeMisplaced = 248
	ErrExpectedIdentOrConst = 250
	ErrEmptyIdentifier     = 260
	ErrUnterminatedBytes   = 269
	ErrUnterminatedString  = 270
	// 271-278 are sub-codes for invalid vtype/ktype/ttype subsumption.
	// Of these, the lexer raises only ErrInvalidMapKType (scan_forms.go).
	ErrInvalidListVType  = 271
	ErrInvalidMapKType   = 272
	ErrInvalidMapVType   = 273
	ErrInvalidTableTType = 274
	ErrDuplicateKType    = 275
	ErrDuplicateVType    = 276
	ErrTooManyTypeSubsumptions = 277
	ErrBadSubsumptionContext   = 278
)
