package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uxfio/uxf/lexer"
	"github.com/uxfio/uxf/reporter"
	"github.com/uxfio/uxf/token"
)

func lexOK(t *testing.T, text string) lexer.Result {
	t.Helper()
	res, err := lexer.Lex([]byte(text), reporter.NewHandler(reporter.SinkFunc(func(reporter.Event) {}), "test.uxf"))
	require.NoError(t, err)
	return res
}

func TestHeaderCustomTextIsEverythingAfterVersion(t *testing.T) {
	res := lexOK(t, "uxf 1 my custom text\n[]")
	assert.Equal(t, "my custom text", res.Custom)
}

func TestHeaderWithNoCustomText(t *testing.T) {
	res := lexOK(t, "uxf 1\n[]")
	assert.Equal(t, "", res.Custom)
}

func TestHeaderFutureVersionWarnsButSucceeds(t *testing.T) {
	var events []reporter.Event
	sink := reporter.SinkFunc(func(e reporter.Event) { events = append(events, e) })
	_, err := lexer.Lex([]byte("uxf 2\n[]"), reporter.NewHandler(sink, "test.uxf"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, reporter.Warning, events[0].Kind)
	assert.Equal(t, lexer.ErrFutureVersion, events[0].Code)
}

func TestHeaderMissingIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("no newline at all"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestHeaderWrongMagicIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("Uxf 1\n[]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestHeaderUnparsableVersionIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf one\n[]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestFileCommentBecomesALeadingToken(t *testing.T) {
	res := lexOK(t, "uxf 1\n#<a file comment>\n[]")
	require.GreaterOrEqual(t, len(res.Tokens), 1)
	assert.Equal(t, token.FileComment, res.Tokens[0].Kind)
	assert.Equal(t, "a file comment", res.Tokens[0].Text())
}

func TestIntLiteral(t *testing.T) {
	res := lexOK(t, "uxf 1\n[42]")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.Int, res.Tokens[1].Kind)
}

func TestNegativeIntLiteral(t *testing.T) {
	res := lexOK(t, "uxf 1\n[-42]")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.Int, res.Tokens[1].Kind)
}

func TestRealLiteral(t *testing.T) {
	res := lexOK(t, "uxf 1\n[3.14]")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.Real, res.Tokens[1].Kind)
}

func TestDateLiteral(t *testing.T) {
	res := lexOK(t, "uxf 1\n[2022-01-02]")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.Date, res.Tokens[1].Kind)
}

func TestDateTimeLiteralWithTSeparator(t *testing.T) {
	res := lexOK(t, "uxf 1\n[2022-01-02T03:04:05]")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.DateTime, res.Tokens[1].Kind)
}

func TestStringLiteral(t *testing.T) {
	res := lexOK(t, "uxf 1\n[<hello>]")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.Str, res.Tokens[1].Kind)
}

func TestBytesLiteral(t *testing.T) {
	res := lexOK(t, "uxf 1\n[(:DEADBEEF:)]")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.Bytes, res.Tokens[1].Kind)
}

func TestBooleanWords(t *testing.T) {
	res := lexOK(t, "uxf 1\n[yes no]")
	require.Len(t, res.Tokens, 5)
	assert.Equal(t, token.Bool, res.Tokens[1].Kind)
	assert.Equal(t, token.Bool, res.Tokens[2].Kind)
}

func TestNullMarker(t *testing.T) {
	res := lexOK(t, "uxf 1\n[?]")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.Null, res.Tokens[1].Kind)
}

func TestListVTypeSubsumption(t *testing.T) {
	res := lexOK(t, "uxf 1\n[int 1 2 3]")
	require.GreaterOrEqual(t, len(res.Tokens), 1)
	assert.Equal(t, "int", res.Tokens[0].VType)
}

func TestMapKTypeAndVTypeSubsumption(t *testing.T) {
	res := lexOK(t, "uxf 1\n{str int <a> 1}")
	assert.Equal(t, "str", res.Tokens[0].KType)
	assert.Equal(t, "int", res.Tokens[0].VType)
}

func TestCommentMustImmediatelyFollowOpener(t *testing.T) {
	res := lexOK(t, "uxf 1\n[#<a list>1 2]")
	assert.Equal(t, "a list", res.Tokens[0].Comment)
}

func TestCommentNotImmediatelyAfterOpenerIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n[1 #<late>2]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestTClassFieldAndVTypeTokens(t *testing.T) {
	res := lexOK(t, "uxf 1\n=Point x:int y:int\n[]")
	require.True(t, len(res.Tokens) >= 5)
	assert.Equal(t, token.TClassBegin, res.Tokens[0].Kind)
	assert.Equal(t, "Point", res.Tokens[0].VType)
	assert.Equal(t, token.Field, res.Tokens[1].Kind)
	assert.Equal(t, "x", res.Tokens[1].Text())
	assert.Equal(t, "int", res.Tokens[1].VType)
}

func TestTClassCommentAttachesBeforeTType(t *testing.T) {
	res := lexOK(t, "uxf 1\n=#<a point>Point x:int y:int\n[]")
	assert.Equal(t, token.TClassBegin, res.Tokens[0].Kind)
	assert.Equal(t, "a point", res.Tokens[0].Comment)
	assert.Equal(t, "Point", res.Tokens[0].VType)
}

func TestColonOutsideTClassIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n[:int]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestImportBecomesAnImportToken(t *testing.T) {
	res := lexOK(t, "uxf 1\n!shapes.uxf\n[]")
	assert.Equal(t, token.Import, res.Tokens[0].Kind)
	assert.Equal(t, "shapes.uxf", res.Tokens[0].Text())
}

func TestSelfImportIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n!self.uxf\n[]"), reporter.NewHandler(nil, "self.uxf"))
	assert.Error(t, err)
}

func TestSelfImportIsFatalWithDotSlashSpelling(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n!./self.uxf\n[]"), reporter.NewHandler(nil, "self.uxf"))
	assert.Error(t, err)
}

func TestSelfImportIsFatalWithDifferentRelativeSpellingInSameDir(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n!../sub/self.uxf\n[]"), reporter.NewHandler(nil, "sub/self.uxf"))
	assert.Error(t, err)
}

func TestImportOfDifferentFileInSameDirIsNotSelfImport(t *testing.T) {
	res := lexOK(t, "uxf 1\n!other.uxf\n[]")
	assert.Equal(t, token.Import, res.Tokens[0].Kind)
}

func TestStringConcatenationJoinsOntoPrecedingString(t *testing.T) {
	res := lexOK(t, "uxf 1\n[<hello, >&<world>]")
	require.Len(t, res.Tokens, 4)
	assert.Equal(t, token.Str, res.Tokens[1].Kind)
	assert.Equal(t, "hello, world", res.Tokens[1].Text())
}

func TestConcatWithoutPrecedingStringIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n[&<x>]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestMapInvalidKTypeIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n{bool <a> yes}"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestUnterminatedBytesLiteralIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n[(:DEAD]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestOddHexDigitsInBytesLiteralIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n[(:ABC:)]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestUnterminatedStringLiteralIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n[<unterminated]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestHashNotFollowedByLTIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n[#x]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}

func TestInvalidCharacterIsFatal(t *testing.T) {
	_, err := lexer.Lex([]byte("uxf 1\n[`]"), reporter.NewHandler(nil, "test.uxf"))
	assert.Error(t, err)
}
