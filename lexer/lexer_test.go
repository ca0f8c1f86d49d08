package lexer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protocst/ast"
	"github.com/bufbuild/protocst/internal/intern"
	"github.com/bufbuild/protocst/reporter"
)

const lexerInput = `
	// comment

	/*
	 * block comment
	 */ /* inline comment */

	int32  "\032\x16\n\rfoobar\"zap"		'another\tstring\'s\t'
foo

	// another comment
	// more and more...

	service rpc message
	.type
	.f.q.n
	name
	f.q.n

	.01
	.01e12
	.01e+5
	.033e-1

	12345
	-12345
	123.1234
	0.123
	012345
	0x2134abcdef30
	-0543
	-0xff76
	101.0102
	202.0203e1
	304.0304e-10
	3.1234e+12

	{ } + - , ;

	[option=foo]
	syntax = "proto2";

	// some strange cases
	1.543 g12 /* trailing line comment */
	000.000
	0.1234 .5678 .
	12e12

	Random_identifier_with_numbers_0123456789_and_letters...
	// this is a trailing comment
	// that spans multiple lines
	// over two in fact!
	/*
	 * this is a detached comment
	 * with lots of extra words and stuff...
	 */

	// this is an attached leading comment
	foo

	1.23e+20+20
	// a trailing comment for last element

	// comment attached to no tokens (upcoming token is EOF!)
	/* another comment followed by some final whitespace*/

	
	`

func TestLexer(t *testing.T) {
	t.Parallel()
	handler := reporter.NewHandler(nil)
	res, err := Tokenize("test.proto", strings.NewReader(lexerInput), handler)
	require.NoError(t, err)

	expected := []struct {
		k          Kind
		line, col  int
		span       int
		v          any
		comments   []string
		trailCount int
	}{
		{k: KindKeyword, line: 8, col: 9, span: 5, v: "int32", comments: []string{"// comment", "/*\n\t * block comment\n\t */", "/* inline comment */"}},
		{k: KindString, line: 8, col: 16, span: 25, v: "\032\x16\n\rfoobar\"zap"},
		{k: KindString, line: 8, col: 57, span: 22, v: "another\tstring's\t"},
		{k: KindIdent, line: 9, col: 1, span: 3, v: "foo"},
		{k: KindKeyword, line: 14, col: 9, span: 7, v: "service", comments: []string{"// another comment", "// more and more..."}},
		{k: KindKeyword, line: 14, col: 17, span: 3, v: "rpc"},
		{k: KindKeyword, line: 14, col: 21, span: 7, v: "message"},
		{k: KindPunct, line: 15, col: 9, span: 1, v: '.'},
		{k: KindIdent, line: 15, col: 10, span: 4, v: "type"},
		{k: KindPunct, line: 16, col: 9, span: 1, v: '.'},
		{k: KindIdent, line: 16, col: 10, span: 1, v: "f"},
		{k: KindPunct, line: 16, col: 11, span: 1, v: '.'},
		{k: KindIdent, line: 16, col: 12, span: 1, v: "q"},
		{k: KindPunct, line: 16, col: 13, span: 1, v: '.'},
		{k: KindIdent, line: 16, col: 14, span: 1, v: "n"},
		{k: KindIdent, line: 17, col: 9, span: 4, v: "name"},
		{k: KindIdent, line: 18, col: 9, span: 1, v: "f"},
		{k: KindPunct, line: 18, col: 10, span: 1, v: '.'},
		{k: KindIdent, line: 18, col: 11, span: 1, v: "q"},
		{k: KindPunct, line: 18, col: 12, span: 1, v: '.'},
		{k: KindIdent, line: 18, col: 13, span: 1, v: "n"},
		{k: KindFloat, line: 20, col: 9, span: 3, v: 0.01},
		{k: KindFloat, line: 21, col: 9, span: 6, v: 0.01e12},
		{k: KindFloat, line: 22, col: 9, span: 6, v: 0.01e5},
		{k: KindFloat, line: 23, col: 9, span: 7, v: 0.033e-1},
		{k: KindInt, line: 25, col: 9, span: 5, v: uint64(12345)},
		{k: KindPunct, line: 26, col: 9, span: 1, v: '-'},
		{k: KindInt, line: 26, col: 10, span: 5, v: uint64(12345)},
		{k: KindFloat, line: 27, col: 9, span: 8, v: 123.1234},
		{k: KindFloat, line: 28, col: 9, span: 5, v: 0.123},
		{k: KindInt, line: 29, col: 9, span: 6, v: uint64(012345)},
		{k: KindInt, line: 30, col: 9, span: 14, v: uint64(0x2134abcdef30)},
		{k: KindPunct, line: 31, col: 9, span: 1, v: '-'},
		{k: KindInt, line: 31, col: 10, span: 4, v: uint64(0543)},
		{k: KindPunct, line: 32, col: 9, span: 1, v: '-'},
		{k: KindInt, line: 32, col: 10, span: 6, v: uint64(0xff76)},
		{k: KindFloat, line: 33, col: 9, span: 8, v: 101.0102},
		{k: KindFloat, line: 34, col: 9, span: 10, v: 202.0203e1},
		{k: KindFloat, line: 35, col: 9, span: 12, v: 304.0304e-10},
		{k: KindFloat, line: 36, col: 9, span: 10, v: 3.1234e+12},
		{k: KindPunct, line: 38, col: 9, span: 1, v: '{'},
		{k: KindPunct, line: 38, col: 11, span: 1, v: '}'},
		{k: KindPunct, line: 38, col: 13, span: 1, v: '+'},
		{k: KindPunct, line: 38, col: 15, span: 1, v: '-'},
		{k: KindPunct, line: 38, col: 17, span: 1, v: ','},
		{k: KindPunct, line: 38, col: 19, span: 1, v: ';'},
		{k: KindPunct, line: 40, col: 9, span: 1, v: '['},
		{k: KindKeyword, line: 40, col: 10, span: 6, v: "option"},
		{k: KindPunct, line: 40, col: 16, span: 1, v: '='},
		{k: KindIdent, line: 40, col: 17, span: 3, v: "foo"},
		{k: KindPunct, line: 40, col: 20, span: 1, v: ']'},
		{k: KindKeyword, line: 41, col: 9, span: 6, v: "syntax"},
		{k: KindPunct, line: 41, col: 16, span: 1, v: '='},
		{k: KindString, line: 41, col: 18, span: 8, v: "proto2"},
		{k: KindPunct, line: 41, col: 26, span: 1, v: ';'},
		{k: KindFloat, line: 44, col: 9, span: 5, v: 1.543, comments: []string{"// some strange cases"}},
		{k: KindIdent, line: 44, col: 15, span: 3, v: "g12"},
		{k: KindFloat, line: 45, col: 9, span: 7, v: 0.0, comments: []string{"/* trailing line comment */"}, trailCount: 1},
		{k: KindFloat, line: 46, col: 9, span: 6, v: 0.1234},
		{k: KindFloat, line: 46, col: 16, span: 5, v: 0.5678},
		{k: KindPunct, line: 46, col: 22, span: 1, v: '.'},
		{k: KindFloat, line: 47, col: 9, span: 5, v: 12e12},
		{k: KindIdent, line: 49, col: 9, span: 53, v: "Random_identifier_with_numbers_0123456789_and_letters"},
		{k: KindPunct, line: 49, col: 62, span: 1, v: '.'},
		{k: KindPunct, line: 49, col: 63, span: 1, v: '.'},
		{k: KindPunct, line: 49, col: 64, span: 1, v: '.'},
		{k: KindIdent, line: 59, col: 9, span: 3, v: "foo", comments: []string{"// this is a trailing comment", "// that spans multiple lines", "// over two in fact!", "/*\n\t * this is a detached comment\n\t * with lots of extra words and stuff...\n\t */", "// this is an attached leading comment"}, trailCount: 3},
		{k: KindFloat, line: 61, col: 9, span: 8, v: 1.23e+20},
		{k: KindPunct, line: 61, col: 17, span: 1, v: '+'},
		{k: KindInt, line: 61, col: 18, span: 2, v: uint64(20)},
	}

	toks := res.Tokens()
	require.Len(t, toks, len(expected))
	var prev ast.TerminalNode
	for i, exp := range expected {
		tok := toks[i]
		if !assert.Equal(t, exp.k, KindOf(tok), "case %d: wrong token kind", i) {
			break
		}
		if !assert.Equal(t, exp.v, tokenValue(tok), "case %d: wrong token value", i) {
			break
		}
		assert.Equal(t, exp.line, tok.Start().Line, "case %d: wrong line number", i)
		assert.Equal(t, exp.col, tok.Start().Col, "case %d: wrong column number (on line %d)", i, exp.line)
		assert.Equal(t, exp.line, tok.End().Line, "case %d: wrong end line number", i)
		assert.Equal(t, exp.col+exp.span, tok.End().Col, "case %d: wrong end column number", i)
		var trailing []ast.Comment
		if prev != nil {
			trailing = prev.TrailingComments()
		}
		assert.Len(t, trailing, exp.trailCount, "case %d: wrong number of trailing comments", i)
		assert.Len(t, tok.LeadingComments(), len(exp.comments)-exp.trailCount, "case %d: wrong number of comments", i)
		for ci := range exp.comments {
			var c ast.Comment
			if ci < exp.trailCount {
				c = trailing[ci]
			} else {
				c = tok.LeadingComments()[ci-exp.trailCount]
			}
			assert.Equal(t, exp.comments[ci], c.Text, "case %d, comment #%d: unexpected text", i, ci+1)
		}
		prev = tok
	}

	// One of the final comments trails the last token. The rest stay
	// with the end of the file.
	assert.Len(t, prev.TrailingComments(), 1, "last token: wrong number of trailing comments")
	eof := res.EOF()
	assert.Equal(t, KindEOF, KindOf(eof))
	finalComments := eof.LeadingComments()
	if assert.Len(t, finalComments, 2, "wrong number of final remaining comments") {
		assert.Equal(t, "// comment attached to no tokens (upcoming token is EOF!)", finalComments[0].Text, "incorrect final comment text")
		assert.Equal(t, "/* another comment followed by some final whitespace*/", finalComments[1].Text, "incorrect final comment text")
	}
	assert.Equal(t, "\n\n\t\n\t", eof.LeadingWhitespace(), "incorrect final whitespace")
	assert.Empty(t, eof.RawText())
	assert.Equal(t, len(lexerInput), eof.Start().Offset)

	assert.Equal(t, lexerInput, printTokens(t, res))
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		str    string
		errMsg string
	}{
		{str: `0xffffffffffffffffffff`, errMsg: "value out of range"},
		{str: `"foobar`, errMsg: "unexpected EOF"},
		{str: `"foobar\J"`, errMsg: "invalid escape sequence"},
		{str: `"foobar\xgfoo"`, errMsg: "invalid hex escape"},
		{str: `"foobar\u09gafoo"`, errMsg: "invalid unicode escape"},
		{str: `"foobar\U0010005zfoo"`, errMsg: "invalid unicode escape"},
		{str: `"foobar\U00110000foo"`, errMsg: "unicode escape is out of range"},
		{str: `"\777"`, errMsg: "octal escape is out range"},
		{str: "'foobar\nbaz'", errMsg: "encountered end-of-line"},
		{str: "'foobar\000baz'", errMsg: "null character ('\\0') not allowed"},
		{str: `1.543g12`, errMsg: "invalid syntax"},
		{str: `0.1234.5678.`, errMsg: "invalid syntax"},
		{str: `0x987.345aaf`, errMsg: "invalid syntax"},
		{str: `0.987.345`, errMsg: "invalid syntax"},
		{str: `0.987e34e-20`, errMsg: "invalid syntax"},
		{str: `0.987e-345e20`, errMsg: "invalid syntax"},
		{str: `.987to123`, errMsg: "invalid syntax"},
		{str: `/* foobar`, errMsg: "unexpected EOF"},
		{str: "café", errMsg: "invalid character"},
		{str: "\xff", errMsg: "invalid UTF-8"},
	}
	for i, tc := range testCases {
		handler := reporter.NewHandler(nil)
		res, err := Tokenize("test.proto", strings.NewReader(tc.str), handler)
		assert.Nil(t, res, "case %d", i)
		var ewp reporter.ErrorWithPos
		if assert.ErrorAs(t, err, &ewp, "case %d", i) {
			assert.Contains(t, err.Error(), tc.errMsg, "case %d", i)
			assert.Equal(t, "test.proto", ewp.GetPosition().Filename, "case %d", i)
		}
	}
}

func TestLexerContinuesAfterErrors(t *testing.T) {
	t.Parallel()
	const input = "foo 0x1G \"bad\\q\" bar 'unterminated\n/* open"
	var errs []error
	handler := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		errs = append(errs, err)
		return nil
	}, nil))
	res, err := Tokenize("test.proto", strings.NewReader(input), handler)
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	require.NotNil(t, res)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "test.proto:1:5: invalid syntax in hexadecimal integer value: 1G")
	assert.Contains(t, errs[1].Error(), "test.proto:1:10: invalid escape sequence")
	assert.Contains(t, errs[2].Error(), "test.proto:1:22: encountered end-of-line")
	assert.Contains(t, errs[3].Error(), "test.proto:2:1: block comment never terminates")

	toks := res.Tokens()
	require.Len(t, toks, 5)
	assert.Equal(t, []any{"foo", uint64(0), "", "bar", ""}, []any{
		tokenValue(toks[0]), tokenValue(toks[1]), tokenValue(toks[2]), tokenValue(toks[3]), tokenValue(toks[4]),
	})
	assert.Equal(t, "'unterminated", toks[4].RawText())
	assert.Equal(t, input, printTokens(t, res))
}

func TestLexerByteOrderMark(t *testing.T) {
	t.Parallel()
	handler := reporter.NewHandler(nil)
	res, err := Tokenize("bom.proto", strings.NewReader("\ufeffsyntax"), handler)
	require.NoError(t, err)
	require.Len(t, res.Tokens(), 1)
	tok := res.Tokens()[0]
	assert.Equal(t, "syntax", tok.RawText())
	assert.Equal(t, ast.SourcePos{Filename: "bom.proto", Line: 1, Col: 1}, tok.Start())
	assert.Equal(t, []byte("syntax"), res.FileInfo.Data())
}

func TestLexerEmptyInput(t *testing.T) {
	t.Parallel()
	handler := reporter.NewHandler(nil)
	res, err := Tokenize("empty.proto", strings.NewReader(""), handler)
	require.NoError(t, err)
	assert.Empty(t, res.Tokens())
	assert.Equal(t, ast.SourcePos{Filename: "empty.proto", Line: 1, Col: 1}, res.EOF().Start())
	assert.Len(t, res.All(), 1)
}

func TestLexerCommentOnlyInput(t *testing.T) {
	t.Parallel()
	const input = "// one\n\n/* two */\n"
	handler := reporter.NewHandler(nil)
	res, err := Tokenize("comments.proto", strings.NewReader(input), handler)
	require.NoError(t, err)
	assert.Empty(t, res.Tokens())
	comments := res.EOF().LeadingComments()
	require.Len(t, comments, 2)
	assert.Equal(t, "// one", comments[0].Text)
	assert.Equal(t, "\n\n", comments[1].LeadingWhitespace)
	assert.Equal(t, "\n", res.EOF().LeadingWhitespace())
	assert.Equal(t, input, printTokens(t, res))
}

func TestLexerColumns(t *testing.T) {
	t.Parallel()
	// The flag is a single grapheme cluster made of two runes. The string
	// literal holding it counts as three columns.
	const input = "\"\U0001F1FA\U0001F1F8\" x\n\ty"
	for _, tc := range []struct {
		tabWidth int
		col      int
	}{
		{tabWidth: 0, col: 9},
		{tabWidth: 4, col: 5},
		{tabWidth: 2, col: 3},
	} {
		handler := reporter.NewHandler(nil)
		var opts []Option
		if tc.tabWidth > 0 {
			opts = append(opts, WithTabWidth(tc.tabWidth))
		}
		res, err := Tokenize("cols.proto", strings.NewReader(input), handler, opts...)
		require.NoError(t, err)
		toks := res.Tokens()
		require.Len(t, toks, 3)
		assert.Equal(t, 4, toks[0].End().Col)
		assert.Equal(t, 5, toks[1].Start().Col)
		assert.Equal(t, 2, toks[2].Start().Line)
		assert.Equal(t, tc.col, toks[2].Start().Col, "tab width %d", tc.tabWidth)
	}
}

func TestLexerInterning(t *testing.T) {
	t.Parallel()
	table := &intern.Table{}
	handler := reporter.NewHandler(nil)
	_, err := Tokenize("a.proto", strings.NewReader("Foo Bar Foo"), handler, WithInternTable(table))
	require.NoError(t, err)
	_, err = Tokenize("b.proto", strings.NewReader("Bar Baz"), handler, WithInternTable(table))
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	_, ok := table.Query("Baz")
	assert.True(t, ok)
}

func TestLexerAbortStopsEarly(t *testing.T) {
	t.Parallel()
	stop := errors.New("stop")
	var count int
	handler := reporter.NewHandler(reporter.NewReporter(func(reporter.ErrorWithPos) error {
		count++
		return stop
	}, nil))
	res, err := Tokenize("test.proto", strings.NewReader(`"\q" "\q" "\q"`), handler)
	assert.Nil(t, res)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, count)
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ident", KindIdent.String())
	assert.Equal(t, "eof", KindEOF.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.True(t, IsKeyword("returns"))
	assert.False(t, IsKeyword("Returns"))
}

func tokenValue(tok ast.TerminalNode) any {
	switch tok := tok.(type) {
	case *ast.IdentNode:
		return tok.Text()
	case *ast.RuneNode:
		return tok.Rune()
	default:
		return tok.(ast.ValueNode).Value()
	}
}

func printTokens(t *testing.T, res *Result) string {
	t.Helper()
	var buf bytes.Buffer
	for _, tok := range res.All() {
		require.NoError(t, ast.Print(&buf, tok))
	}
	return buf.String()
}
