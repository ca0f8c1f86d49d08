// Package testutil holds helpers shared by tests that need real trees:
// a cursor that hands out the tokens of a source file in order, so a test
// can assemble a tree from them, and protobuf message comparison.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protocst/ast"
	"github.com/bufbuild/protocst/lexer"
	"github.com/bufbuild/protocst/reporter"
)

// Cursor hands out the tokens of a file one at a time. Each method fails
// the test if the next token is not of the expected kind.
type Cursor struct {
	t    testing.TB
	res  *lexer.Result
	next int
}

// Tokenize lexes src, failing the test on any error.
func Tokenize(t testing.TB, filename, src string) *Cursor {
	t.Helper()
	res, err := lexer.Tokenize(filename, strings.NewReader(src), reporter.NewHandler(nil))
	require.NoError(t, err)
	return &Cursor{t: t, res: res}
}

// Result returns the tokenized file.
func (c *Cursor) Result() *lexer.Result {
	return c.res
}

// Peek returns the next token without consuming it. It returns the end
// of file token when all tokens are consumed.
func (c *Cursor) Peek() ast.TerminalNode {
	if c.next >= len(c.res.Tokens()) {
		return c.res.EOF()
	}
	return c.res.Tokens()[c.next]
}

func (c *Cursor) take(kind lexer.Kind, text string) ast.TerminalNode {
	c.t.Helper()
	tok := c.Peek()
	if got := lexer.KindOf(tok); got != kind && !(kind == lexer.KindIdent && got == lexer.KindKeyword) {
		require.FailNow(c.t, fmt.Sprintf("token %d: want %v, got %v %q at %v", c.next, kind, got, tok.RawText(), tok.Start()))
	}
	if text != "" {
		require.Equal(c.t, text, tok.RawText(), "token %d at %v", c.next, tok.Start())
	}
	c.next++
	return tok
}

// Ident consumes an identifier or keyword.
func (c *Cursor) Ident() *ast.IdentNode {
	c.t.Helper()
	return c.take(lexer.KindIdent, "").(*ast.IdentNode)
}

// Keyword consumes an identifier whose text is kw.
func (c *Cursor) Keyword(kw string) *ast.KeywordNode {
	c.t.Helper()
	return c.take(lexer.KindIdent, kw).(*ast.KeywordNode)
}

// Rune consumes the punctuation r.
func (c *Cursor) Rune(r rune) *ast.RuneNode {
	c.t.Helper()
	return c.take(lexer.KindPunct, string(r)).(*ast.RuneNode)
}

// Uint consumes an integer literal.
func (c *Cursor) Uint() *ast.UintLiteralNode {
	c.t.Helper()
	return c.take(lexer.KindInt, "").(*ast.UintLiteralNode)
}

// Float consumes a float literal.
func (c *Cursor) Float() *ast.FloatLiteralNode {
	c.t.Helper()
	return c.take(lexer.KindFloat, "").(*ast.FloatLiteralNode)
}

// Str consumes a string literal.
func (c *Cursor) Str() *ast.StringLiteralNode {
	c.t.Helper()
	return c.take(lexer.KindString, "").(*ast.StringLiteralNode)
}

// Name consumes a possibly qualified name, such as "foo.Bar" or ".foo".
func (c *Cursor) Name() ast.IdentValueNode {
	c.t.Helper()
	var leading *ast.RuneNode
	if r, ok := c.Peek().(*ast.RuneNode); ok && r.Rune() == '.' {
		leading = c.Rune('.')
	}
	parts := []*ast.IdentNode{c.Ident()}
	var dots []*ast.RuneNode
	for {
		r, ok := c.Peek().(*ast.RuneNode)
		if !ok || r.Rune() != '.' {
			break
		}
		dots = append(dots, c.Rune('.'))
		parts = append(parts, c.Ident())
	}
	if leading == nil && len(parts) == 1 {
		return parts[0]
	}
	n, err := ast.NewCompoundIdentNode(leading, parts, dots)
	require.NoError(c.t, err)
	return n
}

// EOF consumes the end of file token. It fails the test if any tokens
// remain.
func (c *Cursor) EOF() *ast.RuneNode {
	c.t.Helper()
	require.Equal(c.t, len(c.res.Tokens()), c.next, "unconsumed tokens, next is %q", c.Peek().RawText())
	return c.res.EOF()
}
