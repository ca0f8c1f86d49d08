package walk_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protocst/ast"
	"github.com/bufbuild/protocst/internal/testutil"
	"github.com/bufbuild/protocst/walk"
)

const colorSource = `syntax = "proto3";
// Color doc
enum Color {
  RED = 0;
}
`

func buildColorFile(t *testing.T) *ast.FileNode {
	t.Helper()
	c := testutil.Tokenize(t, "color.proto", colorSource)
	syntax := ast.NewSyntaxNode(c.Keyword("syntax"), c.Rune('='), c.Str(), c.Rune(';'))
	kw, name, open := c.Keyword("enum"), c.Ident(), c.Rune('{')
	val := ast.NewEnumValueNode(c.Ident(), c.Rune('='), c.Uint(), nil, c.Rune(';'))
	enum := ast.NewEnumNode(kw, name, open, []ast.EnumElement{val.AsEnumElement()}, c.Rune('}'))
	return ast.NewFileNode(syntax, []ast.FileElement{enum.AsFileElement()}, c.EOF())
}

func describe(n ast.Node) string {
	if t, ok := n.(ast.TerminalNode); ok {
		return fmt.Sprintf("%q", t.RawText())
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

func TestNodes(t *testing.T) {
	t.Parallel()
	file := buildColorFile(t)

	var visited []string
	err := walk.Nodes(file, func(n ast.Node) error {
		visited = append(visited, describe(n))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"FileNode",
		"SyntaxNode", `"syntax"`, `"="`, `"\"proto3\""`, `";"`,
		"EnumNode", `"enum"`, `"Color"`, `"{"`,
		"EnumValueNode", `"RED"`, `"="`, `"0"`, `";"`,
		`"}"`,
		`""`,
	}, visited)
}

func TestNodesEnterAndExit(t *testing.T) {
	t.Parallel()
	file := buildColorFile(t)

	var events []string
	err := walk.NodesEnterAndExit(file.Decls().At(0),
		func(n ast.Node) error {
			if _, ok := n.(ast.CompositeNode); ok {
				events = append(events, "enter "+describe(n))
			}
			return nil
		},
		func(n ast.Node) error {
			if _, ok := n.(ast.CompositeNode); ok {
				events = append(events, "exit "+describe(n))
			}
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"enter EnumNode", "enter EnumValueNode", "exit EnumValueNode", "exit EnumNode"}, events)
}

func TestNodesSkipChildren(t *testing.T) {
	t.Parallel()
	file := buildColorFile(t)

	var count, exits int
	err := walk.NodesEnterAndExit(file,
		func(n ast.Node) error {
			count++
			if _, ok := n.(*ast.EnumNode); ok {
				return walk.SkipChildren
			}
			return nil
		},
		func(n ast.Node) error {
			if _, ok := n.(*ast.EnumNode); ok {
				exits++
			}
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 8, count)
	assert.Equal(t, 1, exits)
}

func TestNodesError(t *testing.T) {
	t.Parallel()
	file := buildColorFile(t)

	stop := errors.New("stop")
	var count int
	err := walk.Nodes(file, func(n ast.Node) error {
		count++
		if _, ok := n.(*ast.EnumValueNode); ok {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 11, count)
}

func TestTerminals(t *testing.T) {
	t.Parallel()
	file := buildColorFile(t)

	var raw []string
	for tok := range walk.Terminals(file) {
		raw = append(raw, tok.RawText())
	}
	assert.Equal(t, `syntax="proto3";enumColor{RED=0;}`, strings.Join(raw, ""))
	assert.Len(t, raw, 13)

	// Stopping early is allowed.
	var first []string
	for tok := range walk.Terminals(file) {
		first = append(first, tok.RawText())
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"syntax", "="}, first)
}

func TestAncestors(t *testing.T) {
	t.Parallel()
	file := buildColorFile(t)

	var path []string
	err := walk.Ancestors(file, func(n ast.Node, ancestors []ast.Node) error {
		if id, ok := n.(*ast.IdentNode); ok && id.Text() == "RED" {
			for _, a := range ancestors {
				path = append(path, describe(a))
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"FileNode", "EnumNode", "EnumValueNode"}, path)
}

func TestIndex(t *testing.T) {
	t.Parallel()
	file := buildColorFile(t)
	idx := walk.NewIndex(file)
	assert.Same(t, file, idx.Root())
	assert.Equal(t, 13, idx.Terminals())

	red := strings.Index(colorSource, "RED")
	for _, offset := range []int{red, red + 2} {
		tok := idx.TerminalAt(offset)
		require.NotNil(t, tok, "offset %d", offset)
		assert.Equal(t, "RED", tok.RawText())
	}
	assert.Nil(t, idx.TerminalAt(strings.Index(colorSource, " = ")))
	assert.Same(t, file.EOF(), idx.TerminalAt(len(colorSource)))

	doc := strings.Index(colorSource, "Color doc")
	assert.Nil(t, idx.TerminalAt(doc))
	ref, ok := idx.CommentAt(doc)
	require.True(t, ok)
	assert.Equal(t, "// Color doc", ref.Comment.Text)
	assert.Equal(t, "enum", ref.Owner.RawText())
	assert.False(t, ref.Trailing)
	_, ok = idx.CommentAt(red)
	assert.False(t, ok)

	var path []string
	for _, n := range idx.PathTo(red + 1) {
		path = append(path, describe(n))
	}
	assert.Equal(t, []string{"FileNode", "EnumNode", "EnumValueNode", `"RED"`}, path)

	path = path[:0]
	for _, n := range idx.PathTo(strings.Index(colorSource, "{") + 1) {
		path = append(path, describe(n))
	}
	assert.Equal(t, []string{"FileNode", "EnumNode"}, path)

	assert.Nil(t, idx.PathTo(len(colorSource)+10))
}

func TestTokenIndex(t *testing.T) {
	t.Parallel()
	c := testutil.Tokenize(t, "color.proto", colorSource)
	idx := walk.NewTokenIndex(c.Result().All())
	assert.Nil(t, idx.Root())
	assert.Equal(t, 13, idx.Terminals())

	red := strings.Index(colorSource, "RED")
	tok := idx.TerminalAt(red + 1)
	require.NotNil(t, tok)
	assert.Equal(t, "RED", tok.RawText())
	assert.Equal(t, []ast.Node{tok}, idx.PathTo(red+1))

	ref, ok := idx.CommentAt(strings.Index(colorSource, "Color doc"))
	require.True(t, ok)
	assert.Equal(t, "enum", ref.Owner.RawText())
}
