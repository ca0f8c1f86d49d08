package ast_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protocst/ast"
)

func TestUintDualViews(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")

	small := s.uint("", "42", 42)
	i, ok := small.AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)
	u, ok := small.AsUint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), u)
	assert.Equal(t, float64(42), small.AsFloat())

	maxSigned := s.uint(" ", "9223372036854775807", math.MaxInt64)
	i, ok = maxSigned.AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), i)

	big := s.uint(" ", "18446744073709551615", math.MaxUint64)
	i, ok = big.AsInt64()
	assert.False(t, ok)
	assert.Zero(t, i)
	u, ok = big.AsUint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), u)
}

func TestPositiveUintDualViews(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")
	n := ast.NewPositiveUintLiteralNode(s.rune("", '+'), s.uint("", "9223372036854775808", math.MaxInt64+1))
	_, ok := n.AsInt64()
	assert.False(t, ok)
	u, ok := n.AsUint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxInt64+1), u)
	assert.Equal(t, "+", n.Plus().RawText())

	assert.Panics(t, func() {
		ast.NewPositiveUintLiteralNode(s.rune("", '-'), s.uint("", "1", 1))
	})
}

func TestNegativeIntDualViews(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")

	neg := ast.NewNegativeIntLiteralNode(s.rune("", '-'), s.uint("", "7", 7))
	i, ok := neg.AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(-7), i)
	u, ok := neg.AsUint64()
	assert.False(t, ok)
	assert.Zero(t, u)
	assert.Equal(t, int64(-7), neg.Value())

	zero := ast.NewNegativeIntLiteralNode(s.rune(" ", '-'), s.uint("", "0", 0))
	i, ok = zero.AsInt64()
	assert.True(t, ok)
	assert.Zero(t, i)
	u, ok = zero.AsUint64()
	assert.True(t, ok)
	assert.Zero(t, u)

	minInt := ast.NewNegativeIntLiteralNode(s.rune(" ", '-'), s.uint("", "9223372036854775808", math.MaxInt64+1))
	i, ok = minInt.AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), i)

	tooSmall := ast.NewNegativeIntLiteralNode(s.rune(" ", '-'), s.uint("", "9223372036854775809", math.MaxInt64+2))
	_, ok = tooSmall.AsInt64()
	assert.False(t, ok)
}

func TestAsInt32(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")
	v, ok := ast.AsInt32(s.uint("", "5", 5), 1, 536870911)
	assert.True(t, ok)
	assert.Equal(t, int32(5), v)
	_, ok = ast.AsInt32(s.uint(" ", "0", 0), 1, 536870911)
	assert.False(t, ok)
	v, ok = ast.AsInt32(ast.NewNegativeIntLiteralNode(s.rune(" ", '-'), s.uint("", "3", 3)), math.MinInt32, math.MaxInt32)
	assert.True(t, ok)
	assert.Equal(t, int32(-3), v)
}

func TestSpecialFloats(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")

	inf := ast.NewSpecialFloatLiteralNode(s.keyword("", "inf"))
	assert.True(t, math.IsInf(inf.AsFloat(), 1))
	assert.Equal(t, "inf", inf.RawText())

	for _, kw := range []string{"nan", "infinity", "NaN"} {
		n := ast.NewSpecialFloatLiteralNode(s.keyword(" ", kw))
		assert.True(t, math.IsNaN(n.AsFloat()), kw)
	}

	negInf := ast.NewSignedFloatLiteralNode(s.rune(" ", '-'), ast.NewSpecialFloatLiteralNode(s.keyword("", "inf")))
	assert.True(t, math.IsInf(negInf.AsFloat(), -1))

	plus := ast.NewSignedFloatLiteralNode(s.rune(" ", '+'), ast.NewFloatLiteralNode(1.5, s.info("", "1.5")))
	assert.Equal(t, 1.5, plus.AsFloat())

	fromInt := ast.NewSignedFloatLiteralNode(s.rune(" ", '-'), s.uint("", "2", 2))
	assert.Equal(t, -2.0, fromInt.Value())
}

func TestBoolLiteral(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")
	assert.Equal(t, true, ast.NewBoolLiteralNode(s.keyword("", "true")).Value())
	assert.Equal(t, false, ast.NewBoolLiteralNode(s.keyword(" ", "false")).Value())
	assert.Equal(t, false, ast.NewBoolLiteralNode(s.keyword(" ", "True")).Value())
}

func TestCompoundString(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")

	n, err := ast.NewCompoundLiteralStringNode(s.str("", "foo"), s.str(" ", "bar"))
	require.NoError(t, err)
	assert.Equal(t, "foobar", n.AsString())
	assert.Equal(t, 2, n.Components().Len())
	assert.Equal(t, n.Components().At(1).End(), n.End())

	n, err = ast.NewCompoundLiteralStringNode()
	assert.Nil(t, n)
	require.ErrorIs(t, err, ast.ErrNoComponents)
	var ce *ast.ConstructionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "compound string literal", ce.Node)
}

func TestArrayLiteral(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")

	open := s.rune("", '[')
	a := s.str("", "a")
	comma := s.rune("", ',')
	b := ast.NewNegativeIntLiteralNode(s.rune(" ", '-'), s.uint("", "1", 1))
	closeBracket := s.rune("", ']')

	arr, err := ast.NewArrayLiteralNode[ast.ValueNode](open, []ast.ValueNode{a, b}, []*ast.RuneNode{comma}, closeBracket)
	require.NoError(t, err)
	assert.Equal(t, `["a", -1]`, s.String())
	assert.Equal(t, 2, arr.Elements().Len())
	assert.Equal(t, 1, arr.Commas().Len())
	assert.Same(t, comma, arr.Commas().At(0))
	assert.Equal(t, []ast.ValueNode{a, b}, arr.Value())
	assert.Equal(t, open.Start(), arr.Start())
	assert.Equal(t, closeBracket.End(), arr.End())

	strs, err := ast.NewArrayLiteralNode(open, []*ast.StringLiteralNode{a}, nil, closeBracket)
	require.NoError(t, err)
	assert.Equal(t, []*ast.StringLiteralNode{a}, strs.Value())

	empty, err := ast.NewArrayLiteralNode[ast.ValueNode](open, nil, nil, closeBracket)
	require.NoError(t, err)
	assert.Zero(t, empty.Elements().Len())
	assert.Zero(t, empty.Commas().Len())
	assert.Empty(t, empty.Value())
	assert.Len(t, empty.Children(), 2)

	emptyStrs, err := ast.NewArrayLiteralNode[*ast.StringLiteralNode](open, nil, nil, closeBracket)
	require.NoError(t, err)
	assert.Empty(t, emptyStrs.Value())
	assert.Same(t, closeBracket, emptyStrs.CloseBracket())

	var missing *ast.StringLiteralNode
	assert.PanicsWithValue(t, "element is nil", func() {
		_, _ = ast.NewArrayLiteralNode[ast.ValueNode](open, []ast.ValueNode{a, missing}, []*ast.RuneNode{comma}, closeBracket)
	})
	assert.PanicsWithValue(t, "separator is nil", func() {
		_, _ = ast.NewArrayLiteralNode[ast.ValueNode](open, []ast.ValueNode{a, b}, []*ast.RuneNode{nil}, closeBracket)
	})

	_, err = ast.NewArrayLiteralNode[ast.ValueNode](open, []ast.ValueNode{a, b}, nil, closeBracket)
	assert.ErrorIs(t, err, ast.ErrMismatchedSeparators)
}

func TestMessageLiteral(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")

	open := s.rune("", '{')
	foo := ast.NewMessageFieldNode(ast.NewFieldReferenceNode(s.ident(" ", "foo")), s.rune("", ':'), s.uint(" ", "1", 1))
	comma := s.rune("", ',')
	ext := ast.NewExtensionFieldReferenceNode(s.rune(" ", '['), s.ident("", "ext"), s.rune("", ']'))
	inner, err := ast.NewMessageLiteralNode(s.rune(" ", '<'), nil, nil, s.rune("", '>'))
	require.NoError(t, err)
	bar := ast.NewMessageFieldNode(ext, nil, inner)
	closeBrace := s.rune(" ", '}')

	msg, err := ast.NewMessageLiteralNode(open, []*ast.MessageFieldNode{foo, bar}, []*ast.RuneNode{comma, nil}, closeBrace)
	require.NoError(t, err)
	assert.Equal(t, "{ foo: 1, [ext] <> }", s.String())
	assert.Equal(t, 2, msg.Elements().Len())
	assert.Same(t, comma, msg.Seps().At(0))
	assert.Nil(t, msg.Seps().At(1))
	assert.Nil(t, bar.Sep())
	assert.Equal(t, "[ext]", bar.Name().Value())
	assert.Equal(t, ":", foo.Sep().RawText())
	assert.Len(t, msg.Children(), 5)

	_, err = ast.NewMessageLiteralNode(open, []*ast.MessageFieldNode{foo, bar}, []*ast.RuneNode{comma}, closeBrace)
	assert.ErrorIs(t, err, ast.ErrMismatchedSeparators)
}
