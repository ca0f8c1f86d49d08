package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protocst/ast"
)

func TestFieldReference(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")

	plain := ast.NewFieldReferenceNode(s.ident("", "deprecated"))
	assert.False(t, plain.IsExtension())
	assert.False(t, plain.IsAnyTypeReference())
	assert.Nil(t, plain.Open())
	assert.Equal(t, "deprecated", plain.Value())

	open := s.rune(" ", '(')
	foo := s.ident("", "foo")
	dot := s.rune("", '.')
	bar := s.ident("", "bar")
	name, err := ast.NewCompoundIdentNode(nil, []*ast.IdentNode{foo, bar}, []*ast.RuneNode{dot})
	require.NoError(t, err)
	ext := ast.NewExtensionFieldReferenceNode(open, name, s.rune("", ')'))
	assert.True(t, ext.IsExtension())
	assert.Equal(t, "(foo.bar)", ext.Value())

	openBracket := s.rune(" ", '[')
	typ := s.ident("", "type")
	dot1 := s.rune("", '.')
	googleapis := s.ident("", "googleapis")
	dot2 := s.rune("", '.')
	com := s.ident("", "com")
	prefix, err := ast.NewCompoundIdentNode(nil, []*ast.IdentNode{typ, googleapis, com}, []*ast.RuneNode{dot1, dot2})
	require.NoError(t, err)
	anyRef := ast.NewAnyTypeReferenceNode(openBracket, prefix, s.rune("", '/'), s.ident("", "Foo"), s.rune("", ']'))
	assert.Equal(t, "deprecated (foo.bar) [type.googleapis.com/Foo]", s.String())
	assert.True(t, anyRef.IsAnyTypeReference())
	assert.False(t, anyRef.IsExtension())
	assert.Equal(t, "[type.googleapis.com/Foo]", anyRef.Value())
	assert.Equal(t, "/", anyRef.Slash().RawText())
}

func TestOptionName(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")
	ext := ast.NewExtensionFieldReferenceNode(s.rune("", '('), s.ident("", "foo"), s.rune("", ')'))
	dot := s.rune("", '.')
	baz := ast.NewFieldReferenceNode(s.ident("", "baz"))

	name, err := ast.NewOptionNameNode([]*ast.FieldReferenceNode{ext, baz}, []*ast.RuneNode{dot})
	require.NoError(t, err)
	assert.Equal(t, "(foo).baz", name.Value())
	assert.Equal(t, 2, name.Parts().Len())
	assert.Same(t, dot, name.Dots().At(0))

	_, err = ast.NewOptionNameNode(nil, nil)
	assert.ErrorIs(t, err, ast.ErrNoComponents)
}

func TestOptionForms(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")

	kw := s.keyword("", "option")
	name := must(ast.NewOptionNameNode([]*ast.FieldReferenceNode{ast.NewFieldReferenceNode(s.ident(" ", "java_package"))}, nil))
	eq := s.rune(" ", '=')
	val := s.str(" ", "com.example")
	semi := s.rune("", ';')
	opt := ast.NewOptionNode(kw, name, eq, val, semi)
	assert.False(t, opt.IsCompact())
	assert.Same(t, kw, opt.Keyword())
	assert.Same(t, name, opt.Name())
	assert.Same(t, eq, opt.Equals())
	assert.Equal(t, "com.example", opt.Val().Value())
	assert.Same(t, semi, opt.Semicolon())
	assert.Equal(t, `option java_package = "com.example";`, s.String())

	open := s.rune(" ", '[')
	first := ast.NewCompactOptionNode(
		must(ast.NewOptionNameNode([]*ast.FieldReferenceNode{ast.NewFieldReferenceNode(s.ident("", "deprecated"))}, nil)),
		s.rune(" ", '='),
		ast.NewBoolLiteralNode(s.keyword(" ", "true")),
	)
	comma := s.rune("", ',')
	second := ast.NewCompactOptionNode(
		must(ast.NewOptionNameNode([]*ast.FieldReferenceNode{ast.NewFieldReferenceNode(s.ident(" ", "default"))}, nil)),
		s.rune(" ", '='),
		ast.NewNegativeIntLiteralNode(s.rune(" ", '-'), s.uint("", "5", 5)),
	)
	closeBracket := s.rune("", ']')
	assert.True(t, first.IsCompact())
	assert.Nil(t, first.Keyword())
	assert.Nil(t, first.Semicolon())

	opts, err := ast.NewCompactOptionsNode(open, []*ast.OptionNode{first, second}, []*ast.RuneNode{comma}, closeBracket)
	require.NoError(t, err)
	assert.Equal(t, 2, opts.Options().Len())
	assert.Equal(t, 1, opts.Commas().Len())
	// each option keeps its own kind of value
	assert.IsType(t, &ast.BoolLiteralNode{}, opts.Options().At(0).Val())
	assert.IsType(t, &ast.NegativeIntLiteralNode{}, opts.Options().At(1).Val())
	assert.Equal(t, open.Start(), opts.Start())
	assert.Equal(t, closeBracket.End(), opts.End())

	_, err = ast.NewCompactOptionsNode(open, nil, nil, closeBracket)
	require.ErrorIs(t, err, ast.ErrNoOptions)

	_, err = ast.NewCompactOptionsNode(open, []*ast.OptionNode{first, second}, nil, closeBracket)
	require.ErrorIs(t, err, ast.ErrMismatchedSeparators)

	assert.Panics(t, func() {
		_, _ = ast.NewCompactOptionsNode(open, []*ast.OptionNode{opt}, nil, closeBracket)
	})
}
