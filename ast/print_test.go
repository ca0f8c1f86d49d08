package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protocst/ast"
)

func TestPrintSubtree(t *testing.T) {
	t.Parallel()
	s := newSource("test.proto")
	enum, _, green := buildEnum(s)

	var sb strings.Builder
	require.NoError(t, ast.Print(&sb, enum))
	assert.Equal(t, s.String(), sb.String())

	sb.Reset()
	require.NoError(t, ast.Print(&sb, green.AsEnumElement()))
	assert.Equal(t, " GREEN = -1;", sb.String())
}
