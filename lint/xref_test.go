package lint

import (
	"testing"

	"github.com/kirin-lang/kirin/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXrefTracksDeclarationAndReads(t *testing.T) {
	stmts, err := parser.ParseAST("let x = 1\nx\nx = 2\n", "")
	require.Nil(t, err)

	symbols := Xref(stmts)
	require.Contains(t, symbols, "x")

	sym := symbols["x"]
	require.NotNil(t, sym.Declaration)
	require.Len(t, sym.References, 2)
	assert.Equal(t, RefRead, sym.References[0].Kind)
	assert.Equal(t, RefWrite, sym.References[1].Kind)
}

func TestXrefTracksCalls(t *testing.T) {
	stmts, err := parser.ParseAST("let f = 1\nf()\n", "")
	require.Nil(t, err)

	symbols := Xref(stmts)
	require.Contains(t, symbols, "f")
	require.Len(t, symbols["f"].References, 1)
	assert.Equal(t, RefCall, symbols["f"].References[0].Kind)
}

func TestXrefUndeclaredNameHasNilDeclaration(t *testing.T) {
	stmts, err := parser.ParseAST("y\n", "")
	require.Nil(t, err)

	symbols := Xref(stmts)
	require.Contains(t, symbols, "y")
	assert.Nil(t, symbols["y"].Declaration)
}

func TestFormatXrefOrdersDeclaredBeforeUndeclared(t *testing.T) {
	stmts, err := parser.ParseAST("let x = 1\ny\n", "")
	require.Nil(t, err)

	out := FormatXref(Xref(stmts))
	assert.Contains(t, out, "x (declared")
	assert.Contains(t, out, "y (never declared)")
	assert.Less(t, indexOf(out, "x ("), indexOf(out, "y ("))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
