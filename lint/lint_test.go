package lint

import (
	"testing"

	"github.com/kirin-lang/kirin/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseBeforeDeclareIsFlagged(t *testing.T) {
	stmts, err := parser.ParseAST("x\nlet x = 1\n", "")
	require.Nil(t, err)

	issues := Lint(stmts, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, "USE_BEFORE_DECLARE", issues[0].Code)
}

func TestRedeclarationIsFlagged(t *testing.T) {
	stmts, err := parser.ParseAST("let x = 1\nlet x = 2\n", "")
	require.Nil(t, err)

	issues := Lint(stmts, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, "REDECLARED", issues[0].Code)
}

func TestNoIssuesForWellFormedDeclarations(t *testing.T) {
	stmts, err := parser.ParseAST("let x = 1\nx = 2\n", "")
	require.Nil(t, err)

	issues := Lint(stmts, nil)
	assert.Empty(t, issues)
}
