package format

import (
	"testing"

	"github.com/kirin-lang/kirin/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripThroughReparse(t *testing.T) {
	sources := []string{
		"1 + 2 * 3\n",
		"(1 + 2) * 3\n",
		"x = 1\n",
		"let x = 5\n",
		"a == b\n",
	}

	for _, src := range sources {
		stmts, err := parser.ParseAST(src, "")
		require.Nil(t, err, src)

		printed := Print(stmts, DefaultOptions())

		reparsed, err := parser.ParseAST(printed+"\n", "")
		require.Nil(t, err, printed)

		assert.Equal(t, len(stmts), len(reparsed), "src=%q printed=%q", src, printed)
	}
}

func TestCompactStyleHasNoSpaces(t *testing.T) {
	stmts, err := parser.ParseAST("1 + 2\n", "")
	require.Nil(t, err)
	printed := Print(stmts, CompactOptions())
	assert.Equal(t, "1+2\n", printed)
}
