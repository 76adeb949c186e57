package compiler

import (
	"bytes"
	"testing"

	"github.com/kirin-lang/kirin/parser"
	"github.com/kirin-lang/kirin/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndRunArithmetic(t *testing.T) {
	stmts, perr := parser.ParseAST("1 + 2 * 3\n", "")
	require.Nil(t, perr)

	program, cerr := Compile(stmts)
	require.Nil(t, cerr)

	machine := vm.NewVM()
	var out bytes.Buffer
	machine.Output = &out

	require.Nil(t, machine.LoadProgram(program))
	require.Nil(t, machine.Start())
	assert.Equal(t, vm.Halted, machine.Status)
}

func TestCompileRejectsUnsupportedNode(t *testing.T) {
	stmts, perr := parser.ParseAST("x = 1\n", "")
	require.Nil(t, perr)

	_, cerr := Compile(stmts)
	require.NotNil(t, cerr)
}

func TestCompileRejectsComparison(t *testing.T) {
	stmts, perr := parser.ParseAST("1 == 2\n", "")
	require.Nil(t, perr)

	_, cerr := Compile(stmts)
	require.NotNil(t, cerr)
}
