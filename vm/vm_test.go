package vm

import (
	"bytes"
	"testing"

	"github.com/kirin-lang/kirin/instr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, instructions []instr.Instruction) string {
	t.Helper()
	var out bytes.Buffer
	v := NewVM()
	v.Output = &out

	require.Nil(t, v.LoadProgram(NewProgram(instructions, nil)))
	err := v.Start()
	require.Nil(t, err)
	return out.String()
}

func TestLoadAddCastPrintHalt(t *testing.T) {
	program := []instr.Instruction{
		instr.AllocateRegisters(3),
		instr.LoadInt16Instruction(0, 100),
		instr.LoadInt16Instruction(1, -2420),
		instr.BinaryOperation(instr.AddInt, 2, 0, 1),
		instr.Cast(instr.IntToAny, 0, 2),
		instr.PrintAnyInstruction(0),
		instr.PrintCharInstruction('\n'),
		instr.DeallocateRegisters(3),
		instr.Simple(instr.Return),
		instr.Simple(instr.Halt),
	}
	out := runProgram(t, program)
	assert.Equal(t, "-2320\n", out)
}

func TestPrintChar(t *testing.T) {
	program := []instr.Instruction{
		instr.PrintCharInstruction('A'),
		instr.Simple(instr.Return),
		instr.Simple(instr.Halt),
	}
	out := runProgram(t, program)
	assert.Equal(t, "A", out)
}

func TestLoadProgramRejectsMissingHalt(t *testing.T) {
	v := NewVM()
	err := v.LoadProgram(NewProgram([]instr.Instruction{instr.Simple(instr.None)}, nil))
	require.NotNil(t, err)
}

func TestLoadProgramRejectsEmpty(t *testing.T) {
	v := NewVM()
	err := v.LoadProgram(NewProgram(nil, nil))
	require.NotNil(t, err)
}

func TestReturnWithNoFrameHalts(t *testing.T) {
	program := []instr.Instruction{
		instr.Simple(instr.Return),
		instr.Simple(instr.Halt),
	}
	v := NewVM()
	var out bytes.Buffer
	v.Output = &out
	require.Nil(t, v.LoadProgram(NewProgram(program, nil)))
	require.Nil(t, v.Start())
	assert.Equal(t, Halted, v.Status)
}

func TestDivisionByZeroBecomesRuntimeError(t *testing.T) {
	program := []instr.Instruction{
		instr.AllocateRegisters(2),
		instr.LoadInt16Instruction(0, 10),
		instr.LoadInt16Instruction(1, 0),
		instr.BinaryOperation(instr.DivInt, 0, 0, 1),
		instr.Simple(instr.Halt),
	}
	v := NewVM()
	require.Nil(t, v.LoadProgram(NewProgram(program, nil)))
	err := v.Start()
	require.NotNil(t, err)
}

func TestFloatArithmeticRoundTripsThroughBits(t *testing.T) {
	v := NewVM()
	v.execAllocReg(instr.AllocateRegisters(3))
	v.setFloatRegister(0, 2.5)
	v.setFloatRegister(1, 4.0)
	v.execFloatBinary(instr.BinaryOperation(instr.AddFloat, 2, 0, 1), func(a, b float64) float64 { return a + b })
	assert.Equal(t, 6.5, v.getFloatRegister(2))
}
