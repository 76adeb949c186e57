package instr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeEncodingDecoding(t *testing.T) {
	ops := []Opcode{
		None, LoadConst, LoadInt16, AddInt, AddFloat, SubInt, SubFloat, MulInt,
		MulFloat, DivInt, DivFloat, ModInt, ModFloat, PowInt, PowFloat, IntToAny,
		FloatToAny, IntToFloat, FloatToInt, InitFrame, DropFrame, Return,
		AllocReg, DeallocReg, PrintAny, PrintChar, Halt,
	}
	for _, op := range ops {
		i := NewBuilder().SetOpcode(op).Build()
		assert.Equal(t, op, DecodeOpcode(i))
	}
}

func TestDestinationEncodingDecoding(t *testing.T) {
	for v := 0; v < 256; v++ {
		i := NewBuilder().SetDestination(uint8(v)).Build()
		assert.Equal(t, uint8(v), DecodeDestination(i))
	}
}

func TestSource1EncodingDecoding(t *testing.T) {
	for v := 0; v < 256; v++ {
		i := NewBuilder().SetSource1(uint8(v)).Build()
		assert.Equal(t, uint8(v), DecodeSource1(i))
	}
}

func TestSource2EncodingDecoding(t *testing.T) {
	for v := 0; v < 256; v++ {
		i := NewBuilder().SetSource2(uint8(v)).Build()
		assert.Equal(t, uint8(v), DecodeSource2(i))
	}
}

func Test16BitValueEncodingDecoding(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		i := NewBuilder().Set16BitValue(uint16(v)).Build()
		assert.Equal(t, uint16(v), Decode16BitValue(i))
	}
}

func Test16BitIntEncodingDecoding(t *testing.T) {
	for v := -32768; v <= 32767; v++ {
		i := NewBuilder().Set16BitInt(int16(v)).Build()
		assert.Equal(t, int16(v), Decode16BitInt(i))
	}
}

func TestFieldsDoNotClobberEachOther(t *testing.T) {
	i := NewBuilder().
		SetOpcode(AddInt).
		SetDestination(7).
		SetSource1(3).
		SetSource2(9).
		Build()

	assert.Equal(t, AddInt, DecodeOpcode(i))
	assert.Equal(t, uint8(7), DecodeDestination(i))
	assert.Equal(t, uint8(3), DecodeSource1(i))
	assert.Equal(t, uint8(9), DecodeSource2(i))
}

func TestBinaryOperationBuilder(t *testing.T) {
	i := BinaryOperation(AddInt, 1, 2, 3)
	assert.Equal(t, AddInt, DecodeOpcode(i))
	assert.Equal(t, uint8(1), DecodeDestination(i))
	assert.Equal(t, uint8(2), DecodeSource1(i))
	assert.Equal(t, uint8(3), DecodeSource2(i))
}

func TestLoadInt16Builder(t *testing.T) {
	i := LoadInt16Instruction(4, -17)
	assert.Equal(t, LoadInt16, DecodeOpcode(i))
	assert.Equal(t, uint8(4), DecodeDestination(i))
	assert.Equal(t, int16(-17), Decode16BitInt(i))
}

func TestAllocateDeallocateRegisters(t *testing.T) {
	i := AllocateRegisters(12)
	assert.Equal(t, AllocReg, DecodeOpcode(i))
	assert.Equal(t, uint16(12), Decode16BitValue(i))

	i = DeallocateRegisters(12)
	assert.Equal(t, DeallocReg, DecodeOpcode(i))
	assert.Equal(t, uint16(12), Decode16BitValue(i))
}

func TestSimpleInstruction(t *testing.T) {
	i := Simple(Halt)
	assert.Equal(t, Halt, DecodeOpcode(i))
}
