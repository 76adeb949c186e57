package instr

// Builder assembles an Instruction field by field. Every setter returns an
// updated copy rather than mutating in place, mirroring the teacher
// encoder's "each setter returns a new value" style.
type Builder struct {
	value uint32
}

// NewBuilder starts from an all-zero instruction word.
func NewBuilder() Builder {
	return Builder{}
}

func (b Builder) SetOpcode(op Opcode) Builder {
	b.value = (b.value &^ (byteMask << opcodeShift)) | (uint32(op) << opcodeShift)
	return b
}

func (b Builder) SetDestination(reg uint8) Builder {
	b.value = (b.value &^ (byteMask << destinationShift)) | (uint32(reg) << destinationShift)
	return b
}

func (b Builder) SetSource1(reg uint8) Builder {
	b.value = (b.value &^ (byteMask << source1Shift)) | (uint32(reg) << source1Shift)
	return b
}

func (b Builder) SetSource2(reg uint8) Builder {
	b.value = (b.value &^ (byteMask << source2Shift)) | (uint32(reg) << source2Shift)
	return b
}

// Set16BitValue packs value into bits 15-0, overwriting whatever
// source1/source2 held.
func (b Builder) Set16BitValue(value uint16) Builder {
	b.value = (b.value &^ sixteenMask) | uint32(value)
	return b
}

func (b Builder) Set16BitInt(value int16) Builder {
	return b.Set16BitValue(uint16(value))
}

func (b Builder) Build() Instruction {
	return Instruction(b.value)
}

// Simple builds a bare opcode-only instruction (Halt, Return, DropFrame,
// None).
func Simple(op Opcode) Instruction {
	return NewBuilder().SetOpcode(op).Build()
}

// LoadInt16Instruction builds a LoadInt16 instruction: destination register
// plus a sign-extended 16-bit immediate.
func LoadInt16Instruction(dest uint8, value int16) Instruction {
	return NewBuilder().SetOpcode(LoadInt16).SetDestination(dest).Set16BitInt(value).Build()
}

// LoadConstInstruction builds a LoadConst instruction: destination register
// plus a 16-bit index into the program's constant pool.
func LoadConstInstruction(dest uint8, constIndex uint16) Instruction {
	return NewBuilder().SetOpcode(LoadConst).SetDestination(dest).Set16BitValue(constIndex).Build()
}

// BinaryOperation builds any of the Add/Sub/Mul/Div/Mod/Pow{Int,Float}
// opcodes: destination plus two source registers.
func BinaryOperation(op Opcode, dest, src1, src2 uint8) Instruction {
	return NewBuilder().SetOpcode(op).SetDestination(dest).SetSource1(src1).SetSource2(src2).Build()
}

// Cast builds a cast opcode (IntToAny, FloatToAny, IntToFloat, FloatToInt):
// destination plus one source register.
func Cast(op Opcode, dest, source uint8) Instruction {
	return NewBuilder().SetOpcode(op).SetDestination(dest).SetSource1(source).Build()
}

// PrintAnyInstruction builds a PrintAny instruction: a single source
// register holding the Any's tag/payload pair.
func PrintAnyInstruction(source uint8) Instruction {
	return NewBuilder().SetOpcode(PrintAny).SetSource1(source).Build()
}

// PrintCharInstruction builds a PrintChar instruction: the character value
// packed directly into source1.
func PrintCharInstruction(value uint8) Instruction {
	return NewBuilder().SetOpcode(PrintChar).SetSource1(value).Build()
}

// AllocateRegisters builds an AllocReg instruction: a 16-bit count of new
// zero-initialised register slots.
func AllocateRegisters(count uint16) Instruction {
	return NewBuilder().SetOpcode(AllocReg).Set16BitValue(count).Build()
}

// DeallocateRegisters builds a DeallocReg instruction: a 16-bit count of
// register slots to drop.
func DeallocateRegisters(count uint16) Instruction {
	return NewBuilder().SetOpcode(DeallocReg).Set16BitValue(count).Build()
}
