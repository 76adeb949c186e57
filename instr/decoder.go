package instr

func DecodeOpcode(i Instruction) Opcode {
	return Opcode(uint32(i) >> opcodeShift & byteMask)
}

func DecodeDestination(i Instruction) uint8 {
	return uint8(uint32(i) >> destinationShift & byteMask)
}

func DecodeSource1(i Instruction) uint8 {
	return uint8(uint32(i) >> source1Shift & byteMask)
}

func DecodeSource2(i Instruction) uint8 {
	return uint8(uint32(i) >> source2Shift & byteMask)
}

func Decode16BitValue(i Instruction) uint16 {
	return uint16(uint32(i) & sixteenMask)
}

// Decode16BitInt sign-extends the 16-bit immediate field to an int16 before
// any wider use (e.g. widening to int64 for LoadInt16).
func Decode16BitInt(i Instruction) int16 {
	return int16(Decode16BitValue(i))
}
