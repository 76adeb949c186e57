// Package instr implements Kirin's bytecode instruction codec: a single
// 32-bit word packing an opcode and up to three 8-bit register operands, or
// an opcode plus one 16-bit immediate.
package instr

// Instruction is a single packed bytecode word:
//
//	bits 31-24: opcode
//	bits 23-16: destination register
//	bits 15-8:  source2 register
//	bits 7-0:   source1 register
//
// The 16-bit immediate form (LoadInt16 and friends) reuses bits 15-0 as one
// field, overlapping source1/source2 — the two encodings are never read
// through the wrong accessor because each opcode's handler knows which shape
// it packed.
type Instruction uint32

const (
	opcodeShift      = 24
	destinationShift = 16
	source2Shift     = 8
	source1Shift     = 0

	byteMask    = 0xFF
	sixteenMask = 0xFFFF
)
