package vm

import (
	"github.com/kirin-lang/kirin/ast"
	"github.com/kirin-lang/kirin/instr"
)

// execCastToAny turns a typed register into an Any: the tag ordinal goes
// into the destination register, and the payload is copied from source into
// destination+1.
func (v *VM) execCastToAny(instruction instr.Instruction, tag ast.KirinType) {
	dest := instr.DecodeDestination(instruction)
	source := instr.DecodeSource1(instruction)

	v.setRegister(dest, uint64(tag))
	v.moveRegister(dest+1, source)
}

// execIntToFloat reinterprets the source register as an int64, converts it
// to float64, and writes the bit pattern back into the same register.
func (v *VM) execIntToFloat(instruction instr.Instruction) {
	dest := instr.DecodeDestination(instruction)
	source := instr.DecodeSource1(instruction)

	value := float64(v.getIntRegister(source))
	v.setFloatRegister(dest, value)
}

// execFloatToInt is the symmetric conversion: float64 register reinterpreted
// and truncated to int64.
func (v *VM) execFloatToInt(instruction instr.Instruction) {
	dest := instr.DecodeDestination(instruction)
	source := instr.DecodeSource1(instruction)

	value := int64(v.getFloatRegister(source))
	v.setIntRegister(dest, value)
}
