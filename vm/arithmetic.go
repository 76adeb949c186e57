package vm

import "github.com/kirin-lang/kirin/instr"

func (v *VM) execIntBinary(instruction instr.Instruction, op func(a, b int64) int64) {
	dest := instr.DecodeDestination(instruction)
	src1 := instr.DecodeSource1(instruction)
	src2 := instr.DecodeSource2(instruction)

	result := op(v.getIntRegister(src1), v.getIntRegister(src2))
	v.setIntRegister(dest, result)
}

func (v *VM) execFloatBinary(instruction instr.Instruction, op func(a, b float64) float64) {
	dest := instr.DecodeDestination(instruction)
	src1 := instr.DecodeSource1(instruction)
	src2 := instr.DecodeSource2(instruction)

	result := op(v.getFloatRegister(src1), v.getFloatRegister(src2))
	v.setFloatRegister(dest, result)
}

func (v *VM) execLoadInt16(instruction instr.Instruction) {
	dest := instr.DecodeDestination(instruction)
	value := instr.Decode16BitInt(instruction)
	v.setIntRegister(dest, int64(value))
}

func (v *VM) execLoadConst(instruction instr.Instruction) {
	dest := instr.DecodeDestination(instruction)
	index := instr.Decode16BitValue(instruction)
	if int(index) >= len(v.Constants) {
		v.Status = Error
		v.LastError = generalf("constant index %d out of range", index)
		return
	}

	switch c := v.Constants[index].(type) {
	case Int32Constant:
		v.setIntRegister(dest, int64(c.Value))
	case Int64Constant:
		v.setIntRegister(dest, c.Value)
	case FloatConstant:
		v.setFloatRegister(dest, c.Value)
	default:
		v.Status = Error
		v.LastError = generalf("constant at index %d cannot be loaded directly into a register", index)
	}
}
