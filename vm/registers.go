package vm

import (
	"math"

	"github.com/kirin-lang/kirin/instr"
)

// getRegister and setRegister are the only two places an instruction handler
// applies registerOffset; every handler goes through them so a frame's
// registers are addressed relative to its own base, not the global index.
// The tooling accessors below (GetRegister, SetRegister, RegisterCount)
// apply the same offset themselves.

func (v *VM) getRegister(index uint8) uint64 {
	return v.Registers[int(index)+v.registerOffset]
}

func (v *VM) setRegister(index uint8, value uint64) {
	v.Registers[int(index)+v.registerOffset] = value
}

func (v *VM) getIntRegister(index uint8) int64 {
	return int64(v.getRegister(index))
}

func (v *VM) setIntRegister(index uint8, value int64) {
	v.setRegister(index, uint64(value))
}

func (v *VM) getFloatRegister(index uint8) float64 {
	return math.Float64frombits(v.getRegister(index))
}

func (v *VM) setFloatRegister(index uint8, value float64) {
	v.setRegister(index, math.Float64bits(value))
}

func (v *VM) moveRegister(dest, source uint8) {
	v.setRegister(dest, v.getRegister(source))
}

// GetRegister reads a register relative to the active frame's register
// base, for tooling (the debugger) that needs to inspect state without
// going through an instruction. ok is false if the index is out of range.
func (v *VM) GetRegister(index int) (value uint64, ok bool) {
	i := index + v.registerOffset
	if i < 0 || i >= len(v.Registers) {
		return 0, false
	}
	return v.Registers[i], true
}

// RegisterCount returns how many registers are addressable relative to the
// active frame's register base.
func (v *VM) RegisterCount() int {
	n := len(v.Registers) - v.registerOffset
	if n < 0 {
		return 0
	}
	return n
}

// SetRegister writes a register relative to the active frame's register
// base, for tooling (the debugger's "set" command). ok is false if the
// index is out of range.
func (v *VM) SetRegister(index int, value uint64) (ok bool) {
	i := index + v.registerOffset
	if i < 0 || i >= len(v.Registers) {
		return false
	}
	v.Registers[i] = value
	return true
}

// execAllocReg extends the global register vector by count zero-initialised
// slots. The count is not validated against registerOffset: it simply grows
// the backing store, matching the VM's no-bounds-checking contract.
func (v *VM) execAllocReg(instruction instr.Instruction) {
	count := instr.Decode16BitValue(instruction)
	v.Registers = append(v.Registers, make([]uint64, count)...)
}

func (v *VM) execDeallocReg(instruction instr.Instruction) {
	count := int(instr.Decode16BitValue(instruction))
	n := len(v.Registers) - count
	if n < 0 {
		n = 0
	}
	v.Registers = v.Registers[:n]
}
