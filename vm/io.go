package vm

import (
	"fmt"
	"math"

	"github.com/kirin-lang/kirin/ast"
	"github.com/kirin-lang/kirin/instr"
)

// execPrintAny reads an Any pair (tag at source, payload at source+1) and
// writes its textual form. A tag that doesn't decode to a known KirinType,
// or one the VM doesn't know how to render, prints a raw fallback instead of
// erroring — printing is a diagnostic aid, not something a malformed tag
// should be able to crash.
func (v *VM) execPrintAny(instruction instr.Instruction) {
	source := instr.DecodeSource1(instruction)
	tagValue := v.getRegister(source)
	payload := v.getRegister(source + 1)

	tag, ok := ast.FromU8(uint8(tagValue))
	if !ok {
		fmt.Fprintf(v.Output, "Unsupported type: %x %x", tagValue, payload)
		return
	}

	switch tag {
	case ast.Int:
		fmt.Fprintf(v.Output, "%d", int64(payload))
	case ast.Float:
		fmt.Fprintf(v.Output, "%v", math.Float64frombits(payload))
	default:
		fmt.Fprintf(v.Output, "Unsupported type: %x", payload)
	}
}

func (v *VM) execPrintChar(instruction instr.Instruction) {
	value := instr.DecodeSource1(instruction)
	fmt.Fprintf(v.Output, "%c", rune(value))
}
