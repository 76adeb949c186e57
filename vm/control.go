package vm

import "github.com/kirin-lang/kirin/instr"

// execInitFrame pushes a new call frame, recording the current instruction
// pointer as where a matching Return resumes and the current register
// offset as what DropFrame/Return restore. It then switches the active
// register window to the 16-bit register base the instruction carries.
func (v *VM) execInitFrame(instruction instr.Instruction) {
	newBase := instr.Decode16BitValue(instruction)
	v.Frames = append(v.Frames, Frame{
		ReturnAddress: v.ip,
		HasReturn:     true,
		RegisterBase:  v.registerOffset,
	})
	v.registerOffset = int(newBase)
}

// execDropFrame pops the innermost frame and restores its caller's register
// window, without touching the instruction pointer.
func (v *VM) execDropFrame() {
	if len(v.Frames) == 0 {
		return
	}
	frame := v.popFrame()
	v.registerOffset = frame.RegisterBase
}

// execReturn pops the innermost frame and resumes at its recorded return
// address. With no frame left to pop, there is nothing to return to: the
// machine halts, which is how a top-level Return terminates a program.
func (v *VM) execReturn() {
	if len(v.Frames) == 0 {
		v.Status = Halted
		return
	}

	frame := v.popFrame()
	v.registerOffset = frame.RegisterBase
	if frame.HasReturn {
		v.ip = frame.ReturnAddress
	} else {
		v.Status = Halted
	}
}

func (v *VM) popFrame() Frame {
	frame := v.Frames[len(v.Frames)-1]
	v.Frames = v.Frames[:len(v.Frames)-1]
	return frame
}
