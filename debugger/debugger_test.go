package debugger

import (
	"testing"

	"github.com/kirin-lang/kirin/instr"
	"github.com/kirin-lang/kirin/vm"
)

func TestNewDebugger(t *testing.T) {
	machine := vm.NewVM()
	dbg := NewDebugger(machine)

	if dbg.VM != machine {
		t.Error("NewDebugger did not store the VM")
	}
	if dbg.StepMode != StepNone {
		t.Errorf("StepMode = %v, want StepNone", dbg.StepMode)
	}
	if dbg.Breakpoints == nil || dbg.Watchpoints == nil || dbg.History == nil || dbg.Evaluator == nil {
		t.Error("NewDebugger left a manager nil")
	}
}

func TestResolveAddress(t *testing.T) {
	dbg := NewDebugger(vm.NewVM())

	tests := []struct {
		input string
		want  int
	}{
		{"10", 10},
		{"0x10", 16},
		{"0X1A", 26},
	}

	for _, tt := range tests {
		got, err := dbg.ResolveAddress(tt.input)
		if err != nil {
			t.Fatalf("ResolveAddress(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ResolveAddress(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}

	if _, err := dbg.ResolveAddress("not-a-number"); err == nil {
		t.Error("expected error for invalid instruction index")
	}
}

func TestExecuteCommand_RepeatsLastOnEmpty(t *testing.T) {
	dbg := NewDebugger(vm.NewVM())

	if err := dbg.ExecuteCommand("help"); err != nil {
		t.Fatalf("ExecuteCommand(help) error = %v", err)
	}
	dbg.Output.Reset()

	if err := dbg.ExecuteCommand(""); err != nil {
		t.Fatalf("ExecuteCommand(\"\") error = %v", err)
	}
	if dbg.GetOutput() == "" {
		t.Error("empty command should repeat the last command's output")
	}
}

func TestExecuteCommand_Unknown(t *testing.T) {
	dbg := NewDebugger(vm.NewVM())

	if err := dbg.ExecuteCommand("frobnicate"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestShouldBreak_SingleStep(t *testing.T) {
	dbg := NewDebugger(vm.NewVM())
	dbg.StepMode = StepSingle

	should, reason := dbg.ShouldBreak()
	if !should {
		t.Fatal("expected ShouldBreak to return true for single step")
	}
	if reason != "single step" {
		t.Errorf("reason = %q, want %q", reason, "single step")
	}
	if dbg.StepMode != StepNone {
		t.Error("StepMode should reset to StepNone after a single step break")
	}
}

func TestShouldBreak_Breakpoint(t *testing.T) {
	machine := vm.NewVM()
	machine.Instructions = []instr.Instruction{0, 0, 0}
	dbg := NewDebugger(machine)

	dbg.Breakpoints.AddBreakpoint(0, false, "")

	should, reason := dbg.ShouldBreak()
	if !should {
		t.Fatal("expected ShouldBreak to stop at the breakpoint")
	}
	if reason == "" {
		t.Error("expected a non-empty break reason")
	}
}

func TestShouldBreak_ConditionalBreakpoint(t *testing.T) {
	machine := vm.NewVM()
	machine.Instructions = []instr.Instruction{0}
	machine.Registers = make([]uint64, 1)
	machine.Registers[0] = 0
	dbg := NewDebugger(machine)

	dbg.Breakpoints.AddBreakpoint(0, false, "reg0 == 42")

	if should, _ := dbg.ShouldBreak(); should {
		t.Error("breakpoint condition is false, should not break")
	}

	machine.Registers[0] = 42
	if should, _ := dbg.ShouldBreak(); !should {
		t.Error("breakpoint condition is now true, should break")
	}
}

func TestSetStepOver_NonCallInstruction(t *testing.T) {
	machine := vm.NewVM()
	machine.Instructions = []instr.Instruction{0}
	dbg := NewDebugger(machine)

	dbg.SetStepOver()

	if dbg.StepMode != StepSingle {
		t.Errorf("StepMode = %v, want StepSingle for a non-InitFrame instruction", dbg.StepMode)
	}
	if !dbg.Running {
		t.Error("SetStepOver should mark the debugger as running")
	}
}

func TestSetStepOver_InitFrame(t *testing.T) {
	machine := vm.NewVM()
	instruction := instr.Instruction(uint32(instr.InitFrame) << 24)
	machine.Instructions = []instr.Instruction{instruction}
	dbg := NewDebugger(machine)

	dbg.SetStepOver()

	if dbg.StepMode != StepOver {
		t.Errorf("StepMode = %v, want StepOver for an InitFrame instruction", dbg.StepMode)
	}
	if dbg.StepOverDepth != 0 {
		t.Errorf("StepOverDepth = %d, want 0 before entering the frame", dbg.StepOverDepth)
	}
}
