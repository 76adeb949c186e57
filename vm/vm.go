// Package vm implements Kirin's register-based bytecode interpreter: a flat
// register file, a call-frame stack, and a fetch/decode/execute loop over a
// packed 32-bit instruction stream.
package vm

import (
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"github.com/kirin-lang/kirin/ast"
	"github.com/kirin-lang/kirin/instr"
	"github.com/kirin-lang/kirin/kerr"
)

// Status is the VM's run state. Running transitions to Halted on a Return
// with no enclosing frame, or to Error on Halt (a sentinel that should never
// actually execute) or an unrecognised opcode.
type Status int

const (
	Halted Status = iota
	Running
	Error
)

func (s Status) String() string {
	switch s {
	case Halted:
		return "Halted"
	case Running:
		return "Running"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// VM is a single-threaded register machine. It owns no goroutines and
// performs no I/O beyond writing to Output.
type VM struct {
	Instructions []instr.Instruction
	Constants    []ProgramConstant
	Registers    []uint64
	Frames       []Frame

	ip             int
	registerOffset int
	Status         Status
	LastError      *kerr.KirinError

	Output io.Writer
}

// NewVM builds an empty VM with no program loaded. Output defaults to
// os.Stdout; callers can override it for testing.
func NewVM() *VM {
	return &VM{Status: Halted, Output: os.Stdout}
}

// LoadProgram appends a program's instructions and constants onto the VM.
// The final instruction of the combined stream must decode to Halt: Halt is
// a sentinel marking the end of loadable code, never meant to execute, and
// its absence means the program was never terminated.
func (v *VM) LoadProgram(p Program) *kerr.KirinError {
	if len(p.Instructions) == 0 {
		return kerr.NewGeneral("program has no instructions")
	}
	last := p.Instructions[len(p.Instructions)-1]
	if instr.DecodeOpcode(last) != instr.Halt {
		return kerr.NewGeneral("program does not end with halt instruction")
	}

	v.Instructions = append(v.Instructions, p.Instructions...)
	v.Constants = append(v.Constants, p.Constants...)
	return nil
}

// IP returns the instruction pointer, for tooling (the debugger) that needs
// to inspect execution position without driving it.
func (v *VM) IP() int {
	return v.ip
}

// Reset restores the VM to its state just after loading, for the debugger's
// "run"/"reset" commands: execution position, register file and frame stack
// are cleared, but Instructions and Constants (the loaded program) are kept.
func (v *VM) Reset() {
	v.ip = 0
	v.registerOffset = 0
	v.Registers = nil
	v.Frames = nil
	v.Status = Halted
	v.LastError = nil
}

// StartWithOffset begins execution at the given instruction offset and runs
// until the VM halts or errors.
func (v *VM) StartWithOffset(offset int) *kerr.KirinError {
	v.ip = offset
	v.Status = Running
	return v.run()
}

// Start begins execution at instruction 0.
func (v *VM) Start() *kerr.KirinError {
	return v.StartWithOffset(0)
}

func (v *VM) run() *kerr.KirinError {
	for {
		switch v.Status {
		case Running:
			if err := v.Step(); err != nil {
				return err
			}
		case Halted:
			return nil
		case Error:
			if v.LastError != nil {
				return v.LastError
			}
			return kerr.NewGeneral("vm halted with an unspecified error")
		}
	}
}

// Step fetches, decodes and executes exactly one instruction. It recovers a
// Go integer division-by-zero panic (the one place the VM turns a host trap
// into an error: a General error whose message starts with "division by
// zero") and surfaces everything else as-is.
func (v *VM) Step() (decodeErr *kerr.KirinError) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(runtime.Error); !ok || e.Error() != "runtime error: integer divide by zero" {
				panic(r)
			}
			v.Status = Error
			v.LastError = kerr.NewGeneral(fmt.Sprintf("division by zero: %v", r))
			decodeErr = nil
		}
	}()

	instruction, err := v.fetch()
	if err != nil {
		return err
	}
	v.execute(instruction)
	return nil
}

func (v *VM) fetch() (instr.Instruction, *kerr.KirinError) {
	if v.ip < 0 || v.ip >= len(v.Instructions) {
		return 0, kerr.NewGeneral("instruction pointer out of range")
	}
	instruction := v.Instructions[v.ip]
	v.ip++
	return instruction, nil
}

func (v *VM) execute(instruction instr.Instruction) {
	switch instr.DecodeOpcode(instruction) {
	case instr.None:
		// no-op
	case instr.LoadConst:
		v.execLoadConst(instruction)
	case instr.LoadInt16:
		v.execLoadInt16(instruction)
	case instr.AddInt:
		v.execIntBinary(instruction, func(a, b int64) int64 { return a + b })
	case instr.SubInt:
		v.execIntBinary(instruction, func(a, b int64) int64 { return a - b })
	case instr.MulInt:
		v.execIntBinary(instruction, func(a, b int64) int64 { return a * b })
	case instr.DivInt:
		v.execIntBinary(instruction, func(a, b int64) int64 { return a / b })
	case instr.ModInt:
		v.execIntBinary(instruction, func(a, b int64) int64 { return a % b })
	case instr.PowInt:
		v.execIntBinary(instruction, intPow)
	case instr.AddFloat:
		v.execFloatBinary(instruction, func(a, b float64) float64 { return a + b })
	case instr.SubFloat:
		v.execFloatBinary(instruction, func(a, b float64) float64 { return a - b })
	case instr.MulFloat:
		v.execFloatBinary(instruction, func(a, b float64) float64 { return a * b })
	case instr.DivFloat:
		v.execFloatBinary(instruction, func(a, b float64) float64 { return a / b })
	case instr.ModFloat:
		v.execFloatBinary(instruction, floatMod)
	case instr.PowFloat:
		v.execFloatBinary(instruction, floatPow)
	case instr.IntToAny:
		v.execCastToAny(instruction, ast.Int)
	case instr.FloatToAny:
		v.execCastToAny(instruction, ast.Float)
	case instr.IntToFloat:
		v.execIntToFloat(instruction)
	case instr.FloatToInt:
		v.execFloatToInt(instruction)
	case instr.InitFrame:
		v.execInitFrame(instruction)
	case instr.DropFrame:
		v.execDropFrame()
	case instr.Return:
		v.execReturn()
	case instr.AllocReg:
		v.execAllocReg(instruction)
	case instr.DeallocReg:
		v.execDeallocReg(instruction)
	case instr.PrintAny:
		v.execPrintAny(instruction)
	case instr.PrintChar:
		v.execPrintChar(instruction)
	case instr.Halt:
		v.Status = Error
		v.LastError = kerr.NewGeneral("halt instruction encountered")
	default:
		v.Status = Error
		v.LastError = kerr.NewGeneral("unknown instruction encountered")
	}
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func floatMod(a, b float64) float64 {
	return math.Mod(a, b)
}

func floatPow(base, exp float64) float64 {
	return math.Pow(base, exp)
}
