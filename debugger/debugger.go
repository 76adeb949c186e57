package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kirin-lang/kirin/config"
	"github.com/kirin-lang/kirin/instr"
	"github.com/kirin-lang/kirin/vm"
)

// Debugger holds all state for an interactive debugging session over a VM.
type Debugger struct {
	VM *vm.VM

	Breakpoints *BreakpointManager
	Watchpoints *WatchpointManager
	History     *CommandHistory
	Evaluator   *ExpressionEvaluator

	Running       bool
	StepMode      StepMode
	StepOverDepth int // frame-stack depth to return to for "next"

	// LastCommand lets an empty line repeat the previous command, matching
	// the usual step/next convention.
	LastCommand string

	Output strings.Builder
}

// StepMode represents different stepping modes.
type StepMode int

const (
	StepNone   StepMode = iota // Not stepping
	StepSingle                 // Step one instruction
	StepOver                   // Step over a called frame
	StepOut                    // Step out of the current frame
)

// NewDebugger creates a new debugger instance wrapping machine. Its command
// history size comes from the persisted config (falling back to defaults
// when no config file exists), the same way cmd/kirin loads config for
// -max-cycles.
func NewDebugger(machine *vm.VM) *Debugger {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	return &Debugger{
		VM:          machine,
		Breakpoints: NewBreakpointManager(),
		Watchpoints: NewWatchpointManager(),
		History:     NewCommandHistory(cfg.Debugger.HistorySize),
		Evaluator:   NewExpressionEvaluator(),
		StepMode:    StepNone,
	}
}

// ResolveAddress parses a decimal or hex instruction index.
func (d *Debugger) ResolveAddress(addrStr string) (int, error) {
	addrStr = strings.TrimSpace(addrStr)
	if strings.HasPrefix(addrStr, "0x") || strings.HasPrefix(addrStr, "0X") {
		val, err := strconv.ParseInt(addrStr[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid instruction index: %s", addrStr)
		}
		return int(val), nil
	}

	val, err := strconv.Atoi(addrStr)
	if err != nil {
		return 0, fmt.Errorf("invalid instruction index: %s", addrStr)
	}
	return val, nil
}

// ExecuteCommand processes and executes a single debugger command line.
func (d *Debugger) ExecuteCommand(cmdLine string) error {
	cmdLine = strings.TrimSpace(cmdLine)

	if cmdLine == "" {
		cmdLine = d.LastCommand
	}

	if cmdLine != "" {
		d.History.Add(cmdLine)
		d.LastCommand = cmdLine
	}

	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	return d.handleCommand(cmd, args)
}

// handleCommand dispatches commands to their handlers.
func (d *Debugger) handleCommand(cmd string, args []string) error {
	switch cmd {
	// Execution control
	case "run", "r":
		return d.cmdRun(args)
	case "continue", "c":
		return d.cmdContinue(args)
	case "step", "s", "si":
		return d.cmdStep(args)
	case "next", "n":
		return d.cmdNext(args)
	case "finish", "fin":
		return d.cmdFinish(args)

	// Breakpoints
	case "break", "b":
		return d.cmdBreak(args)
	case "tbreak", "tb":
		return d.cmdTBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)
	case "enable":
		return d.cmdEnable(args)
	case "disable":
		return d.cmdDisable(args)

	// Watchpoints
	case "watch", "w":
		return d.cmdWatch(args)

	// Inspection
	case "print", "p":
		return d.cmdPrint(args)
	case "info", "i":
		return d.cmdInfo(args)
	case "backtrace", "bt", "where":
		return d.cmdBacktrace(args)
	case "list", "l":
		return d.cmdList(args)

	// Program control
	case "load":
		return d.cmdLoad(args)
	case "reset":
		return d.cmdReset(args)

	// Help
	case "help", "h", "?":
		return d.cmdHelp(args)

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

// ShouldBreak checks whether execution should pause before the instruction
// currently at the VM's instruction pointer runs.
func (d *Debugger) ShouldBreak() (bool, string) {
	ip := d.VM.IP()

	switch d.StepMode {
	case StepSingle:
		d.StepMode = StepNone
		return true, "single step"

	case StepOver, StepOut:
		if len(d.VM.Frames) <= d.StepOverDepth {
			d.StepMode = StepNone
			return true, "step complete"
		}
	}

	if bp := d.Breakpoints.GetBreakpoint(ip); bp != nil {
		if !bp.Enabled {
			return false, ""
		}

		if bp.Condition != "" {
			result, err := d.Evaluator.Evaluate(bp.Condition, d.VM)
			if err != nil {
				return true, fmt.Sprintf("breakpoint %d (condition error: %v)", bp.ID, err)
			}
			if !result {
				return false, ""
			}
		}

		bp.HitCount++
		if bp.Temporary {
			_ = d.Breakpoints.DeleteBreakpoint(bp.ID)
		}

		return true, fmt.Sprintf("breakpoint %d", bp.ID)
	}

	if wp, changed := d.Watchpoints.CheckWatchpoints(d.VM); wp != nil && changed {
		return true, fmt.Sprintf("watchpoint %d: %s", wp.ID, wp.Expression)
	}

	return false, ""
}

// GetOutput returns and clears the output buffer.
func (d *Debugger) GetOutput() string {
	output := d.Output.String()
	d.Output.Reset()
	return output
}

// Printf writes formatted output to the output buffer.
func (d *Debugger) Printf(format string, args ...interface{}) {
	d.Output.WriteString(fmt.Sprintf(format, args...))
}

// Println writes a line to the output buffer.
func (d *Debugger) Println(args ...interface{}) {
	d.Output.WriteString(fmt.Sprintln(args...))
}

// SetStepOver configures the debugger to run through a called frame without
// stopping inside it. If the current instruction is InitFrame, stepping
// continues until the frame stack returns to its current depth; otherwise
// this behaves like a single step.
func (d *Debugger) SetStepOver() {
	ip := d.VM.IP()
	if ip >= 0 && ip < len(d.VM.Instructions) && instr.DecodeOpcode(d.VM.Instructions[ip]) == instr.InitFrame {
		d.StepOverDepth = len(d.VM.Frames)
		d.StepMode = StepOver
		d.Running = true
		return
	}

	d.StepMode = StepSingle
	d.Running = true
}

// SetStepOut configures the debugger to run until the current frame returns.
func (d *Debugger) SetStepOut() {
	d.StepOverDepth = len(d.VM.Frames) - 1
	if d.StepOverDepth < 0 {
		d.StepOverDepth = 0
	}
	d.StepMode = StepOut
	d.Running = true
}
