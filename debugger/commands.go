package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kirin-lang/kirin/instr"
	"github.com/kirin-lang/kirin/vm"
)

// Command handler implementations.

// cmdRun starts or restarts program execution.
func (d *Debugger) cmdRun(args []string) error {
	d.VM.Reset()
	d.VM.Status = vm.Running
	d.Running = true
	d.StepMode = StepNone

	d.Println("Starting program execution...")
	return nil
}

// cmdContinue continues execution from the current point.
func (d *Debugger) cmdContinue(args []string) error {
	if d.VM.Status == vm.Halted {
		return fmt.Errorf("program is not running")
	}

	d.VM.Status = vm.Running
	d.Running = true
	d.StepMode = StepNone

	d.Println("Continuing...")
	return nil
}

// cmdStep executes a single instruction.
func (d *Debugger) cmdStep(args []string) error {
	d.StepMode = StepSingle
	d.Running = true
	return nil
}

// cmdNext steps over a called frame (step to the next instruction at the
// same frame depth).
func (d *Debugger) cmdNext(args []string) error {
	d.SetStepOver()
	return nil
}

// cmdFinish steps out of the current frame.
func (d *Debugger) cmdFinish(args []string) error {
	d.SetStepOut()
	return nil
}

// cmdBreak sets a breakpoint.
func (d *Debugger) cmdBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: break <instruction> [if <condition>]")
	}

	address, err := d.ResolveAddress(args[0])
	if err != nil {
		return err
	}

	var condition string
	if len(args) > 1 && strings.ToLower(args[1]) == "if" {
		condition = strings.Join(args[2:], " ")
	}

	bp := d.Breakpoints.AddBreakpoint(address, false, condition)

	if condition != "" {
		d.Printf("Breakpoint %d at instruction %d (condition: %s)\n", bp.ID, address, condition)
	} else {
		d.Printf("Breakpoint %d at instruction %d\n", bp.ID, address)
	}

	return nil
}

// cmdTBreak sets a temporary breakpoint (auto-deleted after it hits).
func (d *Debugger) cmdTBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tbreak <instruction>")
	}

	address, err := d.ResolveAddress(args[0])
	if err != nil {
		return err
	}

	bp := d.Breakpoints.AddBreakpoint(address, true, "")
	d.Printf("Temporary breakpoint %d at instruction %d\n", bp.ID, address)

	return nil
}

// cmdDelete deletes breakpoint(s).
func (d *Debugger) cmdDelete(args []string) error {
	if len(args) == 0 {
		d.Breakpoints.Clear()
		d.Println("All breakpoints deleted")
		return nil
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID: %s", args[0])
	}

	if err := d.Breakpoints.DeleteBreakpoint(id); err != nil {
		return err
	}

	d.Printf("Breakpoint %d deleted\n", id)
	return nil
}

// cmdEnable enables a breakpoint.
func (d *Debugger) cmdEnable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: enable <breakpoint-id>")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID: %s", args[0])
	}

	if err := d.Breakpoints.EnableBreakpoint(id); err != nil {
		return err
	}

	d.Printf("Breakpoint %d enabled\n", id)
	return nil
}

// cmdDisable disables a breakpoint.
func (d *Debugger) cmdDisable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: disable <breakpoint-id>")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID: %s", args[0])
	}

	if err := d.Breakpoints.DisableBreakpoint(id); err != nil {
		return err
	}

	d.Printf("Breakpoint %d disabled\n", id)
	return nil
}

// cmdWatch sets a watchpoint on a register.
func (d *Debugger) cmdWatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: watch <regN>")
	}

	expression := strings.Join(args, " ")
	register, err := parseWatchRegister(expression)
	if err != nil {
		return err
	}

	wp := d.Watchpoints.AddWatchpoint(expression, register)

	if err := d.Watchpoints.InitializeWatchpoint(wp.ID, d.VM); err != nil {
		d.Watchpoints.DeleteWatchpoint(wp.ID)
		return err
	}

	d.Printf("Watchpoint %d: %s\n", wp.ID, expression)
	return nil
}

// parseWatchRegister parses a "regN" expression into a register index.
func parseWatchRegister(expr string) (int, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	var regNum int
	if _, err := fmt.Sscanf(expr, "reg%d", &regNum); err != nil || regNum < 0 {
		return 0, fmt.Errorf("invalid watch expression: %s (expected regN)", expr)
	}
	return regNum, nil
}

// cmdPrint evaluates and prints an expression.
func (d *Debugger) cmdPrint(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: print <expression>")
	}

	expression := strings.Join(args, " ")
	result, err := d.Evaluator.EvaluateExpression(expression, d.VM)
	if err != nil {
		return err
	}

	d.Printf("$%d = 0x%016X (%d)\n", d.Evaluator.GetValueNumber(), result, result)
	return nil
}

// cmdInfo displays information about program state.
func (d *Debugger) cmdInfo(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: info <registers|breakpoints|watchpoints|frames>")
	}

	switch strings.ToLower(args[0]) {
	case "registers", "reg", "r":
		return d.showRegisters()
	case "breakpoints", "break", "b":
		return d.showBreakpoints()
	case "watchpoints", "watch", "w":
		return d.showWatchpoints()
	case "frames", "frame", "f":
		return d.showFrames()
	default:
		return fmt.Errorf("unknown info command: %s", args[0])
	}
}

// showRegisters displays every addressable register in the current frame.
func (d *Debugger) showRegisters() error {
	d.Println("Registers:")
	count := d.VM.RegisterCount()
	for i := 0; i < count; i++ {
		value, ok := d.VM.GetRegister(i)
		if !ok {
			break
		}
		d.Printf("  reg%-3d = 0x%016X (%d)\n", i, value, int64(value))
	}
	d.Printf("  ip     = %d\n", d.VM.IP())
	d.Printf("  status = %s\n", d.VM.Status)

	return nil
}

// showBreakpoints displays all breakpoints.
func (d *Debugger) showBreakpoints() error {
	breakpoints := d.Breakpoints.GetAllBreakpoints()
	if len(breakpoints) == 0 {
		d.Println("No breakpoints")
		return nil
	}

	d.Println("Breakpoints:")
	for _, bp := range breakpoints {
		status := "enabled"
		if !bp.Enabled {
			status = "disabled"
		}

		temp := ""
		if bp.Temporary {
			temp = " (temporary)"
		}

		condition := ""
		if bp.Condition != "" {
			condition = fmt.Sprintf(" if %s", bp.Condition)
		}

		d.Printf("  %d: instruction %d %s%s%s (hit %d times)\n",
			bp.ID, bp.Address, status, temp, condition, bp.HitCount)
	}

	return nil
}

// showWatchpoints displays all watchpoints.
func (d *Debugger) showWatchpoints() error {
	watchpoints := d.Watchpoints.GetAllWatchpoints()
	if len(watchpoints) == 0 {
		d.Println("No watchpoints")
		return nil
	}

	d.Println("Watchpoints:")
	for _, wp := range watchpoints {
		status := "enabled"
		if !wp.Enabled {
			status = "disabled"
		}

		d.Printf("  %d: %s %s (hit %d times, last value: 0x%016X)\n",
			wp.ID, wp.Expression, status, wp.HitCount, wp.LastValue)
	}

	return nil
}

// showFrames displays the call-frame stack, most recent first.
func (d *Debugger) showFrames() error {
	frames := d.VM.Frames
	if len(frames) == 0 {
		d.Println("No active frames")
		return nil
	}

	d.Println("Frames:")
	depth := len(frames)
	for i := depth - 1; i >= 0 && depth-i <= FrameStackDisplayDepth; i-- {
		f := frames[i]
		d.Printf("  #%d  return=%d registerBase=%d\n", depth-1-i, f.ReturnAddress, f.RegisterBase)
	}
	if depth > FrameStackDisplayDepth {
		d.Printf("  ... %d more frame(s)\n", depth-FrameStackDisplayDepth)
	}

	return nil
}

// cmdBacktrace shows the call stack.
func (d *Debugger) cmdBacktrace(args []string) error {
	return d.showFrames()
}

// cmdList shows instructions around the current instruction pointer.
func (d *Debugger) cmdList(args []string) error {
	ip := d.VM.IP()
	start := ip - CodeContextLinesBefore
	if start < 0 {
		start = 0
	}
	end := ip + CodeContextLinesAfter
	if end > len(d.VM.Instructions) {
		end = len(d.VM.Instructions)
	}

	for i := start; i < end; i++ {
		marker := "  "
		if i == ip {
			marker = "=>"
		}
		d.Printf("%s %4d: %s\n", marker, i, disassemble(d.VM.Instructions[i]))
	}

	return nil
}

// disassemble renders a single instruction as opcode + operand fields. There
// is no symbol table to resolve operands against, so registers and
// immediates are printed as raw numbers.
func disassemble(instruction instr.Instruction) string {
	op := instr.DecodeOpcode(instruction)
	switch op {
	case instr.None, instr.Halt, instr.DropFrame, instr.Return:
		return op.String()
	case instr.LoadConst, instr.LoadInt16, instr.InitFrame, instr.AllocReg, instr.DeallocReg:
		return fmt.Sprintf("%s dst=reg%d imm=%d", op, instr.DecodeDestination(instruction), instr.Decode16BitValue(instruction))
	default:
		return fmt.Sprintf("%s dst=reg%d src1=reg%d src2=reg%d",
			op, instr.DecodeDestination(instruction), instr.DecodeSource1(instruction), instr.DecodeSource2(instruction))
	}
}

// cmdSet modifies a register's value.
func (d *Debugger) cmdSet(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: set <regN> = <value>")
	}

	if args[1] != "=" {
		return fmt.Errorf("usage: set <regN> = <value>")
	}

	target := strings.ToLower(args[0])
	valueStr := args[2]

	value, err := d.Evaluator.EvaluateExpression(valueStr, d.VM)
	if err != nil {
		return err
	}

	register := -1
	if _, err := fmt.Sscanf(target, "reg%d", &register); err != nil || register < 0 {
		return fmt.Errorf("invalid register: %s", target)
	}

	if ok := d.VM.SetRegister(register, value); !ok {
		return fmt.Errorf("register %s is out of range", target)
	}

	d.Printf("Register %s set to 0x%016X\n", target, value)
	return nil
}

// cmdLoad loads a program (placeholder; program loading happens before the
// debugger starts, via the cmd/kirin driver).
func (d *Debugger) cmdLoad(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: load <filename>")
	}

	d.Printf("Load command not yet implemented for file: %s\n", args[0])
	return nil
}

// cmdReset resets the VM.
func (d *Debugger) cmdReset(args []string) error {
	d.VM.Reset()
	d.Println("VM reset")
	return nil
}

// cmdHelp displays help information.
func (d *Debugger) cmdHelp(args []string) error {
	if len(args) > 0 {
		return d.showCommandHelp(args[0])
	}

	d.Println("Kirin Debugger Commands:")
	d.Println()
	d.Println("Execution Control:")
	d.Println("  run (r)           - Start program execution")
	d.Println("  continue (c)      - Continue execution")
	d.Println("  step (s, si)      - Execute single instruction")
	d.Println("  next (n)          - Step over a called frame")
	d.Println("  finish (fin)      - Step out of the current frame")
	d.Println()
	d.Println("Breakpoints:")
	d.Println("  break (b) <ip>    - Set breakpoint")
	d.Println("  tbreak (tb) <ip>  - Set temporary breakpoint")
	d.Println("  delete (d) [id]   - Delete breakpoint(s)")
	d.Println("  enable <id>       - Enable breakpoint")
	d.Println("  disable <id>      - Disable breakpoint")
	d.Println()
	d.Println("Watchpoints:")
	d.Println("  watch (w) <regN>  - Watch a register for changes")
	d.Println()
	d.Println("Inspection:")
	d.Println("  print (p) <expr>  - Evaluate expression")
	d.Println("  info (i) <what>   - Show information")
	d.Println("  backtrace (bt)    - Show frame stack")
	d.Println("  list (l)          - List instructions around the instruction pointer")
	d.Println()
	d.Println("Modification:")
	d.Println("  set <regN> = <val>- Modify a register")
	d.Println()
	d.Println("Control:")
	d.Println("  reset             - Reset VM")
	d.Println("  help (h, ?)       - Show this help")
	d.Println()
	d.Println("Type 'help <command>' for detailed help on a specific command.")

	return nil
}

// showCommandHelp shows detailed help for a specific command.
func (d *Debugger) showCommandHelp(cmd string) error {
	helpText := map[string]string{
		"break": "break <instruction> [if <condition>]\n  Set a breakpoint at the given instruction index.\n  Optional condition is evaluated each time the breakpoint is reached.",
		"step":  "step\n  Execute a single instruction.",
		"next":  "next\n  Step over a called frame (run until the frame stack returns to its current depth).",
		"print": "print <expression>\n  Evaluate and print an expression.\n  Expressions can include registers (regN), value history ($N), and arithmetic.",
		"watch": "watch <regN>\n  Break when the given register's value changes.",
		"info":  "info <registers|breakpoints|watchpoints|frames>\n  Display information about program state.",
	}

	if help, exists := helpText[cmd]; exists {
		d.Println(help)
		return nil
	}

	return fmt.Errorf("no help available for command: %s", cmd)
}
