// Command kirin is the front-end binary for the Kirin toolchain: it wires
// the lexer, parser, compiler and VM together, and offers debugger, formatter
// and linter modes over the same pipeline.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kirin-lang/kirin/compiler"
	"github.com/kirin-lang/kirin/config"
	"github.com/kirin-lang/kirin/debugger"
	"github.com/kirin-lang/kirin/format"
	"github.com/kirin-lang/kirin/instr"
	"github.com/kirin-lang/kirin/lint"
	"github.com/kirin-lang/kirin/parser"
	"github.com/kirin-lang/kirin/vm"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		debugMode   = flag.Bool("debug", false, "Start in debugger mode")
		tuiMode     = flag.Bool("tui", false, "Use TUI (Text User Interface) debugger")
		fmtMode     = flag.Bool("fmt", false, "Format the source file and print it to stdout")
		lintMode    = flag.Bool("lint", false, "Run the linter over the source file and print findings")
		xrefMode    = flag.Bool("xref", false, "Print a variable cross-reference table and exit")
		dumpProgram = flag.Bool("dump-program", false, "Disassemble the compiled program and exit")
		maxCycles   = flag.Uint64("max-cycles", cfg.Execution.MaxCycles, "Maximum instructions to execute before halting")
		verboseMode = flag.Bool("verbose", false, "Verbose output")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("Kirin %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	if *verboseMode && cfgErr != nil {
		fmt.Printf("No config file found at %s, using defaults\n", config.GetConfigPath())
	}

	sourceFile := flag.Arg(0)
	sourceBytes, err := os.ReadFile(sourceFile) // #nosec G304 -- user-specified source path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", sourceFile, err)
		os.Exit(1)
	}
	source := string(sourceBytes)

	if *verboseMode {
		fmt.Printf("Parsing %s\n", sourceFile)
	}

	statements, parseErr := parser.ParseAST(source, sourceFile)
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", parseErr)
		os.Exit(1)
	}

	if *fmtMode {
		fmt.Print(format.Print(statements, format.DefaultOptions()))
		os.Exit(0)
	}

	if *lintMode {
		issues := lint.Lint(statements, lint.DefaultOptions())
		for _, issue := range issues {
			fmt.Println(issue)
		}
		if len(issues) > 0 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *xrefMode {
		fmt.Print(lint.FormatXref(lint.Xref(statements)))
		os.Exit(0)
	}

	if *verboseMode {
		fmt.Printf("Parsed %d statements\n", len(statements))
	}

	program, compileErr := compiler.Compile(statements)
	if compileErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", compileErr)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Printf("Compiled %d instructions, %d constants\n",
			program.Metadata.InstructionCount, program.Metadata.ConstantCount)
	}

	if *dumpProgram {
		dumpProgramListing(program)
		os.Exit(0)
	}

	machine := vm.NewVM()
	if loadErr := machine.LoadProgram(program); loadErr != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", loadErr)
		os.Exit(1)
	}

	if *debugMode || *tuiMode {
		dbg := debugger.NewDebugger(machine)

		if *tuiMode {
			if err := debugger.RunTUI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Println("Kirin Debugger - Type 'help' for commands")
			fmt.Printf("Program loaded: %s\n", sourceFile)
			fmt.Println()

			if err := debugger.RunCLI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "Debugger error: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	// Direct execution mode.
	if *verboseMode {
		fmt.Println("Starting execution...")
	}

	machine.Status = vm.Running
	var cycles uint64
	for machine.Status == vm.Running {
		if *maxCycles > 0 && cycles >= *maxCycles {
			fmt.Fprintf(os.Stderr, "Error: exceeded max cycles (%d)\n", *maxCycles)
			os.Exit(1)
		}
		if err := machine.Step(); err != nil {
			fmt.Fprintf(os.Stderr, "Runtime error at ip=%d: %v\n", machine.IP(), err)
			os.Exit(1)
		}
		cycles++
	}

	if machine.Status == vm.Error {
		fmt.Fprintf(os.Stderr, "Runtime error at ip=%d: %v\n", machine.IP(), machine.LastError)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Printf("Execution complete: %d instructions executed, status=%s\n", cycles, machine.Status)
	}
}

// dumpProgramListing prints the compiled constant pool and a disassembly of
// every instruction, the Kirin analogue of a symbol table dump: there are no
// named symbols once a program is compiled, only constants and addresses.
func dumpProgramListing(p vm.Program) {
	fmt.Printf("Bytecode version %d.%d, %d instructions, %d constants\n\n",
		p.Metadata.VersionMajor, p.Metadata.VersionMinor,
		p.Metadata.InstructionCount, p.Metadata.ConstantCount)

	fmt.Println("Constants")
	fmt.Println("=========")
	if len(p.Constants) == 0 {
		fmt.Println("(none)")
	}
	for i, c := range p.Constants {
		switch v := c.(type) {
		case vm.Int32Constant:
			fmt.Printf("%4d: int32   %d\n", i, v.Value)
		case vm.Int64Constant:
			fmt.Printf("%4d: int64   %d\n", i, v.Value)
		case vm.FloatConstant:
			fmt.Printf("%4d: float   %g\n", i, v.Value)
		case vm.StringConstant:
			fmt.Printf("%4d: string  %q\n", i, v.Value)
		default:
			fmt.Printf("%4d: unknown\n", i)
		}
	}

	fmt.Println()
	fmt.Println("Instructions")
	fmt.Println("============")
	for i, inst := range p.Instructions {
		fmt.Printf("%4d: %s\n", i, disassembleInstruction(inst))
	}
}

// disassembleInstruction renders a single instruction as readable text. This
// mirrors the debugger package's own disassemble helper but stays local to
// the CLI rather than exporting debugger internals for a one-off listing.
func disassembleInstruction(i instr.Instruction) string {
	op := instr.DecodeOpcode(i)
	switch op {
	case instr.None, instr.Halt, instr.DropFrame, instr.Return:
		return op.String()
	case instr.LoadConst, instr.LoadInt16, instr.InitFrame, instr.AllocReg, instr.DeallocReg:
		return fmt.Sprintf("%s dst=reg%d imm=%d", op, instr.DecodeDestination(i), instr.Decode16BitValue(i))
	default:
		return fmt.Sprintf("%s dst=reg%d src1=reg%d src2=reg%d", op,
			instr.DecodeDestination(i), instr.DecodeSource1(i), instr.DecodeSource2(i))
	}
}

func printHelp() {
	fmt.Printf(`Kirin %s

Usage: kirin [options] <source-file>

Options:
  -help              Show this help message
  -version           Show version information
  -debug             Start in debugger mode (CLI)
  -tui               Start in TUI debugger mode
  -fmt               Format the source file and print it to stdout
  -lint              Run the linter and print findings
  -xref              Print a variable cross-reference table and exit
  -dump-program      Disassemble the compiled program and exit
  -max-cycles N      Set maximum instructions executed before halting (default: 1000000)
  -verbose           Enable verbose output

Examples:
  # Run a program directly
  kirin examples/hello.kirin

  # Run with the CLI debugger
  kirin -debug examples/fibonacci.kirin

  # Run with the TUI debugger
  kirin -tui examples/fibonacci.kirin

  # Format a program
  kirin -fmt program.kirin

  # Lint a program
  kirin -lint program.kirin

  # Inspect the compiled instruction stream
  kirin -dump-program program.kirin

Debugger Commands (when in -debug mode):
  run, r             Start/restart program execution
  continue, c        Continue execution
  step, s            Execute single instruction
  next, n            Step over a call frame
  break ADDR         Set breakpoint at an instruction index
  info registers     Show all registers
  print EXPR         Evaluate and print expression
  help               Show debugger help
`, Version)
}
