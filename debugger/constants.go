package debugger

// TUI Display Update Constants
const (
	// DisplayUpdateFrequency controls how often the TUI display updates during
	// continuous execution (every N steps, to keep display responsive without
	// overwhelming the terminal)
	DisplayUpdateFrequency = 100
)

// Instruction View Context Constants
const (
	// CodeContextLinesBefore is the default number of instructions to show
	// before the instruction pointer in the full disassembly view
	CodeContextLinesBefore = 20

	// CodeContextLinesAfter is the default number of instructions to show
	// after the instruction pointer in the full disassembly view
	CodeContextLinesAfter = 80

	// CodeContextLinesBeforeCompact is the number of instructions to show
	// before the instruction pointer in compact views
	CodeContextLinesBeforeCompact = 5

	// CodeContextLinesAfterCompact is the number of instructions to show
	// after the instruction pointer in compact views
	CodeContextLinesAfterCompact = 10
)

// Register Display Constants
const (
	// RegisterViewRows is the fixed height of the register view panel
	// (register rows + blank line + status line + borders)
	RegisterViewRows = 9

	// RegisterGroupSize is the number of registers displayed per row
	RegisterGroupSize = 5
)

// Frame Display Constants
const (
	// FrameStackDisplayDepth is the maximum number of call frames shown in
	// the frame stack panel
	FrameStackDisplayDepth = 16
)
