package vm

import "github.com/kirin-lang/kirin/instr"

// version identifies the bytecode format this VM understands. There is no
// Cargo-style build-time version string in Go, so these are plain constants.
const (
	versionMajor = 0
	versionMinor = 1
)

// ProgramConstant is an entry in a program's constant pool, referenced by
// LoadConst's 16-bit index operand.
type ProgramConstant interface {
	isProgramConstant()
}

type Int32Constant struct{ Value int32 }
type Int64Constant struct{ Value int64 }
type FloatConstant struct{ Value float64 }
type StringConstant struct{ Value string }

func (Int32Constant) isProgramConstant()  {}
func (Int64Constant) isProgramConstant()  {}
func (FloatConstant) isProgramConstant()  {}
func (StringConstant) isProgramConstant() {}

// ProgramMetadata describes the bytecode format version and the size of the
// program it is attached to.
type ProgramMetadata struct {
	VersionMajor    int
	VersionMinor    int
	InstructionCount int
	ConstantCount   int
}

// Program is a fully assembled Kirin bytecode unit: its instruction stream,
// constant pool, and a metadata header describing both.
type Program struct {
	Metadata     ProgramMetadata
	Instructions []instr.Instruction
	Constants    []ProgramConstant
}

// NewProgram builds a Program and computes its metadata from the given
// instructions and constants.
func NewProgram(instructions []instr.Instruction, constants []ProgramConstant) Program {
	return Program{
		Metadata: ProgramMetadata{
			VersionMajor:     versionMajor,
			VersionMinor:     versionMinor,
			InstructionCount: len(instructions),
			ConstantCount:    len(constants),
		},
		Instructions: instructions,
		Constants:    constants,
	}
}
