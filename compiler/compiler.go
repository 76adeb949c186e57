// Package compiler turns an already-parsed AST into bytecode. Per this
// stage's stated contract, only binary arithmetic expressions are compiled;
// everything else reports a Compile error rather than panicking.
package compiler

import (
	"fmt"

	"github.com/kirin-lang/kirin/ast"
	"github.com/kirin-lang/kirin/instr"
	"github.com/kirin-lang/kirin/kerr"
	"github.com/kirin-lang/kirin/vm"
)

// Compiler walks statements, emitting instructions and allocating fresh
// registers as it goes. It never reuses a register once assigned: there is
// no liveness analysis at this stage.
type Compiler struct {
	instructions []instr.Instruction
	constants    []vm.ProgramConstant
	nextRegister uint8
}

// New builds an empty Compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile compiles every statement in order and returns the assembled
// program. The register count the statements end up needing is only known
// after compiling them, so the leading AllocReg and trailing Halt are
// stitched on afterward rather than emitted inline.
func Compile(statements []ast.Statement) (vm.Program, *kerr.KirinError) {
	c := New()
	for _, stmt := range statements {
		if err := c.execute(stmt); err != nil {
			return vm.Program{}, err
		}
	}

	body := c.instructions
	if c.nextRegister == 0 {
		return vm.NewProgram(append(body, instr.Simple(instr.Return), instr.Simple(instr.Halt)), c.constants), nil
	}

	full := make([]instr.Instruction, 0, len(body)+3)
	full = append(full, instr.AllocateRegisters(uint16(c.nextRegister)))
	full = append(full, body...)
	full = append(full, instr.Simple(instr.Return))
	full = append(full, instr.Simple(instr.Halt))
	return vm.NewProgram(full, c.constants), nil
}

func (c *Compiler) emit(instruction instr.Instruction) {
	c.instructions = append(c.instructions, instruction)
}

func (c *Compiler) allocateRegister() uint8 {
	reg := c.nextRegister
	c.nextRegister++
	return reg
}

func (c *Compiler) execute(stmt ast.Statement) *kerr.KirinError {
	switch s := stmt.(type) {
	case *ast.None:
		return nil
	case *ast.ExpressionStatement:
		_, err := c.evaluate(s.Expr)
		return err
	case *ast.VariableDeclaration:
		span := s.Span()
		return kerr.NewSpanned(kerr.Compile, span.Line, span.Column,
			"variable declarations are not yet implemented in the compiler")
	default:
		return kerr.NewGeneral(fmt.Sprintf("unknown statement kind %T", stmt))
	}
}

// evaluate compiles expr into a sequence of instructions that leaves its
// result in the returned register.
func (c *Compiler) evaluate(expr ast.Expression) (uint8, *kerr.KirinError) {
	switch e := expr.(type) {
	case *ast.Binary:
		return c.evaluateBinary(e)
	case *ast.Literal:
		return c.evaluateLiteral(e)
	case *ast.Grouping:
		return c.evaluate(e.Inner)
	default:
		span := expr.Span()
		return 0, kerr.NewSpanned(kerr.Compile, span.Line, span.Column,
			fmt.Sprintf("compiling %T is not yet implemented", expr))
	}
}

var intOpcodes = map[ast.BinaryOp]instr.Opcode{
	ast.Add:      instr.AddInt,
	ast.Subtract: instr.SubInt,
	ast.Multiply: instr.MulInt,
	ast.Divide:   instr.DivInt,
}

// evaluateBinary compiles a binary arithmetic expression: evaluate the left
// operand into a fresh register, evaluate the right operand into another
// fresh register, emit the matching opcode with destination = left
// register. Only Add/Subtract/Multiply/Divide over integers are supported;
// every other operator is a Compile error.
func (c *Compiler) evaluateBinary(b *ast.Binary) (uint8, *kerr.KirinError) {
	opcode, ok := intOpcodes[b.Operator]
	if !ok {
		span := b.Span()
		return 0, kerr.NewSpanned(kerr.Compile, span.Line, span.Column,
			fmt.Sprintf("binary operator %v not implemented", b.Operator))
	}

	leftReg, err := c.evaluate(b.Left)
	if err != nil {
		return 0, err
	}
	rightReg, err := c.evaluate(b.Right)
	if err != nil {
		return 0, err
	}

	c.emit(instr.BinaryOperation(opcode, leftReg, leftReg, rightReg))
	return leftReg, nil
}

func (c *Compiler) evaluateLiteral(l *ast.Literal) (uint8, *kerr.KirinError) {
	reg := c.allocateRegister()
	switch v := l.Value.(type) {
	case ast.IntValue:
		if v.Value < -32768 || v.Value > 32767 {
			span := l.Span()
			return 0, kerr.NewSpanned(kerr.Compile, span.Line, span.Column,
				"integer literal out of range for direct load")
		}
		c.emit(instr.LoadInt16Instruction(reg, int16(v.Value)))
		return reg, nil
	default:
		span := l.Span()
		return 0, kerr.NewSpanned(kerr.Compile, span.Line, span.Column,
			fmt.Sprintf("literal kind %T is not yet implemented", l.Value))
	}
}
