// Package format pretty-prints a Kirin AST back to source text. It exists so
// the round-trip property (format, then re-parse, then compare) has
// something to drive: the original crate this toolchain is based on never
// needed a formatter of its own.
package format

import (
	"fmt"
	"strings"

	"github.com/kirin-lang/kirin/ast"
)

// Style selects how much whitespace the printer adds around operators and
// arguments.
type Style int

const (
	Default  Style = iota // one space around binary operators, none inside parens
	Compact              // no space around operators
	Expanded             // same spacing as Default; adds no extra space
)

// Options controls printer behavior.
type Options struct {
	Style      Style
	IndentSize int
}

// DefaultOptions returns the printer's default style.
func DefaultOptions() *Options {
	return &Options{Style: Default, IndentSize: 2}
}

// CompactOptions returns minimal-whitespace formatting.
func CompactOptions() *Options {
	return &Options{Style: Compact, IndentSize: 0}
}

// Printer renders statements and expressions back to Kirin source text.
type Printer struct {
	options *Options
	out     strings.Builder
}

// New builds a Printer. A nil options uses DefaultOptions.
func New(options *Options) *Printer {
	if options == nil {
		options = DefaultOptions()
	}
	return &Printer{options: options}
}

// Print renders a full statement list, one statement per line.
func Print(statements []ast.Statement, options *Options) string {
	p := New(options)
	for _, stmt := range statements {
		p.statement(stmt)
		p.out.WriteString("\n")
	}
	return p.out.String()
}

func (p *Printer) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.None:
		// blank line, nothing to print
	case *ast.ExpressionStatement:
		p.expr(s.Expr)
	case *ast.VariableDeclaration:
		p.out.WriteString("let ")
		p.out.WriteString(s.Name)
		if s.Initializer != nil {
			p.out.WriteString(" = ")
			p.expr(s.Initializer)
		}
	default:
		p.out.WriteString(fmt.Sprintf("<unknown statement %T>", stmt))
	}
}

func (p *Printer) binaryOperatorText(op ast.BinaryOp) string {
	switch op {
	case ast.Add:
		return "+"
	case ast.Subtract:
		return "-"
	case ast.Multiply:
		return "*"
	case ast.Divide:
		return "/"
	case ast.Modulus:
		return "%"
	case ast.Power:
		return "^"
	case ast.Or:
		return "or"
	case ast.And:
		return "and"
	case ast.Equal:
		return "=="
	case ast.NotEqual:
		return "!="
	case ast.Greater:
		return ">"
	case ast.GreaterEqual:
		return ">="
	case ast.Less:
		return "<"
	case ast.LessEqual:
		return "<="
	default:
		return "?"
	}
}

func (p *Printer) space() string {
	if p.options.Style == Compact {
		return ""
	}
	return " "
}

func (p *Printer) expr(e ast.Expression) {
	switch v := e.(type) {
	case *ast.Binary:
		p.expr(v.Left)
		p.out.WriteString(p.space())
		p.out.WriteString(p.binaryOperatorText(v.Operator))
		p.out.WriteString(p.space())
		p.expr(v.Right)
	case *ast.Unary:
		p.out.WriteString("-")
		p.expr(v.Right)
	case *ast.Literal:
		p.literal(v.Value)
	case *ast.Grouping:
		p.out.WriteString("(")
		p.expr(v.Inner)
		p.out.WriteString(")")
	case *ast.Variable:
		p.out.WriteString(v.Name)
	case *ast.Assign:
		p.out.WriteString(v.Name)
		p.out.WriteString(p.space())
		p.out.WriteString("=")
		p.out.WriteString(p.space())
		p.expr(v.Value)
	case *ast.Call:
		p.expr(v.Callee)
		p.out.WriteString("(")
		for i, arg := range v.Arguments {
			if i > 0 {
				p.out.WriteString(",")
				p.out.WriteString(p.space())
			}
			p.expr(arg)
		}
		p.out.WriteString(")")
	default:
		p.out.WriteString(fmt.Sprintf("<unknown expression %T>", e))
	}
}

func (p *Printer) literal(v ast.ParsedValue) {
	switch lv := v.(type) {
	case ast.NullValue:
		p.out.WriteString("none")
	case ast.BoolValue:
		if lv.Value {
			p.out.WriteString("true")
		} else {
			p.out.WriteString("false")
		}
	case ast.IntValue:
		p.out.WriteString(fmt.Sprintf("%d", lv.Value))
	case ast.FloatValue:
		p.out.WriteString(fmt.Sprintf("%v", lv.Value))
	case ast.StringValue:
		p.out.WriteString(fmt.Sprintf("%q", lv.Value))
	default:
		p.out.WriteString(fmt.Sprintf("<unknown value %T>", v))
	}
}
