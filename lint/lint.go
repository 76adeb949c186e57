// Package lint runs a handful of structural checks over an already-parsed
// Kirin AST. None of these are enforced by the grammar itself (the parser
// has no notion of declared names), so they surface as lint findings rather
// than parse errors.
package lint

import (
	"fmt"

	"github.com/kirin-lang/kirin/ast"
)

// Level is the severity of a single finding.
type Level int

const (
	Error Level = iota
	Warning
	Info
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Issue is a single lint finding.
type Issue struct {
	Level   Level
	Line    int
	Column  int
	Message string
	Code    string
}

func (i *Issue) String() string {
	return fmt.Sprintf("line %d:%d: %s: %s [%s]", i.Line, i.Column, i.Level, i.Message, i.Code)
}

// Options controls which checks run.
type Options struct {
	CheckUseBeforeDeclare bool
	CheckRedeclaration    bool
	CheckAssignUndeclared bool
}

// DefaultOptions enables every check.
func DefaultOptions() *Options {
	return &Options{
		CheckUseBeforeDeclare: true,
		CheckRedeclaration:    true,
		CheckAssignUndeclared: true,
	}
}

// Linter walks a statement list tracking which names have been declared so
// far, flagging uses that run ahead of (or duplicate) a declaration.
type Linter struct {
	options  *Options
	issues   []*Issue
	declared map[string]bool
}

// New builds a Linter. A nil options uses DefaultOptions.
func New(options *Options) *Linter {
	if options == nil {
		options = DefaultOptions()
	}
	return &Linter{options: options, declared: map[string]bool{}}
}

// Lint runs every enabled check over statements and returns the findings in
// statement order.
func Lint(statements []ast.Statement, options *Options) []*Issue {
	l := New(options)
	for _, stmt := range statements {
		l.statement(stmt)
	}
	return l.issues
}

func (l *Linter) report(level Level, span ast.AstSpan, code, message string) {
	l.issues = append(l.issues, &Issue{Level: level, Line: span.Line, Column: span.Column, Message: message, Code: code})
}

func (l *Linter) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		if l.options.CheckRedeclaration && l.declared[s.Name] {
			l.report(Warning, s.Span(), "REDECLARED", fmt.Sprintf("%q is already declared", s.Name))
		}
		if s.Initializer != nil {
			l.expr(s.Initializer)
		}
		l.declared[s.Name] = true
	case *ast.ExpressionStatement:
		l.expr(s.Expr)
	}
}

func (l *Linter) expr(e ast.Expression) {
	switch v := e.(type) {
	case *ast.Variable:
		if l.options.CheckUseBeforeDeclare && !l.declared[v.Name] {
			l.report(Warning, v.Span(), "USE_BEFORE_DECLARE", fmt.Sprintf("%q is used before it is declared", v.Name))
		}
	case *ast.Assign:
		if l.options.CheckAssignUndeclared && !l.declared[v.Name] {
			l.report(Warning, v.Span(), "ASSIGN_UNDECLARED", fmt.Sprintf("%q is assigned before it is declared", v.Name))
		}
		l.expr(v.Value)
	case *ast.Binary:
		l.expr(v.Left)
		l.expr(v.Right)
	case *ast.Unary:
		l.expr(v.Right)
	case *ast.Grouping:
		l.expr(v.Inner)
	case *ast.Call:
		l.expr(v.Callee)
		for _, arg := range v.Arguments {
			l.expr(arg)
		}
	}
}
