package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kirin-lang/kirin/ast"
)

// RefKind is how a cross-reference entry touches a name.
type RefKind int

const (
	RefDeclaration RefKind = iota // a var declares the name
	RefRead                       // the name is read
	RefWrite                      // the name is assigned
	RefCall                       // the name is called
)

func (r RefKind) String() string {
	switch r {
	case RefDeclaration:
		return "declaration"
	case RefRead:
		return "read"
	case RefWrite:
		return "write"
	case RefCall:
		return "call"
	default:
		return "unknown"
	}
}

// Reference is a single occurrence of a name in source.
type Reference struct {
	Kind   RefKind
	Line   int
	Column int
}

// Symbol collects every reference to one declared name: where it was
// declared, and everywhere it was subsequently read, written or called.
type Symbol struct {
	Name        string
	Declaration *Reference
	References  []*Reference
}

// Xref walks a statement list and builds a cross-reference table keyed by
// variable name, the Kirin analogue of an assembler's symbol
// cross-reference: there are no branch targets or labels here, only
// variable declarations and their uses.
func Xref(statements []ast.Statement) map[string]*Symbol {
	x := &xrefWalker{symbols: make(map[string]*Symbol)}
	for _, stmt := range statements {
		x.statement(stmt)
	}
	return x.symbols
}

type xrefWalker struct {
	symbols map[string]*Symbol
}

func (x *xrefWalker) symbolFor(name string) *Symbol {
	sym, ok := x.symbols[name]
	if !ok {
		sym = &Symbol{Name: name}
		x.symbols[name] = sym
	}
	return sym
}

func (x *xrefWalker) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		sym := x.symbolFor(s.Name)
		span := s.Span()
		sym.Declaration = &Reference{Kind: RefDeclaration, Line: span.Line, Column: span.Column}
		if s.Initializer != nil {
			x.expr(s.Initializer)
		}
	case *ast.ExpressionStatement:
		x.expr(s.Expr)
	}
}

func (x *xrefWalker) expr(e ast.Expression) {
	switch v := e.(type) {
	case *ast.Variable:
		sym := x.symbolFor(v.Name)
		span := v.Span()
		sym.References = append(sym.References, &Reference{Kind: RefRead, Line: span.Line, Column: span.Column})
	case *ast.Assign:
		sym := x.symbolFor(v.Name)
		span := v.Span()
		sym.References = append(sym.References, &Reference{Kind: RefWrite, Line: span.Line, Column: span.Column})
		x.expr(v.Value)
	case *ast.Binary:
		x.expr(v.Left)
		x.expr(v.Right)
	case *ast.Unary:
		x.expr(v.Right)
	case *ast.Grouping:
		x.expr(v.Inner)
	case *ast.Call:
		if callee, ok := v.Callee.(*ast.Variable); ok {
			sym := x.symbolFor(callee.Name)
			span := callee.Span()
			sym.References = append(sym.References, &Reference{Kind: RefCall, Line: span.Line, Column: span.Column})
		} else {
			x.expr(v.Callee)
		}
		for _, arg := range v.Arguments {
			x.expr(arg)
		}
	}
}

// FormatXref renders a cross-reference table sorted by name, names that
// were never declared (referenced-but-undeclared) sorted to the end.
func FormatXref(symbols map[string]*Symbol) string {
	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := symbols[names[i]], symbols[names[j]]
		if (si.Declaration == nil) != (sj.Declaration == nil) {
			return si.Declaration != nil
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	for _, name := range names {
		sym := symbols[name]
		if sym.Declaration != nil {
			fmt.Fprintf(&sb, "%s (declared line %d:%d)\n", name, sym.Declaration.Line, sym.Declaration.Column)
		} else {
			fmt.Fprintf(&sb, "%s (never declared)\n", name)
		}
		for _, ref := range sym.References {
			fmt.Fprintf(&sb, "  %s at line %d:%d\n", ref.Kind, ref.Line, ref.Column)
		}
	}
	return sb.String()
}
