package ast

// Statement is the closed sum of statement node kinds.
type Statement interface {
	Span() AstSpan
}

// None is the empty statement. The parser never builds one: a blank line
// before an expression is skipped inside primary, so it never reaches the
// statement layer.
type None struct {
	span AstSpan
}

func NewNone(span AstSpan) *None { return &None{span: span} }

func (n *None) Span() AstSpan { return n.span }

type ExpressionStatement struct {
	Expr Expression
	span AstSpan
}

func NewExpressionStatement(expr Expression, span AstSpan) *ExpressionStatement {
	return &ExpressionStatement{Expr: expr, span: span}
}

func (e *ExpressionStatement) Span() AstSpan { return e.span }

// VariableDeclaration is built both for full "let name = expr" statements
// and the walrus short form "name := expr"; Initializer is nil only for a
// bare "let name" with no initializer.
type VariableDeclaration struct {
	Name        string
	Initializer Expression
	span        AstSpan
}

func NewVariableDeclaration(name string, initializer Expression, span AstSpan) *VariableDeclaration {
	return &VariableDeclaration{Name: name, Initializer: initializer, span: span}
}

func (v *VariableDeclaration) Span() AstSpan { return v.span }
