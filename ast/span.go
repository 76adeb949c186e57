package ast

import "github.com/kirin-lang/kirin/lexer"

// AstSpan locates a node in source text. Unlike lexer.Span it drops the raw
// byte offsets: once parsing is done, only line/column/filename matter for
// diagnostics.
type AstSpan struct {
	Line     int
	Column   int
	Filename string
}

// SpanFromToken derives a node span from the token that drives it (the
// operator for a binary expression, the closing paren for a call/grouping,
// the identifier for a variable reference).
func SpanFromToken(tok lexer.Token, filename string) AstSpan {
	return AstSpan{Line: tok.Span.Line, Column: tok.Span.Column, Filename: filename}
}
