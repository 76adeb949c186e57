package lexer

import "fmt"

// TokenType is a closed enumeration of every lexical token Kirin source can
// produce.
type TokenType int

const (
	// Structural
	Eof TokenType = iota
	NewLine

	// Literals
	Number
	String
	Identifier
	True
	False
	None

	// Punctuation
	Plus
	Minus
	Star
	Slash
	Percent
	Caret
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Colon
	ColonEqual
	Dot
	Comma
	Equal

	// Comparison
	EqualEqual
	NotEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Logical
	And
	Or
	Not

	// Keywords
	Fn
	Class
	Let
	Block
	Delete
	If
	Else
	For
	While
	End
	Return
	Include
)

var tokenNames = map[TokenType]string{
	Eof:          "EOF",
	NewLine:      "NEWLINE",
	Number:       "NUMBER",
	String:       "STRING",
	Identifier:   "IDENTIFIER",
	True:         "TRUE",
	False:        "FALSE",
	None:         "NONE",
	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Percent:      "%",
	Caret:        "^",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	LeftBracket:  "[",
	RightBracket: "]",
	Colon:        ":",
	ColonEqual:   ":=",
	Dot:          ".",
	Comma:        ",",
	Equal:        "=",
	EqualEqual:   "==",
	NotEqual:     "!=",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	And:          "and",
	Or:           "or",
	Not:          "!",
	Fn:           "fn",
	Class:        "class",
	Let:          "let",
	Block:        "block",
	Delete:       "delete",
	If:           "if",
	Else:         "else",
	For:          "for",
	While:        "while",
	End:          "end",
	Return:       "return",
	Include:      "include",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Span is a 1-indexed line/column, 0-indexed byte-offset source location.
type Span struct {
	Line   int
	Column int
	Start  int
	End    int
}

// Token is a single lexical unit: its type, the raw lexeme backing it (empty
// for keyword and punctuation tokens), and the span it occupies.
type Token struct {
	Type   TokenType
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Lexeme, t.Span.Line, t.Span.Column)
}
