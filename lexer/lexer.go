package lexer

import (
	"strconv"

	"github.com/kirin-lang/kirin/kerr"
)

func quoteChar(c byte) string {
	return strconv.QuoteRune(rune(c))
}

// Lexer turns Kirin source text into a flat token stream. It owns a single
// cursor over the source and is not reusable once Scan has returned.
type Lexer struct {
	source  string
	start   int
	current int
	line    int
	column  int
}

// New creates a lexer positioned at the start of source.
func New(source string) *Lexer {
	return &Lexer{source: source, line: 1, column: 0}
}

// Scan tokenizes the entire source, stopping at the first lexical error. On
// success the returned slice always ends [..., NewLine, Eof] (unless the
// last real token already was a NewLine, in which case only Eof follows).
func Scan(source string) ([]Token, *kerr.KirinError) {
	l := New(source)
	var tokens []Token

	for !l.isAtEnd() {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) == 0 || tokens[len(tokens)-1].Type != NewLine {
		tokens = append(tokens, Token{Type: NewLine, Span: l.span()})
	}
	tokens = append(tokens, Token{Type: Eof, Span: l.span()})

	return tokens, nil
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	c := l.source[l.current]
	l.current++
	l.column++
	return c
}

func (l *Lexer) span() Span {
	return Span{Line: l.line, Column: l.column, Start: l.start, End: l.current}
}

func (l *Lexer) errorf(message string) *kerr.KirinError {
	return kerr.NewSpanned(kerr.Scan, l.line, l.column, message)
}

// skipWhitespace consumes spaces, carriage returns, comments and newlines,
// coalescing any run of them into at most one NewLine token. A comment
// silently absorbs its trailing newline: it never contributes its own
// NewLine, matching the rule that comment-only lines don't introduce extra
// statement breaks.
func (l *Lexer) skipWhitespace() (Token, bool) {
	consumed := false

loop:
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\r':
			l.advance()
		case '\n':
			consumed = true
			l.line++
			l.column = 0
			l.advance()
		case '#':
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
			l.line++
			l.advance()
		default:
			break loop
		}
	}

	if consumed {
		l.column = 0
		return Token{Type: NewLine, Span: l.span()}, true
	}
	return Token{}, false
}

func simple(t TokenType, span Span) Token {
	return Token{Type: t, Span: span}
}

func (l *Lexer) scanToken() (Token, *kerr.KirinError) {
	if tok, ok := l.skipWhitespace(); ok {
		return tok, nil
	}

	// skipWhitespace can run the cursor to EOF without ever seeing a '\n'
	// (trailing spaces, or a final comment with no trailing newline): treat
	// that the same as an explicit newline rather than falling through to
	// advance(), which would return the zero byte and look like a stray
	// unrecognised character.
	if l.isAtEnd() {
		return Token{Type: NewLine, Span: l.span()}, nil
	}

	l.start = l.current
	c := l.advance()

	switch c {
	case '+':
		return simple(Plus, l.span()), nil
	case '-':
		return simple(Minus, l.span()), nil
	case '*':
		return simple(Star, l.span()), nil
	case '/':
		return simple(Slash, l.span()), nil
	case '^':
		return simple(Caret, l.span()), nil
	case '%':
		return simple(Percent, l.span()), nil
	case '(':
		return simple(LeftParen, l.span()), nil
	case ')':
		return simple(RightParen, l.span()), nil
	case '{':
		return simple(LeftBrace, l.span()), nil
	case '}':
		return simple(RightBrace, l.span()), nil
	case '[':
		return simple(LeftBracket, l.span()), nil
	case ']':
		return simple(RightBracket, l.span()), nil
	case ':':
		if l.peek() == '=' {
			l.advance()
			return simple(ColonEqual, l.span()), nil
		}
		return simple(Colon, l.span()), nil
	case '.':
		return simple(Dot, l.span()), nil
	case ',':
		return simple(Comma, l.span()), nil
	case '"':
		return l.scanString()
	case '&':
		if l.peek() != '&' {
			return Token{}, l.errorf("expected '&&', found single '&'")
		}
		l.advance()
		return simple(And, l.span()), nil
	case '|':
		if l.peek() != '|' {
			return Token{}, l.errorf("expected '||', found single '|'")
		}
		l.advance()
		return simple(Or, l.span()), nil
	case '>':
		if l.peek() == '=' {
			l.advance()
			return simple(GreaterEqual, l.span()), nil
		}
		return simple(Greater, l.span()), nil
	case '<':
		if l.peek() == '=' {
			l.advance()
			return simple(LessEqual, l.span()), nil
		}
		return simple(Less, l.span()), nil
	case '=':
		if l.peek() == '=' {
			l.advance()
			return simple(EqualEqual, l.span()), nil
		}
		return simple(Equal, l.span()), nil
	case '!':
		if l.peek() == '=' {
			l.advance()
			return simple(NotEqual, l.span()), nil
		}
		return simple(Not, l.span()), nil
	default:
		if isDigit(c) {
			return l.scanNumber(), nil
		}
		if isIdentifierStart(c) {
			return l.scanIdentifier(), nil
		}
		return Token{}, l.errorf("unexpected character " + quoteChar(c))
	}
}

func (l *Lexer) scanString() (Token, *kerr.KirinError) {
	for !l.isAtEnd() && l.peek() != '"' {
		l.advance()
	}
	if l.isAtEnd() {
		return Token{}, l.errorf("unterminated string")
	}
	l.advance() // closing quote

	// Strip the surrounding quotes from the raw lexeme.
	lexeme := l.source[l.start+1 : l.current-1]
	return Token{Type: String, Lexeme: lexeme, Span: l.span()}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentifierStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierRest(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func (l *Lexer) scanNumber() Token {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' {
		l.advance()
		for !l.isAtEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	if l.peek() == 'E' {
		l.advance()
		if l.peek() == '-' {
			l.advance()
		}
		for !l.isAtEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	lexeme := l.source[l.start:l.current]
	return Token{Type: Number, Lexeme: lexeme, Span: l.span()}
}

var keywords = map[string]TokenType{
	"for":     For,
	"if":      If,
	"else":    Else,
	"while":   While,
	"fn":      Fn,
	"end":     End,
	"return":  Return,
	"true":    True,
	"false":   False,
	"and":     And,
	"or":      Or,
	"class":   Class,
	"let":     Let,
	"block":   Block,
	"delete":  Delete,
	"none":    None,
	"include": Include,
}

func (l *Lexer) scanIdentifier() Token {
	for !l.isAtEnd() && isIdentifierRest(l.peek()) {
		l.advance()
	}

	segment := l.source[l.start:l.current]
	if tt, ok := keywords[segment]; ok {
		return simple(tt, l.span())
	}
	return Token{Type: Identifier, Lexeme: segment, Span: l.span()}
}
