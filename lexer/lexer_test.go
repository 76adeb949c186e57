package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typesOf(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, t := range tokens {
		types[i] = t.Type
	}
	return types
}

func TestScanNumbers(t *testing.T) {
	tokens, err := Scan("20.9\n10E5\n2E-3\n1000\n")
	require.Nil(t, err)

	var lexemes []string
	for _, tok := range tokens {
		if tok.Type == Number {
			lexemes = append(lexemes, tok.Lexeme)
		}
	}
	assert.Equal(t, []string{"20.9", "10E5", "2E-3", "1000"}, lexemes)
}

func TestScanIdentifierAndKeywords(t *testing.T) {
	tokens, err := Scan("foo for if else while fn end return true false and or class let block delete none include\n")
	require.Nil(t, err)

	want := []TokenType{
		Identifier, For, If, Else, While, Fn, End, Return, True, False, And, Or,
		Class, Let, Block, Delete, None, Include, NewLine, Eof,
	}
	assert.Equal(t, want, typesOf(tokens))
	assert.Equal(t, "foo", tokens[0].Lexeme)
}

func TestScanBlankLinesCoalesceIntoOneNewline(t *testing.T) {
	tokens, err := Scan("1\n\n\n2\n")
	require.Nil(t, err)

	want := []TokenType{Number, NewLine, Number, NewLine, Eof}
	assert.Equal(t, want, typesOf(tokens))
}

func TestScanLineCommentAbsorbsTrailingNewline(t *testing.T) {
	tokens, err := Scan("1\n# a comment\n2\n")
	require.Nil(t, err)

	want := []TokenType{Number, NewLine, Number, NewLine, Eof}
	assert.Equal(t, want, typesOf(tokens))
}

func TestScanSimpleArithmeticExpression(t *testing.T) {
	tokens, err := Scan("1 + 2 * 3\n")
	require.Nil(t, err)

	want := []TokenType{Number, Plus, Number, Star, Number, NewLine, Eof}
	assert.Equal(t, want, typesOf(tokens))
}

func TestScanComparisonOperators(t *testing.T) {
	tokens, err := Scan("a == b != c >= d <= e > f < g\n")
	require.Nil(t, err)

	want := []TokenType{
		Identifier, EqualEqual, Identifier, NotEqual, Identifier, GreaterEqual,
		Identifier, LessEqual, Identifier, Greater, Identifier, Less, Identifier,
		NewLine, Eof,
	}
	assert.Equal(t, want, typesOf(tokens))
}

func TestScanLogicalOperatorsRequireDoubledChar(t *testing.T) {
	tokens, err := Scan("a && b || c\n")
	require.Nil(t, err)

	want := []TokenType{Identifier, And, Identifier, Or, Identifier, NewLine, Eof}
	assert.Equal(t, want, typesOf(tokens))

	_, scanErr := Scan("a & b\n")
	require.NotNil(t, scanErr)
	assert.Equal(t, "Scan Error", scanErr.Kind.String())
}

func TestScanBrackets(t *testing.T) {
	tokens, err := Scan("(a) [b] {c}\n")
	require.Nil(t, err)

	want := []TokenType{
		LeftParen, Identifier, RightParen, LeftBracket, Identifier, RightBracket,
		LeftBrace, Identifier, RightBrace, NewLine, Eof,
	}
	assert.Equal(t, want, typesOf(tokens))
}

func TestScanColonAndWalrus(t *testing.T) {
	tokens, err := Scan("x:y x:=1\n")
	require.Nil(t, err)

	want := []TokenType{
		Identifier, Colon, Identifier, Identifier, ColonEqual, Number, NewLine, Eof,
	}
	assert.Equal(t, want, typesOf(tokens))
}

func TestScanString(t *testing.T) {
	tokens, err := Scan(`"hello world"` + "\n")
	require.Nil(t, err)
	require.Equal(t, String, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Lexeme)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := Scan(`"hello`)
	require.NotNil(t, err)
	assert.Equal(t, "Scan Error", err.Kind.String())
}

func TestScanTrailingNewlineAndEofInvariant(t *testing.T) {
	tokens, err := Scan("1")
	require.Nil(t, err)
	assert.Equal(t, []TokenType{Number, NewLine, Eof}, typesOf(tokens))

	tokens, err = Scan("1\n")
	require.Nil(t, err)
	assert.Equal(t, []TokenType{Number, NewLine, Eof}, typesOf(tokens))
}

func TestScanTrailingWhitespaceNoNewline(t *testing.T) {
	tokens, err := Scan("1 ")
	require.Nil(t, err)
	assert.Equal(t, []TokenType{Number, NewLine, Eof}, typesOf(tokens))
}

func TestScanTrailingCommentNoNewline(t *testing.T) {
	tokens, err := Scan("1\n# trailing comment, no newline")
	require.Nil(t, err)
	assert.Equal(t, []TokenType{Number, NewLine, Eof}, typesOf(tokens))
}
