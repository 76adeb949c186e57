package ast

import (
	"strconv"
	"strings"

	"github.com/kirin-lang/kirin/kerr"
	"github.com/kirin-lang/kirin/lexer"
)

// ParsedValue is the closed sum of literal values the parser can build
// directly out of source text, before any compilation step.
type ParsedValue interface {
	isParsedValue()
}

type NullValue struct{}

type BoolValue struct{ Value bool }

type IntValue struct{ Value int64 }

type FloatValue struct{ Value float64 }

type StringValue struct{ Value string }

// ArrayValue and VectorValue are both present for parity with the source
// language's two literal-sequence forms; neither infers a concrete element
// type, so TryInferType reports "unknown" for both.
type ArrayValue struct{ Values []ParsedValue }

type VectorValue struct{ Values []ParsedValue }

func (NullValue) isParsedValue()   {}
func (BoolValue) isParsedValue()   {}
func (IntValue) isParsedValue()    {}
func (FloatValue) isParsedValue()  {}
func (StringValue) isParsedValue() {}
func (ArrayValue) isParsedValue()  {}
func (VectorValue) isParsedValue() {}

// TryInferType reports the static KirinType a literal value carries. Array
// and Vector report ok=false: their element type is not tracked.
func TryInferType(v ParsedValue) (KirinType, bool) {
	switch v.(type) {
	case NullValue:
		return Null, true
	case BoolValue:
		return Bool, true
	case IntValue:
		return Int, true
	case FloatValue:
		return Float, true
	case StringValue:
		return String, true
	default:
		return Void, false
	}
}

// FromToken builds the literal ParsedValue a token denotes. Only None, True,
// False, String and Number tokens carry a literal value.
func FromToken(tok lexer.Token) (ParsedValue, *kerr.KirinError) {
	switch tok.Type {
	case lexer.None:
		return NullValue{}, nil
	case lexer.True:
		return BoolValue{Value: true}, nil
	case lexer.False:
		return BoolValue{Value: false}, nil
	case lexer.String:
		return StringValue{Value: tok.Lexeme}, nil
	case lexer.Number:
		return ParseNumber(tok.Lexeme, tok.Span.Line, tok.Span.Column)
	default:
		return nil, kerr.NewSpanned(kerr.Parse, tok.Span.Line, tok.Span.Column,
			"cannot parse token "+tok.Type.String()+" into a literal value")
	}
}

// ParseNumber interprets a scanned numeric lexeme. A lexeme with no "E"
// exponent marker becomes an Int when its value has no fractional part,
// otherwise a Float. A lexeme with an "E" marker always becomes a Float,
// computed as base * 10^exponent.
func ParseNumber(lexeme string, line, column int) (ParsedValue, *kerr.KirinError) {
	parts := strings.SplitN(lexeme, "E", 2)

	base, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, kerr.NewSpanned(kerr.Parse, line, column, "invalid number literal: "+lexeme)
	}

	if len(parts) == 1 {
		if base == float64(int64(base)) {
			return IntValue{Value: int64(base)}, nil
		}
		return FloatValue{Value: base}, nil
	}

	exponent, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, kerr.NewSpanned(kerr.Parse, line, column, "invalid exponent in number literal: "+lexeme)
	}

	return FloatValue{Value: base * pow10(exponent)}, nil
}

func pow10(exp int64) float64 {
	result := 1.0
	if exp >= 0 {
		for i := int64(0); i < exp; i++ {
			result *= 10
		}
		return result
	}
	for i := int64(0); i < -exp; i++ {
		result *= 10
	}
	return 1 / result
}
