/*
File    : golox/internal/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
)

func scanTypes(t *testing.T, src string) []token.Type {
	t.Helper()
	sink := diagnostics.NewSink()
	tokens := New(src, sink).ScanTokens()
	var types []token.Type
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestLexer_Punctuation(t *testing.T) {
	types := scanTypes(t, "(){},.-+;*/")
	assert.Equal(t, []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON,
		token.STAR, token.SLASH, token.EOF,
	}, types)
}

func TestLexer_MaximalMunchOperators(t *testing.T) {
	types := scanTypes(t, "!= == <= >= ! = < >")
	assert.Equal(t, []token.Type{
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.BANG, token.EQUAL, token.LESS, token.GREATER, token.EOF,
	}, types)
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	types := scanTypes(t, "var x = foo")
	assert.Equal(t, []token.Type{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.EOF,
	}, types)
}

func TestLexer_NumberDistinguishesMethodDotFromDecimal(t *testing.T) {
	sink := diagnostics.NewSink()
	tokens := New("123.method 123.45", sink).ScanTokens()

	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, "123", tokens[0].Lexeme)
	assert.Equal(t, token.DOT, tokens[1].Type)
	assert.Equal(t, token.IDENTIFIER, tokens[2].Type)

	assert.Equal(t, token.NUMBER, tokens[3].Type)
	assert.Equal(t, 123.45, tokens[3].Literal.Num)
}

func TestLexer_StringSpansLines(t *testing.T) {
	sink := diagnostics.NewSink()
	tokens := New("\"hello\nworld\"", sink).ScanTokens()
	assert.False(t, sink.HasErrors())
	assert.Equal(t, token.STRING, tokens[0].Type)
	assert.Equal(t, "hello\nworld", tokens[0].Literal.Str)
}

func TestLexer_UnterminatedStringReportsAtOpeningLine(t *testing.T) {
	sink := diagnostics.NewSink()
	New("var a = 1;\n\"abc", sink).ScanTokens()
	assert.True(t, sink.HasErrors())
	assert.Equal(t, 2, sink.Diagnostics()[0].Line)
}

func TestLexer_UnknownCharacterContinuesScanning(t *testing.T) {
	sink := diagnostics.NewSink()
	tokens := New("1 @ 2", sink).ScanTokens()
	assert.True(t, sink.HasErrors())
	// scanning continues past the bad character to the rest of the tokens
	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, token.NUMBER, tokens[2].Type)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Type)
}

func TestLexer_CommentsAndWhitespaceSkipped(t *testing.T) {
	types := scanTypes(t, "  1 // a trailing comment\n  + 2\n")
	assert.Equal(t, []token.Type{token.NUMBER, token.PLUS, token.NUMBER, token.EOF}, types)
}

func TestLexer_AlwaysTerminatesWithExactlyOneEOF(t *testing.T) {
	tokens := func(src string) []token.Token {
		return New(src, diagnostics.NewSink()).ScanTokens()
	}
	for _, src := range []string{"", "1", "var a;", "\"unterminated"} {
		ts := tokens(src)
		assert.Equal(t, token.EOF, ts[len(ts)-1].Type)
		eofCount := 0
		for _, tok := range ts {
			if tok.Type == token.EOF {
				eofCount++
			}
		}
		assert.Equal(t, 1, eofCount)
	}
}
