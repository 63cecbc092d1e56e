package scanner_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boop-lang/boop/internal/reporter"
	"github.com/boop-lang/boop/internal/scanner"
	"github.com/boop-lang/boop/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanPunctuationAndExtensions(t *testing.T) {
	rep := reporter.New(&bytes.Buffer{})
	toks := scanner.New([]byte("++ -- ? : ( ) { } , . ; * + - ! != = == < <= > >= /"), rep).Scan()
	require.False(t, rep.HasError())

	want := []token.Kind{
		token.PlusPlus, token.MinusMinus, token.Question, token.Colon,
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Semicolon, token.Star, token.Plus, token.Minus,
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.Slash,
		token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestScanSkipsLineComments(t *testing.T) {
	rep := reporter.New(&bytes.Buffer{})
	toks := scanner.New([]byte("1 // ignored\n2"), rep).Scan()
	require.False(t, rep.HasError())
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(toks))
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScanString(t *testing.T) {
	rep := reporter.New(&bytes.Buffer{})
	toks := scanner.New([]byte(`"hello there"`), rep).Scan()
	require.False(t, rep.HasError())
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello there", toks[0].Literal.Str)
}

func TestScanUnterminatedStringIsReported(t *testing.T) {
	rep := reporter.New(&bytes.Buffer{})
	scanner.New([]byte(`"no closing quote`), rep).Scan()
	require.True(t, rep.HasError())
	assert.Contains(t, rep.Records()[0].Message, "Unterminated string")
}

func TestScanNumberFractional(t *testing.T) {
	rep := reporter.New(&bytes.Buffer{})
	toks := scanner.New([]byte("3.14"), rep).Scan()
	require.False(t, rep.HasError())
	assert.Equal(t, 3.14, toks[0].Literal.Number)
}

func TestScanIdentifierVsKeyword(t *testing.T) {
	rep := reporter.New(&bytes.Buffer{})
	toks := scanner.New([]byte("class super this classy"), rep).Scan()
	require.False(t, rep.HasError())
	assert.Equal(t, []token.Kind{token.Class, token.Super, token.This, token.Identifier, token.EOF}, kinds(toks))
}

func TestScanUnexpectedCharacterIsReported(t *testing.T) {
	rep := reporter.New(&bytes.Buffer{})
	scanner.New([]byte("@"), rep).Scan()
	require.True(t, rep.HasError())
	assert.Contains(t, rep.Records()[0].Message, "Unexpected character")
}
