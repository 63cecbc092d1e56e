package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStringCoversEveryKind(t *testing.T) {
	for k := EOF; k <= While; k++ {
		assert.NotEmpty(t, k.String(), "Kind(%d) has no string representation", int(k))
	}
}

func TestKeywordsMapToCorrectKind(t *testing.T) {
	for lexeme, want := range Keywords {
		assert.Equal(t, want, Keywords[lexeme])
	}
	require.Equal(t, Class, Keywords["class"])
	require.Equal(t, Super, Keywords["super"])
	require.Equal(t, This, Keywords["this"])
}

func TestTokenStringIncludesLexemeAndLiteral(t *testing.T) {
	tok := Token{Kind: String, Lexeme: `"hi"`, Literal: &Literal{IsString: true, Str: "hi"}, Line: 1}
	assert.Equal(t, `STRING "\"hi\"" hi`, tok.String())

	noLit := Token{Kind: Semicolon, Lexeme: ";", Line: 1}
	assert.Equal(t, `SEMICOLON ";" null`, noLit.String())
}

func TestNumberLiteralStringifiesTheFloat(t *testing.T) {
	tok := Token{Kind: Number, Lexeme: "3", Literal: &Literal{IsNumber: true, Number: 3}, Line: 1}
	assert.Equal(t, `NUMBER "3" 3`, tok.String())
}
