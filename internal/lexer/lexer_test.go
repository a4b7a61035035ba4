package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/coretype/internal/token"
)

func TestTokenizeLongestMatchPrefersIdentifierOverKeywordPrefix(t *testing.T) {
	toks, d := Tokenize("iffy")
	require.Nil(t, d)
	require.Len(t, toks, 2) // IDENT, EOF
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, "iffy", toks[0].Lexeme)
}

func TestTokenizeKeywordsAndPunctuation(t *testing.T) {
	toks, d := Tokenize("fn add(a: i32) -> i32 { return a; }")
	require.Nil(t, d)

	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.KwFn, token.Ident, token.LParen, token.Ident, token.Colon, token.KwI32,
		token.RParen, token.Arrow, token.KwI32, token.LBrace, token.KwReturn, token.Ident,
		token.Semicolon, token.RBrace, token.EOF,
	}, kinds)
}

func TestTokenizeDropsLineComments(t *testing.T) {
	toks, d := Tokenize("x: i32 = 1; // trailing comment\n")
	require.Nil(t, d)
	for _, tok := range toks {
		assert.NotEqual(t, token.COMMENT, tok.Kind)
	}
}

func TestTokenizeUnknownByteIsFatal(t *testing.T) {
	_, d := Tokenize("x: i32 = 1 $ 2;")
	require.NotNil(t, d)
	assert.Equal(t, "$", d.Token.Lexeme)
}

func TestTokenizeCompoundOperatorsLongestMatch(t *testing.T) {
	toks, d := Tokenize("a += b; a == b; a != b; a <= b; a >= b;")
	require.Nil(t, d)
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, token.PlusAssign)
	assert.Contains(t, kinds, token.EqEq)
	assert.Contains(t, kinds, token.NotEq)
	assert.Contains(t, kinds, token.LessEq)
	assert.Contains(t, kinds, token.GreaterEq)
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	toks, d := Tokenize("x: i32\n= 1;")
	require.Nil(t, d)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)

	var assign token.Token
	for _, tok := range toks {
		if tok.Kind == token.Assign {
			assign = tok
		}
	}
	assert.Equal(t, 2, assign.Line)
	assert.Equal(t, 1, assign.Column)
}
