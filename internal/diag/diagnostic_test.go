package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malphas-lang/coretype/internal/token"
)

func TestParseErrorAtPrevSetsUnderlineOnlyAcrossLines(t *testing.T) {
	prev := token.Token{Line: 2, Column: 5, Lexeme: "1"}
	sameLine := token.Token{Line: 2, Column: 6}
	d := ParseErrorAtPrev(sameLine, prev, "missing")
	assert.False(t, d.UnderlinePrev)

	laterLine := token.Token{Line: 3, Column: 1}
	d2 := ParseErrorAtPrev(laterLine, prev, "missing")
	assert.True(t, d2.UnderlinePrev)
}

func TestDuplicateSymbolMessage(t *testing.T) {
	d := DuplicateSymbol("function", "add", token.Token{Lexeme: "add"})
	assert.Equal(t, KindDuplicateSymbol, d.Kind)
	assert.Contains(t, d.Error(), "duplicate function")
	assert.Contains(t, d.Error(), "add")
}

func TestUnknownTokenMessage(t *testing.T) {
	d := UnknownToken(token.Token{Lexeme: "$"})
	assert.Equal(t, KindUnknownToken, d.Kind)
	assert.Contains(t, d.Error(), "$")
}
