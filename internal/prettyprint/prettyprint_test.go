package prettyprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/coretype/internal/lexer"
	"github.com/malphas-lang/coretype/internal/parser"
	"github.com/malphas-lang/coretype/internal/symbols"
)

func TestPrintProgramRendersFunctionAndReturn(t *testing.T) {
	toks, d := lexer.Tokenize("fn add(a: i32, b: i32) -> i32 { return a + b; }")
	require.Nil(t, d)
	prog, d := parser.Parse(toks)
	require.Nil(t, d)

	out := PrintProgram(prog)
	assert.Contains(t, out, "FunctionDeclaration add(a: i32, b: i32) -> i32")
	assert.Contains(t, out, "BinaryExpr +")
}

func TestPrintTokensOneLinePerToken(t *testing.T) {
	toks, d := lexer.Tokenize("x: i32 = 1;")
	require.Nil(t, d)
	out := PrintTokens(toks)
	assert.Contains(t, out, "IDENT")
	assert.Contains(t, out, `"x"`)
}

func TestTokensJSONRoundTripsShape(t *testing.T) {
	toks, d := lexer.Tokenize("x: i32 = 1;")
	require.Nil(t, d)
	data, err := TokensJSON(toks)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type": "IDENT"`)
	assert.Contains(t, string(data), `"value": "x"`)
}

func TestPrintScopeListsFunctionsThenVariables(t *testing.T) {
	toks, d := lexer.Tokenize("fn add(a: i32, b: i32) -> i32 { return a + b; } x: i32 = 1;")
	require.Nil(t, d)
	prog, d := parser.Parse(toks)
	require.Nil(t, d)
	scope, d := symbols.BuildGlobalScope(prog)
	require.Nil(t, d)

	out := PrintScope(scope)
	assert.Contains(t, out, "add: fn(i32, i32) -> i32")
	assert.Contains(t, out, "x: i32")
	assert.Less(t, strings.Index(out, "add: fn(i32, i32) -> i32"), strings.Index(out, "x: i32"))
}

func TestPrintScopeExpandsCompositeTypes(t *testing.T) {
	toks, d := lexer.Tokenize("arr: i32[5] = { 1, 2, 3, 4, 5 };")
	require.Nil(t, d)
	prog, d := parser.Parse(toks)
	require.Nil(t, d)
	scope, d := symbols.BuildGlobalScope(prog)
	require.Nil(t, d)

	out := PrintScope(scope)
	assert.Contains(t, out, "arr: i32[5]")
	assert.Contains(t, out, "Array size=5")
	assert.Contains(t, out, "Primitive i32")
}
