package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/coretype/internal/lexer"
	"github.com/malphas-lang/coretype/internal/parser"
)

func buildScope(t *testing.T, src string) (*Scope, error) {
	t.Helper()
	toks, d := lexer.Tokenize(src)
	require.Nil(t, d)
	prog, d := parser.Parse(toks)
	require.Nil(t, d)
	scope, d := BuildGlobalScope(prog)
	if d != nil {
		return nil, d
	}
	return scope, nil
}

func TestBuildGlobalScopeFunctionAndVariable(t *testing.T) {
	scope, err := buildScope(t, "fn add(a: i32, b: i32) -> i32 { return a + b; } x: i32 = 1;")
	require.NoError(t, err)

	fn, ok := scope.LookupFunction("add")
	require.True(t, ok)
	assert.Equal(t, "fn(i32, i32) -> i32", fn.Type.String())

	v, ok := scope.LookupVariable("x")
	require.True(t, ok)
	assert.Equal(t, "i32", v.Type.String())
}

func TestBuildGlobalScopeLowersArrayType(t *testing.T) {
	scope, err := buildScope(t, "arr: i32[5] = { 1, 2, 3, 4, 5 };")
	require.NoError(t, err)

	v, ok := scope.LookupVariable("arr")
	require.True(t, ok)
	assert.Equal(t, "i32[5]", v.Type.String())
}

func TestBuildGlobalScopeDuplicateFunction(t *testing.T) {
	_, err := buildScope(t, "fn f() {} fn f() {}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate function")
}

func TestBuildGlobalScopeDuplicateVariable(t *testing.T) {
	_, err := buildScope(t, "x: i32 = 1; x: i32 = 2;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate variable")
}

func TestBuildGlobalScopeFunctionAndVariableSameNameOK(t *testing.T) {
	scope, err := buildScope(t, "fn x() {} x: i32 = 1;")
	require.NoError(t, err)

	_, ok := scope.LookupFunction("x")
	assert.True(t, ok)
	_, ok = scope.LookupVariable("x")
	assert.True(t, ok)
}
