package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/coretype/internal/diag"
	"github.com/malphas-lang/coretype/internal/token"
)

func TestDefaultPipelineRunsAllStagesOnSuccess(t *testing.T) {
	ctx := NewContext("fn add(a: i32, b: i32) -> i32 { return a + b; }", "test.ct")
	ctx = Default().Run(ctx)

	require.False(t, ctx.Failed())
	assert.NotEmpty(t, ctx.Tokens)
	require.NotNil(t, ctx.Program)
	require.NotNil(t, ctx.Global)

	_, ok := ctx.Global.LookupFunction("add")
	assert.True(t, ok)
}

func TestDefaultPipelineHaltsAtLexStage(t *testing.T) {
	ctx := NewContext("x: i32 = 1 $ 2;", "test.ct")
	ctx = Default().Run(ctx)

	require.True(t, ctx.Failed())
	assert.Nil(t, ctx.Program)
	assert.Nil(t, ctx.Global)
}

func TestDefaultPipelineHaltsAtParseStageWithoutRunningScopeStage(t *testing.T) {
	ctx := NewContext("fn add(a: i32 { return a; }", "test.ct")
	ctx = Default().Run(ctx)

	require.True(t, ctx.Failed())
	assert.Nil(t, ctx.Program)
	assert.Nil(t, ctx.Global)
}

func TestDefaultPipelineHaltsAtScopeStage(t *testing.T) {
	ctx := NewContext("fn f() {} fn f() {}", "test.ct")
	ctx = Default().Run(ctx)

	require.True(t, ctx.Failed())
	assert.NotNil(t, ctx.Program)
	assert.Nil(t, ctx.Global)
	assert.Contains(t, ctx.Diagnostic.Message, "duplicate function")
}

// recordingStage appends its name to order whenever Process runs, so a
// test can assert which stages actually executed after an earlier one
// fails.
type recordingStage struct {
	name  string
	order *[]string
}

func (r recordingStage) Process(ctx *Context) *Context {
	*r.order = append(*r.order, r.name)
	return ctx
}

func TestPipelineStopsAtFirstDiagnostic(t *testing.T) {
	var order []string
	failing := ProcessorFunc(func(ctx *Context) *Context {
		order = append(order, "failing")
		ctx.Diagnostic = diag.ParseError(token.Token{}, "synthetic failure")
		return ctx
	})
	p := New(recordingStage{name: "before", order: &order}, failing, recordingStage{name: "after", order: &order})

	ctx := NewContext("", "")
	ctx = p.Run(ctx)

	require.True(t, ctx.Failed())
	assert.Equal(t, []string{"before", "failing"}, order)
}
