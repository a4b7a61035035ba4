package pipeline

import (
	"github.com/malphas-lang/coretype/internal/lexer"
	"github.com/malphas-lang/coretype/internal/parser"
	"github.com/malphas-lang/coretype/internal/symbols"
)

// LexStage tokenizes ctx.Source into ctx.Tokens.
type LexStage struct{}

func (LexStage) Process(ctx *Context) *Context {
	toks, d := lexer.Tokenize(ctx.Source)
	if d != nil {
		d.File = ctx.FilePath
		ctx.Diagnostic = d
		return ctx
	}
	ctx.Tokens = toks
	return ctx
}

// ParseStage parses ctx.Tokens into ctx.Program.
type ParseStage struct{}

func (ParseStage) Process(ctx *Context) *Context {
	prog, d := parser.Parse(ctx.Tokens)
	if d != nil {
		d.File = ctx.FilePath
		ctx.Diagnostic = d
		return ctx
	}
	ctx.Program = prog
	return ctx
}

// ScopeStage builds the global scope from ctx.Program, lowering every
// top-level declaration's type along the way.
type ScopeStage struct{}

func (ScopeStage) Process(ctx *Context) *Context {
	global, d := symbols.BuildGlobalScope(ctx.Program)
	if d != nil {
		d.File = ctx.FilePath
		ctx.Diagnostic = d
		return ctx
	}
	ctx.Global = global
	return ctx
}

// Default is the front-end's fixed stage order: lex, parse, build the
// global scope. There is no separate lowering stage — types are
// lowered inside ScopeStage, since nothing downstream needs a
// standalone type map.
func Default() *Pipeline {
	return New(LexStage{}, ParseStage{}, ScopeStage{})
}
