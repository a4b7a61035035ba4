package pipeline

import (
	"github.com/malphas-lang/coretype/internal/ast"
	"github.com/malphas-lang/coretype/internal/diag"
	"github.com/malphas-lang/coretype/internal/symbols"
	"github.com/malphas-lang/coretype/internal/token"
)

// Context holds everything passed between the front-end's stages:
// lex, parse, build-scope. A stage reads what earlier stages
// produced and writes its own result, or sets Diagnostic and leaves
// later fields untouched.
type Context struct {
	Source   string
	FilePath string

	Tokens []token.Token

	Program *ast.Program

	Global *symbols.Scope

	Diagnostic *diag.Diagnostic
}

// NewContext creates a Context for a single source file. FilePath is
// used only for diagnostic display; it may be empty for in-memory
// sources.
func NewContext(source, filePath string) *Context {
	return &Context{Source: source, FilePath: filePath}
}

// Failed reports whether a prior stage already set a diagnostic.
func (c *Context) Failed() bool { return c.Diagnostic != nil }
