package symbols

import (
	"github.com/malphas-lang/coretype/internal/ast"
	"github.com/malphas-lang/coretype/internal/diag"
)

// BuildGlobalScope populates an empty global Scope from prog's
// top-level declarations, in source order, lowering each declaration's
// type and failing on the first duplicate name within its own
// namespace. Function and variable namespaces are disjoint: a name may
// appear once as a function and once as a variable.
func BuildGlobalScope(prog *ast.Program) (*Scope, *diag.Diagnostic) {
	global := NewScope(nil)

	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.FunctionDeclaration:
			fnType := ast.FunctionDeclType(d)
			sym := Symbol{Name: d.Name, Type: fnType}
			if !global.DeclareFunction(sym) {
				return nil, diag.DuplicateSymbol("function", d.Name, d.Token())
			}
		case *ast.VariableDeclaration:
			varType := ast.Lower(d.Type)
			sym := Symbol{Name: d.Name, Type: varType, IsConstant: d.IsConst}
			if !global.DeclareVariable(sym) {
				return nil, diag.DuplicateSymbol("variable", d.Name, d.Token())
			}
		}
	}

	return global, nil
}
