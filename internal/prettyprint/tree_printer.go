// Package prettyprint renders tokens, the AST, and the global scope
// for the CLI's debugging flags: --tokens, --ast, --sym-table.
package prettyprint

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/malphas-lang/coretype/internal/ast"
)

// TreePrinter renders an AST as an indented tree, one construct per
// line.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter) writeIndent() {
	p.write(strings.Repeat("  ", p.indent))
}

func (p *TreePrinter) line(format string, args ...any) {
	p.writeIndent()
	p.write(fmt.Sprintf(format, args...))
	p.write("\n")
}

// PrintProgram renders a whole Program.
func PrintProgram(prog *ast.Program) string {
	p := NewTreePrinter()
	p.visitProgram(prog)
	return p.String()
}

func (p *TreePrinter) visitProgram(prog *ast.Program) {
	p.line("Program")
	p.indent++
	for _, d := range prog.Decls {
		p.visitDecl(d)
	}
	p.indent--
}

func (p *TreePrinter) visitDecl(d ast.Decl) {
	switch v := d.(type) {
	case *ast.FunctionDeclaration:
		p.visitFunctionDeclaration(v)
	case *ast.VariableDeclaration:
		p.visitVariableDeclaration(v)
	default:
		p.line("Unknown decl %T", d)
	}
}

func (p *TreePrinter) visitFunctionDeclaration(d *ast.FunctionDeclaration) {
	ret := "void"
	if d.ReturnType != nil {
		ret = TypeExprString(d.ReturnType)
	}
	var params []string
	for _, param := range d.Params {
		params = append(params, fmt.Sprintf("%s: %s", param.Name, TypeExprString(param.Type)))
	}
	p.line("FunctionDeclaration %s(%s) -> %s", d.Name, strings.Join(params, ", "), ret)
	p.indent++
	p.visitBlock(d.Body)
	p.indent--
}

func (p *TreePrinter) visitVariableDeclaration(d *ast.VariableDeclaration) {
	constTag := ""
	if d.IsConst {
		constTag = "const "
	}
	p.line("VariableDeclaration %s: %s%s", d.Name, constTag, TypeExprString(d.Type))
	if d.Initializer != nil {
		p.indent++
		p.visitNode(d.Initializer)
		p.indent--
	}
}

func (p *TreePrinter) visitBlock(b *ast.Block) {
	p.line("Block")
	p.indent++
	for _, s := range b.Statements {
		p.visitStatement(s)
	}
	p.indent--
}

func (p *TreePrinter) visitStatement(s ast.Statement) {
	switch v := s.(type) {
	case *ast.Block:
		p.visitBlock(v)
	case *ast.If:
		p.visitIf(v)
	case *ast.While:
		p.visitWhile(v)
	case *ast.For:
		p.visitFor(v)
	case *ast.Return:
		p.visitReturn(v)
	case *ast.Break:
		p.line("Break")
	case *ast.Continue:
		p.line("Continue")
	case *ast.VariableDeclaration:
		p.visitVariableDeclaration(v)
	case *ast.ExprStmt:
		p.visitExprStmt(v)
	default:
		p.line("Unknown statement %T", s)
	}
}

func (p *TreePrinter) visitIf(s *ast.If) {
	p.line("If")
	p.indent++
	p.line("Cond")
	p.indent++
	p.visitNode(s.Cond)
	p.indent--
	p.line("Then")
	p.indent++
	p.visitBlock(s.Then)
	p.indent--
	if s.Else != nil {
		p.line("Else")
		p.indent++
		p.visitStatement(s.Else)
		p.indent--
	}
	p.indent--
}

func (p *TreePrinter) visitWhile(s *ast.While) {
	p.line("While")
	p.indent++
	p.line("Cond")
	p.indent++
	p.visitNode(s.Cond)
	p.indent--
	p.visitBlock(s.Body)
	p.indent--
}

func (p *TreePrinter) visitFor(s *ast.For) {
	p.line("For")
	p.indent++
	if s.Init != nil {
		p.line("Init")
		p.indent++
		p.visitNode(s.Init)
		p.indent--
	}
	if s.Cond != nil {
		p.line("Cond")
		p.indent++
		p.visitNode(s.Cond)
		p.indent--
	}
	if s.Post != nil {
		p.line("Post")
		p.indent++
		p.visitNode(s.Post)
		p.indent--
	}
	p.visitBlock(s.Body)
	p.indent--
}

func (p *TreePrinter) visitReturn(s *ast.Return) {
	p.line("Return")
	if s.Value != nil {
		p.indent++
		p.visitNode(s.Value)
		p.indent--
	}
}

func (p *TreePrinter) visitExprStmt(s *ast.ExprStmt) {
	p.line("ExprStmt")
	p.indent++
	p.visitNode(s.Expr)
	p.indent--
}

// visitNode dispatches across statements, expressions, and decls so
// callers holding a bare ast.Node (e.g. a VariableDeclaration's
// Initializer, or a For's Init) don't need their own switch.
func (p *TreePrinter) visitNode(n ast.Node) {
	switch v := n.(type) {
	case *ast.VariableDeclaration:
		p.visitVariableDeclaration(v)
	case ast.Statement:
		p.visitStatement(v)
	case ast.Expression:
		p.visitExpression(v)
	default:
		p.line("Unknown node %T", n)
	}
}

func (p *TreePrinter) visitExpression(e ast.Expression) {
	switch v := e.(type) {
	case *ast.Literal:
		p.line("Literal %s", v.Text)
	case *ast.Identifier:
		p.line("Identifier %s", v.Name)
	case *ast.BinaryExpr:
		p.line("BinaryExpr %s", v.Op)
		p.indent++
		p.visitExpression(v.Left)
		p.visitExpression(v.Right)
		p.indent--
	case *ast.UnaryExpr:
		p.line("UnaryExpr %s", v.Op)
		p.indent++
		p.visitExpression(v.Operand)
		p.indent--
	case *ast.PostfixExpr:
		p.line("PostfixExpr %s", v.Op)
		p.indent++
		p.visitExpression(v.Operand)
		p.indent--
	case *ast.AssignmentExpr:
		p.line("AssignmentExpr %s", v.Op)
		p.indent++
		p.visitExpression(v.Lvalue)
		p.visitExpression(v.Rvalue)
		p.indent--
	case *ast.CallExpr:
		p.line("CallExpr")
		p.indent++
		p.visitExpression(v.Callee)
		for _, arg := range v.Args {
			p.visitNode(arg)
		}
		p.indent--
	case *ast.SubscriptExpr:
		p.line("SubscriptExpr")
		p.indent++
		p.visitExpression(v.Target)
		p.visitExpression(v.Index)
		p.indent--
	case *ast.InitializerList:
		p.line("InitializerList")
		p.indent++
		for _, elem := range v.Elements {
			p.visitNode(elem)
		}
		p.indent--
	default:
		p.line("Unknown expression %T", e)
	}
}

// TypeExprString renders a syntactic TypeExpr back into source-like
// notation, for use in declaration headers.
func TypeExprString(t *ast.TypeExpr) string {
	if t == nil {
		return "?"
	}
	var base string
	switch t.Shape {
	case ast.ShapeFunction:
		var params []string
		for _, p := range t.Params {
			params = append(params, TypeExprString(p))
		}
		ret := "void"
		if t.Return != nil {
			ret = TypeExprString(t.Return)
		}
		base = fmt.Sprintf("fn(%s) -> %s", strings.Join(params, ", "), ret)
	case ast.ShapeGrouped:
		base = "(" + TypeExprString(t.Inner) + ")"
	default:
		base = t.BaseName
	}
	if t.BaseIsConst {
		base = "const " + base
	}
	for i := 0; i < t.PreStars; i++ {
		base += "*"
	}
	for _, size := range t.Sizes {
		if lit, ok := size.(*ast.Literal); ok && lit.Kind == ast.LitInt {
			base += "[" + lit.Text + "]"
		} else {
			base += "[]"
		}
	}
	for i := 0; i < t.PostStars; i++ {
		base += "*"
	}
	return base
}
