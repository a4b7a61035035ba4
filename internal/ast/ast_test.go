package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malphas-lang/coretype/internal/ast"
	"github.com/malphas-lang/coretype/internal/token"
	"github.com/malphas-lang/coretype/internal/types"
)

func TestSemTypeWriteOncePanicsOnSecondSet(t *testing.T) {
	n := ast.NewIdentifier(token.Token{Kind: token.Ident, Lexeme: "x"})
	n.SetSemType(types.Primitive{Name: "i32"})
	assert.Panics(t, func() { n.SetSemType(types.Primitive{Name: "i32"}) })
}

func TestConstValueWriteOncePanicsOnSecondSet(t *testing.T) {
	n := ast.NewLiteral(token.Token{Kind: token.IntLit, Lexeme: "1"}, ast.LitInt, "1")
	n.SetConstValue(&ast.ConstValue{Kind: ast.ConstInt, Int: 1})
	assert.Panics(t, func() { n.SetConstValue(&ast.ConstValue{Kind: ast.ConstInt, Int: 1}) })
}

func TestIsLvalueClassifiesExpressions(t *testing.T) {
	ident := ast.NewIdentifier(token.Token{Kind: token.Ident, Lexeme: "x"})
	assert.True(t, ast.IsLvalue(ident))

	sub := ast.NewSubscriptExpr(token.Token{Kind: token.LBracket, Lexeme: "["}, ident, ident)
	assert.True(t, ast.IsLvalue(sub))

	deref := ast.NewUnaryExpr(token.Token{Kind: token.Star, Lexeme: "*"}, ast.OpDeref, ident)
	assert.True(t, ast.IsLvalue(deref))

	neg := ast.NewUnaryExpr(token.Token{Kind: token.Minus, Lexeme: "-"}, ast.OpSub, ident)
	assert.False(t, ast.IsLvalue(neg))

	call := ast.NewCallExpr(token.Token{Kind: token.LParen, Lexeme: "("}, ident, nil)
	assert.False(t, ast.IsLvalue(call))

	lit := ast.NewLiteral(token.Token{Kind: token.IntLit, Lexeme: "1"}, ast.LitInt, "1")
	assert.False(t, ast.IsLvalue(lit))
}
