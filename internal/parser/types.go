package parser

import (
	"github.com/malphas-lang/coretype/internal/ast"
	"github.com/malphas-lang/coretype/internal/diag"
	"github.com/malphas-lang/coretype/internal/token"
)

var baseTypeKinds = map[token.Kind]bool{
	token.KwI32:  true,
	token.KwI64:  true,
	token.KwF32:  true,
	token.KwF64:  true,
	token.KwBool: true,
}

// parseType parses <Type> ::= [ 'const' ] <TypeAtom> { <TypeSuffix> },
// with p.cur at the first token of the type.
func (p *Parser) parseType() *ast.TypeExpr {
	baseIsConst := false
	if p.curTokenIs(token.KwConst) {
		baseIsConst = true
		p.nextToken()
	}

	var t *ast.TypeExpr
	switch {
	case p.curTokenIs(token.LParen):
		t = p.parseGroupedType(baseIsConst)
	case p.curTokenIs(token.KwFn):
		t = p.parseFunctionType(baseIsConst)
	case baseTypeKinds[p.cur.Kind]:
		t = ast.NewRegularTypeExpr(p.cur, p.cur.Lexeme, baseIsConst)
	default:
		p.fail(diag.ParseError(p.cur, "expected a type"))
		return nil
	}
	if p.failed() {
		return nil
	}

	p.parseTypeSuffixes(t)
	return t
}

// parseGroupedType parses '(' <Type> ')', with p.cur at '('. A 'const'
// before the group applies to the inner type, not to the group's own
// suffix envelope.
func (p *Parser) parseGroupedType(baseIsConst bool) *ast.TypeExpr {
	tok := p.cur
	p.nextToken() // move to inner type's first token
	inner := p.parseType()
	if p.failed() {
		return nil
	}
	if !p.expectPeek(token.RParen, "expected ')' to close grouped type") {
		return nil
	}
	t := ast.NewGroupedTypeExpr(tok, inner)
	t.BaseIsConst = baseIsConst
	return t
}

// parseFunctionType parses <FunctionType> ::= 'fn' '(' [ <TypeList> ] ')' [ '->' <Type> ],
// with p.cur at 'fn'.
func (p *Parser) parseFunctionType(baseIsConst bool) *ast.TypeExpr {
	tok := p.cur
	if !p.expectPeek(token.LParen, "expected '(' after 'fn' in function type") {
		return nil
	}

	var params []*ast.TypeExpr
	if !p.peekTokenIs(token.RParen) {
		p.nextToken() // move to first param type
		first := p.parseType()
		if p.failed() {
			return nil
		}
		params = append(params, first)
		for p.peekTokenIs(token.Comma) {
			p.nextToken() // consume ','
			p.nextToken() // move to next param type
			next := p.parseType()
			if p.failed() {
				return nil
			}
			params = append(params, next)
		}
	}
	if !p.expectPeek(token.RParen, "expected ')' after function type's parameter list") {
		return nil
	}

	var ret *ast.TypeExpr
	if p.peekTokenIs(token.Arrow) {
		p.nextToken() // consume '->'
		p.nextToken() // move to return type
		ret = p.parseType()
		if p.failed() {
			return nil
		}
	}

	return ast.NewFunctionTypeExpr(tok, params, ret, baseIsConst)
}

// parseTypeSuffixes consumes { <TypeSuffix> }, classifying each '*' as
// a pre-star or post-star depending on whether an array suffix has
// been seen yet, and each '[' [ <ConstExpr> ] ']' as an array
// dimension, per the suffix envelope's pre/array/post ordering.
func (p *Parser) parseTypeSuffixes(t *ast.TypeExpr) {
	sawArray := false
	for {
		switch {
		case p.peekTokenIs(token.Star):
			p.nextToken()
			if sawArray {
				t.PostStars++
			} else {
				t.PreStars++
			}
		case p.peekTokenIs(token.LBracket):
			p.nextToken() // consume '['
			sawArray = true
			if p.peekTokenIs(token.RBracket) {
				p.nextToken() // consume ']'
				t.Sizes = append(t.Sizes, nil)
				continue
			}
			p.nextToken() // move to size expression
			size := p.parseExpr()
			if p.failed() {
				return
			}
			if !p.expectPeek(token.RBracket, "expected ']' after array size") {
				return
			}
			t.Sizes = append(t.Sizes, size)
		default:
			return
		}
	}
}
