package parser

import (
	"github.com/malphas-lang/coretype/internal/ast"
	"github.com/malphas-lang/coretype/internal/diag"
	"github.com/malphas-lang/coretype/internal/token"
)

var assignOps = map[token.Kind]ast.Operator{
	token.Assign:        ast.OpAssign,
	token.PlusAssign:    ast.OpAddAssign,
	token.MinusAssign:   ast.OpSubAssign,
	token.StarAssign:    ast.OpMulAssign,
	token.SlashAssign:   ast.OpDivAssign,
	token.PercentAssign: ast.OpModAssign,
}

// parseExpr parses <Expr> ::= <Assignment> | <LogicalOr>. The two
// alternatives share a prefix (an lvalue looks exactly like any other
// LogicalOr-level expression), so the assignment form is recognized
// after the fact: parse a LogicalOr expression, and if an assignment
// operator follows, demand that what was just parsed is an lvalue.
func (p *Parser) parseExpr() ast.Expression {
	left := p.parseLogicalOr()
	if p.failed() {
		return nil
	}

	if op, ok := assignOps[p.peek.Kind]; ok {
		opTok := p.peek
		if !ast.IsLvalue(left) {
			p.fail(diag.ParseError(opTok, "left-hand side of assignment must be an lvalue"))
			return nil
		}
		p.nextToken() // cur = assignment operator
		p.nextToken() // move to RHS start
		right := p.parseExpr() // right-associative
		if p.failed() {
			return nil
		}
		return ast.NewAssignmentExpr(opTok, op, left, right)
	}
	return left
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	if p.failed() {
		return nil
	}
	for p.peekTokenIs(token.OrOr) {
		tok := p.peek
		p.nextToken()
		p.nextToken()
		right := p.parseLogicalAnd()
		if p.failed() {
			return nil
		}
		left = ast.NewBinaryExpr(tok, ast.OpOr, left, right)
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseEquality()
	if p.failed() {
		return nil
	}
	for p.peekTokenIs(token.AndAnd) {
		tok := p.peek
		p.nextToken()
		p.nextToken()
		right := p.parseEquality()
		if p.failed() {
			return nil
		}
		left = ast.NewBinaryExpr(tok, ast.OpAnd, left, right)
	}
	return left
}

var equalityOps = map[token.Kind]ast.Operator{
	token.EqEq:  ast.OpEq,
	token.NotEq: ast.OpNeq,
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseRelational()
	if p.failed() {
		return nil
	}
	for {
		op, ok := equalityOps[p.peek.Kind]
		if !ok {
			return left
		}
		tok := p.peek
		p.nextToken()
		p.nextToken()
		right := p.parseRelational()
		if p.failed() {
			return nil
		}
		left = ast.NewBinaryExpr(tok, op, left, right)
	}
}

var relationalOps = map[token.Kind]ast.Operator{
	token.Less:      ast.OpLt,
	token.Greater:   ast.OpGt,
	token.LessEq:    ast.OpLe,
	token.GreaterEq: ast.OpGe,
}

func (p *Parser) parseRelational() ast.Expression {
	left := p.parseAdditive()
	if p.failed() {
		return nil
	}
	for {
		op, ok := relationalOps[p.peek.Kind]
		if !ok {
			return left
		}
		tok := p.peek
		p.nextToken()
		p.nextToken()
		right := p.parseAdditive()
		if p.failed() {
			return nil
		}
		left = ast.NewBinaryExpr(tok, op, left, right)
	}
}

var additiveOps = map[token.Kind]ast.Operator{
	token.Plus:  ast.OpAdd,
	token.Minus: ast.OpSub,
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMul()
	if p.failed() {
		return nil
	}
	for {
		op, ok := additiveOps[p.peek.Kind]
		if !ok {
			return left
		}
		tok := p.peek
		p.nextToken()
		p.nextToken()
		right := p.parseMul()
		if p.failed() {
			return nil
		}
		left = ast.NewBinaryExpr(tok, op, left, right)
	}
}

var mulOps = map[token.Kind]ast.Operator{
	token.Star:    ast.OpMul,
	token.Slash:   ast.OpDiv,
	token.Percent: ast.OpMod,
}

func (p *Parser) parseMul() ast.Expression {
	left := p.parseUnary()
	if p.failed() {
		return nil
	}
	for {
		op, ok := mulOps[p.peek.Kind]
		if !ok {
			return left
		}
		tok := p.peek
		p.nextToken()
		p.nextToken()
		right := p.parseUnary()
		if p.failed() {
			return nil
		}
		left = ast.NewBinaryExpr(tok, op, left, right)
	}
}

// parseUnary parses
// <Unary> ::= ('+'|'-'|'!'|'*'|'&'|'++'|'--') <Unary> | <Postfix>.
// Prefix operators bind tighter than any binary operator and nest
// right-to-left via direct recursion.
func (p *Parser) parseUnary() ast.Expression {
	switch p.cur.Kind {
	case token.Plus:
		tok := p.cur
		p.nextToken()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnaryExpr(tok, ast.OpAdd, operand)
	case token.Minus:
		tok := p.cur
		p.nextToken()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnaryExpr(tok, ast.OpSub, operand)
	case token.Bang:
		tok := p.cur
		p.nextToken()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnaryExpr(tok, ast.OpNot, operand)
	case token.Star:
		tok := p.cur
		p.nextToken()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnaryExpr(tok, ast.OpDeref, operand)
	case token.Amp:
		tok := p.cur
		p.nextToken()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnaryExpr(tok, ast.OpAddress, operand)
	case token.PlusPlus:
		tok := p.cur
		p.nextToken()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnaryExpr(tok, ast.OpPreInc, operand)
	case token.MinusMinus:
		tok := p.cur
		p.nextToken()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnaryExpr(tok, ast.OpPreDec, operand)
	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses
// <Postfix> ::= <Primary> { '++' | '--' | '[' <Expr> ']' | '(' [ <ArgList> ] ')' }.
// Postfix operators bind tighter than prefix operators.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if p.failed() {
		return nil
	}

	for {
		switch p.peek.Kind {
		case token.PlusPlus:
			tok := p.peek
			p.nextToken()
			expr = ast.NewPostfixExpr(tok, ast.OpPostInc, expr)
		case token.MinusMinus:
			tok := p.peek
			p.nextToken()
			expr = ast.NewPostfixExpr(tok, ast.OpPostDec, expr)
		case token.LBracket:
			tok := p.peek
			p.nextToken() // cur = '['
			p.nextToken() // move to index expr start
			index := p.parseExpr()
			if p.failed() {
				return nil
			}
			if !p.expectPeek(token.RBracket, "expected ']' after subscript index") {
				return nil
			}
			expr = ast.NewSubscriptExpr(tok, expr, index)
		case token.LParen:
			tok := p.peek
			p.nextToken() // cur = '('
			args := p.parseArgList()
			if p.failed() {
				return nil
			}
			expr = ast.NewCallExpr(tok, expr, args)
		default:
			return expr
		}
	}
}

// parseArgList parses [ <ArgList> ] ')', with p.cur at '(', rejecting
// a trailing comma.
func (p *Parser) parseArgList() []ast.Node {
	var args []ast.Node
	if p.peekTokenIs(token.RParen) {
		p.nextToken()
		return args
	}

	p.nextToken() // move to first arg's start
	first := p.parseArgElem()
	if p.failed() {
		return nil
	}
	args = append(args, first)

	for p.peekTokenIs(token.Comma) {
		p.nextToken() // consume ','
		if p.peekTokenIs(token.RParen) {
			p.fail(diag.ParseError(p.peek, "trailing comma not allowed in argument list"))
			return nil
		}
		p.nextToken() // move to next arg's start
		next := p.parseArgElem()
		if p.failed() {
			return nil
		}
		args = append(args, next)
	}

	if !p.expectPeek(token.RParen, "expected ')' after argument list") {
		return nil
	}
	return args
}

func (p *Parser) parseArgElem() ast.Node {
	if p.curTokenIs(token.LBrace) {
		return p.parseInitList()
	}
	return p.parseExpr()
}

// parsePrimary parses
// <Primary> ::= INT | FLOAT | 'true' | 'false' | IDENT | '(' <Expr> ')'.
func (p *Parser) parsePrimary() ast.Expression {
	switch p.cur.Kind {
	case token.IntLit:
		return ast.NewLiteral(p.cur, ast.LitInt, p.cur.Lexeme)
	case token.FloatLit:
		return ast.NewLiteral(p.cur, ast.LitFloat, p.cur.Lexeme)
	case token.KwTrue:
		return ast.NewLiteral(p.cur, ast.LitBool, p.cur.Lexeme)
	case token.KwFalse:
		return ast.NewLiteral(p.cur, ast.LitBool, p.cur.Lexeme)
	case token.Ident:
		return ast.NewIdentifier(p.cur)
	case token.LParen:
		p.nextToken() // move to inner expr start
		inner := p.parseExpr()
		if p.failed() {
			return nil
		}
		if !p.expectPeek(token.RParen, "expected ')' after parenthesized expression") {
			return nil
		}
		return inner
	default:
		p.fail(diag.ParseError(p.cur, "expected expression"))
		return nil
	}
}

// parseInitList parses <InitList> ::= '{' [ <InitElem> { ',' <InitElem> } ] '}',
// with p.cur at '{', rejecting a trailing comma.
func (p *Parser) parseInitList() *ast.InitializerList {
	tok := p.cur
	var elems []ast.Node

	if p.peekTokenIs(token.RBrace) {
		p.nextToken()
		return ast.NewInitializerList(tok, elems)
	}

	p.nextToken() // move to first element's start
	first := p.parseInitElem()
	if p.failed() {
		return nil
	}
	elems = append(elems, first)

	for p.peekTokenIs(token.Comma) {
		p.nextToken() // consume ','
		if p.peekTokenIs(token.RBrace) {
			p.fail(diag.ParseError(p.peek, "trailing comma not allowed in initializer list"))
			return nil
		}
		p.nextToken() // move to next element's start
		next := p.parseInitElem()
		if p.failed() {
			return nil
		}
		elems = append(elems, next)
	}

	if !p.expectPeek(token.RBrace, "expected '}' to close initializer list") {
		return nil
	}
	return ast.NewInitializerList(tok, elems)
}

// parseInitElem parses <InitElem> ::= <Expr> | <InitList>.
func (p *Parser) parseInitElem() ast.Node {
	if p.curTokenIs(token.LBrace) {
		return p.parseInitList()
	}
	return p.parseExpr()
}
