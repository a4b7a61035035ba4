package parser

import (
	"github.com/malphas-lang/coretype/internal/ast"
	"github.com/malphas-lang/coretype/internal/diag"
	"github.com/malphas-lang/coretype/internal/token"
)

// parseStatement parses
// <Statement> ::= <Block> | <If> | <While> | <For> | <Return> | 'break' ';' | 'continue' ';'
//
//	| <VariableDeclStmt> | <ExprStmt>
//
// with p.cur at the statement's first token.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwBreak:
		tok := p.cur
		if !p.expectPeek(token.Semicolon, "expected ';' after 'break'") {
			return nil
		}
		return ast.NewBreak(tok)
	case token.KwContinue:
		tok := p.cur
		if !p.expectPeek(token.Semicolon, "expected ';' after 'continue'") {
			return nil
		}
		return ast.NewContinue(tok)
	case token.Ident:
		if p.peekTokenIs(token.Colon) {
			return p.parseVariableDeclarationStmt()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseBlock parses <Block> ::= '{' { <Statement> } '}', with p.cur at
// '{'. On success p.cur is left at the closing '}'.
func (p *Parser) parseBlock() *ast.Block {
	tok := p.cur
	var stmts []ast.Statement

	p.nextToken() // move past '{'
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.EOF) && !p.failed() {
		s := p.parseStatement()
		if p.failed() {
			return nil
		}
		stmts = append(stmts, s)
		p.nextToken()
	}
	if p.failed() {
		return nil
	}
	if !p.curTokenIs(token.RBrace) {
		p.fail(diag.ParseError(p.cur, "expected '}' to close block"))
		return nil
	}
	return ast.NewBlock(tok, stmts)
}

// parseVariableDecl parses
// <VariableDecl> ::= IDENT ':' [ 'const' ] <Type> [ '=' ( <Expr> | <InitList> ) ],
// with p.cur at IDENT.
func (p *Parser) parseVariableDecl() *ast.VariableDeclaration {
	tok := p.cur
	name := p.cur.Lexeme

	if !p.expectPeek(token.Colon, "expected ':' after variable name") {
		return nil
	}
	p.nextToken() // move past ':'

	isConst := false
	if p.curTokenIs(token.KwConst) {
		isConst = true
		p.nextToken()
	}

	typ := p.parseType()
	if p.failed() {
		return nil
	}

	var init ast.Node
	if p.peekTokenIs(token.Assign) {
		p.nextToken() // consume '='
		p.nextToken() // move to initializer start
		if p.curTokenIs(token.LBrace) {
			init = p.parseInitList()
		} else {
			init = p.parseExpr()
		}
		if p.failed() {
			return nil
		}
	}

	return ast.NewVariableDeclaration(tok, name, isConst, typ, init)
}

// parseVariableDeclarationStmt parses <VariableDeclStmt> ::= <VariableDecl> ';'.
func (p *Parser) parseVariableDeclarationStmt() *ast.VariableDeclaration {
	decl := p.parseVariableDecl()
	if p.failed() {
		return nil
	}
	if !p.expectPeek(token.Semicolon, "expected ';' after variable declaration") {
		return nil
	}
	return decl
}

// parseIf parses
// <If> ::= 'if' '(' <Expr> ')' <Block> [ 'else' ( <If> | <Block> ) ],
// with p.cur at 'if'. Bodies must be braced blocks.
func (p *Parser) parseIf() *ast.If {
	tok := p.cur
	if !p.expectPeek(token.LParen, "expected '(' after 'if'") {
		return nil
	}
	p.nextToken() // move to condition start
	cond := p.parseExpr()
	if p.failed() {
		return nil
	}
	if !p.expectPeek(token.RParen, "expected ')' after if condition") {
		return nil
	}
	if !p.expectPeek(token.LBrace, "expected '{' to begin if body") {
		return nil
	}
	then := p.parseBlock()
	if p.failed() {
		return nil
	}

	var elseStmt ast.Statement
	if p.peekTokenIs(token.KwElse) {
		p.nextToken() // cur = 'else'
		if p.peekTokenIs(token.KwIf) {
			p.nextToken() // cur = 'if'
			elseStmt = p.parseIf()
		} else {
			if !p.expectPeek(token.LBrace, "expected '{' to begin else body") {
				return nil
			}
			elseStmt = p.parseBlock()
		}
		if p.failed() {
			return nil
		}
	}

	return ast.NewIf(tok, cond, then, elseStmt)
}

// parseWhile parses <While> ::= 'while' '(' <Expr> ')' <Block>, with
// p.cur at 'while'.
func (p *Parser) parseWhile() *ast.While {
	tok := p.cur
	if !p.expectPeek(token.LParen, "expected '(' after 'while'") {
		return nil
	}
	p.nextToken() // move to condition start
	cond := p.parseExpr()
	if p.failed() {
		return nil
	}
	if !p.expectPeek(token.RParen, "expected ')' after while condition") {
		return nil
	}
	if !p.expectPeek(token.LBrace, "expected '{' to begin while body") {
		return nil
	}
	body := p.parseBlock()
	if p.failed() {
		return nil
	}
	return ast.NewWhile(tok, cond, body)
}

// parseFor parses
// <For> ::= 'for' '(' [ <ForInit> ] ';' [ <Expr> ] ';' [ <Expr> ] ')' <Block>,
// with p.cur at 'for'. <ForInit> uses the same IDENT ':' one-token
// lookahead as statement position to choose a variable declaration
// over a bare expression.
func (p *Parser) parseFor() *ast.For {
	tok := p.cur
	if !p.expectPeek(token.LParen, "expected '(' after 'for'") {
		return nil
	}

	var init ast.Node
	if !p.peekTokenIs(token.Semicolon) {
		p.nextToken() // move to ForInit's first token
		if p.curTokenIs(token.Ident) && p.peekTokenIs(token.Colon) {
			init = p.parseVariableDecl()
		} else {
			init = p.parseExpr()
		}
		if p.failed() {
			return nil
		}
	}
	if !p.expectPeek(token.Semicolon, "expected ';' after for-loop initializer") {
		return nil
	}

	var cond ast.Expression
	if !p.peekTokenIs(token.Semicolon) {
		p.nextToken() // move to condition start
		cond = p.parseExpr()
		if p.failed() {
			return nil
		}
	}
	if !p.expectPeek(token.Semicolon, "expected ';' after for-loop condition") {
		return nil
	}

	var post ast.Expression
	if !p.peekTokenIs(token.RParen) {
		p.nextToken() // move to post-expression start
		post = p.parseExpr()
		if p.failed() {
			return nil
		}
	}
	if !p.expectPeek(token.RParen, "expected ')' after for-loop clauses") {
		return nil
	}

	if !p.expectPeek(token.LBrace, "expected '{' to begin for body") {
		return nil
	}
	body := p.parseBlock()
	if p.failed() {
		return nil
	}

	return ast.NewFor(tok, init, cond, post, body)
}

// parseReturn parses <Return> ::= 'return' [ <Expr> ] ';', with p.cur
// at 'return'.
func (p *Parser) parseReturn() *ast.Return {
	tok := p.cur
	var value ast.Expression
	if !p.peekTokenIs(token.Semicolon) {
		p.nextToken() // move to value expression start
		value = p.parseExpr()
		if p.failed() {
			return nil
		}
	}
	if !p.expectPeek(token.Semicolon, "expected ';' after return statement") {
		return nil
	}
	return ast.NewReturn(tok, value)
}

// parseExprStmt parses <ExprStmt> ::= <Expr> ';'.
func (p *Parser) parseExprStmt() *ast.ExprStmt {
	tok := p.cur
	expr := p.parseExpr()
	if p.failed() {
		return nil
	}
	if !p.expectPeek(token.Semicolon, "expected ';' after expression") {
		return nil
	}
	return ast.NewExprStmt(tok, expr)
}
