// Package parser implements the hand-written recursive-descent parser:
// one entry point, Parse, that consumes a token slice and returns the
// Program root or the first diagnostic encountered. There is no
// panic-mode recovery — the parser stops at the first error.
package parser

import (
	"github.com/malphas-lang/coretype/internal/ast"
	"github.com/malphas-lang/coretype/internal/diag"
	"github.com/malphas-lang/coretype/internal/token"
)

// Parser holds the cursor over a fixed token slice plus the first
// diagnostic raised, if any.
type Parser struct {
	tokens []token.Token
	pos    int // index in tokens of the token after peek

	cur  token.Token
	peek token.Token

	err *diag.Diagnostic
}

// New constructs a Parser with cur at the first token and peek at the
// second.
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse tokenizes nothing itself; it parses an already-lexed token
// slice into a Program, or returns the first diagnostic raised.
func Parse(tokens []token.Token) (*ast.Program, *diag.Diagnostic) {
	p := New(tokens)
	prog := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	if p.pos < len(p.tokens) {
		p.peek = p.tokens[p.pos]
		p.pos++
	} else {
		p.peek = token.Token{Kind: token.EOF}
	}
}

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.peek.Kind == k }

// expectPeek advances past peek if it has kind k, otherwise records a
// diagnostic at peek and returns false. When peek sits on a later line
// than cur, the diagnostic asks for the caret just past cur instead,
// since the missing token was expected right after it.
func (p *Parser) expectPeek(k token.Kind, message string) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.fail(diag.ParseErrorAtPrev(p.peek, p.cur, message))
	return false
}

func (p *Parser) fail(d *diag.Diagnostic) {
	if p.err == nil {
		p.err = d
	}
}

func (p *Parser) failed() bool { return p.err != nil }

// parseProgram parses <Program> ::= { <Declaration> }, requiring the
// entire token stream to be consumed.
func (p *Parser) parseProgram() *ast.Program {
	var decls []ast.Decl
	for !p.curTokenIs(token.EOF) && !p.failed() {
		d := p.parseDeclaration()
		if p.failed() {
			return nil
		}
		decls = append(decls, d)
		p.nextToken()
	}
	if p.failed() {
		return nil
	}
	if !p.curTokenIs(token.EOF) {
		p.fail(diag.ParseError(p.cur, "expected end of input"))
		return nil
	}
	return ast.NewProgram(decls)
}

// parseDeclaration parses <Declaration> ::= <VariableDeclStmt> | <FunctionDecl>.
func (p *Parser) parseDeclaration() ast.Decl {
	switch {
	case p.curTokenIs(token.KwFn):
		return p.parseFunctionDeclaration()
	case p.curTokenIs(token.Ident):
		return p.parseVariableDeclarationStmt()
	default:
		p.fail(diag.ParseError(p.cur, "expected a declaration"))
		return nil
	}
}

// parseFunctionDeclaration parses
// <FunctionDecl> ::= 'fn' IDENT '(' [ <ParamList> ] ')' [ '->' <Type> ] <Block>.
func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	tok := p.cur // 'fn'
	if !p.expectPeek(token.Ident, "expected function name after 'fn'") {
		return nil
	}
	name := p.cur.Lexeme

	if !p.expectPeek(token.LParen, "expected '(' after function name") {
		return nil
	}

	var params []*ast.Param
	if !p.peekTokenIs(token.RParen) {
		params = p.parseParamList()
		if p.failed() {
			return nil
		}
	} else {
		p.nextToken() // consume ')'
	}

	var retType *ast.TypeExpr
	if p.peekTokenIs(token.Arrow) {
		p.nextToken() // consume '->'
		p.nextToken() // move to return type
		retType = p.parseType()
		if p.failed() {
			return nil
		}
	}

	if !p.expectPeek(token.LBrace, "expected '{' to begin function body") {
		return nil
	}
	body := p.parseBlock()
	if p.failed() {
		return nil
	}

	return ast.NewFunctionDeclaration(tok, name, params, retType, body)
}

// parseParamList parses <ParamList> ::= <Param> { ',' <Param> }.
// Called with p.peek at the first param's IDENT.
func (p *Parser) parseParamList() []*ast.Param {
	var params []*ast.Param

	p.nextToken() // move to first param's IDENT
	first := p.parseParam()
	if p.failed() {
		return nil
	}
	params = append(params, first)

	for p.peekTokenIs(token.Comma) {
		p.nextToken() // consume ','
		p.nextToken() // move to next param's IDENT
		param := p.parseParam()
		if p.failed() {
			return nil
		}
		params = append(params, param)
	}

	if !p.expectPeek(token.RParen, "expected ')' after parameter list") {
		return nil
	}
	return params
}

// parseParam parses <Param> ::= IDENT ':' <Type>, with p.cur at IDENT.
func (p *Parser) parseParam() *ast.Param {
	if !p.curTokenIs(token.Ident) {
		p.fail(diag.ParseError(p.cur, "expected parameter name"))
		return nil
	}
	tok := p.cur
	name := p.cur.Lexeme

	if !p.expectPeek(token.Colon, "expected ':' after parameter name") {
		return nil
	}
	p.nextToken() // move to type
	typ := p.parseType()
	if p.failed() {
		return nil
	}
	return ast.NewParam(tok, name, typ)
}
