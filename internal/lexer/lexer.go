// Package lexer turns source text into a token sequence terminated by a
// single EOF token, per the longest-match algorithm described for this
// front-end: literal keywords/punctuation compete with regex-backed
// identifiers and numeric literals, and the longest match at the
// cursor wins.
package lexer

import (
	"github.com/malphas-lang/coretype/internal/container"
	"github.com/malphas-lang/coretype/internal/diag"
	"github.com/malphas-lang/coretype/internal/token"
)

// Lexer holds the cursor state over a read-only source buffer. It is
// single-pass and deterministic: calling NextToken repeatedly drains
// the input in order.
type Lexer struct {
	input  string
	pos    int // byte offset of the next unconsumed byte
	line   int
	column int
}

// New creates a lexer positioned at the start of input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peekByte(offset int) (byte, bool) {
	i := l.pos + offset
	if i >= len(l.input) {
		return 0, false
	}
	return l.input[i], true
}

// advance consumes n bytes from the cursor, updating line/column.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.pos >= len(l.input) {
			return
		}
		if l.input[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		ch := l.input[l.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance(1)
			continue
		}
		break
	}
}

// skipComment consumes a "//" line comment through end-of-line
// (exclusive of the terminating newline) and returns its lexeme.
func (l *Lexer) skipComment() string {
	start := l.pos
	for !l.atEnd() && l.input[l.pos] != '\n' {
		l.advance(1)
	}
	return l.input[start:l.pos]
}

// longestLiteralMatch scans the literal table for the longest spelling
// matching at the cursor, honoring the identifier-boundary rule for
// keyword-shaped literals.
func (l *Lexer) longestLiteralMatch() (token.Kind, string, bool) {
	bestLen := -1
	var bestKind token.Kind
	for _, spec := range token.Specs() {
		lit := spec.Literal()
		if len(lit) <= bestLen {
			continue
		}
		if !hasPrefixAt(l.input, l.pos, lit) {
			continue
		}
		if spec.IsIdentifierLike() {
			if nextByte, ok := l.peekByte(len(lit)); ok && token.IsIdentContinuation(nextByte) {
				continue
			}
		}
		bestLen = len(lit)
		bestKind = spec.Kind()
	}
	if bestLen < 0 {
		return "", "", false
	}
	return bestKind, l.input[l.pos : l.pos+bestLen], true
}

func hasPrefixAt(s string, pos int, prefix string) bool {
	if pos+len(prefix) > len(s) {
		return false
	}
	return s[pos:pos+len(prefix)] == prefix
}

// firstRegexMatch tries each regex-backed kind in declaration order and
// returns the first kind whose pattern matches anchored at the cursor.
func (l *Lexer) firstRegexMatch() (token.Kind, string, bool) {
	rest := l.input[l.pos:]
	for _, spec := range token.RegexSpecs() {
		loc := spec.Pattern().FindStringIndex(rest)
		if loc != nil && loc[0] == 0 {
			return spec.Kind(), rest[:loc[1]], true
		}
	}
	return "", "", false
}

// NextToken produces the next token, skipping whitespace and comments
// first. An UNKNOWN-kind token is the lexer's only failure signal; the
// caller turns it into a diagnostic and stops.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, column := l.line, l.column

	if l.atEnd() {
		return token.Token{Kind: token.EOF, Lexeme: "", Line: line, Column: column}
	}

	if hasPrefixAt(l.input, l.pos, "//") {
		lexeme := l.skipComment()
		return token.Token{Kind: token.COMMENT, Lexeme: lexeme, Line: line, Column: column}
	}

	if kind, lexeme, ok := l.longestLiteralMatch(); ok {
		l.advance(len(lexeme))
		return token.Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
	}

	if kind, lexeme, ok := l.firstRegexMatch(); ok {
		l.advance(len(lexeme))
		return token.Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
	}

	ch := l.input[l.pos]
	l.advance(1)
	return token.Token{Kind: token.UNKNOWN, Lexeme: string(ch), Line: line, Column: column}
}

// Tokenize drains the lexer into a token slice (comments dropped), or
// returns the diagnostic for the first unknown byte encountered. Tokens
// accumulate in a container.Array so the buffer's growth policy lives
// in one place rather than in ad-hoc appends.
func Tokenize(input string) ([]token.Token, *diag.Diagnostic) {
	l := New(input)
	tokens := container.NewArray[token.Token](0)
	for {
		tok := l.NextToken()
		if tok.Kind == token.COMMENT {
			continue
		}
		if tok.Kind == token.UNKNOWN {
			return nil, diag.UnknownToken(tok)
		}
		tokens.Push(tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens.Slice(), nil
}
