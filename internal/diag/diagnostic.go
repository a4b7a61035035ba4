// Package diag defines the front-end's error taxonomy: one Diagnostic
// value per failing phase, carrying everything the snippet printer in
// internal/diagreport needs to reconstruct source context.
package diag

import (
	"fmt"

	"github.com/malphas-lang/coretype/internal/token"
)

// Kind identifies which phase raised a Diagnostic, per the error
// taxonomy table: IO failure, unknown token, parse error, or duplicate
// symbol.
type Kind int

const (
	KindIO Kind = iota
	KindUnknownToken
	KindParse
	KindDuplicateSymbol
)

// Diagnostic is the single-value error result every phase returns
// instead of panicking or partially succeeding. Only the first
// Diagnostic of a run is ever produced; later phases do not execute.
type Diagnostic struct {
	Kind Kind
	// Message is the human-readable description, already formatted
	// (the taxonomy's payload fields are folded in at construction
	// time so the printer doesn't need phase-specific formatting
	// logic).
	Message string
	// File is the source path, empty for in-memory sources (e.g. in
	// tests).
	File string
	// Token is the offending token, for Kind values that have one.
	// The zero Token (IsZero() true) means "no token" (e.g. an IO
	// failure, or EOF with nothing previously consumed).
	Token token.Token
	// PrevToken is the token immediately before Token, used by
	// UnderlinePrev.
	PrevToken token.Token
	// UnderlinePrev requests that the printer draw the caret just
	// past the end of PrevToken's lexeme on PrevToken's line, rather
	// than at Token's own position — used when the missing piece is a
	// terminator (';' or '}') that should have appeared right after
	// what came before it.
	UnderlinePrev bool
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// IOError reports a failure to read the source file.
func IOError(path string, cause error) *Diagnostic {
	return &Diagnostic{
		Kind:    KindIO,
		Message: fmt.Sprintf("cannot read %s: %s", path, cause),
		File:    path,
	}
}

// UnknownToken reports a byte outside the accepted alphabet.
func UnknownToken(tok token.Token) *Diagnostic {
	return &Diagnostic{
		Kind:    KindUnknownToken,
		Message: fmt.Sprintf("unexpected character %q", tok.Lexeme),
		Token:   tok,
	}
}

// ParseError reports a parser failure at tok, with message describing
// what was expected.
func ParseError(tok token.Token, message string) *Diagnostic {
	return &Diagnostic{
		Kind:    KindParse,
		Message: message,
		Token:   tok,
	}
}

// ParseErrorAtPrev reports a parser failure that should be pointed at
// the end of prev's lexeme rather than at tok (typically because tok
// is on a later line than where the user should have typed something,
// e.g. a missing semicolon or closing brace).
func ParseErrorAtPrev(tok, prev token.Token, message string) *Diagnostic {
	return &Diagnostic{
		Kind:          KindParse,
		Message:       message,
		Token:         tok,
		PrevToken:     prev,
		UnderlinePrev: prev.Line < tok.Line,
	}
}

// DuplicateSymbol reports a redefinition of name at tok. kind is
// "function" or "variable".
func DuplicateSymbol(kind, name string, tok token.Token) *Diagnostic {
	return &Diagnostic{
		Kind:    KindDuplicateSymbol,
		Message: fmt.Sprintf("duplicate %s: %q", kind, name),
		Token:   tok,
	}
}
