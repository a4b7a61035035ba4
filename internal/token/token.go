// Package token defines the closed set of lexical token kinds for the
// language, their line/column-annotated representation, and the
// regex-and-literal metadata table the lexer matches against.
package token

import (
	"fmt"
	"regexp"
)

// Kind is the closed enumeration of token kinds the lexer ever emits.
type Kind string

// Token represents a single lexical atom: a kind, its source text, and
// the 1-based line/column of its first byte.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q (%d:%d)", t.Kind, t.Lexeme, t.Line, t.Column)
}

// IsZero reports whether this is the zero Token, used where a parse
// error needs to distinguish "no token" (EOF with no prior token) from
// an actual token.
func (t Token) IsZero() bool {
	return t.Kind == "" && t.Line == 0 && t.Column == 0
}

const (
	// Closing / meta
	EOF     Kind = "EOF"
	UNKNOWN Kind = "UNKNOWN"
	COMMENT Kind = "COMMENT"

	// Keywords
	KwFn       Kind = "FN"
	KwIf       Kind = "IF"
	KwElse     Kind = "ELSE"
	KwWhile    Kind = "WHILE"
	KwFor      Kind = "FOR"
	KwReturn   Kind = "RETURN"
	KwBreak    Kind = "BREAK"
	KwContinue Kind = "CONTINUE"
	KwConst    Kind = "CONST"
	KwTrue     Kind = "TRUE"
	KwFalse    Kind = "FALSE"

	// Primitive type names
	KwI32  Kind = "I32"
	KwI64  Kind = "I64"
	KwF32  Kind = "F32"
	KwF64  Kind = "F64"
	KwBool Kind = "BOOL"

	// Identifiers and literals
	Ident    Kind = "IDENT"
	IntLit   Kind = "INT_LITERAL"
	FloatLit Kind = "FLOAT_LITERAL"

	// Punctuation
	LParen    Kind = "("
	RParen    Kind = ")"
	LBracket  Kind = "["
	RBracket  Kind = "]"
	LBrace    Kind = "{"
	RBrace    Kind = "}"
	Comma     Kind = ","
	Semicolon Kind = ";"
	Colon     Kind = ":"
	Arrow     Kind = "->"

	// Operators
	Plus          Kind = "+"
	Minus         Kind = "-"
	Star          Kind = "*"
	Slash         Kind = "/"
	Percent       Kind = "%"
	Amp           Kind = "&"
	Bang          Kind = "!"
	EqEq          Kind = "=="
	NotEq         Kind = "!="
	Less          Kind = "<"
	Greater       Kind = ">"
	LessEq        Kind = "<="
	GreaterEq     Kind = ">="
	AndAnd        Kind = "&&"
	OrOr          Kind = "||"
	Assign        Kind = "="
	PlusAssign    Kind = "+="
	MinusAssign   Kind = "-="
	StarAssign    Kind = "*="
	SlashAssign   Kind = "/="
	PercentAssign Kind = "%="
	PlusPlus      Kind = "++"
	MinusMinus    Kind = "--"
)

// matchKind tags how a tokenSpec is matched against the cursor.
type matchKind int

const (
	matchLiteral matchKind = iota
	matchRegex
)

// tokenSpec describes one entry of the static token metadata table: a
// token kind plus either an exact spelling (literal) or a compiled
// pattern anchored at the cursor (regex).
type tokenSpec struct {
	kind    Kind
	match   matchKind
	literal string
	pattern *regexp.Regexp
	// identifierLike marks literal specs whose first byte is
	// identifier-starting (letter or underscore); the lexer must
	// additionally check that the byte following the match is not an
	// identifier-continuation byte, so "if" does not match inside
	// "ifoo".
	identifierLike bool
}

// Literals, longest-match candidates. Order does not matter for
// literals; the lexer always picks the longest match among all that
// apply. Multi-character operators are listed alongside their
// single-character prefixes so the longest-match rule naturally
// prefers "==" over "=", "&&" over "&", etc.
var literalSpecs = []tokenSpec{
	{kind: Arrow, literal: "->"},
	{kind: PlusPlus, literal: "++"},
	{kind: MinusMinus, literal: "--"},
	{kind: PlusAssign, literal: "+="},
	{kind: MinusAssign, literal: "-="},
	{kind: StarAssign, literal: "*="},
	{kind: SlashAssign, literal: "/="},
	{kind: PercentAssign, literal: "%="},
	{kind: EqEq, literal: "=="},
	{kind: NotEq, literal: "!="},
	{kind: LessEq, literal: "<="},
	{kind: GreaterEq, literal: ">="},
	{kind: AndAnd, literal: "&&"},
	{kind: OrOr, literal: "||"},
	{kind: LParen, literal: "("},
	{kind: RParen, literal: ")"},
	{kind: LBracket, literal: "["},
	{kind: RBracket, literal: "]"},
	{kind: LBrace, literal: "{"},
	{kind: RBrace, literal: "}"},
	{kind: Comma, literal: ","},
	{kind: Semicolon, literal: ";"},
	{kind: Colon, literal: ":"},
	{kind: Plus, literal: "+"},
	{kind: Minus, literal: "-"},
	{kind: Star, literal: "*"},
	{kind: Slash, literal: "/"},
	{kind: Percent, literal: "%"},
	{kind: Amp, literal: "&"},
	{kind: Bang, literal: "!"},
	{kind: Less, literal: "<"},
	{kind: Greater, literal: ">"},
	{kind: Assign, literal: "="},

	// Keywords are literals too, but identifier-like: they must not
	// match as a prefix of a longer identifier.
	{kind: KwFn, literal: "fn", identifierLike: true},
	{kind: KwIf, literal: "if", identifierLike: true},
	{kind: KwElse, literal: "else", identifierLike: true},
	{kind: KwWhile, literal: "while", identifierLike: true},
	{kind: KwFor, literal: "for", identifierLike: true},
	{kind: KwReturn, literal: "return", identifierLike: true},
	{kind: KwBreak, literal: "break", identifierLike: true},
	{kind: KwContinue, literal: "continue", identifierLike: true},
	{kind: KwConst, literal: "const", identifierLike: true},
	{kind: KwTrue, literal: "true", identifierLike: true},
	{kind: KwFalse, literal: "false", identifierLike: true},
	{kind: KwI32, literal: "i32", identifierLike: true},
	{kind: KwI64, literal: "i64", identifierLike: true},
	{kind: KwF32, literal: "f32", identifierLike: true},
	{kind: KwF64, literal: "f64", identifierLike: true},
	{kind: KwBool, literal: "bool", identifierLike: true},
}

// Regex-backed kinds, tried in this declaration order; the first
// pattern that matches at the cursor wins, and its match length is the
// lexeme length.
var regexSpecs = []tokenSpec{
	{kind: FloatLit, match: matchRegex, pattern: regexp.MustCompile(`\A[0-9]+\.[0-9]+`)},
	{kind: IntLit, match: matchRegex, pattern: regexp.MustCompile(`\A[0-9]+`)},
	{kind: Ident, match: matchRegex, pattern: regexp.MustCompile(`\A[A-Za-z_][A-Za-z0-9_]*`)},
}

// Specs returns the literal table, in the declaration order above.
func Specs() []tokenSpec { return literalSpecs }

// RegexSpecs returns the regex table, in the declaration order above.
func RegexSpecs() []tokenSpec { return regexSpecs }

func (s tokenSpec) Kind() Kind              { return s.kind }
func (s tokenSpec) IsLiteral() bool         { return s.match == matchLiteral }
func (s tokenSpec) Literal() string         { return s.literal }
func (s tokenSpec) IsIdentifierLike() bool  { return s.identifierLike }
func (s tokenSpec) Pattern() *regexp.Regexp { return s.pattern }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// IsIdentStart reports whether b can start an identifier or keyword.
func IsIdentStart(b byte) bool { return isIdentStart(b) }

// IsIdentContinuation reports whether b can continue an identifier.
func IsIdentContinuation(b byte) bool { return isIdentCont(b) }
