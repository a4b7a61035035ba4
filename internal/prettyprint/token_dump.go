package prettyprint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/malphas-lang/coretype/internal/token"
)

// PrintTokens renders one line per token: kind, lexeme, line, column,
// for the --tokens flag.
func PrintTokens(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&b, "%-16s %-12q line=%d col=%d\n", tok.Kind, tok.Lexeme, tok.Line, tok.Column)
	}
	return b.String()
}

// tokenJSON mirrors the stable token JSON dump shape:
// [ { "type": NAME, "value": TEXT, "line": N, "col": N }, ... ].
type tokenJSON struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Line  int    `json:"line"`
	Col   int    `json:"col"`
}

// TokensJSON renders tokens as the stable JSON dump used by the
// --json extension.
func TokensJSON(tokens []token.Token) ([]byte, error) {
	out := make([]tokenJSON, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenJSON{Type: string(tok.Kind), Value: tok.Lexeme, Line: tok.Line, Col: tok.Column}
	}
	return json.MarshalIndent(out, "", "  ")
}
