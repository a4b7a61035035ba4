package diagreport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/coretype/internal/diag"
	"github.com/malphas-lang/coretype/internal/token"
)

func TestPrintDefaultCaretAtOffendingColumn(t *testing.T) {
	source := "x: i32 = 1 $ 2;\n"
	tok := token.Token{Kind: token.UNKNOWN, Lexeme: "$", Line: 1, Column: 12}
	d := diag.UnknownToken(tok)

	var buf bytes.Buffer
	Print(&buf, d, source)

	out := buf.String()
	assert.Contains(t, out, "error:")
	assert.Contains(t, out, "1:12")
	lines := splitLines(out)
	assert.GreaterOrEqual(t, len(lines), 3)
	caretLine := lines[len(lines)-1]
	assert.Contains(t, caretLine, "^")
	// Column 12 means 11 pad characters after the "  | " gutter.
	pad := strings.TrimPrefix(caretLine, "  | ")
	assert.Equal(t, 11, len(pad)-len(strings.TrimLeft(pad, " ")))
}

func TestPrintUnderlinePrevPointsPastPreviousToken(t *testing.T) {
	source := "fn f() {\n  return 1\n}\n"
	prev := token.Token{Kind: token.IntLit, Lexeme: "1", Line: 2, Column: 10}
	missing := token.Token{Kind: token.RBrace, Lexeme: "}", Line: 3, Column: 1}
	d := diag.ParseErrorAtPrev(missing, prev, "expected ';' after return statement")

	var buf bytes.Buffer
	Print(&buf, d, source)

	out := buf.String()
	assert.True(t, d.UnderlinePrev)
	assert.Contains(t, out, "return 1")
	// "1" ends at column 10 of line 2, so the caret sits at column 11:
	// 10 pad characters after the "  | " gutter, right below line 2.
	lines := splitLines(out)
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "2 |   return 1", lines[2])
	pad := strings.TrimPrefix(lines[3], "  | ")
	assert.Equal(t, 10, len(pad)-len(strings.TrimLeft(pad, " ")))
}

func TestPrintSingleLineForIOError(t *testing.T) {
	d := diag.IOError("missing.src", assertErr{})
	var buf bytes.Buffer
	Print(&buf, d, "")
	out := buf.String()
	assert.Contains(t, out, "cannot read missing.src")
	assert.Len(t, splitLines(out), 1)
}

type assertErr struct{}

func (assertErr) Error() string { return "no such file" }
