// Package diagreport renders a *diag.Diagnostic as the bold-header /
// token-location / source-snippet report described for this front-end.
// Snippet lines come from the source text handed to Print when it is
// non-empty; otherwise the file is re-read at print time. Either way
// every line of the source is held in memory while printing, not just
// the lines the snippet shows.
package diagreport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/malphas-lang/coretype/internal/diag"
)

// Print writes d's full report to w. source, if non-empty, is used
// directly instead of re-reading File (tests pass source text that was
// never written to disk this way).
func Print(w io.Writer, d *diag.Diagnostic, source string) {
	bold := color.New(color.Bold, color.FgRed)
	fmt.Fprintf(w, "%s %s\n", bold.Sprint("error:"), d.Message)

	if !d.Token.IsZero() {
		printLocation(w, d)
	}

	if d.Token.IsZero() {
		return
	}

	lines, err := sourceLines(d.File, source)
	if err != nil {
		return
	}
	printSnippet(w, d, lines)
}

func printLocation(w io.Writer, d *diag.Diagnostic) {
	lexemePart := ""
	if d.Token.Lexeme != "" {
		lexemePart = fmt.Sprintf(" %q", d.Token.Lexeme)
	}
	loc := fmt.Sprintf("%d:%d", d.Token.Line, d.Token.Column)
	if d.File != "" {
		loc = d.File + ":" + loc
	}
	fmt.Fprintf(w, "  at %s%s (%s)\n", d.Token.Kind, lexemePart, loc)
}

// sourceLines returns the split lines of the diagnostic's source,
// preferring an explicitly supplied buffer over reading path from
// disk.
func sourceLines(path, source string) ([]string, error) {
	if source != "" {
		return splitLines(source), nil
	}
	if path == "" {
		return nil, fmt.Errorf("no source available")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func lineAt(lines []string, n int) string {
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// printSnippet prints the gutter-and-caret view: default behavior
// points the caret at the offending token's own
// column; when UnderlinePrev is set and the previous token is on an
// earlier line, the caret instead points one column past the end of
// the previous token's lexeme on that earlier line, and the current
// line is printed for context with no caret under it.
func printSnippet(w io.Writer, d *diag.Diagnostic, lines []string) {
	if d.UnderlinePrev {
		printGutteredLine(w, lines, d.PrevToken.Line, gutterWidth(d.Token.Line, d.PrevToken.Line))
		printCaretLine(w, lineAt(lines, d.PrevToken.Line), d.PrevToken.Column+len(d.PrevToken.Lexeme), gutterWidth(d.Token.Line, d.PrevToken.Line))
		if d.Token.Line != d.PrevToken.Line {
			printGutteredLine(w, lines, d.Token.Line, gutterWidth(d.Token.Line, d.PrevToken.Line))
		}
		return
	}
	width := gutterWidth(d.Token.Line, d.Token.Line)
	printGutteredLine(w, lines, d.Token.Line, width)
	printCaretLine(w, lineAt(lines, d.Token.Line), d.Token.Column, width)
}

func gutterWidth(a, b int) int {
	max := a
	if b > max {
		max = b
	}
	width := 1
	for max >= 10 {
		max /= 10
		width++
	}
	return width
}

func printGutteredLine(w io.Writer, lines []string, lineNum, width int) {
	fmt.Fprintf(w, "%*d | %s\n", width, lineNum, lineAt(lines, lineNum))
}

// printCaretLine prints the gutter padding followed by a caret at
// column (1-based), clamped to [1, len(line)+1]. Leading bytes of line
// up to the caret column are reproduced verbatim (tabs kept as tabs)
// so the caret lines up under a terminal rendering the same line.
func printCaretLine(w io.Writer, line string, column, width int) {
	if column < 1 {
		column = 1
	}
	if column > len(line)+1 {
		column = len(line) + 1
	}
	pad := make([]byte, 0, column-1)
	for i := 0; i < column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			pad = append(pad, '\t')
		} else {
			pad = append(pad, ' ')
		}
	}
	for len(pad) < column-1 {
		pad = append(pad, ' ')
	}
	fmt.Fprintf(w, "%s | %s%s\n", strings.Repeat(" ", width), string(pad), color.New(color.FgRed, color.Bold).Sprint("^"))
}
