package prettyprint

import (
	"fmt"
	"strings"

	"github.com/malphas-lang/coretype/internal/symbols"
	"github.com/malphas-lang/coretype/internal/types"
)

// PrintScope renders the global scope's symbols for the --sym-table
// flag: functions first, then variables, each as "name: type" with the
// structure of composite types expanded beneath the name line.
func PrintScope(scope *symbols.Scope) string {
	var b strings.Builder

	b.WriteString("functions:\n")
	for _, fn := range scope.Functions() {
		writeSymbol(&b, fn)
	}

	b.WriteString("variables:\n")
	for _, v := range scope.Variables() {
		writeSymbol(&b, v)
	}

	return b.String()
}

func writeSymbol(b *strings.Builder, sym symbols.Symbol) {
	constTag := ""
	if sym.IsConstant {
		constTag = "const "
	}
	fmt.Fprintf(b, "  %s: %s%s\n", sym.Name, constTag, sym.Type.String())
	if isComposite(sym.Type) {
		writeTypeTree(b, sym.Type, 2)
	}
}

func isComposite(t types.Type) bool {
	switch t.(type) {
	case types.Pointer, types.Array, types.Function:
		return true
	}
	return false
}

// writeTypeTree renders t one variant per line, children indented under
// their parent.
func writeTypeTree(b *strings.Builder, t types.Type, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := t.(type) {
	case types.Primitive:
		fmt.Fprintf(b, "%sPrimitive %s\n", indent, v.Name)
	case types.Pointer:
		fmt.Fprintf(b, "%sPointer\n", indent)
		writeTypeTree(b, v.Of, depth+1)
	case types.Array:
		if v.Size > 0 {
			fmt.Fprintf(b, "%sArray size=%d\n", indent, v.Size)
		} else {
			fmt.Fprintf(b, "%sArray\n", indent)
		}
		writeTypeTree(b, v.Of, depth+1)
	case types.Function:
		fmt.Fprintf(b, "%sFunction\n", indent)
		for _, p := range v.Params {
			writeTypeTree(b, p, depth+1)
		}
		if v.Return != nil {
			fmt.Fprintf(b, "%sreturns\n", indent)
			writeTypeTree(b, v.Return, depth+1)
		}
	}
}
