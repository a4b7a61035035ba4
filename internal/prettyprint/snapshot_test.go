package prettyprint

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malphas-lang/coretype/internal/lexer"
	"github.com/malphas-lang/coretype/internal/parser"
)

var update = flag.Bool("update", false, "update snapshot files")

func TestPrintProgramSnapshots(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"variable_declaration", "x: i32 = 10;"},
		{"array_initializer", "arr: i32[5] = { 1, 2, 3 };"},
		{"function_declaration", "fn add(a: i32, b: i32) -> i32 { return a + b; }"},
		{"if_else", "fn main() { if (a > b) { return a; } else { return b; } }"},
		{"for_loop", "fn main() { for (i: i32 = 0; i < 3; i++) { continue; } }"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks, d := lexer.Tokenize(tc.input)
			require.Nil(t, d)
			prog, d := parser.Parse(toks)
			require.Nil(t, d)

			actual := PrintProgram(prog)
			snapshotFile := filepath.Join("testdata", tc.name+".snap")

			if *update {
				require.NoError(t, os.WriteFile(snapshotFile, []byte(actual), 0644))
				return
			}

			expected, err := os.ReadFile(snapshotFile)
			require.NoError(t, err, "missing snapshot; run with -update to create it")
			if string(expected) != actual {
				t.Errorf("snapshot mismatch:\n--- expected\n%s\n--- actual\n%s", string(expected), actual)
			}
		})
	}
}
