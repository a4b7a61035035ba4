// Command coretype is the front-end driver: read a source file, run it
// through the lex/parse/scope pipeline, and print whatever the flags
// ask for.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/malphas-lang/coretype/internal/diag"
	"github.com/malphas-lang/coretype/internal/diagreport"
	"github.com/malphas-lang/coretype/internal/pipeline"
	"github.com/malphas-lang/coretype/internal/prettyprint"
)

var (
	flagTokens   bool
	flagAST      bool
	flagTime     bool
	flagSymTable bool
	flagJSON     bool
	flagNoColor  bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// Diagnostics were already rendered by run; anything else is a
		// usage or flag error cobra handed back silently.
		var d *diag.Diagnostic
		if !errors.As(err, &d) {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			fmt.Fprintln(os.Stderr, root.UsageString())
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "coretype [flags] <source-file>",
		Short:         "front-end compiler for the coretype language",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&flagTokens, "tokens", false, "print every token after lexing")
	flags.BoolVar(&flagAST, "ast", false, "print the parsed AST")
	flags.BoolVar(&flagTime, "time", false, "print per-phase timings")
	flags.BoolVar(&flagSymTable, "sym-table", false, "print the populated global scope")
	flags.BoolVar(&flagJSON, "json", false, "emit the --tokens dump as JSON instead of text")
	flags.BoolVar(&flagNoColor, "no-color", false, "disable ANSI color in diagnostics")

	return cmd
}

func run(path string) error {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	source, err := os.ReadFile(path)
	if err != nil {
		d := diag.IOError(path, err)
		diagreport.Print(os.Stderr, d, "")
		return d
	}

	ctx := pipeline.NewContext(string(source), path)
	timings := make(map[string]time.Duration)

	lexStart := time.Now()
	ctx = pipeline.LexStage{}.Process(ctx)
	timings["lex"] = time.Since(lexStart)
	if ctx.Failed() {
		return fail(ctx, timings)
	}

	if flagTokens {
		if flagJSON {
			data, err := prettyprint.TokensJSON(ctx.Tokens)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		} else {
			fmt.Print(prettyprint.PrintTokens(ctx.Tokens))
		}
	}

	parseStart := time.Now()
	ctx = pipeline.ParseStage{}.Process(ctx)
	timings["parse"] = time.Since(parseStart)
	if ctx.Failed() {
		return fail(ctx, timings)
	}

	if flagAST {
		fmt.Print(prettyprint.PrintProgram(ctx.Program))
	}

	scopeStart := time.Now()
	ctx = pipeline.ScopeStage{}.Process(ctx)
	timings["scope"] = time.Since(scopeStart)
	if ctx.Failed() {
		return fail(ctx, timings)
	}

	if flagSymTable {
		fmt.Print(prettyprint.PrintScope(ctx.Global))
	}

	if flagTime {
		printTimings(timings)
	}

	return nil
}

func fail(ctx *pipeline.Context, timings map[string]time.Duration) error {
	diagreport.Print(os.Stderr, ctx.Diagnostic, ctx.Source)
	if flagTime {
		printTimings(timings)
	}
	return ctx.Diagnostic
}

func printTimings(timings map[string]time.Duration) {
	for _, phase := range []string{"lex", "parse", "scope"} {
		d, ok := timings[phase]
		if !ok {
			continue
		}
		fmt.Printf("%s: %.3fms\n", phase, float64(d.Microseconds())/1000.0)
	}
}
