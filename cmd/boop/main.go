// Command boop is the CLI driver for the tree-walking interpreter: a thin
// flag-based entry point exposing the same tokenize/parse/evaluate/run
// subcommands as the teacher's codecrafters harness, routed through
// internal/scanner, internal/parser, and internal/interp.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/fatih/color"

	"github.com/boop-lang/boop/internal/interp"
	"github.com/boop-lang/boop/internal/parser"
	"github.com/boop-lang/boop/internal/reporter"
	"github.com/boop-lang/boop/internal/scanner"
	"github.com/boop-lang/boop/internal/value"
)

// envOverrides holds the BOOP_*-prefixed environment variable overrides
// layered on top of the flag-constructed Config, following the
// env-var-to-struct pattern `mna-nenuphar`'s `mainer` uses for its host
// config (SPEC_FULL.md §2.3/§3).
type envOverrides struct {
	MaxRuntimeErr int  `env:"BOOP_MAX_RUNTIME_ERR" envDefault:"0"`
	Color         bool `env:"BOOP_COLOR" envDefault:"true"`
	Strict        bool `env:"BOOP_STRICT_UNINITIALIZED" envDefault:"false"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("boop", flag.ContinueOnError)
	traceScopes := fs.Bool("trace-scopes", false, "log environment push/pop diagnostics")
	strictUninit := fs.Bool("strict-uninitialized", false, "reading a declared-but-unassigned var is a runtime error")
	maxErr := fs.Int("max-runtime-err", 0, "abort after this many recovered runtime errors (0 = spec default of 20)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: boop [flags] [tokenize | parse | evaluate | run] <filename>")
		return 1
	}
	command, filename := rest[0], rest[1]

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "boop: %v\n", err)
		return 1
	}

	var overrides envOverrides
	_ = env.Parse(&overrides) // malformed BOOP_* values fall back to CLI flags/defaults
	if _, set := os.LookupEnv("BOOP_COLOR"); set {
		color.NoColor = !overrides.Color
	}

	cfg := interp.Config{
		MaxRuntimeErr:       *maxErr,
		StrictUninitialized: *strictUninit || overrides.Strict,
		TraceScopes:         *traceScopes,
	}
	if overrides.MaxRuntimeErr > 0 {
		cfg.MaxRuntimeErr = overrides.MaxRuntimeErr
	}

	rep := reporter.New(os.Stderr)

	switch command {
	case "tokenize":
		return runTokenize(rep, src)
	case "parse":
		return runParse(rep, src)
	case "evaluate":
		return runEvaluate(rep, cfg, src)
	case "run":
		return runProgram(rep, cfg, src, filename)
	default:
		fmt.Fprintf(os.Stderr, "boop: unknown command %q\n", command)
		return 1
	}
}

func runTokenize(rep *reporter.Reporter, src []byte) int {
	toks := scanner.New(src, rep).Scan()
	for _, t := range toks {
		fmt.Println(t.String())
	}
	return flush(rep, 65, 0)
}

func runParse(rep *reporter.Reporter, src []byte) int {
	toks := scanner.New(src, rep).Scan()
	prog := parser.New(toks, rep).Parse()
	for _, s := range prog.Stmts {
		fmt.Println(s.String())
	}
	return flush(rep, 65, 0)
}

// runEvaluate parses and evaluates a single expression, matching the
// teacher's own "evaluate" subcommand shape (SPEC_FULL.md §2.1).
func runEvaluate(rep *reporter.Reporter, cfg interp.Config, src []byte) int {
	toks := scanner.New(src, rep).Scan()
	p := parser.New(toks, rep)
	expr, ok := p.ParseExpression()
	if !ok || rep.HasError() {
		return flush(rep, 65, 0)
	}

	it := interp.New(rep, cfg)
	result, runtimeErr := it.RunExpression(expr)
	if runtimeErr {
		return flush(rep, 0, 70)
	}
	fmt.Println(value.Stringify(result))
	return flush(rep, 0, 0)
}

func runProgram(rep *reporter.Reporter, cfg interp.Config, src []byte, filename string) int {
	toks := scanner.New(src, rep).Scan()
	prog := parser.New(toks, rep).Parse()
	if rep.HasError() {
		return flush(rep, 65, 0)
	}

	it := interp.New(rep, cfg)
	it.Run(prog)
	code := flush(rep, 0, 70)
	rep.Summary(filename)
	return code
}

// flush prints collected diagnostics and picks the process exit code:
// scanOrParseCode when any diagnostic was recorded before the runtime
// phase ran, runtimeCode otherwise, matching the 0/65/70 convention
// `sam-decook-lox`'s own `main.go` uses (SPEC_FULL.md §2.1).
func flush(rep *reporter.Reporter, scanOrParseCode, runtimeCode int) int {
	rep.Flush()
	if !rep.HasError() {
		return 0
	}
	if scanOrParseCode != 0 {
		return scanOrParseCode
	}
	return runtimeCode
}
