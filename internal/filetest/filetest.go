// Package filetest runs the golden end-to-end scenarios from spec.md §8:
// a small Boop program paired with its expected stdout. Grounded on
// mna-nenuphar/internal/filetest's golden-file approach, adapted from
// per-file `.want` fixtures to a single `scenarios.yaml` table since
// Boop's golden corpus is small enough to read as one file rather than a
// directory of paired sources.
package filetest

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boop-lang/boop/internal/interp"
	"github.com/boop-lang/boop/internal/parser"
	"github.com/boop-lang/boop/internal/reporter"
	"github.com/boop-lang/boop/internal/scanner"
)

// Scenario is one golden end-to-end case: a Boop source program and its
// expected stdout from running it to completion.
type Scenario struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Want   string `yaml:"want"`
}

// LoadScenarios reads the scenario table from a YAML fixture file.
func LoadScenarios(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(raw, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

// Run executes sc.Source end to end (scan, parse, evaluate) and returns
// the interpreter's combined stdout/diagnostic output, mirroring the
// teacher's collect-then-flush ordering: `print` output is interleaved as
// it happens, diagnostics are appended once the run ends.
func Run(sc Scenario) string {
	var buf bytes.Buffer
	rep := reporter.New(&buf)

	toks := scanner.New([]byte(sc.Source), rep).Scan()
	prog := parser.New(toks, rep).Parse()
	if !rep.HasError() {
		interp.New(rep, interp.Config{}).Run(prog)
	}
	rep.Flush()

	return buf.String()
}
