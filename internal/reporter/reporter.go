// Package reporter collects and prints diagnostics from every phase of the
// pipeline: scanning, parsing, and evaluation.
package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Record is a single structured diagnostic.
type Record struct {
	Line    int
	Where   string
	Message string
}

func (r Record) String() string {
	if r.Where == "" {
		return fmt.Sprintf("[Line %d] Error: %s", r.Line, r.Message)
	}
	return fmt.Sprintf("[Line %d] Error at '%s': %s", r.Line, r.Where, r.Message)
}

// Reporter accumulates diagnostics in encounter order and exposes whether
// any have been recorded. It collects-then-flushes rather than streaming,
// so that colorized error output never interleaves with a program's own
// buffered stdout `print` statements in a test's captured output.
type Reporter struct {
	out      io.Writer
	errs     []Record
	hasError bool
}

// New creates a Reporter that writes flushed diagnostics to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Error records a diagnostic at the given line with no specific token.
func (r *Reporter) Error(line int, message string) {
	r.add(Record{Line: line, Message: message})
}

// ErrorAt records a diagnostic anchored to a specific lexeme.
func (r *Reporter) ErrorAt(line int, where, message string) {
	r.add(Record{Line: line, Where: where, Message: message})
}

func (r *Reporter) add(rec Record) {
	r.errs = append(r.errs, rec)
	r.hasError = true
}

// HasError reports whether any diagnostic has been recorded since the last
// Clear.
func (r *Reporter) HasError() bool {
	return r.hasError
}

// Records returns the diagnostics recorded so far, in encounter order.
func (r *Reporter) Records() []Record {
	return append([]Record(nil), r.errs...)
}

// Clear discards all recorded diagnostics and resets HasError.
func (r *Reporter) Clear() {
	r.errs = r.errs[:0]
	r.hasError = false
}

// Flush prints every recorded diagnostic to the configured writer,
// colorized in red unless color.NoColor is set (fatih/color sets it at
// start-up when output is not a terminal, so it degrades to plain text,
// e.g. when redirected to a file; cmd/boop overrides it only when
// BOOP_COLOR is set).
func (r *Reporter) Flush() {
	red := color.New(color.FgRed, color.Bold)
	for _, rec := range r.errs {
		red.Fprintln(r.out, rec.String())
	}
}

// Print writes a `print`-statement result straight to the underlying
// writer, bypassing Record collection entirely: program output and
// diagnostics are different streams that happen to share a destination
// in the CLI driver, and only diagnostics participate in collect-then-flush.
func (r *Reporter) Print(s string) {
	fmt.Fprintln(r.out, s)
}

// TraceWrite writes raw debug-trace bytes straight to the underlying
// writer, bypassing Record collection; used by the environment manager's
// -trace-scopes diagnostics, which are debug noise rather than structured
// error records.
func (r *Reporter) TraceWrite(p []byte) (int, error) {
	return r.out.Write(p)
}

// Summary prints a single green "ok" or red "failed" line, matching the
// teacher's own pass/fail test-harness convention.
func (r *Reporter) Summary(label string) {
	if r.hasError {
		fmt.Fprintf(r.out, "%s: %s\n", label, color.RedString("failed"))
		return
	}
	fmt.Fprintf(r.out, "%s: %s\n", label, color.GreenString("ok"))
}
