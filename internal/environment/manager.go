package environment

import (
	"fmt"

	"github.com/boop-lang/boop/internal/reporter"
	"github.com/boop-lang/boop/internal/token"
	"github.com/boop-lang/boop/internal/value"
)

// Manager owns the "current environment" cursor and provides the
// define/assign/lookup operations plus the scope push/snapshot/restore
// operations the evaluator needs for blocks, calls, and loops (spec.md
// §4.2). Its zero value is not usable; construct with NewManager.
type Manager struct {
	current *Environment
	global  *Environment
	trace   bool
	strict  bool
	rep     *reporter.Reporter
}

// NewManager creates a Manager rooted at a fresh global environment.
func NewManager(rep *reporter.Reporter) *Manager {
	g := New()
	return &Manager{current: g, global: g, rep: rep}
}

// SetTrace enables -trace-scopes-style diagnostics on CreateNewEnv and
// DiscardEnvsTill, ported from the `caller` diagnostic parameter the
// original BoopInterpreter's EnvironmentManager took on those two calls.
func (m *Manager) SetTrace(on bool) { m.trace = on }

// SetStrict toggles Config.StrictUninitialized behavior for subsequent
// Get calls.
func (m *Manager) SetStrict(on bool) { m.strict = on }

// Global returns the root environment.
func (m *Manager) Global() *Environment { return m.global }

// Define inserts into the current scope.
func (m *Manager) Define(name string, v value.Value) { m.current.Define(name, v) }

// Assign walks outward from the current scope; undefined names raise a
// RuntimeError.
func (m *Manager) Assign(tok token.Token, v value.Value) { m.current.Assign(tok, v) }

// Get walks outward from the current scope; never-defined names raise a
// RuntimeError, as does reading a declared-but-unassigned binding when
// Config.StrictUninitialized is on.
func (m *Manager) Get(tok token.Token) value.Value { return m.current.Get(tok, m.strict) }

// DefineDeclaredOnly records a `var x;` declaration with no initializer in
// the current scope (see Environment.DefineDeclaredOnly).
func (m *Manager) DefineDeclaredOnly(name string) { m.current.DefineDeclaredOnly(name) }

// CurrentEnv returns a handle to the current scope, used to snapshot for
// function closures and for scope restoration.
func (m *Manager) CurrentEnv() *Environment { return m.current }

// SetCurrentEnv restores a previously captured snapshot.
func (m *Manager) SetCurrentEnv(env *Environment) { m.current = env }

// CreateNewEnv pushes a new child scope of the current one and makes it
// current. reason is an optional diagnostic label (e.g. "block", "call",
// "for-init"), logged only when tracing is enabled.
func (m *Manager) CreateNewEnv(reason string) {
	m.current = &Environment{parent: m.current, values: make(map[string]value.Value)}
	m.traceln("create_new_env", reason)
}

// DiscardEnvsTill pops scopes until target is current (or the global
// environment is reached), restoring the caller's environment exactly on
// every normal or exceptional exit path — callers invoke this from a
// defer so it still runs when a RuntimeError panic unwinds through.
func (m *Manager) DiscardEnvsTill(target *Environment, reason string) {
	for m.current != target && m.current != m.global {
		m.current = m.current.parent
	}
	m.traceln("discard_envs_till", reason)
}

func (m *Manager) traceln(op, reason string) {
	if !m.trace || m.rep == nil {
		return
	}
	fmt.Fprintf(fmtWriter{m.rep}, "[trace] %s: %s (depth=%d)\n", op, reason, m.depth())
}

func (m *Manager) depth() int {
	n := 0
	for e := m.current; e != nil; e = e.parent {
		n++
	}
	return n
}

// fmtWriter adapts the reporter's notion of "output" for trace lines,
// which are debug noise rather than structured diagnostics and so bypass
// Reporter's Record collection entirely.
type fmtWriter struct{ rep *reporter.Reporter }

func (w fmtWriter) Write(p []byte) (int, error) { return w.rep.TraceWrite(p) }
