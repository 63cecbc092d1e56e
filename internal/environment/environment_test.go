package environment_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boop-lang/boop/internal/environment"
	"github.com/boop-lang/boop/internal/reporter"
	"github.com/boop-lang/boop/internal/token"
	"github.com/boop-lang/boop/internal/value"
)

func nameTok(name string) token.Token { return token.Token{Kind: token.Identifier, Lexeme: name, Line: 1} }

func TestManagerDefineAndGet(t *testing.T) {
	mgr := environment.NewManager(reporter.New(&bytes.Buffer{}))
	mgr.Define("x", value.Number(1))
	assert.Equal(t, value.Number(1), mgr.Get(nameTok("x")))
}

func TestManagerGetUndefinedPanics(t *testing.T) {
	mgr := environment.NewManager(reporter.New(&bytes.Buffer{}))
	assert.Panics(t, func() { mgr.Get(nameTok("missing")) })
}

func TestManagerAssignWalksOutward(t *testing.T) {
	mgr := environment.NewManager(reporter.New(&bytes.Buffer{}))
	mgr.Define("x", value.Number(1))
	outer := mgr.CurrentEnv()
	mgr.CreateNewEnv("block")
	mgr.Assign(nameTok("x"), value.Number(2))
	mgr.SetCurrentEnv(outer)
	assert.Equal(t, value.Number(2), mgr.Get(nameTok("x")))
}

func TestManagerAssignUndefinedPanics(t *testing.T) {
	mgr := environment.NewManager(reporter.New(&bytes.Buffer{}))
	assert.Panics(t, func() { mgr.Assign(nameTok("never"), value.Number(1)) })
}

func TestChildScopeShadowsParent(t *testing.T) {
	mgr := environment.NewManager(reporter.New(&bytes.Buffer{}))
	mgr.Define("x", value.Number(1))
	mgr.CreateNewEnv("block")
	mgr.Define("x", value.Number(2))
	assert.Equal(t, value.Number(2), mgr.Get(nameTok("x")))
}

func TestStrictUninitializedRead(t *testing.T) {
	mgr := environment.NewManager(reporter.New(&bytes.Buffer{}))
	mgr.SetStrict(true)
	mgr.DefineDeclaredOnly("x")
	assert.Panics(t, func() { mgr.Get(nameTok("x")) })

	mgr.Assign(nameTok("x"), value.Number(5))
	assert.NotPanics(t, func() { mgr.Get(nameTok("x")) })
}

func TestNonStrictUninitializedReadsNil(t *testing.T) {
	mgr := environment.NewManager(reporter.New(&bytes.Buffer{}))
	mgr.DefineDeclaredOnly("x")
	require.Equal(t, value.Nil, mgr.Get(nameTok("x")))
}

func TestDiscardEnvsTillRestoresAncestor(t *testing.T) {
	mgr := environment.NewManager(reporter.New(&bytes.Buffer{}))
	root := mgr.CurrentEnv()
	mgr.CreateNewEnv("outer")
	mid := mgr.CurrentEnv()
	mgr.CreateNewEnv("inner")
	mgr.DiscardEnvsTill(mid, "unwind")
	assert.Same(t, mid, mgr.CurrentEnv())
	mgr.DiscardEnvsTill(root, "unwind")
	assert.Same(t, root, mgr.CurrentEnv())
}
