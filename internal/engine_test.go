package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitchlang/fitch/internal/checker"
	tt "github.com/fitchlang/fitch/internal/types"
)

// createTempDir creates a temporary directory and returns its path.
// It also registers a cleanup function to remove the directory after the test.
func createTempDir(t testing.TB, prefix string) string {
	tempDir, err := os.MkdirTemp("", prefix)
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	return tempDir
}

func newTestEngine() *Engine {
	return NewEngine(checker.DefaultConfig(), nil)
}

func TestEngine_RunSource(t *testing.T) {
	t.Parallel()
	engine := newTestEngine()

	source := []byte(`
theorem identity : p -> p :=
    fun h : p => h

theorem swap : p /\ q -> q /\ p :=
    fun h : p /\ q => conj (snd h) (fst h)
`)

	results, err := engine.RunSource(source)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "identity", results[0].Theorem)
	assert.Equal(t, tt.StatusProved, results[0].Status)
	assert.Equal(t, "swap", results[1].Theorem)
	assert.Equal(t, tt.StatusProved, results[1].Status)
}

func TestEngine_RunSourceFailure(t *testing.T) {
	t.Parallel()
	engine := newTestEngine()

	// fst requires a conjunction; h proves an implication
	source := []byte(`
theorem broken : p :=
    fun h : p -> q => fst h
`)

	results, err := engine.RunSource(source)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, tt.StatusFailed, results[0].Status)
	assert.Contains(t, results[0].Detail, "And(_, _)")
	assert.Contains(t, results[0].Detail, "p -> q")
	assert.Equal(t, 2, results[0].Line)
}

func TestEngine_AxiomsExtendContext(t *testing.T) {
	t.Parallel()
	engine := newTestEngine()

	source := []byte(`
axiom hp : p
axiom hpq : p -> q

theorem q_holds : q :=
    hpq hp
`)

	results, err := engine.RunSource(source)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, tt.StatusProved, results[0].Status)
}

func TestEngine_ProvedTheoremsUsableLater(t *testing.T) {
	t.Parallel()
	engine := newTestEngine()

	source := []byte(`
axiom hp : p

theorem both : p /\ p :=
    conj hp hp

theorem left_again : p :=
    fst both
`)

	results, err := engine.RunSource(source)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, tt.StatusProved, results[0].Status)
	assert.Equal(t, tt.StatusProved, results[1].Status)
}

func TestEngine_IgnoreTheorem(t *testing.T) {
	t.Parallel()
	engine := newTestEngine()
	engine.IgnoreTheorem("flaky")

	source := []byte(`
theorem flaky : p :=
    fun h : q => h
`)

	results, err := engine.RunSource(source)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, tt.StatusSkipped, results[0].Status)
	assert.Empty(t, results[0].Detail)
}

func TestEngine_IntuitionisticMode(t *testing.T) {
	t.Parallel()
	engine := NewEngine(checker.Config{AllowClassical: false}, nil)

	source := []byte(`
theorem lem : p \/ ~p :=
    em p
`)

	results, err := engine.RunSource(source)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, tt.StatusFailed, results[0].Status)
	assert.Contains(t, results[0].Detail, "excluded middle")
}

func TestEngine_ParseErrorPropagates(t *testing.T) {
	t.Parallel()
	engine := newTestEngine()

	_, err := engine.RunSource([]byte("theorem oops : p -> := h"))
	require.Error(t, err)
}

func TestEngine_Run(t *testing.T) {
	t.Parallel()
	engine := newTestEngine()

	tempDir := createTempDir(t, "engine_test")
	path := filepath.Join(tempDir, "basics.ndp")
	source := "theorem identity : p -> p :=\n    fun h : p => h\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	results, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, tt.StatusProved, results[0].Status)
	assert.Equal(t, path, results[0].Filename)
}

func TestEngine_IgnorePath(t *testing.T) {
	t.Parallel()
	engine := newTestEngine()
	engine.IgnorePath("proofs/wip")

	assert.True(t, engine.PathIgnored("proofs/wip"))
	assert.True(t, engine.PathIgnored("proofs/wip/lemmas.ndp"))
	assert.False(t, engine.PathIgnored("proofs/wip2/lemmas.ndp"))
	assert.False(t, engine.PathIgnored("proofs"))
}
