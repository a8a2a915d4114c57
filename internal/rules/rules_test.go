package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suderio/coup/internal/engine"
)

func table(t *testing.T) *engine.Game {
	t.Helper()
	g, err := engine.New(engine.DefaultRuleset(), engine.WithID("rules-test"))
	require.NoError(t, err)
	_, err = g.Register("alice", engine.RoleSpy)
	require.NoError(t, err)
	_, err = g.Register("bob", engine.RoleBaron)
	require.NoError(t, err)
	_, err = g.Register("carol", engine.RoleBase)
	require.NoError(t, err)
	require.NoError(t, g.Start())
	return g
}

func TestCELRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	t.Run("Basic Boolean Expression", func(t *testing.T) {
		ctx := ContextFromPlayer(engine.PlayerView{Name: "alice", Coins: 4, Active: true}, nil)
		out, err := registry.Eval("coins > 3 && active", ctx)
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Role Names", func(t *testing.T) {
		ctx := ContextFromPlayer(engine.PlayerView{Name: "bob", Role: engine.RoleGeneral}, nil)
		out, err := registry.Eval("role == 'General'", ctx)
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Moves", func(t *testing.T) {
		ctx := ContextFromPlayer(engine.PlayerView{Name: "alice"}, []engine.Move{{Action: engine.OpCoup, Target: "bob"}})
		out, err := registry.Eval("'coup bob' in moves", ctx)
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Compile Error", func(t *testing.T) {
		_, err := registry.Eval("coins >", map[string]any{})
		assert.Error(t, err)
	})
}

func TestFilter(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	g := table(t)

	names, err := registry.Filter("turn", BuildEvalContexts(g))
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names)

	names, err = registry.Filter("role != 'Base' && treasury == rules.treasury_start", BuildEvalContexts(g))
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, names)

	names, err = registry.Filter("moves.exists(m, m.startsWith('spy'))", BuildEvalContexts(g))
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names, "only the spy can spy")

	_, err = registry.Filter("coins + 1", BuildEvalContexts(g))
	assert.Error(t, err, "non-boolean expressions are rejected")
}

func TestRulesMap(t *testing.T) {
	m := RulesMap(engine.DefaultRuleset())
	assert.Equal(t, int64(7), m["coup_cost"])
	assert.Equal(t, int64(4), m["bribe_cost"])
}
