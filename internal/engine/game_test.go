package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seatNames = []string{"alice", "bob", "carol", "dave", "erin", "frank"}

// newTestGame seats one player per role, in order, and starts the game.
func newTestGame(t *testing.T, roles ...RoleKind) (*Game, []Handle) {
	t.Helper()
	g, err := New(DefaultRuleset(), WithID("test"), WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	hs := make([]Handle, len(roles))
	for i, r := range roles {
		h, err := g.Register(seatNames[i], r)
		require.NoError(t, err)
		hs[i] = h
	}
	require.NoError(t, g.Start())
	return g, hs
}

// fund moves coins from the treasury to a player outside of play.
func fund(t *testing.T, g *Game, name string, coins int) {
	t.Helper()
	if coins == 0 {
		return
	}
	p, ok := g.state.Turns.Find(name)
	require.True(t, ok)
	require.NoError(t, g.state.Treasury.Debit(coins))
	p.coins += coins
}

func TestNewRejectsInvalidRuleset(t *testing.T) {
	rs := DefaultRuleset()
	rs.MinPlayers = 0
	_, err := New(rs)
	assert.Error(t, err)
}

func TestNewGeneratesID(t *testing.T) {
	a, err := New(DefaultRuleset())
	require.NoError(t, err)
	b, err := New(DefaultRuleset())
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestRegister(t *testing.T) {
	g, err := New(DefaultRuleset())
	require.NoError(t, err)

	h, err := g.Register("alice", RoleGovernor)
	require.NoError(t, err)
	assert.Equal(t, "alice", h.Name())
	assert.Equal(t, RoleGovernor, h.Role())

	_, err = g.Register("alice", RoleSpy)
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = g.Register("   ", RoleSpy)
	assert.ErrorIs(t, err, ErrIllegalMove)

	for _, n := range seatNames[1:] {
		_, err := g.Register(n, RoleBase)
		require.NoError(t, err)
	}
	_, err = g.Register("grace", RoleBase)
	assert.ErrorIs(t, err, ErrTooManyPlayers)
	assert.Len(t, g.Players(), 6)
}

func TestStart(t *testing.T) {
	g, err := New(DefaultRuleset())
	require.NoError(t, err)
	_, err = g.Register("alice", RoleBase)
	require.NoError(t, err)

	assert.ErrorIs(t, g.Start(), ErrNotEnoughPlayers)
	assert.False(t, g.Started())

	_, err = g.Register("bob", RoleBase)
	require.NoError(t, err)
	require.NoError(t, g.Start())

	assert.Equal(t, "alice", g.CurrentTurn())
	assert.Equal(t, 50, g.Treasury())
	assert.Equal(t, 1, g.Round())
	assert.ErrorIs(t, g.Start(), ErrGameAlreadyStarted)

	_, err = g.Register("carol", RoleBase)
	assert.ErrorIs(t, err, ErrGameAlreadyStarted)
}

func TestStartDealsStartingCoins(t *testing.T) {
	rs := DefaultRuleset()
	rs.StartingCoins = 2
	g, err := New(rs)
	require.NoError(t, err)
	for _, n := range seatNames[:3] {
		_, err := g.Register(n, RoleBase)
		require.NoError(t, err)
	}
	require.NoError(t, g.Start())

	for _, n := range seatNames[:3] {
		coins, err := g.Coins(n)
		require.NoError(t, err)
		assert.Equal(t, 2, coins)
	}
	assert.Equal(t, 44, g.Treasury())
	assert.Equal(t, 50, g.TotalCoins())
}

func TestActionsBeforeStart(t *testing.T) {
	g, err := New(DefaultRuleset())
	require.NoError(t, err)
	h, err := g.Register("alice", RoleBase)
	require.NoError(t, err)

	assert.ErrorIs(t, h.Gather(), ErrGameNotStarted)
	_, err = g.Winner()
	assert.ErrorIs(t, err, ErrGameStillRunning)
	assert.Equal(t, "", g.CurrentTurn())
}

func TestRegisterRandomIsSeeded(t *testing.T) {
	g, err := New(DefaultRuleset(), WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	want := rand.New(rand.NewSource(7))

	for _, n := range seatNames {
		h, err := g.RegisterRandom(n)
		require.NoError(t, err)
		assert.Equal(t, Specialized[want.Intn(len(Specialized))], h.Role())
		assert.NotEqual(t, RoleBase, h.Role())
	}
}

func TestUnknownAction(t *testing.T) {
	g, _ := newTestGame(t, RoleBase, RoleBase)
	_, err := g.Do("teleport", "alice", "")
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestHandleLookup(t *testing.T) {
	g, _ := newTestGame(t, RoleBase, RoleSpy)
	h, err := g.Handle("bob")
	require.NoError(t, err)
	assert.Equal(t, RoleSpy, h.Role())

	_, err = g.Handle("zed")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	_, err = g.Player("zed")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestEliminate(t *testing.T) {
	g, _ := newTestGame(t, RoleBase, RoleBase, RoleBase)

	_, err := g.Eliminate("alice")
	require.NoError(t, err)
	assert.Equal(t, "bob", g.CurrentTurn())
	assert.Equal(t, []string{"bob", "carol"}, g.ActivePlayers())

	_, err = g.Eliminate("alice")
	assert.ErrorIs(t, err, ErrPlayerNotActive)

	_, err = g.Eliminate("carol")
	require.NoError(t, err)
	assert.True(t, g.IsOver())
	winner, err := g.Winner()
	require.NoError(t, err)
	assert.Equal(t, "bob", winner)
}

func TestJournalRecordsCommittedEvents(t *testing.T) {
	g, hs := newTestGame(t, RoleBase, RoleBase)
	before := len(g.Journal())

	require.NoError(t, hs[0].Gather())
	journal := g.Journal()
	require.Greater(t, len(journal), before)

	var types []string
	for _, evt := range journal[before:] {
		types = append(types, evt.Type())
	}
	assert.Equal(t, []string{"CoinsTransferredEvent", "PendingRecordedEvent", "TurnAdvancedEvent"}, types)
}
