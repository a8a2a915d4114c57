package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatTable(names ...string) *TurnSequencer {
	s := NewTurnSequencer()
	for _, n := range names {
		s.Add(newPlayer(n, RoleBase))
	}
	return s
}

func TestTurnSequencerStart(t *testing.T) {
	s := seatTable("alice")
	assert.Nil(t, s.Current())
	assert.ErrorIs(t, s.Start(2), ErrNotEnoughPlayers)

	s.Add(newPlayer("bob", RoleBase))
	require.NoError(t, s.Start(2))
	assert.True(t, s.IsCurrent("alice"))
	assert.ErrorIs(t, s.Start(2), ErrGameAlreadyStarted)
}

func TestTurnSequencerAdvanceSkipsInactive(t *testing.T) {
	s := seatTable("alice", "bob", "carol")
	require.NoError(t, s.Start(2))

	bob, ok := s.Find("bob")
	require.True(t, ok)
	bob.active = false

	next, err := s.Advance()
	require.NoError(t, err)
	assert.Equal(t, "carol", next.Name())

	next, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, "alice", next.Name())
	assert.Equal(t, 2, s.ActiveCount())
	assert.Len(t, s.Active(), 2)
}

func TestTurnSequencerAdvanceEndsWithOnePlayer(t *testing.T) {
	s := seatTable("alice", "bob")
	require.NoError(t, s.Start(2))
	bob, _ := s.Find("bob")
	bob.active = false

	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrGameOver)
	assert.True(t, s.IsCurrent("alice"))
}

func TestTurnSequencerNextActiveUsesPredicate(t *testing.T) {
	s := seatTable("alice", "bob", "carol")
	require.NoError(t, s.Start(2))

	skipBob := func(p *Player) bool { return p.Name() != "bob" }
	i, err := s.NextActive(0, skipBob)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestTurnAdvancedEventFollowsSeating(t *testing.T) {
	g, _ := newTestGame(t, RoleBase, RoleBase, RoleBase)
	require.NoError(t, (&TurnAdvancedEvent{From: "alice", To: "bob"}).Apply(g.state))
	assert.Equal(t, "bob", g.CurrentTurn())

	skipped, _ := newTestGame(t, RoleBase, RoleBase, RoleBase)
	assert.Error(t, (&TurnAdvancedEvent{From: "alice", To: "carol"}).Apply(skipped.state))
}
