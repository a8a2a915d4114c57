package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegalActionsAtStart(t *testing.T) {
	g, hs := newTestGame(t, RoleBase, RoleGovernor)

	moves := hs[0].LegalActions()
	assert.Contains(t, moves, Move{Action: OpGather})
	assert.Contains(t, moves, Move{Action: OpTax})
	assert.Contains(t, moves, Move{Action: OpArrest, Target: "bob"})
	assert.NotContains(t, moves, Move{Action: OpCoup, Target: "bob"})
	assert.NotContains(t, moves, Move{Action: OpArrest, Target: "alice"})

	assert.Empty(t, g.LegalActions("bob"), "nothing to do off-turn")
}

func TestLegalActionsMustCoup(t *testing.T) {
	g, _ := newTestGame(t, RoleBase, RoleBase)
	fund(t, g, "alice", 10)

	assert.Equal(t, []Move{{Action: OpCoup, Target: "bob"}}, g.LegalActions("alice"))
}

func TestLegalActionsCommitNothing(t *testing.T) {
	g, _ := newTestGame(t, RoleSpy, RoleBase)
	fund(t, g, "alice", 5)
	journal := len(g.Journal())

	moves := g.LegalActions("alice")
	assert.Contains(t, moves, Move{Action: OpSpyOn, Target: "bob"})
	assert.Contains(t, moves, Move{Action: OpBribe})
	assert.Len(t, g.Journal(), journal)
	assert.Empty(t, g.Pending())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "gather", Move{Action: OpGather}.String())
	assert.Equal(t, "coup bob", Move{Action: OpCoup, Target: "bob"}.String())
}
