package engine

// Move is one action a player could take, with its target when it has one.
type Move struct {
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
}

func (m Move) String() string {
	if m.Target == "" {
		return m.Action
	}
	return m.Action + " " + m.Target
}

// LegalActions dry-runs every action for name against every other seat and
// reports the ones that would be accepted. Nothing is committed.
func (g *Game) LegalActions(name string) []Move {
	var moves []Move
	for _, pl := range planners {
		if !pl.targeted {
			if pl.run(newPlan(g.state), name, "") == nil {
				moves = append(moves, Move{Action: pl.name})
			}
			continue
		}
		for _, t := range g.state.Turns.All() {
			if pl.run(newPlan(g.state), name, t.name) == nil {
				moves = append(moves, Move{Action: pl.name, Target: t.name})
			}
		}
	}
	return moves
}
