package engine

// undo contests the most relevant pending action of target. It runs off-turn.
func (p *plan) undo(name, targetName string) error {
	a, err := p.actor(name, reasonContest, true)
	if err != nil {
		return err
	}
	t, ok := p.state.Turns.Find(targetName)
	if !ok {
		return ruleErr(ErrPlayerNotFound, "%q", targetName)
	}
	if t == a {
		return ruleErr(ErrIllegalMove, "%s cannot contest their own actions", a.name)
	}
	for _, kind := range contestOrder {
		if !a.role.CanUndo(kind) {
			continue
		}
		entry, ok := p.state.Pending.Find(t.name, kind)
		if !ok {
			continue
		}
		switch kind {
		case ActionTax:
			return p.undoTax(a, entry)
		case ActionBribe:
			return p.undoBribe(a, t, entry)
		case ActionCoup:
			return p.undoCoup(a, entry)
		case ActionArrest:
			guard, armed := p.state.Pending.FindFor(a.name, ActionBlockArrest, t.name)
			if !armed {
				continue
			}
			return p.undoArrest(a, entry, guard)
		}
	}
	return ruleErr(ErrIllegalMove, "%s has nothing of %s's to contest", a.name, t.name)
}

// reverse stages the inverse of entry's transfers, newest first.
func (p *plan) reverse(entry PendingAction) error {
	for i := len(entry.Transfers) - 1; i >= 0; i-- {
		if err := p.transfer(entry.Transfers[i].Reverse(), reasonContest); err != nil {
			return err
		}
	}
	return nil
}

func (p *plan) undoTax(a *Player, entry PendingAction) error {
	if err := p.reverse(entry); err != nil {
		return err
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	p.resolve(entry, a.name)
	return nil
}

// undoBribe keeps the bribe in the treasury and takes the bought action back.
func (p *plan) undoBribe(a, briber *Player, entry PendingAction) error {
	if err := p.mustCoup(a); err != nil {
		return err
	}
	if p.bonusOf(briber) > 0 {
		p.addBonus(briber, -1)
	}
	p.resolve(entry, a.name)
	return nil
}

// undoCoup buys the victim back into the game.
func (p *plan) undoCoup(a *Player, entry PendingAction) error {
	cost := p.state.Rules.CoupDefenseCost
	if err := p.afford(a, cost, ActionCoup); err != nil {
		return err
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	victim, ok := p.state.Turns.Find(entry.Victim)
	if !ok {
		return ruleErr(ErrPlayerNotFound, "%q", entry.Victim)
	}
	if err := p.transfer(Transfer{From: a.name, To: Bank, Amount: cost}, reasonContest); err != nil {
		return err
	}
	if !p.isActive(victim) {
		p.setActive(victim, true, a.name)
	}
	p.resolve(entry, a.name)
	return nil
}

func (p *plan) undoArrest(a *Player, entry, guard PendingAction) error {
	if err := p.reverse(entry); err != nil {
		return err
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	p.resolve(entry, a.name)
	p.resolve(guard, a.name)
	return nil
}

// eliminate removes a player from play outside of any action, as when they
// leave the table.
func (p *plan) eliminate(name string) error {
	s := p.state
	if !s.Turns.Started() {
		return ruleErr(ErrGameNotStarted, "%s cannot leave before the game starts", name)
	}
	if s.Over {
		return ruleErr(ErrGameOver, "%s cannot leave a finished game", name)
	}
	pl, ok := s.Turns.Find(name)
	if !ok {
		return ruleErr(ErrPlayerNotFound, "%q", name)
	}
	if !pl.active {
		return ruleErr(ErrPlayerNotActive, "%s has already been eliminated", name)
	}
	p.setActive(pl, false, "")
	if s.Turns.IsCurrent(name) || p.activeCount() <= 1 {
		return p.passTurn()
	}
	return nil
}
