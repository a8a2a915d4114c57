package engine

import "fmt"

// plan stages the events of one operation against a shadow of the ledger.
// Nothing reaches GameState until the whole plan has validated, so a
// rejected operation leaves no trace.
type plan struct {
	state    *GameState
	balances map[string]int
	active   map[string]bool
	bonus    map[string]int
	events   []Event

	revealed int
}

func newPlan(state *GameState) *plan {
	return &plan{
		state:    state,
		balances: make(map[string]int),
		active:   make(map[string]bool),
		bonus:    make(map[string]int),
	}
}

func (p *plan) emit(evt Event) {
	p.events = append(p.events, evt)
}

func (p *plan) balance(account string) int {
	if v, ok := p.balances[account]; ok {
		return v
	}
	return p.state.balance(account)
}

func (p *plan) isActive(pl *Player) bool {
	if v, ok := p.active[pl.name]; ok {
		return v
	}
	return pl.active
}

func (p *plan) bonusOf(pl *Player) int {
	if v, ok := p.bonus[pl.name]; ok {
		return v
	}
	return pl.bonusActions
}

// transfer stages a coin movement. Zero amounts are dropped.
func (p *plan) transfer(t Transfer, reason ActionKind) error {
	if t.Amount == 0 {
		return nil
	}
	if have := p.balance(t.From); have < t.Amount {
		return ruleErr(ErrInsufficientFunds, "%s holds %d, needs %d", accountName(t.From), have, t.Amount)
	}
	p.balances[t.From] = p.balance(t.From) - t.Amount
	p.balances[t.To] = p.balance(t.To) + t.Amount
	p.emit(&CoinsTransferredEvent{Transfer: t, Reason: reason})
	return nil
}

// transfers stages several movements and returns the ones that moved coins.
func (p *plan) transfers(reason ActionKind, ts ...Transfer) ([]Transfer, error) {
	var moved []Transfer
	for _, t := range ts {
		if err := p.transfer(t, reason); err != nil {
			return nil, err
		}
		if t.Amount > 0 {
			moved = append(moved, t)
		}
	}
	return moved, nil
}

func (p *plan) setActive(pl *Player, active bool, by string) {
	p.active[pl.name] = active
	p.emit(&PlayerStatusEvent{Name: pl.name, Active: active, By: by})
}

func (p *plan) addBonus(pl *Player, delta int) {
	p.bonus[pl.name] = p.bonusOf(pl) + delta
	p.emit(&BonusActionEvent{Name: pl.name, Delta: delta})
}

func (p *plan) record(entry PendingAction) {
	p.emit(&PendingRecordedEvent{Entry: entry})
}

func (p *plan) resolve(entry PendingAction, by string) {
	p.emit(&PendingResolvedEvent{Seq: entry.Seq, Actor: entry.Actor, Kind: entry.Kind, By: by})
}

func (p *plan) activeCount() int {
	n := 0
	for _, pl := range p.state.Turns.All() {
		if p.isActive(pl) {
			n++
		}
	}
	return n
}

// endTurn closes the actor's action: a bribe bonus is spent first, otherwise
// the turn passes.
func (p *plan) endTurn(actor *Player) error {
	if p.bonusOf(actor) > 0 {
		p.addBonus(actor, -1)
		return nil
	}
	return p.passTurn()
}

// passTurn moves the turn to the next active player, or ends the game when
// only one remains.
func (p *plan) passTurn() error {
	if p.activeCount() <= 1 {
		winner := ""
		for _, pl := range p.state.Turns.All() {
			if p.isActive(pl) {
				winner = pl.name
			}
		}
		p.emit(&GameOverEvent{Winner: winner})
		return nil
	}
	turns := p.state.Turns
	current := turns.Current()
	next, err := turns.NextActive(turns.current, p.isActive)
	if err != nil {
		return err
	}
	incoming := turns.players[next]
	p.closeTurn(current)
	p.emit(&TurnAdvancedEvent{From: current.name, To: incoming.name})
	return p.openTurn(incoming)
}

// closeTurn lifts whatever lasted only for the outgoing player's turn.
func (p *plan) closeTurn(pl *Player) {
	if b := p.bonusOf(pl); b > 0 {
		p.addBonus(pl, -b)
	}
	if pl.underSanction {
		p.emit(&SanctionEvent{Name: pl.name, Sanctioned: false})
	}
}

// openTurn runs the start-of-turn hook of the incoming player.
func (p *plan) openTurn(pl *Player) error {
	if p.hasPending(pl.name) {
		p.emit(&PendingExpiredEvent{Actor: pl.name})
	}
	if pl.role == RoleMerchant {
		rules := p.state.Rules
		if p.balance(pl.name) >= rules.MerchantBonusThreshold && p.balance(Bank) >= rules.MerchantBonus {
			if err := p.transfer(Transfer{From: Bank, To: pl.name, Amount: rules.MerchantBonus}, reasonTurnBonus); err != nil {
				return fmt.Errorf("merchant bonus for %s: %w", pl.name, err)
			}
		}
	}
	return nil
}

// hasPending reports whether actor has a window that closes when their turn
// starts. A spy's block_arrest is not one: it closes with the arrest it guards.
func (p *plan) hasPending(actor string) bool {
	for _, e := range p.state.Pending.entries {
		if e.Actor == actor && e.Kind != ActionBlockArrest {
			return true
		}
	}
	for _, evt := range p.events {
		if rec, ok := evt.(*PendingRecordedEvent); ok && rec.Entry.Actor == actor && rec.Entry.Kind != ActionBlockArrest {
			return true
		}
	}
	return false
}
