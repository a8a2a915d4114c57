package engine

// Action names accepted by Game.Do and reported by LegalMoves.
const (
	OpGather   = "gather"
	OpTax      = "tax"
	OpBribe    = "bribe"
	OpArrest   = "arrest"
	OpSanction = "sanction"
	OpCoup     = "coup"
	OpInvest   = "invest"
	OpSpyOn    = "spy"
	OpDefend   = "defend"
	OpUndo     = "undo"
)

type planner struct {
	name     string
	targeted bool
	run      func(p *plan, actor, target string) error
}

var planners = []planner{
	{OpGather, false, func(p *plan, actor, _ string) error { return p.gather(actor) }},
	{OpTax, false, func(p *plan, actor, _ string) error { return p.tax(actor) }},
	{OpBribe, false, func(p *plan, actor, _ string) error { return p.bribe(actor) }},
	{OpArrest, true, (*plan).arrest},
	{OpSanction, true, (*plan).sanction},
	{OpCoup, true, (*plan).coup},
	{OpInvest, false, func(p *plan, actor, _ string) error { return p.invest(actor) }},
	{OpSpyOn, true, (*plan).spyOn},
	{OpDefend, true, (*plan).prepareCoupDefense},
	{OpUndo, true, (*plan).undo},
}

func lookupPlanner(name string) (planner, bool) {
	for _, pl := range planners {
		if pl.name == name {
			return pl, true
		}
	}
	return planner{}, false
}

// actor resolves the acting player and runs the turn and capability gates.
// Free actions skip the turn check.
func (p *plan) actor(name string, kind ActionKind, free bool) (*Player, error) {
	s := p.state
	if !s.Turns.Started() {
		return nil, ruleErr(ErrGameNotStarted, "%s cannot %s before the game starts", name, kind)
	}
	if s.Over {
		return nil, ruleErr(ErrGameOver, "%s cannot %s after the game ended", name, kind)
	}
	pl, ok := s.Turns.Find(name)
	if !ok {
		return nil, ruleErr(ErrPlayerNotFound, "%q", name)
	}
	if !pl.active {
		return nil, ruleErr(ErrPlayerNotActive, "%s has been eliminated", name)
	}
	if !free && !s.Turns.IsCurrent(name) {
		return nil, ruleErr(ErrNotYourTurn, "it is %s's turn, not %s's", s.Turns.Current().name, name)
	}
	if !pl.role.Allows(kind) {
		return nil, ruleErr(ErrIllegalMove, "a %s cannot %s", pl.role, kind)
	}
	return pl, nil
}

func (p *plan) afford(pl *Player, cost int, kind ActionKind) error {
	if have := p.balance(pl.name); have < cost {
		return ruleErr(ErrInsufficientFunds, "%s needs %d coin(s) to %s, has %d", pl.name, cost, kind, have)
	}
	return nil
}

func (p *plan) mustCoup(pl *Player) error {
	if have := p.balance(pl.name); have >= p.state.Rules.MustCoupAt {
		return ruleErr(ErrMustCoup, "%s holds %d coins and must coup", pl.name, have)
	}
	return nil
}

func (p *plan) target(actor *Player, name string, kind ActionKind, allowSelf bool) (*Player, error) {
	t, ok := p.state.Turns.Find(name)
	if !ok {
		return nil, ruleErr(ErrPlayerNotFound, "%q", name)
	}
	if t == actor && !allowSelf {
		return nil, ruleErr(ErrIllegalMove, "%s cannot %s themselves", actor.name, kind)
	}
	if !p.isActive(t) {
		return nil, ruleErr(ErrPlayerNotActive, "%s has been eliminated", name)
	}
	if kind == ActionArrest && actor.lastArrested == name {
		return nil, ruleErr(ErrRepeatArrestTarget, "%s arrested %s last time", actor.name, name)
	}
	return t, nil
}

// economic runs the shared gates of gather and tax.
func (p *plan) economic(name string, kind ActionKind) (*Player, error) {
	a, err := p.actor(name, kind, false)
	if err != nil {
		return nil, err
	}
	if a.underSanction {
		return nil, ruleErr(ErrSanctionedPlayer, "%s cannot %s while sanctioned", name, kind)
	}
	if (kind == ActionGather && !a.canGather) || (kind == ActionTax && !a.canTax) {
		return nil, ruleErr(ErrIllegalMove, "%s cannot %s right now", name, kind)
	}
	return a, nil
}

func (p *plan) collect(a *Player, kind ActionKind, yield int) error {
	if have := p.balance(Bank); have < yield {
		return ruleErr(ErrInsufficientFunds, "the treasury holds %d, %s needs %d", have, kind, yield)
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	moved, err := p.transfers(kind, Transfer{From: Bank, To: a.name, Amount: yield})
	if err != nil {
		return err
	}
	p.record(PendingAction{Actor: a.name, Kind: kind, Transfers: moved})
	return p.endTurn(a)
}

func (p *plan) gather(name string) error {
	a, err := p.economic(name, ActionGather)
	if err != nil {
		return err
	}
	return p.collect(a, ActionGather, p.state.Rules.GatherYield)
}

func (p *plan) tax(name string) error {
	a, err := p.economic(name, ActionTax)
	if err != nil {
		return err
	}
	return p.collect(a, ActionTax, a.role.TaxYield(p.state.Rules))
}

// bribe buys an extra action; the turn stays with the briber.
func (p *plan) bribe(name string) error {
	a, err := p.actor(name, ActionBribe, false)
	if err != nil {
		return err
	}
	cost := a.role.BribeCost(p.state.Rules)
	if err := p.afford(a, cost, ActionBribe); err != nil {
		return err
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	moved, err := p.transfers(ActionBribe, Transfer{From: a.name, To: Bank, Amount: cost})
	if err != nil {
		return err
	}
	p.addBonus(a, 1)
	p.record(PendingAction{Actor: a.name, Kind: ActionBribe, Transfers: moved})
	return nil
}

func (p *plan) arrest(name, targetName string) error {
	a, err := p.actor(name, ActionArrest, false)
	if err != nil {
		return err
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	t, err := p.target(a, targetName, ActionArrest, false)
	if err != nil {
		return err
	}
	moved, err := p.onArrested(t, a)
	if err != nil {
		return err
	}
	p.emit(&ArrestMemoEvent{Actor: a.name, Target: t.name})
	p.record(PendingAction{Actor: a.name, Kind: ActionArrest, Target: t.name, Transfers: moved})
	if a.role == RoleSpy && t.role == RoleMerchant {
		return nil
	}
	return p.endTurn(a)
}

// onArrested is the arrested player's reaction. A player with nothing to
// take loses nothing.
func (p *plan) onArrested(t, by *Player) ([]Transfer, error) {
	rules := p.state.Rules
	have := p.balance(t.name)
	switch t.role {
	case RoleMerchant:
		return p.transfers(ActionArrest, Transfer{From: t.name, To: Bank, Amount: min(rules.MerchantArrestPenalty, have)})
	case RoleGeneral:
		take := min(rules.ArrestTake, have)
		return p.transfers(ActionArrest,
			Transfer{From: t.name, To: by.name, Amount: take},
			Transfer{From: by.name, To: t.name, Amount: take},
		)
	case RoleBase, RoleGovernor, RoleSpy, RoleBaron, RoleJudge:
	}
	return p.transfers(ActionArrest, Transfer{From: t.name, To: by.name, Amount: min(rules.ArrestTake, have)})
}

func (p *plan) sanction(name, targetName string) error {
	a, err := p.actor(name, ActionSanction, false)
	if err != nil {
		return err
	}
	rules := p.state.Rules
	// The cost depends on who is sanctioned, so the target is resolved
	// before the funds check; its validity is still reported last.
	cost := rules.SanctionCost
	if t, ok := p.state.Turns.Find(targetName); ok {
		cost = t.role.SanctionCost(rules)
	}
	if err := p.afford(a, cost, ActionSanction); err != nil {
		return err
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	t, err := p.target(a, targetName, ActionSanction, false)
	if err != nil {
		return err
	}
	moved, err := p.transfers(ActionSanction,
		Transfer{From: a.name, To: Bank, Amount: rules.SanctionCost},
		Transfer{From: a.name, To: Bank, Amount: cost - rules.SanctionCost},
	)
	if err != nil {
		return err
	}
	p.emit(&SanctionEvent{Name: t.name, By: a.name, Sanctioned: true})
	p.record(PendingAction{Actor: a.name, Kind: ActionSanction, Target: t.name, Transfers: moved})
	if err := p.onSanctioned(t, a); err != nil {
		return err
	}
	return p.endTurn(a)
}

// onSanctioned is the sanctioned player's reaction.
func (p *plan) onSanctioned(t, by *Player) error {
	if t.role != RoleBaron {
		return nil
	}
	comp := min(p.state.Rules.BaronSanctionCompensation, p.balance(Bank))
	moved, err := p.transfers(ActionCompensation, Transfer{From: Bank, To: t.name, Amount: comp})
	if err != nil {
		return err
	}
	if len(moved) > 0 {
		p.record(PendingAction{Actor: by.name, Kind: ActionCompensation, Target: t.name, Transfers: moved})
	}
	return nil
}

// coup spends the coup cost and eliminates the target, unless a General
// prepared a defense for it.
func (p *plan) coup(name, targetName string) error {
	a, err := p.actor(name, ActionCoup, false)
	if err != nil {
		return err
	}
	if err := p.afford(a, p.state.Rules.CoupCost, ActionCoup); err != nil {
		return err
	}
	t, err := p.target(a, targetName, ActionCoup, false)
	if err != nil {
		return err
	}
	moved, err := p.transfers(ActionCoup, Transfer{From: a.name, To: Bank, Amount: p.state.Rules.CoupCost})
	if err != nil {
		return err
	}
	if guard, ok := p.state.Pending.FindTargeting(ActionBlockCoup, t.name); ok {
		p.resolve(guard, a.name)
		p.emit(&CoupBlockedEvent{Attacker: a.name, Target: t.name, Defender: guard.Actor})
	} else {
		p.setActive(t, false, a.name)
		p.record(PendingAction{Actor: a.name, Kind: ActionCoup, Target: t.name, Victim: t.name, Transfers: moved})
	}
	return p.endTurn(a)
}

// invest is the Baron's wager: exactly the invest cost in hand, doubled.
func (p *plan) invest(name string) error {
	a, err := p.actor(name, ActionInvest, false)
	if err != nil {
		return err
	}
	rules := p.state.Rules
	if err := p.afford(a, rules.InvestCost, ActionInvest); err != nil {
		return err
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	if have := p.balance(a.name); have != rules.InvestCost {
		return ruleErr(ErrIllegalMove, "%s must hold exactly %d coins to invest, has %d", a.name, rules.InvestCost, have)
	}
	moved, err := p.transfers(ActionInvest,
		Transfer{From: a.name, To: Bank, Amount: rules.InvestCost},
		Transfer{From: Bank, To: a.name, Amount: rules.InvestReturn},
	)
	if err != nil {
		return err
	}
	p.record(PendingAction{Actor: a.name, Kind: ActionInvest, Transfers: moved})
	return p.endTurn(a)
}

// spyOn reveals the target's purse and arms a block on its next arrest. It
// is free: it needs no turn and passes none.
func (p *plan) spyOn(name, targetName string) error {
	a, err := p.actor(name, ActionBlockArrest, true)
	if err != nil {
		return err
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	t, err := p.target(a, targetName, ActionBlockArrest, false)
	if err != nil {
		return err
	}
	p.revealed = p.balance(t.name)
	p.emit(&CoinsRevealedEvent{Spy: a.name, Target: t.name, Coins: p.revealed})
	p.record(PendingAction{Actor: a.name, Kind: ActionBlockArrest, Target: t.name})
	return nil
}

// prepareCoupDefense pays in advance to stop the next coup against target.
func (p *plan) prepareCoupDefense(name, targetName string) error {
	a, err := p.actor(name, ActionBlockCoup, false)
	if err != nil {
		return err
	}
	cost := p.state.Rules.CoupDefenseCost
	if err := p.afford(a, cost, ActionBlockCoup); err != nil {
		return err
	}
	if err := p.mustCoup(a); err != nil {
		return err
	}
	t, err := p.target(a, targetName, ActionBlockCoup, true)
	if err != nil {
		return err
	}
	moved, err := p.transfers(ActionBlockCoup, Transfer{From: a.name, To: Bank, Amount: cost})
	if err != nil {
		return err
	}
	p.record(PendingAction{Actor: a.name, Kind: ActionBlockCoup, Target: t.name, Transfers: moved})
	return p.endTurn(a)
}
