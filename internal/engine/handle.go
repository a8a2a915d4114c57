package engine

// Handle is a player's seat at a game. Actions taken through it act as that
// player; it carries the name only, so it stays valid after elimination.
type Handle struct {
	g    *Game
	name string
}

// Handle returns the seat of a registered player.
func (g *Game) Handle(name string) (Handle, error) {
	if _, ok := g.state.Turns.Find(name); !ok {
		return Handle{}, ruleErr(ErrPlayerNotFound, "%q", name)
	}
	return Handle{g: g, name: name}, nil
}

func (h Handle) Name() string { return h.name }

func (h Handle) Coins() int {
	n, _ := h.g.Coins(h.name)
	return n
}

func (h Handle) Role() RoleKind {
	r, _ := h.g.Role(h.name)
	return r
}

func (h Handle) do(action, target string) error {
	_, err := h.g.Do(action, h.name, target)
	return err
}

// Gather takes one coin from the treasury.
func (h Handle) Gather() error { return h.do(OpGather, "") }

// Tax takes the role's tax yield from the treasury.
func (h Handle) Tax() error { return h.do(OpTax, "") }

// Bribe pays for one extra action this turn.
func (h Handle) Bribe() error { return h.do(OpBribe, "") }

func (h Handle) Arrest(target string) error   { return h.do(OpArrest, target) }
func (h Handle) Sanction(target string) error { return h.do(OpSanction, target) }
func (h Handle) Coup(target string) error     { return h.do(OpCoup, target) }

// Invest doubles a Baron's stake.
func (h Handle) Invest() error { return h.do(OpInvest, "") }

// SpyOn reveals how many coins target holds.
func (h Handle) SpyOn(target string) (int, error) { return h.g.spyOn(h.name, target) }

// PrepareCoupDefense protects target from the next coup.
func (h Handle) PrepareCoupDefense(target string) error { return h.do(OpDefend, target) }

// Undo contests target's most recent contestable action.
func (h Handle) Undo(target string) error { return h.do(OpUndo, target) }

// LegalActions lists what this player could do right now.
func (h Handle) LegalActions() []Move { return h.g.LegalActions(h.name) }
