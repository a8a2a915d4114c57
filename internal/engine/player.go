package engine

// Player is one participant's record. The game owns every Player; callers hold
// a Handle or read a PlayerView.
type Player struct {
	name          string
	role          RoleKind
	coins         int
	active        bool
	underSanction bool
	canGather     bool
	canTax        bool
	lastArrested  string
	bonusActions  int
}

func newPlayer(name string, role RoleKind) *Player {
	return &Player{
		name:      name,
		role:      role,
		active:    true,
		canGather: true,
		canTax:    true,
	}
}

func (p *Player) Name() string     { return p.name }
func (p *Player) Role() RoleKind   { return p.role }
func (p *Player) Coins() int       { return p.coins }
func (p *Player) Active() bool     { return p.active }
func (p *Player) Sanctioned() bool { return p.underSanction }

func (p *Player) setSanction(on bool) {
	p.underSanction = on
	p.canGather = !on
	p.canTax = !on
}

// PlayerView is a read-only snapshot of a player.
type PlayerView struct {
	Name          string   `json:"name" yaml:"name"`
	Role          RoleKind `json:"role" yaml:"role"`
	Coins         int      `json:"coins" yaml:"coins"`
	Active        bool     `json:"active" yaml:"active"`
	UnderSanction bool     `json:"under_sanction" yaml:"under_sanction"`
	CanGather     bool     `json:"can_gather" yaml:"can_gather"`
	CanTax        bool     `json:"can_tax" yaml:"can_tax"`
	LastArrested  string   `json:"last_arrested,omitempty" yaml:"last_arrested,omitempty"`
	BonusActions  int      `json:"bonus_actions" yaml:"bonus_actions"`
}

func (p *Player) view() PlayerView {
	return PlayerView{
		Name:          p.name,
		Role:          p.role,
		Coins:         p.coins,
		Active:        p.active,
		UnderSanction: p.underSanction,
		CanGather:     p.canGather,
		CanTax:        p.canTax,
		LastArrested:  p.lastArrested,
		BonusActions:  p.bonusActions,
	}
}
