package engine

// TurnSequencer owns the roster in registration order and whose turn it is.
type TurnSequencer struct {
	players []*Player
	current int
	started bool
}

func NewTurnSequencer() *TurnSequencer {
	return &TurnSequencer{}
}

// Add appends p to the roster.
func (s *TurnSequencer) Add(p *Player) {
	s.players = append(s.players, p)
}

func (s *TurnSequencer) Len() int {
	return len(s.players)
}

func (s *TurnSequencer) Started() bool {
	return s.started
}

// Start makes the first active player current.
func (s *TurnSequencer) Start(minPlayers int) error {
	if s.started {
		return ruleErr(ErrGameAlreadyStarted, "turn order is already running")
	}
	if len(s.players) < minPlayers {
		return ruleErr(ErrNotEnoughPlayers, "need at least %d players, have %d", minPlayers, len(s.players))
	}
	for i, p := range s.players {
		if p.active {
			s.current = i
			s.started = true
			return nil
		}
	}
	return ruleErr(ErrNotEnoughPlayers, "no active players")
}

// Current returns the player whose turn it is, or nil before Start.
func (s *TurnSequencer) Current() *Player {
	if !s.started || len(s.players) == 0 {
		return nil
	}
	return s.players[s.current]
}

func (s *TurnSequencer) IsCurrent(name string) bool {
	cur := s.Current()
	return cur != nil && cur.name == name
}

// Find looks a player up by name.
func (s *TurnSequencer) Find(name string) (*Player, bool) {
	for _, p := range s.players {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

// All returns the roster, eliminated players included.
func (s *TurnSequencer) All() []*Player {
	return s.players
}

// Active returns the active players in registration order.
func (s *TurnSequencer) Active() []*Player {
	var out []*Player
	for _, p := range s.players {
		if p.active {
			out = append(out, p)
		}
	}
	return out
}

func (s *TurnSequencer) ActiveCount() int {
	n := 0
	for _, p := range s.players {
		if p.active {
			n++
		}
	}
	return n
}

// NextActive finds the first player after from, cycling, for whom isActive
// holds. It fails with ErrGameOver when fewer than two such players exist.
func (s *TurnSequencer) NextActive(from int, isActive func(*Player) bool) (int, error) {
	n := 0
	for _, p := range s.players {
		if isActive(p) {
			n++
		}
	}
	if n <= 1 {
		return 0, ruleErr(ErrGameOver, "%d active player(s) left", n)
	}
	for step := 1; step <= len(s.players); step++ {
		i := (from + step) % len(s.players)
		if isActive(s.players[i]) {
			return i, nil
		}
	}
	return 0, ruleErr(ErrGameOver, "no active player found")
}

// Advance rotates to the next active player.
func (s *TurnSequencer) Advance() (*Player, error) {
	next, err := s.NextActive(s.current, func(p *Player) bool { return p.active })
	if err != nil {
		return nil, err
	}
	s.current = next
	return s.players[next], nil
}
